package models

// Locale selects the language for passenger-facing strings.
type Locale string

const (
	LocaleFinnish Locale = "fi"
	LocaleSwedish Locale = "sv"
	LocaleEnglish Locale = "en"
)

// DelayCause points into the three-level cause category tables. A zero
// id means that level is not set; the top-level CategoryID is always
// present. The type is comparable so causes can be deduplicated by
// value.
type DelayCause struct {
	CategoryID           int `json:"categoryID"`
	DetailedCategoryID   int `json:"detailedCategoryID,omitempty"`
	ThirdLevelCategoryID int `json:"thirdLevelCategoryID,omitempty"`
}

// PassengerTerm is the passenger-friendly wording of a cause category
// in the three supported languages.
type PassengerTerm struct {
	Fi string `json:"fi"`
	En string `json:"en"`
	Sv string `json:"sv"`
}

// In returns the wording for the given locale, falling back to English
// for anything that is not Finnish or Swedish.
func (p PassengerTerm) In(locale Locale) string {
	switch locale {
	case LocaleFinnish:
		return p.Fi
	case LocaleSwedish:
		return p.Sv
	default:
		return p.En
	}
}

// CauseCategory is one entry of a cause category table. PassengerTerm
// is nil for categories that only have an internal name.
type CauseCategory struct {
	ID            int            `json:"id"`
	Name          string         `json:"name"`
	PassengerTerm *PassengerTerm `json:"passengerTerm,omitempty"`
}

// CauseCategories holds the three category tables delay causes point
// into.
type CauseCategories struct {
	Categories           []CauseCategory `json:"categories"`
	DetailedCategories   []CauseCategory `json:"detailedCategories"`
	ThirdLevelCategories []CauseCategory `json:"thirdLevelCategories"`
}
