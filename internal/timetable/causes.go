package timetable

import "railboard.fi/internal/models"

// FallbackCauseName is returned when no category level resolves to a
// passenger-friendly name.
const FallbackCauseName = "-"

// DelayCauses folds every row's causes across the whole timetable into
// a duplicate-free sequence. The first occurrence of a cause keeps its
// position.
func DelayCauses(train models.Train) []models.DelayCause {
	seen := make(map[models.DelayCause]struct{})
	var causes []models.DelayCause
	for _, row := range train.Timetable {
		for _, cause := range row.Causes {
			if _, ok := seen[cause]; ok {
				continue
			}
			seen[cause] = struct{}{}
			causes = append(causes, cause)
		}
	}
	return causes
}

// PassengerFriendlyName resolves a delay cause against the category
// tables, most specific level first: third level, then detailed, then
// top. The first level whose category carries a passenger term wins;
// when none does, FallbackCauseName is returned. It never fails on an
// unknown id.
func PassengerFriendlyName(categories models.CauseCategories, cause models.DelayCause, locale models.Locale) string {
	if name, ok := termFor(categories.ThirdLevelCategories, cause.ThirdLevelCategoryID, locale); ok {
		return name
	}
	if name, ok := termFor(categories.DetailedCategories, cause.DetailedCategoryID, locale); ok {
		return name
	}
	if name, ok := termFor(categories.Categories, cause.CategoryID, locale); ok {
		return name
	}
	return FallbackCauseName
}

func termFor(table []models.CauseCategory, id int, locale models.Locale) (string, bool) {
	if id == 0 {
		return "", false
	}
	for _, category := range table {
		if category.ID == id && category.PassengerTerm != nil {
			return category.PassengerTerm.In(locale), true
		}
	}
	return "", false
}
