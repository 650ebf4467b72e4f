package timetable

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"railboard.fi/internal/models"
)

func TestDelayCausesDeduplicatesPreservingOrder(t *testing.T) {
	first := models.DelayCause{CategoryID: 1}
	second := models.DelayCause{CategoryID: 1, DetailedCategoryID: 101}
	third := models.DelayCause{CategoryID: 3}

	train := models.Train{Timetable: []models.TimetableRow{
		{Type: models.RowTypeDeparture, Causes: []models.DelayCause{first, second}},
		{Type: models.RowTypeArrival, Causes: []models.DelayCause{second, first}},
		{Type: models.RowTypeDeparture, Causes: []models.DelayCause{third, first}},
	}}

	causes := DelayCauses(train)
	require.Len(t, causes, 3)
	assert.Equal(t, []models.DelayCause{first, second, third}, causes)
}

func TestDelayCausesEmpty(t *testing.T) {
	assert.Empty(t, DelayCauses(models.Train{}))
	assert.Empty(t, DelayCauses(models.Train{Timetable: []models.TimetableRow{{Type: models.RowTypeDeparture}}}))
}

func testCategories() models.CauseCategories {
	return models.CauseCategories{
		Categories: []models.CauseCategory{
			{ID: 1, Name: "L", PassengerTerm: &models.PassengerTerm{Fi: "onnettomuus", En: "accident", Sv: "olycka"}},
			{ID: 2, Name: "T"},
		},
		DetailedCategories: []models.CauseCategory{
			{ID: 101, Name: "L2", PassengerTerm: &models.PassengerTerm{Fi: "tasoristeysonnettomuus", En: "level crossing accident", Sv: "plankorsningsolycka"}},
			{ID: 102, Name: "T2"},
		},
		ThirdLevelCategories: []models.CauseCategory{
			{ID: 1001, Name: "L3", PassengerTerm: &models.PassengerTerm{Fi: "hirvikolari", En: "collision with an elk", Sv: "älgkollision"}},
			{ID: 1002, Name: "T3"},
		},
	}
}

func TestPassengerFriendlyNameResolvesTopDown(t *testing.T) {
	categories := testCategories()

	tests := []struct {
		name     string
		cause    models.DelayCause
		expected string
	}{
		{
			name:     "third level wins when present",
			cause:    models.DelayCause{CategoryID: 1, DetailedCategoryID: 101, ThirdLevelCategoryID: 1001},
			expected: "collision with an elk",
		},
		{
			name:     "detailed level when no third level",
			cause:    models.DelayCause{CategoryID: 1, DetailedCategoryID: 101},
			expected: "level crossing accident",
		},
		{
			name:     "top level as last resort",
			cause:    models.DelayCause{CategoryID: 1},
			expected: "accident",
		},
		{
			name:     "level without a term falls through to the next",
			cause:    models.DelayCause{CategoryID: 1, DetailedCategoryID: 102, ThirdLevelCategoryID: 1002},
			expected: "accident",
		},
		{
			name:     "no term at any level",
			cause:    models.DelayCause{CategoryID: 2, DetailedCategoryID: 102, ThirdLevelCategoryID: 1002},
			expected: FallbackCauseName,
		},
		{
			name:     "unknown ids never fail",
			cause:    models.DelayCause{CategoryID: 99, DetailedCategoryID: 999, ThirdLevelCategoryID: 9999},
			expected: FallbackCauseName,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, PassengerFriendlyName(categories, tc.cause, models.LocaleEnglish))
		})
	}
}

func TestPassengerFriendlyNameLocales(t *testing.T) {
	categories := testCategories()
	cause := models.DelayCause{CategoryID: 1, ThirdLevelCategoryID: 1001}

	assert.Equal(t, "hirvikolari", PassengerFriendlyName(categories, cause, models.LocaleFinnish))
	assert.Equal(t, "älgkollision", PassengerFriendlyName(categories, cause, models.LocaleSwedish))
	assert.Equal(t, "collision with an elk", PassengerFriendlyName(categories, cause, models.LocaleEnglish))
}
