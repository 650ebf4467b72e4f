package models

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseTrainCategory(t *testing.T) {
	longDistance, err := ParseTrainCategory("Long-distance")
	assert.NoError(t, err)
	assert.Equal(t, CategoryLongDistance, longDistance)

	commuter, err := ParseTrainCategory("Commuter")
	assert.NoError(t, err)
	assert.Equal(t, CategoryCommuter, commuter)
}

func TestParseTrainCategorySkippable(t *testing.T) {
	for _, value := range []string{"Cargo", "Locomotive", "Shunting", "On-track machines"} {
		_, err := ParseTrainCategory(value)
		assert.Error(t, err)

		var unknown ErrUnknownTrainCategory
		assert.True(t, errors.As(err, &unknown), "unknown category must be the skippable error kind")
		assert.Equal(t, value, unknown.Value)
	}
}

func TestTrainName(t *testing.T) {
	intercity := Train{Number: 59, Type: "IC", Category: CategoryLongDistance}
	assert.Equal(t, "IC 59", intercity.Name())

	commuter := Train{Number: 8551, Type: "HL", Category: CategoryCommuter, CommuterLineID: "P"}
	assert.Equal(t, "P", commuter.Name())
}

func TestDepartureDateParsed(t *testing.T) {
	train := Train{DepartureDate: "2024-03-15"}
	parsed, err := train.DepartureDateParsed()
	assert.NoError(t, err)
	assert.Equal(t, 2024, parsed.Year())
	assert.Equal(t, 15, parsed.Day())

	_, err = Train{DepartureDate: "soon"}.DepartureDateParsed()
	assert.Error(t, err)
}
