package shoppinglist

import (
	"testing"

	"foodgram/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestAggregate(t *testing.T) {
	rows := []domain.IngredientAmount{
		{Name: "sugar", MeasurementUnit: "g", Amount: 50},
		{Name: "flour", MeasurementUnit: "g", Amount: 200},
		{Name: "flour", MeasurementUnit: "g", Amount: 300},
		{Name: "flour", MeasurementUnit: "cup", Amount: 1},
	}

	items := Aggregate(rows)

	assert.Equal(t, []Item{
		{Name: "flour", MeasurementUnit: "cup", Amount: 1},
		{Name: "flour", MeasurementUnit: "g", Amount: 500},
		{Name: "sugar", MeasurementUnit: "g", Amount: 50},
	}, items)
}

func TestAggregate_Empty(t *testing.T) {
	items := Aggregate(nil)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}
