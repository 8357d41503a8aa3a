package shoppinglist

import (
	"sort"

	"foodgram/internal/domain"
)

// Item is one line of the shopping list.
type Item struct {
	Name            string `json:"name"`
	MeasurementUnit string `json:"measurement_unit"`
	Amount          int    `json:"amount"`
}

type itemKey struct {
	name string
	unit string
}

// Aggregate sums amounts per (name, unit) and returns the lines sorted by
// name, then unit. The same name with different units stays separate.
func Aggregate(rows []domain.IngredientAmount) []Item {
	totals := make(map[itemKey]int, len(rows))
	for _, r := range rows {
		totals[itemKey{name: r.Name, unit: r.MeasurementUnit}] += r.Amount
	}

	items := make([]Item, 0, len(totals))
	for k, amount := range totals {
		items = append(items, Item{Name: k.name, MeasurementUnit: k.unit, Amount: amount})
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].Name != items[j].Name {
			return items[i].Name < items[j].Name
		}
		return items[i].MeasurementUnit < items[j].MeasurementUnit
	})
	return items
}
