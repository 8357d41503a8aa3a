package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"foodgram/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectFormat(t *testing.T) {
	f, err := detectFormat("", "data/ingredients.CSV")
	require.NoError(t, err)
	assert.Equal(t, "csv", f)

	f, err = detectFormat("json", "data/list.txt")
	require.NoError(t, err)
	assert.Equal(t, "json", f)

	_, err = detectFormat("", "data/list.txt")
	assert.ErrorIs(t, err, errUnknownFormat)
}

func TestParseJSON(t *testing.T) {
	in := `[
		{"name": "flour", "measurement_unit": "g"},
		{"name": " milk ", "measurement_unit": "ml"},
		{"name": "flour", "measurement_unit": "g"}
	]`

	items, err := parseIngredients(strings.NewReader(in), "json")

	require.NoError(t, err)
	assert.Equal(t, []domain.Ingredient{
		{Name: "flour", MeasurementUnit: "g"},
		{Name: "milk", MeasurementUnit: "ml"},
	}, items)
}

func TestParseCSV(t *testing.T) {
	in := "name,measurement_unit\nflour,g\nsalt, pinch\n"

	items, err := parseIngredients(strings.NewReader(in), "csv")

	require.NoError(t, err)
	assert.Equal(t, []domain.Ingredient{
		{Name: "flour", MeasurementUnit: "g"},
		{Name: "salt", MeasurementUnit: "pinch"},
	}, items)
}

func TestParseCSV_WithoutHeader(t *testing.T) {
	items, err := parseIngredients(strings.NewReader("sugar,g\n"), "csv")
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestParse_RejectsBlankFields(t *testing.T) {
	_, err := parseIngredients(strings.NewReader(`[{"name": "", "measurement_unit": "g"}]`), "json")
	assert.Error(t, err)

	_, err = parseIngredients(strings.NewReader("flour\n"), "csv")
	assert.Error(t, err)
}

func TestReadIngredients(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ingredients.csv")
	require.NoError(t, os.WriteFile(path, []byte("flour,g\nmilk,ml\n"), 0o644))

	items, err := readIngredients(path, "csv")
	require.NoError(t, err)
	assert.Len(t, items, 2)

	require.NoError(t, os.Remove(path))
	_, err = readIngredients(path, "csv")
	assert.Error(t, err)
}
