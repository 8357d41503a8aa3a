package shoppinglist

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

var sample = []Item{
	{Name: "flour", MeasurementUnit: "g", Amount: 500},
	{Name: "milk", MeasurementUnit: "ml", Amount: 250},
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		raw     string
		want    Format
		wantErr bool
	}{
		{"", FormatTXT, false},
		{"TXT", FormatTXT, false},
		{"csv", FormatCSV, false},
		{" xlsx ", FormatXLSX, false},
		{"pdf", "", true},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.raw)
		if tt.wantErr {
			assert.ErrorIs(t, err, ErrUnknownFormat, tt.raw)
			continue
		}
		require.NoError(t, err, tt.raw)
		assert.Equal(t, tt.want, got, tt.raw)
	}
}

func TestRender_TXT(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, sample, FormatTXT))
	assert.Equal(t, "flour (g) - 500\nmilk (ml) - 250\n", buf.String())
}

func TestRender_TXTEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, []Item{}, FormatTXT))
	assert.Empty(t, buf.String())
}

func TestRender_CSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, sample, FormatCSV))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{"name", "measurement_unit", "amount"},
		{"flour", "g", "500"},
		{"milk", "ml", "250"},
	}, records)
}

func TestRender_XLSX(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, sample, FormatXLSX))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(sheetName)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"Ingredient", "Unit", "Amount"}, rows[0])
	assert.Equal(t, []string{"flour", "g", "500"}, rows[1])
}
