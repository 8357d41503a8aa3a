package shoppinglist

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

type Format string

const (
	FormatTXT  Format = "txt"
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
)

const sheetName = "Shopping list"

// ParseFormat maps the format query value; empty means txt.
func ParseFormat(raw string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(raw))) {
	case "", FormatTXT:
		return FormatTXT, nil
	case FormatCSV:
		return FormatCSV, nil
	case FormatXLSX:
		return FormatXLSX, nil
	}
	return "", ErrUnknownFormat
}

func (f Format) ContentType() string {
	switch f {
	case FormatCSV:
		return "text/csv; charset=utf-8"
	case FormatXLSX:
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	}
	return "text/plain; charset=utf-8"
}

func (f Format) Filename() string {
	return "shopping_list." + string(f)
}

// Render writes the list as a downloadable document.
func Render(w io.Writer, items []Item, format Format) error {
	switch format {
	case FormatCSV:
		return renderCSV(w, items)
	case FormatXLSX:
		return renderXLSX(w, items)
	case FormatTXT:
		return renderTXT(w, items)
	}
	return ErrUnknownFormat
}

func renderTXT(w io.Writer, items []Item) error {
	for _, it := range items {
		if _, err := fmt.Fprintf(w, "%s (%s) - %d\n", it.Name, it.MeasurementUnit, it.Amount); err != nil {
			return err
		}
	}
	return nil
}

func renderCSV(w io.Writer, items []Item) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"name", "measurement_unit", "amount"}); err != nil {
		return err
	}
	for _, it := range items {
		if err := cw.Write([]string{it.Name, it.MeasurementUnit, strconv.Itoa(it.Amount)}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func renderXLSX(w io.Writer, items []Item) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return err
	}

	headers := []string{"Ingredient", "Unit", "Amount"}
	for colIdx, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(colIdx+1, 1)
		if err := f.SetCellValue(sheetName, cell, header); err != nil {
			return err
		}
	}
	if style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}}); err == nil {
		_ = f.SetCellStyle(sheetName, "A1", "C1", style)
	}

	for i, it := range items {
		row := i + 2
		values := []any{it.Name, it.MeasurementUnit, it.Amount}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			if err := f.SetCellValue(sheetName, cell, v); err != nil {
				return err
			}
		}
	}

	_, err := f.WriteTo(w)
	return err
}
