package main

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"foodgram/internal/domain"
)

var errUnknownFormat = errors.New("unknown file format, use json or csv")

type ingredientRecord struct {
	Name            string `json:"name"`
	MeasurementUnit string `json:"measurement_unit"`
}

// detectFormat picks the parser from the explicit flag or the file extension.
func detectFormat(flagValue, path string) (string, error) {
	format := strings.ToLower(strings.TrimSpace(flagValue))
	if format == "" {
		format = strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	}
	switch format {
	case "json", "csv":
		return format, nil
	}
	return "", errUnknownFormat
}

// readIngredients parses the file at path and closes it before returning.
func readIngredients(path, format string) ([]domain.Ingredient, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open ingredients file: %w", err)
	}
	items, err := parseIngredients(f, format)
	if cerr := f.Close(); err == nil && cerr != nil {
		return nil, fmt.Errorf("close ingredients file: %w", cerr)
	}
	return items, err
}

func parseIngredients(r io.Reader, format string) ([]domain.Ingredient, error) {
	switch format {
	case "json":
		return parseJSON(r)
	case "csv":
		return parseCSV(r)
	}
	return nil, errUnknownFormat
}

// parseJSON reads [{"name": ..., "measurement_unit": ...}].
func parseJSON(r io.Reader) ([]domain.Ingredient, error) {
	var records []ingredientRecord
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, fmt.Errorf("decode json: %w", err)
	}

	items := make([]domain.Ingredient, 0, len(records))
	for i, rec := range records {
		item, err := newIngredient(rec.Name, rec.MeasurementUnit)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i+1, err)
		}
		items = append(items, item)
	}
	return dedupe(items), nil
}

// parseCSV reads name,unit rows. A leading header row is skipped.
func parseCSV(r io.Reader) ([]domain.Ingredient, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = 2
	cr.TrimLeadingSpace = true

	var items []domain.Ingredient
	for line := 1; ; line++ {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv: %w", err)
		}
		if line == 1 && strings.EqualFold(strings.TrimSpace(row[0]), "name") {
			continue
		}
		item, err := newIngredient(row[0], row[1])
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		items = append(items, item)
	}
	return dedupe(items), nil
}

func newIngredient(name, unit string) (domain.Ingredient, error) {
	name = strings.TrimSpace(name)
	unit = strings.TrimSpace(unit)
	if name == "" || unit == "" {
		return domain.Ingredient{}, errors.New("name and measurement unit are required")
	}
	return domain.Ingredient{Name: name, MeasurementUnit: unit}, nil
}

// dedupe drops repeated (name, unit) pairs, keeping the first.
func dedupe(items []domain.Ingredient) []domain.Ingredient {
	seen := make(map[[2]string]bool, len(items))
	out := items[:0]
	for _, it := range items {
		key := [2]string{it.Name, it.MeasurementUnit}
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, it)
	}
	return out
}
