// Package dataset loads the recipe and nutrition reference data from
// CSV files. Column names vary between dataset exports, so each field
// is resolved through a list of accepted aliases. A missing or
// unreadable file degrades to an empty dataset instead of failing the
// application.
package dataset

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"
	"strings"
)

// header maps lowercase column names to their index
type header map[string]int

func readCSV(path string) (header, [][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	first, err := reader.Read()
	if err != nil {
		return nil, nil, err
	}

	head := make(header, len(first))
	for i, col := range first {
		head[strings.ToLower(strings.TrimSpace(col))] = i
	}

	var rows [][]string
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// Tolerate individual bad lines, never drop the whole table
			continue
		}
		rows = append(rows, row)
	}

	return head, rows, nil
}

// field returns the first present alias value for a row, trimmed
func (h header) field(row []string, aliases ...string) (string, bool) {
	for _, alias := range aliases {
		idx, ok := h[alias]
		if !ok || idx >= len(row) {
			continue
		}
		value := strings.TrimSpace(row[idx])
		if value != "" {
			return value, true
		}
	}
	return "", false
}

// floatField parses a numeric column, defaulting to 0 on absence or
// malformed content
func (h header) floatField(row []string, aliases ...string) (float64, bool) {
	raw, ok := h.field(row, aliases...)
	if !ok {
		return 0, false
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil || value != value { // reject NaN
		return 0, false
	}
	return value, true
}

// splitList splits a delimiter-separated ingredient cell. Commas,
// semicolons and pipes all occur in the wild.
func splitList(raw string) []string {
	raw = strings.NewReplacer(";", ",", "|", ",").Replace(raw)
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
