/*
Copyright © 2025 Skaelvox authors
SPDX-License-Identifier: Apache-2.0
*/
package serializer

import (
	"encoding/csv"
	"fmt"
	"reflect"
	"sort"
)

// serializeCSV writes data as CSV. Slices and arrays become one row per
// element; anything else becomes a single row. Each element is flattened
// with the same key scheme as the table format, and the header is the
// sorted union of keys across all rows.
func (w *Writer) serializeCSV(data any) error {
	rows := flattenRows(data)
	if len(rows) == 0 {
		return nil
	}

	headerSet := make(map[string]bool)
	for _, row := range rows {
		for k := range row {
			headerSet[k] = true
		}
	}
	header := make([]string, 0, len(headerSet))
	for k := range headerSet {
		header = append(header, k)
	}
	sort.Strings(header)

	cw := csv.NewWriter(w.output)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	record := make([]string, len(header))
	for _, row := range rows {
		for i, col := range header {
			if v, ok := row[col]; ok && v != nil {
				record[i] = fmt.Sprintf("%v", v)
			} else {
				record[i] = ""
			}
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV: %w", err)
	}
	return nil
}

func flattenRows(data any) []map[string]any {
	val := reflect.ValueOf(data)
	for val.Kind() == reflect.Pointer || val.Kind() == reflect.Interface {
		if val.IsNil() {
			return nil
		}
		val = val.Elem()
	}

	if val.Kind() == reflect.Slice || val.Kind() == reflect.Array {
		rows := make([]map[string]any, 0, val.Len())
		for i := 0; i < val.Len(); i++ {
			row := make(map[string]any)
			flattenValue(row, val.Index(i), "")
			rows = append(rows, row)
		}
		return rows
	}

	row := make(map[string]any)
	flattenValue(row, val, "")
	if len(row) == 0 {
		return nil
	}
	return []map[string]any{row}
}
