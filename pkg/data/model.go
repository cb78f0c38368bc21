package data

import (
	"errors"
	"fmt"
	"math"
)

// ErrRowNotFound indicates a requested row name is not in the table.
var ErrRowNotFound = errors.New("row not found")

// RowNotFoundError reports which row name was missing.
type RowNotFoundError struct {
	Name string
}

func (e *RowNotFoundError) Error() string {
	return fmt.Sprintf("%s: %q", ErrRowNotFound, e.Name)
}

func (e *RowNotFoundError) Unwrap() error {
	return ErrRowNotFound
}

// Table is a numeric dataset with rows keyed by an entity name and columns
// keyed by their header label. Missing cells are NaN.
type Table struct {
	IndexName string
	index     []string
	columns   []string
	values    [][]float64
	lookup    map[string]int
}

// NewTable builds a table. Every row must have one value per column and row
// names must be unique.
func NewTable(indexName string, index, columns []string, values [][]float64) (*Table, error) {
	if len(index) != len(values) {
		return nil, fmt.Errorf("table has %d row names but %d rows", len(index), len(values))
	}

	lookup := make(map[string]int, len(index))
	for i, name := range index {
		if _, dup := lookup[name]; dup {
			return nil, fmt.Errorf("duplicate row name %q", name)
		}
		if len(values[i]) != len(columns) {
			return nil, fmt.Errorf("row %q has %d values, want %d", name, len(values[i]), len(columns))
		}
		lookup[name] = i
	}

	return &Table{
		IndexName: indexName,
		index:     append([]string(nil), index...),
		columns:   append([]string(nil), columns...),
		values:    values,
		lookup:    lookup,
	}, nil
}

// Index returns the row names in table order.
func (t *Table) Index() []string {
	return append([]string(nil), t.index...)
}

// Columns returns the column labels in table order.
func (t *Table) Columns() []string {
	return append([]string(nil), t.columns...)
}

func (t *Table) Len() int {
	return len(t.index)
}

// Row returns a copy of the named row's values in column order.
func (t *Table) Row(name string) ([]float64, error) {
	i, ok := t.lookup[name]
	if !ok {
		return nil, &RowNotFoundError{Name: name}
	}
	return append([]float64(nil), t.values[i]...), nil
}

// Rows returns the named rows in the requested order, failing on the first
// missing name.
func (t *Table) Rows(names []string) ([][]float64, error) {
	rows := make([][]float64, 0, len(names))
	for _, name := range names {
		row, err := t.Row(name)
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// Last returns the last non-NaN value of the named row.
func (t *Table) Last(name string) (float64, bool) {
	i, ok := t.lookup[name]
	if !ok {
		return 0, false
	}
	row := t.values[i]
	for j := len(row) - 1; j >= 0; j-- {
		if !math.IsNaN(row[j]) {
			return row[j], true
		}
	}
	return 0, false
}
