package data

import (
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// LoadOptions describes how a CSV file maps onto a Table.
type LoadOptions struct {
	// Index is the column holding row names (e.g. "country").
	Index string
	// Drop lists non-numeric columns to discard (e.g. "continent").
	// Names not present in the file are ignored.
	Drop []string
	// Delimiter defaults to ','.
	Delimiter rune
}

// DefaultLoadOptions returns the options matching the gapminder GDP files.
func DefaultLoadOptions() LoadOptions {
	return LoadOptions{
		Index:     "country",
		Drop:      []string{"continent"},
		Delimiter: ',',
	}
}

// LoadCSVFile opens path and loads it with LoadCSV.
func LoadCSVFile(path string, opts LoadOptions) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return LoadCSV(f, opts)
}

// LoadCSV reads a CSV with a header row into a Table using a gota dataframe.
func LoadCSV(r io.Reader, opts LoadOptions) (*Table, error) {
	if opts.Index == "" {
		return nil, fmt.Errorf("index column is required")
	}
	if opts.Delimiter == 0 {
		opts.Delimiter = ','
	}

	df := dataframe.ReadCSV(r,
		dataframe.HasHeader(true),
		dataframe.WithDelimiter(opts.Delimiter),
		dataframe.WithTypes(map[string]series.Type{opts.Index: series.String}),
	)
	if df.Err != nil {
		return nil, fmt.Errorf("failed to read csv: %w", df.Err)
	}

	return fromDataFrame(df, opts)
}

func fromDataFrame(df dataframe.DataFrame, opts LoadOptions) (*Table, error) {
	names := df.Names()
	if !slices.Contains(names, opts.Index) {
		return nil, fmt.Errorf("index column %q not found", opts.Index)
	}

	var drop []string
	for _, name := range opts.Drop {
		if slices.Contains(names, name) && name != opts.Index {
			drop = append(drop, name)
		}
	}
	if len(drop) > 0 {
		df = df.Drop(drop)
		if df.Err != nil {
			return nil, fmt.Errorf("failed to drop columns: %w", df.Err)
		}
	}

	index := df.Col(opts.Index).Records()

	var columns []string
	var cols [][]float64
	for _, name := range df.Names() {
		if name == opts.Index {
			continue
		}
		col := df.Col(name)
		if col.Type() == series.String {
			return nil, fmt.Errorf("column %q is not numeric", name)
		}
		columns = append(columns, name)
		cols = append(cols, col.Float())
	}

	values := make([][]float64, len(index))
	for i := range index {
		row := make([]float64, len(columns))
		for j := range columns {
			row[j] = cols[j][i]
		}
		values[i] = row
	}

	return NewTable(opts.Index, index, columns, values)
}
