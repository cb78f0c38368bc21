package data

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"math"
	"os"
	"path/filepath"
	"slices"
	"strings"

	_ "github.com/marcboeker/go-duckdb/v2"
)

// InitDuckDB opens a DuckDB database. An empty path opens an in-memory one;
// otherwise missing parent directories are created.
func InitDuckDB(path string) (*sql.DB, error) {
	if path != "" {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	db, err := sql.Open("duckdb", path)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}

// Repository loads CSV files through DuckDB's csv reader and exposes
// imported relations as Tables.
type Repository struct {
	db *sql.DB
}

var duckDB *sql.DB

// NewDuckDBRepository returns a repository backed by the shared in-memory
// database.
func NewDuckDBRepository() *Repository {
	if duckDB == nil {
		db, err := InitDuckDB("")
		if err != nil {
			log.Fatal(err)
		}
		duckDB = db
	}

	return &Repository{db: duckDB}
}

// NewRepository wraps an already opened database.
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Close() error {
	return r.db.Close()
}

// ImportCSV creates (or replaces) relation name from the CSV at path. A zero
// delim means ','.
func (r *Repository) ImportCSV(ctx context.Context, path, name string, delim rune) error {
	if _, err := os.Stat(path); err != nil {
		return err
	}
	if delim == 0 {
		delim = ','
	}

	query := fmt.Sprintf(
		"CREATE OR REPLACE TABLE %s AS SELECT * FROM read_csv_auto(%s, header = true, delim = %s)",
		quoteIdent(name), quoteLiteral(path), quoteLiteral(string(delim)),
	)
	if _, err := r.db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("failed to import %s: %w", path, err)
	}
	return nil
}

// Table reads relation name into a Table. Columns listed in opts.Drop are
// skipped; every remaining non-index column must be numeric.
func (r *Repository) Table(ctx context.Context, name string, opts LoadOptions) (*Table, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT * FROM "+quoteIdent(name))
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", name, err)
	}
	defer rows.Close()

	names, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	indexPos := slices.Index(names, opts.Index)
	if indexPos < 0 {
		return nil, fmt.Errorf("index column %q not found", opts.Index)
	}

	var columns []string
	var keep []int
	for i, col := range names {
		if i == indexPos || slices.Contains(opts.Drop, col) {
			continue
		}
		columns = append(columns, col)
		keep = append(keep, i)
	}

	var index []string
	var values [][]float64
	raw := make([]any, len(names))
	ptrs := make([]any, len(names))
	for i := range raw {
		ptrs[i] = &raw[i]
	}

	for rows.Next() {
		if err := rows.Scan(ptrs...); err != nil {
			return nil, err
		}

		index = append(index, fmt.Sprint(raw[indexPos]))
		row := make([]float64, len(keep))
		for j, pos := range keep {
			v, err := toFloat(raw[pos])
			if err != nil {
				return nil, fmt.Errorf("column %q: %w", names[pos], err)
			}
			row[j] = v
		}
		values = append(values, row)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return NewTable(opts.Index, index, columns, values)
}

// LoadCSVFile imports path under a scratch relation and reads it back.
func (r *Repository) LoadCSVFile(ctx context.Context, path string, opts LoadOptions) (*Table, error) {
	const relation = "gdp"
	if err := r.ImportCSV(ctx, path, relation, opts.Delimiter); err != nil {
		return nil, err
	}
	return r.Table(ctx, relation, opts)
}

func toFloat(v any) (float64, error) {
	switch n := v.(type) {
	case nil:
		return math.NaN(), nil
	case float64:
		return n, nil
	case float32:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case int32:
		return float64(n), nil
	case int16:
		return float64(n), nil
	case int8:
		return float64(n), nil
	case uint64:
		return float64(n), nil
	case uint32:
		return float64(n), nil
	default:
		return 0, fmt.Errorf("value %v (%T) is not numeric", v, v)
	}
}

func quoteIdent(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

func quoteLiteral(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}
