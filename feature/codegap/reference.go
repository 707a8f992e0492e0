package codegap

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"strings"

	"codegap/core/database"
	"codegap/core/dataset"

	"gorm.io/gorm"
)

// LoadReference reads a reference table and returns the trimmed codes of its
// reference column. The header row is skipped. A row too short to hold the
// column fails with a *RowError.
func LoadReference(ctx context.Context, r io.Reader, layout Layout) (CodeSet, error) {
	t, err := openTable(r)
	if err != nil {
		return nil, err
	}
	col, err := layout.ResolveReference(t.header)
	if err != nil {
		return nil, err
	}

	codes := NewCodeSet()
	for {
		row, line, err := t.next(ctx)
		if errors.Is(err, io.EOF) {
			return codes, nil
		}
		if err != nil {
			return nil, err
		}
		if len(row) <= col {
			return nil, &RowError{Line: line, Want: col + 1, Got: len(row)}
		}
		codes.Add(strings.TrimSpace(row[col]))
	}
}

// ReferenceSource yields the Reference Code Set.
type ReferenceSource interface {
	Reference(ctx context.Context) (CodeSet, error)
}

// NewReferenceSource builds the source cfg.Reference selects. db is only
// needed for the database source.
func NewReferenceSource(cfg Config, source dataset.Source, db *gorm.DB) (ReferenceSource, error) {
	switch cfg.Reference {
	case ReferenceFile, "":
		return NewFileReference(source, cfg.ReferencePath, cfg.Columns), nil
	case ReferenceDatabase:
		if db == nil {
			return nil, errors.New("database reference source requires a database connection")
		}
		return NewDBReference(db, cfg.ReferenceTable, cfg.ReferenceColumn), nil
	default:
		return nil, fmt.Errorf("unknown reference source %q", cfg.Reference)
	}
}

// FileReference loads reference codes from a table in a dataset source.
type FileReference struct {
	source dataset.Source
	path   string
	layout Layout
}

func NewFileReference(source dataset.Source, path string, layout Layout) *FileReference {
	return &FileReference{source: source, path: path, layout: layout}
}

func (f *FileReference) Reference(ctx context.Context) (CodeSet, error) {
	rc, err := f.source.Open(ctx, f.path)
	if err != nil {
		return nil, fmt.Errorf("open reference dataset: %w", err)
	}
	defer rc.Close()

	codes, err := LoadReference(ctx, rc, f.layout)
	if err != nil {
		return nil, fmt.Errorf("load reference dataset %s: %w", f.path, err)
	}
	return codes, nil
}

// DBReference loads reference codes from one column of a SQL table.
// NULL values load as the blank code.
type DBReference struct {
	db     *gorm.DB
	table  string
	column string
}

func NewDBReference(db *gorm.DB, table, column string) *DBReference {
	return &DBReference{db: db, table: table, column: column}
}

func (d *DBReference) Reference(ctx context.Context) (CodeSet, error) {
	ok, err := database.HasColumn(ctx, d.db, d.table, d.column)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: %s.%s", ErrColumnNotFound, d.table, d.column)
	}

	rows, err := d.db.WithContext(ctx).Table(d.table).Select(d.column).Rows()
	if err != nil {
		return nil, fmt.Errorf("query reference codes from %s: %w", d.table, err)
	}
	defer rows.Close()

	codes := NewCodeSet()
	for rows.Next() {
		var v sql.NullString
		if err := rows.Scan(&v); err != nil {
			return nil, fmt.Errorf("scan reference code: %w", err)
		}
		codes.Add(strings.TrimSpace(v.String))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("query reference codes from %s: %w", d.table, err)
	}
	return codes, nil
}
