package codegap

import (
	"fmt"
	"strings"
)

// Default 0-based column positions.
//
// The reference table (country_region_mapping.csv) carries the ISO code in
// its third column. The records table (CITIES_data.csv) carries the
// importer, exporter and origin codes in columns 8 to 10.
const (
	ReferenceColumn = 2
	ImporterColumn  = 7
	ExporterColumn  = 8
	OriginColumn    = 9
)

// Layout locates the code fields of both tables. A non-empty *Name field
// takes precedence over the index and is looked up in the header row,
// ignoring case and surrounding whitespace.
type Layout struct {
	Reference int `mapstructure:"reference" default:"2"`
	Importer  int `mapstructure:"importer" default:"7"`
	Exporter  int `mapstructure:"exporter" default:"8"`
	Origin    int `mapstructure:"origin" default:"9"`

	ReferenceName string `mapstructure:"reference_name" default:""`
	ImporterName  string `mapstructure:"importer_name" default:""`
	ExporterName  string `mapstructure:"exporter_name" default:""`
	OriginName    string `mapstructure:"origin_name" default:""`
}

// DefaultLayout returns the positional layout of the CITES tables.
func DefaultLayout() Layout {
	return Layout{
		Reference: ReferenceColumn,
		Importer:  ImporterColumn,
		Exporter:  ExporterColumn,
		Origin:    OriginColumn,
	}
}

// RecordColumns are the resolved positions of the three record code fields.
type RecordColumns struct {
	Importer int
	Exporter int
	Origin   int
}

// Width is the minimum field count a row needs for these columns.
func (c RecordColumns) Width() int {
	return max(c.Importer, c.Exporter, c.Origin) + 1
}

// ResolveReference returns the reference code column for the given header.
func (l Layout) ResolveReference(header []string) (int, error) {
	return resolveColumn(header, l.ReferenceName, l.Reference)
}

// ResolveRecords returns the record code columns for the given header.
func (l Layout) ResolveRecords(header []string) (RecordColumns, error) {
	var (
		cols RecordColumns
		err  error
	)
	if cols.Importer, err = resolveColumn(header, l.ImporterName, l.Importer); err != nil {
		return RecordColumns{}, err
	}
	if cols.Exporter, err = resolveColumn(header, l.ExporterName, l.Exporter); err != nil {
		return RecordColumns{}, err
	}
	if cols.Origin, err = resolveColumn(header, l.OriginName, l.Origin); err != nil {
		return RecordColumns{}, err
	}
	return cols, nil
}

func resolveColumn(header []string, name string, index int) (int, error) {
	if name == "" {
		if index < 0 {
			return 0, fmt.Errorf("invalid column index %d", index)
		}
		return index, nil
	}
	for i, h := range header {
		if strings.EqualFold(strings.TrimSpace(h), name) {
			return i, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrColumnNotFound, name)
}

// Record is one data row of the records table, reduced to its code fields.
type Record struct {
	// Line is the 1-based line the row starts on.
	Line     int
	Importer string
	Exporter string
	Origin   string
}

// Role names the field a code was read from.
type Role string

const (
	RoleImporter Role = "importer"
	RoleExporter Role = "exporter"
	RoleOrigin   Role = "origin"
)

// RoleCode pairs a code with the field it came from.
type RoleCode struct {
	Role Role
	Code string
}

// Codes returns the record's codes in importer, exporter, origin order.
func (r Record) Codes() []RoleCode {
	return []RoleCode{
		{RoleImporter, r.Importer},
		{RoleExporter, r.Exporter},
		{RoleOrigin, r.Origin},
	}
}

// ParseRecord builds a Record from a raw row, trimming each code.
// A row narrower than cols fails with a *RowError.
func ParseRecord(line int, row []string, cols RecordColumns) (Record, error) {
	if want := cols.Width(); len(row) < want {
		return Record{}, &RowError{Line: line, Want: want, Got: len(row)}
	}
	return Record{
		Line:     line,
		Importer: strings.TrimSpace(row[cols.Importer]),
		Exporter: strings.TrimSpace(row[cols.Exporter]),
		Origin:   strings.TrimSpace(row[cols.Origin]),
	}, nil
}
