package codegap

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
)

const referenceHeader = "Country,Region,ISO\n"

const recordsHeader = "Year,App.,Taxon,Class,Order,Family,Genus,Importer,Exporter,Origin,Importer reported quantity\n"

// referenceCSV builds a reference table with one row per code.
func referenceCSV(codes ...string) string {
	var b strings.Builder
	b.WriteString(referenceHeader)
	for i, c := range codes {
		fmt.Fprintf(&b, "Country %d,Region,%s\n", i, c)
	}
	return b.String()
}

// recordRow formats one CITES data row with the given code fields.
func recordRow(importer, exporter, origin string) string {
	return fmt.Sprintf("2016,II,Python regius,Reptilia,Serpentes,Pythonidae,Python,%s,%s,%s,10\n", importer, exporter, origin)
}

func recordsCSV(rows ...string) string {
	return recordsHeader + strings.Join(rows, "")
}

// memSource serves tables from memory.
type memSource struct {
	files  map[string]string
	opened []string
	closed int
}

func (m *memSource) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	body, ok := m.files[name]
	if !ok {
		return nil, fmt.Errorf("open %s: %w", name, os.ErrNotExist)
	}
	m.opened = append(m.opened, name)
	return &trackedReader{Reader: strings.NewReader(body), src: m}, nil
}

type trackedReader struct {
	io.Reader
	src *memSource
}

func (r *trackedReader) Close() error {
	r.src.closed++
	return nil
}
