package codegap

import (
	"context"
	"errors"
	"io"
	"slices"
	"strings"
)

// Gap describes one missing code.
type Gap struct {
	Code string `json:"code"`
	// Count is the number of fields holding the code.
	Count int `json:"count"`
	// Roles lists the fields the code appeared in, in first-seen order.
	Roles []Role `json:"roles"`
	// FirstLine is the line of the first row referencing the code.
	FirstLine int `json:"first_line"`
}

// Report is the outcome of a gap check.
type Report struct {
	Reference      CodeSet `json:"reference"`
	ReferenceCount int     `json:"reference_count"`
	Missing        CodeSet `json:"missing"`
	// Rows is the number of data rows scanned.
	Rows int `json:"rows_scanned"`
	// Gaps holds one entry per missing code, sorted by code.
	Gaps []Gap `json:"gaps"`
}

// Scan reads a records table and collects every importer, exporter or origin
// code absent from reference. Blank codes are codes like any other. A short
// row fails with a *RowError.
func Scan(ctx context.Context, r io.Reader, reference CodeSet, layout Layout) (*Report, error) {
	t, err := openTable(r)
	if err != nil {
		return nil, err
	}
	cols, err := layout.ResolveRecords(t.header)
	if err != nil {
		return nil, err
	}

	missing := NewCodeSet()
	gaps := make(map[string]*Gap)
	for {
		row, line, err := t.next(ctx)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}

		rec, err := ParseRecord(line, row, cols)
		if err != nil {
			return nil, err
		}
		for _, rc := range rec.Codes() {
			if reference.Has(rc.Code) {
				continue
			}
			missing.Add(rc.Code)
			g, ok := gaps[rc.Code]
			if !ok {
				g = &Gap{Code: rc.Code, FirstLine: line}
				gaps[rc.Code] = g
			}
			g.Count++
			if !slices.Contains(g.Roles, rc.Role) {
				g.Roles = append(g.Roles, rc.Role)
			}
		}
	}

	report := &Report{
		Reference:      reference,
		ReferenceCount: reference.Len(),
		Missing:        missing,
		Rows:           t.rows,
		Gaps:           make([]Gap, 0, len(gaps)),
	}
	for _, g := range gaps {
		report.Gaps = append(report.Gaps, *g)
	}
	slices.SortFunc(report.Gaps, func(a, b Gap) int {
		return strings.Compare(a.Code, b.Code)
	})
	return report, nil
}
