package codegap

import (
	"bufio"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
)

// contextCheckInterval is how often, in rows, the readers check ctx.
const contextCheckInterval = 100

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// lineCounter counts the lines read through it.
type lineCounter struct {
	r        io.Reader
	newlines int
	last     byte
	read     bool
}

func (l *lineCounter) Read(p []byte) (int, error) {
	n, err := l.r.Read(p)
	if n > 0 {
		l.newlines += strings.Count(string(p[:n]), "\n")
		l.last = p[n-1]
		l.read = true
	}
	return n, err
}

// lines returns the number of lines seen so far, counting an unterminated
// last line.
func (l *lineCounter) lines() int {
	if l.read && l.last != '\n' {
		return l.newlines + 1
	}
	return l.newlines
}

// table reads a comma-delimited table whose first row is a header.
//
// encoding/csv drops empty lines. table reports each one as a row with no
// fields so callers fail on it like on any other short row.
type table struct {
	r      *csv.Reader
	src    *lineCounter
	header []string
	rows   int
	// end is the line the previous record ended on.
	end int

	pending     []string
	pendingLine int
}

func openTable(src io.Reader) (*table, error) {
	lc := &lineCounter{r: src}
	br := bufio.NewReader(lc)
	if b, err := br.Peek(len(utf8BOM)); err == nil && string(b) == string(utf8BOM) {
		_, _ = br.Discard(len(utf8BOM))
	}

	r := csv.NewReader(br)
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	header, err := r.Read()
	if errors.Is(err, io.EOF) {
		return nil, ErrMissingHeader
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	t := &table{r: r, src: lc, header: header}
	t.end = t.lastLine(header)
	return t, nil
}

// lastLine returns the line the record just read ends on. Quoted fields may
// span lines.
func (t *table) lastLine(row []string) int {
	last := len(row) - 1
	line, _ := t.r.FieldPos(last)
	return line + strings.Count(row[last], "\n")
}

// next returns the next data row and the line it starts on. It returns
// io.EOF after the last row.
func (t *table) next(ctx context.Context) ([]string, int, error) {
	if t.pending != nil {
		row, line := t.pending, t.pendingLine
		t.pending = nil
		t.rows++
		return row, line, nil
	}

	if t.rows%contextCheckInterval == 0 {
		if err := ctx.Err(); err != nil {
			return nil, 0, err
		}
	}
	row, err := t.r.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			if total := t.src.lines(); total > t.end {
				blank := t.end + 1
				t.end = total
				t.rows++
				return []string{}, blank, nil
			}
			return nil, 0, io.EOF
		}
		return nil, 0, fmt.Errorf("read row %d: %w", t.rows+1, err)
	}

	line, _ := t.r.FieldPos(0)
	end := t.lastLine(row)
	if line > t.end+1 {
		blank := t.end + 1
		t.pending, t.pendingLine = row, line
		t.end = end
		t.rows++
		return []string{}, blank, nil
	}
	t.end = end
	t.rows++
	return row, line, nil
}
