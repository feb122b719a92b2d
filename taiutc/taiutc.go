// Public domain.

// Package taiutc reads the USNO leap second table, tai-utc.dat.
//
// Each line of tai-utc.dat gives a Julian date and the value of TAI-UTC
// taking effect at that date.  The value holds until the date of the next
// line.  Lines before 1972 also carry a rate term; it is not applied here.
package taiutc

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/soniakeys/meeus/v3/julian"
	"github.com/soniakeys/unit"

	"github.com/soniakeys/timecorr/internal/fixcol"
)

// Column positions of the tai-utc.dat fixed format, as byte offsets
// into the line.
const (
	jdStart     = 17
	jdEnd       = 26
	offsetStart = 38
	offsetEnd   = 48
)

// Entry is a single line of tai-utc.dat.
type Entry struct {
	JD     float64   // Julian date the offset takes effect
	Offset unit.Time // TAI-UTC
}

// Table is a leap second table in chronological order.
type Table struct {
	entries []Entry
}

// OrderError reports an entry with a Julian date earlier than the entry
// before it.
type OrderError struct {
	Index  int // index of the out of order entry
	JD     float64
	PrevJD float64
}

func (e *OrderError) Error() string {
	return fmt.Sprintf("taiutc: entry %d, JD %v precedes JD %v of previous entry",
		e.Index, e.JD, e.PrevJD)
}

// ParseError reports a line that does not have the tai-utc.dat layout.
type ParseError struct {
	Line int // 1-based line number
	Text string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("taiutc: line %d: %v (%q)", e.Line, e.Err, e.Text)
}

func (e *ParseError) Unwrap() error { return e.Err }

// New builds a table from entries.
//
// Entries must be in non-decreasing order of JD.  Otherwise New returns
// an *OrderError.  The slice is copied.
func New(entries []Entry) (*Table, error) {
	for i := 1; i < len(entries); i++ {
		if entries[i].JD < entries[i-1].JD {
			return nil, &OrderError{i, entries[i].JD, entries[i-1].JD}
		}
	}
	return &Table{entries: append([]Entry{}, entries...)}, nil
}

// Parse reads a table in the tai-utc.dat format.
//
// Blank lines are ignored.  Any other line that does not parse is an error,
// as is a line out of chronological order.  The file as distributed by USNO
// is in order.
func Parse(r io.Reader) (*Table, error) {
	var entries []Entry
	err := fixcol.ReadLines(r, func(n int, line string) error {
		if strings.TrimSpace(line) == "" {
			return nil
		}
		e, err := parseLine(line)
		if err != nil {
			return &ParseError{Line: n, Text: line, Err: err}
		}
		entries = append(entries, e)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return New(entries)
}

func parseLine(line string) (e Entry, err error) {
	e.JD, err = strconv.ParseFloat(fixcol.Field(line, jdStart, jdEnd), 64)
	if err != nil {
		return e, fmt.Errorf("invalid JD: %w", err)
	}
	if math.IsNaN(e.JD) {
		return e, fmt.Errorf("invalid JD: NaN")
	}
	off, err := strconv.ParseFloat(fixcol.Field(line, offsetStart, offsetEnd), 64)
	if err != nil {
		return e, fmt.Errorf("invalid TAI-UTC: %w", err)
	}
	e.Offset = unit.Time(off)
	return e, nil
}

// Len returns the number of entries in the table.
func (t *Table) Len() int { return len(t.entries) }

// Entries returns a copy of the entries in file order.
func (t *Table) Entries() []Entry {
	return append([]Entry{}, t.entries...)
}

// Search returns the index of the latest entry with JD <= jd,
// or -1 if jd precedes the first entry.
func (t *Table) Search(jd float64) int {
	for i := len(t.entries) - 1; i >= 0; i-- {
		if t.entries[i].JD <= jd {
			return i
		}
	}
	return -1
}

// Offset returns TAI-UTC in effect at Julian date jd.
//
// Ok is false if jd precedes the first entry of the table.  No correction
// is defined there, which is different from a correction of zero.
func (t *Table) Offset(jd float64) (offset unit.Time, ok bool) {
	i := t.Search(jd)
	if i < 0 {
		return 0, false
	}
	return t.entries[i].Offset, true
}

// OffsetTime returns TAI-UTC in effect at time tm.
func (t *Table) OffsetTime(tm time.Time) (unit.Time, bool) {
	return t.Offset(julian.TimeToJD(tm.UTC()))
}
