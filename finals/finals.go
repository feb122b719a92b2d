// Public domain.

// Package finals reads UT1-UTC from the IERS finals.daily.extended file as
// published by USNO.
//
// The file is fixed format, one line per day.  Only the modified Julian date
// and the UT1-UTC columns are read.  The feed as published interleaves
// lines without UT1-UTC values; such lines, and any other lines that do not
// parse, are quietly ignored.
package finals

import (
	"io"
	"strconv"
	"time"

	"github.com/soniakeys/meeus/v3/julian"
	"github.com/soniakeys/unit"

	"github.com/soniakeys/timecorr/internal/fixcol"
)

// Column positions of the finals fixed format, as byte offsets into the line.
const (
	mjdStart = 7
	mjdEnd   = 12
	ut1Flag  = 57
	ut1Start = 58
	ut1End   = 68
)

// value of the UT1-UTC flag column for predicted values
const predictFlag = 'P'

// Julian date of MJD 0.
const mjdEpoch = 2400000.5

// Entry is the UT1-UTC value for a single day.
type Entry struct {
	MJD       int
	Offset    unit.Time // UT1-UTC
	Predicted bool      // IERS flag P, as opposed to I for observed values
}

// Table holds UT1-UTC entries in file order.
type Table struct {
	entries []Entry
}

// New builds a table from entries.  The slice is copied.
func New(entries []Entry) *Table {
	return &Table{entries: append([]Entry{}, entries...)}
}

// Parse reads a table in the finals format.
//
// Lines that do not parse are skipped and counted.  The count is
// informational only.  Err is non-nil only for a read error.
func Parse(r io.Reader) (t *Table, skipped int, err error) {
	var entries []Entry
	err = fixcol.ReadLines(r, func(_ int, line string) error {
		e, ok := parseLine(line)
		if !ok {
			skipped++
			return nil
		}
		entries = append(entries, e)
		return nil
	})
	if err != nil {
		return nil, skipped, err
	}
	return &Table{entries: entries}, skipped, nil
}

func parseLine(line string) (e Entry, ok bool) {
	mjd, err := strconv.Atoi(fixcol.Field(line, mjdStart, mjdEnd))
	if err != nil {
		return e, false
	}
	off, err := strconv.ParseFloat(fixcol.Field(line, ut1Start, ut1End), 64)
	if err != nil {
		return e, false
	}
	e.MJD = mjd
	e.Offset = unit.Time(off)
	e.Predicted = len(line) > ut1Flag && line[ut1Flag] == predictFlag
	return e, true
}

// Len returns the number of entries in the table.
func (t *Table) Len() int { return len(t.entries) }

// Entries returns a copy of the entries in file order.
func (t *Table) Entries() []Entry {
	return append([]Entry{}, t.entries...)
}

// Offset returns UT1-UTC for the day mjd.
//
// Mjd must exactly equal the integer MJD of an entry.  There is no rounding;
// a fractional mjd never matches.  If the table has more than one entry for
// a day, the first one is used.  Ok is false when no entry matches.
func (t *Table) Offset(mjd float64) (offset unit.Time, ok bool) {
	for _, e := range t.entries {
		if float64(e.MJD) == mjd {
			return e.Offset, true
		}
	}
	return 0, false
}

// OffsetTime returns UT1-UTC for the UTC calendar day containing tm.
func (t *Table) OffsetTime(tm time.Time) (unit.Time, bool) {
	return t.Offset(DayMJD(tm))
}

// DayMJD returns the integer MJD of the UTC calendar day containing tm.
func DayMJD(tm time.Time) float64 {
	y, m, d := tm.UTC().Date()
	return julian.CalendarGregorianToJD(y, int(m), float64(d)) - mjdEpoch
}
