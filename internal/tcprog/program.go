// Public domain.

package tcprog

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"time"

	"github.com/soniakeys/meeus/v3/julian"
	"github.com/soniakeys/unit"

	"github.com/soniakeys/timecorr/finals"
	"github.com/soniakeys/timecorr/taiutc"
	"github.com/soniakeys/timecorr/usno"
)

// number of entries of each table shown by --preview
const previewLen = 5

// TAI-GPS, constant since the GPS epoch
const taiMinusGPS unit.Time = 19

type program struct {
	out  io.Writer
	repo *usno.Repo
	log  *slog.Logger
}

// missing prints the guidance for a table that has not been downloaded.
func (p *program) missing(err error, table string) error {
	if !errors.Is(err, usno.ErrNotDownloaded) {
		return err
	}
	fmt.Fprintf(p.out, "First download using '--download-table %s'\n", table)
	return errStop
}

func (p *program) leapSeconds() (*taiutc.Table, error) {
	t, err := p.repo.LeapSeconds()
	if err != nil {
		return nil, p.missing(err, tableLeap)
	}
	return t, nil
}

func (p *program) ut1() (*finals.Table, error) {
	t, err := p.repo.UT1()
	if err != nil {
		return nil, p.missing(err, tableTime)
	}
	return t, nil
}

func (p *program) noMatch(q string) {
	fmt.Fprintf(p.out, "Error processing command, check input '%s'\n", q)
}

func (p *program) showLeap(jd float64) error {
	t, err := p.leapSeconds()
	if err != nil {
		return err
	}
	off, ok := t.Offset(jd)
	if !ok {
		p.noMatch(ff(jd))
		return nil
	}
	fmt.Fprintf(p.out, "Leap Seconds at '%s': '%s'[s]\n", ff(jd), ff(off.Sec()))
	return nil
}

func (p *program) showTime(mjd float64) error {
	t, err := p.ut1()
	if err != nil {
		return err
	}
	off, ok := t.Offset(mjd)
	if !ok {
		p.noMatch(ff(mjd))
		return nil
	}
	fmt.Fprintf(p.out, "Time correction at '%s': '%s'[s]\n", ff(mjd), ff(off.Sec()))
	return nil
}

func (p *program) preview() error {
	// both must be present before either is parsed
	for _, need := range []struct{ name, table string }{
		{usno.LeapSecondFile, tableLeap},
		{usno.UT1File, tableTime},
	} {
		if !p.repo.Has(need.name) {
			return p.missing(usno.ErrNotDownloaded, need.table)
		}
	}
	lt, err := p.leapSeconds()
	if err != nil {
		return err
	}
	ut, err := p.ut1()
	if err != nil {
		return err
	}
	fmt.Fprintln(p.out, "Leap Second Corrections: (JD, s)")
	le := lt.Entries()
	if len(le) > previewLen {
		le = le[:previewLen]
	}
	for _, e := range le {
		fmt.Fprintf(p.out, "  %11s %12s\n", ff(e.JD), ff(e.Offset.Sec()))
	}
	fmt.Fprintln(p.out)
	fmt.Fprintln(p.out, "Time corrections: (MJD, s)")
	ue := ut.Entries()
	if len(ue) > previewLen {
		ue = ue[:previewLen]
	}
	for _, e := range ue {
		fl := ""
		if e.Predicted {
			fl = " predicted"
		}
		fmt.Fprintf(p.out, "  %11d %12s%s\n", e.MJD, ff(e.Offset.Sec()), fl)
	}
	return nil
}

// showAt prints JD, MJD, and all corrections for a single time.
func (p *program) showAt(s string) error {
	tm, err := parseTime(s)
	if err != nil {
		return err
	}
	lt, err := p.leapSeconds()
	if err != nil {
		return err
	}
	ut, err := p.ut1()
	if err != nil {
		return err
	}
	fmt.Fprintf(p.out, "Time     %s\n", tm.Format(time.RFC3339Nano))
	fmt.Fprintf(p.out, "JD       %s\n", ff(julian.TimeToJD(tm)))
	fmt.Fprintf(p.out, "MJD      %s\n", ff(finals.DayMJD(tm)))
	if off, ok := lt.OffsetTime(tm); ok {
		fmt.Fprintf(p.out, "TAI-UTC  %s s\n", ff(off.Sec()))
		fmt.Fprintf(p.out, "GPS-UTC  %s s\n", ff((off - taiMinusGPS).Sec()))
	} else {
		fmt.Fprintln(p.out, "TAI-UTC  none, time precedes table")
	}
	if off, ok := ut.OffsetTime(tm); ok {
		fmt.Fprintf(p.out, "UT1-UTC  %s s\n", ff(off.Sec()))
	} else {
		fmt.Fprintln(p.out, "UT1-UTC  none, day not in table")
	}
	return nil
}

func parseTime(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t.UTC(), nil
	}
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return t, fmt.Errorf("invalid --at %q, want RFC 3339 or YYYY-MM-DD", s)
	}
	return t, nil
}

// ff formats a float in the fewest digits that represent it exactly.
func ff(x float64) string {
	return strconv.FormatFloat(x, 'f', -1, 64)
}
