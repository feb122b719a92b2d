// Public domain.

package finals_test

import (
	"math"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soniakeys/timecorr/finals"
	"github.com/soniakeys/unit"
)

// three data lines in finals.daily.extended layout, the last one predicted
const (
	line59714 = `22 515 59714.00 I  0.061256 0.000024  0.465866 0.000021  I-0.0123000 0.0000062  0.3434 0.0045  I     0.381    0.313    -0.340    0.147`
	line59715 = `22 516 59715.00 I  0.061256 0.000024  0.465866 0.000021  I-0.0130000 0.0000062  0.3434 0.0045  I     0.381    0.313    -0.340    0.147`
	line59716 = `22 517 59716.00 I  0.061256 0.000024  0.465866 0.000021  P-0.0137000 0.0000062  0.3434 0.0045  I     0.381    0.313    -0.340    0.147`
)

func parse(t *testing.T, s string) (*finals.Table, int) {
	t.Helper()
	tb, skipped, err := finals.Parse(strings.NewReader(s))
	require.NoError(t, err)
	return tb, skipped
}

func TestParse(t *testing.T) {
	tb, skipped := parse(t, strings.Join([]string{line59714, line59715, line59716}, "\n"))
	assert.Zero(t, skipped)
	assert.Equal(t, []finals.Entry{
		{MJD: 59714, Offset: -0.0123},
		{MJD: 59715, Offset: -0.0130},
		{MJD: 59716, Offset: -0.0137, Predicted: true},
	}, tb.Entries())
}

func TestParseSkipsGarbage(t *testing.T) {
	in := strings.Join([]string{
		"<pre>",
		line59714,
		"",
		"  MJD      x    error     y    error   UT1-UTC   error",
		line59715,
		"22 518 59717.00                                          ",
		"short",
		"22 519 5971x.00 I  0.061256 0.000024  0.465866 0.000021  I-0.0140000",
		line59716,
		"</pre>",
	}, "\n")
	tb, skipped := parse(t, in)
	assert.Equal(t, 3, tb.Len())
	assert.Equal(t, 7, skipped)
}

func TestParseDeterministic(t *testing.T) {
	in := line59714 + "\njunk\n" + line59715 + "\n"
	a, _ := parse(t, in)
	b, _ := parse(t, in)
	assert.Equal(t, a.Entries(), b.Entries())
}

func TestOffset(t *testing.T) {
	tb := finals.New([]finals.Entry{
		{MJD: 59714, Offset: -0.0123},
		{MJD: 59715, Offset: -0.0130},
	})
	off, ok := tb.Offset(59714)
	require.True(t, ok)
	assert.Equal(t, unit.Time(-0.0123), off)

	off, ok = tb.Offset(59715)
	require.True(t, ok)
	assert.Equal(t, unit.Time(-0.0130), off)

	for _, mjd := range []float64{59716, 59714.5, 59714.0000001, math.NaN(), 0} {
		_, ok = tb.Offset(mjd)
		assert.False(t, ok, "mjd %v", mjd)
	}
}

func TestOffsetFirstDuplicate(t *testing.T) {
	tb := finals.New([]finals.Entry{
		{MJD: 59714, Offset: -0.0123},
		{MJD: 59714, Offset: 0.5},
	})
	off, ok := tb.Offset(59714)
	require.True(t, ok)
	assert.Equal(t, unit.Time(-0.0123), off)
}

func TestOffsetTime(t *testing.T) {
	tb, _ := parse(t, line59714+"\n"+line59715+"\n")
	off, ok := tb.OffsetTime(time.Date(2022, 5, 16, 23, 59, 59, 0, time.UTC))
	require.True(t, ok)
	assert.Equal(t, unit.Time(-0.0130), off)

	_, ok = tb.OffsetTime(time.Date(2022, 5, 17, 0, 0, 0, 0, time.UTC))
	assert.False(t, ok)
}

func TestDayMJD(t *testing.T) {
	assert.Equal(t, 59714., finals.DayMJD(time.Date(2022, 5, 15, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 51544., finals.DayMJD(time.Date(2000, 1, 1, 12, 0, 0, 0, time.UTC)))
	est := time.FixedZone("EST", -5*3600)
	assert.Equal(t, 59715., finals.DayMJD(time.Date(2022, 5, 15, 22, 0, 0, 0, est)))
}

func TestParseLongLine(t *testing.T) {
	in := strings.Repeat("<html>", 12000) + "\n" + line59714 + "\n"
	tb, skipped := parse(t, in)
	assert.Equal(t, 1, skipped)
	off, ok := tb.Offset(59714)
	require.True(t, ok)
	assert.Equal(t, unit.Time(-0.0123), off)
}
