// Public domain.

package usno

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"

	"github.com/soniakeys/timecorr/finals"
	"github.com/soniakeys/timecorr/taiutc"
)

// ErrNotDownloaded is wrapped by errors from Repo loads when the local copy
// of a table is missing.
var ErrNotDownloaded = errors.New("table not downloaded")

// Repo ties a Store of local copies to the Fetcher that refreshes them.
//
// Tables are parsed from the store on every load; nothing is cached.
type Repo struct {
	Store   Store
	Fetcher *Fetcher
	Log     *slog.Logger // slog.Default if nil
}

func (r *Repo) log() *slog.Logger {
	if r.Log == nil {
		return slog.Default()
	}
	return r.Log
}

// Download replaces the local copy of file name with a fresh one.
//
// The existing copy is removed before fetching.  A failed download,
// including one cut off partway through the body, leaves no copy.
// Replacement is not atomic with respect to other processes reading
// the store.
func (r *Repo) Download(ctx context.Context, name string) error {
	if err := r.Store.Remove(name); err != nil {
		return err
	}
	f := r.Fetcher
	if f == nil {
		f = &Fetcher{}
	}
	r.log().Debug("fetching table", "url", f.URL(name))
	body, err := f.Fetch(ctx, name)
	if err != nil {
		return err
	}
	defer body.Close()
	w, err := r.Store.Create(name)
	if err != nil {
		return err
	}
	n, err := io.Copy(w, body)
	if cerr := w.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		// don't leave a truncated table behind
		if rerr := r.Store.Remove(name); rerr != nil {
			r.log().Warn("removing partial download", "name", name, "err", rerr)
		}
		return fmt.Errorf("download %s: %w", name, err)
	}
	r.log().Debug("stored table", "name", name, "bytes", n)
	return nil
}

// Has reports whether a local copy of file name is present.
func (r *Repo) Has(name string) bool {
	rc, err := r.Store.Open(name)
	if err != nil {
		return false
	}
	rc.Close()
	return true
}

func (r *Repo) open(name string) (io.ReadCloser, error) {
	rc, err := r.Store.Open(name)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%s: %w", name, ErrNotDownloaded)
	}
	return rc, err
}

// LeapSeconds parses the local copy of tai-utc.dat.
func (r *Repo) LeapSeconds() (*taiutc.Table, error) {
	rc, err := r.open(LeapSecondFile)
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return taiutc.Parse(rc)
}

// UT1 parses the local copy of finals.daily.extended.
func (r *Repo) UT1() (*finals.Table, error) {
	rc, err := r.open(UT1File)
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	t, skipped, err := finals.Parse(rc)
	if err != nil {
		return nil, err
	}
	r.log().Debug("parsed UT1 table", "entries", t.Len(), "skipped", skipped)
	return t, nil
}
