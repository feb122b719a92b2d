// Public domain.

// Package usno fetches and stores the USNO time correction tables and
// loads them as taiutc and finals tables.
package usno

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// BaseURL is the USNO directory serving both tables.
const BaseURL = "https://maia.usno.navy.mil/ser7/"

// File names of the two tables, both on the server and in a Store.
const (
	LeapSecondFile = "tai-utc.dat"
	UT1File        = "finals.daily.extended"
)

// Fetcher gets files by name from a base URL.
type Fetcher struct {
	BaseURL string       // BaseURL if empty
	Client  *http.Client // http.DefaultClient if nil
}

// URL returns the location of file name.
func (f *Fetcher) URL(name string) string {
	base := f.BaseURL
	if base == "" {
		base = BaseURL
	}
	if !strings.HasSuffix(base, "/") {
		base += "/"
	}
	return base + name
}

// Fetch gets file name.  The caller must close the returned body.
//
// There is no retry.  A response other than 200 OK is an error.
func (f *Fetcher) Fetch(ctx context.Context, name string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.URL(name), nil)
	if err != nil {
		return nil, err
	}
	c := f.Client
	if c == nil {
		c = http.DefaultClient
	}
	r, err := c.Do(req)
	if err != nil {
		return nil, err
	}
	if r.StatusCode != http.StatusOK {
		r.Body.Close()
		return nil, fmt.Errorf("fetch %s: %s", req.URL, r.Status)
	}
	return r.Body, nil
}
