// Public domain.

// Package fixcol has helpers for reading fixed column text files.
package fixcol

import (
	"bufio"
	"io"
	"strings"
)

// Field slices columns [lo, hi) of line, truncated to the line length,
// with surrounding blanks removed.
func Field(line string, lo, hi int) string {
	if hi > len(line) {
		hi = len(line)
	}
	if lo >= hi {
		return ""
	}
	return strings.TrimSpace(line[lo:hi])
}

// ReadLines calls fn for each line of r, numbered from 1, with the line
// ending removed.  Lines may be of any length.  A final line without a
// line ending is still passed to fn.
//
// ReadLines stops at the first error from r or fn and returns it.
func ReadLines(r io.Reader, fn func(n int, line string) error) error {
	br := bufio.NewReader(r)
	for n := 1; ; n++ {
		line, err := br.ReadString('\n')
		if err != nil && err != io.EOF {
			return err
		}
		if err == io.EOF && line == "" {
			return nil
		}
		line = strings.TrimSuffix(line, "\n")
		line = strings.TrimSuffix(line, "\r")
		if ferr := fn(n, line); ferr != nil {
			return ferr
		}
		if err == io.EOF {
			return nil
		}
	}
}
