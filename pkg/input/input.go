// Package input reads path lists from newline or NUL delimited streams.
package input

import (
	"bufio"
	"bytes"
	"io"
	"strings"

	"github.com/arthur-debert/braces/pkg/errors"
)

const maxRecord = 16 * 1024 * 1024

// Options controls record splitting.
type Options struct {
	// NullData splits on NUL and keeps records verbatim. Otherwise records
	// are lines with surrounding whitespace trimmed.
	NullData bool
	// Groups starts a new group at every empty record.
	Groups bool
}

// Read returns the records of r. Without Groups the result holds a single
// group, possibly empty. With Groups, empty groups are dropped.
func Read(r io.Reader, opts Options) ([][]string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxRecord)
	if opts.NullData {
		scanner.Split(scanNull)
	}

	var (
		groups  [][]string
		current []string
	)
	for scanner.Scan() {
		rec := scanner.Text()
		if !opts.NullData {
			rec = strings.TrimSpace(rec)
		}

		if rec == "" {
			if opts.Groups && len(current) > 0 {
				groups = append(groups, current)
				current = nil
			}
			continue
		}
		current = append(current, rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, errors.ErrFileAccess, "failed to read input")
	}

	if !opts.Groups {
		return [][]string{current}, nil
	}
	if len(current) > 0 {
		groups = append(groups, current)
	}
	return groups, nil
}

// scanNull is a bufio.SplitFunc for NUL terminated records.
func scanNull(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	if i := bytes.IndexByte(data, 0); i >= 0 {
		return i + 1, data[:i], nil
	}
	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil
}
