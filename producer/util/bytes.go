package util

import (
	"fmt"
	"strconv"

	"github.com/dustin/go-humanize"
)

// ParseBytes accepts a plain byte count ("1048576") or a human readable
// size ("64KiB", "1GB") and returns the number of bytes.
// A plain number must be a whole, non negative byte count.
func ParseBytes(s string) (int64, error) {
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		if n < 0 {
			return 0, fmt.Errorf("parse size %q: must not be negative", s)
		}
		return n, nil
	}
	if _, err := strconv.ParseFloat(s, 64); err == nil {
		return 0, fmt.Errorf("parse size %q: not a whole number of bytes", s)
	}
	n, err := humanize.ParseBytes(s)
	if err != nil {
		return 0, fmt.Errorf("parse size %q: %w", s, err)
	}
	if n > 1<<62 {
		return 0, fmt.Errorf("parse size %q: too large", s)
	}
	return int64(n), nil
}

// BytesToHumanReadable returns the IEC representation of the bytes, e.g. "1.0 GiB".
func BytesToHumanReadable(b int64) string {
	if b < 0 {
		return "-" + humanize.IBytes(uint64(-b))
	}
	return humanize.IBytes(uint64(b))
}
