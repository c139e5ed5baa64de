package fileseq

import (
	"fmt"
	"strconv"
)

// parseInt32 parses a signed base-10 integer, failing with ErrInvalidRange
// on overflow of the 32-bit range rather than silently truncating.
func parseInt32(s string) (int32, error) {
	n, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: %q does not fit in 32 bits", ErrInvalidRange, s)
	}
	return int32(n), nil
}

// floorMod returns the non-negative remainder of a/n, n > 0.
func floorMod(a, n int64) int64 {
	m := a % n
	if m < 0 {
		m += n
	}
	return m
}

func absInt32(n int32) int32 {
	if n < 0 {
		return -n
	}
	return n
}
