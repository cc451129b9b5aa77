package core

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseCounter converts raw counter input to a non-negative integer.
//
// Leading and trailing whitespace is tolerated; anything that is not a
// plain base-10 integer, or that is negative, is an error. Coercion to
// zero is reserved for the load-from-storage path; every other boundary
// goes through here and rejects.
func ParseCounter(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("%w: empty value", ErrInvalidCounter)
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidCounter, s)
	}
	if n < 0 {
		return 0, fmt.Errorf("%w: %d", ErrNegativeCounter, n)
	}
	return n, nil
}
