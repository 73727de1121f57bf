package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrMalformedInput marks a numeric or boolean field that failed to parse.
var ErrMalformedInput = errors.New("malformed input")

// ParseID parses an unsigned integer id.
func ParseID(s string) (uint64, error) {
	s = strings.TrimSpace(s)
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a valid number", ErrMalformedInput, s)
	}
	return n, nil
}

// ParseCompleted accepts exactly "true" or "false".
func ParseCompleted(s string) (bool, error) {
	switch strings.TrimSpace(s) {
	case "true":
		return true, nil
	case "false":
		return false, nil
	}
	return false, fmt.Errorf("%w: %q is not true or false", ErrMalformedInput, strings.TrimSpace(s))
}
