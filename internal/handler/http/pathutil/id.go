// Package pathutil parses and normalizes URL path segments.
package pathutil

import (
	"errors"
	"strconv"
)

// ErrInvalidID is returned when an id path segment is not digits-only.
var ErrInvalidID = errors.New("invalid id")

// ParseID parses a digits-only, non-negative id segment. Signs, spaces and
// any non-digit characters are rejected, matching the routing contract that
// a non-numeric adv_id never reaches the service.
func ParseID(segment string) (int64, error) {
	if segment == "" {
		return 0, ErrInvalidID
	}
	for _, c := range segment {
		if c < '0' || c > '9' {
			return 0, ErrInvalidID
		}
	}
	id, err := strconv.ParseInt(segment, 10, 64)
	if err != nil {
		// digits-only だが int64 を超える
		return 0, ErrInvalidID
	}
	return id, nil
}
