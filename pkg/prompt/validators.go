package prompt

import (
	"fmt"
	"strconv"
)

// Range accepts decimal integers within [lo, hi].
func Range(lo, hi int) Validator {
	return func(raw string) error {
		if !IsDigits(raw) {
			return rejectInteger
		}
		n, err := strconv.Atoi(raw)
		if err != nil || n < lo || n > hi {
			return Rejection(fmt.Sprintf("Invalid input: Must be within %d to %d.", lo, hi))
		}
		return nil
	}
}

// NotEmpty rejects blank lines.
func NotEmpty(reason string) Validator {
	return func(raw string) error {
		if raw == "" {
			return Rejection(reason)
		}
		return nil
	}
}
