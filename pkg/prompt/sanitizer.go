package prompt

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"unicode"
	"unicode/utf8"
)

var (
	// DefaultMaxInputSize bounds a line handed to a conversion.
	DefaultMaxInputSize = 4096
	// EnvMaxInputSize overrides DefaultMaxInputSize.
	EnvMaxInputSize = "TROLLER_MAX_INPUT_SIZE"
)

var (
	ErrInputTooLarge    = errors.New("input exceeds maximum allowed size")
	ErrInvalidUTF8      = errors.New("input contains invalid UTF-8 sequences")
	ErrControlCharacter = errors.New("input contains control characters")
)

// ScreenInput checks a line bound for integer or boolean conversion. It never
// rewrites the line: an oversized line, invalid UTF-8 or a control character
// other than tab is reported so the operator can be asked again.
//
// String prompts skip screening and keep the line as typed.
func ScreenInput(line string) error {
	limit := maxInputSize()
	if len(line) > limit {
		return fmt.Errorf("%w: size=%d limit=%d", ErrInputTooLarge, len(line), limit)
	}
	if !utf8.ValidString(line) {
		return ErrInvalidUTF8
	}
	for i, r := range line {
		if unicode.IsControl(r) && r != '\t' {
			return fmt.Errorf("%w: %U at byte %d", ErrControlCharacter, r, i)
		}
	}
	return nil
}

func maxInputSize() int {
	if val := os.Getenv(EnvMaxInputSize); val != "" {
		if size, err := strconv.Atoi(val); err == nil && size > 0 {
			return size
		}
	}
	return DefaultMaxInputSize
}
