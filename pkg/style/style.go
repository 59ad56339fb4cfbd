// Package style maps semantic intents to terminal display strings.
//
// Nothing here holds mutable state. A Styler is a value bound to a termenv
// color profile, so the same intent always renders the same way for a given
// terminal, and the Ascii profile renders plain text.
package style

import (
	"github.com/muesli/termenv"
)

// Intent names the purpose of a piece of output.
type Intent int

const (
	Plain Intent = iota
	Header
	Query
	Info
	Success
	Warning
	Error
	Strong
)

// ANSI palette indexes.
const (
	red     = "1"
	green   = "2"
	yellow  = "3"
	blue    = "4"
	magenta = "5"
	cyan    = "6"
)

// QueryMarker prefixes every prompt.
const QueryMarker = "? "

// Format renders text for intent under profile p.
func Format(p termenv.Profile, in Intent, text string) string {
	s := p.String(text)
	switch in {
	case Header:
		s = s.Foreground(p.Color(cyan))
	case Query:
		s = p.String(QueryMarker + text).Bold().Foreground(p.Color(cyan))
	case Info:
		s = s.Foreground(p.Color(blue))
	case Success:
		s = s.Foreground(p.Color(green))
	case Warning:
		s = s.Foreground(p.Color(yellow))
	case Error:
		s = s.Bold().Foreground(p.Color(red))
	case Strong:
		s = s.Bold()
	default:
		return text
	}
	return s.String()
}

// Styler binds Format to a color profile.
type Styler struct {
	profile termenv.Profile
}

// New returns a Styler for the given profile.
func New(p termenv.Profile) Styler {
	return Styler{profile: p}
}

// Detect returns a Styler for the profile of stdout, honoring NO_COLOR.
func Detect() Styler {
	return New(termenv.EnvColorProfile())
}

// Plaintext returns a Styler that never emits escape sequences.
func Plaintext() Styler {
	return New(termenv.Ascii)
}

// Profile reports the bound color profile.
func (s Styler) Profile() termenv.Profile {
	return s.profile
}

// Render formats text for intent.
func (s Styler) Render(in Intent, text string) string {
	return Format(s.profile, in, text)
}

// Header, Query, Info, Success, Warning, Error and Strong render text with the
// intent of the same name.
func (s Styler) Header(text string) string  { return s.Render(Header, text) }
func (s Styler) Query(text string) string   { return s.Render(Query, text) }
func (s Styler) Info(text string) string    { return s.Render(Info, text) }
func (s Styler) Success(text string) string { return s.Render(Success, text) }
func (s Styler) Warning(text string) string { return s.Render(Warning, text) }
func (s Styler) Error(text string) string   { return s.Render(Error, text) }
func (s Styler) Strong(text string) string  { return s.Render(Strong, text) }

// Accent highlights a name, e.g. a player in a list.
func (s Styler) Accent(text string) string {
	return s.profile.String(text).Bold().Foreground(s.profile.Color(magenta)).String()
}
