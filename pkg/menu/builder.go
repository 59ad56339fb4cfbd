package menu

import (
	"context"
	"strings"
	"unicode"
	"unicode/utf8"
)

// ReservedPrefix marks names for internal use. Builder skips them.
const ReservedPrefix = "_"

// EntryPoint is the name of the menu loop itself. Builder skips it.
const EntryPoint = "select_method"

// Operation is the effect of an action.
type Operation func(ctx context.Context) error

// Action is one selectable menu entry.
type Action struct {
	Name     string
	Label    string
	Run      Operation
	Terminal bool
}

// ActionOption configures an action as it is added.
type ActionOption func(*Action)

// WithDescription sets the display label.
func WithDescription(description string) ActionOption {
	return func(a *Action) {
		a.Label = description
	}
}

// AsTerminal marks the action that ends the process.
func AsTerminal() ActionOption {
	return func(a *Action) {
		a.Terminal = true
	}
}

// Builder collects actions in declaration order.
type Builder struct {
	actions []Action
}

// NewBuilder creates an empty builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Add appends an action. Names with the reserved prefix, the entry point and
// nil operations are ignored. The label falls back to DeriveLabel(name).
func (b *Builder) Add(name string, op Operation, opts ...ActionOption) *Builder {
	if op == nil || name == EntryPoint || strings.HasPrefix(name, ReservedPrefix) {
		return b
	}
	a := Action{Name: name, Run: op}
	for _, opt := range opts {
		opt(&a)
	}
	if a.Label == "" {
		a.Label = DeriveLabel(name)
	}
	b.actions = append(b.actions, a)
	return b
}

// Actions returns a copy of the collected actions.
func (b *Builder) Actions() []Action {
	out := make([]Action, len(b.actions))
	copy(out, b.actions)
	return out
}

// DeriveLabel turns an identifier into a display label:
// underscores become spaces, the first letter is upper case and the rest
// lower case. "air_nuke" becomes "Air nuke".
func DeriveLabel(name string) string {
	s := strings.ToLower(strings.ReplaceAll(name, "_", " "))
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
