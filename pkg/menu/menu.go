package menu

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/aretw0/troller/pkg/prompt"
	"github.com/aretw0/troller/pkg/style"
)

// Messages shown by the menu loop.
const (
	Header        = "Choose a function:"
	SelectMessage = "Enter the number of the function you want to run"
	InvalidChoice = "Invalid choice. Please select a valid option."
)

const clearSequence = "\033c"

var (
	// ErrNoActions is returned by Build when nothing was added.
	ErrNoActions = errors.New("menu has no actions")
	// ErrMultipleTerminals is returned by Build when more than one action is
	// marked terminal.
	ErrMultipleTerminals = errors.New("menu has more than one terminal action")
)

// ContentRenderer transforms the header before it is written.
type ContentRenderer func(string) (string, error)

// Menu lists actions, reads a selection and dispatches it.
type Menu struct {
	actions  []Action
	prompter *prompt.Prompter
	writer   io.Writer
	styler   style.Styler
	renderer ContentRenderer
	logger   *slog.Logger
	exit     func(code int)
	clear    bool
}

// Option configures a Menu.
type Option func(*Menu)

// WithExit replaces os.Exit as the terminal action's final step.
func WithExit(exit func(code int)) Option {
	return func(m *Menu) {
		m.exit = exit
	}
}

// WithClearScreen resets the terminal before each dispatch.
func WithClearScreen(enabled bool) Option {
	return func(m *Menu) {
		m.clear = enabled
	}
}

// WithRenderer renders the header as markdown.
func WithRenderer(renderer ContentRenderer) Option {
	return func(m *Menu) {
		m.renderer = renderer
	}
}

// WithLogger sets the debug logger.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Menu) {
		m.logger = logger
	}
}

// Build freezes the collected actions into a Menu driven by p.
func (b *Builder) Build(p *prompt.Prompter, opts ...Option) (*Menu, error) {
	if len(b.actions) == 0 {
		return nil, ErrNoActions
	}
	terminals := 0
	for _, a := range b.actions {
		if a.Terminal {
			terminals++
		}
	}
	if terminals > 1 {
		return nil, ErrMultipleTerminals
	}

	m := &Menu{
		actions:  b.Actions(),
		prompter: p,
		writer:   p.Writer(),
		styler:   p.Styler(),
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		exit:     os.Exit,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m, nil
}

// Labels returns the display labels in menu order.
func (m *Menu) Labels() []string {
	labels := make([]string, len(m.actions))
	for i, a := range m.actions {
		labels[i] = a.Label
	}
	return labels
}

// Run loops until the terminal action is chosen, the input closes or ctx is
// cancelled. Choosing the terminal action calls the exit hook, so Run returns
// after it only when the hook itself returns.
//
// Errors from ordinary actions are reported and the loop continues.
func (m *Menu) Run(ctx context.Context) error {
	for {
		m.printActions()

		choice, err := m.prompter.Integer(ctx, SelectMessage, nil)
		if err != nil {
			return err
		}

		if choice < 1 || choice > len(m.actions) {
			m.clearScreen()
			fmt.Fprintln(m.writer, m.styler.Error(InvalidChoice))
			continue
		}

		action := m.actions[choice-1]
		m.clearScreen()
		m.logger.Debug("dispatching action", "action", action.Name, "choice", choice)

		err = action.Run(ctx)
		if action.Terminal {
			if err != nil {
				m.report(action, err)
			}
			m.logger.Debug("terminal action finished, exiting", "action", action.Name)
			m.exit(0)
			return nil
		}
		if err != nil {
			if errors.Is(err, prompt.ErrInputClosed) || ctx.Err() != nil {
				return err
			}
			m.report(action, err)
		}
	}
}

func (m *Menu) printActions() {
	header := m.styler.Header(Header)
	if m.renderer != nil {
		if rendered, err := m.renderer("**" + Header + "**"); err == nil {
			header = strings.TrimSpace(rendered)
		}
	}
	fmt.Fprintf(m.writer, "\n%s\n", header)
	for i, a := range m.actions {
		fmt.Fprintf(m.writer, "%d. %s\n", i+1, a.Label)
	}
}

func (m *Menu) report(action Action, err error) {
	m.logger.Debug("action failed", "action", action.Name, "error", err)
	fmt.Fprintln(m.writer, m.styler.Error(fmt.Sprintf("%s failed: %v", action.Label, err)))
}

func (m *Menu) clearScreen() {
	if m.clear {
		fmt.Fprint(m.writer, clearSequence)
	}
}
