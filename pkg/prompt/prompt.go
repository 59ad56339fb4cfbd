package prompt

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/aretw0/troller/pkg/style"
)

// Kind is the type of value a prompt produces.
type Kind int

const (
	KindInteger Kind = iota
	KindString
	KindBoolean
)

func (k Kind) String() string {
	switch k {
	case KindInteger:
		return "integer"
	case KindString:
		return "string"
	case KindBoolean:
		return "boolean"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

var (
	// ErrInputClosed is returned when the input stream ends before a valid
	// value was read.
	ErrInputClosed = errors.New("input closed")
	// ErrUnknownKind is returned for a Spec whose Kind is not supported.
	ErrUnknownKind = errors.New("unknown prompt kind")
)

// Rejection is a human-readable reason for refusing a line of input.
// Validators return it so the reason can be shown to the operator verbatim.
type Rejection string

func (r Rejection) Error() string { return string(r) }

const (
	rejectInteger = Rejection("Invalid input: Must be an integer.")
	rejectBoolean = Rejection("Invalid input. Please enter 'y' or 'n'.")
)

// Validator inspects the raw line before conversion. A non-nil error rejects
// the line and its message is displayed.
type Validator func(raw string) error

// Spec describes one request for a value.
type Spec struct {
	Kind     Kind
	Message  string
	Validate Validator
}

// Prompter reads validated values from an operator.
type Prompter struct {
	reader *bufio.Reader
	writer io.Writer
	styler style.Styler
	logger *slog.Logger
}

// Option configures a Prompter.
type Option func(*Prompter)

// WithStyler sets the styler used for queries and rejections.
func WithStyler(s style.Styler) Option {
	return func(p *Prompter) {
		p.styler = s
	}
}

// WithLogger sets the debug logger.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Prompter) {
		p.logger = logger
	}
}

// New creates a Prompter reading from r and writing to w.
// Nil values fall back to Stdin and Stdout.
func New(r io.Reader, w io.Writer, opts ...Option) *Prompter {
	if r == nil {
		r = os.Stdin
	}
	if w == nil {
		w = os.Stdout
	}
	p := &Prompter{
		reader: bufio.NewReader(r),
		writer: w,
		styler: style.Plaintext(),
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Writer returns the output stream shared with the prompts.
func (p *Prompter) Writer() io.Writer {
	return p.writer
}

// Styler returns the styler used by the prompts.
func (p *Prompter) Styler() style.Styler {
	return p.styler
}

// Ask prompts until a line satisfies both the validator and the kind.
// It returns an int, string or bool according to spec.Kind.
// There is no retry limit.
func (p *Prompter) Ask(ctx context.Context, spec Spec) (any, error) {
	if spec.Kind < KindInteger || spec.Kind > KindBoolean {
		return nil, fmt.Errorf("%w: %s", ErrUnknownKind, spec.Kind)
	}

	message := spec.Message
	if message == "" {
		message = "Enter " + spec.Kind.String()
	}
	if spec.Kind == KindBoolean {
		message += " [y/n]"
	}
	query := p.styler.Query(message + ": ")

	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		fmt.Fprint(p.writer, query)
		line, err := p.readLine()
		if err != nil {
			return nil, err
		}

		if spec.Kind != KindString {
			if err := ScreenInput(line); err != nil {
				p.reject(fmt.Sprintf("Error: %v. Please try again.", err))
				continue
			}
		}

		if spec.Validate != nil {
			if err := spec.Validate(line); err != nil {
				p.reject(err.Error())
				continue
			}
		}

		value, err := convert(spec.Kind, line)
		if err != nil {
			p.reject(err.Error())
			continue
		}
		return value, nil
	}
}

// Integer asks for a non-negative decimal integer.
func (p *Prompter) Integer(ctx context.Context, message string, validate Validator) (int, error) {
	v, err := p.Ask(ctx, Spec{Kind: KindInteger, Message: message, Validate: validate})
	if err != nil {
		return 0, err
	}
	return v.(int), nil
}

// String asks for a line of text, returned verbatim.
func (p *Prompter) String(ctx context.Context, message string, validate Validator) (string, error) {
	v, err := p.Ask(ctx, Spec{Kind: KindString, Message: message, Validate: validate})
	if err != nil {
		return "", err
	}
	return v.(string), nil
}

// Boolean asks a y/n question.
func (p *Prompter) Boolean(ctx context.Context, message string) (bool, error) {
	v, err := p.Ask(ctx, Spec{Kind: KindBoolean, Message: message})
	if err != nil {
		return false, err
	}
	return v.(bool), nil
}

func (p *Prompter) reject(reason string) {
	p.logger.Debug("prompt input rejected", "reason", reason)
	fmt.Fprintln(p.writer, p.styler.Error(reason))
}

// readLine returns one line without its terminator. A final line without a
// newline is still returned; only an empty read at EOF is ErrInputClosed.
func (p *Prompter) readLine() (string, error) {
	line, err := p.reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) {
			if line == "" {
				return "", ErrInputClosed
			}
		} else {
			return "", fmt.Errorf("read input: %w", err)
		}
	}
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	return line, nil
}

func convert(kind Kind, raw string) (any, error) {
	switch kind {
	case KindInteger:
		if !IsDigits(raw) {
			return nil, rejectInteger
		}
		n, err := strconv.Atoi(raw)
		if err != nil {
			return nil, rejectInteger
		}
		return n, nil
	case KindBoolean:
		switch strings.ToLower(strings.TrimSpace(raw)) {
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
		return nil, rejectBoolean
	default:
		return raw, nil
	}
}

// IsDigits reports whether s is a non-empty run of ASCII decimal digits.
func IsDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
