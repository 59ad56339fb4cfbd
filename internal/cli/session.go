package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/aretw0/troller"
	"github.com/aretw0/troller/internal/logging"
	"github.com/aretw0/troller/internal/presentation/tui"
	"github.com/aretw0/troller/internal/troll"
	"github.com/aretw0/troller/internal/world"
	"github.com/aretw0/troller/pkg/menu"
	"github.com/aretw0/troller/pkg/prompt"
)

// Startup messages.
const (
	HostPrompt        = "Enter host IP or leave blank for localhost"
	DefaultHost       = "localhost"
	ConnectionRefused = "Connection refused! Exiting..."
)

// Dialer opens the world connection.
type Dialer func(ctx context.Context, addr string, logger *slog.Logger) (world.Client, error)

// DialWorld is the default Dialer.
func DialWorld(ctx context.Context, addr string, logger *slog.Logger) (world.Client, error) {
	return world.Dial(ctx, addr, world.WithLogger(logger))
}

// RunOptions configures a session.
type RunOptions struct {
	// Host skips the host prompt when non-empty.
	Host  string
	Port  int
	Debug bool

	// Interactive enables colors, the banner, markdown headers and screen
	// clearing.
	Interactive bool

	In     io.Reader
	Out    io.Writer
	Dial   Dialer
	Exit   func(code int)
	Logger *slog.Logger
}

func (o *RunOptions) defaults() {
	if o.In == nil {
		o.In = os.Stdin
	}
	if o.Out == nil {
		o.Out = os.Stdout
	}
	if o.Dial == nil {
		o.Dial = DialWorld
	}
	if o.Exit == nil {
		o.Exit = os.Exit
	}
	if o.Logger == nil {
		o.Logger = logging.ForDebug(o.Debug)
	}
	if o.Port == 0 {
		o.Port = world.DefaultPort
	}
}

// RunSession asks for the host, connects once and runs the action menu.
// A refused connection is reported and ends the session without an error.
// Closing the input also ends it cleanly.
func RunSession(ctx context.Context, opts RunOptions) error {
	opts.defaults()
	logger := opts.Logger
	styler := NewStyler(opts.Interactive)

	if opts.Interactive {
		tui.PrintBanner(opts.Out, styler.Profile(), troller.Version)
	}

	p := prompt.New(opts.In, opts.Out, prompt.WithStyler(styler), prompt.WithLogger(logger))

	host := opts.Host
	if host == "" {
		var err error
		host, err = p.String(ctx, HostPrompt, nil)
		if err != nil {
			return handleExecutionError(err)
		}
		if host == "" {
			host = DefaultHost
		}
	}

	addr := world.Address(host, opts.Port)
	logger.Debug("connecting", "addr", addr)
	client, err := opts.Dial(ctx, addr, logger)
	if err != nil {
		if world.IsConnRefused(err) {
			logger.Debug("connection refused", "addr", addr, "error", err)
			fmt.Fprintf(opts.Out, "\n%s\n", styler.Error(ConnectionRefused))
			return nil
		}
		return fmt.Errorf("connect to %s: %w", addr, err)
	}
	if c, ok := client.(io.Closer); ok {
		defer c.Close()
	}
	logger.Info("connected", "addr", addr)

	controller := troll.New(client, p, troll.WithLogger(logger))

	menuOpts := []menu.Option{
		menu.WithExit(opts.Exit),
		menu.WithLogger(logger),
		menu.WithClearScreen(opts.Interactive),
	}
	if opts.Interactive {
		menuOpts = append(menuOpts, menu.WithRenderer(tui.NewRenderer()))
	}

	m, err := controller.Menu(menuOpts...)
	if err != nil {
		return fmt.Errorf("build menu: %w", err)
	}
	return handleExecutionError(m.Run(ctx))
}

// handleExecutionError treats a closed input or cancelled context as a normal
// end of session.
func handleExecutionError(err error) error {
	if err == nil || errors.Is(err, prompt.ErrInputClosed) || errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
