package menu

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"testing"

	"github.com/aretw0/troller/pkg/prompt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type exitRecorder struct {
	codes []int
}

func (e *exitRecorder) exit(code int) {
	e.codes = append(e.codes, code)
}

func countingBuilder(calls []int) *Builder {
	b := NewBuilder()
	for i := range calls {
		b.Add(fmt.Sprintf("action_%d", i+1), func(context.Context) error {
			calls[i]++
			return nil
		})
	}
	return b
}

func TestMenu_DispatchesEachActionOnce(t *testing.T) {
	calls := make([]int, 3)
	out := &bytes.Buffer{}
	p := prompt.New(strings.NewReader("1\n2\n3\n"), out)

	m, err := countingBuilder(calls).Build(p)
	require.NoError(t, err)

	err = m.Run(context.Background())
	assert.ErrorIs(t, err, prompt.ErrInputClosed)
	assert.Equal(t, []int{1, 1, 1}, calls)
	assert.NotContains(t, out.String(), InvalidChoice)
}

func TestMenu_RejectsOutOfRange(t *testing.T) {
	calls := make([]int, 3)
	out := &bytes.Buffer{}
	p := prompt.New(strings.NewReader("0\n4\n2\n"), out)

	m, err := countingBuilder(calls).Build(p)
	require.NoError(t, err)

	err = m.Run(context.Background())
	assert.ErrorIs(t, err, prompt.ErrInputClosed)
	assert.Equal(t, []int{0, 1, 0}, calls)
	assert.Equal(t, 2, strings.Count(out.String(), InvalidChoice))
	// The list is shown again before every prompt.
	assert.Equal(t, 4, strings.Count(out.String(), Header))
}

func TestMenu_NonNumericNeverReachesDispatch(t *testing.T) {
	calls := make([]int, 3)
	out := &bytes.Buffer{}
	p := prompt.New(strings.NewReader("one\n-1\n3\n"), out)

	m, err := countingBuilder(calls).Build(p)
	require.NoError(t, err)

	_ = m.Run(context.Background())
	assert.Equal(t, []int{0, 0, 1}, calls)
	assert.NotContains(t, out.String(), InvalidChoice)
	assert.Equal(t, 2, strings.Count(out.String(), "Invalid input: Must be an integer."))
}

func TestMenu_PrintsNumberedLabels(t *testing.T) {
	out := &bytes.Buffer{}
	p := prompt.New(strings.NewReader(""), out)

	m, err := NewBuilder().
		Add("air_nuke", noop).
		Add("wall", noop, WithDescription("Build a wall")).
		Build(p)
	require.NoError(t, err)
	assert.Equal(t, []string{"Air nuke", "Build a wall"}, m.Labels())

	_ = m.Run(context.Background())
	assert.Equal(t,
		"\nChoose a function:\n1. Air nuke\n2. Build a wall\n? Enter the number of the function you want to run: ",
		out.String())
}

func TestMenu_ActionErrorReturnsToLoop(t *testing.T) {
	calls := 0
	out := &bytes.Buffer{}
	p := prompt.New(strings.NewReader("1\n1\n"), out)

	m, err := NewBuilder().Add("flaky", func(context.Context) error {
		calls++
		return errors.New("server said no")
	}).Build(p)
	require.NoError(t, err)

	err = m.Run(context.Background())
	assert.ErrorIs(t, err, prompt.ErrInputClosed)
	assert.Equal(t, 2, calls)
	assert.Equal(t, 2, strings.Count(out.String(), "Flaky failed: server said no"))
}

func TestMenu_InputClosedInsideActionStopsLoop(t *testing.T) {
	p := prompt.New(strings.NewReader("1\n2\n"), &bytes.Buffer{})
	second := 0

	m, err := NewBuilder().
		Add("asks", func(ctx context.Context) error {
			return fmt.Errorf("select player: %w", prompt.ErrInputClosed)
		}).
		Add("other", func(context.Context) error {
			second++
			return nil
		}).
		Build(p)
	require.NoError(t, err)

	err = m.Run(context.Background())
	assert.ErrorIs(t, err, prompt.ErrInputClosed)
	assert.Zero(t, second)
}

func TestMenu_TerminalActionCallsExit(t *testing.T) {
	rec := &exitRecorder{}
	farewell := 0
	out := &bytes.Buffer{}
	p := prompt.New(strings.NewReader("2\n1\n"), out)

	m, err := NewBuilder().
		Add("wall", noop).
		Add("exit_program", func(context.Context) error {
			farewell++
			return nil
		}, WithDescription("Exit"), AsTerminal()).
		Build(p, WithExit(rec.exit))
	require.NoError(t, err)

	err = m.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []int{0}, rec.codes)
	assert.Equal(t, 1, farewell)
	// "1" is still unread: the loop did not prompt again.
	assert.Equal(t, 1, strings.Count(out.String(), SelectMessage))
}

func TestMenu_ClearScreen(t *testing.T) {
	out := &bytes.Buffer{}
	p := prompt.New(strings.NewReader("1\n9\n"), out)

	m, err := NewBuilder().Add("wall", noop).Build(p, WithClearScreen(true))
	require.NoError(t, err)

	_ = m.Run(context.Background())
	assert.Equal(t, 2, strings.Count(out.String(), clearSequence))
}

func TestMenu_Renderer(t *testing.T) {
	out := &bytes.Buffer{}
	p := prompt.New(strings.NewReader(""), out)

	m, err := NewBuilder().Add("wall", noop).Build(p, WithRenderer(func(s string) (string, error) {
		return "\n  <" + s + ">\n", nil
	}))
	require.NoError(t, err)

	_ = m.Run(context.Background())
	assert.Contains(t, out.String(), "\n<**Choose a function:**>\n1. Wall\n")
}

func TestMenu_CancelledContext(t *testing.T) {
	calls := make([]int, 1)
	p := prompt.New(strings.NewReader("1\n"), &bytes.Buffer{})
	m, err := countingBuilder(calls).Build(p)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, m.Run(ctx), context.Canceled)
	assert.Equal(t, []int{0}, calls)
}

func TestBuild_Errors(t *testing.T) {
	p := prompt.New(strings.NewReader(""), &bytes.Buffer{})

	_, err := NewBuilder().Build(p)
	assert.ErrorIs(t, err, ErrNoActions)

	_, err = NewBuilder().
		Add("a", noop, AsTerminal()).
		Add("b", noop, AsTerminal()).
		Build(p)
	assert.ErrorIs(t, err, ErrMultipleTerminals)
}

const exitHelperEnv = "TROLLER_MENU_EXIT_HELPER"

// TestMenu_TerminalExitsProcess re-runs the test binary so the default exit
// hook (os.Exit) can be observed from outside.
func TestMenu_TerminalExitsProcess(t *testing.T) {
	if os.Getenv(exitHelperEnv) == "1" {
		p := prompt.New(strings.NewReader("2\n1\n"), os.Stdout)
		m, err := NewBuilder().
			Add("wall", func(context.Context) error {
				fmt.Println("wall ran")
				return nil
			}).
			Add("exit_program", func(context.Context) error {
				fmt.Println("Exiting the program.")
				return nil
			}, AsTerminal()).
			Build(p)
		if err != nil {
			os.Exit(2)
		}
		_ = m.Run(context.Background())
		fmt.Println("returned to caller")
		os.Exit(3)
	}

	cmd := exec.Command(os.Args[0], "-test.run=^TestMenu_TerminalExitsProcess$")
	cmd.Env = append(os.Environ(), exitHelperEnv+"=1")
	out, err := cmd.CombinedOutput()
	require.NoError(t, err, "helper output: %s", out)

	assert.Contains(t, string(out), "Exiting the program.")
	assert.NotContains(t, string(out), "wall ran")
	assert.NotContains(t, string(out), "returned to caller")
}
