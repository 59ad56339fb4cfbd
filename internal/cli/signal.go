package cli

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/aretw0/troller/pkg/style"
)

// InterruptNotice is printed when the operator interrupts the process.
const InterruptNotice = "KeyboardInterrupt caught! Exiting..."

// InterruptHandler terminates the process on SIGINT or SIGTERM.
// It does no cleanup: the notice is printed and exit is called right away.
type InterruptHandler struct {
	out    io.Writer
	styler style.Styler
	exit   func(code int)

	sigCh chan os.Signal
	done  chan struct{}
	stop  sync.Once
	wg    sync.WaitGroup
}

// InstallInterruptHandler subscribes to interrupt signals. Call Stop to
// unsubscribe.
func InstallInterruptHandler(out io.Writer, s style.Styler, exit func(code int)) *InterruptHandler {
	h := newInterruptHandler(out, s, exit)
	signal.Notify(h.sigCh, os.Interrupt, syscall.SIGTERM)
	h.start()
	return h
}

func newInterruptHandler(out io.Writer, s style.Styler, exit func(code int)) *InterruptHandler {
	return &InterruptHandler{
		out:    out,
		styler: s,
		exit:   exit,
		sigCh:  make(chan os.Signal, 1),
		done:   make(chan struct{}),
	}
}

func (h *InterruptHandler) start() {
	h.wg.Add(1)
	go func() {
		defer h.wg.Done()
		select {
		case <-h.sigCh:
			fmt.Fprintf(h.out, "\n%s\n", h.styler.Error(InterruptNotice))
			h.exit(0)
		case <-h.done:
		}
	}()
}

// Stop unsubscribes and waits for the watcher to finish.
func (h *InterruptHandler) Stop() {
	h.stop.Do(func() {
		signal.Stop(h.sigCh)
		close(h.done)
	})
	h.wg.Wait()
}
