package cli

import (
	"bytes"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/aretw0/troller/pkg/style"
	"github.com/stretchr/testify/assert"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestInterruptHandler_ExitsOnSignal(t *testing.T) {
	out := &syncBuffer{}
	exited := make(chan int, 1)
	h := newInterruptHandler(out, style.Plaintext(), func(code int) { exited <- code })
	h.start()
	defer h.Stop()

	h.sigCh <- os.Interrupt

	select {
	case code := <-exited:
		assert.Equal(t, 0, code)
	case <-time.After(time.Second):
		t.Fatal("interrupt handler did not exit")
	}
	assert.Equal(t, "\n"+InterruptNotice+"\n", out.String())
}

func TestInterruptHandler_StopWithoutSignal(t *testing.T) {
	out := &syncBuffer{}
	h := InstallInterruptHandler(out, style.Plaintext(), func(int) {
		t.Error("exit must not be called")
	})

	h.Stop()
	h.Stop()
	assert.Empty(t, out.String())
}
