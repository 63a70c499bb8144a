package logging

import (
	"bytes"
	"io"
	"sync"
)

// HeldWriter passes writes through to an underlying writer except while held,
// when they are buffered until Release. It keeps log lines from tearing the
// interactive display that shares the terminal.
type HeldWriter struct {
	mu   sync.Mutex
	out  io.Writer
	buf  bytes.Buffer
	held bool
}

// NewHeldWriter wraps out.
func NewHeldWriter(out io.Writer) *HeldWriter {
	return &HeldWriter{out: out}
}

// Write implements io.Writer.
func (w *HeldWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.held {
		return w.buf.Write(p)
	}
	return w.out.Write(p)
}

// Hold starts buffering.
func (w *HeldWriter) Hold() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.held = true
}

// Release writes everything buffered and stops buffering.
func (w *HeldWriter) Release() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.held = false
	if w.buf.Len() == 0 {
		return nil
	}
	_, err := w.buf.WriteTo(w.out)
	return err
}
