// Package transport adapts byte streams (serial ports, TCP links) to the
// engine's command source contract: a non-blocking availability check plus a
// blocking byte read that errors only on transport failure.
package transport

import (
	"context"
	"io"
	"sync/atomic"
)

// Reader pumps an io.Reader into a buffered byte queue. Available never
// blocks; ReadByte blocks until a byte is ready. Once the underlying reader
// fails, Available stays true and ReadByte returns the failure, so a consumer
// polling Available always observes the loss of its transport.
type Reader struct {
	ch     chan byte
	closed atomic.Bool
	err    error
}

func NewReader(ctx context.Context, r io.Reader) *Reader {
	t := &Reader{ch: make(chan byte, 256)}
	go t.pump(ctx, r)
	return t
}

func (t *Reader) pump(ctx context.Context, r io.Reader) {
	buf := make([]byte, 64)
	for {
		n, err := r.Read(buf)
		for _, b := range buf[:n] {
			select {
			case t.ch <- b:
			case <-ctx.Done():
				t.fail(ctx.Err())
				return
			}
		}
		if err != nil {
			t.fail(err)
			return
		}
	}
}

func (t *Reader) fail(err error) {
	t.err = err
	t.closed.Store(true)
	close(t.ch)
}

func (t *Reader) Available() bool {
	return len(t.ch) > 0 || t.closed.Load()
}

func (t *Reader) ReadByte() (byte, error) {
	b, ok := <-t.ch
	if !ok {
		return 0, t.err
	}
	return b, nil
}
