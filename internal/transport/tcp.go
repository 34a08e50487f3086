package transport

import (
	"context"
	"fmt"
	"net"
	"sync/atomic"

	"go.uber.org/zap"
)

// TCPSource accepts command bytes over TCP, one connection at a time. When a
// sender disconnects the next connection is accepted; only a listener failure
// or context cancellation kills the source.
type TCPSource struct {
	ln     net.Listener
	logger *zap.Logger
	ch     chan byte
	closed atomic.Bool
	err    error
}

func ListenTCP(ctx context.Context, addr string, logger *zap.Logger) (*TCPSource, error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("listen %s: %w", addr, err)
	}
	s := &TCPSource{
		ln:     ln,
		logger: logger,
		ch:     make(chan byte, 256),
	}
	go s.serve(ctx)
	return s, nil
}

// Addr returns the listener address, useful when listening on port 0.
func (s *TCPSource) Addr() net.Addr {
	return s.ln.Addr()
}

func (s *TCPSource) serve(ctx context.Context) {
	go func() {
		<-ctx.Done()
		s.ln.Close()
	}()

	for {
		conn, err := s.ln.Accept()
		if err != nil {
			if ctx.Err() != nil {
				s.fail(ctx.Err())
				return
			}
			s.fail(fmt.Errorf("accept: %w", err))
			return
		}
		s.logger.Info("command sender connected", zap.String("remote", conn.RemoteAddr().String()))
		s.pump(ctx, conn)
		conn.Close()
		s.logger.Info("command sender disconnected", zap.String("remote", conn.RemoteAddr().String()))
	}
}

func (s *TCPSource) pump(ctx context.Context, conn net.Conn) {
	buf := make([]byte, 64)
	for {
		n, err := conn.Read(buf)
		for _, b := range buf[:n] {
			select {
			case s.ch <- b:
			case <-ctx.Done():
				return
			}
		}
		if err != nil {
			return
		}
	}
}

func (s *TCPSource) fail(err error) {
	s.err = err
	s.closed.Store(true)
	close(s.ch)
}

func (s *TCPSource) Available() bool {
	return len(s.ch) > 0 || s.closed.Load()
}

func (s *TCPSource) ReadByte() (byte, error) {
	b, ok := <-s.ch
	if !ok {
		return 0, s.err
	}
	return b, nil
}
