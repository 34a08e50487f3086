package transport

import (
	"fmt"
	"io"
	"net"

	"github.com/tarm/serial"
)

// OpenSerial opens the serial device the host writes commands to. Closing the
// returned port unblocks any Reader pumping it.
func OpenSerial(device string, baud int) (io.ReadWriteCloser, error) {
	port, err := serial.OpenPort(&serial.Config{Name: device, Baud: baud})
	if err != nil {
		return nil, fmt.Errorf("open serial port %s: %w", device, err)
	}
	return port, nil
}

// OpenSink opens the write side of the command link for host-side senders: a
// serial device when device is non-empty, otherwise a TCP connection to addr.
func OpenSink(device string, baud int, addr string) (io.WriteCloser, error) {
	if device != "" {
		return OpenSerial(device, baud)
	}
	conn, err := net.Dial("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", addr, err)
	}
	return conn, nil
}
