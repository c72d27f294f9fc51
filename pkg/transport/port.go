// Package transport bridges byte-stream links to the engine: the read
// side of an io.ReadWriter becomes the engine's byte source, the write
// side its byte sink.
package transport

import (
	"context"
	"io"
)

// Port pumps bytes from a link into a receiver callback and implements
// io.ByteWriter over the same link. TCP connections, websockets or an
// MQTT line bridge all fit; a real UART would too.
type Port struct {
	RW       io.ReadWriter
	Receiver func(byte)
}

// NewPort creates a Port over rw delivering received bytes to recv.
func NewPort(rw io.ReadWriter, recv func(byte)) *Port {
	return &Port{RW: rw, Receiver: recv}
}

// WriteByte implements io.ByteWriter. It may block until the link is
// ready and preserves byte order.
func (p *Port) WriteByte(b byte) error {
	_, err := p.RW.Write([]byte{b})
	return err
}

// Run implements framework.Runnable. It reads the link byte by byte
// until the link closes or the context is canceled.
func (p *Port) Run(ctx context.Context) error {
	buf := make([]byte, 1)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		n, err := p.RW.Read(buf)
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return err
		}
		if n > 0 {
			p.Receiver(buf[0])
		}
	}
}
