package mqtt

import (
	"bytes"
	"context"
	"io"
)

// Link exposes a pair of topics as a byte-stream serial link. Outgoing
// bytes are buffered until a newline completes a line and each line is
// published as one message; incoming messages are replayed byte by
// byte. Read and Write each expect a single caller.
type Link struct {
	Queue    *Queue
	SubTopic string
	PubTopic string

	recvCh  chan []byte
	pending []byte // unread remainder of the last received payload
	out     []byte // outgoing bytes of the incomplete line
}

// NewLink creates a Link subscribing sub and publishing pub.
func NewLink(q *Queue, sub, pub string) *Link {
	return &Link{
		Queue:    q,
		SubTopic: sub,
		PubTopic: pub,
		recvCh:   make(chan []byte, 4),
	}
}

// Read implements io.Reader, blocking until a message arrives.
func (l *Link) Read(p []byte) (int, error) {
	for len(l.pending) == 0 {
		pkt, ok := <-l.recvCh
		if !ok {
			return 0, io.EOF
		}
		l.pending = pkt
	}
	n := copy(p, l.pending)
	l.pending = l.pending[n:]
	return n, nil
}

// Write implements io.Writer. Completed lines are published
// immediately, terminator included.
func (l *Link) Write(p []byte) (int, error) {
	l.out = append(l.out, p...)
	for {
		i := bytes.IndexByte(l.out, '\n')
		if i < 0 {
			return len(p), nil
		}
		line := make([]byte, i+1)
		copy(line, l.out[:i+1])
		l.out = l.out[i+1:]
		token := l.Queue.Pub(l.PubTopic, line)
		token.Wait()
		if err := token.Error(); err != nil {
			return len(p), err
		}
	}
}

// Run implements framework.Runnable, keeping the subscription alive
// until the context is canceled.
func (l *Link) Run(ctx context.Context) error {
	err := l.Queue.Sub(l.SubTopic, func(topic string, payload []byte) {
		pkt := make([]byte, len(payload))
		copy(pkt, payload)
		select {
		case l.recvCh <- pkt:
		default:
			// Receiver stalled; drop like a saturated UART would.
		}
	})
	if err != nil {
		return err
	}
	defer l.Queue.Unsub(l.SubTopic)
	<-ctx.Done()
	return ctx.Err()
}
