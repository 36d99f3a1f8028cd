package service

import (
	"bytes"
	"fmt"
	"sync"
)

// MemTransport is an in-memory service.Transport for tests: inbound bytes
// are scripted up front and outbound writes are captured per Send call.
type MemTransport struct {
	mu      sync.Mutex
	inbound bytes.Buffer
	sends   [][]byte
	peerDER []byte
	closed  bool
}

// NewMemTransport creates an empty in-memory transport.
func NewMemTransport() *MemTransport { return &MemTransport{} }

// FeedInbound appends bytes for subsequent Recv calls to consume.
func (t *MemTransport) FeedInbound(b []byte) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.inbound.Write(b)
}

// SetPeerDER scripts the value returned by PeerCertificateDER.
func (t *MemTransport) SetPeerDER(der []byte) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.peerDER = der
}

// Sent returns the concatenation of everything written so far.
func (t *MemTransport) Sent() []byte {
	t.mu.Lock()
	defer t.mu.Unlock()
	var out []byte
	for _, b := range t.sends {
		out = append(out, b...)
	}
	return out
}

// SendCalls returns how many Send calls have been made.
func (t *MemTransport) SendCalls() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.sends)
}

func (t *MemTransport) Send(b []byte) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.closed {
		return fmt.Errorf("connection closed")
	}
	buf := make([]byte, len(b))
	copy(buf, b)
	t.sends = append(t.sends, buf)
	return nil
}

func (t *MemTransport) Recv(n int) ([]byte, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.closed {
		return nil, fmt.Errorf("connection closed")
	}
	if t.inbound.Len() < n {
		return nil, fmt.Errorf("connection closed: need %d bytes, have %d", n, t.inbound.Len())
	}
	buf := make([]byte, n)
	t.inbound.Read(buf)
	return buf, nil
}

func (t *MemTransport) PeerCertificateDER() ([]byte, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.peerDER == nil {
		return nil, fmt.Errorf("no peer certificate")
	}
	return t.peerDER, nil
}

func (t *MemTransport) Close() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.closed = true
	return nil
}
