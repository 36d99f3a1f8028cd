package service

import (
	"crypto/tls"
	"fmt"
	"io"
	"net"
	"time"

	svc "ikedadada/go-torlink/shared/service"
)

// TLSTransport implements service.Transport over a TLS connection. Reads
// block until the exact requested byte count arrives; no partial-read state
// survives between calls. Timeouts, if needed, belong to the underlying
// connection, not this layer.
type TLSTransport struct {
	conn *tls.Conn
}

// DialTLSTransport connects to addr and completes the TLS handshake. Relays
// present self-signed link certificates, so record-layer trust usually comes
// from the CERTS handshake and callers set InsecureSkipVerify in cfg.
func DialTLSTransport(addr string, cfg *tls.Config, timeout time.Duration) (svc.Transport, error) {
	conn, err := tls.DialWithDialer(&net.Dialer{Timeout: timeout}, "tcp", addr, cfg)
	if err != nil {
		return nil, err
	}
	return &TLSTransport{conn: conn}, nil
}

// NewTLSTransport wraps an already-established TLS connection.
func NewTLSTransport(conn *tls.Conn) svc.Transport {
	return &TLSTransport{conn: conn}
}

func (t *TLSTransport) Send(b []byte) error {
	_, err := t.conn.Write(b)
	return err
}

func (t *TLSTransport) Recv(n int) ([]byte, error) {
	buf := make([]byte, n)
	if _, err := io.ReadFull(t.conn, buf); err != nil {
		return nil, err
	}
	return buf, nil
}

func (t *TLSTransport) PeerCertificateDER() ([]byte, error) {
	certs := t.conn.ConnectionState().PeerCertificates
	if len(certs) == 0 {
		return nil, fmt.Errorf("no peer certificate")
	}
	return certs[0].Raw, nil
}

func (t *TLSTransport) Close() error { return t.conn.Close() }
