package service

// Transport is the secure byte-stream collaborator a channel runs over. It is
// assumed reliable, ordered and already authenticated at the record layer.
// Every call blocks until it completes or the connection fails; transport
// errors propagate to the caller unchanged and are never retried here.
type Transport interface {
	// Send writes the whole buffer in a single call.
	Send(b []byte) error

	// Recv blocks until exactly n bytes are available and returns them. A
	// connection closed before n bytes arrive is an error.
	Recv(n int) ([]byte, error)

	// PeerCertificateDER returns the peer's leaf certificate in its original
	// DER encoding.
	PeerCertificateDER() ([]byte, error)

	// Close tears down the underlying connection.
	Close() error
}
