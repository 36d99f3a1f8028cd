package value_object

import "errors"

// Common protocol errors used across different layers
var (
	// ErrInvalidFormat indicates a malformed or truncated binary structure
	ErrInvalidFormat = errors.New("invalid format")

	// ErrInvalidVersion indicates a link protocol version outside the supported range
	ErrInvalidVersion = errors.New("invalid version")

	// ErrCertMismatch indicates the transport certificate does not match the signed certificate
	ErrCertMismatch = errors.New("certificate mismatch")

	// ErrNotImplemented marks an encode or decode direction this channel never uses
	ErrNotImplemented = errors.New("not implemented")
)

// IsInvalidFormat checks if an error is an "invalid format" error
func IsInvalidFormat(err error) bool {
	return errors.Is(err, ErrInvalidFormat)
}

// IsInvalidVersion checks if an error is an "invalid version" error
func IsInvalidVersion(err error) bool {
	return errors.Is(err, ErrInvalidVersion)
}

// IsCertMismatch checks if an error is a "certificate mismatch" error
func IsCertMismatch(err error) bool {
	return errors.Is(err, ErrCertMismatch)
}

// IsNotImplemented checks if an error is a "not implemented" error
func IsNotImplemented(err error) bool {
	return errors.Is(err, ErrNotImplemented)
}
