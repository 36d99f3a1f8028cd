package entity

import (
	"encoding/binary"
	"fmt"
	"time"

	vo "ikedadada/go-torlink/shared/domain/value_object"
)

const (
	// version(1) + cert type(1) + expiration(4) + key type(1) + key(32) + n extensions(1)
	ed25519CertHeaderLen = 40
	ed25519CertSigLen    = 64
)

// ExtTypeSignedWithEd25519Key marks the extension that embeds the public key
// the certificate was signed with.
const ExtTypeSignedWithEd25519Key = 4

// CertExtension is one extension record of an Ed25519 certificate. The data
// length is explicit on the wire, never implied by the extension type.
type CertExtension struct {
	ExtType  byte
	ExtFlags byte
	ExtData  []byte
}

// Ed25519Cert is the parsed Ed25519 certificate format shared by several
// CERTS entry types. CertType carries the outer list tag, which is
// authoritative; InnerType keeps the body's own type byte so callers can
// spot a disagreement between the two.
type Ed25519Cert struct {
	CertType     vo.CertType
	InnerType    byte
	Version      byte
	Expiration   uint32 // hours since the Unix epoch
	CertKeyType  byte
	CertifiedKey [32]byte
	Extensions   []CertExtension
	Signature    [64]byte
	PreSignature []byte // every byte before the trailing signature, verbatim
}

func (c *Ed25519Cert) Type() vo.CertType { return c.CertType }

// ExpiresAt converts the hours-since-epoch expiration field. Nothing in this
// package acts on it; expiry checking is the caller's concern.
func (c *Ed25519Cert) ExpiresAt() time.Time {
	return time.Unix(int64(c.Expiration)*3600, 0).UTC()
}

// SigningKey returns the public key embedded via the signed-with-ed25519-key
// extension, or false when the extension is absent or malformed.
func (c *Ed25519Cert) SigningKey() ([32]byte, bool) {
	for _, ext := range c.Extensions {
		if ext.ExtType == ExtTypeSignedWithEd25519Key && len(ext.ExtData) == 32 {
			var key [32]byte
			copy(key[:], ext.ExtData)
			return key, true
		}
	}
	return [32]byte{}, false
}

// ParseEd25519Cert decodes the Ed25519 certificate body. certType is the
// outer CERTS list tag. The parse is atomic: either the fixed header, the
// declared extensions and the trailing 64-byte signature account for every
// input byte, or an error is returned and no partial certificate escapes.
func ParseEd25519Cert(certType vo.CertType, b []byte) (*Ed25519Cert, error) {
	if len(b) < ed25519CertHeaderLen {
		return nil, fmt.Errorf("%w: ed25519 cert header: got %d bytes, need %d", vo.ErrInvalidFormat, len(b), ed25519CertHeaderLen)
	}
	c := &Ed25519Cert{
		CertType:    certType,
		Version:     b[0],
		InnerType:   b[1],
		Expiration:  binary.BigEndian.Uint32(b[2:6]),
		CertKeyType: b[6],
	}
	copy(c.CertifiedKey[:], b[7:39])
	numExt := int(b[39])

	rest := b[ed25519CertHeaderLen:]
	for i := 0; i < numExt; i++ {
		if len(rest) < 4 {
			return nil, fmt.Errorf("%w: ed25519 cert extension %d: truncated header", vo.ErrInvalidFormat, i)
		}
		extLen := int(binary.BigEndian.Uint16(rest[0:2]))
		ext := CertExtension{ExtType: rest[2], ExtFlags: rest[3]}
		rest = rest[4:]
		if len(rest) < extLen {
			return nil, fmt.Errorf("%w: ed25519 cert extension %d: %d byte body, %d remaining", vo.ErrInvalidFormat, i, extLen, len(rest))
		}
		ext.ExtData = rest[:extLen]
		rest = rest[extLen:]
		c.Extensions = append(c.Extensions, ext)
	}

	if len(rest) != ed25519CertSigLen {
		return nil, fmt.Errorf("%w: ed25519 cert signature: %d bytes left after extensions, need %d", vo.ErrInvalidFormat, len(rest), ed25519CertSigLen)
	}
	copy(c.Signature[:], rest)
	c.PreSignature = b[:len(b)-ed25519CertSigLen]
	return c, nil
}
