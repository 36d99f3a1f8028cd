package entity

import (
	vo "ikedadada/go-torlink/shared/domain/value_object"
)

// Certificate is one entry of a CERTS cell. Exactly two variants exist:
// OpaqueCert for bodies this channel does not parse and Ed25519Cert for the
// types listed by vo.CertType.IsEd25519.
type Certificate interface {
	// Type returns the entry's type tag from the CERTS list.
	Type() vo.CertType
}

// OpaqueCert keeps the raw body of a certificate type this channel does not
// parse, such as the X.509 link and RSA identity certificates.
type OpaqueCert struct {
	CertType vo.CertType
	Raw      []byte
}

func (c *OpaqueCert) Type() vo.CertType { return c.CertType }
