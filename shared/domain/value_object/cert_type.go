package value_object

// CertType is the type tag of one CERTS cell entry.
type CertType byte

const (
	CertTypeTLSLink         CertType = 1  // X.509 link certificate, RSA-signed
	CertTypeRSAIdentity     CertType = 2  // X.509 RSA identity certificate
	CertTypeRSAAuth         CertType = 3  // X.509 RSA authentication certificate
	CertTypeIdentitySigning CertType = 4  // signing key, signed with the identity key
	CertTypeSigningLink     CertType = 5  // TLS link certificate digest, signed with the signing key
	CertTypeSigningAuth     CertType = 6  // authentication key, signed with the signing key
	CertTypeRSACross        CertType = 7  // RSA identity to Ed25519 identity cross-certificate
	CertTypeHSDescSigning   CertType = 8  // onion service descriptor signing key
	CertTypeHSIntroAuth     CertType = 9  // intro point authentication key cross-certificate
	CertTypeNtorOnionCross  CertType = 10 // ntor onion key cross-certificate
	CertTypeHSNtorEnc       CertType = 11 // onion service ntor encryption key cross-certificate
)

// IsEd25519 reports whether entries of this type carry the Ed25519
// certificate format rather than an opaque body.
func (t CertType) IsEd25519() bool {
	switch t {
	case CertTypeIdentitySigning, CertTypeSigningLink, CertTypeSigningAuth,
		CertTypeHSDescSigning, CertTypeHSIntroAuth, CertTypeNtorOnionCross, CertTypeHSNtorEnc:
		return true
	default:
		return false
	}
}
