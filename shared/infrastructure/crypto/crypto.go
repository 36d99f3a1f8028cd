package crypto

import (
	"crypto/sha256"

	"golang.org/x/crypto/ed25519"

	"ikedadada/go-torlink/shared/domain/entity"
)

// SHA256 returns the SHA-256 digest of b.
func SHA256(b []byte) [32]byte {
	return sha256.Sum256(b)
}

// VerifyEd25519Cert checks the certificate's trailing signature over its
// pre-signature bytes with the given public key. The parser never does this
// itself; the caller decides which key vouches for which certificate.
func VerifyEd25519Cert(pub ed25519.PublicKey, cert *entity.Ed25519Cert) bool {
	if len(pub) != ed25519.PublicKeySize {
		return false
	}
	return ed25519.Verify(pub, cert.PreSignature, cert.Signature[:])
}
