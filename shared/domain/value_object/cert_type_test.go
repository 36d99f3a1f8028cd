package value_object

import "testing"

func TestCertType_IsEd25519(t *testing.T) {
	ed25519Types := []CertType{4, 5, 6, 8, 9, 10, 11}
	for _, ct := range ed25519Types {
		if !ct.IsEd25519() {
			t.Errorf("cert type %d must use the ed25519 format", ct)
		}
	}
	opaqueTypes := []CertType{1, 2, 3, 7, 12, 255}
	for _, ct := range opaqueTypes {
		if ct.IsEd25519() {
			t.Errorf("cert type %d must be opaque", ct)
		}
	}
}
