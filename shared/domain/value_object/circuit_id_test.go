package value_object

import "testing"

func TestCircuitIDWidth_ByteLen(t *testing.T) {
	if got := Width16.ByteLen(); got != 2 {
		t.Errorf("Width16.ByteLen() = %d, want 2", got)
	}
	if got := Width32.ByteLen(); got != 4 {
		t.Errorf("Width32.ByteLen() = %d, want 4", got)
	}
}

func TestCircuitIDWidth_IsValid(t *testing.T) {
	if !Width16.IsValid() || !Width32.IsValid() {
		t.Error("defined widths must be valid")
	}
	if CircuitIDWidth(24).IsValid() {
		t.Error("24-bit width must be invalid")
	}
}

func TestCircuitID_FitsWidth(t *testing.T) {
	if !CircuitID(0xFFFF).FitsWidth(Width16) {
		t.Error("0xFFFF must fit a 16-bit width")
	}
	if CircuitID(0x10000).FitsWidth(Width16) {
		t.Error("0x10000 must not fit a 16-bit width")
	}
	if !CircuitID(0xFFFFFFFF).FitsWidth(Width32) {
		t.Error("any 32-bit value must fit a 32-bit width")
	}
}
