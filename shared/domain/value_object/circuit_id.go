package value_object

// CircuitID identifies the logical circuit a cell belongs to. Only the value
// is stored; the owning channel decides how many bytes go on the wire.
type CircuitID uint32

// FitsWidth reports whether the value can be written in the given width.
func (id CircuitID) FitsWidth(w CircuitIDWidth) bool {
	return w == Width32 || id <= 0xFFFF
}

// CircuitIDWidth is the wire width of a circuit ID, fixed per channel.
// Link protocol versions below 4 use 16-bit IDs, version 4 and later 32-bit.
type CircuitIDWidth int

const (
	Width16 CircuitIDWidth = 16
	Width32 CircuitIDWidth = 32
)

// ByteLen returns the number of bytes a circuit ID occupies on the wire.
func (w CircuitIDWidth) ByteLen() int { return int(w) / 8 }

// IsValid checks that the width is one of the two defined widths.
func (w CircuitIDWidth) IsValid() bool { return w == Width16 || w == Width32 }
