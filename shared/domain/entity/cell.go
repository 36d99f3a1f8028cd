package entity

import (
	"fmt"

	vo "ikedadada/go-torlink/shared/domain/value_object"
)

const (
	// MaxFixedPayloadSize is the body size of a fixed-length cell. Fixed
	// cells are always padded to exactly this many bytes on the wire.
	MaxFixedPayloadSize = 509

	// MaxVarPayloadSize is the largest payload a variable-length cell can
	// carry, bounded by its 16-bit length prefix.
	MaxVarPayloadSize = 0xFFFF
)

// Cell is the atomic framed unit of the link protocol. A cell is built once,
// either from a typed value before sending or from decoded wire bytes, and
// is not mutated afterwards.
type Cell struct {
	CircID  vo.CircuitID   // Circuit the cell belongs to
	Cmd     vo.CellCommand // Command type (CmdVersions, CmdCerts, etc.)
	Payload []byte         // Cell payload data, semantics defined by Cmd
}

// NewCell creates a new Cell, enforcing the payload bound of the command's
// framing discipline at construction time.
func NewCell(circID vo.CircuitID, cmd vo.CellCommand, payload []byte) (*Cell, error) {
	if cmd.IsVariableLength() {
		if len(payload) > MaxVarPayloadSize {
			return nil, fmt.Errorf("%w: payload too big: %d > %d", vo.ErrInvalidFormat, len(payload), MaxVarPayloadSize)
		}
	} else if len(payload) > MaxFixedPayloadSize {
		return nil, fmt.Errorf("%w: payload too big: %d > %d", vo.ErrInvalidFormat, len(payload), MaxFixedPayloadSize)
	}
	return &Cell{CircID: circID, Cmd: cmd, Payload: payload}, nil
}
