package service

import "ikedadada/go-torlink/shared/domain/entity"

// PayloadCodec converts between a typed cell value and its framed Cell.
// One implementation exists per cell type, so the channel's typed send and
// receive paths stay generic over the value type.
type PayloadCodec[T any] interface {
	// ToCell builds the outbound cell for v.
	ToCell(v T) (*entity.Cell, error)

	// FromCell parses the payload of a received cell, checking the command.
	FromCell(c *entity.Cell) (T, error)
}
