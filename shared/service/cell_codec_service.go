package service

import (
	"encoding/binary"
	"fmt"

	"ikedadada/go-torlink/shared/domain/entity"
	vo "ikedadada/go-torlink/shared/domain/value_object"
)

// CellCodecService frames cells for the wire. The circuit-ID width is fixed
// at construction and governs both directions.
type CellCodecService interface {
	// Encode serializes the cell, padding fixed-length bodies to 509 bytes
	// and prefixing variable-length payloads with their 16-bit length.
	Encode(c *entity.Cell) ([]byte, error)

	// WriteCell encodes the cell and hands it to the transport as one write.
	WriteCell(t Transport, c *entity.Cell) error

	// ReadCell reads one cell from the transport. Fixed-length bodies are
	// stripped of all trailing zero bytes to recover the logical payload,
	// so a payload that legitimately ends in 0x00 comes back truncated.
	ReadCell(t Transport) (*entity.Cell, error)
}

type cellCodecServiceImpl struct {
	width vo.CircuitIDWidth
}

// NewCellCodecService creates a codec for the given circuit-ID width.
func NewCellCodecService(width vo.CircuitIDWidth) CellCodecService {
	return &cellCodecServiceImpl{width: width}
}

func (s *cellCodecServiceImpl) putCircID(buf []byte, id vo.CircuitID) {
	if s.width == vo.Width32 {
		binary.BigEndian.PutUint32(buf, uint32(id))
		return
	}
	binary.BigEndian.PutUint16(buf, uint16(id))
}

func (s *cellCodecServiceImpl) Encode(c *entity.Cell) ([]byte, error) {
	if !c.CircID.FitsWidth(s.width) {
		return nil, fmt.Errorf("%w: circuit id %d exceeds %d-bit width", vo.ErrInvalidFormat, c.CircID, s.width)
	}
	idLen := s.width.ByteLen()
	if c.Cmd.IsVariableLength() {
		if len(c.Payload) > entity.MaxVarPayloadSize {
			return nil, fmt.Errorf("%w: payload too big: %d > %d", vo.ErrInvalidFormat, len(c.Payload), entity.MaxVarPayloadSize)
		}
		buf := make([]byte, idLen+1+2+len(c.Payload))
		s.putCircID(buf, c.CircID)
		buf[idLen] = byte(c.Cmd)
		binary.BigEndian.PutUint16(buf[idLen+1:], uint16(len(c.Payload)))
		copy(buf[idLen+3:], c.Payload)
		return buf, nil
	}
	if len(c.Payload) > entity.MaxFixedPayloadSize {
		return nil, fmt.Errorf("%w: payload too big: %d > %d", vo.ErrInvalidFormat, len(c.Payload), entity.MaxFixedPayloadSize)
	}
	buf := make([]byte, idLen+1+entity.MaxFixedPayloadSize)
	s.putCircID(buf, c.CircID)
	buf[idLen] = byte(c.Cmd)
	copy(buf[idLen+1:], c.Payload) // remainder stays zero padding
	return buf, nil
}

func (s *cellCodecServiceImpl) WriteCell(t Transport, c *entity.Cell) error {
	buf, err := s.Encode(c)
	if err != nil {
		return err
	}
	return t.Send(buf)
}

func (s *cellCodecServiceImpl) ReadCell(t Transport) (*entity.Cell, error) {
	idLen := s.width.ByteLen()
	hdr, err := t.Recv(idLen + 1)
	if err != nil {
		return nil, err
	}
	var circID vo.CircuitID
	if s.width == vo.Width32 {
		circID = vo.CircuitID(binary.BigEndian.Uint32(hdr[:4]))
	} else {
		circID = vo.CircuitID(binary.BigEndian.Uint16(hdr[:2]))
	}
	cmd := vo.CellCommand(hdr[idLen])

	if cmd.IsVariableLength() {
		lenBuf, err := t.Recv(2)
		if err != nil {
			return nil, err
		}
		payload, err := t.Recv(int(binary.BigEndian.Uint16(lenBuf)))
		if err != nil {
			return nil, err
		}
		return entity.NewCell(circID, cmd, payload)
	}

	body, err := t.Recv(entity.MaxFixedPayloadSize)
	if err != nil {
		return nil, err
	}
	end := len(body)
	for end > 0 && body[end-1] == 0 {
		end--
	}
	return entity.NewCell(circID, cmd, body[:end])
}
