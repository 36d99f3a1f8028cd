package service

import (
	"encoding/binary"
	"fmt"

	"ikedadada/go-torlink/shared/domain/entity"
	vo "ikedadada/go-torlink/shared/domain/value_object"
)

// CertsCodecService parses CERTS cells into certificate lists. This channel
// never constructs a CERTS cell, so the encode direction is not implemented.
type CertsCodecService interface {
	PayloadCodec[[]entity.Certificate]

	// DecodePayload parses a raw CERTS payload.
	DecodePayload(payload []byte) ([]entity.Certificate, error)
}

type certsCodecServiceImpl struct{}

// NewCertsCodecService creates a new CERTS cell codec.
func NewCertsCodecService() CertsCodecService {
	return &certsCodecServiceImpl{}
}

// DecodePayload decodes the declared number of entries in encounter order.
// Relay ordering is preserved for downstream consumers. Any malformed entry
// aborts the whole decode; no partial list is ever returned.
func (s *certsCodecServiceImpl) DecodePayload(payload []byte) ([]entity.Certificate, error) {
	if len(payload) < 1 {
		return nil, fmt.Errorf("%w: empty CERTS payload", vo.ErrInvalidFormat)
	}
	count := int(payload[0])
	rest := payload[1:]
	certs := make([]entity.Certificate, 0, count)
	for i := 0; i < count; i++ {
		if len(rest) < 3 {
			return nil, fmt.Errorf("%w: CERTS entry %d: truncated header", vo.ErrInvalidFormat, i)
		}
		certType := vo.CertType(rest[0])
		certLen := int(binary.BigEndian.Uint16(rest[1:3]))
		rest = rest[3:]
		if len(rest) < certLen {
			return nil, fmt.Errorf("%w: CERTS entry %d: %d byte body, %d remaining", vo.ErrInvalidFormat, i, certLen, len(rest))
		}
		body := rest[:certLen]
		rest = rest[certLen:]

		if certType.IsEd25519() {
			cert, err := entity.ParseEd25519Cert(certType, body)
			if err != nil {
				return nil, fmt.Errorf("CERTS entry %d: %w", i, err)
			}
			certs = append(certs, cert)
			continue
		}
		certs = append(certs, &entity.OpaqueCert{CertType: certType, Raw: body})
	}
	return certs, nil
}

func (s *certsCodecServiceImpl) FromCell(c *entity.Cell) ([]entity.Certificate, error) {
	if c.Cmd != vo.CmdCerts {
		return nil, fmt.Errorf("%w: expected a CERTS cell, got %s", vo.ErrInvalidFormat, c.Cmd)
	}
	return s.DecodePayload(c.Payload)
}

func (s *certsCodecServiceImpl) ToCell([]entity.Certificate) (*entity.Cell, error) {
	return nil, fmt.Errorf("%w: CERTS cells are receive-only on this channel", vo.ErrNotImplemented)
}
