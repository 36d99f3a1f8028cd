package service

import (
	"encoding/binary"
	"fmt"

	"ikedadada/go-torlink/shared/domain/entity"
	vo "ikedadada/go-torlink/shared/domain/value_object"
)

// VersionsCodecService encodes and decodes VERSIONS cells. Inbound cells go
// through the strict parser: every value must be a supported version and at
// most vo.MaxHandshakeVersions entries are accepted. DecodePayload is the
// plain variant without those checks.
type VersionsCodecService interface {
	PayloadCodec[[]vo.ProtocolVersion]

	// DecodePayload parses a raw VERSIONS payload without the strict checks.
	DecodePayload(payload []byte) ([]vo.ProtocolVersion, error)
}

type versionsCodecServiceImpl struct{}

// NewVersionsCodecService creates a new VERSIONS cell codec.
func NewVersionsCodecService() VersionsCodecService {
	return &versionsCodecServiceImpl{}
}

func (s *versionsCodecServiceImpl) DecodePayload(payload []byte) ([]vo.ProtocolVersion, error) {
	if len(payload)%2 != 0 {
		return nil, fmt.Errorf("%w: versions payload length %d is odd", vo.ErrInvalidFormat, len(payload))
	}
	versions := make([]vo.ProtocolVersion, 0, len(payload)/2)
	for i := 0; i < len(payload); i += 2 {
		versions = append(versions, vo.ProtocolVersion(binary.BigEndian.Uint16(payload[i:i+2])))
	}
	return versions, nil
}

func (s *versionsCodecServiceImpl) FromCell(c *entity.Cell) ([]vo.ProtocolVersion, error) {
	if c.Cmd != vo.CmdVersions {
		return nil, fmt.Errorf("%w: expected a VERSIONS cell, got %s", vo.ErrInvalidFormat, c.Cmd)
	}
	versions, err := s.DecodePayload(c.Payload)
	if err != nil {
		return nil, err
	}
	if len(versions) > vo.MaxHandshakeVersions {
		return nil, fmt.Errorf("%w: %d versions exceeds the %d-entry cap", vo.ErrInvalidFormat, len(versions), vo.MaxHandshakeVersions)
	}
	for _, v := range versions {
		if !v.IsSupported() {
			return nil, fmt.Errorf("%w: version %d out of range", vo.ErrInvalidFormat, v)
		}
	}
	return versions, nil
}

// ToCell concatenates the versions as 16-bit big-endian integers in the
// given order. VERSIONS cells always travel on circuit 0.
func (s *versionsCodecServiceImpl) ToCell(versions []vo.ProtocolVersion) (*entity.Cell, error) {
	payload := make([]byte, 2*len(versions))
	for i, v := range versions {
		if !v.IsSupported() {
			return nil, fmt.Errorf("%w: %d", vo.ErrInvalidVersion, v)
		}
		binary.BigEndian.PutUint16(payload[2*i:], uint16(v))
	}
	return entity.NewCell(0, vo.CmdVersions, payload)
}
