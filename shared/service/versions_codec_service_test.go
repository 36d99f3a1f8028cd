package service

import (
	"bytes"
	"testing"

	"ikedadada/go-torlink/shared/domain/entity"
	vo "ikedadada/go-torlink/shared/domain/value_object"
)

func TestVersionsCodecService_RoundTrip(t *testing.T) {
	svc := NewVersionsCodecService()

	cell, err := svc.ToCell([]vo.ProtocolVersion{1, 3, 5})
	if err != nil {
		t.Fatalf("encode failed: %v", err)
	}
	if cell.CircID != 0 {
		t.Errorf("VERSIONS cells travel on circuit 0, got %d", cell.CircID)
	}
	if cell.Cmd != vo.CmdVersions {
		t.Errorf("command = %d, want %d", cell.Cmd, vo.CmdVersions)
	}
	if !bytes.Equal(cell.Payload, []byte{0x00, 0x01, 0x00, 0x03, 0x00, 0x05}) {
		t.Errorf("payload = %x", cell.Payload)
	}

	decoded, err := svc.FromCell(cell)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if len(decoded) != 3 || decoded[0] != 1 || decoded[1] != 3 || decoded[2] != 5 {
		t.Errorf("decoded = %v, want [1 3 5]", decoded)
	}
}

func TestVersionsCodecService_EncodeRejectsOutOfRange(t *testing.T) {
	svc := NewVersionsCodecService()
	_, err := svc.ToCell([]vo.ProtocolVersion{1, 6})
	if err == nil {
		t.Fatal("version 6 must be rejected on encode")
	}
	if !vo.IsInvalidVersion(err) {
		t.Errorf("expected invalid version error, got %v", err)
	}
}

func TestVersionsCodecService_StrictDecodeCapsEntries(t *testing.T) {
	svc := NewVersionsCodecService()

	// 11 entries of value 1: fine for the plain parser, too many for the
	// strict inbound one.
	payload := make([]byte, 22)
	for i := 1; i < len(payload); i += 2 {
		payload[i] = 1
	}

	versions, err := svc.DecodePayload(payload)
	if err != nil {
		t.Fatalf("plain decode failed: %v", err)
	}
	if len(versions) != 11 {
		t.Fatalf("plain decode returned %d entries, want 11", len(versions))
	}

	cell, err := entity.NewCell(0, vo.CmdVersions, payload)
	if err != nil {
		t.Fatalf("build cell: %v", err)
	}
	if _, err := svc.FromCell(cell); err == nil {
		t.Fatal("strict decode must reject more than 5 entries")
	} else if !vo.IsInvalidFormat(err) {
		t.Errorf("expected invalid format error, got %v", err)
	}
}

func TestVersionsCodecService_StrictDecodeRejectsUnknownValue(t *testing.T) {
	svc := NewVersionsCodecService()
	cell, err := entity.NewCell(0, vo.CmdVersions, []byte{0x00, 0x06})
	if err != nil {
		t.Fatalf("build cell: %v", err)
	}
	if _, err := svc.FromCell(cell); err == nil {
		t.Fatal("strict decode must reject version 6")
	} else if !vo.IsInvalidFormat(err) {
		t.Errorf("expected invalid format error, got %v", err)
	}
}

func TestVersionsCodecService_OddPayload(t *testing.T) {
	svc := NewVersionsCodecService()
	if _, err := svc.DecodePayload([]byte{0x00, 0x03, 0x00}); err == nil {
		t.Fatal("odd payload length must be rejected")
	} else if !vo.IsInvalidFormat(err) {
		t.Errorf("expected invalid format error, got %v", err)
	}
}

func TestVersionsCodecService_WrongCommand(t *testing.T) {
	svc := NewVersionsCodecService()
	cell, err := entity.NewCell(0, vo.CmdCerts, nil)
	if err != nil {
		t.Fatalf("build cell: %v", err)
	}
	if _, err := svc.FromCell(cell); err == nil {
		t.Fatal("non-VERSIONS cells must be rejected")
	}
}
