package service

import (
	"bytes"
	"testing"
)

func TestMemTransport_RecvExact(t *testing.T) {
	tr := NewMemTransport()
	tr.FeedInbound([]byte{1, 2, 3, 4, 5})

	got, err := tr.Recv(3)
	if err != nil {
		t.Fatalf("recv failed: %v", err)
	}
	if !bytes.Equal(got, []byte{1, 2, 3}) {
		t.Errorf("recv = %v", got)
	}

	got, err = tr.Recv(2)
	if err != nil {
		t.Fatalf("recv failed: %v", err)
	}
	if !bytes.Equal(got, []byte{4, 5}) {
		t.Errorf("recv = %v", got)
	}
}

func TestMemTransport_ShortRead(t *testing.T) {
	tr := NewMemTransport()
	tr.FeedInbound([]byte{1})
	if _, err := tr.Recv(2); err == nil {
		t.Fatal("a short stream must error instead of blocking")
	}
}

func TestMemTransport_SendAfterClose(t *testing.T) {
	tr := NewMemTransport()
	if err := tr.Close(); err != nil {
		t.Fatalf("close failed: %v", err)
	}
	if err := tr.Send([]byte{1}); err == nil {
		t.Fatal("send after close must fail")
	}
}

func TestMemTransport_PeerCertificateDER(t *testing.T) {
	tr := NewMemTransport()
	if _, err := tr.PeerCertificateDER(); err == nil {
		t.Fatal("unset peer certificate must error")
	}
	der := []byte{0x30, 0x00}
	tr.SetPeerDER(der)
	got, err := tr.PeerCertificateDER()
	if err != nil {
		t.Fatalf("peer certificate failed: %v", err)
	}
	if !bytes.Equal(got, der) {
		t.Errorf("der = %x", got)
	}
}

func TestMemTransport_SendsRecorded(t *testing.T) {
	tr := NewMemTransport()
	if err := tr.Send([]byte{1, 2}); err != nil {
		t.Fatalf("send failed: %v", err)
	}
	if err := tr.Send([]byte{3}); err != nil {
		t.Fatalf("send failed: %v", err)
	}
	if tr.SendCalls() != 2 {
		t.Errorf("SendCalls() = %d, want 2", tr.SendCalls())
	}
	if !bytes.Equal(tr.Sent(), []byte{1, 2, 3}) {
		t.Errorf("Sent() = %v", tr.Sent())
	}
}
