package service

import (
	"crypto/subtle"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"ikedadada/go-torlink/shared/domain/entity"
	vo "ikedadada/go-torlink/shared/domain/value_object"
	"ikedadada/go-torlink/shared/infrastructure/crypto"
)

// Channel is one link-layer session over a secure transport. It owns the
// transport handle for its lifetime; the caller closes the transport when
// done. A channel is not safe for concurrent use: framing requires strict
// header-then-payload ordering on the wire, so concurrent callers must
// serialize access externally.
type Channel struct {
	id        uuid.UUID
	transport Transport
	width     vo.CircuitIDWidth
	codec     CellCodecService
	log       *logrus.Entry
}

// NewChannel wraps an open transport. The circuit-ID width starts at 16 bits
// and is never renegotiated in-band after construction.
func NewChannel(t Transport) *Channel {
	id := uuid.New()
	return &Channel{
		id:        id,
		transport: t,
		width:     vo.Width16,
		codec:     NewCellCodecService(vo.Width16),
		log:       logrus.WithField("channel", id.String()),
	}
}

// ID returns the session identifier used to correlate log output.
func (ch *Channel) ID() uuid.UUID { return ch.id }

// Width returns the circuit-ID width in force on this channel.
func (ch *Channel) Width() vo.CircuitIDWidth { return ch.width }

// Send frames and writes one cell. Transport errors pass through unchanged.
func (ch *Channel) Send(c *entity.Cell) error {
	if err := ch.codec.WriteCell(ch.transport, c); err != nil {
		ch.log.WithError(err).WithField("cmd", c.Cmd).Error("send cell")
		return err
	}
	ch.log.WithFields(logrus.Fields{"cmd": c.Cmd, "len": len(c.Payload)}).Debug("sent cell")
	return nil
}

// Receive blocks for the next cell. Transport errors pass through unchanged.
func (ch *Channel) Receive() (*entity.Cell, error) {
	c, err := ch.codec.ReadCell(ch.transport)
	if err != nil {
		return nil, err
	}
	ch.log.WithFields(logrus.Fields{"cmd": c.Cmd, "len": len(c.Payload)}).Debug("received cell")
	return c, nil
}

// SendTyped encodes v with the codec and sends the resulting cell. An encode
// failure short-circuits without touching the transport.
func SendTyped[T any](ch *Channel, codec PayloadCodec[T], v T) error {
	c, err := codec.ToCell(v)
	if err != nil {
		return err
	}
	return ch.Send(c)
}

// ReceiveTyped receives one cell and decodes it with the codec.
func ReceiveTyped[T any](ch *Channel, codec PayloadCodec[T]) (T, error) {
	var zero T
	c, err := ch.Receive()
	if err != nil {
		return zero, err
	}
	return codec.FromCell(c)
}

// Handshake offers the given versions, negotiates the highest version both
// sides support, and collects the relay's CERTS cell. The circuit-ID width
// stays at 16 bits regardless of the outcome.
func (ch *Channel) Handshake(offer []vo.ProtocolVersion) (vo.ProtocolVersion, []entity.Certificate, error) {
	versionsCodec := NewVersionsCodecService()
	if err := SendTyped(ch, versionsCodec, offer); err != nil {
		return 0, nil, err
	}
	theirs, err := ReceiveTyped[[]vo.ProtocolVersion](ch, versionsCodec)
	if err != nil {
		return 0, nil, err
	}
	negotiated, err := vo.NegotiateVersion(offer, theirs)
	if err != nil {
		return 0, nil, err
	}
	certs, err := ReceiveTyped[[]entity.Certificate](ch, NewCertsCodecService())
	if err != nil {
		return 0, nil, err
	}
	ch.log.WithFields(logrus.Fields{"version": negotiated, "certs": len(certs)}).Info("link handshake complete")
	return negotiated, certs, nil
}

// VerifyPeerIdentity binds the transport's certificate to the signed link
// certificate (type 5): the certified key must equal the SHA-256 digest of
// the peer certificate's DER encoding. No chain-of-trust, expiry or
// signature checks happen here, so success is not full authentication.
func (ch *Channel) VerifyPeerIdentity(signing *entity.Ed25519Cert) error {
	if signing.CertType != vo.CertTypeSigningLink {
		return fmt.Errorf("%w: identity check needs a type %d certificate, got %d", vo.ErrCertMismatch, vo.CertTypeSigningLink, signing.CertType)
	}
	der, err := ch.transport.PeerCertificateDER()
	if err != nil {
		return err
	}
	digest := crypto.SHA256(der)
	if subtle.ConstantTimeCompare(digest[:], signing.CertifiedKey[:]) != 1 {
		ch.log.Warn("peer certificate digest mismatch")
		return fmt.Errorf("%w: transport certificate digest does not match the certified key", vo.ErrCertMismatch)
	}
	return nil
}
