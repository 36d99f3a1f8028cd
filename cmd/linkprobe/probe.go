package main

import (
	"crypto/tls"
	"encoding/hex"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/crypto/ed25519"

	"ikedadada/go-torlink/shared/domain/entity"
	vo "ikedadada/go-torlink/shared/domain/value_object"
	infraCrypto "ikedadada/go-torlink/shared/infrastructure/crypto"
	infraSvc "ikedadada/go-torlink/shared/infrastructure/service"
	"ikedadada/go-torlink/shared/service"
)

func newProbeCmd() *cobra.Command {
	var configPath string
	cmd := &cobra.Command{
		Use:   "probe [relay address]",
		Short: "Run the VERSIONS/CERTS handshake against a relay ORPort",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			if len(args) == 1 {
				cfg.Relay = args[0]
			}
			if cfg.Relay == "" {
				return fmt.Errorf("no relay address given")
			}
			return runProbe(cfg)
		},
	}
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "path to a TOML config file")
	return cmd
}

func runProbe(cfg probeConfig) error {
	lvl, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("parse log_level: %w", err)
	}
	logrus.SetLevel(lvl)

	// Relays present self-signed link certificates; trust comes from the
	// CERTS handshake, not the TLS chain.
	transport, err := infraSvc.DialTLSTransport(cfg.Relay, &tls.Config{InsecureSkipVerify: true}, cfg.DialTimeout)
	if err != nil {
		return err
	}
	defer transport.Close()

	ch := service.NewChannel(transport)
	version, certs, err := ch.Handshake(cfg.offer())
	if err != nil {
		return err
	}
	logrus.WithFields(logrus.Fields{"relay": cfg.Relay, "version": version}).Info("handshake complete")

	var signingLink, identitySigning *entity.Ed25519Cert
	for _, cert := range certs {
		switch c := cert.(type) {
		case *entity.Ed25519Cert:
			logrus.WithFields(logrus.Fields{
				"type":    c.CertType,
				"expires": c.ExpiresAt(),
				"key":     hex.EncodeToString(c.CertifiedKey[:]),
			}).Info("ed25519 certificate")
			switch c.CertType {
			case vo.CertTypeSigningLink:
				signingLink = c
			case vo.CertTypeIdentitySigning:
				identitySigning = c
			}
		case *entity.OpaqueCert:
			logrus.WithFields(logrus.Fields{"type": c.CertType, "len": len(c.Raw)}).Info("certificate")
		}
	}

	if signingLink == nil {
		return fmt.Errorf("relay sent no link signing certificate (type %d)", vo.CertTypeSigningLink)
	}
	if err := ch.VerifyPeerIdentity(signingLink); err != nil {
		return err
	}
	logrus.Info("transport certificate matches the signed link certificate")

	if identitySigning != nil {
		pub := ed25519.PublicKey(identitySigning.CertifiedKey[:])
		if infraCrypto.VerifyEd25519Cert(pub, signingLink) {
			logrus.Info("link certificate signature verified with the signing key")
		} else {
			logrus.Warn("link certificate signature did not verify")
		}
	}
	return nil
}
