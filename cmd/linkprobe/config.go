package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	vo "ikedadada/go-torlink/shared/domain/value_object"
)

type probeConfig struct {
	Relay       string
	DialTimeout time.Duration
	Versions    []uint16
	LogLevel    string
}

type fileConfig struct {
	Relay       string   `toml:"relay"`
	DialTimeout string   `toml:"dial_timeout"`
	Versions    []uint16 `toml:"versions"`
	LogLevel    string   `toml:"log_level"`
}

func defaultConfig() probeConfig {
	return probeConfig{
		DialTimeout: 10 * time.Second,
		Versions:    []uint16{3, 4, 5},
		LogLevel:    "info",
	}
}

func loadConfig(path string) (probeConfig, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return probeConfig{}, fmt.Errorf("load probe config: %w", err)
	}

	if meta.IsDefined("relay") {
		cfg.Relay = strings.TrimSpace(raw.Relay)
	}

	if meta.IsDefined("dial_timeout") {
		d, err := time.ParseDuration(strings.TrimSpace(raw.DialTimeout))
		if err != nil {
			return probeConfig{}, fmt.Errorf("parse dial_timeout: %w", err)
		}
		cfg.DialTimeout = d
	}

	if meta.IsDefined("versions") {
		cfg.Versions = raw.Versions
	}

	if meta.IsDefined("log_level") {
		cfg.LogLevel = strings.TrimSpace(raw.LogLevel)
	}

	return cfg, nil
}

// offer converts the configured version numbers into protocol versions.
func (c probeConfig) offer() []vo.ProtocolVersion {
	offer := make([]vo.ProtocolVersion, len(c.Versions))
	for i, v := range c.Versions {
		offer[i] = vo.ProtocolVersion(v)
	}
	return offer
}
