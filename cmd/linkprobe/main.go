// Package main provides the entry point for the linkprobe CLI.
//
// linkprobe dials a Tor relay's ORPort over TLS, runs the VERSIONS/CERTS
// link handshake and reports the negotiated protocol version, the
// certificate list and whether the transport certificate matches the signed
// link certificate.
//
// Usage:
//
//	linkprobe probe <host:port>
//	linkprobe probe --config probe.toml
//
// See --help for all available options.
package main

// main is the entry point for linkprobe.
func main() {
	Execute()
}
