package value_object

import "fmt"

// ProtocolVersion is a link protocol version number as carried in a
// VERSIONS cell.
type ProtocolVersion uint16

const (
	MinProtocolVersion ProtocolVersion = 1
	MaxProtocolVersion ProtocolVersion = 5
)

// MaxHandshakeVersions caps how many entries an inbound VERSIONS payload may
// carry before the strict parser rejects it.
const MaxHandshakeVersions = 5

// IsSupported checks if the version lies in the supported range.
func (v ProtocolVersion) IsSupported() bool {
	return v >= MinProtocolVersion && v <= MaxProtocolVersion
}

// NegotiateVersion returns the highest version present in both sets.
func NegotiateVersion(ours, theirs []ProtocolVersion) (ProtocolVersion, error) {
	var best ProtocolVersion
	for _, o := range ours {
		for _, t := range theirs {
			if o == t && o > best {
				best = o
			}
		}
	}
	if best == 0 {
		return 0, fmt.Errorf("%w: no common link protocol version", ErrInvalidVersion)
	}
	return best, nil
}
