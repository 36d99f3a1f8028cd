package value_object

import "fmt"

// CellCommand identifies the type of a link-layer cell.
type CellCommand byte

const (
	// Cell command types
	CmdPadding          CellCommand = 0
	CmdCreate           CellCommand = 1
	CmdCreated          CellCommand = 2
	CmdRelay            CellCommand = 3
	CmdDestroy          CellCommand = 4
	CmdCreateFast       CellCommand = 5
	CmdCreatedFast      CellCommand = 6
	CmdVersions         CellCommand = 7
	CmdNetInfo          CellCommand = 8
	CmdRelayEarly       CellCommand = 9
	CmdCreate2          CellCommand = 10
	CmdCreated2         CellCommand = 11
	CmdPaddingNegotiate CellCommand = 12
	CmdVPadding         CellCommand = 128
	CmdCerts            CellCommand = 129
	CmdAuthChallenge    CellCommand = 130
	CmdAuthenticate     CellCommand = 131
)

// IsVariableLength reports whether the command uses variable-length framing.
// VERSIONS (7) and every command >= 128 carry an explicit payload length;
// all other cells are padded to the fixed body size. The same predicate
// drives both the encode and the decode path.
func (c CellCommand) IsVariableLength() bool {
	return c >= 128 || c == CmdVersions
}

// String returns the string representation of the cell command
func (c CellCommand) String() string {
	switch c {
	case CmdPadding:
		return "PADDING"
	case CmdCreate:
		return "CREATE"
	case CmdCreated:
		return "CREATED"
	case CmdRelay:
		return "RELAY"
	case CmdDestroy:
		return "DESTROY"
	case CmdCreateFast:
		return "CREATE_FAST"
	case CmdCreatedFast:
		return "CREATED_FAST"
	case CmdVersions:
		return "VERSIONS"
	case CmdNetInfo:
		return "NETINFO"
	case CmdRelayEarly:
		return "RELAY_EARLY"
	case CmdCreate2:
		return "CREATE2"
	case CmdCreated2:
		return "CREATED2"
	case CmdPaddingNegotiate:
		return "PADDING_NEGOTIATE"
	case CmdVPadding:
		return "VPADDING"
	case CmdCerts:
		return "CERTS"
	case CmdAuthChallenge:
		return "AUTH_CHALLENGE"
	case CmdAuthenticate:
		return "AUTHENTICATE"
	default:
		return fmt.Sprintf("UNKNOWN(%d)", byte(c))
	}
}
