package nixnet

import "fmt"

// Protocol is the bus protocol of a cluster, interface or session.
type Protocol uint32

const (
	ProtocolUnknown Protocol = 0
	ProtocolCAN     Protocol = 1
	ProtocolFlexRay Protocol = 2
	ProtocolLIN     Protocol = 3
)

func (p Protocol) String() string {
	switch p {
	case ProtocolUnknown:
		return "Unknown"
	case ProtocolCAN:
		return "CAN"
	case ProtocolFlexRay:
		return "FlexRay"
	case ProtocolLIN:
		return "LIN"
	default:
		return fmt.Sprintf("Protocol(%d)", uint32(p))
	}
}
