package session

import (
	"fmt"
	"time"
)

// Mode is the kind of session: direction, frame or signal, and how data is
// buffered.
type Mode uint32

const (
	ModeSignalInSinglePoint         Mode = 0
	ModeSignalInWaveform            Mode = 1
	ModeSignalInXY                  Mode = 2
	ModeSignalOutSinglePoint        Mode = 3
	ModeSignalOutWaveform           Mode = 4
	ModeSignalOutXY                 Mode = 5
	ModeFrameInStream               Mode = 6
	ModeFrameInQueued               Mode = 7
	ModeFrameInSinglePoint          Mode = 8
	ModeFrameOutStream              Mode = 9
	ModeFrameOutQueued              Mode = 10
	ModeFrameOutSinglePoint         Mode = 11
	ModeSignalConversionSinglePoint Mode = 12
)

var modeNames = map[Mode]string{
	ModeSignalInSinglePoint:         "SignalInSinglePoint",
	ModeSignalInWaveform:            "SignalInWaveform",
	ModeSignalInXY:                  "SignalInXY",
	ModeSignalOutSinglePoint:        "SignalOutSinglePoint",
	ModeSignalOutWaveform:           "SignalOutWaveform",
	ModeSignalOutXY:                 "SignalOutXY",
	ModeFrameInStream:               "FrameInStream",
	ModeFrameInQueued:               "FrameInQueued",
	ModeFrameInSinglePoint:          "FrameInSinglePoint",
	ModeFrameOutStream:              "FrameOutStream",
	ModeFrameOutQueued:              "FrameOutQueued",
	ModeFrameOutSinglePoint:         "FrameOutSinglePoint",
	ModeSignalConversionSinglePoint: "SignalConversionSinglePoint",
}

func (m Mode) String() string {
	if s, ok := modeNames[m]; ok {
		return s
	}
	return fmt.Sprintf("Mode(%d)", uint32(m))
}

// IsFrame reports whether the session moves raw frames rather than signals.
func (m Mode) IsFrame() bool { return m >= ModeFrameInStream && m <= ModeFrameOutSinglePoint }

// Scope of Start and Stop.
type Scope uint32

const (
	ScopeNormal              Scope = 0
	ScopeSessionOnly         Scope = 1
	ScopeInterfaceOnly       Scope = 2
	ScopeSessionOnlyBlocking Scope = 3
)

// WaitCondition for Wait.
type WaitCondition uint32

const (
	WaitTransmitComplete  WaitCondition = 0x8001
	WaitIntfCommunicating WaitCondition = 0x8002
	WaitIntfRemoteWakeup  WaitCondition = 0x8003
)

// Termination of a CAN or LIN interface.
type Termination uint32

const (
	TerminationOff Termination = 0
	TerminationOn  Termination = 1
)

// CANTxIOMode of the interface.
type CANTxIOMode uint32

const (
	TxIOCAN      CANTxIOMode = 0
	TxIOCANFD    CANTxIOMode = 1
	TxIOCANFDBRS CANTxIOMode = 2
)

const (
	// TimeoutNone returns at once with whatever is available.
	TimeoutNone time.Duration = 0
	// TimeoutInfinite waits until the operation completes.
	TimeoutInfinite time.Duration = -1
)

// seconds converts a timeout to the driver's representation.
func seconds(d time.Duration) float64 {
	switch {
	case d == TimeoutNone:
		return 0
	case d < 0:
		return -1
	default:
		return d.Seconds()
	}
}
