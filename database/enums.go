package database

// ByteOrder of a signal in its frame.
type ByteOrder uint32

const (
	LittleEndian ByteOrder = 0
	BigEndian    ByteOrder = 1
)

// DataType of a signal's raw value.
type DataType uint32

const (
	Signed    DataType = 0
	Unsigned  DataType = 1
	IEEEFloat DataType = 2
)

// CANTimingType controls when a CAN frame is transmitted.
type CANTimingType uint32

const (
	CyclicData   CANTimingType = 0
	EventData    CANTimingType = 1
	CyclicRemote CANTimingType = 2
	EventRemote  CANTimingType = 3
	CyclicEvent  CANTimingType = 4
)

// CANIOMode of a cluster.
type CANIOMode uint32

const (
	CAN      CANIOMode = 0
	CANFD    CANIOMode = 1
	CANFDBRS CANIOMode = 2
)

// CopyMode selects how Merge resolves objects present on both sides.
type CopyMode uint32

const (
	CopyUseSource  CopyMode = 0
	CopyUseTarget  CopyMode = 1
	MergeUseSource CopyMode = 2
	MergeUseTarget CopyMode = 3
)

// LINChecksum model of a LIN frame.
type LINChecksum uint32

const (
	ChecksumClassic  LINChecksum = 0
	ChecksumEnhanced LINChecksum = 1
)

// LINSchedRunMode of a LIN schedule.
type LINSchedRunMode uint32

const (
	RunContinuous LINSchedRunMode = 0
	RunOnce       LINSchedRunMode = 1
	RunNull       LINSchedRunMode = 2
)

// LINSchedEntryType of a schedule entry.
type LINSchedEntryType uint32

const (
	EntryUnconditional     LINSchedEntryType = 0
	EntrySporadic          LINSchedEntryType = 1
	EntryEventTriggered    LINSchedEntryType = 2
	EntryNodeConfigService LINSchedEntryType = 3
)
