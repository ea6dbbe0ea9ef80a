package props

const cs = uint32(ClassSession)

// Session properties.
const (
	SessionApplicationProtocol U32         = U32(cs | typeU32 | 0x01)
	SessionAutoStart           Bool        = Bool(cs | typeBool | 0x01)
	SessionClusterName         String      = String(cs | typeString | 0x02)
	SessionDatabaseName        String      = String(cs | typeString | 0x03)
	SessionList                StringArray = StringArray(cs | typeStringArray | 0x03)
	SessionNumInList           U32         = U32(cs | typeU32 | 0x04)
	SessionMode                U32         = U32(cs | typeU32 | 0x05)
	SessionNumFrames           U32         = U32(cs | typeU32 | 0x06)
	SessionNumPending          U32         = U32(cs | typeU32 | 0x07)
	SessionNumUnused           U32         = U32(cs | typeU32 | 0x08)
	SessionPayloadLengthMax    U32         = U32(cs | typeU32 | 0x09)
	SessionProtocol            U32         = U32(cs | typeU32 | 0x0A)
	SessionQueueSize           U32         = U32(cs | typeU32 | 0x0C)
	SessionResampleRate        F64         = F64(cs | typeF64 | 0x0E)
	SessionInterfaceName       String      = String(cs | typeString | 0x13)
)

// Interface properties reached through a session handle.
const (
	SessionIntfBaudRate          U64  = U64(cs | typeU64 | 0x16)
	SessionIntfCANFDBaudRate     U64  = U64(cs | typeU64 | 0x17)
	SessionIntfCANListenOnly     Bool = Bool(cs | typeBool | 0x22)
	SessionIntfCANTermination    U32  = U32(cs | typeU32 | 0x25)
	SessionIntfCANTxIOMode       U32  = U32(cs | typeU32 | 0x27)
	SessionIntfEchoTx            Bool = Bool(cs | typeBool | 0x10)
	SessionIntfBusErrorToInStrm  Bool = Bool(cs | typeBool | 0x15)
	SessionIntfLINMaster         Bool = Bool(cs | typeBool | 0x73)
	SessionIntfLINSleep          U32  = U32(cs | typeU32 | 0x72)
	SessionIntfLINTerm           U32  = U32(cs | typeU32 | 0xAB)
	SessionIntfStartTrigToInStrm Bool = Bool(cs | typeBool | 0x4E)
)

// Sub-indexed session properties. The sub-index is the position of the item
// in SessionList.
const (
	SessionFrameCANStartTimeOffset     F64    = F64(cs | typeF64 | 0x85)
	SessionFrameCANTransmitTime        F64    = F64(cs | typeF64 | 0x86)
	SessionFrameSkipNCyclicFrames      U32    = U32(cs | typeU32 | 0x87)
	SessionFrameOutputQueueUpdateFreq  U32    = U32(cs | typeU32 | 0x88)
	SessionFrameLINTxNCorruptedChksums U32    = U32(cs | typeU32 | 0x89)
	SessionFrameJ1939AddressFilter     String = String(cs | typeString | 0x8A)
)

// State IDs for ReadState.
const (
	StateTimeCurrent       uint32 = 0x00000001
	StateTimeCommunicating uint32 = 0x00000002
	StateTimeStart         uint32 = 0x00000003
	StateSessionInfo       uint32 = 0x00000004
	StateCANComm           uint32 = 0x00000010
	StateLINComm           uint32 = 0x00000015
	StateLINScheduleChange uint32 = 0x00000081
)
