package props

const (
	cdb  = uint32(ClassDatabase)
	ccl  = uint32(ClassCluster)
	cfr  = uint32(ClassFrame)
	csig = uint32(ClassSignal)
	csub = uint32(ClassSubframe)
	cecu = uint32(ClassECU)
	cls  = uint32(ClassLINSched)
	clse = uint32(ClassLINSchedEntry)
	cpdu = uint32(ClassPDU)
)

// Database.
const (
	DatabaseName                String   = String(cdb | typeString | 0x01)
	DatabaseClusterRefs         RefArray = RefArray(cdb | typeRefArray | 0x02)
	DatabaseShowInvalidFromOpen Bool     = Bool(cdb | typeBool | 0x03)
)

// Cluster.
const (
	ClusterBaudRate      U64      = U64(ccl | typeU64 | 0x01)
	ClusterComment       String   = String(ccl | typeString | 0x02)
	ClusterConfigStatus  U32      = U32(ccl | typeU32 | 0x03)
	ClusterDatabaseRef   Ref      = Ref(ccl | typeRef | 0x04)
	ClusterECURefs       RefArray = RefArray(ccl | typeRefArray | 0x05)
	ClusterFrameRefs     RefArray = RefArray(ccl | typeRefArray | 0x06)
	ClusterName          String   = String(ccl | typeString | 0x07)
	ClusterPDURefs       RefArray = RefArray(ccl | typeRefArray | 0x08)
	ClusterPDUsRequired  Bool     = Bool(ccl | typeBool | 0x09)
	ClusterProtocol      U32      = U32(ccl | typeU32 | 0x0A)
	ClusterSignalRefs    RefArray = RefArray(ccl | typeRefArray | 0x0B)
	ClusterCANFDBaudRate U64      = U64(ccl | typeU64 | 0x0C)
	ClusterCANIOMode     U32      = U32(ccl | typeU32 | 0x0D)
	ClusterLINSchedules  RefArray = RefArray(ccl | typeRefArray | 0x0E)
	ClusterLINTick       F64      = F64(ccl | typeF64 | 0x0F)
	ClusterAppProtocol   U32      = U32(ccl | typeU32 | 0x10)
)

// Frame.
const (
	FrameApplicationProtocol U32      = U32(cfr | typeU32 | 0x01)
	FrameClusterRef          Ref      = Ref(cfr | typeRef | 0x02)
	FrameComment             String   = String(cfr | typeString | 0x03)
	FrameConfigStatus        U32      = U32(cfr | typeU32 | 0x04)
	FrameDefaultPayload      U8Array  = U8Array(cfr | typeU8Array | 0x05)
	FrameID                  U32      = U32(cfr | typeU32 | 0x06)
	FrameName                String   = String(cfr | typeString | 0x07)
	FramePayloadLength       U32      = U32(cfr | typeU32 | 0x08)
	FrameSignalRefs          RefArray = RefArray(cfr | typeRefArray | 0x09)
	FrameCANExtendedID       Bool     = Bool(cfr | typeBool | 0x10)
	FrameCANTimingType       U32      = U32(cfr | typeU32 | 0x11)
	FrameCANTransmitTime     F64      = F64(cfr | typeF64 | 0x12)
	FrameLINChecksum         U32      = U32(cfr | typeU32 | 0x13)
	FrameMuxIsMuxed          Bool     = Bool(cfr | typeBool | 0x14)
	FrameMuxDataSignalRef    Ref      = Ref(cfr | typeRef | 0x15)
	FrameMuxStaticSignalRefs RefArray = RefArray(cfr | typeRefArray | 0x16)
	FrameMuxSubframeRefs     RefArray = RefArray(cfr | typeRefArray | 0x17)
	FramePDURefs             RefArray = RefArray(cfr | typeRefArray | 0x18)
	FramePDUStartBits        U32Array = U32Array(cfr | typeU32Array | 0x19)
	FramePDUUpdateBits       U32Array = U32Array(cfr | typeU32Array | 0x1A)
)

// Signal.
const (
	SignalByteOrder      U32    = U32(csig | typeU32 | 0x01)
	SignalComment        String = String(csig | typeString | 0x02)
	SignalConfigStatus   U32    = U32(csig | typeU32 | 0x03)
	SignalDataType       U32    = U32(csig | typeU32 | 0x04)
	SignalDefault        F64    = F64(csig | typeF64 | 0x05)
	SignalFrameRef       Ref    = Ref(csig | typeRef | 0x06)
	SignalMax            F64    = F64(csig | typeF64 | 0x07)
	SignalMin            F64    = F64(csig | typeF64 | 0x08)
	SignalName           String = String(csig | typeString | 0x09)
	SignalNumBits        U32    = U32(csig | typeU32 | 0x0A)
	SignalPDURef         Ref    = Ref(csig | typeRef | 0x0B)
	SignalScaleFactor    F64    = F64(csig | typeF64 | 0x0C)
	SignalScaleOffset    F64    = F64(csig | typeF64 | 0x0D)
	SignalStartBit       U32    = U32(csig | typeU32 | 0x0E)
	SignalUnit           String = String(csig | typeString | 0x0F)
	SignalMuxIsDataMux   Bool   = Bool(csig | typeBool | 0x10)
	SignalMuxIsDynamic   Bool   = Bool(csig | typeBool | 0x11)
	SignalMuxValue       U32    = U32(csig | typeU32 | 0x12)
	SignalMuxSubframeRef Ref    = Ref(csig | typeRef | 0x13)
)

// Subframe.
const (
	SubframeConfigStatus      U32      = U32(csub | typeU32 | 0x01)
	SubframeDynamicSignalRefs RefArray = RefArray(csub | typeRefArray | 0x02)
	SubframeFrameRef          Ref      = Ref(csub | typeRef | 0x03)
	SubframeMuxValue          U32      = U32(csub | typeU32 | 0x04)
	SubframeName              String   = String(csub | typeString | 0x05)
	SubframePDURef            Ref      = Ref(csub | typeRef | 0x06)
)

// ECU.
const (
	ECUClusterRef   Ref      = Ref(cecu | typeRef | 0x01)
	ECUComment      String   = String(cecu | typeString | 0x05)
	ECUConfigStatus U32      = U32(cecu | typeU32 | 0x06)
	ECUName         String   = String(cecu | typeString | 0x02)
	ECURxFrameRefs  RefArray = RefArray(cecu | typeRefArray | 0x03)
	ECUTxFrameRefs  RefArray = RefArray(cecu | typeRefArray | 0x04)
)

// LIN schedule.
const (
	LINSchedClusterRef   Ref      = Ref(cls | typeRef | 0x05)
	LINSchedComment      String   = String(cls | typeString | 0x08)
	LINSchedConfigStatus U32      = U32(cls | typeU32 | 0x07)
	LINSchedEntries      RefArray = RefArray(cls | typeRefArray | 0x03)
	LINSchedName         String   = String(cls | typeString | 0x04)
	LINSchedPriority     U32      = U32(cls | typeU32 | 0x01)
	LINSchedRunMode      U32      = U32(cls | typeU32 | 0x02)
)

// LIN schedule entry.
const (
	LINSchedEntryCollisionResSched Ref      = Ref(clse | typeRef | 0x01)
	LINSchedEntryDelay             F64      = F64(clse | typeF64 | 0x02)
	LINSchedEntryEventID           U32      = U32(clse | typeU32 | 0x03)
	LINSchedEntryFrameRefs         RefArray = RefArray(clse | typeRefArray | 0x04)
	LINSchedEntryName              String   = String(clse | typeString | 0x06)
	LINSchedEntrySchedule          Ref      = Ref(clse | typeRef | 0x07)
	LINSchedEntryType              U32      = U32(clse | typeU32 | 0x08)
)

// PDU.
const (
	PDUClusterRef          Ref      = Ref(cpdu | typeRef | 0x04)
	PDUDefaultPayload      U8Array  = U8Array(cpdu | typeU8Array | 0x05)
	PDUComment             String   = String(cpdu | typeString | 0x02)
	PDUConfigStatus        U32      = U32(cpdu | typeU32 | 0x09)
	PDUFrameRefs           RefArray = RefArray(cpdu | typeRefArray | 0x06)
	PDUName                String   = String(cpdu | typeString | 0x01)
	PDUPayloadLength       U32      = U32(cpdu | typeU32 | 0x07)
	PDUSignalRefs          RefArray = RefArray(cpdu | typeRefArray | 0x08)
	PDUMuxIsMuxed          Bool     = Bool(cpdu | typeBool | 0x0A)
	PDUMuxDataSignalRef    Ref      = Ref(cpdu | typeRef | 0x0B)
	PDUMuxStaticSignalRefs RefArray = RefArray(cpdu | typeRefArray | 0x0C)
	PDUMuxSubframeRefs     RefArray = RefArray(cpdu | typeRefArray | 0x0D)
)
