package props

const (
	csys = uint32(ClassSystem)
	cdev = uint32(ClassDevice)
	cif  = uint32(ClassInterface)
)

// System properties.
const (
	SystemDevRefs       RefArray = RefArray(csys | typeRefArray | 0x02)
	SystemIntfRefs      RefArray = RefArray(csys | typeRefArray | 0x03)
	SystemIntfRefsCAN   RefArray = RefArray(csys | typeRefArray | 0x04)
	SystemIntfRefsLIN   RefArray = RefArray(csys | typeRefArray | 0x05)
	SystemVersionBuild  U32      = U32(csys | typeU32 | 0x06)
	SystemVersionMajor  U32      = U32(csys | typeU32 | 0x07)
	SystemVersionMinor  U32      = U32(csys | typeU32 | 0x08)
	SystemVersionPhase  U32      = U32(csys | typeU32 | 0x09)
	SystemVersionUpdate U32      = U32(csys | typeU32 | 0x0A)
)

// Device properties.
const (
	DeviceFormFac     U32      = U32(cdev | typeU32 | 0x01)
	DeviceIntfRefs    RefArray = RefArray(cdev | typeRefArray | 0x02)
	DeviceName        String   = String(cdev | typeString | 0x03)
	DeviceNumPorts    U32      = U32(cdev | typeU32 | 0x04)
	DeviceProductName String   = String(cdev | typeString | 0x05)
	DeviceProductNum  U32      = U32(cdev | typeU32 | 0x06)
	DeviceSerialNum   U32      = U32(cdev | typeU32 | 0x07)
	DeviceSlotNum     U32      = U32(cdev | typeU32 | 0x08)
)

// Interface properties.
const (
	IntfDevRef      Ref    = Ref(cif | typeRef | 0x01)
	IntfName        String = String(cif | typeString | 0x02)
	IntfNum         U32    = U32(cif | typeU32 | 0x03)
	IntfPortNum     U32    = U32(cif | typeU32 | 0x04)
	IntfProtocol    U32    = U32(cif | typeU32 | 0x05)
	IntfCANTermCap  U32    = U32(cif | typeU32 | 0x08)
	IntfCANTcvrCap  U32    = U32(cif | typeU32 | 0x09)
	IntfDongleState U32    = U32(cif | typeU32 | 0x0B)
	IntfDongleID    U32    = U32(cif | typeU32 | 0x0C)
)
