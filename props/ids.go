package props

// Property IDs are built as class | type | index. The type nibble fixes the
// wire shape; the Go type of each constant fixes which accessor can read it.
const (
	typeU32         uint32 = 0x00000000
	typeF64         uint32 = 0x01000000
	typeBool        uint32 = 0x02000000
	typeString      uint32 = 0x03000000
	typeStringArray uint32 = 0x04000000
	typeRef         uint32 = 0x05000000
	typeRefArray    uint32 = 0x06000000
	typeTime        uint32 = 0x07000000
	typeU32Array    uint32 = 0x08000000
	typeU64         uint32 = 0x09000000
	typeU8Array     uint32 = 0x0A000000
)

// Class is a native object class. Database classes double as the class
// argument of DbCreateObject and DbFindObject.
type Class uint32

const (
	ClassDatabase      Class = 0x00000000
	ClassCluster       Class = 0x00010000
	ClassFrame         Class = 0x00020000
	ClassSignal        Class = 0x00030000
	ClassSubframe      Class = 0x00040000
	ClassECU           Class = 0x00050000
	ClassLINSched      Class = 0x00060000
	ClassLINSchedEntry Class = 0x00070000
	ClassPDU           Class = 0x00080000
	ClassSession       Class = 0x00100000
	ClassSystem        Class = 0x00110000
	ClassDevice        Class = 0x00120000
	ClassInterface     Class = 0x00130000
)

// One type per wire shape.
type (
	Bool        uint32
	U8          uint32
	U32         uint32
	U64         uint32
	F64         uint32
	Time        uint32
	String      uint32
	StringArray uint32
	Ref         uint32
	RefArray    uint32
	U32Array    uint32
	U8Array     uint32
)
