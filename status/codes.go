package status

// Code is a raw status returned by every NI-XNET entry point.
// Negative values are errors, positive values are warnings and zero is success.
type Code int32

const (
	Success Code = 0

	errBase  Code = -1074384896 // 0xBFF63000
	warnBase Code = 0x3FF63000
)

// Error codes.
const (
	CodeInternal                 = errBase + 0x000
	CodeSelfTestTimeout          = errBase + 0x001
	CodeSelfTestCommunication    = errBase + 0x002
	CodeSelfTestMemory           = errBase + 0x003
	CodeInvalidSessionHandle     = errBase + 0x007
	CodeInvalidDatabaseHandle    = errBase + 0x008
	CodeTimeout                  = errBase + 0x009
	CodeNullPointer              = errBase + 0x00A
	CodeInvalidMode              = errBase + 0x00B
	CodeInvalidPropertyID        = errBase + 0x00C
	CodeInvalidPropertyValue     = errBase + 0x00D
	CodeInvalidPropertySize      = errBase + 0x00E
	CodeReadOnlyProperty         = errBase + 0x00F
	CodePropertyModeConflict     = errBase + 0x010
	CodeSessionStarted           = errBase + 0x011
	CodeQueueOverflow            = errBase + 0x012
	CodeQueueUnderflow           = errBase + 0x013
	CodeOverlappingIO            = errBase + 0x014
	CodeInterfaceInUse           = errBase + 0x015
	CodeInterfaceNotFound        = errBase + 0x016
	CodeHardwareRemoved          = errBase + 0x017
	CodeOutOfMemory              = errBase + 0x018
	CodeDatabaseObjectNotFound   = errBase + 0x040
	CodeDatabaseDuplicateName    = errBase + 0x041
	CodeDatabaseAliasNotFound    = errBase + 0x042
	CodeDatabaseFileParse        = errBase + 0x043
	CodeDatabaseObjectLocked     = errBase + 0x044
	CodeDatabaseDeployInProgress = errBase + 0x045
	CodeInvalidFrameBuffer       = errBase + 0x060
	CodeFrameTooLarge            = errBase + 0x061
	CodeTerminalInUse            = errBase + 0x070
	CodeInvalidTerminal          = errBase + 0x071
	CodeLibraryNotLoaded         = errBase + 0x117
	CodeEntryPointNotFound       = errBase + 0x118
)

// Warning codes.
const (
	CodeWarnDatabaseImport          = warnBase + 0x085
	CodeWarnDatabaseImportFIBEX     = warnBase + 0x086
	CodeWarnDatabaseBadReference    = warnBase + 0x087
	CodeWarnFrameReceiveOverflow    = warnBase + 0x088
	CodeWarnPropertyValueCoerced    = warnBase + 0x089
	CodeWarnDatabaseAliasRedeployed = warnBase + 0x08A
)

// Kind is the machine-checkable category of a classified status.
type Kind string

const (
	KindNone                 Kind = "none"
	KindUnclassified         Kind = "unclassified"
	KindInternal             Kind = "internal"
	KindSelfTest             Kind = "self_test"
	KindInvalidHandle        Kind = "invalid_handle"
	KindTimeout              Kind = "timeout"
	KindInvalidArgument      Kind = "invalid_argument"
	KindInvalidProperty      Kind = "invalid_property"
	KindInvalidPropertyValue Kind = "invalid_property_value"
	KindInvalidPropertySize  Kind = "invalid_property_size"
	KindReadOnlyProperty     Kind = "read_only_property"
	KindPropertyModeConflict Kind = "property_mode_conflict"
	KindSessionState         Kind = "session_state"
	KindQueueOverflow        Kind = "queue_overflow"
	KindQueueUnderflow       Kind = "queue_underflow"
	KindOverlappingIO        Kind = "overlapping_io"
	KindInterface            Kind = "interface"
	KindHardware             Kind = "hardware"
	KindMemory               Kind = "memory"
	KindObjectNotFound       Kind = "object_not_found"
	KindDuplicateName        Kind = "duplicate_name"
	KindDatabaseAlias        Kind = "database_alias"
	KindDatabaseFile         Kind = "database_file"
	KindDatabaseBusy         Kind = "database_busy"
	KindFrameBuffer          Kind = "frame_buffer"
	KindTerminal             Kind = "terminal"
	KindLibrary              Kind = "library"
	KindDatabaseImport       Kind = "database_import"
	KindBadReference         Kind = "bad_reference"
	KindReceiveOverflow      Kind = "receive_overflow"
	KindValueCoerced         Kind = "value_coerced"
)

// kinds is the closed table of codes this package knows about.
var kinds = map[Code]Kind{
	CodeInternal:                 KindInternal,
	CodeSelfTestTimeout:          KindSelfTest,
	CodeSelfTestCommunication:    KindSelfTest,
	CodeSelfTestMemory:           KindSelfTest,
	CodeInvalidSessionHandle:     KindInvalidHandle,
	CodeInvalidDatabaseHandle:    KindInvalidHandle,
	CodeTimeout:                  KindTimeout,
	CodeNullPointer:              KindInvalidArgument,
	CodeInvalidMode:              KindInvalidArgument,
	CodeInvalidPropertyID:        KindInvalidProperty,
	CodeInvalidPropertyValue:     KindInvalidPropertyValue,
	CodeInvalidPropertySize:      KindInvalidPropertySize,
	CodeReadOnlyProperty:         KindReadOnlyProperty,
	CodePropertyModeConflict:     KindPropertyModeConflict,
	CodeSessionStarted:           KindSessionState,
	CodeQueueOverflow:            KindQueueOverflow,
	CodeQueueUnderflow:           KindQueueUnderflow,
	CodeOverlappingIO:            KindOverlappingIO,
	CodeInterfaceInUse:           KindInterface,
	CodeInterfaceNotFound:        KindInterface,
	CodeHardwareRemoved:          KindHardware,
	CodeOutOfMemory:              KindMemory,
	CodeDatabaseObjectNotFound:   KindObjectNotFound,
	CodeDatabaseDuplicateName:    KindDuplicateName,
	CodeDatabaseAliasNotFound:    KindDatabaseAlias,
	CodeDatabaseFileParse:        KindDatabaseFile,
	CodeDatabaseObjectLocked:     KindDatabaseBusy,
	CodeDatabaseDeployInProgress: KindDatabaseBusy,
	CodeInvalidFrameBuffer:       KindFrameBuffer,
	CodeFrameTooLarge:            KindFrameBuffer,
	CodeTerminalInUse:            KindTerminal,
	CodeInvalidTerminal:          KindTerminal,
	CodeLibraryNotLoaded:         KindLibrary,
	CodeEntryPointNotFound:       KindLibrary,

	CodeWarnDatabaseImport:          KindDatabaseImport,
	CodeWarnDatabaseImportFIBEX:     KindDatabaseImport,
	CodeWarnDatabaseBadReference:    KindBadReference,
	CodeWarnFrameReceiveOverflow:    KindReceiveOverflow,
	CodeWarnPropertyValueCoerced:    KindValueCoerced,
	CodeWarnDatabaseAliasRedeployed: KindDatabaseAlias,
}

// IsError reports whether the code has the error bit set.
func (c Code) IsError() bool {
	return c < 0
}

// IsWarning reports whether the code is a non-fatal, non-success status.
func (c Code) IsWarning() bool {
	return c > 0
}

// Kind resolves the code against the known table. Unknown codes are
// KindUnclassified, success is KindNone.
func (c Code) Kind() Kind {
	if c == Success {
		return KindNone
	}
	if k, ok := kinds[c]; ok {
		return k
	}
	return KindUnclassified
}
