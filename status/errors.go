package status

import (
	"errors"
	"fmt"

	platformerrors "github.com/jmgilman/go/errors"
)

// Local conditions. None of these ever reach the driver.
var (
	ErrResourceClosed      = platformerrors.New(platformerrors.CodeConflict, "resource is closed")
	ErrNotFound            = platformerrors.New(platformerrors.CodeNotFound, "item not found")
	ErrIndexOutOfRange     = platformerrors.New(platformerrors.CodeInvalidInput, "index out of range")
	ErrNonASCII            = platformerrors.New(platformerrors.CodeInvalidInput, "string is not ASCII")
	ErrInvalidArgument     = platformerrors.New(platformerrors.CodeInvalidInput, "invalid argument")
	ErrUnsupportedPlatform = platformerrors.New(platformerrors.CodeNotImplemented, "NI-XNET is not available on this platform")
)

// messageOrDefault returns msg if present, otherwise fallback.
func messageOrDefault(msg, fallback string) string {
	if msg != "" {
		return msg
	}
	return fallback
}

// StatusError is a native call that returned an error status.
type StatusError struct {
	Status Code
	Kind   Kind
	Msg    string
	Op     string
}

var _ platformerrors.PlatformError = (*StatusError)(nil)

func (e *StatusError) Error() string {
	msg := messageOrDefault(e.Msg, string(e.Kind))
	if e.Op == "" {
		return fmt.Sprintf("nixnet: %s (status 0x%08X)", msg, uint32(e.Status))
	}
	return fmt.Sprintf("nixnet: %s: %s (status 0x%08X)", e.Op, msg, uint32(e.Status))
}

// Code maps the kind onto the platform error codes.
func (e *StatusError) Code() platformerrors.ErrorCode {
	if c, ok := platformCodes[e.Kind]; ok {
		return c
	}
	return platformerrors.CodeInternal
}

// Classification marks transient driver conditions as retryable. This layer
// never retries on its own.
func (e *StatusError) Classification() platformerrors.ErrorClassification {
	switch e.Kind {
	case KindTimeout, KindQueueOverflow, KindQueueUnderflow, KindDatabaseBusy:
		return platformerrors.ClassificationRetryable
	default:
		return platformerrors.ClassificationPermanent
	}
}

func (e *StatusError) Message() string {
	return messageOrDefault(e.Msg, string(e.Kind))
}

func (e *StatusError) Context() map[string]interface{} {
	return map[string]interface{}{
		"status": int32(e.Status),
		"kind":   string(e.Kind),
		"op":     e.Op,
	}
}

func (e *StatusError) Unwrap() error {
	return nil
}

// Is matches another *StatusError by kind, and by status when the target
// carries one.
func (e *StatusError) Is(target error) bool {
	t, ok := target.(*StatusError)
	if !ok {
		return false
	}
	if t.Status != Success && t.Status != e.Status {
		return false
	}
	return t.Kind == "" || t.Kind == e.Kind
}

// KindOf returns the kind of the first *StatusError in err's chain, or
// KindNone when there is none.
func KindOf(err error) Kind {
	var se *StatusError
	if errors.As(err, &se) {
		return se.Kind
	}
	return KindNone
}

// StatusOf returns the raw status of the first *StatusError in err's chain.
func StatusOf(err error) (Code, bool) {
	var se *StatusError
	if errors.As(err, &se) {
		return se.Status, true
	}
	return Success, false
}

var platformCodes = map[Kind]platformerrors.ErrorCode{
	KindUnclassified:         platformerrors.CodeUnknown,
	KindInternal:             platformerrors.CodeInternal,
	KindSelfTest:             platformerrors.CodeInternal,
	KindInvalidHandle:        platformerrors.CodeInvalidInput,
	KindTimeout:              platformerrors.CodeTimeout,
	KindInvalidArgument:      platformerrors.CodeInvalidInput,
	KindInvalidProperty:      platformerrors.CodeInvalidInput,
	KindInvalidPropertyValue: platformerrors.CodeInvalidInput,
	KindInvalidPropertySize:  platformerrors.CodeInvalidInput,
	KindReadOnlyProperty:     platformerrors.CodeForbidden,
	KindPropertyModeConflict: platformerrors.CodeConflict,
	KindSessionState:         platformerrors.CodeConflict,
	KindQueueOverflow:        platformerrors.CodeRateLimit,
	KindQueueUnderflow:       platformerrors.CodeUnavailable,
	KindOverlappingIO:        platformerrors.CodeConflict,
	KindInterface:            platformerrors.CodeUnavailable,
	KindHardware:             platformerrors.CodeUnavailable,
	KindMemory:               platformerrors.CodeInternal,
	KindObjectNotFound:       platformerrors.CodeNotFound,
	KindDuplicateName:        platformerrors.CodeAlreadyExists,
	KindDatabaseAlias:        platformerrors.CodeNotFound,
	KindDatabaseFile:         platformerrors.CodeInvalidInput,
	KindDatabaseBusy:         platformerrors.CodeUnavailable,
	KindFrameBuffer:          platformerrors.CodeInvalidInput,
	KindTerminal:             platformerrors.CodeConflict,
	KindLibrary:              platformerrors.CodeUnavailable,
}
