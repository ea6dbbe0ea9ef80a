package status

import (
	"bytes"
	"fmt"
)

// DefaultBufferSize is the byte budget handed to the driver when asking for a
// status description. Longer descriptions are cut off by the driver and the
// full length is never reported back.
const DefaultBufferSize = 2048

// Severity is the coarse outcome of a native call.
type Severity int

const (
	SeveritySuccess Severity = iota
	SeverityWarning
	SeverityError
)

func (s Severity) String() string {
	switch s {
	case SeveritySuccess:
		return "success"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return fmt.Sprintf("severity(%d)", int(s))
	}
}

// Outcome is a classified status.
type Outcome struct {
	Severity Severity
	Kind     Kind
	Code     Code
	Message  string
}

// Describer turns a status code into text. driver.Native satisfies it.
type Describer interface {
	StatusToString(code Code, buf []byte)
}

// Classifier maps raw status codes to outcomes and decides how they propagate.
type Classifier struct {
	describer  Describer
	bufferSize int
}

// NewClassifier returns a classifier that asks d for messages using a buffer
// of bufferSize bytes. A non-positive size selects DefaultBufferSize.
func NewClassifier(d Describer, bufferSize int) *Classifier {
	if bufferSize <= 0 {
		bufferSize = DefaultBufferSize
	}
	return &Classifier{describer: d, bufferSize: bufferSize}
}

// BufferSize returns the message buffer size in bytes.
func (c *Classifier) BufferSize() int {
	return c.bufferSize
}

// Classify never fails: codes missing from the table get KindUnclassified.
func (c *Classifier) Classify(code Code) Outcome {
	out := Outcome{Code: code, Kind: code.Kind()}
	switch {
	case code == Success:
		out.Severity = SeveritySuccess
		return out
	case code.IsError():
		out.Severity = SeverityError
	default:
		out.Severity = SeverityWarning
	}
	out.Message = c.describe(code, out.Kind)
	return out
}

// Check classifies code. Errors come back as *StatusError, warnings are sent
// to the diagnostics handler and yield nil.
func (c *Classifier) Check(code Code, op string) error {
	if code == Success {
		return nil
	}
	out := c.Classify(code)
	if out.Severity == SeverityWarning {
		Report(Diagnostic{
			Kind:    DiagnosticWarning,
			Status:  code,
			Op:      op,
			Message: out.Message,
		})
		return nil
	}
	return &StatusError{Status: code, Kind: out.Kind, Msg: out.Message, Op: op}
}

func (c *Classifier) describe(code Code, kind Kind) string {
	if c.describer == nil {
		return string(kind)
	}
	buf := make([]byte, c.bufferSize)
	c.describer.StatusToString(code, buf)
	if i := bytes.IndexByte(buf, 0); i >= 0 {
		buf = buf[:i]
	}
	if len(buf) == 0 {
		return string(kind)
	}
	return string(buf)
}
