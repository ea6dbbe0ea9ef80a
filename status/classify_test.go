package status

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type fakeDescriber struct {
	messages map[Code]string
	calls    int
	lastSize int
}

func (f *fakeDescriber) StatusToString(code Code, buf []byte) {
	f.calls++
	f.lastSize = len(buf)
	msg := f.messages[code]
	n := copy(buf, msg)
	if n < len(buf) {
		buf[n] = 0
	}
}

func TestClassify(t *testing.T) {
	d := &fakeDescriber{messages: map[Code]string{
		CodeTimeout:            "Timeout expired",
		CodeWarnDatabaseImport: "Import warning",
	}}
	c := NewClassifier(d, 0)

	tests := []struct {
		name     string
		code     Code
		severity Severity
		kind     Kind
		message  string
	}{
		{name: "success", code: Success, severity: SeveritySuccess, kind: KindNone},
		{name: "known error", code: CodeTimeout, severity: SeverityError, kind: KindTimeout, message: "Timeout expired"},
		{name: "known warning", code: CodeWarnDatabaseImport, severity: SeverityWarning, kind: KindDatabaseImport, message: "Import warning"},
		{name: "unknown error", code: errBase + 0xFFF, severity: SeverityError, kind: KindUnclassified, message: string(KindUnclassified)},
		{name: "unknown warning", code: 42, severity: SeverityWarning, kind: KindUnclassified, message: string(KindUnclassified)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := c.Classify(tt.code)
			require.Equal(t, tt.severity, out.Severity)
			require.Equal(t, tt.kind, out.Kind)
			require.Equal(t, tt.code, out.Code)
			require.Equal(t, tt.message, out.Message)
		})
	}
}

func TestClassify_SuccessSkipsDescription(t *testing.T) {
	d := &fakeDescriber{}
	c := NewClassifier(d, 0)

	c.Classify(Success)
	require.Equal(t, 0, d.calls)
}

func TestClassify_MessageTruncatedToBuffer(t *testing.T) {
	long := strings.Repeat("x", 100)
	d := &fakeDescriber{messages: map[Code]string{CodeInternal: long}}
	c := NewClassifier(d, 16)

	out := c.Classify(CodeInternal)
	require.Equal(t, 16, d.lastSize)
	require.Equal(t, long[:16], out.Message)
}

func TestClassify_DefaultBufferSize(t *testing.T) {
	d := &fakeDescriber{}
	c := NewClassifier(d, -1)

	c.Classify(CodeInternal)
	require.Equal(t, DefaultBufferSize, d.lastSize)
	require.Equal(t, DefaultBufferSize, c.BufferSize())
}

func TestCheck(t *testing.T) {
	var got []Diagnostic
	restore := SetHandler(func(d Diagnostic) { got = append(got, d) })
	defer restore()

	c := NewClassifier(&fakeDescriber{}, 0)

	require.NoError(t, c.Check(Success, "nxStart"))
	require.Empty(t, got)

	require.NoError(t, c.Check(CodeWarnFrameReceiveOverflow, "nxReadFrame"))
	require.Len(t, got, 1)
	require.Equal(t, DiagnosticWarning, got[0].Kind)
	require.Equal(t, CodeWarnFrameReceiveOverflow, got[0].Status)
	require.Equal(t, "nxReadFrame", got[0].Op)

	err := c.Check(CodeInvalidPropertySize, "nxGetProperty")
	require.Error(t, err)
	var se *StatusError
	require.ErrorAs(t, err, &se)
	require.Equal(t, KindInvalidPropertySize, se.Kind)
	require.Equal(t, "nxGetProperty", se.Op)
	require.Len(t, got, 1)
}

func TestDefaultHandlerLogsWarnings(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	prev := Logger()
	SetLogger(zap.New(core))
	defer SetLogger(prev)

	c := NewClassifier(&fakeDescriber{messages: map[Code]string{
		CodeWarnPropertyValueCoerced: "value coerced",
	}}, 0)
	require.NoError(t, c.Check(CodeWarnPropertyValueCoerced, "nxSetProperty"))

	entries := logs.FilterMessage("value coerced").All()
	require.Len(t, entries, 1)
	require.Equal(t, "warning", entries[0].ContextMap()["kind"])
	require.Equal(t, "nxSetProperty", entries[0].ContextMap()["op"])
}

func TestSeverityString(t *testing.T) {
	require.Equal(t, "success", SeveritySuccess.String())
	require.Equal(t, "warning", SeverityWarning.String())
	require.Equal(t, "error", SeverityError.String())
	require.Equal(t, "severity(7)", Severity(7).String())
}
