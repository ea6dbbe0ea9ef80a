package props

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/LoveWonYoung/nixnet/driver"
	"github.com/LoveWonYoung/nixnet/status"
)

const (
	testString      = String(cs | typeString | 0x70)
	testStringArray = StringArray(cs | typeStringArray | 0x71)
	testU8          = U8(cs | typeU32 | 0x72)
)

func newSession(t *testing.T) (*driver.MockNative, *Codec, driver.Handle) {
	t.Helper()
	m := driver.NewMockNative()
	m.SetNextHandle(7)
	h, code := m.CreateSession("", "", "", "CAN1", 6)
	require.Equal(t, status.Success, code)
	return m, NewCodec(m, status.NewClassifier(m, 0), SessionSpace), h
}

func TestQueueSizeExample(t *testing.T) {
	_, c, h := newSession(t)
	require.Equal(t, driver.Handle(7), h)

	require.NoError(t, c.SetU32(h, SessionQueueSize, 100))
	got, err := c.GetU32(h, SessionQueueSize)
	require.NoError(t, err)
	require.Equal(t, uint32(100), got)
}

func TestScalarRoundTrip(t *testing.T) {
	for _, space := range []Space{SessionSpace, DatabaseSpace} {
		t.Run(space.String(), func(t *testing.T) {
			m := driver.NewMockNative()
			c := NewCodec(m, status.NewClassifier(m, 0), space)
			h := driver.Handle(3)

			require.NoError(t, c.SetBool(h, SessionAutoStart, true))
			b, err := c.GetBool(h, SessionAutoStart)
			require.NoError(t, err)
			require.True(t, b)
			require.NoError(t, c.SetBool(h, SessionAutoStart, false))
			b, err = c.GetBool(h, SessionAutoStart)
			require.NoError(t, err)
			require.False(t, b)

			require.NoError(t, c.SetU8(h, testU8, 0xAB))
			u8, err := c.GetU8(h, testU8)
			require.NoError(t, err)
			require.Equal(t, uint8(0xAB), u8)

			require.NoError(t, c.SetU32(h, SessionQueueSize, 0xDEADBEEF))
			u32, err := c.GetU32(h, SessionQueueSize)
			require.NoError(t, err)
			require.Equal(t, uint32(0xDEADBEEF), u32)

			require.NoError(t, c.SetU64(h, SessionIntfBaudRate, 1<<40|500000))
			u64, err := c.GetU64(h, SessionIntfBaudRate)
			require.NoError(t, err)
			require.Equal(t, uint64(1<<40|500000), u64)

			require.NoError(t, c.SetF64(h, SessionResampleRate, -12.625))
			f, err := c.GetF64(h, SessionResampleRate)
			require.NoError(t, err)
			require.Equal(t, -12.625, f)

			require.NoError(t, c.SetRef(h, IntfDevRef, 42))
			r, err := c.GetRef(h, IntfDevRef)
			require.NoError(t, err)
			require.Equal(t, driver.Handle(42), r)
		})
	}
}

func TestSpaceSelectsPrimitives(t *testing.T) {
	m := driver.NewMockNative()
	db := NewCodec(m, status.NewClassifier(m, 0), DatabaseSpace)

	require.NoError(t, db.SetU32(1, FrameID, 0x123))
	require.Equal(t, 1, m.CountCalls("nxdbSetProperty"))
	require.Equal(t, 0, m.CountCalls("nxSetProperty"))

	_, ok := m.DbProp(1, uint32(FrameID))
	require.True(t, ok)
	_, ok = m.Prop(1, uint32(FrameID))
	require.False(t, ok)
}

func TestBoolAcceptsAnyNonZeroByte(t *testing.T) {
	m, c, h := newSession(t)
	m.SetProp(h, uint32(SessionAutoStart), []byte{0x7F})
	b, err := c.GetBool(h, SessionAutoStart)
	require.NoError(t, err)
	require.True(t, b)
}

func TestStringSizedFetch(t *testing.T) {
	m, c, h := newSession(t)
	require.NoError(t, c.SetString(h, testString, "CAN1"))

	raw, ok := m.Prop(h, uint32(testString))
	require.True(t, ok)
	require.Equal(t, []byte("CAN1\x00"), raw)

	m.ResetCalls()
	s, err := c.GetString(h, testString)
	require.NoError(t, err)
	require.Equal(t, "CAN1", s)
	require.Equal(t, 1, m.CountCalls("nxGetPropertySize"))
	require.Equal(t, 1, m.CountCalls("nxGetProperty"))

	calls := m.Calls()
	require.Equal(t, 5, calls[1].Size)
}

func TestStringWithoutTerminator(t *testing.T) {
	m, c, h := newSession(t)
	m.SetProp(h, uint32(testString), []byte("abc"))
	s, err := c.GetString(h, testString)
	require.NoError(t, err)
	require.Equal(t, "abc", s)
}

func TestStringRejectsNonASCII(t *testing.T) {
	m, c, h := newSession(t)
	m.SetProp(h, uint32(testString), []byte("Z\xfcndung\x00"))
	_, err := c.GetString(h, testString)
	require.ErrorIs(t, err, status.ErrNonASCII)

	m.SetProp(h, uint32(testStringArray), []byte("A,\xb0C\x00"))
	_, err = c.GetStringArray(h, testStringArray)
	require.ErrorIs(t, err, status.ErrNonASCII)
}

func TestEmptyValueSkipsFetch(t *testing.T) {
	m, c, h := newSession(t)
	m.SetProp(h, uint32(testString), nil)

	m.ResetCalls()
	s, err := c.GetString(h, testString)
	require.NoError(t, err)
	require.Equal(t, "", s)
	require.Equal(t, 1, m.CountCalls("nxGetPropertySize"))
	require.Equal(t, 0, m.CountCalls("nxGetProperty"))

	m.SetProp(h, uint32(FrameDefaultPayload), nil)
	payload, err := c.GetU8Array(h, FrameDefaultPayload)
	require.NoError(t, err)
	require.Empty(t, payload)

	m.SetProp(h, uint32(SystemDevRefs), nil)
	refs, err := c.GetRefArray(h, SystemDevRefs)
	require.NoError(t, err)
	require.Empty(t, refs)
	require.Equal(t, 0, m.CountCalls("nxGetProperty"))
}

func TestStringArray(t *testing.T) {
	m, c, h := newSession(t)

	tests := []struct {
		name string
		raw  []byte
		want []string
	}{
		{name: "empty", raw: []byte{}, want: []string{""}},
		{name: "single", raw: []byte("Frame1\x00"), want: []string{"Frame1"}},
		{name: "several", raw: []byte("A,B,C\x00"), want: []string{"A", "B", "C"}},
		{name: "no terminator", raw: []byte("A,B"), want: []string{"A", "B"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m.SetProp(h, uint32(testStringArray), tt.raw)
			got, err := c.GetStringArray(h, testStringArray)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}

	require.NoError(t, c.SetStringArray(h, testStringArray, []string{"X", "Y"}))
	raw, _ := m.Prop(h, uint32(testStringArray))
	require.Equal(t, []byte("X,Y\x00"), raw)
}

func TestArrays(t *testing.T) {
	m, c, h := newSession(t)

	require.NoError(t, c.SetRefArray(h, SystemIntfRefs, []driver.Handle{1, 2, 0x01020304}))
	raw, _ := m.Prop(h, uint32(SystemIntfRefs))
	require.Len(t, raw, 12)

	refs, err := c.GetRefArray(h, SystemIntfRefs)
	require.NoError(t, err)
	require.Equal(t, []driver.Handle{1, 2, 0x01020304}, refs)

	n, err := c.CountRefs(h, SystemIntfRefs)
	require.NoError(t, err)
	require.Equal(t, 3, n)

	require.NoError(t, c.SetU32Array(h, FramePDUStartBits, []uint32{0, 8, 16}))
	u32s, err := c.GetU32Array(h, FramePDUStartBits)
	require.NoError(t, err)
	require.Equal(t, []uint32{0, 8, 16}, u32s)

	require.NoError(t, c.SetU8Array(h, FrameDefaultPayload, []byte{1, 2, 3}))
	b, err := c.GetU8Array(h, FrameDefaultPayload)
	require.NoError(t, err)
	require.Equal(t, []byte{1, 2, 3}, b)
}

func TestErrorsAreClassified(t *testing.T) {
	m, c, h := newSession(t)
	m.SetMessage(status.CodeInvalidPropertyID, "Invalid property")

	_, err := c.GetU32(h, SessionNumPending)
	require.Error(t, err)
	require.Equal(t, status.KindInvalidProperty, status.KindOf(err))

	var se *status.StatusError
	require.True(t, errors.As(err, &se))
	require.Equal(t, "Invalid property", se.Msg)
	require.Contains(t, se.Op, "nxGetProperty")
}

func TestSizeErrorSkipsFetch(t *testing.T) {
	m, c, h := newSession(t)
	require.NoError(t, c.SetString(h, testString, "abc"))
	m.FailNext("nxGetPropertySize", status.CodeInvalidSessionHandle)

	m.ResetCalls()
	s, err := c.GetString(h, testString)
	require.Error(t, err)
	require.Equal(t, "", s)
	require.Equal(t, 0, m.CountCalls("nxGetProperty"))
}

func TestFetchErrorReturnsNoPartialValue(t *testing.T) {
	m, c, h := newSession(t)
	require.NoError(t, c.SetRefArray(h, SystemIntfRefs, []driver.Handle{1, 2}))
	m.FailNext("nxGetProperty", status.CodeInvalidPropertySize)

	refs, err := c.GetRefArray(h, SystemIntfRefs)
	require.Error(t, err)
	require.Nil(t, refs)
}

func TestWarningDoesNotFail(t *testing.T) {
	m, c, h := newSession(t)
	var got []status.Diagnostic
	restore := status.SetHandler(func(d status.Diagnostic) { got = append(got, d) })
	defer restore()

	m.FailNext("nxSetProperty", status.CodeWarnPropertyValueCoerced)
	require.NoError(t, c.SetU32(h, SessionQueueSize, 3))
	require.Len(t, got, 1)
	require.Equal(t, status.DiagnosticWarning, got[0].Kind)
	require.Equal(t, status.CodeWarnPropertyValueCoerced, got[0].Status)
}

func TestNonASCIINeverReachesDriver(t *testing.T) {
	m, c, h := newSession(t)
	m.ResetCalls()

	require.ErrorIs(t, c.SetString(h, testString, "Ölstand"), status.ErrNonASCII)
	require.ErrorIs(t, c.SetStringArray(h, testStringArray, []string{"ok", "é"}), status.ErrNonASCII)
	require.Empty(t, m.Calls())
}

func TestTimeTicks(t *testing.T) {
	require.Equal(t, time.Unix(0, 0).UTC(), TimeFromTicks(ticksTo1970))
	require.Equal(t, time.Date(1601, 1, 1, 0, 0, 0, 0, time.UTC), TimeFromTicks(0))

	ts := time.Date(2024, 3, 5, 10, 20, 30, 123456700, time.UTC)
	require.Equal(t, ts, TimeFromTicks(TicksFromTime(ts)))

	_, c, h := newSession(t)
	id := Time(cs | typeTime | 0x60)
	require.NoError(t, c.SetTime(h, id, ts))
	got, err := c.GetTime(h, id)
	require.NoError(t, err)
	require.Equal(t, ts, got)
}

func TestSubCodec(t *testing.T) {
	m, _, h := newSession(t)
	sub := NewSubCodec(m, status.NewClassifier(m, 0))

	require.NoError(t, sub.SetF64(h, 0, SessionFrameCANStartTimeOffset, 0.25))
	require.NoError(t, sub.SetF64(h, 1, SessionFrameCANStartTimeOffset, 0.5))
	f, err := sub.GetF64(h, 1, SessionFrameCANStartTimeOffset)
	require.NoError(t, err)
	require.Equal(t, 0.5, f)
	f, err = sub.GetF64(h, 0, SessionFrameCANStartTimeOffset)
	require.NoError(t, err)
	require.Equal(t, 0.25, f)

	require.NoError(t, sub.SetU32(h, 2, SessionFrameSkipNCyclicFrames, 9))
	u, err := sub.GetU32(h, 2, SessionFrameSkipNCyclicFrames)
	require.NoError(t, err)
	require.Equal(t, uint32(9), u)

	require.NoError(t, sub.SetString(h, 0, SessionFrameJ1939AddressFilter, "0x80"))
	m.ResetCalls()
	s, err := sub.GetString(h, 0, SessionFrameJ1939AddressFilter)
	require.NoError(t, err)
	require.Equal(t, "0x80", s)
	require.Equal(t, 1, m.CountCalls("nxGetSubPropertySize"))
	require.Equal(t, 1, m.CountCalls("nxGetSubProperty"))

	_, err = sub.GetU32(h, 0, SessionQueueSize)
	require.Error(t, err)
}
