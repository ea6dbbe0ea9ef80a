package session

import (
	"context"
	"encoding/binary"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	nixnet "github.com/LoveWonYoung/nixnet"
	"github.com/LoveWonYoung/nixnet/driver"
	"github.com/LoveWonYoung/nixnet/frames"
	"github.com/LoveWonYoung/nixnet/props"
	"github.com/LoveWonYoung/nixnet/resource"
	"github.com/LoveWonYoung/nixnet/status"
)

func newTestSession(t *testing.T, o Options) (*Session, *nixnet.Env, *driver.MockNative) {
	t.Helper()
	m := driver.NewMockNative()
	env := nixnet.NewEnv(m, 0)
	s, err := New(env, o)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s, env, m
}

func streamOptions() Options {
	return Options{Interface: "CAN1", Mode: ModeFrameInStream}
}

func handleOf(t *testing.T, s *Session) driver.Handle {
	t.Helper()
	h, err := s.Handle()
	require.NoError(t, err)
	return h
}

func TestSession_Lifecycle(t *testing.T) {
	var diags []status.Diagnostic
	t.Cleanup(status.SetHandler(func(d status.Diagnostic) { diags = append(diags, d) }))

	m := driver.NewMockNative()
	env := nixnet.NewEnv(m, 0)
	s, err := New(env, streamOptions())
	require.NoError(t, err)
	h := handleOf(t, s)
	require.True(t, m.SessionOpen(h))
	require.Equal(t, resource.StateOpen, s.State())

	require.NoError(t, s.Start(ScopeNormal))
	require.True(t, m.SessionStarted(h))
	require.NoError(t, s.Stop(ScopeNormal))
	require.False(t, m.SessionStarted(h))

	require.NoError(t, s.Close())
	require.False(t, m.SessionOpen(h))
	require.Equal(t, resource.StateClosed, s.State())

	m.ResetCalls()
	require.ErrorIs(t, s.Start(ScopeNormal), status.ErrResourceClosed)
	_, err = s.QueueSize()
	require.ErrorIs(t, err, status.ErrResourceClosed)
	require.Empty(t, m.Calls())

	require.NoError(t, s.Close())
	require.Len(t, diags, 1)
	require.Equal(t, status.DiagnosticDuplicateClose, diags[0].Kind)
	require.Zero(t, m.CountCalls("nxClear"))
}

func TestSession_CreateErrors(t *testing.T) {
	m := driver.NewMockNative()
	env := nixnet.NewEnv(m, 0)

	_, err := New(env, Options{Interface: "CAN1", List: []string{"Geschwindigkeit_ü"}})
	require.ErrorIs(t, err, status.ErrNonASCII)
	require.Empty(t, m.Calls())

	_, err = New(env, Options{Mode: ModeFrameInStream})
	code, ok := status.StatusOf(err)
	require.True(t, ok)
	require.Equal(t, status.CodeInterfaceNotFound, code)
	require.Empty(t, env.Tracker.Outstanding())
}

func TestSession_ReportsLeak(t *testing.T) {
	m := driver.NewMockNative()
	env := nixnet.NewEnv(m, 0)
	s, err := New(env, streamOptions())
	require.NoError(t, err)

	require.Equal(t, 1, env.ReportLeaks())
	require.NoError(t, s.Close())
	require.Zero(t, env.ReportLeaks())
}

func TestSession_QueueSize(t *testing.T) {
	s, _, m := newTestSession(t, Options{Interface: "CAN1", Mode: ModeFrameInQueued})

	require.NoError(t, s.SetQueueSize(100))
	raw, ok := m.Prop(handleOf(t, s), uint32(props.SessionQueueSize))
	require.True(t, ok)
	require.Equal(t, []byte{100, 0, 0, 0}, raw)

	n, err := s.QueueSize()
	require.NoError(t, err)
	require.Equal(t, uint32(100), n)
}

func TestSession_InterfaceProperties(t *testing.T) {
	s, _, _ := newTestSession(t, streamOptions())

	require.NoError(t, s.SetBaudRate(500000))
	require.NoError(t, s.SetCANFDBaudRate(2000000))
	require.NoError(t, s.SetTermination(TerminationOn))
	require.NoError(t, s.SetEchoTx(true))

	rate, err := s.BaudRate()
	require.NoError(t, err)
	require.Equal(t, uint64(500000), rate)
	fd, err := s.CANFDBaudRate()
	require.NoError(t, err)
	require.Equal(t, uint64(2000000), fd)
	term, err := s.Termination()
	require.NoError(t, err)
	require.Equal(t, TerminationOn, term)
	echo, err := s.EchoTx()
	require.NoError(t, err)
	require.True(t, echo)

	_, err = s.ListenOnly()
	require.Equal(t, status.KindInvalidProperty, status.KindOf(err))
}

func TestSession_ReadWriteFrames(t *testing.T) {
	s, _, m := newTestSession(t, streamOptions())
	h := handleOf(t, s)
	m.SetProp(h, uint32(props.SessionPayloadLengthMax), []byte{8, 0, 0, 0})

	in := []frames.Frame{
		frames.CAN(0x123, []byte{1, 2, 3}),
		frames.CAN(0x18DAF110, []byte{0x02, 0x10, 0x03}),
	}
	raw, err := frames.Encode(in)
	require.NoError(t, err)
	require.NoError(t, m.InjectFrames(h, raw))

	got, err := s.ReadFrames(10, TimeoutNone)
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, uint32(0x123), got[0].ID())
	require.Equal(t, []byte{1, 2, 3}, got[0].Payload)
	require.True(t, got[1].Extended())

	got, err = s.ReadFrames(10, TimeoutNone)
	require.NoError(t, err)
	require.Empty(t, got)

	_, err = s.ReadFrames(10, 10*time.Millisecond)
	require.Equal(t, status.KindTimeout, status.KindOf(err))

	_, err = s.ReadFrames(0, TimeoutNone)
	require.ErrorIs(t, err, status.ErrInvalidArgument)

	require.NoError(t, s.WriteFrames(in[:1], TimeoutInfinite))
	written := m.Written(h)
	require.Len(t, written, 1)
	want, err := frames.Encode(in[:1])
	require.NoError(t, err)
	require.Equal(t, want, written[0])
}

func TestSession_Signals(t *testing.T) {
	s, _, m := newTestSession(t, Options{
		Database:  "powertrain",
		Cluster:   "CAN_Cluster",
		List:      []string{"EngineSpeed", "CoolantTemp"},
		Interface: "CAN1",
		Mode:      ModeSignalInSinglePoint,
	})
	h := handleOf(t, s)

	names, err := s.Signals().Names()
	require.NoError(t, err)
	require.Equal(t, []string{"EngineSpeed", "CoolantTemp"}, names)
	n, err := s.Signals().Len()
	require.NoError(t, err)
	require.Equal(t, 2, n)

	stamp := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	m.SetSignals(h, []float64{1500, 88.5}, []uint64{props.TicksFromTime(stamp), 0})
	samples, err := s.ReadSignals()
	require.NoError(t, err)
	require.Len(t, samples, 2)
	require.Equal(t, 1500.0, samples[0].Value)
	require.True(t, stamp.Equal(samples[0].Time))
	require.True(t, samples[1].Time.IsZero())

	require.NoError(t, s.WriteSignals([]float64{1, 2}))
	require.Equal(t, []float64{1, 2}, m.Signals(h))
}

func TestSession_FrameSubProperties(t *testing.T) {
	s, _, m := newTestSession(t, Options{
		Database:  "powertrain",
		Cluster:   "CAN_Cluster",
		List:      []string{"EngineData", "BrakeStatus"},
		Interface: "CAN1",
		Mode:      ModeFrameOutQueued,
	})

	f, err := s.Frames().GetByName("BrakeStatus")
	require.NoError(t, err)
	require.Equal(t, uint32(1), f.Index())
	require.Equal(t, "BrakeStatus", f.Name())

	m.ResetCalls()
	require.NoError(t, f.SetCANTransmitTime(0.1))
	calls := m.Calls()
	require.Len(t, calls, 1)
	require.Equal(t, "nxSetSubProperty", calls[0].Method)
	require.Equal(t, uint32(1), calls[0].Index)

	v, err := f.CANTransmitTime()
	require.NoError(t, err)
	require.Equal(t, 0.1, v)

	require.NoError(t, f.SetJ1939AddressFilter("0x1F"))
	filter, err := f.J1939AddressFilter()
	require.NoError(t, err)
	require.Equal(t, "0x1F", filter)

	_, err = s.Frames().Get(2)
	require.ErrorIs(t, err, status.ErrIndexOutOfRange)
}

func TestSession_EmptyList(t *testing.T) {
	s, _, _ := newTestSession(t, streamOptions())

	names, err := s.Frames().Names()
	require.NoError(t, err)
	require.Empty(t, names)
	items, err := s.Frames().Items()
	require.NoError(t, err)
	require.Empty(t, items)
}

func TestSession_Terminals(t *testing.T) {
	s, _, _ := newTestSession(t, streamOptions())

	require.NoError(t, s.ConnectTerminals("FrontPanel0", "StartTrigger"))
	err := s.ConnectTerminals("FrontPanel1", "StartTrigger")
	code, ok := status.StatusOf(err)
	require.True(t, ok)
	require.Equal(t, status.CodeTerminalInUse, code)

	require.NoError(t, s.DisconnectTerminals("FrontPanel0", "StartTrigger"))
	require.ErrorIs(t, s.ConnectTerminals("Pin-ß", "StartTrigger"), status.ErrNonASCII)
}

func TestSession_State(t *testing.T) {
	s, _, m := newTestSession(t, streamOptions())
	h := handleOf(t, s)

	now := time.Date(2025, 6, 1, 8, 30, 0, 0, time.UTC)
	m.SetState(h, props.StateTimeCurrent, binary.LittleEndian.AppendUint64(nil, props.TicksFromTime(now)))
	got, err := s.CurrentTime()
	require.NoError(t, err)
	require.True(t, now.Equal(got))

	m.SetState(h, props.StateSessionInfo, []byte{1, 0, 0, 0})
	info, err := s.Info()
	require.NoError(t, err)
	require.Equal(t, InfoStarted, info)

	m.SetState(h, props.StateCANComm, binary.LittleEndian.AppendUint32(nil, 0x0A140312))
	comm, err := s.CANComm()
	require.NoError(t, err)
	require.Equal(t, CANComm{State: 2, TransceiverErr: true, LastErr: 3, TxErrCount: 20, RxErrCount: 10}, comm)

	_, err = s.StartTime()
	require.Equal(t, status.KindInvalidProperty, status.KindOf(err))
}

func TestSession_WaitAndLINSchedule(t *testing.T) {
	s, _, m := newTestSession(t, Options{Interface: "LIN1", Mode: ModeFrameOutQueued})
	h := handleOf(t, s)

	m.SetWaitResult(h, 3)
	out, err := s.Wait(WaitTransmitComplete, 0, time.Second)
	require.NoError(t, err)
	require.Equal(t, uint32(3), out)

	m.ResetCalls()
	require.NoError(t, s.ChangeLINSchedule(2))
	calls := m.Calls()
	require.Len(t, calls, 1)
	require.Equal(t, "nxWriteState", calls[0].Method)
	require.Equal(t, props.StateLINScheduleChange, calls[0].ID)
}

func TestSession_Flush(t *testing.T) {
	s, _, m := newTestSession(t, streamOptions())
	h := handleOf(t, s)
	m.SetProp(h, uint32(props.SessionPayloadLengthMax), []byte{8, 0, 0, 0})

	raw, err := frames.Encode([]frames.Frame{frames.CAN(0x7DF, []byte{0x02, 0x01, 0x00})})
	require.NoError(t, err)
	require.NoError(t, m.InjectFrames(h, raw))
	require.NoError(t, s.Flush())

	got, err := s.ReadFrames(4, TimeoutNone)
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestSeconds(t *testing.T) {
	require.Equal(t, 0.0, seconds(TimeoutNone))
	require.Equal(t, -1.0, seconds(TimeoutInfinite))
	require.Equal(t, 0.25, seconds(250*time.Millisecond))
}

func TestReceiver(t *testing.T) {
	s, _, m := newTestSession(t, streamOptions())
	h := handleOf(t, s)
	m.SetProp(h, uint32(props.SessionPayloadLengthMax), []byte{8, 0, 0, 0})

	raw, err := frames.Encode([]frames.Frame{
		frames.CAN(0x100, []byte{1}),
		frames.CAN(0x101, []byte{2}),
	})
	require.NoError(t, err)
	require.NoError(t, m.InjectFrames(h, raw))

	r := NewReceiver(s, ReceiverConfig{PollInterval: time.Millisecond})
	r.Start(context.Background())

	var ids []uint32
	timeout := time.After(2 * time.Second)
	for len(ids) < 2 {
		select {
		case f := <-r.Frames():
			ids = append(ids, f.ID())
		case <-timeout:
			t.Fatal("timed out waiting for frames")
		}
	}
	require.Equal(t, []uint32{0x100, 0x101}, ids)

	r.Stop()
	_, open := <-r.Frames()
	require.False(t, open)
	require.NoError(t, r.Err())
	require.Zero(t, r.Dropped())
}

func TestReceiver_StartTwice(t *testing.T) {
	s, _, m := newTestSession(t, streamOptions())
	h := handleOf(t, s)
	m.SetProp(h, uint32(props.SessionPayloadLengthMax), []byte{8, 0, 0, 0})

	r := NewReceiver(s, ReceiverConfig{PollInterval: time.Millisecond})
	ctx, cancel := context.WithCancel(context.Background())
	r.Start(ctx)
	r.Start(context.Background())

	cancel()
	select {
	case _, open := <-r.Frames():
		require.False(t, open)
	case <-time.After(2 * time.Second):
		t.Fatal("receiver did not stop with the first context")
	}
	r.Stop()
	require.NoError(t, r.Err())
}

// overreporting claims more bytes were read than the buffer holds.
type overreporting struct {
	*driver.MockNative
}

func (o overreporting) ReadFrame(h driver.Handle, buf []byte, timeout float64) (int, status.Code) {
	_, code := o.MockNative.ReadFrame(h, buf, timeout)
	return len(buf) + 16, code
}

func TestSession_ReadRawRejectsOversizedCount(t *testing.T) {
	m := driver.NewMockNative()
	env := nixnet.NewEnv(overreporting{m}, 0)
	s, err := New(env, streamOptions())
	require.NoError(t, err)
	defer s.Close()

	raw, err := frames.Encode([]frames.Frame{frames.CAN(0x10, []byte{1})})
	require.NoError(t, err)
	require.NoError(t, m.InjectFrames(handleOf(t, s), raw))

	_, err = s.ReadRaw(len(raw), TimeoutNone)
	require.ErrorIs(t, err, status.ErrInvalidArgument)
}

func TestReceiver_StopsWhenSessionCloses(t *testing.T) {
	s, _, m := newTestSession(t, streamOptions())
	m.SetProp(handleOf(t, s), uint32(props.SessionPayloadLengthMax), []byte{8, 0, 0, 0})

	r := NewReceiver(s, ReceiverConfig{PollInterval: time.Millisecond})
	r.Start(context.Background())
	require.NoError(t, s.Close())

	select {
	case _, open := <-r.Frames():
		require.False(t, open)
	case <-time.After(2 * time.Second):
		t.Fatal("receiver did not stop")
	}
	r.Stop()
	require.ErrorIs(t, r.Err(), status.ErrResourceClosed)
}

func TestReceiver_DropsWhenFull(t *testing.T) {
	s, _, m := newTestSession(t, streamOptions())
	h := handleOf(t, s)
	m.SetProp(h, uint32(props.SessionPayloadLengthMax), []byte{8, 0, 0, 0})

	raw, err := frames.Encode([]frames.Frame{
		frames.CAN(0x1, nil),
		frames.CAN(0x2, nil),
		frames.CAN(0x3, nil),
	})
	require.NoError(t, err)
	require.NoError(t, m.InjectFrames(h, raw))

	r := NewReceiver(s, ReceiverConfig{PollInterval: time.Millisecond, Buffer: 1})
	r.Start(context.Background())
	require.Eventually(t, func() bool { return r.Dropped() == 2 }, 2*time.Second, time.Millisecond)
	r.Stop()

	f, open := <-r.Frames()
	require.True(t, open)
	require.Equal(t, uint32(0x1), f.ID())
}
