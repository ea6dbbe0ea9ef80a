// Package session creates NI-XNET sessions and moves frames and signal
// values through them.
//
// A Session owns its native handle from New until Close. Every method on a
// closed session fails with status.ErrResourceClosed without calling the
// driver.
package session

import (
	"encoding/binary"
	"fmt"
	"strings"
	"sync"
	"time"

	nixnet "github.com/LoveWonYoung/nixnet"
	"github.com/LoveWonYoung/nixnet/collection"
	"github.com/LoveWonYoung/nixnet/driver"
	"github.com/LoveWonYoung/nixnet/frames"
	"github.com/LoveWonYoung/nixnet/props"
	"github.com/LoveWonYoung/nixnet/resource"
	"github.com/LoveWonYoung/nixnet/status"
)

// Options names what a session communicates and where.
type Options struct {
	// Database is an alias or file path. Empty for sessions that need no
	// database, such as a stream session with an empty List.
	Database  string
	Cluster   string
	List      []string
	Interface string
	Mode      Mode
}

// Session is an open NI-XNET session.
type Session struct {
	env   *nixnet.Env
	guard *resource.Guard
	mode  Mode

	frames  *collection.Collection[*Frame]
	signals *collection.Collection[*Signal]

	mu         sync.Mutex
	payloadMax int
}

// New creates a session from database names.
func New(env *nixnet.Env, o Options) (*Session, error) {
	list := strings.Join(o.List, ",")
	for _, s := range []string{o.Database, o.Cluster, list, o.Interface} {
		if err := driver.ASCII(s); err != nil {
			return nil, err
		}
	}
	return open(env, o.Interface, o.Mode, func() (driver.Handle, status.Code) {
		return env.Native.CreateSession(o.Database, o.Cluster, list, o.Interface, uint32(o.Mode))
	}, fmt.Sprintf("nxCreateSession(%q)", o.Interface))
}

// NewByRef creates a session from database object handles, such as the
// frames of an open database.
func NewByRef(env *nixnet.Env, refs []driver.Handle, iface string, mode Mode) (*Session, error) {
	if err := driver.ASCII(iface); err != nil {
		return nil, err
	}
	return open(env, iface, mode, func() (driver.Handle, status.Code) {
		return env.Native.CreateSessionByRef(refs, iface, uint32(mode))
	}, fmt.Sprintf("nxCreateSessionByRef(%q)", iface))
}

func open(env *nixnet.Env, iface string, mode Mode, create func() (driver.Handle, status.Code), op string) (*Session, error) {
	g, err := resource.Open(env.Tracker, "session", iface,
		func() (driver.Handle, error) {
			h, code := create()
			if err := env.Check(code, op); err != nil {
				return driver.NoHandle, err
			}
			return h, nil
		},
		func(h driver.Handle) error {
			return env.Check(env.Native.Clear(h), "nxClear")
		})
	if err != nil {
		return nil, err
	}
	s := &Session{env: env, guard: g, mode: mode}
	src := &listSource{s: s}
	s.frames = collection.New[*Frame](listOf(src, newFrame))
	s.signals = collection.New[*Signal](listOf(src, newSignal))
	return s, nil
}

// Handle returns the native handle while the session is open.
func (s *Session) Handle() (driver.Handle, error) { return s.guard.Handle() }

// Close clears the session. Closing twice is reported as a diagnostic and
// is otherwise harmless.
func (s *Session) Close() error { return s.guard.Close() }

func (s *Session) State() resource.State { return s.guard.State() }

// Mode is the mode the session was created with.
func (s *Session) Mode() Mode { return s.mode }

func (s *Session) Start(scope Scope) error {
	h, err := s.Handle()
	if err != nil {
		return err
	}
	return s.env.Check(s.env.Native.Start(h, uint32(scope)), "nxStart")
}

func (s *Session) Stop(scope Scope) error {
	h, err := s.Handle()
	if err != nil {
		return err
	}
	return s.env.Check(s.env.Native.Stop(h, uint32(scope)), "nxStop")
}

// Flush discards queued frames or values.
func (s *Session) Flush() error {
	h, err := s.Handle()
	if err != nil {
		return err
	}
	return s.env.Check(s.env.Native.Flush(h), "nxFlush")
}

// Wait blocks until cond holds or timeout elapses and returns the
// condition's output parameter.
func (s *Session) Wait(cond WaitCondition, param uint32, timeout time.Duration) (uint32, error) {
	h, err := s.Handle()
	if err != nil {
		return 0, err
	}
	out, code := s.env.Native.Wait(h, uint32(cond), param, seconds(timeout))
	if err := s.env.Check(code, "nxWait"); err != nil {
		return 0, err
	}
	return out, nil
}

// ReadFrames reads up to n frames. The buffer is sized for n frames of the
// session's maximum payload length. With TimeoutNone it returns whatever is
// queued, possibly nothing.
func (s *Session) ReadFrames(n int, timeout time.Duration) ([]frames.Frame, error) {
	if n <= 0 {
		return nil, fmt.Errorf("frame count %d: %w", n, status.ErrInvalidArgument)
	}
	payload, err := s.payloadLength()
	if err != nil {
		return nil, err
	}
	buf, err := s.ReadRaw(n*frames.Size(payload), timeout)
	if err != nil {
		return nil, err
	}
	return frames.Decode(buf)
}

// ReadRaw reads at most size bytes of raw frame data.
func (s *Session) ReadRaw(size int, timeout time.Duration) ([]byte, error) {
	h, err := s.Handle()
	if err != nil {
		return nil, err
	}
	buf := make([]byte, size)
	n, code := s.env.Native.ReadFrame(h, buf, seconds(timeout))
	if err := s.env.Check(code, "nxReadFrame"); err != nil {
		return nil, err
	}
	if n < 0 || n > len(buf) {
		return nil, fmt.Errorf("nxReadFrame reported %d bytes for a %d byte buffer: %w", n, len(buf), status.ErrInvalidArgument)
	}
	return buf[:n], nil
}

func (s *Session) payloadLength() (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.payloadMax > 0 {
		return s.payloadMax, nil
	}
	h, err := s.Handle()
	if err != nil {
		return 0, err
	}
	v, err := s.env.Session.GetU32(h, props.SessionPayloadLengthMax)
	if err != nil {
		return 0, err
	}
	s.payloadMax = max(int(v), 8)
	return s.payloadMax, nil
}

// WriteFrames queues fs for transmission.
func (s *Session) WriteFrames(fs []frames.Frame, timeout time.Duration) error {
	buf, err := frames.Encode(fs)
	if err != nil {
		return err
	}
	return s.WriteRaw(buf, timeout)
}

// WriteRaw queues already encoded frames.
func (s *Session) WriteRaw(buf []byte, timeout time.Duration) error {
	h, err := s.Handle()
	if err != nil {
		return err
	}
	return s.env.Check(s.env.Native.WriteFrame(h, buf, seconds(timeout)), "nxWriteFrame")
}

// Sample is one signal value with the time it was received.
type Sample struct {
	Value float64
	Time  time.Time
}

// ReadSignals returns the latest value of every signal in the session list.
func (s *Session) ReadSignals() ([]Sample, error) {
	h, err := s.Handle()
	if err != nil {
		return nil, err
	}
	n, err := s.env.Session.GetU32(h, props.SessionNumInList)
	if err != nil {
		return nil, err
	}
	values := make([]float64, n)
	stamps := make([]uint64, n)
	if err := s.env.Check(s.env.Native.ReadSignalSinglePoint(h, values, stamps), "nxReadSignalSinglePoint"); err != nil {
		return nil, err
	}
	out := make([]Sample, n)
	for i := range out {
		out[i] = Sample{Value: values[i]}
		if stamps[i] != 0 {
			out[i].Time = props.TimeFromTicks(stamps[i])
		}
	}
	return out, nil
}

// WriteSignals writes one value per signal in list order.
func (s *Session) WriteSignals(values []float64) error {
	h, err := s.Handle()
	if err != nil {
		return err
	}
	return s.env.Check(s.env.Native.WriteSignalSinglePoint(h, values), "nxWriteSignalSinglePoint")
}

// ConnectTerminals routes source to destination, for example a start
// trigger between interfaces.
func (s *Session) ConnectTerminals(source, destination string) error {
	h, err := s.terminals(source, destination)
	if err != nil {
		return err
	}
	return s.env.Check(s.env.Native.ConnectTerminals(h, source, destination),
		fmt.Sprintf("nxConnectTerminals(%q, %q)", source, destination))
}

func (s *Session) DisconnectTerminals(source, destination string) error {
	h, err := s.terminals(source, destination)
	if err != nil {
		return err
	}
	return s.env.Check(s.env.Native.DisconnectTerminals(h, source, destination),
		fmt.Sprintf("nxDisconnectTerminals(%q, %q)", source, destination))
}

func (s *Session) terminals(source, destination string) (driver.Handle, error) {
	if err := driver.ASCII(source); err != nil {
		return driver.NoHandle, err
	}
	if err := driver.ASCII(destination); err != nil {
		return driver.NoHandle, err
	}
	return s.Handle()
}

// readState reads a state value into buf. A fault reported alongside a
// successful read is classified like any other status.
func (s *Session) readState(id uint32, buf []byte) error {
	h, err := s.Handle()
	if err != nil {
		return err
	}
	fault, code := s.env.Native.ReadState(h, id, buf)
	if err := s.env.Check(code, fmt.Sprintf("nxReadState(0x%X)", id)); err != nil {
		return err
	}
	return s.env.Check(fault, fmt.Sprintf("nxReadState(0x%X) fault", id))
}

func (s *Session) readTime(id uint32) (time.Time, error) {
	var buf [8]byte
	if err := s.readState(id, buf[:]); err != nil {
		return time.Time{}, err
	}
	return props.TimeFromTicks(binary.LittleEndian.Uint64(buf[:])), nil
}

// CurrentTime is the interface's current time.
func (s *Session) CurrentTime() (time.Time, error) { return s.readTime(props.StateTimeCurrent) }

// CommunicatingTime is when the interface began communicating.
func (s *Session) CommunicatingTime() (time.Time, error) {
	return s.readTime(props.StateTimeCommunicating)
}

// StartTime is when the interface was started.
func (s *Session) StartTime() (time.Time, error) { return s.readTime(props.StateTimeStart) }

// Info is the session's running state as reported by the driver.
type Info uint32

const (
	InfoStopped Info = 0
	InfoStarted Info = 1
	InfoMixed   Info = 2
)

func (s *Session) Info() (Info, error) {
	var buf [4]byte
	if err := s.readState(props.StateSessionInfo, buf[:]); err != nil {
		return 0, err
	}
	return Info(binary.LittleEndian.Uint32(buf[:])), nil
}

// CANComm is the decoded CAN communication state.
type CANComm struct {
	State          uint8
	TransceiverErr bool
	Sleep          bool
	LastErr        uint8
	TxErrCount     uint8
	RxErrCount     uint8
}

func (s *Session) CANComm() (CANComm, error) {
	var buf [4]byte
	if err := s.readState(props.StateCANComm, buf[:]); err != nil {
		return CANComm{}, err
	}
	v := binary.LittleEndian.Uint32(buf[:])
	return CANComm{
		State:          uint8(v & 0x0F),
		TransceiverErr: v&0x10 != 0,
		Sleep:          v&0x20 != 0,
		LastErr:        uint8(v >> 8 & 0x0F),
		TxErrCount:     uint8(v >> 16),
		RxErrCount:     uint8(v >> 24),
	}, nil
}

// ChangeLINSchedule switches a LIN master to the schedule at index in the
// cluster's schedule list.
func (s *Session) ChangeLINSchedule(index uint32) error {
	h, err := s.Handle()
	if err != nil {
		return err
	}
	buf := binary.LittleEndian.AppendUint32(nil, index)
	return s.env.Check(s.env.Native.WriteState(h, props.StateLINScheduleChange, buf), "nxWriteState(LINScheduleChange)")
}
