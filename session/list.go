package session

import (
	"fmt"

	"github.com/LoveWonYoung/nixnet/collection"
	"github.com/LoveWonYoung/nixnet/props"
	"github.com/LoveWonYoung/nixnet/status"
)

// listSource reads the session list. Items are addressed by their position
// in the list, which is also their sub-property index.
type listSource struct {
	s *Session
}

func (l *listSource) Len() (int, error) {
	n, err := l.s.NumInList()
	return int(n), err
}

func (l *listSource) Names() ([]string, error) {
	h, err := l.s.Handle()
	if err != nil {
		return nil, err
	}
	names, err := l.s.env.Session.GetStringArray(h, props.SessionList)
	if err != nil {
		return nil, err
	}
	if len(names) == 1 && names[0] == "" {
		return nil, nil
	}
	return names, nil
}

type typedList[T any] struct {
	*listSource
	wrap func(s *Session, index uint32, name string) T
}

func listOf[T any](src *listSource, wrap func(*Session, uint32, string) T) collection.Source[T] {
	return &typedList[T]{listSource: src, wrap: wrap}
}

func (l *typedList[T]) Resolve(i int, name string) (T, error) {
	var zero T
	if i < 0 {
		return zero, fmt.Errorf("%q: %w", name, status.ErrNotFound)
	}
	return l.wrap(l.s, uint32(i), name), nil
}

// item addresses one list entry of a session.
type item struct {
	s     *Session
	index uint32
	name  string
}

func (it item) Name() string  { return it.name }
func (it item) Index() uint32 { return it.index }

func (it item) getU32(id props.U32) (uint32, error) {
	h, err := it.s.Handle()
	if err != nil {
		return 0, err
	}
	return it.s.env.Sub.GetU32(h, it.index, id)
}

func (it item) setU32(id props.U32, v uint32) error {
	h, err := it.s.Handle()
	if err != nil {
		return err
	}
	return it.s.env.Sub.SetU32(h, it.index, id, v)
}

func (it item) getF64(id props.F64) (float64, error) {
	h, err := it.s.Handle()
	if err != nil {
		return 0, err
	}
	return it.s.env.Sub.GetF64(h, it.index, id)
}

func (it item) setF64(id props.F64, v float64) error {
	h, err := it.s.Handle()
	if err != nil {
		return err
	}
	return it.s.env.Sub.SetF64(h, it.index, id, v)
}

// Frame is a frame in a session list.
type Frame struct {
	item
}

func newFrame(s *Session, index uint32, name string) *Frame {
	return &Frame{item{s: s, index: index, name: name}}
}

// CANStartTimeOffset delays the first transmission of a cyclic frame, in
// seconds.
func (f *Frame) CANStartTimeOffset() (float64, error) {
	return f.getF64(props.SessionFrameCANStartTimeOffset)
}

func (f *Frame) SetCANStartTimeOffset(v float64) error {
	return f.setF64(props.SessionFrameCANStartTimeOffset, v)
}

// CANTransmitTime overrides the database cycle time, in seconds.
func (f *Frame) CANTransmitTime() (float64, error) {
	return f.getF64(props.SessionFrameCANTransmitTime)
}

func (f *Frame) SetCANTransmitTime(v float64) error {
	return f.setF64(props.SessionFrameCANTransmitTime, v)
}

func (f *Frame) SkipNCyclicFrames() (uint32, error) {
	return f.getU32(props.SessionFrameSkipNCyclicFrames)
}

func (f *Frame) SetSkipNCyclicFrames(v uint32) error {
	return f.setU32(props.SessionFrameSkipNCyclicFrames, v)
}

func (f *Frame) OutputQueueUpdateFrequency() (uint32, error) {
	return f.getU32(props.SessionFrameOutputQueueUpdateFreq)
}

func (f *Frame) SetOutputQueueUpdateFrequency(v uint32) error {
	return f.setU32(props.SessionFrameOutputQueueUpdateFreq, v)
}

func (f *Frame) LINTransmitNCorruptedChecksums() (uint32, error) {
	return f.getU32(props.SessionFrameLINTxNCorruptedChksums)
}

func (f *Frame) SetLINTransmitNCorruptedChecksums(v uint32) error {
	return f.setU32(props.SessionFrameLINTxNCorruptedChksums, v)
}

func (f *Frame) J1939AddressFilter() (string, error) {
	h, err := f.s.Handle()
	if err != nil {
		return "", err
	}
	return f.s.env.Sub.GetString(h, f.index, props.SessionFrameJ1939AddressFilter)
}

func (f *Frame) SetJ1939AddressFilter(v string) error {
	h, err := f.s.Handle()
	if err != nil {
		return err
	}
	return f.s.env.Sub.SetString(h, f.index, props.SessionFrameJ1939AddressFilter, v)
}

// Signal is a signal in a session list.
type Signal struct {
	item
}

func newSignal(s *Session, index uint32, name string) *Signal {
	return &Signal{item{s: s, index: index, name: name}}
}

// Frames lists the frames of a frame session.
func (s *Session) Frames() *collection.Collection[*Frame] { return s.frames }

// Signals lists the signals of a signal session.
func (s *Session) Signals() *collection.Collection[*Signal] { return s.signals }
