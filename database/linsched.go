package database

import (
	"github.com/LoveWonYoung/nixnet/collection"
	"github.com/LoveWonYoung/nixnet/props"
)

// LINSched is a LIN schedule table.
type LINSched struct {
	object
	entries *collection.Collection[*LINSchedEntry]
}

func newLINSched(o object) *LINSched {
	return &LINSched{
		object:  o,
		entries: owned(o, props.LINSchedEntries, props.LINSchedEntryName, props.ClassLINSchedEntry, newLINSchedEntry),
	}
}

func (l *LINSched) Entries() *collection.Collection[*LINSchedEntry] { return l.entries }

func (l *LINSched) Name() (string, error) { return l.codec().GetString(l.h, props.LINSchedName) }
func (l *LINSched) SetName(v string) error {
	return l.codec().SetString(l.h, props.LINSchedName, v)
}

func (l *LINSched) Comment() (string, error) {
	return l.codec().GetString(l.h, props.LINSchedComment)
}

func (l *LINSched) SetComment(v string) error {
	return l.codec().SetString(l.h, props.LINSchedComment, v)
}

func (l *LINSched) Priority() (uint32, error) {
	return l.codec().GetU32(l.h, props.LINSchedPriority)
}

func (l *LINSched) SetPriority(v uint32) error {
	return l.codec().SetU32(l.h, props.LINSchedPriority, v)
}

func (l *LINSched) RunMode() (LINSchedRunMode, error) {
	v, err := l.codec().GetU32(l.h, props.LINSchedRunMode)
	return LINSchedRunMode(v), err
}

func (l *LINSched) SetRunMode(m LINSchedRunMode) error {
	return l.codec().SetU32(l.h, props.LINSchedRunMode, uint32(m))
}

func (l *LINSched) ConfigStatus() (uint32, error) {
	return l.codec().GetU32(l.h, props.LINSchedConfigStatus)
}

func (l *LINSched) Cluster() (*Cluster, error) {
	h, err := l.codec().GetRef(l.h, props.LINSchedClusterRef)
	if err != nil {
		return nil, err
	}
	return newCluster(object{env: l.env, h: h}), nil
}

// LINSchedEntry is one slot of a LIN schedule.
type LINSchedEntry struct {
	object
	frames *collection.Collection[*Frame]
}

func newLINSchedEntry(o object) *LINSchedEntry {
	return &LINSchedEntry{
		object: o,
		frames: referenced(o, props.LINSchedEntryFrameRefs, props.FrameName, newFrame),
	}
}

func (e *LINSchedEntry) Frames() *collection.Collection[*Frame] { return e.frames }

func (e *LINSchedEntry) SetFrames(frames []*Frame) error {
	if err := e.codec().SetRefArray(e.h, props.LINSchedEntryFrameRefs, handles(frames)); err != nil {
		return err
	}
	e.frames.Invalidate()
	return nil
}

func (e *LINSchedEntry) Name() (string, error) {
	return e.codec().GetString(e.h, props.LINSchedEntryName)
}

func (e *LINSchedEntry) SetName(v string) error {
	return e.codec().SetString(e.h, props.LINSchedEntryName, v)
}

// Delay is the time in seconds from the start of this entry to the next.
func (e *LINSchedEntry) Delay() (float64, error) {
	return e.codec().GetF64(e.h, props.LINSchedEntryDelay)
}

func (e *LINSchedEntry) SetDelay(v float64) error {
	return e.codec().SetF64(e.h, props.LINSchedEntryDelay, v)
}

func (e *LINSchedEntry) EventID() (uint32, error) {
	return e.codec().GetU32(e.h, props.LINSchedEntryEventID)
}

func (e *LINSchedEntry) SetEventID(v uint32) error {
	return e.codec().SetU32(e.h, props.LINSchedEntryEventID, v)
}

func (e *LINSchedEntry) Type() (LINSchedEntryType, error) {
	v, err := e.codec().GetU32(e.h, props.LINSchedEntryType)
	return LINSchedEntryType(v), err
}

func (e *LINSchedEntry) SetType(t LINSchedEntryType) error {
	return e.codec().SetU32(e.h, props.LINSchedEntryType, uint32(t))
}

// Schedule returns the schedule the entry belongs to.
func (e *LINSchedEntry) Schedule() (*LINSched, error) {
	h, err := e.codec().GetRef(e.h, props.LINSchedEntrySchedule)
	if err != nil {
		return nil, err
	}
	return newLINSched(object{env: e.env, h: h}), nil
}

// CollisionResolvingSchedule is the schedule run when event triggered
// frames collide.
func (e *LINSchedEntry) CollisionResolvingSchedule() (*LINSched, bool, error) {
	return refOrNil(e.object, props.LINSchedEntryCollisionResSched, newLINSched)
}

func (e *LINSchedEntry) SetCollisionResolvingSchedule(s *LINSched) error {
	return e.codec().SetRef(e.h, props.LINSchedEntryCollisionResSched, s.Handle())
}
