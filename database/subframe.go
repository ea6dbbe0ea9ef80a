package database

import (
	"github.com/LoveWonYoung/nixnet/collection"
	"github.com/LoveWonYoung/nixnet/props"
)

// Subframe groups the dynamic signals sent for one multiplexer value.
type Subframe struct {
	object
	dynamic *collection.Collection[*Signal]
}

func newSubframe(o object) *Subframe {
	return &Subframe{
		object:  o,
		dynamic: owned(o, props.SubframeDynamicSignalRefs, props.SignalName, props.ClassSignal, newSignal),
	}
}

func (s *Subframe) DynamicSignals() *collection.Collection[*Signal] { return s.dynamic }

func (s *Subframe) Name() (string, error) { return s.codec().GetString(s.h, props.SubframeName) }
func (s *Subframe) SetName(v string) error {
	return s.codec().SetString(s.h, props.SubframeName, v)
}

func (s *Subframe) MuxValue() (uint32, error) {
	return s.codec().GetU32(s.h, props.SubframeMuxValue)
}

func (s *Subframe) SetMuxValue(v uint32) error {
	return s.codec().SetU32(s.h, props.SubframeMuxValue, v)
}

func (s *Subframe) ConfigStatus() (uint32, error) {
	return s.codec().GetU32(s.h, props.SubframeConfigStatus)
}

func (s *Subframe) Frame() (*Frame, bool, error) {
	return refOrNil(s.object, props.SubframeFrameRef, newFrame)
}

func (s *Subframe) PDU() (*PDU, bool, error) {
	return refOrNil(s.object, props.SubframePDURef, newPDU)
}
