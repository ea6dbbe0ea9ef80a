package database

import (
	"github.com/LoveWonYoung/nixnet/collection"
	"github.com/LoveWonYoung/nixnet/props"
)

// Frame is a frame of a cluster.
type Frame struct {
	object
	signals   *collection.Collection[*Signal]
	subframes *collection.Collection[*Subframe]
	pdus      *collection.Collection[*PDU]
	static    *collection.Collection[*Signal]
}

func newFrame(o object) *Frame {
	return &Frame{
		object:    o,
		signals:   owned(o, props.FrameSignalRefs, props.SignalName, props.ClassSignal, newSignal),
		subframes: owned(o, props.FrameMuxSubframeRefs, props.SubframeName, props.ClassSubframe, newSubframe),
		pdus:      referenced(o, props.FramePDURefs, props.PDUName, newPDU),
		static:    referenced(o, props.FrameMuxStaticSignalRefs, props.SignalName, newSignal),
	}
}

// Signals is the mutable collection of signals mapped into the frame.
func (f *Frame) Signals() *collection.Collection[*Signal] { return f.signals }

// MuxSubframes is the mutable collection of subframes of a multiplexed frame.
func (f *Frame) MuxSubframes() *collection.Collection[*Subframe] { return f.subframes }

// MuxStaticSignals are the signals present regardless of the multiplexer value.
func (f *Frame) MuxStaticSignals() *collection.Collection[*Signal] { return f.static }

func (f *Frame) PDUs() *collection.Collection[*PDU] { return f.pdus }

// SetPDUs maps pdus into the frame. The PDU start and update bit arrays
// must be set to match afterwards.
func (f *Frame) SetPDUs(pdus []*PDU) error {
	if err := f.codec().SetRefArray(f.h, props.FramePDURefs, handles(pdus)); err != nil {
		return err
	}
	f.pdus.Invalidate()
	return nil
}

func (f *Frame) Name() (string, error) { return f.codec().GetString(f.h, props.FrameName) }
func (f *Frame) SetName(v string) error {
	return f.codec().SetString(f.h, props.FrameName, v)
}

func (f *Frame) Comment() (string, error) { return f.codec().GetString(f.h, props.FrameComment) }
func (f *Frame) SetComment(v string) error {
	return f.codec().SetString(f.h, props.FrameComment, v)
}

func (f *Frame) ID() (uint32, error) { return f.codec().GetU32(f.h, props.FrameID) }
func (f *Frame) SetID(v uint32) error {
	return f.codec().SetU32(f.h, props.FrameID, v)
}

func (f *Frame) PayloadLength() (uint32, error) {
	return f.codec().GetU32(f.h, props.FramePayloadLength)
}

func (f *Frame) SetPayloadLength(v uint32) error {
	return f.codec().SetU32(f.h, props.FramePayloadLength, v)
}

// DefaultPayload is transmitted before the first signal write.
func (f *Frame) DefaultPayload() ([]byte, error) {
	return f.codec().GetU8Array(f.h, props.FrameDefaultPayload)
}

func (f *Frame) SetDefaultPayload(v []byte) error {
	return f.codec().SetU8Array(f.h, props.FrameDefaultPayload, v)
}

func (f *Frame) ApplicationProtocol() (uint32, error) {
	return f.codec().GetU32(f.h, props.FrameApplicationProtocol)
}

func (f *Frame) SetApplicationProtocol(v uint32) error {
	return f.codec().SetU32(f.h, props.FrameApplicationProtocol, v)
}

func (f *Frame) ConfigStatus() (uint32, error) {
	return f.codec().GetU32(f.h, props.FrameConfigStatus)
}

// Cluster returns the cluster the frame belongs to.
func (f *Frame) Cluster() (*Cluster, error) {
	h, err := f.codec().GetRef(f.h, props.FrameClusterRef)
	if err != nil {
		return nil, err
	}
	return newCluster(object{env: f.env, h: h}), nil
}

func (f *Frame) CANExtendedID() (bool, error) {
	return f.codec().GetBool(f.h, props.FrameCANExtendedID)
}

func (f *Frame) SetCANExtendedID(v bool) error {
	return f.codec().SetBool(f.h, props.FrameCANExtendedID, v)
}

func (f *Frame) CANTimingType() (CANTimingType, error) {
	v, err := f.codec().GetU32(f.h, props.FrameCANTimingType)
	return CANTimingType(v), err
}

func (f *Frame) SetCANTimingType(t CANTimingType) error {
	return f.codec().SetU32(f.h, props.FrameCANTimingType, uint32(t))
}

// CANTransmitTime is the cycle time of a cyclic frame in seconds.
func (f *Frame) CANTransmitTime() (float64, error) {
	return f.codec().GetF64(f.h, props.FrameCANTransmitTime)
}

func (f *Frame) SetCANTransmitTime(v float64) error {
	return f.codec().SetF64(f.h, props.FrameCANTransmitTime, v)
}

func (f *Frame) LINChecksum() (LINChecksum, error) {
	v, err := f.codec().GetU32(f.h, props.FrameLINChecksum)
	return LINChecksum(v), err
}

func (f *Frame) MuxIsMuxed() (bool, error) {
	return f.codec().GetBool(f.h, props.FrameMuxIsMuxed)
}

// MuxDataSignal returns the multiplexer signal. ok is false when the frame
// is not multiplexed.
func (f *Frame) MuxDataSignal() (s *Signal, ok bool, err error) {
	return refOrNil(f.object, props.FrameMuxDataSignalRef, newSignal)
}

func (f *Frame) PDUStartBits() ([]uint32, error) {
	return f.codec().GetU32Array(f.h, props.FramePDUStartBits)
}

func (f *Frame) SetPDUStartBits(v []uint32) error {
	return f.codec().SetU32Array(f.h, props.FramePDUStartBits, v)
}

func (f *Frame) PDUUpdateBits() ([]uint32, error) {
	return f.codec().GetU32Array(f.h, props.FramePDUUpdateBits)
}

func (f *Frame) SetPDUUpdateBits(v []uint32) error {
	return f.codec().SetU32Array(f.h, props.FramePDUUpdateBits, v)
}
