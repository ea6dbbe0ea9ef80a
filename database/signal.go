package database

import (
	"github.com/LoveWonYoung/nixnet/props"
)

// Signal is a value mapped to bits of a frame or PDU.
type Signal struct {
	object
}

func newSignal(o object) *Signal { return &Signal{object: o} }

func (s *Signal) Name() (string, error) { return s.codec().GetString(s.h, props.SignalName) }
func (s *Signal) SetName(v string) error {
	return s.codec().SetString(s.h, props.SignalName, v)
}

func (s *Signal) Comment() (string, error) { return s.codec().GetString(s.h, props.SignalComment) }
func (s *Signal) SetComment(v string) error {
	return s.codec().SetString(s.h, props.SignalComment, v)
}

func (s *Signal) Unit() (string, error) { return s.codec().GetString(s.h, props.SignalUnit) }
func (s *Signal) SetUnit(v string) error {
	return s.codec().SetString(s.h, props.SignalUnit, v)
}

func (s *Signal) ByteOrder() (ByteOrder, error) {
	v, err := s.codec().GetU32(s.h, props.SignalByteOrder)
	return ByteOrder(v), err
}

func (s *Signal) SetByteOrder(o ByteOrder) error {
	return s.codec().SetU32(s.h, props.SignalByteOrder, uint32(o))
}

func (s *Signal) DataType() (DataType, error) {
	v, err := s.codec().GetU32(s.h, props.SignalDataType)
	return DataType(v), err
}

func (s *Signal) SetDataType(t DataType) error {
	return s.codec().SetU32(s.h, props.SignalDataType, uint32(t))
}

func (s *Signal) StartBit() (uint32, error) { return s.codec().GetU32(s.h, props.SignalStartBit) }
func (s *Signal) SetStartBit(v uint32) error {
	return s.codec().SetU32(s.h, props.SignalStartBit, v)
}

func (s *Signal) NumBits() (uint32, error) { return s.codec().GetU32(s.h, props.SignalNumBits) }
func (s *Signal) SetNumBits(v uint32) error {
	return s.codec().SetU32(s.h, props.SignalNumBits, v)
}

// Default is the scaled value used before the first write or receive.
func (s *Signal) Default() (float64, error) { return s.codec().GetF64(s.h, props.SignalDefault) }
func (s *Signal) SetDefault(v float64) error {
	return s.codec().SetF64(s.h, props.SignalDefault, v)
}

func (s *Signal) Min() (float64, error) { return s.codec().GetF64(s.h, props.SignalMin) }
func (s *Signal) SetMin(v float64) error {
	return s.codec().SetF64(s.h, props.SignalMin, v)
}

func (s *Signal) Max() (float64, error) { return s.codec().GetF64(s.h, props.SignalMax) }
func (s *Signal) SetMax(v float64) error {
	return s.codec().SetF64(s.h, props.SignalMax, v)
}

// ScaleFactor and ScaleOffset convert raw values: scaled = raw*factor + offset.
func (s *Signal) ScaleFactor() (float64, error) {
	return s.codec().GetF64(s.h, props.SignalScaleFactor)
}

func (s *Signal) SetScaleFactor(v float64) error {
	return s.codec().SetF64(s.h, props.SignalScaleFactor, v)
}

func (s *Signal) ScaleOffset() (float64, error) {
	return s.codec().GetF64(s.h, props.SignalScaleOffset)
}

func (s *Signal) SetScaleOffset(v float64) error {
	return s.codec().SetF64(s.h, props.SignalScaleOffset, v)
}

func (s *Signal) ConfigStatus() (uint32, error) {
	return s.codec().GetU32(s.h, props.SignalConfigStatus)
}

// Frame returns the frame the signal is mapped into.
func (s *Signal) Frame() (*Frame, bool, error) {
	return refOrNil(s.object, props.SignalFrameRef, newFrame)
}

// PDU returns the PDU the signal is mapped into, if any.
func (s *Signal) PDU() (*PDU, bool, error) {
	return refOrNil(s.object, props.SignalPDURef, newPDU)
}

func (s *Signal) MuxIsDataMux() (bool, error) {
	return s.codec().GetBool(s.h, props.SignalMuxIsDataMux)
}

func (s *Signal) SetMuxIsDataMux(v bool) error {
	return s.codec().SetBool(s.h, props.SignalMuxIsDataMux, v)
}

func (s *Signal) MuxIsDynamic() (bool, error) {
	return s.codec().GetBool(s.h, props.SignalMuxIsDynamic)
}

func (s *Signal) MuxValue() (uint32, error) { return s.codec().GetU32(s.h, props.SignalMuxValue) }

// MuxSubframe returns the subframe of a dynamic signal.
func (s *Signal) MuxSubframe() (*Subframe, bool, error) {
	return refOrNil(s.object, props.SignalMuxSubframeRef, newSubframe)
}
