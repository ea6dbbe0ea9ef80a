package database

import (
	"github.com/LoveWonYoung/nixnet/collection"
	"github.com/LoveWonYoung/nixnet/props"
)

// PDU is a protocol data unit; frames carry one or more of them.
type PDU struct {
	object
	signals   *collection.Collection[*Signal]
	subframes *collection.Collection[*Subframe]
	frames    *collection.Collection[*Frame]
	static    *collection.Collection[*Signal]
}

func newPDU(o object) *PDU {
	return &PDU{
		object:    o,
		signals:   owned(o, props.PDUSignalRefs, props.SignalName, props.ClassSignal, newSignal),
		subframes: owned(o, props.PDUMuxSubframeRefs, props.SubframeName, props.ClassSubframe, newSubframe),
		frames:    referenced(o, props.PDUFrameRefs, props.FrameName, newFrame),
		static:    referenced(o, props.PDUMuxStaticSignalRefs, props.SignalName, newSignal),
	}
}

func (p *PDU) Signals() *collection.Collection[*Signal]        { return p.signals }
func (p *PDU) MuxSubframes() *collection.Collection[*Subframe] { return p.subframes }
func (p *PDU) MuxStaticSignals() *collection.Collection[*Signal] {
	return p.static
}

// Frames lists the frames that carry the PDU.
func (p *PDU) Frames() *collection.Collection[*Frame] { return p.frames }

func (p *PDU) Name() (string, error) { return p.codec().GetString(p.h, props.PDUName) }
func (p *PDU) SetName(v string) error {
	return p.codec().SetString(p.h, props.PDUName, v)
}

func (p *PDU) Comment() (string, error) { return p.codec().GetString(p.h, props.PDUComment) }
func (p *PDU) SetComment(v string) error {
	return p.codec().SetString(p.h, props.PDUComment, v)
}

func (p *PDU) PayloadLength() (uint32, error) {
	return p.codec().GetU32(p.h, props.PDUPayloadLength)
}

func (p *PDU) SetPayloadLength(v uint32) error {
	return p.codec().SetU32(p.h, props.PDUPayloadLength, v)
}

func (p *PDU) DefaultPayload() ([]byte, error) {
	return p.codec().GetU8Array(p.h, props.PDUDefaultPayload)
}

func (p *PDU) SetDefaultPayload(v []byte) error {
	return p.codec().SetU8Array(p.h, props.PDUDefaultPayload, v)
}

func (p *PDU) ConfigStatus() (uint32, error) {
	return p.codec().GetU32(p.h, props.PDUConfigStatus)
}

func (p *PDU) Cluster() (*Cluster, error) {
	h, err := p.codec().GetRef(p.h, props.PDUClusterRef)
	if err != nil {
		return nil, err
	}
	return newCluster(object{env: p.env, h: h}), nil
}

func (p *PDU) MuxIsMuxed() (bool, error) { return p.codec().GetBool(p.h, props.PDUMuxIsMuxed) }

func (p *PDU) MuxDataSignal() (*Signal, bool, error) {
	return refOrNil(p.object, props.PDUMuxDataSignalRef, newSignal)
}
