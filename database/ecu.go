package database

import (
	"github.com/LoveWonYoung/nixnet/collection"
	"github.com/LoveWonYoung/nixnet/props"
)

// ECU is a node on a cluster.
type ECU struct {
	object
	tx *collection.Collection[*Frame]
	rx *collection.Collection[*Frame]
}

func newECU(o object) *ECU {
	return &ECU{
		object: o,
		tx:     referenced(o, props.ECUTxFrameRefs, props.FrameName, newFrame),
		rx:     referenced(o, props.ECURxFrameRefs, props.FrameName, newFrame),
	}
}

func (e *ECU) TxFrames() *collection.Collection[*Frame] { return e.tx }
func (e *ECU) RxFrames() *collection.Collection[*Frame] { return e.rx }

// SetTxFrames replaces the frames the ECU transmits.
func (e *ECU) SetTxFrames(frames []*Frame) error {
	if err := e.codec().SetRefArray(e.h, props.ECUTxFrameRefs, handles(frames)); err != nil {
		return err
	}
	e.tx.Invalidate()
	return nil
}

// SetRxFrames replaces the frames the ECU receives.
func (e *ECU) SetRxFrames(frames []*Frame) error {
	if err := e.codec().SetRefArray(e.h, props.ECURxFrameRefs, handles(frames)); err != nil {
		return err
	}
	e.rx.Invalidate()
	return nil
}

func (e *ECU) Name() (string, error) { return e.codec().GetString(e.h, props.ECUName) }
func (e *ECU) SetName(v string) error {
	return e.codec().SetString(e.h, props.ECUName, v)
}

func (e *ECU) Comment() (string, error) { return e.codec().GetString(e.h, props.ECUComment) }
func (e *ECU) SetComment(v string) error {
	return e.codec().SetString(e.h, props.ECUComment, v)
}

func (e *ECU) ConfigStatus() (uint32, error) {
	return e.codec().GetU32(e.h, props.ECUConfigStatus)
}

func (e *ECU) Cluster() (*Cluster, error) {
	h, err := e.codec().GetRef(e.h, props.ECUClusterRef)
	if err != nil {
		return nil, err
	}
	return newCluster(object{env: e.env, h: h}), nil
}
