package database

import (
	"fmt"

	nixnet "github.com/LoveWonYoung/nixnet"
	"github.com/LoveWonYoung/nixnet/collection"
	"github.com/LoveWonYoung/nixnet/driver"
	"github.com/LoveWonYoung/nixnet/props"
)

// Cluster is a bus in a database.
type Cluster struct {
	object
	frames    *collection.Collection[*Frame]
	pdus      *collection.Collection[*PDU]
	ecus      *collection.Collection[*ECU]
	schedules *collection.Collection[*LINSched]
	signals   *collection.Collection[*Signal]
}

func newCluster(o object) *Cluster {
	return &Cluster{
		object:    o,
		frames:    owned(o, props.ClusterFrameRefs, props.FrameName, props.ClassFrame, newFrame),
		pdus:      owned(o, props.ClusterPDURefs, props.PDUName, props.ClassPDU, newPDU),
		ecus:      owned(o, props.ClusterECURefs, props.ECUName, props.ClassECU, newECU),
		schedules: owned(o, props.ClusterLINSchedules, props.LINSchedName, props.ClassLINSched, newLINSched),
		signals:   referenced(o, props.ClusterSignalRefs, props.SignalName, newSignal),
	}
}

func (c *Cluster) Frames() *collection.Collection[*Frame]          { return c.frames }
func (c *Cluster) PDUs() *collection.Collection[*PDU]              { return c.pdus }
func (c *Cluster) ECUs() *collection.Collection[*ECU]              { return c.ecus }
func (c *Cluster) LINSchedules() *collection.Collection[*LINSched] { return c.schedules }

// Signals lists every signal of every frame in the cluster. It is read-only;
// signals are created on their frame or PDU.
func (c *Cluster) Signals() *collection.Collection[*Signal] { return c.signals }

func (c *Cluster) Name() (string, error) { return c.codec().GetString(c.h, props.ClusterName) }
func (c *Cluster) SetName(v string) error {
	return c.codec().SetString(c.h, props.ClusterName, v)
}

func (c *Cluster) Comment() (string, error) { return c.codec().GetString(c.h, props.ClusterComment) }
func (c *Cluster) SetComment(v string) error {
	return c.codec().SetString(c.h, props.ClusterComment, v)
}

func (c *Cluster) Protocol() (nixnet.Protocol, error) {
	v, err := c.codec().GetU32(c.h, props.ClusterProtocol)
	return nixnet.Protocol(v), err
}

func (c *Cluster) SetProtocol(p nixnet.Protocol) error {
	return c.codec().SetU32(c.h, props.ClusterProtocol, uint32(p))
}

// BaudRate is the nominal (arbitration) rate in bit/s.
func (c *Cluster) BaudRate() (uint64, error) { return c.codec().GetU64(c.h, props.ClusterBaudRate) }
func (c *Cluster) SetBaudRate(v uint64) error {
	return c.codec().SetU64(c.h, props.ClusterBaudRate, v)
}

// CANFDBaudRate is the data phase rate in bit/s.
func (c *Cluster) CANFDBaudRate() (uint64, error) {
	return c.codec().GetU64(c.h, props.ClusterCANFDBaudRate)
}

func (c *Cluster) SetCANFDBaudRate(v uint64) error {
	return c.codec().SetU64(c.h, props.ClusterCANFDBaudRate, v)
}

func (c *Cluster) CANIOMode() (CANIOMode, error) {
	v, err := c.codec().GetU32(c.h, props.ClusterCANIOMode)
	return CANIOMode(v), err
}

func (c *Cluster) SetCANIOMode(m CANIOMode) error {
	return c.codec().SetU32(c.h, props.ClusterCANIOMode, uint32(m))
}

func (c *Cluster) PDUsRequired() (bool, error) {
	return c.codec().GetBool(c.h, props.ClusterPDUsRequired)
}

// LINTick is the LIN schedule time base in seconds.
func (c *Cluster) LINTick() (float64, error) { return c.codec().GetF64(c.h, props.ClusterLINTick) }
func (c *Cluster) SetLINTick(v float64) error {
	return c.codec().SetF64(c.h, props.ClusterLINTick, v)
}

func (c *Cluster) ConfigStatus() (uint32, error) {
	return c.codec().GetU32(c.h, props.ClusterConfigStatus)
}

// DatabaseHandle returns the handle of the database the cluster belongs to.
func (c *Cluster) DatabaseHandle() (driver.Handle, error) {
	return c.codec().GetRef(c.h, props.ClusterDatabaseRef)
}

// Merge copies source (a cluster, or a frame, PDU, ECU or LIN schedule of
// another cluster) into c. Names from source get prefix prepended. With
// wait false the call returns at once and the returned percentage tells how
// far the merge got.
func (c *Cluster) Merge(source Object, mode CopyMode, prefix string, wait bool) (uint32, error) {
	if err := driver.ASCII(prefix); err != nil {
		return 0, err
	}
	pct, code := c.env.Native.DbMerge(c.h, source.Handle(), uint32(mode), prefix, wait)
	if err := c.env.Check(code, fmt.Sprintf("nxdbMerge(%q)", prefix)); err != nil {
		return 0, err
	}
	return pct, nil
}
