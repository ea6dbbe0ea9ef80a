package system

import (
	"fmt"

	nixnet "github.com/LoveWonYoung/nixnet"
	"github.com/LoveWonYoung/nixnet/driver"
	"github.com/LoveWonYoung/nixnet/props"
)

// BlinkMode for Interface.Blink.
type BlinkMode uint32

const (
	BlinkDisable BlinkMode = 0
	BlinkEnable  BlinkMode = 1
)

// Interface is one port of a device, named like "CAN1" or "LIN2".
type Interface struct {
	env *nixnet.Env
	h   driver.Handle
}

func newInterface(env *nixnet.Env, h driver.Handle) *Interface {
	return &Interface{env: env, h: h}
}

func (i *Interface) Handle() driver.Handle { return i.h }

func (i *Interface) Name() (string, error) { return i.env.Session.GetString(i.h, props.IntfName) }

// Number is the number in the interface name.
func (i *Interface) Number() (uint32, error) { return i.env.Session.GetU32(i.h, props.IntfNum) }

// PortNumber is the physical port on the device, starting at 1.
func (i *Interface) PortNumber() (uint32, error) {
	return i.env.Session.GetU32(i.h, props.IntfPortNum)
}

func (i *Interface) Protocol() (nixnet.Protocol, error) {
	v, err := i.env.Session.GetU32(i.h, props.IntfProtocol)
	return nixnet.Protocol(v), err
}

func (i *Interface) Device() (*Device, error) {
	h, err := i.env.Session.GetRef(i.h, props.IntfDevRef)
	if err != nil {
		return nil, err
	}
	return newDevice(i.env, h), nil
}

func (i *Interface) CANTerminationCap() (uint32, error) {
	return i.env.Session.GetU32(i.h, props.IntfCANTermCap)
}

func (i *Interface) CANTransceiverCap() (uint32, error) {
	return i.env.Session.GetU32(i.h, props.IntfCANTcvrCap)
}

func (i *Interface) DongleState() (uint32, error) {
	return i.env.Session.GetU32(i.h, props.IntfDongleState)
}

func (i *Interface) DongleID() (uint32, error) {
	return i.env.Session.GetU32(i.h, props.IntfDongleID)
}

// Blink toggles the port LED so the physical port can be identified.
func (i *Interface) Blink(mode BlinkMode) error {
	return i.env.Check(i.env.Native.Blink(i.h, uint32(mode)), fmt.Sprintf("nxBlink(%d)", mode))
}
