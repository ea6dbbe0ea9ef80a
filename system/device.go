package system

import (
	nixnet "github.com/LoveWonYoung/nixnet"
	"github.com/LoveWonYoung/nixnet/collection"
	"github.com/LoveWonYoung/nixnet/driver"
	"github.com/LoveWonYoung/nixnet/props"
)

// FormFactor of a device.
type FormFactor uint32

const (
	FormFactorPXI     FormFactor = 0
	FormFactorPCI     FormFactor = 1
	FormFactorCSeries FormFactor = 2
	FormFactorPXIe    FormFactor = 3
	FormFactorUSB     FormFactor = 4
	FormFactorPCIe    FormFactor = 5
)

// Device is an installed NI-XNET board or module.
type Device struct {
	env        *nixnet.Env
	h          driver.Handle
	interfaces *collection.Collection[*Interface]
}

func newDevice(env *nixnet.Env, h driver.Handle) *Device {
	parent := func() (driver.Handle, error) { return h, nil }
	return &Device{
		env:        env,
		h:          h,
		interfaces: refs(env, parent, props.DeviceIntfRefs, props.IntfName, newInterface),
	}
}

func (d *Device) Handle() driver.Handle { return d.h }

// Interfaces lists the ports of the device.
func (d *Device) Interfaces() *collection.Collection[*Interface] { return d.interfaces }

func (d *Device) Name() (string, error) { return d.env.Session.GetString(d.h, props.DeviceName) }

func (d *Device) ProductName() (string, error) {
	return d.env.Session.GetString(d.h, props.DeviceProductName)
}

func (d *Device) ProductNumber() (uint32, error) {
	return d.env.Session.GetU32(d.h, props.DeviceProductNum)
}

func (d *Device) SerialNumber() (uint32, error) {
	return d.env.Session.GetU32(d.h, props.DeviceSerialNum)
}

func (d *Device) NumPorts() (uint32, error) { return d.env.Session.GetU32(d.h, props.DeviceNumPorts) }

// SlotNumber is the PXI slot, or zero for other form factors.
func (d *Device) SlotNumber() (uint32, error) {
	return d.env.Session.GetU32(d.h, props.DeviceSlotNum)
}

func (d *Device) FormFactor() (FormFactor, error) {
	v, err := d.env.Session.GetU32(d.h, props.DeviceFormFac)
	return FormFactor(v), err
}
