// Package system enumerates the NI-XNET hardware installed on this host.
//
// Devices and interfaces are only valid while the System they were listed
// from is open.
package system

import (
	"fmt"

	nixnet "github.com/LoveWonYoung/nixnet"
	"github.com/LoveWonYoung/nixnet/collection"
	"github.com/LoveWonYoung/nixnet/driver"
	"github.com/LoveWonYoung/nixnet/props"
	"github.com/LoveWonYoung/nixnet/resource"
	"github.com/LoveWonYoung/nixnet/status"
)

// System is an open view of the installed hardware.
type System struct {
	env   *nixnet.Env
	guard *resource.Guard

	devices    *collection.Collection[*Device]
	interfaces *collection.Collection[*Interface]
	can        *collection.Collection[*Interface]
	lin        *collection.Collection[*Interface]
}

func Open(env *nixnet.Env) (*System, error) {
	g, err := resource.Open(env.Tracker, "system", "system",
		func() (driver.Handle, error) {
			h, code := env.Native.SystemOpen()
			if err := env.Check(code, "nxSystemOpen"); err != nil {
				return driver.NoHandle, err
			}
			return h, nil
		},
		func(h driver.Handle) error {
			return env.Check(env.Native.SystemClose(h), "nxSystemClose")
		})
	if err != nil {
		return nil, err
	}
	s := &System{env: env, guard: g}
	s.devices = refs(env, g.Handle, props.SystemDevRefs, props.DeviceName, newDevice)
	s.interfaces = refs(env, g.Handle, props.SystemIntfRefs, props.IntfName, newInterface)
	s.can = refs(env, g.Handle, props.SystemIntfRefsCAN, props.IntfName, newInterface)
	s.lin = refs(env, g.Handle, props.SystemIntfRefsLIN, props.IntfName, newInterface)
	return s, nil
}

func (s *System) Handle() (driver.Handle, error) { return s.guard.Handle() }
func (s *System) Close() error                   { return s.guard.Close() }

func (s *System) Devices() *collection.Collection[*Device]          { return s.devices }
func (s *System) Interfaces() *collection.Collection[*Interface]    { return s.interfaces }
func (s *System) CANInterfaces() *collection.Collection[*Interface] { return s.can }
func (s *System) LINInterfaces() *collection.Collection[*Interface] { return s.lin }

// Phase of a driver release.
type Phase uint32

const (
	PhaseDevelopment Phase = 0
	PhaseAlpha       Phase = 1
	PhaseBeta        Phase = 2
	PhaseRelease     Phase = 3
)

// Version of the installed driver.
type Version struct {
	Major, Minor, Update uint32
	Phase                Phase
	Build                uint32
}

func (v Version) String() string {
	s := fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Update)
	switch v.Phase {
	case PhaseDevelopment:
		s += "d"
	case PhaseAlpha:
		s += "a"
	case PhaseBeta:
		s += "b"
	default:
		return s
	}
	return fmt.Sprintf("%s%d", s, v.Build)
}

func (s *System) Version() (Version, error) {
	h, err := s.Handle()
	if err != nil {
		return Version{}, err
	}
	var v Version
	var phase uint32
	for _, f := range []struct {
		id  props.U32
		dst *uint32
	}{
		{props.SystemVersionMajor, &v.Major},
		{props.SystemVersionMinor, &v.Minor},
		{props.SystemVersionUpdate, &v.Update},
		{props.SystemVersionPhase, &phase},
		{props.SystemVersionBuild, &v.Build},
	} {
		if *f.dst, err = s.env.Session.GetU32(h, f.id); err != nil {
			return Version{}, err
		}
	}
	v.Phase = Phase(phase)
	return v, nil
}

// refSource lists the objects of a ref array property, named by each
// object's own name property and resolved by position.
type refSource[T any] struct {
	env    *nixnet.Env
	parent func() (driver.Handle, error)
	list   props.RefArray
	name   props.String
	wrap   func(*nixnet.Env, driver.Handle) T
}

func refs[T any](env *nixnet.Env, parent func() (driver.Handle, error), list props.RefArray, name props.String, wrap func(*nixnet.Env, driver.Handle) T) *collection.Collection[T] {
	return collection.New[T](&refSource[T]{env: env, parent: parent, list: list, name: name, wrap: wrap})
}

func (r *refSource[T]) handles() ([]driver.Handle, error) {
	p, err := r.parent()
	if err != nil {
		return nil, err
	}
	return r.env.Session.GetRefArray(p, r.list)
}

func (r *refSource[T]) Len() (int, error) {
	p, err := r.parent()
	if err != nil {
		return 0, err
	}
	return r.env.Session.CountRefs(p, r.list)
}

func (r *refSource[T]) Names() ([]string, error) {
	hs, err := r.handles()
	if err != nil {
		return nil, err
	}
	names := make([]string, len(hs))
	for i, h := range hs {
		if names[i], err = r.env.Session.GetString(h, r.name); err != nil {
			return nil, err
		}
	}
	return names, nil
}

func (r *refSource[T]) Resolve(i int, name string) (T, error) {
	var zero T
	hs, err := r.handles()
	if err != nil {
		return zero, err
	}
	if i < 0 || i >= len(hs) {
		return zero, fmt.Errorf("%q: %w", name, status.ErrNotFound)
	}
	return r.wrap(r.env, hs[i]), nil
}
