package database

import (
	"fmt"
	"strings"

	nixnet "github.com/LoveWonYoung/nixnet"
	"github.com/LoveWonYoung/nixnet/collection"
	"github.com/LoveWonYoung/nixnet/driver"
	"github.com/LoveWonYoung/nixnet/props"
	"github.com/LoveWonYoung/nixnet/status"
)

// Object is any database object.
type Object interface {
	Handle() driver.Handle
}

// object is the handle shared by every database object facade. Objects do
// not keep their database open: using one after the database was closed is
// reported by the driver.
type object struct {
	env *nixnet.Env
	h   driver.Handle
}

func (o object) Handle() driver.Handle { return o.h }

func (o object) codec() *props.Codec { return o.env.Database }

// DBC attribute query modes.
const (
	dbcAttribute      uint32 = 0
	dbcValueTableList uint32 = 1
	dbcAttributeList  uint32 = 2
)

// dbc reads one DBC query through the size-then-fetch protocol.
func (o object) dbc(mode uint32, name string) (string, bool, error) {
	if err := driver.ASCII(name); err != nil {
		return "", false, err
	}
	var isDefault bool
	f := props.SizedFetch{
		Size: func() (uint32, status.Code) {
			return o.env.Native.DbGetDBCAttributeSize(o.h, mode, name)
		},
		Fetch: func(buf []byte) status.Code {
			d, code := o.env.Native.DbGetDBCAttribute(o.h, mode, name, buf)
			isDefault = d
			return code
		},
	}
	buf, err := f.Run(o.env.Classifier, fmt.Sprintf("nxdbGetDBCAttribute(%q)", name))
	if err != nil {
		return "", false, err
	}
	s, err := driver.GoString(buf)
	if err != nil {
		return "", false, err
	}
	return s, isDefault, nil
}

// DBCAttribute returns a DBC attribute value and whether it is the
// attribute's default rather than a value set on this object.
func (o object) DBCAttribute(name string) (string, bool, error) {
	return o.dbc(dbcAttribute, name)
}

// DBCAttributeNames lists the DBC attributes defined for the object.
func (o object) DBCAttributeNames() ([]string, error) {
	s, _, err := o.dbc(dbcAttributeList, "")
	if err != nil || s == "" {
		return nil, err
	}
	return strings.Split(s, ","), nil
}

// children is a collection source over a ref array of a parent object.
// Owned lists resolve names with DbFindObject and support create and
// delete; other lists resolve by position in the live ref array.
type children[T any] struct {
	env      *nixnet.Env
	parent   func() (driver.Handle, error)
	list     props.RefArray
	nameProp props.String
	class    props.Class
	owned    bool
	wrap     func(object) T
}

func (c *children[T]) Len() (int, error) {
	p, err := c.parent()
	if err != nil {
		return 0, err
	}
	return c.env.Database.CountRefs(p, c.list)
}

func (c *children[T]) Names() ([]string, error) {
	p, err := c.parent()
	if err != nil {
		return nil, err
	}
	refs, err := c.env.Database.GetRefArray(p, c.list)
	if err != nil {
		return nil, err
	}
	names := make([]string, len(refs))
	for i, r := range refs {
		if names[i], err = c.env.Database.GetString(r, c.nameProp); err != nil {
			return nil, err
		}
	}
	return names, nil
}

func (c *children[T]) Resolve(i int, name string) (T, error) {
	var zero T
	p, err := c.parent()
	if err != nil {
		return zero, err
	}
	if c.owned {
		h, err := c.find(p, name)
		if err != nil {
			return zero, err
		}
		return c.wrap(object{env: c.env, h: h}), nil
	}
	refs, err := c.env.Database.GetRefArray(p, c.list)
	if err != nil {
		return zero, err
	}
	if i >= len(refs) {
		return zero, fmt.Errorf("%q: %w", name, status.ErrNotFound)
	}
	return c.wrap(object{env: c.env, h: refs[i]}), nil
}

func (c *children[T]) find(p driver.Handle, name string) (driver.Handle, error) {
	if err := driver.ASCII(name); err != nil {
		return driver.NoHandle, err
	}
	h, code := c.env.Native.DbFindObject(p, uint32(c.class), name)
	if err := c.env.Check(code, fmt.Sprintf("nxdbFindObject(%q)", name)); err != nil {
		return driver.NoHandle, err
	}
	return h, nil
}

func (c *children[T]) Create(name string) error {
	p, err := c.parent()
	if err != nil {
		return err
	}
	if err := driver.ASCII(name); err != nil {
		return err
	}
	_, code := c.env.Native.DbCreateObject(p, uint32(c.class), name)
	return c.env.Check(code, fmt.Sprintf("nxdbCreateObject(%q)", name))
}

func (c *children[T]) Delete(name string) error {
	p, err := c.parent()
	if err != nil {
		return err
	}
	h, err := c.find(p, name)
	if err != nil {
		return err
	}
	return c.env.Check(c.env.Native.DbDeleteObject(h), fmt.Sprintf("nxdbDeleteObject(%q)", name))
}

// owned returns a mutable collection of objects created under parent.
func owned[T any](o object, list props.RefArray, nameProp props.String, class props.Class, wrap func(object) T) *collection.Collection[T] {
	src := &children[T]{
		env:      o.env,
		parent:   func() (driver.Handle, error) { return o.h, nil },
		list:     list,
		nameProp: nameProp,
		class:    class,
		owned:    true,
		wrap:     wrap,
	}
	return collection.NewMutable[T](src, src)
}

// referenced returns a read-only collection over a list of references.
func referenced[T any](o object, list props.RefArray, nameProp props.String, wrap func(object) T) *collection.Collection[T] {
	return collection.New[T](&children[T]{
		env:      o.env,
		parent:   func() (driver.Handle, error) { return o.h, nil },
		list:     list,
		nameProp: nameProp,
		wrap:     wrap,
	})
}

func refOrNil[T any](o object, id props.Ref, wrap func(object) T) (T, bool, error) {
	var zero T
	h, err := o.codec().GetRef(o.h, id)
	if err != nil || h == driver.NoHandle {
		return zero, false, err
	}
	return wrap(object{env: o.env, h: h}), true, nil
}

func handles[T Object](items []T) []driver.Handle {
	out := make([]driver.Handle, len(items))
	for i, it := range items {
		out[i] = it.Handle()
	}
	return out
}
