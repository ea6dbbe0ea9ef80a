// Package database opens NI-XNET databases and exposes their clusters,
// frames, signals and the other objects they contain.
//
// Opening the same alias or file twice shares one native handle. Close
// drops one reference; the handle is released by the close that drops the
// last one, or by CloseAll.
package database

import (
	"fmt"

	nixnet "github.com/LoveWonYoung/nixnet"
	"github.com/LoveWonYoung/nixnet/collection"
	"github.com/LoveWonYoung/nixnet/driver"
	"github.com/LoveWonYoung/nixnet/props"
	"github.com/LoveWonYoung/nixnet/resource"
)

// Database is one reference to an open database.
type Database struct {
	env      *nixnet.Env
	ref      *resource.Ref
	clusters *collection.Collection[*Cluster]
}

// Open opens name, an alias or a file path. A name already open in env is
// shared and its reference count incremented.
func Open(env *nixnet.Env, name string) (*Database, error) {
	if err := driver.ASCII(name); err != nil {
		return nil, err
	}
	ref, err := env.Databases.Acquire("database", name,
		func() (driver.Handle, error) {
			h, code := env.Native.DbOpenDatabase(name)
			if err := env.Check(code, fmt.Sprintf("nxdbOpenDatabase(%q)", name)); err != nil {
				return driver.NoHandle, err
			}
			return h, nil
		},
		func(h driver.Handle, all bool) error {
			return env.Check(env.Native.DbCloseDatabase(h, all), "nxdbCloseDatabase")
		})
	if err != nil {
		return nil, err
	}
	d := &Database{env: env, ref: ref}
	src := &children[*Cluster]{
		env:      env,
		parent:   ref.Handle,
		list:     props.DatabaseClusterRefs,
		nameProp: props.ClusterName,
		class:    props.ClassCluster,
		owned:    true,
		wrap:     newCluster,
	}
	d.clusters = collection.NewMutable[*Cluster](src, src)
	return d, nil
}

// Name is the alias or path the database was opened with.
func (d *Database) Name() string { return d.ref.Key() }

func (d *Database) Handle() (driver.Handle, error) { return d.ref.Handle() }

// Close drops this reference. Afterwards d fails with
// status.ErrResourceClosed; other references to the same database stay
// usable until the last one is closed.
func (d *Database) Close() error { return d.ref.Close(false) }

// CloseAll releases the database regardless of outstanding references.
func (d *Database) CloseAll() error { return d.ref.Close(true) }

// Refs returns the number of outstanding references to the database.
func (d *Database) Refs() (int, error) { return d.ref.Refs() }

// Save writes the database to path. An empty path saves over the file it
// was opened from.
func (d *Database) Save(path string) error {
	h, err := d.ref.Handle()
	if err != nil {
		return err
	}
	if err := driver.ASCII(path); err != nil {
		return err
	}
	return d.env.Check(d.env.Native.DbSaveDatabase(h, path), fmt.Sprintf("nxdbSaveDatabase(%q)", path))
}

func (d *Database) ShowInvalidFromOpen() (bool, error) {
	h, err := d.ref.Handle()
	if err != nil {
		return false, err
	}
	return d.env.Database.GetBool(h, props.DatabaseShowInvalidFromOpen)
}

func (d *Database) SetShowInvalidFromOpen(v bool) error {
	h, err := d.ref.Handle()
	if err != nil {
		return err
	}
	return d.env.Database.SetBool(h, props.DatabaseShowInvalidFromOpen, v)
}

// Clusters is the mutable collection of clusters in the database.
func (d *Database) Clusters() *collection.Collection[*Cluster] { return d.clusters }
