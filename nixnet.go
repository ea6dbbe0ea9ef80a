// Package nixnet is a typed binding over the NI-XNET driver.
//
// An Env bundles everything the object facades need: the native layer, the
// status classifier, property codecs for both addressing spaces, the leak
// tracker and the table that shares database handles. Sessions, databases
// and systems are opened through the database, session and system packages
// against an Env.
//
//	env, err := nixnet.Load(driver.DefaultLibrary, 0)
//	if err != nil {
//		return err
//	}
//	defer env.ReportLeaks()
package nixnet

import (
	"github.com/LoveWonYoung/nixnet/driver"
	"github.com/LoveWonYoung/nixnet/props"
	"github.com/LoveWonYoung/nixnet/resource"
	"github.com/LoveWonYoung/nixnet/status"
)

// Env is the shared context of every facade.
type Env struct {
	Native     driver.Native
	Classifier *status.Classifier
	Session    *props.Codec
	Database   *props.Codec
	Sub        *props.SubCodec
	Tracker    *resource.Tracker
	Databases  *resource.Table
}

// NewEnv wires an Env around n. bufferSize is the status message buffer; a
// non-positive value selects status.DefaultBufferSize.
func NewEnv(n driver.Native, bufferSize int) *Env {
	c := status.NewClassifier(n, bufferSize)
	tr := resource.NewTracker()
	return &Env{
		Native:     n,
		Classifier: c,
		Session:    props.NewCodec(n, c, props.SessionSpace),
		Database:   props.NewCodec(n, c, props.DatabaseSpace),
		Sub:        props.NewSubCodec(n, c),
		Tracker:    tr,
		Databases:  resource.NewTable(tr),
	}
}

// Load opens the driver library at path and wires an Env around it.
func Load(path string, bufferSize int) (*Env, error) {
	n, err := driver.Open(path)
	if err != nil {
		return nil, err
	}
	return NewEnv(n, bufferSize), nil
}

// Check classifies a raw status for op.
func (e *Env) Check(code status.Code, op string) error {
	return e.Classifier.Check(code, op)
}

// ReportLeaks reports every resource still open and returns the count.
func (e *Env) ReportLeaks() int {
	return e.Tracker.ReportLeaks()
}
