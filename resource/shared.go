package resource

import (
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/LoveWonYoung/nixnet/driver"
	"github.com/LoveWonYoung/nixnet/status"
)

// SharedCloseFunc releases a shared handle. all is true when the release was
// forced rather than reached by counting down.
type SharedCloseFunc func(h driver.Handle, all bool) error

// Table shares one guard per key among every acquirer, counting opens.
type Table struct {
	mu      sync.Mutex
	tracker *Tracker
	entries map[string]*shared
}

type shared struct {
	key     string
	guard   *Guard
	closeFn SharedCloseFunc
	refs    int
}

// Ref is one acquisition of a shared entry. Each Ref closes once on its
// own; a closed Ref fails with status.ErrResourceClosed even while other
// references keep the entry alive.
type Ref struct {
	table  *Table
	entry  *shared
	closed bool
}

func NewTable(t *Tracker) *Table {
	return &Table{tracker: t, entries: make(map[string]*shared)}
}

// Acquire returns a reference to the entry for key, running open only when no
// live entry exists yet.
func (t *Table) Acquire(kind, key string, open OpenFunc, closeFn SharedCloseFunc) (*Ref, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if e, ok := t.entries[key]; ok {
		e.refs++
		return &Ref{table: t, entry: e}, nil
	}
	g, err := Open(t.tracker, kind, key, open, nil)
	if err != nil {
		return nil, err
	}
	e := &shared{key: key, guard: g, closeFn: closeFn, refs: 1}
	t.entries[key] = e
	return &Ref{table: t, entry: e}, nil
}

// Count returns the number of outstanding references for key.
func (t *Table) Count(key string) int {
	t.mu.Lock()
	defer t.mu.Unlock()
	if e, ok := t.entries[key]; ok {
		return e.refs
	}
	return 0
}

func (r *Ref) Key() string { return r.entry.key }

// closedErr must be called with r.table.mu held.
func (r *Ref) closedErr() error {
	if r.closed {
		return r.entry.guard.closedErr()
	}
	return nil
}

// Handle returns the shared handle while this reference is open and the
// entry has not been released.
func (r *Ref) Handle() (driver.Handle, error) {
	r.table.mu.Lock()
	defer r.table.mu.Unlock()
	if err := r.closedErr(); err != nil {
		return driver.NoHandle, err
	}
	return r.entry.guard.Handle()
}

// Refs returns the current reference count of the shared entry.
func (r *Ref) Refs() (int, error) {
	r.table.mu.Lock()
	defer r.table.mu.Unlock()
	if err := r.closedErr(); err != nil {
		return 0, err
	}
	if _, err := r.entry.guard.Handle(); err != nil {
		return 0, err
	}
	return r.entry.refs, nil
}

// Close drops this reference. Only the close that reaches zero, or a forced
// close, releases the native handle; afterwards every Ref to the entry fails
// with status.ErrResourceClosed. Closing the same Ref again reports a
// DiagnosticDuplicateClose and changes nothing.
func (r *Ref) Close(force bool) error {
	t := r.table
	t.mu.Lock()
	defer t.mu.Unlock()
	e := r.entry
	if r.closed {
		status.Report(status.Diagnostic{
			Kind:     status.DiagnosticDuplicateClose,
			Op:       "close",
			Resource: e.guard.describe(),
			Message:  fmt.Sprintf("%s reference closed more than once", e.guard.kind),
		})
		return nil
	}
	if e.refs == 0 {
		// released through another reference
		r.closed = true
		return nil
	}
	if !force && e.refs > 1 {
		e.refs--
		r.closed = true
		return nil
	}
	err := e.guard.closeUsing(func(h driver.Handle) error {
		if e.closeFn == nil {
			return nil
		}
		return e.closeFn(h, force)
	})
	if err != nil {
		return fmt.Errorf("release %s: %w", e.key, err)
	}
	e.refs = 0
	r.closed = true
	if t.entries[e.key] == e {
		delete(t.entries, e.key)
	}
	status.Logger().Debug("shared resource released", zap.String("key", e.key), zap.Bool("forced", force))
	return nil
}
