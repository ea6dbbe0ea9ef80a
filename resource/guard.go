package resource

import (
	"fmt"
	"runtime"
	"sync"

	"go.uber.org/zap"

	"github.com/LoveWonYoung/nixnet/driver"
	"github.com/LoveWonYoung/nixnet/status"
)

// State of a guard. A guard is only observable once Open has returned, so
// callers see Open or Closed.
type State int

const (
	StateUnopened State = iota
	StateOpen
	StateClosed
)

func (s State) String() string {
	switch s {
	case StateUnopened:
		return "unopened"
	case StateOpen:
		return "open"
	case StateClosed:
		return "closed"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// OpenFunc creates the native object and returns its handle.
type OpenFunc func() (driver.Handle, error)

// CloseFunc releases a native handle.
type CloseFunc func(driver.Handle) error

// Guard owns one native handle from open to close. After Close, every
// accessor fails locally with status.ErrResourceClosed and the driver is
// never handed the stale handle.
type Guard struct {
	mu      sync.Mutex
	kind    string
	name    string
	state   State
	handle  driver.Handle
	closeFn CloseFunc
	entry   *entry
	tracker *Tracker
	cleanup runtime.Cleanup
}

// Open runs open and wraps the handle in a guard registered with t. If open
// fails no guard exists and close is never called. A nil tracker disables
// leak tracking.
func Open(t *Tracker, kind, name string, open OpenFunc, closeFn CloseFunc) (*Guard, error) {
	g := &Guard{kind: kind, name: name, closeFn: closeFn, tracker: t}
	h, err := open()
	if err != nil {
		return nil, err
	}
	g.handle = h
	g.state = StateOpen
	if t != nil {
		g.entry = t.add(kind, name, h)
		g.cleanup = runtime.AddCleanup(g, collected, leakReport{tracker: t, entry: g.entry})
	}
	status.Logger().Debug("resource opened",
		zap.String("kind", kind), zap.String("name", name), zap.Uint32("handle", uint32(h)))
	return g, nil
}

func (g *Guard) Kind() string { return g.kind }
func (g *Guard) Name() string { return g.name }

func (g *Guard) State() State {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state
}

// Handle returns the live handle.
func (g *Guard) Handle() (driver.Handle, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.state != StateOpen {
		return driver.NoHandle, g.closedErr()
	}
	return g.handle, nil
}

// Close releases the handle. Closing a closed guard reports a
// DiagnosticDuplicateClose and returns nil. If the native close fails the
// guard stays open so the caller can retry.
func (g *Guard) Close() error {
	return g.closeUsing(g.closeFn)
}

func (g *Guard) closeUsing(fn CloseFunc) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.state != StateOpen {
		status.Report(status.Diagnostic{
			Kind:     status.DiagnosticDuplicateClose,
			Op:       "close",
			Resource: g.describe(),
			Message:  fmt.Sprintf("%s closed more than once", g.kind),
		})
		return nil
	}
	if fn != nil {
		if err := fn(g.handle); err != nil {
			return err
		}
	}
	status.Logger().Debug("resource closed",
		zap.String("kind", g.kind), zap.String("name", g.name), zap.Uint32("handle", uint32(g.handle)))
	g.state = StateClosed
	g.handle = driver.NoHandle
	if g.tracker != nil {
		g.cleanup.Stop()
		g.tracker.remove(g.entry)
	}
	return nil
}

func (g *Guard) describe() string {
	if g.name == "" {
		return g.kind
	}
	return fmt.Sprintf("%s %q", g.kind, g.name)
}

func (g *Guard) closedErr() error {
	return fmt.Errorf("%s: %w", g.describe(), status.ErrResourceClosed)
}

// Closer is anything with a plain Close.
type Closer interface {
	Close() error
}

// With runs fn and closes r afterwards, joining a close error with fn's.
func With[T Closer](r T, fn func(T) error) (err error) {
	defer func() {
		if cerr := r.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	return fn(r)
}
