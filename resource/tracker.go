package resource

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/LoveWonYoung/nixnet/driver"
	"github.com/LoveWonYoung/nixnet/status"
)

// leakMessage is the text of every leak diagnostic.
const leakMessage = "resource was not closed; device resources may still be reserved"

// Leak describes a guard that is still open.
type Leak struct {
	Kind   string
	Name   string
	Handle driver.Handle
	Opened time.Time
}

func (l Leak) String() string {
	return fmt.Sprintf("%s %q (handle %d, opened %s)", l.Kind, l.Name, l.Handle, l.Opened.Format(time.RFC3339))
}

type entry struct {
	id   uint64
	leak Leak
}

// Tracker keeps every open guard so that forgotten closes can be reported.
// Go has no deterministic destructors: call ReportLeaks at teardown. A guard
// collected while open is also reported, but only when the collector gets
// to it.
type Tracker struct {
	mu   sync.Mutex
	next uint64
	open map[uint64]*entry
	now  func() time.Time
}

func NewTracker() *Tracker {
	return &Tracker{open: make(map[uint64]*entry), now: time.Now}
}

func (t *Tracker) add(kind, name string, h driver.Handle) *entry {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.next++
	e := &entry{id: t.next, leak: Leak{Kind: kind, Name: name, Handle: h, Opened: t.now()}}
	t.open[e.id] = e
	return e
}

// remove reports whether e was still tracked.
func (t *Tracker) remove(e *entry) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.open[e.id]; !ok {
		return false
	}
	delete(t.open, e.id)
	return true
}

// Outstanding lists open guards in the order they were opened.
func (t *Tracker) Outstanding() []Leak {
	t.mu.Lock()
	defer t.mu.Unlock()
	ids := make([]uint64, 0, len(t.open))
	for id := range t.open {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	out := make([]Leak, len(ids))
	for i, id := range ids {
		out[i] = t.open[id].leak
	}
	return out
}

// ReportLeaks emits one DiagnosticLeak per open guard and returns how many
// there were. The guards stay open.
func (t *Tracker) ReportLeaks() int {
	leaks := t.Outstanding()
	for _, l := range leaks {
		reportLeak(l)
	}
	return len(leaks)
}

func reportLeak(l Leak) {
	status.Report(status.Diagnostic{
		Kind:     status.DiagnosticLeak,
		Op:       "teardown",
		Resource: l.String(),
		Message:  leakMessage,
	})
}

type leakReport struct {
	tracker *Tracker
	entry   *entry
}

// collected runs when an open guard becomes unreachable.
func collected(r leakReport) {
	if r.tracker.remove(r.entry) {
		reportLeak(r.entry.leak)
	}
}
