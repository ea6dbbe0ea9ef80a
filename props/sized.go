package props

import (
	"github.com/LoveWonYoung/nixnet/status"
)

// SizedFetch is the two-call read used for every variable length value: ask
// for the byte length, then fetch into a buffer of exactly that length.
// Under-sized buffers are rejected by the driver, so the size query cannot be
// skipped, and sizes are never cached between reads.
type SizedFetch struct {
	Size  func() (uint32, status.Code)
	Fetch func(buf []byte) status.Code
}

// Run executes both calls. A zero length is an empty value and skips the
// fetch; the result is then nil.
func (f SizedFetch) Run(c *status.Classifier, op string) ([]byte, error) {
	n, code := f.Size()
	if err := c.Check(code, op+" size"); err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, nil
	}
	buf := make([]byte, n)
	if err := c.Check(f.Fetch(buf), op); err != nil {
		return nil, err
	}
	return buf, nil
}
