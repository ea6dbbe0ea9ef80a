package session

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/LoveWonYoung/nixnet/frames"
	"github.com/LoveWonYoung/nixnet/status"
)

const (
	// DefaultPollInterval is how often a Receiver polls the driver.
	DefaultPollInterval = time.Millisecond
	// DefaultBatch is how many frames one poll reads at most.
	DefaultBatch = 64
	// DefaultBuffer is the capacity of the receive channel.
	DefaultBuffer = 1024
)

// ReceiverConfig tunes a Receiver. Zero fields take the defaults.
type ReceiverConfig struct {
	PollInterval time.Duration
	Batch        int
	Buffer       int
}

// Receiver polls an input stream session in the background and delivers the
// frames on a channel. When the channel is full new frames are dropped and
// counted.
type Receiver struct {
	s       *Session
	cfg     ReceiverConfig
	ch      chan frames.Frame
	ctx     context.Context
	cancel  context.CancelFunc
	start   sync.Once
	wg      sync.WaitGroup
	dropped atomic.Uint64

	errMu sync.Mutex
	err   error
}

func NewReceiver(s *Session, cfg ReceiverConfig) *Receiver {
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = DefaultPollInterval
	}
	if cfg.Batch <= 0 {
		cfg.Batch = DefaultBatch
	}
	if cfg.Buffer <= 0 {
		cfg.Buffer = DefaultBuffer
	}
	return &Receiver{s: s, cfg: cfg, ch: make(chan frames.Frame, cfg.Buffer)}
}

// Start begins polling. The channel is closed when ctx is done, Stop is
// called or reading fails; Err then tells which. Only the first call starts
// a loop.
func (r *Receiver) Start(ctx context.Context) {
	r.start.Do(func() {
		r.ctx, r.cancel = context.WithCancel(ctx)
		r.wg.Add(1)
		go r.readLoop()
	})
}

// Stop ends polling and waits for the loop to exit.
func (r *Receiver) Stop() {
	if r.cancel != nil {
		r.cancel()
	}
	r.wg.Wait()
}

func (r *Receiver) Frames() <-chan frames.Frame { return r.ch }

// Dropped is the number of frames discarded because the channel was full.
func (r *Receiver) Dropped() uint64 { return r.dropped.Load() }

// Err returns the read error that ended the loop, if any.
func (r *Receiver) Err() error {
	r.errMu.Lock()
	defer r.errMu.Unlock()
	return r.err
}

func (r *Receiver) readLoop() {
	defer r.wg.Done()
	defer close(r.ch)
	ticker := time.NewTicker(r.cfg.PollInterval)
	defer ticker.Stop()
	for {
		select {
		case <-r.ctx.Done():
			return
		case <-ticker.C:
			fs, err := r.s.ReadFrames(r.cfg.Batch, TimeoutNone)
			if err != nil {
				if status.KindOf(err) == status.KindTimeout {
					continue
				}
				if !errors.Is(err, status.ErrResourceClosed) {
					Logger().Warn("receiver stopped", zap.Error(err))
				}
				r.errMu.Lock()
				r.err = err
				r.errMu.Unlock()
				return
			}
			for _, f := range fs {
				Logger().Debug("frame", zap.Stringer("frame", f))
				select {
				case r.ch <- f:
				default:
					if r.dropped.Add(1) == 1 {
						Logger().Warn("receive channel full, dropping frames", zap.Int("buffer", r.cfg.Buffer))
					}
				}
			}
		}
	}
}
