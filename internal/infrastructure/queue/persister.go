package queue

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/way-campus/way/internal/api/metrics"
	"github.com/way-campus/way/internal/core/domain"
	"github.com/way-campus/way/internal/core/ports"
)

const defaultSaveTimeout = 10 * time.Second

var ErrPersisterClosed = errors.New("persister closed")

// Persister mirrors state to storage on a single background worker, so a
// slow store never holds up a request. Only the newest pending state is kept:
// each state is complete, so older pending ones carry nothing extra.
type Persister struct {
	store   ports.StateSaver
	pending chan *domain.State
	log     zerolog.Logger
	timeout time.Duration

	mu     sync.Mutex
	closed bool
	done   chan struct{}
}

// NewPersister creates a Persister writing to store. A non-positive timeout
// falls back to defaultSaveTimeout.
func NewPersister(store ports.StateSaver, timeout time.Duration, log zerolog.Logger) *Persister {
	if timeout <= 0 {
		timeout = defaultSaveTimeout
	}
	return &Persister{
		store:   store,
		pending: make(chan *domain.State, 1),
		log:     log,
		timeout: timeout,
		done:    make(chan struct{}),
	}
}

// Start launches the worker. It exits once Close has drained the queue.
func (p *Persister) Start() {
	go p.run()
}

// Save queues st for writing and returns immediately.
func (p *Persister) Save(_ context.Context, st *domain.State) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return ErrPersisterClosed
	}

	for {
		select {
		case p.pending <- st:
			metrics.PersistQueueDepth.Set(float64(len(p.pending)))
			return nil
		default:
			select {
			case <-p.pending:
				metrics.PersistCoalescedTotal.Inc()
			default:
			}
		}
	}
}

// Close stops accepting states, writes the last pending one and waits for
// the worker to finish or ctx to expire.
func (p *Persister) Close(ctx context.Context) error {
	p.mu.Lock()
	if !p.closed {
		p.closed = true
		close(p.pending)
	}
	p.mu.Unlock()

	select {
	case <-p.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (p *Persister) run() {
	defer close(p.done)
	for st := range p.pending {
		metrics.PersistQueueDepth.Set(float64(len(p.pending)))
		p.write(st)
	}
}

func (p *Persister) write(st *domain.State) {
	ctx, cancel := context.WithTimeout(context.Background(), p.timeout)
	defer cancel()

	start := time.Now()
	if err := p.store.Save(ctx, st); err != nil {
		metrics.StorageErrorsTotal.WithLabelValues("save").Inc()
		p.log.Error().Err(err).Msg("state persistence failed")
		return
	}
	metrics.PersistDuration.Observe(time.Since(start).Seconds())
}
