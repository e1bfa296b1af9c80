// Package activity records admin mutations to the append-only activity log
// without ever failing or delaying the mutation that triggered them.
package activity

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/regional-site-backend/internal/domain"
	"github.com/heartmarshall/regional-site-backend/pkg/ctxutil"
)

// ErrClosed is returned by Close when called twice.
var ErrClosed = errors.New("activity recorder closed")

type entryStore interface {
	Create(ctx context.Context, e domain.ActivityEntry) error
}

// Config tunes the recorder queue.
type Config struct {
	QueueSize    int
	WriteTimeout time.Duration
}

// Recorder queues entries on a buffered channel drained by one background writer.
type Recorder struct {
	store   entryStore
	log     *slog.Logger
	timeout time.Duration
	now     func() time.Time

	mu     sync.RWMutex
	closed bool
	queue  chan domain.ActivityEntry
	done   chan struct{}
}

// NewRecorder creates a Recorder and starts its writer goroutine.
func NewRecorder(logger *slog.Logger, store entryStore, cfg Config) *Recorder {
	if cfg.QueueSize <= 0 {
		cfg.QueueSize = 256
	}
	if cfg.WriteTimeout <= 0 {
		cfg.WriteTimeout = 5 * time.Second
	}

	r := &Recorder{
		store:   store,
		log:     logger.With("component", "activity"),
		timeout: cfg.WriteTimeout,
		now:     time.Now,
		queue:   make(chan domain.ActivityEntry, cfg.QueueSize),
		done:    make(chan struct{}),
	}
	go r.run()
	return r
}

// Record stamps e with the caller identity and client metadata from ctx and
// enqueues it. It never blocks and never returns an error; a full queue drops
// the entry with a warning.
func (r *Recorder) Record(ctx context.Context, e domain.ActivityEntry) {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = r.now().UTC()
	}
	if e.ActorID == nil {
		if id, ok := ctxutil.UserIDFromCtx(ctx); ok {
			e.ActorID = &id
		}
	}
	client := ctxutil.ClientInfoFromCtx(ctx)
	if e.IPAddress == "" {
		e.IPAddress = client.IP
	}
	if e.UserAgent == "" {
		e.UserAgent = client.UserAgent
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.closed {
		r.log.WarnContext(ctx, "activity dropped: recorder closed", slog.String("action", string(e.ActionType)))
		return
	}

	select {
	case r.queue <- e:
	default:
		r.log.WarnContext(ctx, "activity dropped: queue full",
			slog.String("action", string(e.ActionType)),
			slog.String("entity_type", string(e.EntityType)),
			slog.String("entity_id", e.EntityID),
		)
	}
}

func (r *Recorder) run() {
	defer close(r.done)
	for e := range r.queue {
		r.write(e)
	}
}

func (r *Recorder) write(e domain.ActivityEntry) {
	ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
	defer cancel()

	if err := r.store.Create(ctx, e); err != nil {
		r.log.ErrorContext(ctx, "activity write failed",
			slog.String("action", string(e.ActionType)),
			slog.String("entity_id", e.EntityID),
			slog.String("error", err.Error()),
		)
	}
}

// Close stops accepting entries and waits until the queue is drained or ctx ends.
func (r *Recorder) Close(ctx context.Context) error {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return ErrClosed
	}
	r.closed = true
	close(r.queue)
	r.mu.Unlock()

	select {
	case <-r.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
