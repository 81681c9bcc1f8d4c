package queue

import (
	"context"
	"hash/fnv"
	"strconv"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/workshoppro/joborder-system/internal/api/metrics"
	"github.com/workshoppro/joborder-system/internal/core/domain"
	"github.com/workshoppro/joborder-system/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
	insertTimeout  = 5 * time.Second
)

// AuditDispatcher routes audit entries to a fixed set of workers using
// consistent hashing on the actor, guaranteeing per-actor causal ordering.
// Enqueue never blocks the request path: when a worker buffer is full the
// entry is dropped, logged and counted.
type AuditDispatcher struct {
	workers []chan *domain.AuditEntry
	store   ports.AuditStore
	log     zerolog.Logger
	wg      sync.WaitGroup
}

// NewAuditDispatcher creates a dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewAuditDispatcher(numWorkers int, store ports.AuditStore, log zerolog.Logger) *AuditDispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &AuditDispatcher{
		workers: make([]chan *domain.AuditEntry, numWorkers),
		store:   store,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan *domain.AuditEntry, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers drain their buffers and stop
// after Close; ctx bounds the individual store writes.
func (d *AuditDispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		d.wg.Add(1)
		go d.runWorker(ctx, i, ch)
	}
}

// Close stops accepting entries and waits for the workers to drain what is
// already buffered.
func (d *AuditDispatcher) Close() {
	for _, ch := range d.workers {
		close(ch)
	}
	d.wg.Wait()
}

// Enqueue hands an entry to the worker responsible for its actor. Dropping
// on overflow is deliberate: audit writes must never delay the caller.
func (d *AuditDispatcher) Enqueue(entry *domain.AuditEntry) {
	idx := d.shardIndex(entry)
	select {
	case d.workers[idx] <- entry:
		metrics.AuditQueueDepth.WithLabelValues(strconv.Itoa(idx)).Set(float64(len(d.workers[idx])))
	default:
		metrics.AuditEntriesDroppedTotal.Inc()
		d.log.Error().
			Str("action", entry.Action).
			Int("worker_id", idx).
			Msg("audit queue full, entry dropped")
	}
}

// shardIndex maps an entry deterministically to a worker so entries from the
// same actor stay ordered. Actorless entries share shard 0.
func (d *AuditDispatcher) shardIndex(entry *domain.AuditEntry) int {
	if entry.ActorID == nil {
		return 0
	}
	h := fnv.New32a()
	_, _ = h.Write([]byte(strconv.FormatInt(*entry.ActorID, 10)))
	return int(h.Sum32()) % len(d.workers)
}

func (d *AuditDispatcher) runWorker(ctx context.Context, id int, ch <-chan *domain.AuditEntry) {
	defer d.wg.Done()
	for entry := range ch {
		d.persist(ctx, id, entry)
		metrics.AuditQueueDepth.WithLabelValues(strconv.Itoa(id)).Set(float64(len(ch)))
	}
}

// persist writes one entry. Failures are logged and counted here and go no
// further: this is the far side of the recorder's absorption boundary.
func (d *AuditDispatcher) persist(ctx context.Context, workerID int, entry *domain.AuditEntry) {
	writeCtx, cancel := context.WithTimeout(ctx, insertTimeout)
	defer cancel()

	if err := d.store.Insert(writeCtx, entry); err != nil {
		metrics.AuditWriteFailuresTotal.WithLabelValues(entry.Action).Inc()
		d.log.Error().Err(err).
			Str("entry_id", entry.ID).
			Str("action", entry.Action).
			Int("worker_id", workerID).
			Msg("audit write failed")
		return
	}
	metrics.AuditEntriesWrittenTotal.WithLabelValues(entry.Action).Inc()
}
