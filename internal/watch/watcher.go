package watch

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/SherClockHolmes/webpush-go"

	"workspace-finder-backend/config"
	"workspace-finder-backend/internal/dataset"
	"workspace-finder-backend/internal/notification"
	"workspace-finder-backend/internal/store"
)

// Loader reads a dataset directory into a snapshot bundle.
type Loader func(dir string) (*dataset.Bundle, error)

// Watcher owns the live dataset snapshot. It loads the dataset directory at
// startup, optionally re-reads it on an interval, persists each snapshot
// through the store, and notifies watchers of desks whose status flipped to
// available between snapshots.
type Watcher struct {
	cfg        *config.Config
	store      store.Store
	load       Loader
	workerPool *notification.WorkerPool

	mu      sync.RWMutex
	current *dataset.Bundle
}

// NewWatcher creates and initializes a new dataset watcher.
func NewWatcher(cfg *config.Config, st store.Store) *Watcher {
	webpushOptions := webpush.Options{
		VAPIDPublicKey:  cfg.Push.PublicKey,
		VAPIDPrivateKey: cfg.Push.PrivateKey,
		Subscriber:      cfg.Push.Subject,
		TTL:             cfg.Push.TTL,
	}

	return &Watcher{
		cfg:        cfg,
		store:      st,
		load:       dataset.Load,
		workerPool: notification.NewWorkerPool(cfg.WorkerPool.Size, st.DB(), &webpushOptions),
	}
}

// Snapshot returns the current dataset bundle, or nil when no load has
// succeeded yet. The returned bundle is read-only by contract; queries must
// never mutate it.
func (w *Watcher) Snapshot() *dataset.Bundle {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.current
}

// Run performs the initial dataset load and, when watching is enabled,
// keeps reloading on the configured interval until the context is
// cancelled.
func (w *Watcher) Run(ctx context.Context) {
	w.workerPool.Start(ctx)

	if err := w.ReloadOnce(ctx); err != nil {
		log.Printf("Initial dataset load failed: %v", err)
	}

	if !w.cfg.Data.WatchEnabled {
		log.Println("Dataset watch is disabled; datasets were loaded once.")
		return
	}

	timer := time.NewTimer(w.cfg.Data.ReloadInterval)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("Dataset watcher shutting down.")
			return
		case <-timer.C:
			if err := w.ReloadOnce(ctx); err != nil {
				log.Printf("Dataset reload failed: %v", err)
			}
			timer.Reset(w.cfg.Data.ReloadInterval)
		}
	}
}

// ReloadOnce reads the dataset directory, swaps the snapshot, persists it,
// and dispatches notifications for desks that became available. A failed
// load leaves the previous snapshot in place.
func (w *Watcher) ReloadOnce(ctx context.Context) error {
	bundle, err := w.load(w.cfg.Data.Dir)
	if err != nil {
		return err
	}

	previous := w.Snapshot()

	if err := w.store.ReplaceDatasets(ctx, bundle); err != nil {
		log.Printf("Error persisting dataset snapshot: %v", err)
	}

	w.mu.Lock()
	w.current = bundle
	w.mu.Unlock()

	freed := newlyAvailable(previous, bundle)
	if len(freed) > 0 {
		log.Printf("Dispatching notifications for %d desks", len(freed))
		for _, deskID := range freed {
			w.workerPool.Dispatch(deskID)
		}
	}

	log.Printf("Dataset snapshot loaded: %d spaces, %d desks, %d policies",
		len(bundle.Spaces), len(bundle.Desks), len(bundle.Policies))
	return nil
}

// newlyAvailable lists desks that were present and not available in the
// previous snapshot but report available in the new one, in dataset order.
func newlyAvailable(previous, next *dataset.Bundle) []string {
	if previous == nil {
		return nil
	}

	before := make(map[string]string, len(previous.Desks))
	for _, d := range previous.Desks {
		before[d.ID] = d.Status
	}

	var freed []string
	for _, d := range next.Desks {
		oldStatus, seen := before[d.ID]
		if seen && oldStatus != dataset.StatusAvailable && d.Status == dataset.StatusAvailable {
			freed = append(freed, d.ID)
		}
	}
	return freed
}
