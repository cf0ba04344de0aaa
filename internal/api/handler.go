package api

import (
	"context"

	"github.com/SherClockHolmes/webpush-go"

	"workspace-finder-backend/internal/dataset"
	"workspace-finder-backend/internal/engine"
	"workspace-finder-backend/internal/store"
)

// QueryParser turns a natural-language request into structured criteria.
// Implemented by nlp.Client; faked in tests.
type QueryParser interface {
	ParseQuery(ctx context.Context, query string) (engine.StructuredCriteria, error)
}

// SnapshotProvider hands out the current read-only dataset snapshot.
// Implemented by watch.Watcher.
type SnapshotProvider interface {
	Snapshot() *dataset.Bundle
}

// Handler holds shared dependencies for API handlers.
type Handler struct {
	store     store.Store
	webpush   *webpush.Options
	snapshots SnapshotProvider
	parser    QueryParser
}

// NewHandler creates a new API handler. A nil parser disables the
// natural-language query endpoint (structured queries keep working).
func NewHandler(s store.Store, webpushOptions *webpush.Options, snapshots SnapshotProvider, parser QueryParser) *Handler {
	return &Handler{
		store:     s,
		webpush:   webpushOptions,
		snapshots: snapshots,
		parser:    parser,
	}
}
