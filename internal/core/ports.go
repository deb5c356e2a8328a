package core

import (
	"context"
)

// LLMClient defines the interface for interacting with LLM services.
// The client is a plain text-completion boundary: prompt in, raw text out.
// Response recovery lives in NormalizeResponse, not in the providers.
type LLMClient interface {
	// Complete sends a prompt to the model and returns the raw response text
	Complete(ctx context.Context, prompt string) (string, error)
}

// CacheRepository defines the interface for memoizing analysis verdicts
type CacheRepository interface {
	// Get retrieves a cached entry for a content digest
	Get(ctx context.Context, digest string) (*CacheEntry, error)

	// Set stores a cache entry
	Set(ctx context.Context, entry *CacheEntry) error

	// Delete removes a cache entry
	Delete(ctx context.Context, digest string) error

	// Cleanup removes expired entries
	Cleanup(ctx context.Context) error
}

// EmailSource supplies the emails to be analyzed, in input order
type EmailSource interface {
	// Emails loads the full dataset
	Emails(ctx context.Context) ([]*Email, error)
}

// RowObserver is notified after each email completes, successfully or via
// the parse fallback. Observers drive progressive display; they may be
// called from concurrent intake sessions and must not block indefinitely.
type RowObserver interface {
	OnRowComplete(row *ReportRow)
}

// ReportExporter writes a finished report to some artifact
type ReportExporter interface {
	Export(ctx context.Context, report *Report) error
}
