package feed

import "github.com/shopfeed/backend/internal/domain/shared"

// Feed export errors
var (
	// ErrMissingSink rejects an export with no output sink
	ErrMissingSink = shared.NewDomainError("INVALID_INPUT", "Export sink is required")

	// ErrMissingStore rejects an export with no store identifier
	ErrMissingStore = shared.NewDomainError("INVALID_INPUT", "Store identifier is required")

	// ErrDefaultTaxonomyMissing aborts the whole export: a product has
	// no taxonomy override and no default feed category is configured
	ErrDefaultTaxonomyMissing = shared.NewDomainError("FEED_MISCONFIGURATION",
		"Product has no taxonomy override and no default feed category is configured")

	// ErrWriterClosed rejects writes after Close
	ErrWriterClosed = shared.NewDomainError("INVALID_STATE", "Feed writer is already closed")
)
