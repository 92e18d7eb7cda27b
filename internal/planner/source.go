package planner

import (
	"context"
	"log/slog"

	"byteright/internal/errs"
)

// Source is the strategy interface behind plan generation. The remote
// provider and the local generator both implement it; a Fallback composes
// them so the external call's failure handling stays isolated.
type Source interface {
	Name() string
	GeneratePlan(ctx context.Context, req Request) ([]Item, error)
}

// Fallback tries each source in order and returns the first non-empty
// result. Unavailable sources fall through silently (logged, never surfaced);
// validation errors and the final source's failure propagate.
type Fallback struct {
	sources []Source
	log     *slog.Logger

	// lastUsed records which source produced the most recent plan.
	lastUsed string
}

// NewFallback composes sources in priority order.
func NewFallback(log *slog.Logger, sources ...Source) *Fallback {
	if log == nil {
		log = slog.Default()
	}
	return &Fallback{sources: sources, log: log}
}

func (f *Fallback) Name() string { return "fallback" }

// LastUsed returns the name of the source that served the previous
// GeneratePlan call, or "" if none succeeded yet.
func (f *Fallback) LastUsed() string { return f.lastUsed }

// GeneratePlan walks the chain. There is no partial mixing: a source either
// supplies the whole plan or the next one is tried from scratch.
func (f *Fallback) GeneratePlan(ctx context.Context, req Request) ([]Item, error) {
	var lastErr error

	for i, src := range f.sources {
		items, err := src.GeneratePlan(ctx, req)
		if err == nil && len(items) > 0 {
			f.lastUsed = src.Name()
			return items, nil
		}

		if err != nil {
			// Bad input will not get better on retry with another source.
			if errs.IsValidation(err) {
				return nil, err
			}
			lastErr = err
			if i < len(f.sources)-1 {
				f.log.Warn("plan source unavailable, falling back",
					"source", src.Name(), "error", err)
			}
			continue
		}

		// No error but nothing generated: treat like unavailability.
		lastErr = errs.Unavailablef("source %s returned an empty plan", src.Name())
	}

	if lastErr == nil {
		lastErr = errs.ErrExternalUnavailable
	}
	return nil, lastErr
}
