// Package metrics records plan-generation runs for later inspection.
package metrics

import (
	"context"
	"database/sql"
	"time"

	metricsdb "byteright/internal/metrics/metrics_db"
)

// GenerationRun records metadata for a single plan generation.
type GenerationRun struct {
	UserID         int64
	Source         string // which plan source served the run
	LatencyMS      int64
	CandidateCount int // recipes considered
	ItemCount      int // plan items produced
	Timestamp      time.Time
}

// Store handles persistence of metrics to SQLite.
type Store struct {
	queries *metricsdb.Queries
}

// NewStore initializes the Store with an existing database connection.
func NewStore(db *sql.DB) *Store {
	return &Store{queries: metricsdb.New(db)}
}

// Record saves a generation run to the database.
func (s *Store) Record(ctx context.Context, run GenerationRun) error {
	ts := run.Timestamp
	if ts.IsZero() {
		ts = time.Now().UTC()
	}

	return s.queries.InsertGenerationRun(ctx, metricsdb.InsertGenerationRunParams{
		UserID:         run.UserID,
		Source:         run.Source,
		LatencyMs:      run.LatencyMS,
		CandidateCount: int64(run.CandidateCount),
		ItemCount:      int64(run.ItemCount),
		CreatedAt:      ts,
	})
}

// DailySummary aggregates one day's runs for one source.
type DailySummary struct {
	Date         string
	Source       string
	Runs         int
	AvgLatencyMS float64
}

// GetDailySummaries retrieves per-source run totals for the last N days.
func (s *Store) GetDailySummaries(ctx context.Context, days int) ([]DailySummary, error) {
	since := time.Now().AddDate(0, 0, -days).Format("2006-01-02 15:04:05")
	rows, err := s.queries.GetDailyRuns(ctx, since)
	if err != nil {
		return nil, err
	}

	var results []DailySummary
	for _, r := range rows {
		summary := DailySummary{
			Source: r.Source,
			Runs:   int(r.Count),
		}
		if day, ok := r.Day.(string); ok {
			summary.Date = day
		} else {
			summary.Date = "Unknown"
		}
		if r.AvgLatency.Valid {
			summary.AvgLatencyMS = r.AvgLatency.Float64
		}
		results = append(results, summary)
	}
	return results, nil
}

// Cleanup removes runs older than the specified number of days.
func (s *Store) Cleanup(ctx context.Context, olderThanDays int) error {
	threshold := time.Now().AddDate(0, 0, -olderThanDays)
	return s.queries.CleanupGenerationRuns(ctx, threshold)
}
