package service

import (
	"context"
	"time"

	"github.com/PradeepKumarReddy-098/pioneer/internal/metrics"
	"github.com/PradeepKumarReddy-098/pioneer/internal/model"
)

// Fetcher retrieves the full entry collection from the external data
// source. *upstream.Client satisfies it.
type Fetcher interface {
	Fetch(ctx context.Context) ([]model.Entry, error)
}

// EntryService fetches entries and applies the filter contract.
type EntryService struct {
	fetcher Fetcher
	metrics metrics.Recorder
}

// NewEntryService creates a new EntryService.
func NewEntryService(fetcher Fetcher, recorder metrics.Recorder) *EntryService {
	if recorder == nil {
		recorder = metrics.NewNoop()
	}
	return &EntryService{
		fetcher: fetcher,
		metrics: recorder,
	}
}

// Entries fetches the collection and filters it per the query.
// The collection is re-fetched on every call; a fetch failure aborts
// the request before any filtering runs.
func (s *EntryService) Entries(ctx context.Context, q FilterQuery) ([]model.Entry, error) {
	start := time.Now()
	entries, err := s.fetcher.Fetch(ctx)
	s.metrics.ObserveUpstreamFetchDuration(time.Since(start))

	if err != nil {
		s.metrics.IncUpstreamFetch("error")
		return nil, err
	}
	s.metrics.IncUpstreamFetch("success")

	result, err := ApplyFilter(entries, q)
	if err != nil {
		return nil, err
	}

	s.metrics.ObserveEntriesReturned(len(result))
	return result, nil
}
