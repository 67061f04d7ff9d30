// Package discovery implements the event discovery engine: it resolves
// events against their category and organisation tables, applies
// compiled search predicates, and derives each event's lifecycle state
// and fundraising progress. The engine is stateless between calls and
// reads through an injected store handle.
package discovery

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/careconnect/charityevents-api/models"
	"github.com/careconnect/charityevents-api/store"
)

type Service struct {
	store store.Store
	log   *slog.Logger
	now   func() time.Time
}

func New(st store.Store, log *slog.Logger) *Service {
	return &Service{store: st, log: log, now: time.Now}
}

// WithClock overrides the evaluation-time clock. Test hook.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// Search returns the display records matching every present filter,
// ordered by event date ascending with ties broken by id ascending.
func (s *Service) Search(ctx context.Context, f Filters) ([]models.DisplayRecord, error) {
	events, err := s.store.ListEvents(ctx)
	if err != nil {
		return nil, fmt.Errorf("search: %w", err)
	}
	lookups, err := s.lookups(ctx)
	if err != nil {
		return nil, fmt.Errorf("search: %w", err)
	}

	now := s.now()
	pred := f.Compile()
	results := make([]models.DisplayRecord, 0, len(events))
	for _, ev := range events {
		rec := Enrich(ev, lookups, now)
		if pred(rec) {
			results = append(results, rec)
		}
	}

	sort.Slice(results, func(i, j int) bool {
		if !results[i].EventDate.Equal(results[j].EventDate.Time) {
			return results[i].EventDate.Before(results[j].EventDate.Time)
		}
		return results[i].ID < results[j].ID
	})
	s.log.Debug("search completed",
		slog.Int("candidates", len(events)),
		slog.Int("matched", len(results)))
	return results, nil
}

// ListAll is Search with no constraints.
func (s *Service) ListAll(ctx context.Context) ([]models.DisplayRecord, error) {
	return s.Search(ctx, Filters{})
}

// GetByID returns one enriched event with organisation detail, or
// store.ErrNotFound. Pause state does not gate visibility here; the
// detail page shows paused events the same as the admin views do.
func (s *Service) GetByID(ctx context.Context, id int) (models.DisplayRecord, error) {
	ev, err := s.store.GetEvent(ctx, id)
	if err != nil {
		return models.DisplayRecord{}, err
	}
	lookups, err := s.lookups(ctx)
	if err != nil {
		return models.DisplayRecord{}, fmt.Errorf("get event %d: %w", id, err)
	}
	return EnrichDetail(ev, lookups, s.now()), nil
}

// Categories returns the category table, ordered by name.
func (s *Service) Categories(ctx context.Context) ([]models.Category, error) {
	cats, err := s.store.ListCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	sort.Slice(cats, func(i, j int) bool { return cats[i].Name < cats[j].Name })
	if cats == nil {
		cats = []models.Category{}
	}
	return cats, nil
}

func (s *Service) lookups(ctx context.Context) (Lookups, error) {
	cats, err := s.store.ListCategories(ctx)
	if err != nil {
		return Lookups{}, fmt.Errorf("list categories: %w", err)
	}
	orgs, err := s.store.ListOrganisations(ctx)
	if err != nil {
		return Lookups{}, fmt.Errorf("list organisations: %w", err)
	}
	return NewLookups(cats, orgs), nil
}
