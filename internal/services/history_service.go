// internal/services/history_service.go
package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/carbonwise/carbonwise-backend/internal/models"
	"github.com/carbonwise/carbonwise-backend/internal/utils"
)

// HistoryStore is the persistent per-user scan log.
type HistoryStore interface {
	// EnsureHistory creates the user's history aggregate if it does not
	// exist yet. Calling it for an existing user is a no-op.
	EnsureHistory(ctx context.Context, userID uuid.UUID) error
	AppendEntry(ctx context.Context, entry *models.HistoryEntry) error
	// RemoveEntry deletes the matching entry and reports whether one matched.
	RemoveEntry(ctx context.Context, userID, scanID uuid.UUID) (bool, error)
	// RecentEntries returns up to limit entries, most recent first.
	RecentEntries(ctx context.Context, userID uuid.UUID, limit int) ([]models.HistoryEntry, error)
	ListEntries(ctx context.Context, userID uuid.UUID, params utils.PaginationParams) ([]models.HistoryEntry, int64, error)
	SetAverage(ctx context.Context, userID uuid.UUID, average float64) error
	// GetHistory returns the aggregate, or (nil, nil) for a user who has
	// never scanned anything.
	GetHistory(ctx context.Context, userID uuid.UUID) (*models.UserHistory, error)
}

// HistoryService maintains the append-only scan log and keeps the rolling
// average ecoscore in step with it.
type HistoryService struct {
	store    HistoryStore
	products *ProductStore
	window   int
}

func NewHistoryService(store HistoryStore, products *ProductStore, window int) *HistoryService {
	return &HistoryService{
		store:    store,
		products: products,
		window:   window,
	}
}

// Append records a scan for the user and synchronously recomputes the
// average. The product must resolve to a complete record at append time;
// otherwise nothing is written and ErrProductNotAddable is returned.
func (s *HistoryService) Append(ctx context.Context, userID uuid.UUID, productID string) (*models.HistoryEntry, error) {
	product, err := s.products.Fetch(ctx, productID)
	if err != nil {
		if errors.Is(err, ErrProductNotFound) {
			return nil, ErrProductNotAddable
		}
		return nil, err
	}
	if !trackable(product) {
		return nil, ErrProductNotAddable
	}

	entry := &models.HistoryEntry{
		ScanID:    uuid.New(),
		UserID:    userID,
		ProductID: productID,
		Timestamp: time.Now().UTC(),
	}

	if err := s.store.EnsureHistory(ctx, userID); err != nil {
		return nil, fmt.Errorf("failed to create history: %w", err)
	}
	if err := s.store.AppendEntry(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to append history entry: %w", err)
	}

	if _, err := s.Recompute(ctx, userID); err != nil {
		return nil, err
	}

	return entry, nil
}

// Remove deletes the entry with the given scan id and recomputes the
// average. ErrScanNotFound is returned, without a recompute, when no entry
// matched.
func (s *HistoryService) Remove(ctx context.Context, userID, scanID uuid.UUID) error {
	removed, err := s.store.RemoveEntry(ctx, userID, scanID)
	if err != nil {
		return fmt.Errorf("failed to remove history entry: %w", err)
	}
	if !removed {
		return ErrScanNotFound
	}

	_, err = s.Recompute(ctx, userID)
	return err
}

// Recompute recalculates the rolling average over the most recent window of
// entries and persists it. Each entry's ecoscore is resolved live through
// the product store; an entry whose product no longer resolves contributes
// zero but stays in the denominator. With no entries nothing is written and
// the stored average is returned unchanged.
func (s *HistoryService) Recompute(ctx context.Context, userID uuid.UUID) (float64, error) {
	entries, err := s.store.RecentEntries(ctx, userID, s.window)
	if err != nil {
		return 0, fmt.Errorf("failed to load history entries: %w", err)
	}

	if len(entries) == 0 {
		history, err := s.store.GetHistory(ctx, userID)
		if err != nil {
			return 0, fmt.Errorf("failed to load history: %w", err)
		}
		if history == nil {
			return 0, nil
		}
		return history.EcoscoreAverage, nil
	}

	var sum float64
	for _, entry := range entries {
		product, err := s.products.Fetch(ctx, entry.ProductID)
		switch {
		case err == nil:
			if product.EcoscoreScore != nil {
				sum += *product.EcoscoreScore
			}
		case errors.Is(err, ErrProductNotFound):
			// Dangling reference counts as zero
		default:
			return 0, err
		}
	}

	average := sum / float64(len(entries))
	if err := s.store.SetAverage(ctx, userID, average); err != nil {
		return 0, fmt.Errorf("failed to store average: %w", err)
	}

	return average, nil
}

// Average recomputes and returns the user's rolling average ecoscore. Users
// with no history read as zero; callers that care about "no history at all"
// should inspect the entries, not this value.
func (s *HistoryService) Average(ctx context.Context, userID uuid.UUID) (float64, error) {
	return s.Recompute(ctx, userID)
}

// List returns a page of the user's scan history for the history screen.
func (s *HistoryService) List(ctx context.Context, userID uuid.UUID, params utils.PaginationParams) ([]models.HistoryEntry, int64, error) {
	return s.store.ListEntries(ctx, userID, params)
}

// trackable re-validates the fields the history screen renders, independent
// of the catalog completeness rule.
func trackable(p *models.Product) bool {
	return p.Name != "" &&
		p.EcoscoreGrade != "" &&
		p.EcoscoreScore != nil &&
		len(p.EcoscoreData) > 0 &&
		len(p.CategoryTags) > 0 &&
		len(p.CategoryHierarchy) > 0
}
