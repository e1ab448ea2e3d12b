// internal/services/product_store.go
package services

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/carbonwise/carbonwise-backend/internal/models"
)

// SimilarQuery selects recommendation candidates: products other than
// ExcludeID whose category tags overlap Tags, displayable (name, grade and
// score present), optionally restricted by language and country.
type SimilarQuery struct {
	ExcludeID string
	Tags      []string
	Languages []string
	Countries []string
	Limit     int
}

// ProductCatalog is the persistent product store.
type ProductCatalog interface {
	// FindComplete returns the product with the given id if every catalog
	// field is present, (nil, nil) otherwise.
	FindComplete(ctx context.Context, id string) (*models.Product, error)
	// FindSimilar runs one candidate query, capped at query.Limit.
	FindSimilar(ctx context.Context, query SimilarQuery) ([]models.Product, error)
	// Insert persists a product. Inserting an id that already exists is a
	// no-op, so concurrent backfills of the same barcode are safe.
	Insert(ctx context.Context, product *models.Product) error
}

// ProductSource is the external product database. A (nil, nil) return means
// the source has no record for the barcode.
type ProductSource interface {
	Lookup(ctx context.Context, barcode string) (*models.Product, error)
}

// ProductStore resolves products catalog-first, falling back to the external
// source and backfilling the catalog with validated records.
type ProductStore struct {
	catalog ProductCatalog
	source  ProductSource
}

func NewProductStore(catalog ProductCatalog, source ProductSource) *ProductStore {
	return &ProductStore{
		catalog: catalog,
		source:  source,
	}
}

// Fetch returns the complete product for id, or ErrProductNotFound. A record
// missing any required field is treated the same as a missing record: it is
// never persisted and never returned. Source transport failures and timeouts
// collapse into ErrProductNotFound as well; only catalog faults surface as
// distinct errors.
func (s *ProductStore) Fetch(ctx context.Context, id string) (*models.Product, error) {
	product, err := s.catalog.FindComplete(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("catalog lookup failed: %w", err)
	}
	if product != nil {
		return product, nil
	}

	remote, err := s.source.Lookup(ctx, id)
	if err != nil {
		logrus.WithError(err).WithField("product_id", id).Warn("Product source unreachable")
		return nil, ErrProductNotFound
	}
	if remote == nil {
		return nil, ErrProductNotFound
	}

	remote.ID = id
	if !remote.IsComplete() {
		return nil, ErrProductNotFound
	}

	// Callers may assume anything returned here is durably cached, so a
	// failed backfill fails the fetch.
	if err := s.catalog.Insert(ctx, remote); err != nil {
		logrus.WithError(err).WithField("product_id", id).Warn("Catalog backfill failed")
		return nil, ErrProductNotFound
	}

	return remote, nil
}
