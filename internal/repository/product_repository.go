// internal/repository/product_repository.go
package repository

import (
	"context"
	"errors"

	"github.com/lib/pq"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/carbonwise/carbonwise-backend/internal/models"
	"github.com/carbonwise/carbonwise-backend/internal/services"
)

// completePredicate is the SQL form of models.Product.IsComplete: a cache
// hit requires every catalog field, so half-filled rows behave like misses.
const completePredicate = `name <> ''
	AND ecoscore_grade <> ''
	AND ecoscore_score IS NOT NULL
	AND ecoscore_data IS NOT NULL AND ecoscore_data <> '{}'::jsonb
	AND cardinality(category_tags) > 0
	AND cardinality(category_hierarchy) > 0
	AND cardinality(country_tags) > 0
	AND lang <> ''
	AND cardinality(ingredient_tags) > 0`

type ProductRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

func (r *ProductRepository) FindComplete(ctx context.Context, id string) (*models.Product, error) {
	var product models.Product
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		Where(completePredicate).
		First(&product).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *ProductRepository) FindSimilar(ctx context.Context, query services.SimilarQuery) ([]models.Product, error) {
	db := r.db.WithContext(ctx).Model(&models.Product{}).
		Where("id <> ?", query.ExcludeID).
		Where("name <> ''").
		Where("ecoscore_grade <> ''").
		Where("ecoscore_score IS NOT NULL").
		Where("category_tags && ?", pq.Array(query.Tags))

	if len(query.Languages) > 0 {
		db = db.Where("lang IN ?", query.Languages)
	}
	if len(query.Countries) > 0 {
		db = db.Where("country_tags && ?", pq.Array(query.Countries))
	}

	var products []models.Product
	if err := db.Limit(query.Limit).Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (r *ProductRepository) Insert(ctx context.Context, product *models.Product) error {
	// Concurrent cache misses may both backfill the same barcode; the
	// insert has to tolerate the duplicate.
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(product).Error
}
