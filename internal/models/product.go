// internal/models/product.go
package models

import (
	"time"

	"github.com/lib/pq"
)

// Product is one catalog entry, keyed by its barcode. The JSON tags follow
// the Open Food Facts field names so the remote payload decodes straight into
// this struct and API responses carry the names the mobile client expects.
type Product struct {
	ID                string         `json:"id" gorm:"primaryKey;size:64"`
	Name              string         `json:"product_name" gorm:"size:255"`
	EcoscoreGrade     string         `json:"ecoscore_grade" gorm:"size:8"`
	EcoscoreScore     *float64       `json:"ecoscore_score"`
	EcoscoreData      JSONB          `json:"ecoscore_data" gorm:"type:jsonb"`
	CategoryTags      pq.StringArray `json:"categories_tags" gorm:"type:text[]"`
	CategoryHierarchy pq.StringArray `json:"categories_hierarchy" gorm:"type:text[]"`
	CountryTags       pq.StringArray `json:"countries_tags" gorm:"type:text[]"`
	Language          string         `json:"lang" gorm:"column:lang;size:8;index"`
	IngredientTags    pq.StringArray `json:"ingredients_tags" gorm:"type:text[]"`
	CreatedAt         time.Time      `json:"created_at"`
}

// IsComplete reports whether every catalog field is present and non-empty.
// Incomplete products are never persisted and never leave the store.
func (p *Product) IsComplete() bool {
	return p.ID != "" &&
		p.Name != "" &&
		p.EcoscoreGrade != "" &&
		p.EcoscoreScore != nil &&
		len(p.EcoscoreData) > 0 &&
		len(p.CategoryTags) > 0 &&
		len(p.CategoryHierarchy) > 0 &&
		len(p.CountryTags) > 0 &&
		p.Language != "" &&
		len(p.IngredientTags) > 0
}
