// internal/services/recommendation_service.go
package services

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/carbonwise/carbonwise-backend/internal/config"
	"github.com/carbonwise/carbonwise-backend/internal/models"
)

type RecommendFilters struct {
	Languages []string
	Countries []string
	Limit     int
}

type ProductRecommendation struct {
	models.Product
	Image string `json:"image,omitempty"`
}

type ProductDetail struct {
	Product         *models.Product         `json:"product"`
	Image           string                  `json:"image,omitempty"`
	Recommendations []ProductRecommendation `json:"recommendations"`
}

// RecommendationService resolves a product and ranks similar products by
// category-tag overlap with a relaxing category filter.
type RecommendationService struct {
	store   *ProductStore
	catalog ProductCatalog
	images  *ImageResolver
	cfg     config.RecommendConfig
}

func NewRecommendationService(store *ProductStore, catalog ProductCatalog, images *ImageResolver, cfg config.RecommendConfig) *RecommendationService {
	return &RecommendationService{
		store:   store,
		catalog: catalog,
		images:  images,
		cfg:     cfg,
	}
}

// GetProductByID fetches the base product and assembles its recommendation
// set. A product without a category hierarchy cannot anchor a similarity
// search and is reported as not found.
func (s *RecommendationService) GetProductByID(ctx context.Context, id string, filters RecommendFilters) (*ProductDetail, error) {
	base, err := s.store.Fetch(ctx, id)
	if err != nil {
		return nil, err
	}
	if len(base.CategoryHierarchy) == 0 {
		return nil, ErrProductNotFound
	}

	candidates, err := s.findSimilar(ctx, base, filters)
	if err != nil {
		return nil, err
	}

	ranked := rankByTagDifference(base.CategoryTags, candidates)

	limit := s.clampLimit(filters.Limit)
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}

	return &ProductDetail{
		Product:         base,
		Image:           s.images.Resolve(ctx, base.ID),
		Recommendations: s.attachImages(ctx, ranked),
	}, nil
}

// findSimilar runs the relaxing-filter search: query with the full category
// hierarchy, and while the yield stays under the configured minimum, drop the
// most specific tag and retry. Once the hierarchy is exhausted the last
// result set is accepted as-is, even when empty.
func (s *RecommendationService) findSimilar(ctx context.Context, base *models.Product, filters RecommendFilters) ([]models.Product, error) {
	remaining := append([]string(nil), base.CategoryHierarchy...)

	var results []models.Product
	for len(remaining) > 0 {
		query := SimilarQuery{
			ExcludeID: base.ID,
			Tags:      remaining,
			Languages: filters.Languages,
			Countries: filters.Countries,
			Limit:     s.cfg.MaxResults,
		}

		found, err := s.catalog.FindSimilar(ctx, query)
		if err != nil {
			return nil, fmt.Errorf("similar product query failed: %w", err)
		}

		results = found
		if len(results) >= s.cfg.MinResults {
			break
		}

		remaining = remaining[:len(remaining)-1]
	}

	return results, nil
}

// rankByTagDifference orders candidates by how many category tags they carry
// that the base product does not: |base ∪ candidate| − |base|. Fewer novel
// tags means more similar. The sort is stable so equally scored candidates
// keep their query order.
func rankByTagDifference(baseTags []string, candidates []models.Product) []models.Product {
	type scored struct {
		product models.Product
		score   int
	}

	entries := make([]scored, len(candidates))
	for i, candidate := range candidates {
		entries[i] = scored{
			product: candidate,
			score:   tagDifference(baseTags, candidate.CategoryTags),
		}
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].score < entries[j].score
	})

	ranked := make([]models.Product, len(entries))
	for i, entry := range entries {
		ranked[i] = entry.product
	}
	return ranked
}

func tagDifference(baseTags, candidateTags []string) int {
	baseSet := make(map[string]struct{}, len(baseTags))
	for _, tag := range baseTags {
		baseSet[tag] = struct{}{}
	}

	novel := make(map[string]struct{})
	for _, tag := range candidateTags {
		if _, ok := baseSet[tag]; !ok {
			novel[tag] = struct{}{}
		}
	}

	return len(novel)
}

func (s *RecommendationService) clampLimit(limit int) int {
	if limit <= 0 {
		return s.cfg.DefaultLimit
	}
	if limit > s.cfg.MaxResults {
		return s.cfg.MaxResults
	}
	return limit
}

// attachImages resolves candidate images concurrently; each fetch is
// independent and side-effect-free.
func (s *RecommendationService) attachImages(ctx context.Context, products []models.Product) []ProductRecommendation {
	recommendations := make([]ProductRecommendation, len(products))

	var wg sync.WaitGroup
	for i := range products {
		recommendations[i].Product = products[i]

		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			recommendations[i].Image = s.images.Resolve(ctx, recommendations[i].ID)
		}(i)
	}
	wg.Wait()

	return recommendations
}
