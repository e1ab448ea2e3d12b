// internal/services/recommendation_service_test.go
package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/carbonwise/carbonwise-backend/internal/config"
	"github.com/carbonwise/carbonwise-backend/internal/models"
)

type RecommendationTestSuite struct {
	suite.Suite
	catalog *fakeCatalog
	source  *fakeSource
	service *RecommendationService
}

func (suite *RecommendationTestSuite) SetupTest() {
	suite.catalog = newFakeCatalog()
	suite.source = newFakeSource()
	store := NewProductStore(suite.catalog, suite.source)
	images := NewImageResolver(newFakeImageSource(), nil)
	suite.service = NewRecommendationService(store, suite.catalog, images, config.RecommendConfig{
		MinResults:   2,
		MaxResults:   20,
		DefaultLimit: 10,
	})
}

func (suite *RecommendationTestSuite) seedBase(hierarchy ...string) *models.Product {
	base := completeProduct("3017620422003", 42, hierarchy...)
	suite.catalog.products[base.ID] = base
	return base
}

func candidates(n int, tags ...string) []models.Product {
	out := make([]models.Product, n)
	for i := range out {
		out[i] = *completeProduct("candidate", float64(i), tags...)
	}
	return out
}

func (suite *RecommendationTestSuite) TestFilterRelaxesUntilThreshold() {
	suite.seedBase("en:food", "en:snacks", "en:chocolates")

	// Yields 0, then 1, then 5 as tags are dropped
	suite.catalog.similarFn = func(query SimilarQuery) ([]models.Product, error) {
		switch len(query.Tags) {
		case 3:
			return nil, nil
		case 2:
			return candidates(1, "en:food"), nil
		default:
			return candidates(5, "en:food"), nil
		}
	}

	detail, err := suite.service.GetProductByID(context.Background(), "3017620422003", RecommendFilters{})

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), suite.catalog.queries, 3)
	assert.Len(suite.T(), detail.Recommendations, 5)

	// The most specific tag is dropped first
	assert.Equal(suite.T(), []string{"en:food", "en:snacks", "en:chocolates"}, []string(suite.catalog.queries[0].Tags))
	assert.Equal(suite.T(), []string{"en:food", "en:snacks"}, []string(suite.catalog.queries[1].Tags))
	assert.Equal(suite.T(), []string{"en:food"}, []string(suite.catalog.queries[2].Tags))
}

func (suite *RecommendationTestSuite) TestFirstQuerySufficientStopsEarly() {
	suite.seedBase("en:food", "en:snacks")

	suite.catalog.similarFn = func(query SimilarQuery) ([]models.Product, error) {
		return candidates(3, "en:food"), nil
	}

	detail, err := suite.service.GetProductByID(context.Background(), "3017620422003", RecommendFilters{})

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), suite.catalog.queries, 1)
	assert.Len(suite.T(), detail.Recommendations, 3)
}

func (suite *RecommendationTestSuite) TestExhaustedHierarchyAcceptsLastResults() {
	suite.seedBase("en:food", "en:snacks")

	suite.catalog.similarFn = func(query SimilarQuery) ([]models.Product, error) {
		return candidates(1, "en:food"), nil
	}

	detail, err := suite.service.GetProductByID(context.Background(), "3017620422003", RecommendFilters{})

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), suite.catalog.queries, 2)
	assert.Len(suite.T(), detail.Recommendations, 1)
}

func (suite *RecommendationTestSuite) TestNoCandidatesYieldsEmptySet() {
	suite.seedBase("en:food", "en:snacks")

	detail, err := suite.service.GetProductByID(context.Background(), "3017620422003", RecommendFilters{})

	assert.NoError(suite.T(), err)
	assert.Empty(suite.T(), detail.Recommendations)
}

func (suite *RecommendationTestSuite) TestRankingPrefersFewerNovelTags() {
	base := suite.seedBase("en:food", "en:snacks")
	base.CategoryTags = []string{"en:food", "en:snacks"}

	twin := *completeProduct("twin", 1, "en:food", "en:snacks")
	near := *completeProduct("near", 2, "en:food", "en:biscuits")
	far := *completeProduct("far", 3, "en:drinks", "en:sodas", "en:colas")

	suite.catalog.similarFn = func(query SimilarQuery) ([]models.Product, error) {
		return []models.Product{far, near, twin}, nil
	}

	detail, err := suite.service.GetProductByID(context.Background(), "3017620422003", RecommendFilters{})

	assert.NoError(suite.T(), err)
	ids := make([]string, len(detail.Recommendations))
	for i, rec := range detail.Recommendations {
		ids[i] = rec.ID
	}
	assert.Equal(suite.T(), []string{"twin", "near", "far"}, ids)
}

func (suite *RecommendationTestSuite) TestEqualScoresKeepQueryOrder() {
	suite.seedBase("en:food")

	first := *completeProduct("first", 1, "en:food", "en:one")
	second := *completeProduct("second", 2, "en:food", "en:two")

	suite.catalog.similarFn = func(query SimilarQuery) ([]models.Product, error) {
		return []models.Product{first, second}, nil
	}

	detail, err := suite.service.GetProductByID(context.Background(), "3017620422003", RecommendFilters{})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "first", detail.Recommendations[0].ID)
	assert.Equal(suite.T(), "second", detail.Recommendations[1].ID)
}

func (suite *RecommendationTestSuite) TestDuplicateCandidateTagsCountOnce() {
	assert.Equal(suite.T(), 2, tagDifference([]string{"en:a"}, []string{"en:c", "en:c", "en:d"}))
	assert.Equal(suite.T(), 0, tagDifference([]string{"en:a", "en:b"}, []string{"en:b", "en:a"}))
}

func (suite *RecommendationTestSuite) TestLimitDefaultsAndClamps() {
	suite.seedBase("en:food")

	suite.catalog.similarFn = func(query SimilarQuery) ([]models.Product, error) {
		return candidates(25, "en:food"), nil
	}

	// No explicit limit falls back to the default
	detail, err := suite.service.GetProductByID(context.Background(), "3017620422003", RecommendFilters{})
	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), detail.Recommendations, 10)

	// An oversized request is capped
	detail, err = suite.service.GetProductByID(context.Background(), "3017620422003", RecommendFilters{Limit: 100})
	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), detail.Recommendations, 20)

	detail, err = suite.service.GetProductByID(context.Background(), "3017620422003", RecommendFilters{Limit: 4})
	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), detail.Recommendations, 4)
}

func (suite *RecommendationTestSuite) TestFiltersForwardedToQuery() {
	suite.seedBase("en:food")

	detail, err := suite.service.GetProductByID(context.Background(), "3017620422003", RecommendFilters{
		Languages: []string{"en", "fr"},
		Countries: []string{"en:france"},
	})

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), detail)
	query := suite.catalog.queries[0]
	assert.Equal(suite.T(), []string{"en", "fr"}, query.Languages)
	assert.Equal(suite.T(), []string{"en:france"}, query.Countries)
	assert.Equal(suite.T(), "3017620422003", query.ExcludeID)
	assert.Equal(suite.T(), 20, query.Limit)
}

func (suite *RecommendationTestSuite) TestMissingHierarchyReportedNotFound() {
	base := completeProduct("3017620422003", 42)
	base.CategoryHierarchy = nil
	suite.catalog.products[base.ID] = base

	_, err := suite.service.GetProductByID(context.Background(), "3017620422003", RecommendFilters{})

	assert.ErrorIs(suite.T(), err, ErrProductNotFound)
}

func TestRecommendationSuite(t *testing.T) {
	suite.Run(t, new(RecommendationTestSuite))
}
