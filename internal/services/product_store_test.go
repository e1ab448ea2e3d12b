// internal/services/product_store_test.go
package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type ProductStoreTestSuite struct {
	suite.Suite
	catalog *fakeCatalog
	source  *fakeSource
	store   *ProductStore
}

func (suite *ProductStoreTestSuite) SetupTest() {
	suite.catalog = newFakeCatalog()
	suite.source = newFakeSource()
	suite.store = NewProductStore(suite.catalog, suite.source)
}

func (suite *ProductStoreTestSuite) TestCatalogHitSkipsSource() {
	suite.catalog.products["3017620422003"] = completeProduct("3017620422003", 42)

	product, err := suite.store.Fetch(context.Background(), "3017620422003")

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "3017620422003", product.ID)
	assert.Zero(suite.T(), suite.source.lookups)
}

func (suite *ProductStoreTestSuite) TestMissFallsBackAndBackfills() {
	suite.source.products["3017620422003"] = completeProduct("3017620422003", 42)

	product, err := suite.store.Fetch(context.Background(), "3017620422003")

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "3017620422003", product.ID)
	assert.Len(suite.T(), suite.catalog.inserted, 1)

	// A second fetch is served from the catalog
	_, err = suite.store.Fetch(context.Background(), "3017620422003")
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 1, suite.source.lookups)
}

func (suite *ProductStoreTestSuite) TestUnknownBarcodeNotFound() {
	_, err := suite.store.Fetch(context.Background(), "00000000")

	assert.ErrorIs(suite.T(), err, ErrProductNotFound)
}

func (suite *ProductStoreTestSuite) TestSourceFailureCollapsesToNotFound() {
	suite.source.err = errors.New("connection refused")

	_, err := suite.store.Fetch(context.Background(), "3017620422003")

	assert.ErrorIs(suite.T(), err, ErrProductNotFound)
}

func (suite *ProductStoreTestSuite) TestIncompleteRemoteNeverPersisted() {
	incomplete := completeProduct("3017620422003", 42)
	incomplete.IngredientTags = nil
	suite.source.products["3017620422003"] = incomplete

	_, err := suite.store.Fetch(context.Background(), "3017620422003")

	assert.ErrorIs(suite.T(), err, ErrProductNotFound)
	assert.Empty(suite.T(), suite.catalog.inserted)
}

func (suite *ProductStoreTestSuite) TestBackfillFailureFailsFetch() {
	suite.source.products["3017620422003"] = completeProduct("3017620422003", 42)
	suite.catalog.insertErr = errors.New("disk full")

	_, err := suite.store.Fetch(context.Background(), "3017620422003")

	assert.ErrorIs(suite.T(), err, ErrProductNotFound)
}

func (suite *ProductStoreTestSuite) TestCatalogFaultSurfacesAsInternal() {
	suite.catalog.findErr = errors.New("connection reset")

	_, err := suite.store.Fetch(context.Background(), "3017620422003")

	assert.Error(suite.T(), err)
	assert.NotErrorIs(suite.T(), err, ErrProductNotFound)
	assert.Zero(suite.T(), suite.source.lookups)
}

func TestProductStoreSuite(t *testing.T) {
	suite.Run(t, new(ProductStoreTestSuite))
}
