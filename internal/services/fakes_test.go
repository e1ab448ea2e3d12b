// internal/services/fakes_test.go
package services

import (
	"context"
	"sort"

	"github.com/google/uuid"

	"github.com/carbonwise/carbonwise-backend/internal/models"
	"github.com/carbonwise/carbonwise-backend/internal/utils"
)

type fakeCatalog struct {
	products  map[string]*models.Product
	similarFn func(query SimilarQuery) ([]models.Product, error)
	queries   []SimilarQuery
	inserted  []*models.Product
	findErr   error
	insertErr error
}

func newFakeCatalog() *fakeCatalog {
	return &fakeCatalog{products: make(map[string]*models.Product)}
}

func (f *fakeCatalog) FindComplete(ctx context.Context, id string) (*models.Product, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	return f.products[id], nil
}

func (f *fakeCatalog) FindSimilar(ctx context.Context, query SimilarQuery) ([]models.Product, error) {
	f.queries = append(f.queries, query)
	if f.similarFn == nil {
		return nil, nil
	}
	return f.similarFn(query)
}

func (f *fakeCatalog) Insert(ctx context.Context, product *models.Product) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	if _, exists := f.products[product.ID]; !exists {
		f.products[product.ID] = product
	}
	f.inserted = append(f.inserted, product)
	return nil
}

type fakeSource struct {
	products map[string]*models.Product
	err      error
	lookups  int
}

func newFakeSource() *fakeSource {
	return &fakeSource{products: make(map[string]*models.Product)}
}

func (f *fakeSource) Lookup(ctx context.Context, barcode string) (*models.Product, error) {
	f.lookups++
	if f.err != nil {
		return nil, f.err
	}
	return f.products[barcode], nil
}

type fakeImageSource struct {
	images  map[string][]byte
	err     error
	fetches int
}

func newFakeImageSource() *fakeImageSource {
	return &fakeImageSource{images: make(map[string][]byte)}
}

func (f *fakeImageSource) Fetch(ctx context.Context, key string) ([]byte, error) {
	f.fetches++
	if f.err != nil {
		return nil, f.err
	}
	return f.images[key], nil
}

type fakeImageCache struct {
	images map[string][]byte
	puts   int
}

func newFakeImageCache() *fakeImageCache {
	return &fakeImageCache{images: make(map[string][]byte)}
}

func (f *fakeImageCache) Get(ctx context.Context, key string) ([]byte, error) {
	return f.images[key], nil
}

func (f *fakeImageCache) Put(ctx context.Context, key string, data []byte) error {
	f.images[key] = data
	f.puts++
	return nil
}

type fakeHistoryStore struct {
	histories   map[uuid.UUID]*models.UserHistory
	entries     []models.HistoryEntry
	averageSets int
}

func newFakeHistoryStore() *fakeHistoryStore {
	return &fakeHistoryStore{histories: make(map[uuid.UUID]*models.UserHistory)}
}

func (f *fakeHistoryStore) EnsureHistory(ctx context.Context, userID uuid.UUID) error {
	if _, exists := f.histories[userID]; !exists {
		f.histories[userID] = &models.UserHistory{UserID: userID}
	}
	return nil
}

func (f *fakeHistoryStore) AppendEntry(ctx context.Context, entry *models.HistoryEntry) error {
	f.entries = append(f.entries, *entry)
	return nil
}

func (f *fakeHistoryStore) RemoveEntry(ctx context.Context, userID, scanID uuid.UUID) (bool, error) {
	for i, entry := range f.entries {
		if entry.UserID == userID && entry.ScanID == scanID {
			f.entries = append(f.entries[:i], f.entries[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeHistoryStore) RecentEntries(ctx context.Context, userID uuid.UUID, limit int) ([]models.HistoryEntry, error) {
	var matched []models.HistoryEntry
	for _, entry := range f.entries {
		if entry.UserID == userID {
			matched = append(matched, entry)
		}
	}
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].Timestamp.After(matched[j].Timestamp)
	})
	if len(matched) > limit {
		matched = matched[:limit]
	}
	return matched, nil
}

func (f *fakeHistoryStore) ListEntries(ctx context.Context, userID uuid.UUID, params utils.PaginationParams) ([]models.HistoryEntry, int64, error) {
	matched, err := f.RecentEntries(ctx, userID, len(f.entries))
	if err != nil {
		return nil, 0, err
	}
	return matched, int64(len(matched)), nil
}

func (f *fakeHistoryStore) SetAverage(ctx context.Context, userID uuid.UUID, average float64) error {
	if err := f.EnsureHistory(ctx, userID); err != nil {
		return err
	}
	f.histories[userID].EcoscoreAverage = average
	f.averageSets++
	return nil
}

func (f *fakeHistoryStore) GetHistory(ctx context.Context, userID uuid.UUID) (*models.UserHistory, error) {
	return f.histories[userID], nil
}

func completeProduct(id string, score float64, categoryTags ...string) *models.Product {
	if len(categoryTags) == 0 {
		categoryTags = []string{"en:snacks"}
	}
	return &models.Product{
		ID:                id,
		Name:              "Product " + id,
		EcoscoreGrade:     "b",
		EcoscoreScore:     &score,
		EcoscoreData:      models.JSONB{"grade": "b"},
		CategoryTags:      categoryTags,
		CategoryHierarchy: categoryTags,
		CountryTags:       []string{"en:france"},
		Language:          "en",
		IngredientTags:    []string{"en:sugar"},
	}
}
