// internal/services/image_service_test.go
package services

import (
	"context"
	"encoding/base64"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestImageKey(t *testing.T) {
	tests := []struct {
		name      string
		productID string
		want      string
	}{
		{"ean13 sharded", "3017620422003", "301/762/042/2003/1.jpg"},
		{"ean8 verbatim", "12345678", "12345678/1.jpg"},
		{"short code verbatim", "12345", "12345/1.jpg"},
		{"ean14 verbatim", "12345678901234", "12345678901234/1.jpg"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ImageKey(tt.productID))
		})
	}
}

func TestResolveFetchesAndEncodes(t *testing.T) {
	source := newFakeImageSource()
	source.images["301/762/042/2003/1.jpg"] = []byte("jpeg-bytes")
	resolver := NewImageResolver(source, nil)

	image := resolver.Resolve(context.Background(), "3017620422003")

	assert.Equal(t, base64.StdEncoding.EncodeToString([]byte("jpeg-bytes")), image)
}

func TestResolveMissingImageIsEmpty(t *testing.T) {
	resolver := NewImageResolver(newFakeImageSource(), nil)

	assert.Empty(t, resolver.Resolve(context.Background(), "3017620422003"))
}

func TestResolveSourceFailureIsEmpty(t *testing.T) {
	source := newFakeImageSource()
	source.err = errors.New("timeout")
	resolver := NewImageResolver(source, nil)

	assert.Empty(t, resolver.Resolve(context.Background(), "3017620422003"))
}

func TestResolveCacheHitSkipsSource(t *testing.T) {
	source := newFakeImageSource()
	cache := newFakeImageCache()
	cache.images["12345678/1.jpg"] = []byte("cached")
	resolver := NewImageResolver(source, cache)

	image := resolver.Resolve(context.Background(), "12345678")

	assert.Equal(t, base64.StdEncoding.EncodeToString([]byte("cached")), image)
	assert.Zero(t, source.fetches)
}

func TestResolveBackfillsCache(t *testing.T) {
	source := newFakeImageSource()
	source.images["12345678/1.jpg"] = []byte("jpeg-bytes")
	cache := newFakeImageCache()
	resolver := NewImageResolver(source, cache)

	resolver.Resolve(context.Background(), "12345678")

	assert.Equal(t, 1, cache.puts)
	assert.Equal(t, []byte("jpeg-bytes"), cache.images["12345678/1.jpg"])
}
