// internal/openfoodfacts/client_test.go
package openfoodfacts

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLookupDecodesProduct(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v0/product/3017620422003.json", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"status": 1,
			"product": {
				"product_name": "Nutella",
				"ecoscore_grade": "d",
				"ecoscore_score": 30,
				"ecoscore_data": {"grade": "d"},
				"categories_tags": ["en:spreads", "en:chocolate-spreads"],
				"categories_hierarchy": ["en:spreads", "en:chocolate-spreads"],
				"countries_tags": ["en:france"],
				"lang": "en",
				"ingredients_tags": ["en:sugar", "en:palm-oil"]
			}
		}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second)
	product, err := client.Lookup(context.Background(), "3017620422003")

	assert.NoError(t, err)
	assert.Equal(t, "3017620422003", product.ID)
	assert.Equal(t, "Nutella", product.Name)
	assert.Equal(t, "d", product.EcoscoreGrade)
	assert.Equal(t, 30.0, *product.EcoscoreScore)
	assert.Equal(t, []string{"en:spreads", "en:chocolate-spreads"}, []string(product.CategoryTags))
	assert.Equal(t, "en", product.Language)
	assert.True(t, product.IsComplete())
}

func TestLookupStatusZeroMeansMissing(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status": 0, "status_verbose": "product not found"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second)
	product, err := client.Lookup(context.Background(), "00000000")

	assert.NoError(t, err)
	assert.Nil(t, product)
}

func TestLookupNotFoundMeansMissing(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second)
	product, err := client.Lookup(context.Background(), "00000000")

	assert.NoError(t, err)
	assert.Nil(t, product)
}

func TestLookupServerErrorSurfaces(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second)
	_, err := client.Lookup(context.Background(), "3017620422003")

	assert.Error(t, err)
}

func TestImageFetch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/301/762/042/2003/1.jpg" {
			w.Write([]byte("jpeg-bytes"))
			return
		}
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := NewImageClient(server.URL, 5*time.Second)

	data, err := client.Fetch(context.Background(), "301/762/042/2003/1.jpg")
	assert.NoError(t, err)
	assert.Equal(t, []byte("jpeg-bytes"), data)

	data, err = client.Fetch(context.Background(), "00000000/1.jpg")
	assert.NoError(t, err)
	assert.Nil(t, data)
}
