// internal/openfoodfacts/client.go
package openfoodfacts

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/carbonwise/carbonwise-backend/internal/models"
)

// Client talks to the Open Food Facts product API. It reports transport
// problems as errors; deciding whether those look like a missing product is
// the caller's policy, not the client's.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    baseURL,
	}
}

type productResponse struct {
	Status  int             `json:"status"`
	Product *models.Product `json:"product"`
}

// Lookup fetches a product by barcode. A (nil, nil) return means the remote
// database has no record for that code.
func (c *Client) Lookup(ctx context.Context, barcode string) (*models.Product, error) {
	endpoint := fmt.Sprintf("%s/api/v0/product/%s.json", c.baseURL, url.PathEscape(barcode))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build product request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("product lookup failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, nil
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("product lookup returned status %d", resp.StatusCode)
	}

	var payload productResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode product response: %w", err)
	}

	// Status 0 is the API's explicit "no such product"
	if payload.Status == 0 || payload.Product == nil {
		return nil, nil
	}

	payload.Product.ID = barcode
	return payload.Product, nil
}
