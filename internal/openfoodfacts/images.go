// internal/openfoodfacts/images.go
package openfoodfacts

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// ImageClient fetches raw product images from the Open Food Facts image
// server at a pre-derived key (see services.ImageKey).
type ImageClient struct {
	httpClient *http.Client
	baseURL    string
}

func NewImageClient(baseURL string, timeout time.Duration) *ImageClient {
	return &ImageClient{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    baseURL,
	}
}

// Fetch returns the image bytes at key, or (nil, nil) when the server has no
// image there.
func (c *ImageClient) Fetch(ctx context.Context, key string) ([]byte, error) {
	endpoint := fmt.Sprintf("%s/%s", c.baseURL, key)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build image request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("image fetch failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, nil
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("image fetch returned status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read image body: %w", err)
	}

	return data, nil
}
