// internal/services/image_service.go
package services

import (
	"context"
	"encoding/base64"
	"fmt"

	"github.com/sirupsen/logrus"
)

const imageFilename = "1.jpg"

// ImageSource fetches raw image bytes at a derived key; (nil, nil) when
// there is no image.
type ImageSource interface {
	Fetch(ctx context.Context, key string) ([]byte, error)
}

// ImageCache is an optional mirror checked before the source and backfilled
// after a successful fetch.
type ImageCache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, data []byte) error
}

// ImageKey derives the storage key for a product's front image. 13-digit
// barcodes are sharded into 3/3/3/rest path segments, the layout the image
// server uses for EAN-13 codes; anything else is used verbatim.
func ImageKey(productID string) string {
	if len(productID) == 13 {
		return fmt.Sprintf("%s/%s/%s/%s/%s",
			productID[:3], productID[3:6], productID[6:9], productID[9:], imageFilename)
	}
	return fmt.Sprintf("%s/%s", productID, imageFilename)
}

// ImageResolver fetches product images and encodes them for JSON transport.
// A missing image is a normal outcome, so Resolve never returns an error.
type ImageResolver struct {
	source ImageSource
	cache  ImageCache
}

func NewImageResolver(source ImageSource, cache ImageCache) *ImageResolver {
	return &ImageResolver{
		source: source,
		cache:  cache,
	}
}

// Resolve returns the product's front image as base64, or "" when no image
// is available for any reason.
func (r *ImageResolver) Resolve(ctx context.Context, productID string) string {
	key := ImageKey(productID)

	if r.cache != nil {
		if data, err := r.cache.Get(ctx, key); err == nil && len(data) > 0 {
			return base64.StdEncoding.EncodeToString(data)
		}
	}

	data, err := r.source.Fetch(ctx, key)
	if err != nil {
		logrus.WithError(err).WithField("image_key", key).Debug("Image fetch failed")
		return ""
	}
	if len(data) == 0 {
		return ""
	}

	if r.cache != nil {
		if err := r.cache.Put(ctx, key, data); err != nil {
			logrus.WithError(err).WithField("image_key", key).Debug("Image cache write failed")
		}
	}

	return base64.StdEncoding.EncodeToString(data)
}
