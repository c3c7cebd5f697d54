// Package media builds public URLs for product pictures.
package media

import (
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/shopfeed/backend/internal/domain/catalog"
)

// mediaPrefix is the storefront path under which pictures are served
const mediaPrefix = "media"

// defaultPictureName is the placeholder used for products without pictures
const defaultPictureName = "default-image.png"

// PictureResolver builds sized picture URLs rooted at the store's base
// URL. A picture stored at "p/widget.jpg" resolves to
// "<store>/media/p/widget_125.jpg" for size 125.
type PictureResolver struct{}

// NewPictureResolver creates a new PictureResolver
func NewPictureResolver() *PictureResolver {
	return &PictureResolver{}
}

// PictureURL returns the public URL of a picture at the given size
func (r *PictureResolver) PictureURL(ctx context.Context, picture *catalog.Picture, size int, storeURL string) (string, error) {
	return joinURL(storeURL, mediaPrefix, sizedName(picture.Path, size)), nil
}

// DefaultPictureURL returns the placeholder picture URL at the given size
func (r *PictureResolver) DefaultPictureURL(ctx context.Context, size int, storeURL string) (string, error) {
	return joinURL(storeURL, mediaPrefix, sizedName(defaultPictureName, size)), nil
}

// sizedName inserts the size suffix before the file extension
func sizedName(p string, size int) string {
	ext := path.Ext(p)
	return fmt.Sprintf("%s_%d%s", strings.TrimSuffix(p, ext), size, ext)
}

// joinURL joins URL segments with single slashes
func joinURL(base string, segments ...string) string {
	parts := []string{strings.TrimRight(base, "/")}
	for _, s := range segments {
		parts = append(parts, strings.Trim(s, "/"))
	}
	return strings.Join(parts, "/")
}
