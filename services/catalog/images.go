package catalog

import (
	"fmt"
	"path"
	"strings"

	"eventify/models"

	"github.com/cloudinary/cloudinary-go/v2"
	"go.uber.org/zap"
)

// ImageResolver turns an opaque image reference into something a client can load.
type ImageResolver interface {
	ImageURL(ref string) (string, error)
}

// PassthroughImages leaves references untouched.
type PassthroughImages struct{}

func (PassthroughImages) ImageURL(ref string) (string, error) {
	return ref, nil
}

// CloudinaryImages resolves references as Cloudinary public IDs.
type CloudinaryImages struct {
	cld    *cloudinary.Cloudinary
	folder string
}

// NewCloudinaryImages creates a resolver for the given account. Public IDs are
// looked up under folder when it is set.
func NewCloudinaryImages(cloudName, apiKey, apiSecret, folder string) (*CloudinaryImages, error) {
	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, fmt.Errorf("catalog: failed to initialize cloudinary: %w", err)
	}
	return &CloudinaryImages{cld: cld, folder: folder}, nil
}

// ImageURL returns the delivery URL for ref. Absolute URLs pass through.
func (r *CloudinaryImages) ImageURL(ref string) (string, error) {
	if ref == "" || strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") {
		return ref, nil
	}
	publicID := ref
	if r.folder != "" {
		publicID = path.Join(r.folder, ref)
	}
	img, err := r.cld.Image(publicID)
	if err != nil {
		return "", fmt.Errorf("catalog: image %q: %w", ref, err)
	}
	url, err := img.String()
	if err != nil {
		return "", fmt.Errorf("catalog: image %q: %w", ref, err)
	}
	return url, nil
}

// WithImages returns a copy of the catalog whose image references have been
// resolved. References that fail to resolve are kept as they are.
func (c *Catalog) WithImages(resolver ImageResolver, logger *zap.Logger) *Catalog {
	categories := make([]models.Category, len(c.categories))
	for i, cat := range c.categories {
		services := make([]models.Service, len(cat.Services))
		for j, svc := range cat.Services {
			url, err := resolver.ImageURL(svc.Image)
			if err != nil {
				logger.Warn("catalog: image not resolved", zap.String("serviceID", svc.ID), zap.Error(err))
				url = svc.Image
			}
			svc.Image = url
			services[j] = svc
		}
		categories[i] = models.Category{ID: cat.ID, Name: cat.Name, Services: services}
	}
	return New(categories, c.keywords)
}
