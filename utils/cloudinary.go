package utils

import (
	"eventify/config"
	"eventify/services/catalog"
)

// ImageResolver returns a Cloudinary-backed resolver when credentials are
// configured and a passthrough resolver otherwise.
func ImageResolver() (catalog.ImageResolver, error) {
	cfg := config.AppConfig
	if cfg.CloudinaryCloudName == "" || cfg.CloudinaryAPIKey == "" || cfg.CloudinaryAPISecret == "" {
		GetLogger().Info("cloudinary credentials not set, serving raw image references")
		return catalog.PassthroughImages{}, nil
	}
	return catalog.NewCloudinaryImages(
		cfg.CloudinaryCloudName,
		cfg.CloudinaryAPIKey,
		cfg.CloudinaryAPISecret,
		cfg.CloudinaryFolder,
	)
}
