package client

import (
	"context"
	"fmt"

	"utsavia/utils"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/spf13/viper"
)

// Uploader pushes a local image to the hosting service and returns the hosted
// URL. It is the one call that talks to a different host and content type, so
// it lives behind its own interface and the JSON client stays unaware of it.
type Uploader interface {
	UploadImage(ctx context.Context, localFilePath string) (string, error)
}

// CloudinaryUploader uploads images to Cloudinary using the app's preset.
type CloudinaryUploader struct {
	cld    *cloudinary.Cloudinary
	preset string
	folder string
}

// LoadCloudinaryConfig loads the Cloudinary configuration from the YAML file.
func LoadCloudinaryConfig() error {
	viper.SetConfigFile("config/cloudinary.yaml")
	viper.SetConfigType("yaml")

	viper.SetDefault("cloudinary.cloudName", "dfzxcrlry")
	viper.SetDefault("cloudinary.apiKey", "")
	viper.SetDefault("cloudinary.apiSecret", "")
	viper.SetDefault("cloudinary.uploadPreset", "utsavia")
	viper.SetDefault("cloudinary.folder", "utsavia_items")

	if err := viper.ReadInConfig(); err != nil {
		// Presets make credentials optional; defaults are enough for dev.
		return nil
	}
	return nil
}

// NewCloudinaryUploader initializes a Cloudinary uploader from Viper config.
func NewCloudinaryUploader() (*CloudinaryUploader, error) {
	if err := LoadCloudinaryConfig(); err != nil {
		return nil, err
	}

	cloudName := viper.GetString("cloudinary.cloudName")
	apiKey := viper.GetString("cloudinary.apiKey")
	apiSecret := viper.GetString("cloudinary.apiSecret")
	if cloudName == "" {
		return nil, fmt.Errorf("cloudinary cloud name not set in configuration")
	}

	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize cloudinary: %w", err)
	}

	return &CloudinaryUploader{
		cld:    cld,
		preset: viper.GetString("cloudinary.uploadPreset"),
		folder: viper.GetString("cloudinary.folder"),
	}, nil
}

// UploadImage uploads the file and returns its hosted secure URL.
func (u *CloudinaryUploader) UploadImage(ctx context.Context, localFilePath string) (string, error) {
	params := uploader.UploadParams{
		UploadPreset: u.preset,
		Folder:       u.folder,
	}
	result, err := u.cld.Upload.Upload(ctx, localFilePath, params)
	if err != nil {
		return "", utils.UploadError{Message: err.Error()}
	}
	if result.SecureURL == "" {
		return "", utils.UploadError{Message: "no hosted URL returned"}
	}
	return result.SecureURL, nil
}
