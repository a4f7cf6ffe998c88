package catalog

import (
	"context"

	"utsavia/client"
	"utsavia/models"
	"utsavia/session"
)

// AddItemInput carries the add-item form fields as entered. Price arrives as
// text and is parsed during submission.
type AddItemInput struct {
	Name        string
	Description string
	Category    string
	City        string
	Price       string
	ImageURL    string
}

// CatalogService manages the vendor's item listings.
type CatalogService interface {
	AddItem(ctx context.Context, input AddItemInput) (*models.Item, error)
	FetchItems(ctx context.Context) ([]models.Item, error)
	DeleteItem(ctx context.Context, itemID string) error
}

// DefaultCatalogService is the standard implementation backed by the API client.
type DefaultCatalogService struct {
	API   *client.Client
	Store session.Store
}
