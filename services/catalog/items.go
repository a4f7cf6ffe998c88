package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"utsavia/models"
	"utsavia/session"
	"utsavia/utils"

	"go.uber.org/zap"
)

// AddItem lists a new item for the signed-in vendor. The single city/price
// pair entered in the form is submitted as a one-entry price list.
func (s *DefaultCatalogService) AddItem(ctx context.Context, input AddItemInput) (*models.Item, error) {
	vendorID, err := s.requireVendorID()
	if err != nil {
		return nil, err
	}

	if input.Name == "" || input.Category == "" || input.City == "" {
		return nil, utils.ValidationError{Message: "please fill in all required fields"}
	}
	price, err := strconv.ParseFloat(input.Price, 64)
	if err != nil || price <= 0 {
		return nil, utils.ValidationError{Field: "price", Message: "please enter a valid price"}
	}

	req := models.AddItemRequest{
		Name:        input.Name,
		Description: input.Description,
		Prices:      []models.PriceEntry{{City: input.City, Price: price}},
		Category:    input.Category,
		Image:       input.ImageURL,
		Vendor:      vendorID,
	}

	var item models.Item
	if err := s.API.DoJSON(ctx, http.MethodPost, "/items/add", req, false, &item); err != nil {
		utils.GetLogger().Warn("add item failed", zap.String("name", input.Name), zap.Error(err))
		return nil, err
	}
	return &item, nil
}

// FetchItems lists the vendor's items. The backend identifies the vendor via
// the "vendorid" header rather than a bearer token on this endpoint.
func (s *DefaultCatalogService) FetchItems(ctx context.Context) ([]models.Item, error) {
	vendorID, err := s.requireVendorID()
	if err != nil {
		return nil, err
	}

	data, err := s.API.RequestWithHeaders(ctx, http.MethodGet, "/items/fetch", nil, false, map[string]string{"vendorid": vendorID})
	if err != nil {
		return nil, err
	}

	var items []models.Item
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("failed to decode items: %w", err)
	}
	return items, nil
}

// DeleteItem removes a listing by id. The request shape mirrors fetch:
// DELETE /items/:id with the vendor id in the "vendorid" header.
func (s *DefaultCatalogService) DeleteItem(ctx context.Context, itemID string) error {
	if itemID == "" {
		return utils.ValidationError{Field: "id", Message: "item id is required"}
	}
	vendorID, err := s.requireVendorID()
	if err != nil {
		return err
	}

	_, err = s.API.RequestWithHeaders(ctx, http.MethodDelete, "/items/"+itemID, nil, false, map[string]string{"vendorid": vendorID})
	if err != nil {
		utils.GetLogger().Warn("delete item failed", zap.String("itemId", itemID), zap.Error(err))
	}
	return err
}

func (s *DefaultCatalogService) requireVendorID() (string, error) {
	vendorID, ok, err := s.Store.Get(session.KeyVendorID)
	if err != nil {
		return "", err
	}
	if !ok || vendorID == "" {
		return "", utils.AuthError{Message: "vendor ID is missing, please sign in again"}
	}
	return vendorID, nil
}
