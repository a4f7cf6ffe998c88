package handlers

import (
	"net/http"

	"utsavia/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AddItemHandler stores a new listing. Per the backend contract this endpoint
// is unauthenticated; the vendor travels in the payload.
func (h *Handler) AddItemHandler(c *gin.Context) {
	logger := getLogger(c)

	var req models.AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid add-item payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request: " + err.Error()})
		return
	}
	if req.Name == "" || req.Vendor == "" || len(req.Prices) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Name, vendor and at least one price are required"})
		return
	}

	item := h.Store.AddItem(req)
	c.JSON(http.StatusCreated, item)
}

// FetchItemsHandler lists the items of the vendor named in the "vendorid"
// header.
func (h *Handler) FetchItemsHandler(c *gin.Context) {
	vendorID := c.GetHeader("vendorid")
	if vendorID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "vendorid header is required"})
		return
	}
	c.JSON(http.StatusOK, h.Store.ItemsByVendor(vendorID))
}

// DeleteItemHandler removes a listing after checking vendor ownership.
func (h *Handler) DeleteItemHandler(c *gin.Context) {
	vendorID := c.GetHeader("vendorid")
	if vendorID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "vendorid header is required"})
		return
	}

	if err := h.Store.DeleteItem(c.Param("id"), vendorID); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Item deleted"})
}
