package handlers

import (
	"net/http"

	"utsavia/config"
	"utsavia/models"
	"utsavia/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// SignUpHandler registers a vendor and returns tokens plus the vendor id.
func (h *Handler) SignUpHandler(c *gin.Context) {
	logger := getLogger(c)

	var req models.SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid sign-up request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request: " + err.Error()})
		return
	}
	if req.Name == "" || req.Email == "" || len(req.Password) < 6 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Name, email and a password of at least 6 characters are required"})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.Error("Password hashing failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Sign-up failed"})
		return
	}

	vendor, err := h.Store.CreateVendor(req.Name, req.Email, hash)
	if err != nil {
		c.JSON(http.StatusConflict, gin.H{"message": err.Error()})
		return
	}

	accessToken, refreshToken, err := h.issueTokens(vendor.ID)
	if err != nil {
		logger.Error("Token generation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Sign-up failed"})
		return
	}

	if config.AppConfig.SeedDemoBookings {
		h.Store.SeedDemoBookings(vendor.ID)
	}

	c.JSON(http.StatusCreated, gin.H{
		"token":        accessToken,
		"refreshToken": refreshToken,
		"vendorId":     vendor.ID,
		"message":      "Account created successfully",
	})
}

// SignInHandler authenticates a vendor and returns fresh tokens.
func (h *Handler) SignInHandler(c *gin.Context) {
	logger := getLogger(c)

	var req models.SignInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid sign-in request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request: " + err.Error()})
		return
	}

	vendor, ok := h.Store.VendorByEmail(req.Email)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid email or password"})
		return
	}
	if err := bcrypt.CompareHashAndPassword(vendor.PasswordHash, []byte(req.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid email or password"})
		return
	}

	accessToken, refreshToken, err := h.issueTokens(vendor.ID)
	if err != nil {
		logger.Error("Token generation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Sign-in failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token":        accessToken,
		"refreshToken": refreshToken,
		"vendorId":     vendor.ID,
		"message":      "Signed in successfully",
	})
}

// RefreshTokenHandler exchanges a valid refresh token for a new access token.
func (h *Handler) RefreshTokenHandler(c *gin.Context) {
	logger := getLogger(c)

	var req models.RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.RefreshToken == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Refresh token is required"})
		return
	}

	vendorID, err := utils.ExtractVendorID(req.RefreshToken, "refresh")
	if err != nil {
		logger.Warn("Refresh token rejected", zap.Error(err))
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid refresh token"})
		return
	}

	vendor, ok := h.Store.VendorByID(vendorID)
	if !ok || vendor.RefreshToken != req.RefreshToken {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Refresh token no longer valid"})
		return
	}

	accessToken, err := utils.GenerateToken(vendorID, "access", config.AccessTokenTTL())
	if err != nil {
		logger.Error("Token generation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Token refresh failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"accessToken": accessToken})
}

// GetProfileHandler returns the vendor's stored business profile.
func (h *Handler) GetProfileHandler(c *gin.Context) {
	profile, err := h.Store.ProfileByVendor(vendorID(c))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, profile)
}

// UpdateProfileHandler validates and stores the vendor's business profile.
func (h *Handler) UpdateProfileHandler(c *gin.Context) {
	logger := getLogger(c)

	var profile models.Profile
	if err := c.ShouldBindJSON(&profile); err != nil {
		logger.Error("Invalid profile payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request: " + err.Error()})
		return
	}
	if err := profile.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	if err := h.Store.SaveProfile(vendorID(c), profile); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Profile updated successfully"})
}

// issueTokens generates an access/refresh pair and records the refresh token.
func (h *Handler) issueTokens(vendorID string) (string, string, error) {
	accessToken, err := utils.GenerateToken(vendorID, "access", config.AccessTokenTTL())
	if err != nil {
		return "", "", err
	}
	refreshToken, err := utils.GenerateToken(vendorID, "refresh", config.RefreshTokenTTL())
	if err != nil {
		return "", "", err
	}
	h.Store.SetRefreshToken(vendorID, refreshToken)
	return accessToken, refreshToken, nil
}
