// Package handlers implements the dev server's HTTP endpoints. They mirror
// the remote backend's external contract so the CLI and SDK can run against a
// local process.
package handlers

import (
	"utsavia/devstore"
	"utsavia/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Handler bundles the endpoint implementations over the dev store.
type Handler struct {
	Store *devstore.Store
}

func NewHandler(store *devstore.Store) *Handler {
	return &Handler{Store: store}
}

func getLogger(c *gin.Context) *zap.Logger {
	return utils.GetLogger()
}

// vendorID reads the id placed on the context by the auth middleware.
func vendorID(c *gin.Context) string {
	return c.GetString("vendorID")
}
