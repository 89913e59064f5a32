package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/restomart/restomart/internal/domain/model"
	"github.com/restomart/restomart/internal/server/http/dto"
)

// ShopHandler exposes the global shop open/closed flag.
type ShopHandler struct {
	facade ShopFacade
}

// NewShopHandler constructs ShopHandler.
func NewShopHandler(facade ShopFacade) *ShopHandler {
	return &ShopHandler{facade: facade}
}

// Status handles GET /api/shop/status.
func (h *ShopHandler) Status(c *gin.Context) {
	status, err := h.facade.ShopStatus(c.Request.Context())
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, dto.ShopStatusResponse{Status: string(status)})
}

// SetStatus handles PUT /api/admin/shop/status/:status.
func (h *ShopHandler) SetStatus(c *gin.Context) {
	var status model.ShopStatus
	switch c.Param("status") {
	case "1":
		status = model.ShopOpen
	case "0":
		status = model.ShopClosed
	default:
		c.Status(http.StatusBadRequest)
		return
	}

	if err := h.facade.SetShopStatus(c.Request.Context(), status); err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	c.Status(http.StatusOK)
}
