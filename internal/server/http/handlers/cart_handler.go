package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/restomart/restomart/internal/domain/errors"
	"github.com/restomart/restomart/internal/server/http/dto"
)

// CartHandler manages the authenticated customer's shopping cart.
type CartHandler struct {
	facade CartFacade
}

// NewCartHandler constructs CartHandler.
func NewCartHandler(facade CartFacade) *CartHandler {
	return &CartHandler{facade: facade}
}

// Add handles POST /api/user/cart.
func (h *CartHandler) Add(c *gin.Context) {
	var req dto.CartAddRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.ItemID <= 0 {
		c.Status(http.StatusBadRequest)
		return
	}

	if err := h.facade.AddToCart(c.Request.Context(), req.ItemID, req.Flavor); err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			c.Status(http.StatusNotFound)
			return
		}
		c.Status(http.StatusInternalServerError)
		return
	}

	c.Status(http.StatusOK)
}

// List handles GET /api/user/cart.
func (h *CartHandler) List(c *gin.Context) {
	lines, err := h.facade.CartLines(c.Request.Context())
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}

	resp := make([]dto.CartLineResponse, 0, len(lines))
	for _, l := range lines {
		resp = append(resp, dto.CartLineResponse{
			ItemID:    l.ItemID,
			Name:      l.Name,
			Flavor:    l.Flavor,
			Quantity:  l.Quantity,
			UnitPrice: l.UnitPrice,
			Subtotal:  l.Subtotal(),
		})
	}
	c.JSON(http.StatusOK, resp)
}

// Clear handles DELETE /api/user/cart.
func (h *CartHandler) Clear(c *gin.Context) {
	if err := h.facade.ClearCart(c.Request.Context()); err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	c.Status(http.StatusOK)
}
