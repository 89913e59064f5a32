package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/restomart/restomart/internal/domain/model"
	"github.com/restomart/restomart/internal/server/http/dto"
)

// AddressHandler manages a customer's delivery addresses.
type AddressHandler struct {
	facade AddressFacade
}

// NewAddressHandler constructs AddressHandler.
func NewAddressHandler(facade AddressFacade) *AddressHandler {
	return &AddressHandler{facade: facade}
}

// Create handles POST /api/user/addresses.
func (h *AddressHandler) Create(c *gin.Context) {
	var req dto.AddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}
	if req.Consignee == "" || req.Phone == "" || req.Detail == "" {
		c.Status(http.StatusBadRequest)
		return
	}

	addr := &model.Address{
		Consignee: req.Consignee,
		Phone:     req.Phone,
		Detail:    req.Detail,
		IsDefault: req.IsDefault,
	}
	if err := h.facade.CreateAddress(c.Request.Context(), addr); err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusCreated, dto.AddressResponse{
		ID:        addr.ID,
		Consignee: addr.Consignee,
		Phone:     addr.Phone,
		Detail:    addr.Detail,
		IsDefault: addr.IsDefault,
	})
}

// List handles GET /api/user/addresses.
func (h *AddressHandler) List(c *gin.Context) {
	addrs, err := h.facade.Addresses(c.Request.Context())
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}

	resp := make([]dto.AddressResponse, 0, len(addrs))
	for _, a := range addrs {
		resp = append(resp, dto.AddressResponse{
			ID:        a.ID,
			Consignee: a.Consignee,
			Phone:     a.Phone,
			Detail:    a.Detail,
			IsDefault: a.IsDefault,
		})
	}
	c.JSON(http.StatusOK, resp)
}
