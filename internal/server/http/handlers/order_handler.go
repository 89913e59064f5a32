package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/restomart/restomart/internal/domain/errors"
	"github.com/restomart/restomart/internal/server/http/dto"
)

// OrderHandler turns carts into orders and lists order history.
type OrderHandler struct {
	facade OrderFacade
}

// NewOrderHandler constructs OrderHandler.
func NewOrderHandler(facade OrderFacade) *OrderHandler {
	return &OrderHandler{facade: facade}
}

// Submit handles POST /api/user/orders.
func (h *OrderHandler) Submit(c *gin.Context) {
	var req dto.OrderSubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.AddressID <= 0 {
		c.Status(http.StatusBadRequest)
		return
	}

	summary, err := h.facade.SubmitOrder(c.Request.Context(), req.AddressID, req.Remark)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrAddressMissing),
			errors.Is(err, domainErrors.ErrCartEmpty):
			c.Status(http.StatusUnprocessableEntity)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	c.JSON(http.StatusCreated, dto.OrderSubmitResponse{
		ID:        summary.OrderID,
		Number:    summary.Number,
		OrderTime: summary.OrderTime,
		Amount:    summary.Amount,
	})
}

// List handles GET /api/user/orders.
func (h *OrderHandler) List(c *gin.Context) {
	orders, err := h.facade.Orders(c.Request.Context())
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	if len(orders) == 0 {
		c.Status(http.StatusNoContent)
		return
	}

	resp := make([]dto.OrderResponse, 0, len(orders))
	for _, o := range orders {
		resp = append(resp, dto.OrderResponse{
			ID:        o.ID,
			Number:    o.Number,
			Status:    string(o.Status),
			PayStatus: string(o.PayStatus),
			Amount:    o.Amount,
			Consignee: o.Consignee,
			Phone:     o.Phone,
			OrderTime: o.OrderTime,
		})
	}
	c.JSON(http.StatusOK, resp)
}
