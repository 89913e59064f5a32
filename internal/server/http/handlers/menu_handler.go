package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/restomart/restomart/internal/domain/errors"
	"github.com/restomart/restomart/internal/domain/model"
	"github.com/restomart/restomart/internal/server/http/dto"
)

// MenuHandler manages dishes and their flavors.
type MenuHandler struct {
	facade MenuFacade
}

// NewMenuHandler constructs MenuHandler.
func NewMenuHandler(facade MenuFacade) *MenuHandler {
	return &MenuHandler{facade: facade}
}

// Create handles POST /api/admin/dishes.
func (h *MenuHandler) Create(c *gin.Context) {
	var req dto.DishRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}
	if req.Name == "" || req.Price.IsNegative() {
		c.Status(http.StatusBadRequest)
		return
	}

	item := dishFromRequest(&req)
	if err := h.facade.SaveDish(c.Request.Context(), item); err != nil {
		if errors.Is(err, domainErrors.ErrAlreadyExists) {
			c.Status(http.StatusConflict)
			return
		}
		c.Status(http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusCreated, dishToResponse(item))
}

// Update handles PUT /api/admin/dishes.
func (h *MenuHandler) Update(c *gin.Context) {
	var req dto.DishRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.ID == 0 {
		c.Status(http.StatusBadRequest)
		return
	}

	item := dishFromRequest(&req)
	if err := h.facade.UpdateDish(c.Request.Context(), item); err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			c.Status(http.StatusNotFound)
			return
		}
		c.Status(http.StatusInternalServerError)
		return
	}

	c.Status(http.StatusOK)
}

// Delete handles DELETE /api/admin/dishes?ids=1,2,3.
func (h *MenuHandler) Delete(c *gin.Context) {
	ids, err := parseIDList(c.Query("ids"))
	if err != nil || len(ids) == 0 {
		c.Status(http.StatusBadRequest)
		return
	}

	if err := h.facade.DeleteDishes(c.Request.Context(), ids); err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrItemOnSale),
			errors.Is(err, domainErrors.ErrItemReferencedByCombo):
			c.Status(http.StatusConflict)
		case errors.Is(err, domainErrors.ErrNotFound):
			c.Status(http.StatusNotFound)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	c.Status(http.StatusOK)
}

// SetStatus handles POST /api/admin/dishes/status/:status?id=N.
func (h *MenuHandler) SetStatus(c *gin.Context) {
	id, err := strconv.ParseInt(c.Query("id"), 10, 64)
	if err != nil || id <= 0 {
		c.Status(http.StatusBadRequest)
		return
	}

	var status model.ItemStatus
	switch c.Param("status") {
	case "1":
		status = model.ItemStatusEnabled
	case "0":
		status = model.ItemStatusDisabled
	default:
		c.Status(http.StatusBadRequest)
		return
	}

	if err := h.facade.SetDishStatus(c.Request.Context(), id, status); err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			c.Status(http.StatusNotFound)
			return
		}
		c.Status(http.StatusInternalServerError)
		return
	}

	c.Status(http.StatusOK)
}

// Get handles GET /api/admin/dishes/:id.
func (h *MenuHandler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.Status(http.StatusBadRequest)
		return
	}

	item, err := h.facade.Dish(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			c.Status(http.StatusNotFound)
			return
		}
		c.Status(http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, dishToResponse(item))
}

// ListByCategory handles GET /api/admin/dishes?category_id=N.
func (h *MenuHandler) ListByCategory(c *gin.Context) {
	categoryID, err := strconv.ParseInt(c.Query("category_id"), 10, 64)
	if err != nil || categoryID <= 0 {
		c.Status(http.StatusBadRequest)
		return
	}

	items, err := h.facade.DishesByCategory(c.Request.Context(), categoryID)
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}

	resp := make([]dto.DishResponse, 0, len(items))
	for i := range items {
		resp = append(resp, dishToResponse(&items[i]))
	}
	c.JSON(http.StatusOK, resp)
}

func dishFromRequest(req *dto.DishRequest) *model.MenuItem {
	item := &model.MenuItem{
		ID:          req.ID,
		Name:        req.Name,
		CategoryID:  req.CategoryID,
		Price:       req.Price,
		Description: req.Description,
		Status:      model.ItemStatusDisabled,
	}
	if req.Status == string(model.ItemStatusEnabled) {
		item.Status = model.ItemStatusEnabled
	}
	for _, f := range req.Flavors {
		item.Flavors = append(item.Flavors, model.Flavor{Name: f.Name, Value: f.Value})
	}
	return item
}

func dishToResponse(item *model.MenuItem) dto.DishResponse {
	resp := dto.DishResponse{
		ID:          item.ID,
		Name:        item.Name,
		CategoryID:  item.CategoryID,
		Price:       item.Price,
		Description: item.Description,
		Status:      string(item.Status),
	}
	for _, f := range item.Flavors {
		resp.Flavors = append(resp.Flavors, dto.FlavorPayload{Name: f.Name, Value: f.Value})
	}
	return resp
}

func parseIDList(raw string) ([]int64, error) {
	if raw == "" {
		return nil, nil
	}
	parts := strings.Split(raw, ",")
	ids := make([]int64, 0, len(parts))
	for _, p := range parts {
		id, err := strconv.ParseInt(strings.TrimSpace(p), 10, 64)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}
