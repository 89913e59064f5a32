package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/restomart/restomart/internal/domain/errors"
	"github.com/restomart/restomart/internal/server/http/dto"
)

// StaffHandler manages back-office accounts.
type StaffHandler struct {
	facade StaffFacade
}

// NewStaffHandler constructs StaffHandler.
func NewStaffHandler(facade StaffFacade) *StaffHandler {
	return &StaffHandler{facade: facade}
}

// Create handles POST /api/admin/staff.
func (h *StaffHandler) Create(c *gin.Context) {
	var req dto.StaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	acc, err := h.facade.CreateStaff(c.Request.Context(), req.Login, req.Password, req.Name)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrInvalidCredentials):
			c.Status(http.StatusBadRequest)
		case errors.Is(err, domainErrors.ErrAlreadyExists):
			c.Status(http.StatusConflict)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	c.JSON(http.StatusCreated, dto.StaffResponse{ID: acc.ID, Login: acc.Login, Name: acc.Name})
}

// Update handles PUT /api/admin/staff.
func (h *StaffHandler) Update(c *gin.Context) {
	var req dto.StaffUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	acc, err := h.facade.UpdateStaff(c.Request.Context(), req.ID, req.Name)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrNotFound):
			c.Status(http.StatusNotFound)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	c.JSON(http.StatusOK, dto.StaffResponse{ID: acc.ID, Login: acc.Login, Name: acc.Name})
}
