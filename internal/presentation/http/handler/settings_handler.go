package handler

import (
	"github.com/Malmeu/facturier-sub001/internal/application/service"
	"github.com/Malmeu/facturier-sub001/internal/presentation/http/dto/request"
	"github.com/Malmeu/facturier-sub001/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
)

// SettingsHandler handles document settings HTTP requests
type SettingsHandler struct {
	settingsService *service.SettingsService
}

// NewSettingsHandler creates a new settings handler
func NewSettingsHandler(settingsService *service.SettingsService) *SettingsHandler {
	return &SettingsHandler{settingsService: settingsService}
}

// Get returns the user's document settings
func (h *SettingsHandler) Get(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	settings, err := h.settingsService.GetOrCreate(c.Request.Context(), *userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Settings retrieved", settings)
}

// Update modifies the user's document settings
func (h *SettingsHandler) Update(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req request.UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	settings, err := h.settingsService.Update(c.Request.Context(), *userID, &service.UpdateSettingsInput{
		InvoiceFormat:  req.InvoiceFormat,
		QuoteFormat:    req.QuoteFormat,
		Currency:       req.Currency,
		DefaultTaxRate: req.DefaultTaxRate,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Settings updated", settings)
}
