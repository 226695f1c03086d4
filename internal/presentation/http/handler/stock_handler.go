package handler

import (
	"github.com/Malmeu/facturier-sub001/internal/application/service"
	"github.com/Malmeu/facturier-sub001/internal/domain/enum"
	"github.com/Malmeu/facturier-sub001/internal/domain/repository"
	"github.com/Malmeu/facturier-sub001/internal/presentation/http/dto/request"
	"github.com/Malmeu/facturier-sub001/internal/presentation/http/dto/response"
	"github.com/Malmeu/facturier-sub001/pkg/pagination"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// StockHandler handles stock movement HTTP requests
type StockHandler struct {
	stockService *service.StockService
}

// NewStockHandler creates a new stock handler
func NewStockHandler(stockService *service.StockService) *StockHandler {
	return &StockHandler{stockService: stockService}
}

// CreateMovement handles recording a manual stock movement
func (h *StockHandler) CreateMovement(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req request.CreateMovementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	movement, err := h.stockService.CreateMovement(c.Request.Context(), &service.CreateMovementInput{
		UserID:    *userID,
		ProductID: req.ProductID,
		Type:      enum.MovementType(req.Type),
		Quantity:  req.Quantity,
		Reason:    enum.MovementReason(req.Reason),
		Note:      req.Note,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Movement recorded", movement)
}

// ListMovements handles listing stock movements
func (h *StockHandler) ListMovements(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var filter request.MovementFilterRequest
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	params := &repository.MovementFilterParams{
		Pagination: &pagination.PaginationParams{
			Page:    filter.Page,
			PerPage: filter.PerPage,
		},
	}

	if filter.ProductID != "" {
		if pid, err := uuid.Parse(filter.ProductID); err == nil {
			params.ProductID = &pid
		}
	}
	if filter.Type != "" {
		t := enum.MovementType(filter.Type)
		params.Type = &t
	}
	if filter.Reason != "" {
		r := enum.MovementReason(filter.Reason)
		params.Reason = &r
	}

	result, err := h.stockService.ListMovements(c.Request.Context(), *userID, params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Movements retrieved", result)
}

// ListProductMovements handles listing the movement history of one product
func (h *StockHandler) ListProductMovements(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, ok := parseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid product ID")
		return
	}

	movements, err := h.stockService.ListProductMovements(c.Request.Context(), *userID, id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Movements retrieved", movements)
}
