package handler

import (
	"github.com/Malmeu/facturier-sub001/internal/application/service"
	"github.com/Malmeu/facturier-sub001/internal/domain/enum"
	"github.com/Malmeu/facturier-sub001/internal/presentation/http/dto/request"
	"github.com/Malmeu/facturier-sub001/internal/presentation/http/dto/response"
	"github.com/Malmeu/facturier-sub001/pkg/pagination"
	"github.com/gin-gonic/gin"
)

// SupplierHandler handles supplier-related HTTP requests
type SupplierHandler struct {
	supplierService *service.SupplierService
}

// NewSupplierHandler creates a new supplier handler
func NewSupplierHandler(supplierService *service.SupplierService) *SupplierHandler {
	return &SupplierHandler{supplierService: supplierService}
}

func toSupplierInput(req *request.SupplierRequest) *service.SupplierInput {
	return &service.SupplierInput{
		Name:          req.Name,
		Email:         req.Email,
		Phone:         req.Phone,
		Address:       req.Address,
		TaxNumber:     req.TaxNumber,
		Type:          enum.SupplierType(req.Type),
		AccountHolder: req.AccountHolder,
		AccountNumber: req.AccountNumber,
		BankName:      req.BankName,
	}
}

// Create handles supplier creation
func (h *SupplierHandler) Create(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req request.SupplierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	supplier, err := h.supplierService.Create(c.Request.Context(), *userID, toSupplierInput(&req))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Supplier created", supplier)
}

// Get handles retrieving a single supplier
func (h *SupplierHandler) Get(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, ok := parseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid supplier ID")
		return
	}

	supplier, err := h.supplierService.GetByID(c.Request.Context(), *userID, id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Supplier retrieved", supplier)
}

// Update handles supplier updates
func (h *SupplierHandler) Update(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, ok := parseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid supplier ID")
		return
	}

	var req request.SupplierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	supplier, err := h.supplierService.Update(c.Request.Context(), *userID, id, toSupplierInput(&req))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Supplier updated", supplier)
}

// Delete handles supplier deletion
func (h *SupplierHandler) Delete(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, ok := parseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid supplier ID")
		return
	}

	if err := h.supplierService.Delete(c.Request.Context(), *userID, id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// List handles listing suppliers
func (h *SupplierHandler) List(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var params pagination.PaginationParams
	if err := c.ShouldBindQuery(&params); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	result, err := h.supplierService.List(c.Request.Context(), *userID, &params, c.Query("search"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Suppliers retrieved", result)
}
