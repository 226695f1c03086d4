package handler

import (
	"github.com/Malmeu/facturier-sub001/internal/application/service"
	"github.com/Malmeu/facturier-sub001/internal/presentation/http/dto/request"
	"github.com/Malmeu/facturier-sub001/internal/presentation/http/dto/response"
	"github.com/Malmeu/facturier-sub001/pkg/pagination"
	"github.com/gin-gonic/gin"
)

// CustomerHandler handles customer-related HTTP requests
type CustomerHandler struct {
	customerService *service.CustomerService
}

// NewCustomerHandler creates a new customer handler
func NewCustomerHandler(customerService *service.CustomerService) *CustomerHandler {
	return &CustomerHandler{customerService: customerService}
}

func toCustomerInput(req *request.CustomerRequest) *service.CustomerInput {
	return &service.CustomerInput{
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		Address:   req.Address,
		TaxNumber: req.TaxNumber,
		Note:      req.Note,
	}
}

// Create handles customer creation
func (h *CustomerHandler) Create(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req request.CustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	customer, err := h.customerService.Create(c.Request.Context(), *userID, toCustomerInput(&req))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Customer created", customer)
}

// Get handles retrieving a single customer
func (h *CustomerHandler) Get(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, ok := parseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid customer ID")
		return
	}

	customer, err := h.customerService.GetByID(c.Request.Context(), *userID, id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Customer retrieved", customer)
}

// Update handles customer updates
func (h *CustomerHandler) Update(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, ok := parseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid customer ID")
		return
	}

	var req request.CustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	customer, err := h.customerService.Update(c.Request.Context(), *userID, id, toCustomerInput(&req))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Customer updated", customer)
}

// Delete handles customer deletion
func (h *CustomerHandler) Delete(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, ok := parseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid customer ID")
		return
	}

	if err := h.customerService.Delete(c.Request.Context(), *userID, id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// List handles listing customers
func (h *CustomerHandler) List(c *gin.Context) {
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

	result, err := h.customerService.List(c.Request.Context(), *userID, &params, c.Query("search"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Customers retrieved", result)
}
