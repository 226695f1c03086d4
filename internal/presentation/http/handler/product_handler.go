package handler

import (
	"github.com/Malmeu/facturier-sub001/internal/application/service"
	"github.com/Malmeu/facturier-sub001/internal/domain/repository"
	"github.com/Malmeu/facturier-sub001/internal/presentation/http/dto/request"
	"github.com/Malmeu/facturier-sub001/internal/presentation/http/dto/response"
	"github.com/Malmeu/facturier-sub001/pkg/pagination"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ProductHandler handles product-related HTTP requests
type ProductHandler struct {
	productService *service.ProductService
}

// NewProductHandler creates a new product handler
func NewProductHandler(productService *service.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

// Create handles product creation
func (h *ProductHandler) Create(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req request.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	product, err := h.productService.Create(c.Request.Context(), &service.CreateProductInput{
		UserID:         *userID,
		SupplierID:     req.SupplierID,
		Name:           req.Name,
		Code:           req.Code,
		Description:    req.Description,
		Unit:           req.Unit,
		PurchasePrice:  req.PurchasePrice,
		SellingPrice:   req.SellingPrice,
		TaxRate:        req.TaxRate,
		TrackInventory: req.TrackInventory,
		CurrentStock:   req.CurrentStock,
		MinStock:       req.MinStock,
		MaxStock:       req.MaxStock,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Product created", product)
}

// Get handles retrieving a single product
func (h *ProductHandler) Get(c *gin.Context) {
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

	product, err := h.productService.GetByID(c.Request.Context(), *userID, id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Product retrieved", product)
}

// Update handles product updates
func (h *ProductHandler) Update(c *gin.Context) {
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

	var req request.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	product, err := h.productService.Update(c.Request.Context(), *userID, id, &service.UpdateProductInput{
		SupplierID:     req.SupplierID,
		Name:           req.Name,
		Description:    req.Description,
		Unit:           req.Unit,
		PurchasePrice:  req.PurchasePrice,
		SellingPrice:   req.SellingPrice,
		TaxRate:        req.TaxRate,
		TrackInventory: req.TrackInventory,
		MinStock:       req.MinStock,
		MaxStock:       req.MaxStock,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Product updated", product)
}

// Delete handles product deletion
func (h *ProductHandler) Delete(c *gin.Context) {
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

	if err := h.productService.Delete(c.Request.Context(), *userID, id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// List handles listing products
func (h *ProductHandler) List(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var filter request.ProductFilterRequest
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	params := &repository.ProductFilterParams{
		Pagination: &pagination.PaginationParams{
			Page:    filter.Page,
			PerPage: filter.PerPage,
		},
		Search:    filter.Search,
		LowStock:  filter.LowStock,
		SortBy:    filter.SortBy,
		SortOrder: filter.SortOrder,
	}

	if filter.SupplierID != "" {
		if sid, err := uuid.Parse(filter.SupplierID); err == nil {
			params.SupplierID = &sid
		}
	}

	result, err := h.productService.List(c.Request.Context(), *userID, params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Products retrieved", result)
}

// ListLowStock handles listing products at or below their minimum stock
func (h *ProductHandler) ListLowStock(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	products, err := h.productService.ListLowStock(c.Request.Context(), *userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Low stock products retrieved", products)
}
