package handler

import (
	"time"

	"github.com/Malmeu/facturier-sub001/internal/application/service"
	"github.com/Malmeu/facturier-sub001/internal/domain/enum"
	"github.com/Malmeu/facturier-sub001/internal/domain/repository"
	"github.com/Malmeu/facturier-sub001/internal/presentation/http/dto/request"
	"github.com/Malmeu/facturier-sub001/internal/presentation/http/dto/response"
	"github.com/Malmeu/facturier-sub001/pkg/pagination"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// DocumentHandler handles invoice and quote HTTP requests
type DocumentHandler struct {
	documentService *service.DocumentService
	paymentService  *service.PaymentService
}

// NewDocumentHandler creates a new document handler
func NewDocumentHandler(documentService *service.DocumentService, paymentService *service.PaymentService) *DocumentHandler {
	return &DocumentHandler{
		documentService: documentService,
		paymentService:  paymentService,
	}
}

func toItemInputs(items []request.DocumentItemRequest) []service.DocumentItemInput {
	inputs := make([]service.DocumentItemInput, 0, len(items))
	for _, it := range items {
		inputs = append(inputs, service.DocumentItemInput{
			ProductID:     it.ProductID,
			Description:   it.Description,
			Quantity:      it.Quantity,
			UnitPrice:     it.UnitPrice,
			TaxRate:       it.TaxRate,
			DiscountValue: it.DiscountValue,
			DiscountType:  enum.DiscountType(it.DiscountType),
		})
	}
	return inputs
}

// Create handles document creation
func (h *DocumentHandler) Create(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req request.CreateDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	doc, err := h.documentService.Create(c.Request.Context(), &service.CreateDocumentInput{
		UserID:        *userID,
		CustomerID:    req.CustomerID,
		Type:          enum.DocumentType(req.Type),
		Date:          req.Date,
		DueDate:       req.DueDate,
		Status:        enum.DocumentStatus(req.Status),
		DiscountValue: req.DiscountValue,
		DiscountType:  enum.DiscountType(req.DiscountType),
		Note:          req.Note,
		Items:         toItemInputs(req.Items),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Document created", doc)
}

// Get handles retrieving a single document
func (h *DocumentHandler) Get(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, ok := parseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid document ID")
		return
	}

	doc, err := h.documentService.GetByID(c.Request.Context(), *userID, id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Document retrieved", doc)
}

// Update handles editing a draft document
func (h *DocumentHandler) Update(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, ok := parseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid document ID")
		return
	}

	var req request.UpdateDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	input := &service.UpdateDocumentInput{
		CustomerID:    req.CustomerID,
		Date:          req.Date,
		DueDate:       req.DueDate,
		DiscountValue: req.DiscountValue,
		Note:          req.Note,
	}
	if req.DiscountType != nil {
		dt := enum.DiscountType(*req.DiscountType)
		input.DiscountType = &dt
	}
	if req.Items != nil {
		input.Items = toItemInputs(req.Items)
	}

	doc, err := h.documentService.Update(c.Request.Context(), *userID, id, input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Document updated", doc)
}

// UpdateStatus handles a document status change
func (h *DocumentHandler) UpdateStatus(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, ok := parseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid document ID")
		return
	}

	var req request.UpdateDocumentStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	doc, err := h.documentService.UpdateStatus(c.Request.Context(), *userID, id, enum.DocumentStatus(req.Status))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Status updated", doc)
}

// Convert handles converting a quote into an invoice
func (h *DocumentHandler) Convert(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, ok := parseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid document ID")
		return
	}

	invoice, err := h.documentService.ConvertQuote(c.Request.Context(), *userID, id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Quote converted to invoice", invoice)
}

// Delete handles deleting a draft document
func (h *DocumentHandler) Delete(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, ok := parseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid document ID")
		return
	}

	if err := h.documentService.Delete(c.Request.Context(), *userID, id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// List handles listing documents with filters
func (h *DocumentHandler) List(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var filter request.DocumentFilterRequest
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	params := &repository.DocumentFilterParams{
		Pagination: &pagination.PaginationParams{
			Page:    filter.Page,
			PerPage: filter.PerPage,
		},
		Search:    filter.Search,
		SortBy:    filter.SortBy,
		SortOrder: filter.SortOrder,
	}

	if filter.Type != "" {
		t := enum.DocumentType(filter.Type)
		params.Type = &t
	}
	if filter.Status != "" {
		s := enum.DocumentStatus(filter.Status)
		params.Status = &s
	}
	if filter.CustomerID != "" {
		if cid, err := uuid.Parse(filter.CustomerID); err == nil {
			params.CustomerID = &cid
		}
	}
	if filter.StartDate != "" {
		if d, err := time.Parse("2006-01-02", filter.StartDate); err == nil {
			params.StartDate = &d
		}
	}
	if filter.EndDate != "" {
		if d, err := time.Parse("2006-01-02", filter.EndDate); err == nil {
			params.EndDate = &d
		}
	}

	result, err := h.documentService.List(c.Request.Context(), *userID, params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Documents retrieved", result)
}

// ListDue handles listing invoices with an outstanding amount
func (h *DocumentHandler) ListDue(c *gin.Context) {
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

	result, err := h.documentService.ListDue(c.Request.Context(), *userID, &params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Due documents retrieved", result)
}

// RecordPayment handles recording a payment against a document
func (h *DocumentHandler) RecordPayment(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, ok := parseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid document ID")
		return
	}

	var req request.RecordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	payment, err := h.paymentService.RecordPayment(c.Request.Context(), &service.RecordPaymentInput{
		UserID:     *userID,
		DocumentID: id,
		Amount:     req.Amount,
		Method:     enum.PaymentMethod(req.Method),
		Date:       req.Date,
		Status:     enum.PaymentStatus(req.Status),
		Reference:  req.Reference,
		Note:       req.Note,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Payment recorded", payment)
}

// ListPayments handles listing the payments of a document
func (h *DocumentHandler) ListPayments(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, ok := parseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid document ID")
		return
	}

	payments, err := h.paymentService.ListByDocument(c.Request.Context(), *userID, id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Payments retrieved", payments)
}
