package request

// UpdateSettingsRequest represents a document settings update request
type UpdateSettingsRequest struct {
	InvoiceFormat  *string  `json:"invoice_format" binding:"omitempty,min=1,max=100"`
	QuoteFormat    *string  `json:"quote_format" binding:"omitempty,min=1,max=100"`
	Currency       *string  `json:"currency" binding:"omitempty,min=1,max=10"`
	DefaultTaxRate *float64 `json:"default_tax_rate" binding:"omitempty,min=0,max=100"`
}
