package request

// CustomerRequest represents a customer create or update request
type CustomerRequest struct {
	Name      string  `json:"name" binding:"required,min=2,max=255"`
	Email     *string `json:"email" binding:"omitempty,email"`
	Phone     *string `json:"phone" binding:"omitempty,max=50"`
	Address   *string `json:"address"`
	TaxNumber *string `json:"tax_number" binding:"omitempty,max=50"`
	Note      *string `json:"note"`
}
