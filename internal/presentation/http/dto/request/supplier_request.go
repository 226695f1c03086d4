package request

// SupplierRequest represents a supplier create or update request
type SupplierRequest struct {
	Name          string  `json:"name" binding:"required,min=2,max=255"`
	Email         *string `json:"email" binding:"omitempty,email"`
	Phone         *string `json:"phone" binding:"omitempty,max=50"`
	Address       *string `json:"address"`
	TaxNumber     *string `json:"tax_number" binding:"omitempty,max=50"`
	Type          string  `json:"type" binding:"omitempty,oneof=distributor wholesaler producer"`
	AccountHolder *string `json:"account_holder" binding:"omitempty,max=255"`
	AccountNumber *string `json:"account_number" binding:"omitempty,max=100"`
	BankName      *string `json:"bank_name" binding:"omitempty,max=255"`
}
