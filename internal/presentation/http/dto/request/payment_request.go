package request

import "time"

// RecordPaymentRequest represents a payment creation request
type RecordPaymentRequest struct {
	Amount    float64    `json:"amount" binding:"required,gt=0"`
	Method    string     `json:"method" binding:"omitempty,oneof=cash card transfer cheque other"`
	Date      *time.Time `json:"date"`
	Status    string     `json:"status" binding:"omitempty,oneof=completed pending"`
	Reference *string    `json:"reference" binding:"omitempty,max=100"`
	Note      *string    `json:"note"`
}
