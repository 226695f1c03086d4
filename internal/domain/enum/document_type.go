package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// DocumentType distinguishes invoices from quotes
type DocumentType string

const (
	DocumentTypeInvoice DocumentType = "invoice"
	DocumentTypeQuote   DocumentType = "quote"
)

func (t DocumentType) String() string {
	return string(t)
}

// IsValid reports whether the value is a known document type
func (t DocumentType) IsValid() bool {
	return t == DocumentTypeInvoice || t == DocumentTypeQuote
}

func (t DocumentType) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(t))
}

func (t *DocumentType) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	*t = DocumentType(str)
	return nil
}

func (t DocumentType) Value() (driver.Value, error) {
	return string(t), nil
}

func (t *DocumentType) Scan(value interface{}) error {
	if value == nil {
		*t = DocumentTypeInvoice
		return nil
	}
	switch v := value.(type) {
	case string:
		*t = DocumentType(v)
	case []byte:
		*t = DocumentType(string(v))
	}
	return nil
}
