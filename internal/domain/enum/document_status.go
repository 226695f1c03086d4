package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// DocumentStatus represents the lifecycle state of a document
type DocumentStatus string

const (
	DocumentStatusDraft     DocumentStatus = "draft"
	DocumentStatusSent      DocumentStatus = "sent"
	DocumentStatusPartial   DocumentStatus = "partial"
	DocumentStatusPaid      DocumentStatus = "paid"
	DocumentStatusConverted DocumentStatus = "converted"
)

func (s DocumentStatus) String() string {
	return string(s)
}

// IsValid reports whether the value is a known document status
func (s DocumentStatus) IsValid() bool {
	switch s {
	case DocumentStatusDraft, DocumentStatusSent, DocumentStatusPartial,
		DocumentStatusPaid, DocumentStatusConverted:
		return true
	}
	return false
}

func (s DocumentStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(s))
}

func (s *DocumentStatus) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	*s = DocumentStatus(str)
	return nil
}

func (s DocumentStatus) Value() (driver.Value, error) {
	return string(s), nil
}

func (s *DocumentStatus) Scan(value interface{}) error {
	if value == nil {
		*s = DocumentStatusDraft
		return nil
	}
	switch v := value.(type) {
	case string:
		*s = DocumentStatus(v)
	case []byte:
		*s = DocumentStatus(string(v))
	}
	return nil
}
