package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// PaymentStatus represents the state of a recorded payment
type PaymentStatus string

const (
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusPending   PaymentStatus = "pending"
)

func (s PaymentStatus) String() string {
	return string(s)
}

// IsValid reports whether the value is a known payment status
func (s PaymentStatus) IsValid() bool {
	switch s {
	case PaymentStatusCompleted, PaymentStatusPending:
		return true
	}
	return false
}

func (s PaymentStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(s))
}

func (s *PaymentStatus) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	*s = PaymentStatus(str)
	return nil
}

func (s PaymentStatus) Value() (driver.Value, error) {
	return string(s), nil
}

func (s *PaymentStatus) Scan(value interface{}) error {
	if value == nil {
		*s = PaymentStatusCompleted
		return nil
	}
	switch v := value.(type) {
	case string:
		*s = PaymentStatus(v)
	case []byte:
		*s = PaymentStatus(string(v))
	}
	return nil
}
