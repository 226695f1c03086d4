package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// MovementReason explains why stock changed
type MovementReason string

const (
	MovementReasonPurchase   MovementReason = "purchase"
	MovementReasonSale       MovementReason = "sale"
	MovementReasonReturn     MovementReason = "return"
	MovementReasonDamage     MovementReason = "damage"
	MovementReasonInventory  MovementReason = "inventory"
	MovementReasonTransfer   MovementReason = "transfer"
	MovementReasonProduction MovementReason = "production"
	MovementReasonOther      MovementReason = "other"
)

func (r MovementReason) String() string {
	return string(r)
}

// IsValid reports whether the value is a known movement reason
func (r MovementReason) IsValid() bool {
	switch r {
	case MovementReasonPurchase, MovementReasonSale, MovementReasonReturn,
		MovementReasonDamage, MovementReasonInventory, MovementReasonTransfer,
		MovementReasonProduction, MovementReasonOther:
		return true
	}
	return false
}

func (r MovementReason) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(r))
}

func (r *MovementReason) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	*r = MovementReason(str)
	return nil
}

func (r MovementReason) Value() (driver.Value, error) {
	return string(r), nil
}

func (r *MovementReason) Scan(value interface{}) error {
	if value == nil {
		*r = MovementReasonOther
		return nil
	}
	switch v := value.(type) {
	case string:
		*r = MovementReason(v)
	case []byte:
		*r = MovementReason(string(v))
	}
	return nil
}
