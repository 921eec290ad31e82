package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// TransactionStatus represents the lifecycle state of an invoice transaction
type TransactionStatus int

const (
	TransactionStatusDraft     TransactionStatus = 0
	TransactionStatusIssued    TransactionStatus = 1
	TransactionStatusPaid      TransactionStatus = 2
	TransactionStatusCancelled TransactionStatus = 3
)

func (s TransactionStatus) String() string {
	return [...]string{"Draft", "Issued", "Paid", "Cancelled"}[s]
}

// CanTransitionTo reports whether the status may move to the target state.
// Draft can be issued or cancelled, issued invoices can be paid or
// cancelled, and paid or cancelled invoices are terminal.
func (s TransactionStatus) CanTransitionTo(target TransactionStatus) bool {
	switch s {
	case TransactionStatusDraft:
		return target == TransactionStatusIssued || target == TransactionStatusCancelled
	case TransactionStatusIssued:
		return target == TransactionStatusPaid || target == TransactionStatusCancelled
	default:
		return false
	}
}

func (s TransactionStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *TransactionStatus) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		// Try unmarshaling as int
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*s = TransactionStatus(i)
		return nil
	}
	switch str {
	case "Draft":
		*s = TransactionStatusDraft
	case "Issued":
		*s = TransactionStatusIssued
	case "Paid":
		*s = TransactionStatusPaid
	case "Cancelled":
		*s = TransactionStatusCancelled
	}
	return nil
}

func (s TransactionStatus) Value() (driver.Value, error) {
	return int64(s), nil
}

func (s *TransactionStatus) Scan(value interface{}) error {
	if value == nil {
		*s = TransactionStatusDraft
		return nil
	}
	switch v := value.(type) {
	case int64:
		*s = TransactionStatus(v)
	case int:
		*s = TransactionStatus(v)
	}
	return nil
}
