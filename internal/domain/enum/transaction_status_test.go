package enum

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransactionStatusTransitions(t *testing.T) {
	tests := []struct {
		name    string
		from    TransactionStatus
		to      TransactionStatus
		allowed bool
	}{
		{"draft to issued", TransactionStatusDraft, TransactionStatusIssued, true},
		{"draft to cancelled", TransactionStatusDraft, TransactionStatusCancelled, true},
		{"draft to paid", TransactionStatusDraft, TransactionStatusPaid, false},
		{"issued to paid", TransactionStatusIssued, TransactionStatusPaid, true},
		{"issued to cancelled", TransactionStatusIssued, TransactionStatusCancelled, true},
		{"issued back to draft", TransactionStatusIssued, TransactionStatusDraft, false},
		{"paid is terminal", TransactionStatusPaid, TransactionStatusCancelled, false},
		{"cancelled is terminal", TransactionStatusCancelled, TransactionStatusIssued, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.allowed, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestTransactionStatusJSON(t *testing.T) {
	data, err := json.Marshal(TransactionStatusIssued)
	require.NoError(t, err)
	assert.Equal(t, `"Issued"`, string(data))

	var s TransactionStatus
	require.NoError(t, json.Unmarshal([]byte(`"Paid"`), &s))
	assert.Equal(t, TransactionStatusPaid, s)

	// Numeric form is accepted for older clients
	require.NoError(t, json.Unmarshal([]byte(`3`), &s))
	assert.Equal(t, TransactionStatusCancelled, s)
}
