package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/billforge/billforge-api/internal/domain/entity"
)

func TestInvoiceFilename(t *testing.T) {
	tx := &entity.Transaction{
		Number: "INV-2026-0001",
		Client: entity.Client{Name: "Beta Stores & Co"},
	}
	assert.Equal(t, "inv-2026-0001-beta-stores-co.pdf", invoiceFilename(tx))

	// A transaction without a loaded client still gets a clean name.
	tx.Client = entity.Client{}
	assert.Equal(t, "inv-2026-0001.pdf", invoiceFilename(tx))
}
