package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/billforge/billforge-api/internal/billing"
)

// Company represents an issuing business profile. Its state and GSTIN decide
// how GST splits on every invoice it issues.
type Company struct {
	ID            uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Name          string         `gorm:"size:255;not null" json:"name"`
	Address       *string        `gorm:"type:text" json:"address,omitempty"`
	AddressState  *string        `gorm:"size:100" json:"addressState,omitempty"`
	GSTIN         *string        `gorm:"size:20;column:gstin" json:"gstin,omitempty"`
	PAN           *string        `gorm:"size:20;column:pan" json:"pan,omitempty"`
	Phone         *string        `gorm:"size:50" json:"phone,omitempty"`
	Email         *string        `gorm:"size:255" json:"email,omitempty"`
	BankName      *string        `gorm:"size:255" json:"bank_name,omitempty"`
	AccountNumber *string        `gorm:"size:100" json:"account_number,omitempty"`
	IFSC          *string        `gorm:"size:20;column:ifsc" json:"ifsc,omitempty"`
	InvoicePrefix string         `gorm:"size:20;default:'INV'" json:"invoice_prefix"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Transactions []Transaction `gorm:"foreignKey:CompanyID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new company
func (c *Company) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Company model
func (Company) TableName() string {
	return "companies"
}

// Snapshot renders the company as the loosely-typed record the billing
// calculations read.
func (c *Company) Snapshot() billing.Record {
	r := billing.Record{"name": c.Name}
	putStr(r, "address", c.Address)
	putStr(r, "addressState", c.AddressState)
	putStr(r, "gstin", c.GSTIN)
	putStr(r, "pan", c.PAN)
	putStr(r, "phone", c.Phone)
	putStr(r, "email", c.Email)
	return r
}

func putStr(r billing.Record, key string, v *string) {
	if v != nil && *v != "" {
		r[key] = *v
	}
}
