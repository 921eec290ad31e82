package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/billforge/billforge-api/internal/billing"
)

// Client represents a billed party
type Client struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Name      string         `gorm:"size:255;not null" json:"name"`
	Email     *string        `gorm:"size:255" json:"email,omitempty"`
	Phone     *string        `gorm:"size:50" json:"phone,omitempty"`
	Address   *string        `gorm:"type:text" json:"address,omitempty"`
	State     *string        `gorm:"size:100" json:"state,omitempty"`
	GSTIN     *string        `gorm:"size:20;column:gstin" json:"gstin,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Transactions []Transaction `gorm:"foreignKey:ClientID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new client
func (c *Client) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Client model
func (Client) TableName() string {
	return "clients"
}

// Snapshot renders the client as the loosely-typed record the billing
// calculations read.
func (c *Client) Snapshot() billing.Record {
	r := billing.Record{"name": c.Name}
	putStr(r, "email", c.Email)
	putStr(r, "phone", c.Phone)
	putStr(r, "address", c.Address)
	putStr(r, "state", c.State)
	putStr(r, "gstin", c.GSTIN)
	return r
}
