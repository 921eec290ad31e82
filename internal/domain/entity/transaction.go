package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/billforge/billforge-api/internal/billing"
	"github.com/billforge/billforge-api/internal/domain/enum"
)

// Transaction represents one invoice. Line items are stored as JSONB
// snapshots of whatever shape the client submitted; the billing package
// normalizes them at read time, so older rows keep rendering as the item
// schema evolves.
type Transaction struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	CompanyID uuid.UUID `gorm:"type:uuid;not null;index" json:"company_id"`
	ClientID  uuid.UUID `gorm:"type:uuid;not null;index" json:"client_id"`
	Number    string    `gorm:"size:50;unique;not null" json:"number"`

	Status  enum.TransactionStatus `gorm:"default:0" json:"status"`
	Date    time.Time              `gorm:"not null" json:"date"`
	DueDate *time.Time             `json:"due_date,omitempty"`

	Products []billing.Record `gorm:"type:jsonb;serializer:json" json:"products,omitempty"`
	Services []billing.Record `gorm:"type:jsonb;serializer:json" json:"services,omitempty"`
	// Service holds the single-service shape of rows written before line
	// arrays existed.
	Service []billing.Record `gorm:"type:jsonb;serializer:json" json:"service,omitempty"`

	// Legacy flat fields, still honored when no line arrays are present.
	Amount        *float64 `json:"amount,omitempty"`
	GSTPercentage *float64 `gorm:"column:gst_percentage" json:"gstPercentage,omitempty"`
	TotalAmount   *float64 `json:"totalAmount,omitempty"`
	Description   *string  `gorm:"type:text" json:"description,omitempty"`

	Shipping    billing.Record `gorm:"type:jsonb;serializer:json" json:"shipping,omitempty"`
	NotesHTML   *string        `gorm:"type:text;column:notes_html" json:"notes,omitempty"`
	TemplateKey string         `gorm:"size:20;default:'classic'" json:"template"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Company Company `gorm:"foreignKey:CompanyID" json:"-"`
	Client  Client  `gorm:"foreignKey:ClientID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new transaction
func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Transaction model
func (Transaction) TableName() string {
	return "transactions"
}

// Snapshot renders the row as the loosely-typed record the billing package
// normalizes, mirroring the JSON shape the API accepts.
func (t *Transaction) Snapshot() billing.Record {
	r := billing.Record{}
	if len(t.Products) > 0 {
		r["products"] = recordList(t.Products)
	}
	if len(t.Services) > 0 {
		r["services"] = recordList(t.Services)
	}
	if len(t.Service) > 0 {
		r["service"] = recordList(t.Service)
	}
	if t.Amount != nil {
		r["amount"] = *t.Amount
	}
	if t.GSTPercentage != nil {
		r["gstPercentage"] = *t.GSTPercentage
	}
	if t.TotalAmount != nil {
		r["totalAmount"] = *t.TotalAmount
	}
	putStr(r, "description", t.Description)
	return r
}

// ShippingRecord returns the shipping override block, or nil when the
// invoice ships to the client's own address.
func (t *Transaction) ShippingRecord() billing.Record {
	if len(t.Shipping) == 0 {
		return nil
	}
	return t.Shipping
}

func recordList(rs []billing.Record) []any {
	out := make([]any, len(rs))
	for i, r := range rs {
		out[i] = map[string]any(r)
	}
	return out
}
