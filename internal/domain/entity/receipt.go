package entity

// ReceiptHeader holds the business header printed at the top of a receipt.
type ReceiptHeader struct {
	BusinessName string `json:"business_name"`
	Address      string `json:"address,omitempty"`
	Phone        string `json:"phone,omitempty"`
	GSTIN        string `json:"gstin,omitempty"`
}

// ReceiptItem represents a single line item on a receipt.
type ReceiptItem struct {
	Name      string  `json:"name"`
	Quantity  float64 `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
	Total     float64 `json:"total"`
}

// Receipt is a value object representing a printable receipt.
// It is NOT a database entity - it is composed from transaction data at print time.
type Receipt struct {
	Header    ReceiptHeader `json:"header"`
	InvoiceNo string        `json:"invoice_no"`
	Date      string        `json:"date"`
	Client    string        `json:"client,omitempty"`
	Items     []ReceiptItem `json:"items"`
	SubTotal  float64       `json:"sub_total"`
	CGST      float64       `json:"cgst"`
	SGST      float64       `json:"sgst"`
	IGST      float64       `json:"igst"`
	Total     float64       `json:"total"`
}
