package billing

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Record is a loosely typed upstream object, typically decoded from a JSONB
// transaction snapshot. Line rows arrive in several historical shapes, so the
// normalizer reads them through tolerant accessors instead of fixed structs.
type Record = map[string]any

// ItemType distinguishes product and service line items.
type ItemType string

const (
	ItemTypeProduct ItemType = "product"
	ItemTypeService ItemType = "service"
)

// LineItem is a normalized, priced invoice line. Amount is always populated;
// tax fields are zero when no tax applies to the line, which JSON encoding
// treats the same as absent.
type LineItem struct {
	ItemType      ItemType `json:"item_type"`
	Name          string   `json:"name"`
	Description   string   `json:"description,omitempty"`
	Quantity      float64  `json:"quantity,omitempty"`
	Unit          string   `json:"unit,omitempty"`
	PricePerUnit  float64  `json:"price_per_unit,omitempty"`
	Amount        float64  `json:"amount"`
	GSTPercentage float64  `json:"gst_percentage,omitempty"`
	LineTax       float64  `json:"line_tax,omitempty"`
	LineTotal     float64  `json:"line_total,omitempty"`
	Code          string   `json:"code,omitempty"` // HSN for products, SAC for services
}

// HasTax reports whether the line carries a positive GST rate.
func (l LineItem) HasTax() bool {
	return l.GSTPercentage > 0
}

// UnifiedLines converts a transaction snapshot into an ordered list of priced
// line items: products first, then services, then rows from the legacy
// "service" array. When no line arrays are present at all, a single item is
// synthesized from the transaction-level amount fields. serviceNames maps
// service IDs to display names for rows that reference a service by ID only.
// It never fails; missing or malformed fields degrade to defaults.
func UnifiedLines(tx Record, serviceNames map[string]string) []LineItem {
	if tx == nil {
		tx = Record{}
	}

	var lines []LineItem
	for _, v := range asList(tx["products"]) {
		if row := asRecord(v); row != nil {
			lines = append(lines, productLine(row))
		}
	}
	for _, v := range asList(tx["services"]) {
		if row := asRecord(v); row != nil {
			lines = append(lines, serviceLine(row, serviceNames))
		}
	}
	for _, v := range asList(tx["service"]) {
		if row := asRecord(v); row != nil {
			lines = append(lines, serviceLine(row, serviceNames))
		}
	}

	if len(lines) == 0 {
		lines = append(lines, transactionLine(tx))
	}
	return lines
}

func productLine(row Record) LineItem {
	name := firstStr(str(row["name"]), str(row["productName"]))
	if name == "" {
		if p := asRecord(row["product"]); p != nil {
			name = str(p["name"])
		}
	}
	if name == "" {
		name = "Item"
	}

	qty := num(row["quantity"], 1)
	if qty <= 0 {
		qty = 1
	}

	l := LineItem{
		ItemType:    ItemTypeProduct,
		Name:        name,
		Description: str(row["description"]),
		Quantity:    qty,
		Unit:        resolveUnit(row),
		Code:        firstStr(str(row["hsn"]), str(row["code"])),
	}
	fillAmounts(&l, row, qty)
	return l
}

func serviceLine(row Record, serviceNames map[string]string) LineItem {
	name := firstStr(str(row["name"]), str(row["serviceName"]))
	if name == "" {
		if s := asRecord(row["service"]); s != nil {
			name = str(s["serviceName"])
		} else if id := str(row["service"]); id != "" {
			name = serviceNames[id]
		}
	}
	if name == "" {
		name = "Item"
	}

	l := LineItem{
		ItemType:    ItemTypeService,
		Name:        name,
		Description: str(row["description"]),
		// Services are billed as a whole regardless of any quantity in the source row.
		Quantity: 1,
		Code:     firstStr(str(row["sac"]), str(row["code"])),
	}
	fillAmounts(&l, row, 1)
	return l
}

// transactionLine synthesizes the single fallback line from transaction-level
// fields when the snapshot carries no line arrays.
func transactionLine(tx Record) LineItem {
	amount := num(tx["amount"], 0)
	gst := num(tx["gstPercentage"], 0)
	total := num(tx["totalAmount"], 0)

	tax := 0.0
	if total > amount {
		tax = total - amount
	} else if gst > 0 {
		tax = amount * gst / 100
	}

	lineTotal := total
	if lineTotal <= 0 {
		lineTotal = amount + tax
	}
	if lineTotal <= 0 {
		lineTotal = amount
	}

	return LineItem{
		ItemType:      ItemTypeService,
		Name:          "Item",
		Description:   str(tx["description"]),
		Quantity:      1,
		Amount:        amount,
		GSTPercentage: positive(gst),
		LineTax:       positive(tax),
		LineTotal:     lineTotal,
	}
}

// fillAmounts derives Amount, PricePerUnit and the tax fields from a row,
// guarding every division and preferring explicit source values.
func fillAmounts(l *LineItem, row Record, qty float64) {
	amount := num(row["amount"], 0)
	price := num(row["pricePerUnit"], 0)
	if amount == 0 {
		amount = price * qty
	}
	if price == 0 && qty > 0 {
		price = amount / qty
	}

	gst := num(row["gstPercentage"], 0)
	tax := num(row["lineTax"], 0)
	if tax <= 0 && gst > 0 {
		tax = amount * gst / 100
	}

	lineTotal := num(row["lineTotal"], 0)
	if lineTotal <= 0 {
		lineTotal = amount + positive(tax)
	}
	if lineTotal <= 0 {
		lineTotal = amount
	}

	l.Amount = amount
	l.PricePerUnit = price
	l.GSTPercentage = positive(gst)
	l.LineTax = positive(tax)
	l.LineTotal = lineTotal
}

// resolveUnit applies the product unit fallback chain. "Other" with a custom
// unit wins, then unitType, then the legacy unit/unitName fields.
func resolveUnit(row Record) string {
	unitType := str(row["unitType"])
	if unitType == "Other" {
		if other := str(row["otherUnit"]); other != "" {
			return other
		}
	}
	if unitType != "" {
		return unitType
	}
	if u := str(row["unit"]); u != "" {
		return u
	}
	if u := str(row["unitName"]); u != "" {
		return u
	}
	return "piece"
}

// num coerces a loosely typed value to a float64, returning def for nil,
// empty strings and anything non-numeric.
func num(v any, def float64) float64 {
	switch n := v.(type) {
	case nil:
		return def
	case float64:
		return n
	case float32:
		return float64(n)
	case int:
		return float64(n)
	case int32:
		return float64(n)
	case int64:
		return float64(n)
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return def
		}
		return f
	case string:
		s := strings.TrimSpace(n)
		if s == "" {
			return def
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return def
		}
		return f
	default:
		return def
	}
}

// str returns the trimmed string value of v, or "" for non-strings.
func str(v any) string {
	if s, ok := v.(string); ok {
		return strings.TrimSpace(s)
	}
	return ""
}

func firstStr(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}

func positive(f float64) float64 {
	if f > 0 {
		return f
	}
	return 0
}

func asRecord(v any) Record {
	if r, ok := v.(map[string]any); ok {
		return r
	}
	return nil
}

// asList normalizes the slice shapes that show up after JSON decoding or when
// callers hand in already-typed rows.
func asList(v any) []any {
	switch s := v.(type) {
	case []any:
		return s
	case []map[string]any:
		// Record is an alias for map[string]any, so []Record lands here too.
		out := make([]any, len(s))
		for i, r := range s {
			out[i] = r
		}
		return out
	default:
		return nil
	}
}

// pick walks keys in priority order and returns the first non-empty value.
// A key may contain a dotted path ("tax.gstin") to reach nested records.
func pick(r Record, keys ...string) any {
	for _, key := range keys {
		cur := r
		parts := strings.Split(key, ".")
		for i, part := range parts {
			if cur == nil {
				break
			}
			v, ok := cur[part]
			if !ok {
				break
			}
			if i == len(parts)-1 {
				if s, isStr := v.(string); isStr && strings.TrimSpace(s) == "" {
					break
				}
				if v != nil {
					return v
				}
				break
			}
			cur = asRecord(v)
		}
	}
	return nil
}
