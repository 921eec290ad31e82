package billing

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnifiedLines_SynthesizesFallbackLine(t *testing.T) {
	tests := []struct {
		name string
		tx   Record
		want LineItem
	}{
		{
			name: "nil transaction",
			tx:   nil,
			want: LineItem{ItemType: ItemTypeService, Name: "Item", Quantity: 1},
		},
		{
			name: "amount and rate only",
			tx:   Record{"amount": 500.0, "gstPercentage": 18.0},
			want: LineItem{
				ItemType: ItemTypeService, Name: "Item", Quantity: 1,
				Amount: 500, GSTPercentage: 18, LineTax: 90, LineTotal: 590,
			},
		},
		{
			name: "explicit total wins over computed tax",
			tx:   Record{"amount": 100.0, "totalAmount": 118.0, "description": "Retainer"},
			want: LineItem{
				ItemType: ItemTypeService, Name: "Item", Description: "Retainer",
				Quantity: 1, Amount: 100, LineTax: 18, LineTotal: 118,
			},
		},
		{
			name: "empty arrays still synthesize",
			tx:   Record{"products": []any{}, "services": []any{}, "amount": "250"},
			want: LineItem{
				ItemType: ItemTypeService, Name: "Item", Quantity: 1,
				Amount: 250, LineTotal: 250,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lines := UnifiedLines(tt.tx, nil)
			require.Len(t, lines, 1)
			assert.Equal(t, tt.want, lines[0])
		})
	}
}

func TestUnifiedLines_ProductNameResolution(t *testing.T) {
	tests := []struct {
		name string
		row  Record
		want string
	}{
		{"direct name", Record{"name": "Bolt"}, "Bolt"},
		{"productName fallback", Record{"productName": "Washer"}, "Washer"},
		{"nested product object", Record{"product": map[string]any{"name": "Nut"}}, "Nut"},
		{"no signal", Record{"quantity": 2}, "Item"},
		{"whitespace name falls through", Record{"name": "  ", "productName": "Screw"}, "Screw"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lines := UnifiedLines(Record{"products": []any{tt.row}}, nil)
			require.Len(t, lines, 1)
			assert.Equal(t, tt.want, lines[0].Name)
			assert.Equal(t, ItemTypeProduct, lines[0].ItemType)
		})
	}
}

func TestUnifiedLines_ServiceNameResolution(t *testing.T) {
	names := map[string]string{"svc-9": "Consulting"}

	tests := []struct {
		name string
		row  Record
		want string
	}{
		{"direct name", Record{"name": "Audit"}, "Audit"},
		{"serviceName fallback", Record{"serviceName": "Filing"}, "Filing"},
		{"nested service object", Record{"service": map[string]any{"serviceName": "Advisory"}}, "Advisory"},
		{"id lookup", Record{"service": "svc-9"}, "Consulting"},
		{"unknown id", Record{"service": "svc-404"}, "Item"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lines := UnifiedLines(Record{"services": []any{tt.row}}, names)
			require.Len(t, lines, 1)
			assert.Equal(t, tt.want, lines[0].Name)
			assert.Equal(t, ItemTypeService, lines[0].ItemType)
		})
	}
}

func TestUnifiedLines_ServiceQuantityAlwaysOne(t *testing.T) {
	for _, qty := range []any{nil, 0, 5, 12.5, "30", "junk"} {
		lines := UnifiedLines(Record{
			"services": []any{Record{"name": "Support", "quantity": qty, "pricePerUnit": 100.0}},
		}, nil)
		require.Len(t, lines, 1)
		assert.Equal(t, 1.0, lines[0].Quantity, "quantity %v", qty)
		assert.Equal(t, 100.0, lines[0].Amount)
	}
}

func TestUnifiedLines_UnitResolution(t *testing.T) {
	tests := []struct {
		name string
		row  Record
		want string
	}{
		{"other unit wins", Record{"unitType": "Other", "otherUnit": "ft"}, "ft"},
		{"other without custom falls to unitType", Record{"unitType": "Other"}, "Other"},
		{"plain unitType", Record{"unitType": "kg"}, "kg"},
		{"legacy unit", Record{"unit": "box"}, "box"},
		{"legacy unitName", Record{"unitName": "dozen"}, "dozen"},
		{"default", Record{}, "piece"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lines := UnifiedLines(Record{"products": []any{tt.row}}, nil)
			require.Len(t, lines, 1)
			assert.Equal(t, tt.want, lines[0].Unit)
		})
	}
}

func TestUnifiedLines_AmountDerivation(t *testing.T) {
	tests := []struct {
		name       string
		row        Record
		wantAmount float64
		wantPrice  float64
		wantTotal  float64
	}{
		{
			name:       "amount from price and quantity",
			row:        Record{"pricePerUnit": 50.0, "quantity": 3.0},
			wantAmount: 150, wantPrice: 50, wantTotal: 150,
		},
		{
			name:       "price from amount and quantity",
			row:        Record{"amount": 200.0, "quantity": 4.0},
			wantAmount: 200, wantPrice: 50, wantTotal: 200,
		},
		{
			name:       "string numerics tolerated",
			row:        Record{"amount": "99.5", "quantity": "2"},
			wantAmount: 99.5, wantPrice: 49.75, wantTotal: 99.5,
		},
		{
			name:       "garbage degrades to zero",
			row:        Record{"amount": "n/a", "pricePerUnit": map[string]any{}},
			wantAmount: 0, wantPrice: 0, wantTotal: 0,
		},
		{
			name:       "explicit lineTotal passes through",
			row:        Record{"amount": 100.0, "lineTotal": 118.0},
			wantAmount: 100, wantPrice: 100, wantTotal: 118,
		},
		{
			name:       "tax derived from rate feeds total",
			row:        Record{"amount": 100.0, "gstPercentage": 18.0},
			wantAmount: 100, wantPrice: 100, wantTotal: 118,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lines := UnifiedLines(Record{"products": []any{tt.row}}, nil)
			require.Len(t, lines, 1)
			assert.InDelta(t, tt.wantAmount, lines[0].Amount, 1e-9)
			assert.InDelta(t, tt.wantPrice, lines[0].PricePerUnit, 1e-9)
			assert.InDelta(t, tt.wantTotal, lines[0].LineTotal, 1e-9)
		})
	}
}

func TestUnifiedLines_Ordering(t *testing.T) {
	tx := Record{
		"products": []any{Record{"name": "P1"}, Record{"name": "P2"}},
		"services": []any{Record{"name": "S1"}},
		"service":  []any{Record{"name": "L1"}},
	}
	lines := UnifiedLines(tx, nil)
	require.Len(t, lines, 4)
	got := []string{lines[0].Name, lines[1].Name, lines[2].Name, lines[3].Name}
	assert.Equal(t, []string{"P1", "P2", "S1", "L1"}, got)
}

func TestUnifiedLines_TypedRowSlices(t *testing.T) {
	// Rows arrive as []Record when they come from entity fields rather than
	// decoded JSON; both shapes must normalize identically.
	typed := Record{"products": []Record{{"name": "Cable", "quantity": 2.0, "pricePerUnit": 40.0}}}
	decoded := Record{"products": []any{map[string]any{"name": "Cable", "quantity": 2.0, "pricePerUnit": 40.0}}}

	a := UnifiedLines(typed, nil)
	b := UnifiedLines(decoded, nil)
	require.Len(t, a, 1)
	assert.Equal(t, b, a)
	assert.Equal(t, "Cable", a[0].Name)
	assert.InDelta(t, 80, a[0].Amount, 1e-9)
}

func TestUnifiedLines_Idempotent(t *testing.T) {
	raw := `{"products":[{"name":"Cable","quantity":"3","pricePerUnit":"40","gstPercentage":12,"hsn":"8544"}],
		"services":[{"serviceName":"Install","amount":500}]}`
	var tx Record
	require.NoError(t, json.Unmarshal([]byte(raw), &tx))

	first := UnifiedLines(tx, nil)
	second := UnifiedLines(tx, nil)
	assert.Equal(t, first, second)
}

func TestUnifiedLines_CodePassthrough(t *testing.T) {
	tx := Record{
		"products": []any{Record{"name": "Cable", "hsn": "8544"}},
		"services": []any{Record{"name": "Install", "sac": "9987"}},
	}
	lines := UnifiedLines(tx, nil)
	require.Len(t, lines, 2)
	assert.Equal(t, "8544", lines[0].Code)
	assert.Equal(t, "9987", lines[1].Code)
}

func TestNum(t *testing.T) {
	tests := []struct {
		in   any
		def  float64
		want float64
	}{
		{nil, 0, 0},
		{nil, 7, 7},
		{"", 3, 3},
		{"  ", 3, 3},
		{"12.5", 0, 12.5},
		{"abc", 4, 4},
		{42, 0, 42},
		{int64(8), 0, 8},
		{3.25, 0, 3.25},
		{json.Number("9.75"), 0, 9.75},
		{true, 5, 5},
		{[]any{1}, 5, 5},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, num(tt.in, tt.def), "num(%v, %v)", tt.in, tt.def)
	}
}
