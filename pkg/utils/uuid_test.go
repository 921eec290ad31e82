package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatInvoiceNumber(t *testing.T) {
	tests := []struct {
		name   string
		prefix string
		year   int
		seq    int64
		want   string
	}{
		{"default prefix", "", 2026, 1, "INV-2026-0001"},
		{"custom prefix", "ACME", 2026, 42, "ACME-2026-0042"},
		{"sequence past padding", "INV", 2025, 12345, "INV-2025-12345"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatInvoiceNumber(tt.prefix, tt.year, tt.seq))
		})
	}
}

func TestSlugify(t *testing.T) {
	assert.Equal(t, "acme-traders", Slugify("Acme Traders"))
	assert.Equal(t, "acme-co", Slugify("Acme & Co!"))
	assert.Equal(t, "a-b", Slugify("--a   b--"))
}
