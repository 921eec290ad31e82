package printer

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDocumentInit(t *testing.T) {
	d := NewDocument(48)
	assert.True(t, bytes.HasPrefix(d.Bytes(), []byte{ESC, '@'}))
}

func TestKeyValueAlignment(t *testing.T) {
	d := NewDocument(32)
	d.Reset()
	d.KeyValue("Subtotal", "100.00")

	line := d.Bytes()[2:] // skip the init sequence
	assert.Equal(t, byte(LF), line[len(line)-1])
	assert.Len(t, line[:len(line)-1], 32)
}

func TestItemLineQuantities(t *testing.T) {
	tests := []struct {
		name string
		qty  float64
		want string
	}{
		{"integer quantity", 2, "2x Widget"},
		{"fractional quantity", 1.5, "1.5x Widget"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewDocument(32)
			d.Reset()
			d.ItemLine(tt.qty, "Widget", "20.00")
			assert.Contains(t, string(d.Bytes()), tt.want)
		})
	}
}

func TestCutCommand(t *testing.T) {
	d := NewDocument(32)
	d.Cut()
	assert.True(t, bytes.HasSuffix(d.Bytes(), []byte{GS, 'V', 0x00}))
}
