package printer

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDocumentKeyValueAlignment(t *testing.T) {
	doc := NewDocument(32)
	doc.KeyValue("Total", "Rs 200.00")

	out := string(doc.Bytes())
	assert.Contains(t, out, "Total")
	assert.Contains(t, out, "Rs 200.00")

	// The rendered line spans the full paper width
	line := "Total" + strings.Repeat(" ", 32-len("Total")-len("Rs 200.00")) + "Rs 200.00"
	assert.Contains(t, out, line)
}

func TestDocumentItemLine(t *testing.T) {
	doc := NewDocument(32)
	doc.ItemLine(2, "Football", "Rs 13.00")

	assert.Contains(t, string(doc.Bytes()), "2x Football")
}

func TestDocumentStartsWithInit(t *testing.T) {
	doc := NewDocument(32)
	assert.True(t, bytes.HasPrefix(doc.Bytes(), []byte{ESC, '@'}))
}

func TestDocumentCut(t *testing.T) {
	doc := NewDocument(32)
	doc.Cut()
	assert.True(t, bytes.HasSuffix(doc.Bytes(), []byte{GS, 'V', 0x00}))
}
