package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const labeledInvoiceText = "Invoice Number: INV-4821\nBuyer Name: Acme Co\nAmount Due: $1,204.50\nDate: March 3, 2024"

func TestExtractLabeledInvoice(t *testing.T) {
	fields := Extract(labeledInvoiceText)

	require.True(t, fields.InvoiceNumber.Found)
	assert.Equal(t, "INV-4821", fields.InvoiceNumber.Value)

	require.True(t, fields.BuyerName.Found)
	assert.Equal(t, "Acme Co", fields.BuyerName.Value)

	require.True(t, fields.Amount.Found)
	assert.Equal(t, "$1,204.50", fields.Amount.Value)

	require.True(t, fields.Date.Found)
	assert.Equal(t, "March 3, 2024", fields.Date.Value)

	assert.False(t, fields.Company.Found)
	assert.False(t, fields.Email.Found)
	assert.False(t, fields.Phone.Found)
	assert.False(t, fields.ShippingAddress.Found)

	assert.Equal(t, labeledInvoiceText, fields.RawText)
}

func TestExtractNoMatches(t *testing.T) {
	text := "lorem ipsum dolor sit amet nothing invoice shaped here"
	fields := Extract(text)

	assert.False(t, fields.BuyerName.Found)
	assert.False(t, fields.InvoiceNumber.Found)
	assert.False(t, fields.Amount.Found)
	assert.False(t, fields.Date.Found)

	assert.Equal(t, Unknown, fields.BuyerName.OrUnknown())
	assert.Equal(t, Unknown, fields.InvoiceNumber.OrUnknown())
	assert.Equal(t, Unknown, fields.Amount.OrUnknown())
	assert.Equal(t, Unknown, fields.Date.OrUnknown())

	assert.Equal(t, "", fields.Company.OrEmpty())
	assert.Equal(t, "", fields.Email.OrEmpty())

	assert.Equal(t, text, fields.RawText)
}

func TestExtractBareFallbacks(t *testing.T) {
	text := "ref INV-77 billed to jane@corp.example for $300 on April 12, 2025"
	fields := Extract(text)

	require.True(t, fields.InvoiceNumber.Found)
	assert.Equal(t, "INV-77", fields.InvoiceNumber.Value)

	require.True(t, fields.Amount.Found)
	assert.Equal(t, "$300", fields.Amount.Value)

	require.True(t, fields.Date.Found)
	assert.Equal(t, "April 12, 2025", fields.Date.Value)

	require.True(t, fields.Email.Found)
	assert.Equal(t, "jane@corp.example", fields.Email.Value)
}

func TestExtractLabeledBeatsBare(t *testing.T) {
	text := "INV-1\nInvoice Number: INV-2\nName: Fallback Person\nBuyer Name: Primary Person"
	fields := Extract(text)

	assert.Equal(t, "INV-2", fields.InvoiceNumber.Value)
	assert.Equal(t, "Primary Person", fields.BuyerName.Value)
}

func TestExtractContactFields(t *testing.T) {
	text := "Company: Globex LLC\nEmail: billing@globex.example\nPhone: 555-012-3456\nShipping Address: 1 Main St\nSuite 4"
	fields := Extract(text)

	assert.Equal(t, "Globex LLC", fields.Company.Value)
	assert.Equal(t, "billing@globex.example", fields.Email.Value)
	assert.Equal(t, "555-012-3456", fields.Phone.Value)
	assert.Equal(t, "1 Main St\nSuite 4", fields.ShippingAddress.Value)
}

func TestExtractAlternateLabels(t *testing.T) {
	text := "Organization: Initech\nTel: 555 987 6543"
	fields := Extract(text)

	assert.Equal(t, "Initech", fields.Company.Value)
	assert.Equal(t, "555 987 6543", fields.Phone.Value)
}

func TestExtractDeterministic(t *testing.T) {
	first := Extract(labeledInvoiceText)
	second := Extract(labeledInvoiceText)
	assert.Equal(t, first, second)
}
