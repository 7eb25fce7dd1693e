package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSameInvoiceNumber(t *testing.T) {
	assert.True(t, SameInvoiceNumber([]string{"INV-001"}))
	assert.True(t, SameInvoiceNumber([]string{"INV-001", "INV-001", "INV-001"}))

	assert.False(t, SameInvoiceNumber([]string{"INV-001", "INV-002"}))
	assert.False(t, SameInvoiceNumber(nil))
	assert.False(t, SameInvoiceNumber([]string{""}))
	assert.False(t, SameInvoiceNumber([]string{"  "}))
}

func TestValidatePhone(t *testing.T) {
	assert.True(t, ValidatePhone("+61412345678"))
	assert.True(t, ValidatePhone("(212) 555-0123"))
	assert.False(t, ValidatePhone("not-a-number"))
	assert.False(t, ValidatePhone(""))
}
