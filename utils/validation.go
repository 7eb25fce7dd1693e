// utils/validation.go
package utils

import (
	"regexp"
	"strings"
)

// ValidatePhone checks if a phone number is in a valid international format
func ValidatePhone(phone string) bool {
	// Clean the phone number
	cleaned := strings.ReplaceAll(phone, " ", "")
	cleaned = strings.ReplaceAll(cleaned, "-", "")
	cleaned = strings.ReplaceAll(cleaned, "(", "")
	cleaned = strings.ReplaceAll(cleaned, ")", "")

	// Allows + prefix followed by 7-15 digits
	regex := `^\+?[1-9]\d{1,14}$`
	match, _ := regexp.MatchString(regex, cleaned)
	return match
}

// SameInvoiceNumber checks that every invoice number in a bulk supply batch
// matches the first one. An empty batch or a blank first number fails.
func SameInvoiceNumber(invoiceNumbers []string) bool {
	if len(invoiceNumbers) == 0 || strings.TrimSpace(invoiceNumbers[0]) == "" {
		return false
	}
	for _, n := range invoiceNumbers[1:] {
		if n != invoiceNumbers[0] {
			return false
		}
	}
	return true
}
