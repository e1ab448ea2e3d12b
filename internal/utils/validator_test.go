// internal/utils/validator_test.go
package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type barcodePayload struct {
	Code string `validate:"required,barcode"`
}

func TestBarcodeValidation(t *testing.T) {
	valid := []string{
		"12345678",       // EAN-8
		"3017620422003",  // EAN-13
		"12345678901234", // EAN-14
	}
	for _, code := range valid {
		assert.NoError(t, ValidateStruct(&barcodePayload{Code: code}), code)
	}

	invalid := []string{
		"",
		"1234567",         // too short
		"123456789012345", // too long
		"30176204220ab",   // non-numeric
		"3017620 22003",   // embedded space
	}
	for _, code := range invalid {
		assert.Error(t, ValidateStruct(&barcodePayload{Code: code}), code)
	}
}

type passwordPayload struct {
	Password string `validate:"strong_password"`
}

func TestStrongPasswordValidation(t *testing.T) {
	assert.NoError(t, ValidateStruct(&passwordPayload{Password: "TestPass123!"}))
	assert.Error(t, ValidateStruct(&passwordPayload{Password: "weak"}))
	assert.Error(t, ValidateStruct(&passwordPayload{Password: "alllowercase1!"}))
	assert.Error(t, ValidateStruct(&passwordPayload{Password: "NoNumbers!"}))
}

func TestValidationErrorMessages(t *testing.T) {
	err := ValidateStruct(&barcodePayload{Code: "abc"})
	errors := GetValidationErrors(err)

	assert.Len(t, errors, 1)
	assert.Equal(t, "code", errors[0].Field)
	assert.Equal(t, "barcode", errors[0].Tag)
	assert.Equal(t, "Barcode must be 8-14 digits", errors[0].Message)
}
