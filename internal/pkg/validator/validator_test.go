package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsEmpty(t *testing.T) {
	assert.True(t, IsEmpty(""))
	assert.True(t, IsEmpty("   "))
	assert.True(t, IsEmpty("\t\n"))
	assert.False(t, IsEmpty("x"))
	assert.False(t, IsEmpty(" x "))
}

func TestIsValidEmail(t *testing.T) {
	valid := []string{
		"alice@example.com",
		"a.b+tag@sub.domain.co",
		"user_name@host.io",
	}
	for _, email := range valid {
		assert.True(t, IsValidEmail(email), email)
	}

	invalid := []string{
		"",
		"plainaddress",
		"@missing-local.com",
		"user@",
		"user@host",
	}
	for _, email := range invalid {
		assert.False(t, IsValidEmail(email), email)
	}
}

func TestIsValidEmployeeCode(t *testing.T) {
	valid := []string{"EMP001", "HR1234", "STAFF000123"}
	for _, code := range valid {
		assert.True(t, IsValidEmployeeCode(code), code)
	}

	invalid := []string{"", "emp001", "E1", "EMPLOYEE001", "EMP01", "EMP0000001", "001EMP"}
	for _, code := range invalid {
		assert.False(t, IsValidEmployeeCode(code), code)
	}
}

func TestIsValidDate(t *testing.T) {
	date, ok := IsValidDate("2025-03-15")
	assert.True(t, ok)
	assert.Equal(t, 2025, date.Year())

	_, ok = IsValidDate("15-03-2025")
	assert.False(t, ok)
	_, ok = IsValidDate("2025-13-01")
	assert.False(t, ok)
	_, ok = IsValidDate("")
	assert.False(t, ok)
}

func TestIsValidUsername(t *testing.T) {
	assert.True(t, IsValidUsername("alice"))
	assert.True(t, IsValidUsername("alice.h_2-x"))
	assert.False(t, IsValidUsername("ab"))
	assert.False(t, IsValidUsername("has space"))
	assert.False(t, IsValidUsername("weird!char"))
}

func TestIsValidPhoneNumber(t *testing.T) {
	assert.True(t, IsValidPhoneNumber("+62 812-3456-789"))
	assert.True(t, IsValidPhoneNumber("08123456789"))
	assert.False(t, IsValidPhoneNumber("12345"))
	assert.False(t, IsValidPhoneNumber("not-a-number"))
}

func TestValidationErrors(t *testing.T) {
	errs := ValidationErrors{
		{Field: "name", Message: "is required"},
		{Field: "amount", Message: "must be non-negative"},
	}

	assert.Equal(t, "name: is required; amount: must be non-negative", errs.Error())
	assert.Equal(t, map[string]string{
		"name":   "is required",
		"amount": "must be non-negative",
	}, errs.ToMap())
}
