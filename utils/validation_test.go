package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidatePhone(t *testing.T) {
	valid := []string{"+33612345678", "33612345678", "+1 (415) 555-0100"}
	for _, phone := range valid {
		assert.True(t, ValidatePhone(phone), phone)
	}

	invalid := []string{"", "abc", "+0123"}
	for _, phone := range invalid {
		assert.False(t, ValidatePhone(phone), phone)
	}
}

func TestNormalizeSlug(t *testing.T) {
	assert.Equal(t, "le-gentleman", NormalizeSlug("  Le Gentleman  "))
	assert.Equal(t, "barber-94", NormalizeSlug("barber-94"))
}

func TestValidateSlug(t *testing.T) {
	assert.True(t, ValidateSlug("le-gentleman"))
	assert.True(t, ValidateSlug("barber-94"))
	assert.False(t, ValidateSlug("Le Gentleman"))
	assert.False(t, ValidateSlug("-leading"))
	assert.False(t, ValidateSlug(""))
}
