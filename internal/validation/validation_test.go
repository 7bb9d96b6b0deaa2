package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateUsername(t *testing.T) {
	assert.NoError(t, ValidateUsername("abc"))
	assert.NoError(t, ValidateUsername(strings.Repeat("a", 50)))
	assert.NoError(t, ValidateUsername("  padded  "))

	assert.Error(t, ValidateUsername("ab"))
	assert.Error(t, ValidateUsername(""))
	assert.Error(t, ValidateUsername(strings.Repeat("a", 51)))
}

func TestValidateEmail(t *testing.T) {
	valid := []string{
		"alice@x.com",
		"a.b+tag@kampus.ac.id",
		"user_name%x@sub.domain.org",
	}
	for _, e := range valid {
		assert.NoError(t, ValidateEmail(e), e)
	}

	invalid := []string{
		"",
		"plainstring",
		"missing@tld",
		"@no-local.com",
		"two@@at.com",
		strings.Repeat("a", 95) + "@x.com", // over 100 chars
	}
	for _, e := range invalid {
		assert.Error(t, ValidateEmail(e), e)
	}
}

func TestValidatePassword(t *testing.T) {
	assert.NoError(t, ValidatePassword("secret"))
	assert.NoError(t, ValidatePassword(strings.Repeat("x", 128)))

	assert.Error(t, ValidatePassword("12345"))
	assert.Error(t, ValidatePassword(""))
	assert.Error(t, ValidatePassword(strings.Repeat("x", 129)))
}
