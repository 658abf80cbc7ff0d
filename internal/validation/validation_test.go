package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateEmail(t *testing.T) {
	assert.NoError(t, ValidateEmail("user@example.com"))
	assert.NoError(t, ValidateEmail("first.last+tag@sub.example.co"))
	assert.Error(t, ValidateEmail("not-an-email"))
	assert.Error(t, ValidateEmail("user@"))
	assert.Error(t, ValidateEmail(""))
}

func TestValidatePassword(t *testing.T) {
	assert.NoError(t, ValidatePassword("hunter22"))
	assert.Error(t, ValidatePassword("short"))
	assert.Error(t, ValidatePassword(strings.Repeat("x", 65)))
	assert.NoError(t, ValidatePassword(strings.Repeat("x", 64)))
}

func TestValidateName(t *testing.T) {
	assert.NoError(t, ValidateName("first_name", "Ada"))
	assert.Error(t, ValidateName("first_name", ""))
	assert.Error(t, ValidateName("last_name", strings.Repeat("a", 51)))
	// multibyte names are counted in characters
	assert.NoError(t, ValidateName("last_name", strings.Repeat("é", 50)))
}

func TestValidateTweetContent(t *testing.T) {
	assert.NoError(t, ValidateTweetContent("hello"))
	assert.Error(t, ValidateTweetContent(""))
	assert.Error(t, ValidateTweetContent(strings.Repeat("a", 281)))
	assert.NoError(t, ValidateTweetContent(strings.Repeat("a", 280)))
	// 280 multibyte runes exceed 280 bytes but are still valid
	assert.NoError(t, ValidateTweetContent(strings.Repeat("é", 280)))
}

func TestParseBirthDate(t *testing.T) {
	bd, err := ParseBirthDate("1991-02-03")
	require.NoError(t, err)
	require.NotNil(t, bd)
	assert.Equal(t, 1991, bd.Year())

	bd, err = ParseBirthDate("")
	require.NoError(t, err)
	assert.Nil(t, bd)

	_, err = ParseBirthDate("03/02/1991")
	assert.Error(t, err)
}
