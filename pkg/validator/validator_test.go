package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateEmail(t *testing.T) {
	assert.True(t, ValidateEmail("maria.perez@clinica.example"))
	assert.False(t, ValidateEmail("maria.perez"))
	assert.False(t, ValidateEmail("@clinica.example"))
}

func TestValidatePhone(t *testing.T) {
	assert.True(t, ValidatePhone("+79991234567"))
	assert.True(t, ValidatePhone("8 (999) 123-45-67"))
	assert.False(t, ValidatePhone("12345"))
}

func TestValidatePassword(t *testing.T) {
	assert.True(t, ValidatePassword("secret1"))
	assert.False(t, ValidatePassword("abc"))
}

func TestValidateNamePart(t *testing.T) {
	assert.True(t, ValidateNamePart("Мария"))
	assert.True(t, ValidateNamePart("Anna-Maria"))
	assert.False(t, ValidateNamePart("Мария123"))
}

func TestFormatPhone(t *testing.T) {
	assert.Equal(t, "+79991234567", FormatPhone("8 (999) 123-45-67"))
	assert.Equal(t, "+79991234567", FormatPhone("79991234567"))
	assert.Equal(t, "+79991234567", FormatPhone("+79991234567"))
}

func TestFormatName(t *testing.T) {
	assert.Equal(t, "Anna-Maria Lopez", FormatName("anna-maria lopez"))
	assert.Equal(t, "Perez", FormatName("PEREZ"))
}

func TestSanitizeString(t *testing.T) {
	assert.Equal(t, "scriptalert(1)/script", SanitizeString(`<script>alert(1)</script>`))
	assert.Equal(t, "обычный текст", SanitizeString("обычный текст"))
}
