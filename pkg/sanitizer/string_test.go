package sanitizer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/registro/pkg/sanitizer"
)

func TestNormalizeWhitespace(t *testing.T) {
	assert.Equal(t, "Maria da Silva", sanitizer.NormalizeWhitespace("  Maria \t da\n\nSilva "))
}

func TestKeepDigits(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "formatted cpf", input: "529.982.247-25", expected: "52998224725"},
		{name: "phone", input: "(11) 98765-4321", expected: "11987654321"},
		{name: "no digits", input: "abc", expected: ""},
		{name: "non ascii digits dropped", input: "١٢3", expected: "3"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, sanitizer.KeepDigits(tt.input))
		})
	}
}

func TestMaskString(t *testing.T) {
	assert.Equal(t, "se****23", sanitizer.MaskString("secret23", 2))
	assert.Equal(t, "****", sanitizer.MaskString("abcd", 2))
	assert.Equal(t, "s****t", sanitizer.MaskString("secret", -5))
	assert.Equal(t, "j**o", sanitizer.MaskString("joão", 1))
}
