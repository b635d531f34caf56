package validator_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/registro/pkg/validator"
)

func TestValidCPF(t *testing.T) {
	t.Parallel()

	t.Run("accepts known valid numbers", func(t *testing.T) {
		t.Parallel()
		for _, cpf := range []string{
			"52998224725",
			"529.982.247-25",
			"11144477735",
			"111.444.777-35",
			"12345678909",
			" 123 456 789 09 ",
		} {
			assert.True(t, validator.ValidCPF(cpf), cpf)
		}
	})

	t.Run("rejects repeated digit sequences", func(t *testing.T) {
		t.Parallel()
		for d := '0'; d <= '9'; d++ {
			cpf := strings.Repeat(string(d), 11)
			assert.False(t, validator.ValidCPF(cpf), cpf)
		}
		assert.False(t, validator.ValidCPF("111.111.111-11"))
	})

	t.Run("rejects wrong digit count", func(t *testing.T) {
		t.Parallel()
		for _, cpf := range []string{"", "5299822472", "529982247250", "abc"} {
			assert.False(t, validator.ValidCPF(cpf), cpf)
		}
	})

	t.Run("rejects wrong check digits", func(t *testing.T) {
		t.Parallel()
		assert.False(t, validator.ValidCPF("52998224726"))
		assert.False(t, validator.ValidCPF("52998224715"))
		assert.False(t, validator.ValidCPF("12345678900"))
	})

	t.Run("any single digit change fails", func(t *testing.T) {
		t.Parallel()
		for _, cpf := range []string{"52998224725", "11144477735"} {
			for i := range len(cpf) {
				for d := byte('0'); d <= '9'; d++ {
					if cpf[i] == d {
						continue
					}
					mutated := cpf[:i] + string(d) + cpf[i+1:]
					assert.False(t, validator.ValidCPF(mutated), mutated)
				}
			}
		}
	})

	t.Run("ignores non ascii digits", func(t *testing.T) {
		t.Parallel()
		// Arabic-Indic digits are unicode digits but not CPF digits.
		assert.False(t, validator.ValidCPF("٥٢٩٩٨٢٢٤٧٢٥"))
	})
}

func TestChecksumValid(t *testing.T) {
	t.Parallel()
	rule := validator.ChecksumValid("O CPF informado é inválido!!")

	assert.Equal(t, validator.KindChecksum, rule.Kind)
	assert.False(t, rule.Violated("529.982.247-25", nil))
	assert.True(t, rule.Violated("529.982.247-24", nil))
	assert.False(t, rule.Violated("", nil), "presence is left to the required rule")
}
