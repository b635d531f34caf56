package registration_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/registro/internal/registration"
	"github.com/dmitrymomot/registro/pkg/validator"
)

func validValues() map[string]string {
	return map[string]string{
		registration.FieldName:            "Maria Silva",
		registration.FieldNationalID:      "529.982.247-25",
		registration.FieldBirthDate:       "1990-05-17",
		registration.FieldGender:          "feminino",
		registration.FieldPhone:           "(11) 91234-5678",
		registration.FieldEmail:           "maria@example.com",
		registration.FieldPassword:        "segredo1",
		registration.FieldPasswordConfirm: "segredo1",
	}
}

func TestFields(t *testing.T) {
	t.Parallel()

	t.Run("declares fields in display order", func(t *testing.T) {
		t.Parallel()

		var names []string
		for _, f := range registration.Fields() {
			names = append(names, f.Name)
		}
		assert.Equal(t, []string{
			registration.FieldName,
			registration.FieldNationalID,
			registration.FieldBirthDate,
			registration.FieldGender,
			registration.FieldPhone,
			registration.FieldEmail,
			registration.FieldPassword,
			registration.FieldPasswordConfirm,
		}, names)
	})

	t.Run("every rule is well formed", func(t *testing.T) {
		t.Parallel()

		for _, f := range registration.Fields() {
			for _, rule := range f.Rules {
				assert.NoError(t, rule.Validate(), "field %s", f.Name)
				assert.NotEmpty(t, rule.Message, "field %s", f.Name)
			}
		}
	})

	t.Run("messages are returned verbatim", func(t *testing.T) {
		t.Parallel()

		cases := []struct {
			field string
			kind  validator.Kind
			want  string
		}{
			{registration.FieldName, validator.KindRequired, "O campo nome é obrigatório!!"},
			{registration.FieldName, validator.KindMinLength, "O nome precisa ter pelo menos 3 caracteres!!"},
			{registration.FieldNationalID, validator.KindMaxLength, "O CPF só pode ter no máximo 14 caracteres!!"},
			{registration.FieldPhone, validator.KindMinLength, "O número do celular precisa ter pelo menos 10 caracteres!!"},
			{registration.FieldPhone, validator.KindMaxLength, "O número do celular pode ter no máximo 16 caracteres!!"},
			{registration.FieldPassword, validator.KindMinLength, "A senha deve ter pelo menos 6 caracteres!!"},
			{registration.FieldPassword, validator.KindMaxBytes, "A senha é longa demais, use no máximo 72 bytes!!"},
		}
		for _, tc := range cases {
			got, ok := registration.Message(tc.field, tc.kind)
			require.True(t, ok, "%s/%s", tc.field, tc.kind)
			assert.Equal(t, tc.want, got)
		}

		_, ok := registration.Message(registration.FieldGender, validator.KindMinLength)
		assert.False(t, ok)
		_, ok = registration.Message("unknown", validator.KindRequired)
		assert.False(t, ok)
	})
}

func TestNewForm(t *testing.T) {
	t.Parallel()

	t.Run("starts invalid", func(t *testing.T) {
		t.Parallel()

		f := registration.NewForm()
		assert.False(t, f.IsValid())
		assert.Equal(t, []validator.Kind{validator.KindRequired}, f.State(registration.FieldName).Errors)
		assert.Empty(t, f.State(registration.FieldPhone).Errors, "phone is optional")
	})

	t.Run("valid values make the form valid", func(t *testing.T) {
		t.Parallel()

		f := registration.NewForm()
		for name, value := range validValues() {
			require.NoError(t, f.SetField(name, value))
		}
		assert.True(t, f.IsValid())
	})

	t.Run("short phone is reported", func(t *testing.T) {
		t.Parallel()

		f := registration.NewForm()
		require.NoError(t, f.SetField(registration.FieldPhone, "119123456"))
		assert.Equal(t, []validator.Kind{validator.KindMinLength}, f.State(registration.FieldPhone).Errors)
	})

	t.Run("national id checksum", func(t *testing.T) {
		t.Parallel()

		f := registration.NewForm()
		require.NoError(t, f.SetField(registration.FieldNationalID, "529.982.247-24"))
		assert.Equal(t, []validator.Kind{validator.KindChecksum}, f.State(registration.FieldNationalID).Errors)

		require.NoError(t, f.SetField(registration.FieldNationalID, "111.111.111-11"))
		assert.Equal(t, []validator.Kind{validator.KindChecksum}, f.State(registration.FieldNationalID).Errors)

		require.NoError(t, f.SetField(registration.FieldNationalID, "52998224725"))
		assert.Empty(t, f.State(registration.FieldNationalID).Errors)
	})

	t.Run("password is bounded in bytes", func(t *testing.T) {
		t.Parallel()

		f := registration.NewForm()
		require.NoError(t, f.SetField(registration.FieldPassword, strings.Repeat("a", 72)))
		assert.Empty(t, f.State(registration.FieldPassword).Errors)

		require.NoError(t, f.SetField(registration.FieldPassword, strings.Repeat("a", 73)))
		assert.Equal(t, []validator.Kind{validator.KindMaxBytes}, f.State(registration.FieldPassword).Errors)

		// 40 characters, 80 bytes.
		require.NoError(t, f.SetField(registration.FieldPassword, strings.Repeat("ç", 40)))
		assert.Equal(t, []validator.Kind{validator.KindMaxBytes}, f.State(registration.FieldPassword).Errors)
	})

	t.Run("password confirmation follows either side", func(t *testing.T) {
		t.Parallel()

		f := registration.NewForm()
		require.NoError(t, f.SetField(registration.FieldPasswordConfirm, "segredo1"))
		assert.Contains(t, f.State(registration.FieldPasswordConfirm).Errors, validator.KindEqualsField)

		require.NoError(t, f.SetField(registration.FieldPassword, "segredo1"))
		assert.Empty(t, f.State(registration.FieldPasswordConfirm).Errors)

		require.NoError(t, f.SetField(registration.FieldPassword, "segredo2"))
		assert.Equal(t, []validator.Kind{validator.KindEqualsField}, f.State(registration.FieldPasswordConfirm).Errors)
	})
}
