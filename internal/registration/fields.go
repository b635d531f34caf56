package registration

import (
	"github.com/dmitrymomot/registro/internal/form"
	"github.com/dmitrymomot/registro/pkg/validator"
)

// Registration form field names.
const (
	FieldName            = "name"
	FieldNationalID      = "nationalId"
	FieldBirthDate       = "birthDate"
	FieldGender          = "gender"
	FieldPhone           = "phone"
	FieldEmail           = "email"
	FieldPassword        = "password"
	FieldPasswordConfirm = "passwordConfirm"
)

// Field lengths shared by rules and messages.
const (
	nameMinLength       = 3
	nationalIDMinLength = 11
	nationalIDMaxLength = 14
	phoneMinLength      = 10
	phoneMaxLength      = 16
	passwordMinLength   = 6
	passwordMaxBytes    = 72 // bcrypt refuses to hash longer input
)

// Fields returns the registration rule table in display order.
// Messages are shown to users verbatim.
func Fields() []form.Field {
	return []form.Field{
		{Name: FieldName, Rules: []validator.Rule{
			validator.Required("O campo nome é obrigatório!!"),
			validator.MinLength(nameMinLength, "O nome precisa ter pelo menos 3 caracteres!!"),
		}},
		{Name: FieldNationalID, Rules: []validator.Rule{
			validator.Required("O campo CPF é obrigatório!!"),
			validator.MinLength(nationalIDMinLength, "O CPF precisa ter pelo menos 11 caracteres!!"),
			validator.MaxLength(nationalIDMaxLength, "O CPF só pode ter no máximo 14 caracteres!!"),
			validator.ChecksumValid("O CPF informado é inválido!!"),
		}},
		{Name: FieldBirthDate, Rules: []validator.Rule{
			validator.Required("O campo Data de nascimento é obrigatório!!"),
		}},
		{Name: FieldGender, Rules: []validator.Rule{
			validator.Required("O campo Gênero é obrigatório!!"),
		}},
		{Name: FieldPhone, Rules: []validator.Rule{
			validator.MinLength(phoneMinLength, "O número do celular precisa ter pelo menos 10 caracteres!!"),
			validator.MaxLength(phoneMaxLength, "O número do celular pode ter no máximo 16 caracteres!!"),
		}},
		{Name: FieldEmail, Rules: []validator.Rule{
			validator.Required("O campo E-mail é obrigatório!!"),
		}},
		{Name: FieldPassword, Rules: []validator.Rule{
			validator.Required("O campo senha é obrigatório!!"),
			validator.MinLength(passwordMinLength, "A senha deve ter pelo menos 6 caracteres!!"),
			validator.MaxBytes(passwordMaxBytes, "A senha é longa demais, use no máximo 72 bytes!!"),
		}},
		{Name: FieldPasswordConfirm, Rules: []validator.Rule{
			validator.Required("O campo senha é obrigatório!!"),
			validator.MinLength(passwordMinLength, "A senha deve ter pelo menos 6 caracteres!!"),
			validator.EqualsField(FieldPassword, "As senhas não conferem!!"),
		}},
	}
}

// NewForm returns an empty registration form.
func NewForm() *form.Form {
	return form.MustNew(Fields())
}

// Message returns the display message for a violated rule kind on field.
func Message(field string, kind validator.Kind) (string, bool) {
	for _, f := range Fields() {
		if f.Name != field {
			continue
		}
		for _, rule := range f.Rules {
			if rule.Kind == kind {
				return rule.Message, true
			}
		}
	}
	return "", false
}
