package httpapi

import (
	"github.com/dmitrymomot/registro/internal/form"
	"github.com/dmitrymomot/registro/internal/registration"
	"github.com/dmitrymomot/registro/pkg/sanitizer"
)

const passwordMask = "******"

type ruleView struct {
	Kind    string `json:"kind"`
	Length  int    `json:"length,omitempty"`
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

type fieldSchema struct {
	Name  string     `json:"name"`
	Rules []ruleView `json:"rules"`
}

func schemaView(fields []form.Field) []fieldSchema {
	out := make([]fieldSchema, 0, len(fields))
	for _, f := range fields {
		rules := make([]ruleView, 0, len(f.Rules))
		for _, r := range f.Rules {
			rules = append(rules, ruleView{
				Kind:    string(r.Kind),
				Length:  r.Length,
				Field:   r.Other,
				Message: r.Message,
			})
		}
		out = append(out, fieldSchema{Name: f.Name, Rules: rules})
	}
	return out
}

type sessionView struct {
	ID      string              `json:"id"`
	State   string              `json:"state"`
	Valid   bool                `json:"valid"`
	Values  map[string]string   `json:"values"`
	Errors  map[string][]string `json:"errors"`
	Visible map[string][]string `json:"visible_errors"`
}

func newSessionView(sc *screen) sessionView {
	snap := sc.ctrl.Form().Snapshot()
	for _, name := range []string{registration.FieldPassword, registration.FieldPasswordConfirm} {
		if snap.Values[name] != "" {
			snap.Values[name] = passwordMask
		}
	}
	return sessionView{
		ID:      sc.id,
		State:   string(sc.ctrl.State()),
		Valid:   snap.Valid,
		Values:  snap.Values,
		Errors:  snap.Errors.Details(),
		Visible: snap.Visible.Details(),
	}
}

type fieldView struct {
	Field     string   `json:"field"`
	Errors    []string `json:"errors"`
	Messages  []string `json:"messages"`
	FormValid bool     `json:"form_valid"`
}

func newFieldView(st form.FieldState) fieldView {
	errs := make([]string, 0, len(st.Errors))
	for _, k := range st.Errors {
		errs = append(errs, string(k))
	}
	messages := st.Messages
	if messages == nil {
		messages = []string{}
	}
	return fieldView{
		Field:     st.Name,
		Errors:    errs,
		Messages:  messages,
		FormValid: st.FormValid,
	}
}

type submitView struct {
	Outcome  string  `json:"outcome"`
	Alerts   []Alert `json:"alerts"`
	Redirect string  `json:"redirect,omitempty"`
}

// userView lists a registered user without exposing contact details or
// documents in the clear.
type userView struct {
	Name       string `json:"name"`
	NationalID string `json:"national_id"`
	Phone      string `json:"phone,omitempty"`
	Email      string `json:"email"`
}

func newUserView(r registration.UserRecord) userView {
	return userView{
		Name:       r.Name,
		NationalID: sanitizer.MaskCPF(r.NationalID),
		Phone:      sanitizer.MaskString(sanitizer.NormalizePhone(r.Phone), 2),
		Email:      sanitizer.MaskEmail(r.Email),
	}
}
