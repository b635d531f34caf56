// Package validator provides declarative, per-field validation rules and a
// small interpreter that evaluates them.
//
// A Rule is a tagged value: its Kind selects the predicate and the remaining
// fields carry the parameters (a length bound, a sibling field name) and the
// message to display on violation. Rules hold no closures, so a rule table can
// be declared once, inspected, serialised and shared between goroutines.
//
// # Rule kinds
//
//   - KindRequired    – value is empty after trimming whitespace
//   - KindMinLength   – non-empty value shorter than Length characters
//   - KindMaxLength   – non-empty value longer than Length characters
//   - KindChecksum    – non-empty value is not a valid CPF
//   - KindEqualsField – value differs from the sibling field Other
//
// # Usage
//
//	rules := []validator.Rule{
//	    validator.Required("password is required"),
//	    validator.MinLength(6, "password is too short"),
//	}
//	kinds := validator.Evaluate(rules, "abc", nil)
//	// kinds == []validator.Kind{validator.KindMinLength}
//
//	errs := validator.Check("password", rules, "abc", nil)
//	if !errs.IsEmpty() {
//	    fmt.Println(errs.Get("password"))
//	}
//
// # Error Handling
//
// ValidationErrors implements error and matches ErrValidationFailed through
// errors.Is. Use ExtractValidationErrors to recover the field details from a
// wrapped error.
//
// Evaluation is total: unknown kinds never report a violation, and a missing
// sibling value reads as the empty string. Use Rule.Validate to reject
// malformed rule tables at construction time.
package validator
