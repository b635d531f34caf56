package validator

// EqualsField is violated when the value differs from the sibling field's value.
// It is evaluated even on empty values so that clearing one side is noticed.
func EqualsField(other, message string) Rule {
	return Rule{Kind: KindEqualsField, Other: other, Message: message}
}
