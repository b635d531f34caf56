package sanitizer

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
)

var dotRegex = regexp.MustCompile(`\.{2,}`)

// NormalizeEmail trims and lowercases an address; invalid formats are kept as is.
// Consecutive dots in the local part are consolidated.
func NormalizeEmail(email string) string {
	email = strings.ToLower(strings.TrimSpace(email))

	local, domain, ok := strings.Cut(email, "@")
	if !ok || strings.Contains(domain, "@") {
		return email
	}

	local = dotRegex.ReplaceAllString(local, ".")
	local = strings.Trim(local, ".")

	return local + "@" + domain
}

// FoldEmail returns a case-folded key suitable for uniqueness checks.
// Unlike ToLower it also maps characters such as "ß" and "K" (Kelvin sign).
// A Caser is stateful, so one is created per call.
func FoldEmail(email string) string {
	return cases.Fold().String(NormalizeEmail(email))
}

// MaskEmail keeps the first character and the domain.
func MaskEmail(email string) string {
	email = strings.TrimSpace(email)
	local, domain, ok := strings.Cut(email, "@")
	if !ok || local == "" {
		return email
	}
	runes := []rune(local)
	return string(runes[0]) + strings.Repeat("*", len(runes)-1) + "@" + domain
}

// NormalizePhone strips formatting for storage and comparison.
// A leading "+" is kept so international numbers stay recognisable.
func NormalizePhone(phone string) string {
	phone = strings.TrimSpace(phone)
	digits := KeepDigits(phone)
	if strings.HasPrefix(phone, "+") && digits != "" {
		return "+" + digits
	}
	return digits
}

// NormalizeCPF reduces a CPF to its 11 digits.
func NormalizeCPF(cpf string) string {
	return KeepDigits(cpf)
}

// MaskCPF hides everything but the check digits, e.g. ***.***.***-25.
func MaskCPF(cpf string) string {
	d := KeepDigits(cpf)
	if len(d) != 11 {
		return strings.Repeat("*", len([]rune(cpf)))
	}
	return "***.***.***-" + d[9:11]
}
