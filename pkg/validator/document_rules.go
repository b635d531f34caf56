package validator

// cpfLength is the number of digits in a CPF, check digits included.
const cpfLength = 11

// ChecksumValid is violated when a non-empty value is not a valid CPF.
func ChecksumValid(message string) Rule {
	return Rule{Kind: KindChecksum, Message: message}
}

// ValidCPF validates a Brazilian CPF number.
// Punctuation such as "123.456.789-09" is ignored. Sequences of a single
// repeated digit pass the arithmetic but are not issued, so they are rejected.
func ValidCPF(value string) bool {
	digits := make([]byte, 0, cpfLength)
	for i := 0; i < len(value); i++ {
		if c := value[i]; c >= '0' && c <= '9' {
			digits = append(digits, c-'0')
		}
	}
	if len(digits) != cpfLength {
		return false
	}

	repeated := true
	for _, d := range digits[1:] {
		if d != digits[0] {
			repeated = false
			break
		}
	}
	if repeated {
		return false
	}

	return digits[9] == cpfCheckDigit(digits[:9]) &&
		digits[10] == cpfCheckDigit(digits[:10])
}

// cpfCheckDigit computes the modulo-11 check digit over digits with
// weights len(digits)+1 down to 2.
func cpfCheckDigit(digits []byte) byte {
	weight := len(digits) + 1
	sum := 0
	for i, d := range digits {
		sum += int(d) * (weight - i)
	}
	rest := sum * 10 % 11
	if rest == 10 {
		rest = 0
	}
	return byte(rest)
}
