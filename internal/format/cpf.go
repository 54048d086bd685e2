package format

import "regexp"

var nonDigits = regexp.MustCompile(`\D`)

// Digits strips everything that is not a digit.
func Digits(s string) string {
	return nonDigits.ReplaceAllString(s, "")
}

// CPF renders an 11-digit CPF as XXX.XXX.XXX-XX. Input punctuation is
// ignored. Values that do not normalize to 11 digits come back as their
// digits, so stripping the output always recovers the stored value.
func CPF(cpf string) string {
	digits := Digits(cpf)
	if digits == "" {
		return cpf
	}
	if len(digits) != 11 {
		return digits
	}
	return digits[0:3] + "." + digits[3:6] + "." + digits[6:9] + "-" + digits[9:11]
}
