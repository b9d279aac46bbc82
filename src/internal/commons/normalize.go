package commons

import (
	"strings"
	"unicode"
)

const (
	CardNumberLength = 16
	PINLength        = 4
)

// NormalizeCardNumber keeps only the digits of raw and truncates to 16 of them.
func NormalizeCardNumber(raw string) string {
	return truncate(keepDigits(raw), CardNumberLength)
}

// NormalizePIN keeps only the digits of raw and truncates to 4 of them.
func NormalizePIN(raw string) string {
	return truncate(keepDigits(raw), PINLength)
}

// NormalizeRecipientCard strips whitespace and truncates to 16 characters. Unlike
// NormalizeCardNumber it leaves non-digit characters in place.
func NormalizeRecipientCard(raw string) string {
	stripped := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, raw)
	return truncate(stripped, CardNumberLength)
}

func DigitsOnly(value string) bool {
	for _, ch := range value {
		if ch < '0' || ch > '9' {
			return false
		}
	}
	return true
}

// IsCardNumber reports whether value is exactly 16 ASCII digits.
func IsCardNumber(value string) bool {
	return len(value) == CardNumberLength && DigitsOnly(value)
}

func IsPIN(value string) bool {
	return len(value) == PINLength && DigitsOnly(value)
}

// MaskCardNumber renders all but the last four characters as asterisks in groups of four.
func MaskCardNumber(cardNumber string) string {
	if len(cardNumber) <= 4 {
		return cardNumber
	}

	last := cardNumber[len(cardNumber)-4:]
	hidden := len(cardNumber) - 4
	groups := make([]string, 0, hidden/4+2)
	for hidden >= 4 {
		groups = append(groups, "****")
		hidden -= 4
	}
	if hidden > 0 {
		groups = append(groups, strings.Repeat("*", hidden))
	}
	groups = append(groups, last)
	return strings.Join(groups, " ")
}

func keepDigits(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for _, ch := range raw {
		if ch >= '0' && ch <= '9' {
			b.WriteRune(ch)
		}
	}
	return b.String()
}

func truncate(value string, n int) string {
	runes := []rune(value)
	if len(runes) > n {
		return string(runes[:n])
	}
	return value
}
