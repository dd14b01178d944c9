package validator

import (
	"regexp"
	"strings"
)

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// Email reports whether s looks like an email address
func Email(s string) bool {
	return emailPattern.MatchString(s)
}

// Digits strips every non-digit rune from s
func Digits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Phone accepts Brazilian numbers with area code: 10 or 11 digits
func Phone(s string) bool {
	n := len(Digits(s))
	return n >= 10 && n <= 11
}

// FormatPhone renders 10/11 digit numbers as (XX) XXXX-XXXX / (XX) XXXXX-XXXX.
// Anything else is returned unchanged.
func FormatPhone(s string) string {
	d := Digits(s)
	switch len(d) {
	case 11:
		return "(" + d[:2] + ") " + d[2:7] + "-" + d[7:]
	case 10:
		return "(" + d[:2] + ") " + d[2:6] + "-" + d[6:]
	default:
		return s
	}
}

// FormatDocument renders CPF (11 digits) and CNPJ (14 digits).
// Anything else is returned unchanged.
func FormatDocument(s string) string {
	d := Digits(s)
	switch len(d) {
	case 11:
		return d[:3] + "." + d[3:6] + "." + d[6:9] + "-" + d[9:]
	case 14:
		return d[:2] + "." + d[2:5] + "." + d[5:8] + "/" + d[8:12] + "-" + d[12:]
	default:
		return s
	}
}
