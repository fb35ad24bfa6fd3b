package validators

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// EmailPattern is the accepted e-mail address format: a local part of
// letters, digits and ._%+-, an "@", a domain of letters, digits, dots and
// hyphens, and a 2 to 6 letter top-level domain.
const EmailPattern = `^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,6}$`

const (
	emailMinLength = 3
	emailMaxLength = 50

	passwordMinLength = 8
	passwordMaxLength = 15
)

var emailRegex = regexp.MustCompile(EmailPattern)

// IsValidEmail reports whether s matches EmailPattern and is 3 to 50
// characters long.
func IsValidEmail(s string) bool {
	n := utf8.RuneCountInString(s)
	if n < emailMinLength || n > emailMaxLength {
		return false
	}
	return emailRegex.MatchString(s)
}

// IsValidPassword reports whether s is 8 to 15 characters long, contains no
// line breaks and has at least one ASCII digit, one lowercase and one
// uppercase ASCII letter. Any other character is allowed.
func IsValidPassword(s string) bool {
	n := utf8.RuneCountInString(s)
	if n < passwordMinLength || n > passwordMaxLength {
		return false
	}
	if strings.ContainsAny(s, "\r\n\u0085\u2028\u2029") {
		return false
	}

	var digit, lower, upper bool
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			digit = true
		case r >= 'a' && r <= 'z':
			lower = true
		case r >= 'A' && r <= 'Z':
			upper = true
		}
	}

	return digit && lower && upper
}
