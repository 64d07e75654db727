package validation

import (
	"regexp"
	"unicode/utf8"
)

// MaxPhoneLength bounds the phone input, separators included
const MaxPhoneLength = 25

var (
	// local part: letter or digit first, then letters, digits, '+', '.', '-'
	emailPattern = regexp.MustCompile(`(?i)^[a-z\d][a-z\d+.\-]{1,19}@[\w.!$%&'*+/=?^\-]{1,15}\.[a-z]{1,5}$`)

	// +38 (099) 567 8901, with '+38' and the parentheses optional
	phonePattern = regexp.MustCompile(`^[\s-]*(\+38)?([\s-]*\(([\s-]*\d[\s-]*){3}\)([\s-]*\d[\s-]*){7}|([\s-]*\d[\s-]*){10})$`)

	passwordPattern = regexp.MustCompile(`^\w{8,}$`)
	digitPattern    = regexp.MustCompile(`\d`)
	lowerPattern    = regexp.MustCompile(`[a-z]`)
	upperPattern    = regexp.MustCompile(`[A-Z]`)
)

// Email reports whether s is a well-formed e-mail address
func Email(s string) bool {
	return emailPattern.MatchString(s)
}

// Phone reports whether s is a well-formed phone number
func Phone(s string) bool {
	return utf8.RuneCountInString(s) <= MaxPhoneLength && phonePattern.MatchString(s)
}

// Password reports whether s is at least 8 word characters long and has a
// digit, a lowercase and an uppercase letter
func Password(s string) bool {
	return passwordPattern.MatchString(s) &&
		digitPattern.MatchString(s) &&
		lowerPattern.MatchString(s) &&
		upperPattern.MatchString(s)
}
