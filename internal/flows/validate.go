package flows

import (
	"net/mail"
	"unicode"
	"unicode/utf8"
)

// User-facing validation notices. The wording mirrors what the backend
// publishes in its account policy.
const (
	noticeInvalidEmail     = "Enter a valid Email Id!"
	noticePasswordTooShort = "Password must be at least 8 characters long!"
	noticePasswordTooLong  = "Password must be less than 16 characters long!"
	noticePasswordClasses  = "Password must contain at least one lowercase, uppercase, number and special character!"
	noticePasswordMismatch = "Passwords do not match!"
	noticeFillAllFields    = "Please fill all the fields"
	noticeNetworkError     = "Network error. Please try again."
	noticeServerError      = "Oops! Something went wrong on the server side. Please try again later."
)

// IsEmail reports whether s is a well-formed email address.
func IsEmail(s string) bool {
	addr, err := mail.ParseAddress(s)
	return err == nil && addr.Address == s
}

// ValidatePassword checks the new-password complexity policy: 8 to 16 runes
// containing at least one lowercase letter, one uppercase letter, one digit,
// and one non-alphanumeric symbol. Returns an empty string when the policy
// is satisfied, otherwise the notice for the first violated rule.
func ValidatePassword(pw string) string {
	n := utf8.RuneCountInString(pw)
	if n < 8 {
		return noticePasswordTooShort
	}
	if n > 16 {
		return noticePasswordTooLong
	}

	var lower, upper, digit, symbol bool
	for _, r := range pw {
		switch {
		case unicode.IsLower(r):
			lower = true
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsDigit(r):
			digit = true
		default:
			symbol = true
		}
	}
	if !lower || !upper || !digit || !symbol {
		return noticePasswordClasses
	}
	return ""
}
