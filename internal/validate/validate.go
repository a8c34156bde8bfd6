// Package validate holds the pure field validators for the activation form.
// Each validator returns an empty string when the value is acceptable and a
// human-readable message otherwise. Required-ness is the caller's concern:
// every validator here treats the empty string as valid.
package validate

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/nyaruka/phonenumbers"
)

// DefaultRegion is the pre-selected country for phone numbers.
const DefaultRegion = "ZA"

const (
	minPhoneDigits = 7
	maxPhoneDigits = 15

	minAge = 0
	maxAge = 50
)

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Email validates an email address format. Empty is valid.
func Email(s string) string {
	if s == "" {
		return ""
	}
	if !emailRe.MatchString(s) {
		return "Please enter a valid email address"
	}
	return ""
}

// Phone validates a national phone number by digit count alone. Empty is
// valid; the primary contact number's required-ness is enforced at the form
// level, not here.
func Phone(s string) string {
	if s == "" {
		return ""
	}
	n := len(Digits(s))
	if n < minPhoneDigits || n > maxPhoneDigits {
		return "Please enter a valid phone number"
	}
	return ""
}

// Age validates an optional pet age. Empty is valid; otherwise the value must
// be an integer between 0 and 50.
func Age(s string) string {
	if s == "" {
		return ""
	}
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || v < minAge || v > maxAge {
		return "Age must be a number between 0 and 50"
	}
	return ""
}

// Digits strips every non-digit rune from s.
func Digits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Region reports whether the two-letter country code is a region the phone
// library knows a calling code for.
func Region(code string) bool {
	return phonenumbers.GetCountryCodeForRegion(strings.ToUpper(code)) != 0
}

// CallingCode returns the international calling code for a region, falling
// back to the default region when the code is unknown.
func CallingCode(region string) int {
	if cc := phonenumbers.GetCountryCodeForRegion(strings.ToUpper(region)); cc != 0 {
		return cc
	}
	return phonenumbers.GetCountryCodeForRegion(DefaultRegion)
}

// ComposePhone builds the submitted phone value "+<callingcode><national>"
// from a region and a raw national number. Composition happens only at
// submission time; live validation runs against the raw national number.
func ComposePhone(region, national string) string {
	digits := strings.TrimLeft(Digits(national), "0")
	return "+" + strconv.Itoa(CallingCode(region)) + digits
}
