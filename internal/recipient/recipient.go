// Package recipient holds the validation policies for recipient addressing
// schemes. The policies are pure functions over the recipient string; channels
// compose them but never own them.
package recipient

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

// Bounds enforced by the validation policies. These are fixed by the
// addressing schemes, not by deployment configuration.
const (
	PhoneMinDigits = 8
	PhoneMaxDigits = 15
	UsernameMaxLen = 50
)

// ErrInvalidRecipient is returned when a recipient fails a validation policy.
// The wrapped message echoes the original, untrimmed input.
var ErrInvalidRecipient = errors.New("invalid recipient")

var digitsPattern = regexp.MustCompile(`^[0-9]+$`)

// ValidatePhone checks that the recipient is phone shaped: after trimming
// whitespace and dropping a single leading "+", the value must consist solely
// of decimal digits and contain between 8 and 15 of them.
func ValidatePhone(to string) error {
	r := strings.TrimSpace(to)
	r = strings.TrimPrefix(r, "+")
	if !digitsPattern.MatchString(r) || len(r) < PhoneMinDigits || len(r) > PhoneMaxDigits {
		return fmt.Errorf("%w: phone %q", ErrInvalidRecipient, to)
	}
	return nil
}

// ValidateUsername checks that the recipient is username shaped: non-empty
// after trimming whitespace and at most 50 characters.
func ValidateUsername(to string) error {
	r := strings.TrimSpace(to)
	if r == "" || utf8.RuneCountInString(r) > UsernameMaxLen {
		return fmt.Errorf("%w: username %q", ErrInvalidRecipient, to)
	}
	return nil
}

// AllDigits reports whether the value is non-empty and consists solely of
// decimal digits. Channels use it for recipient shape detection.
func AllDigits(value string) bool {
	return digitsPattern.MatchString(value)
}
