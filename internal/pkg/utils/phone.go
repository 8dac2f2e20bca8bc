package utils

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	reDigitsOnly = regexp.MustCompile(`^\d+$`)
)

// NormalizePhoneDigits strips spaces, dashes, brackets and a single leading '+'.
func NormalizePhoneDigits(input string) string {
	s := strings.TrimSpace(input)
	s = strings.NewReplacer(" ", "", "-", "", "(", "", ")", "").Replace(s)
	s = strings.TrimPrefix(s, "+")
	return s
}

// ValidateInternationalPhoneDigits accepts E.164 numbers without the '+':
// 10 to 15 digits, not starting with 0.
func ValidateInternationalPhoneDigits(phoneDigits string) error {
	if strings.TrimSpace(phoneDigits) == "" {
		return fmt.Errorf("phone is required")
	}
	if !reDigitsOnly.MatchString(phoneDigits) {
		return fmt.Errorf("phone must contain digits only")
	}
	if strings.HasPrefix(phoneDigits, "0") {
		return fmt.Errorf("phone must include country code (must not start with 0)")
	}
	if len(phoneDigits) < 10 || len(phoneDigits) > 15 {
		return fmt.Errorf("phone must be 10 to 15 digits (international format without '+')")
	}
	return nil
}
