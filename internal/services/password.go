package services

import (
	"fmt"
	"strings"
	"unicode"
)

const (
	passwordMinLength    = 8
	passwordMinUppercase = 2
	passwordMinDigits    = 3
	passwordMinSymbols   = 3
)

// validatePassword enforces the registration password policy: minimum
// length plus fixed counts of uppercase letters, digits and symbols.
// All failed rules are reported at once so the form can show every message.
func validatePassword(password string) error {
	var uppercase, digits, symbols int
	for _, c := range password {
		switch {
		case unicode.IsUpper(c):
			uppercase++
		case unicode.IsDigit(c):
			digits++
		case !unicode.IsLetter(c) && !unicode.IsDigit(c):
			symbols++
		}
	}

	var problems []string
	if len(password) < passwordMinLength {
		problems = append(problems, fmt.Sprintf("at least %d characters", passwordMinLength))
	}
	if uppercase < passwordMinUppercase {
		problems = append(problems, fmt.Sprintf("at least %d uppercase letters", passwordMinUppercase))
	}
	if digits < passwordMinDigits {
		problems = append(problems, fmt.Sprintf("at least %d digits", passwordMinDigits))
	}
	if symbols < passwordMinSymbols {
		problems = append(problems, fmt.Sprintf("at least %d symbols", passwordMinSymbols))
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: password must contain %s", ErrInvalidArgument, strings.Join(problems, ", "))
	}
	return nil
}
