// Package validation holds the keypad input rules. The session applies
// them on submit and the huh prompts reuse them for inline feedback, so
// the two can never disagree.
package validation

import (
	"fmt"
	"strings"

	"github.com/sultanbank/teller/internal/constants"
	"github.com/sultanbank/teller/internal/service"
)

// ValidateAccountNumber requires exactly 9 digits.
func ValidateAccountNumber(number string) error {
	if strings.TrimSpace(number) == "" {
		return fmt.Errorf("account number can't be empty")
	}
	if len(number) != constants.AccountNumberLen || !allDigits(number) {
		return fmt.Errorf("account number must be exactly %d digits", constants.AccountNumberLen)
	}
	return nil
}

// ValidatePIN requires exactly 4 digits.
func ValidatePIN(pin string) error {
	if strings.TrimSpace(pin) == "" {
		return fmt.Errorf("PIN can't be empty")
	}
	if len(pin) != constants.PINLen || !allDigits(pin) {
		return fmt.Errorf("PIN must be exactly %d digits", constants.PINLen)
	}
	return nil
}

// ValidateAmount accepts a positive decimal amount with at most two
// fraction digits.
func ValidateAmount(input string) error {
	input = strings.TrimSpace(input)
	if input == "" {
		return fmt.Errorf("amount can't be empty")
	}

	if _, err := service.ParseAmountCents(input); err != nil {
		return fmt.Errorf("enter a positive amount like 20 or 9.50")
	}

	return nil
}

func allDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
