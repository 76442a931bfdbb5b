package user

import (
	"strings"

	"github.com/go-playground/validator/v10"

	apperrors "qatest-api/pkg/errors"
)

// Shared validator instance for Var checks. The instance is safe for
// concurrent use.
var validate = validator.New()

// ValidateName validates an optional name value from a decoded JSON body.
// Absent (nil) is valid and produces an absent name; so does a value that is
// empty after trimming. The length bound is strictly greater-than 30 after
// trimming.
func ValidateName(value any) (*string, error) {
	if value == nil {
		return nil, nil
	}

	s, ok := value.(string)
	if !ok {
		return nil, apperrors.NewValidationError("name", "Name must be a string")
	}

	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}

	if err := validate.Var(s, "max=30"); err != nil {
		return nil, apperrors.NewValidationError("name", "Name must not exceed 30 characters")
	}

	return &s, nil
}

// ValidateMSISDN validates a required msisdn value from a decoded JSON body
// and returns its trimmed canonical form. The digits-only check runs before
// the length check, which determines the message when both are violated.
func ValidateMSISDN(value any) (string, error) {
	s, ok := value.(string)
	if !ok {
		return "", apperrors.NewValidationError("msisdn", "MSISDN is required and must be a string")
	}

	s = strings.TrimSpace(s)
	if s == "" {
		return "", apperrors.NewValidationError("msisdn", "MSISDN is required and must be a string")
	}

	// "number" is the digits-only check; "numeric" would also admit signs
	// and a decimal point.
	if err := validate.Var(s, "number"); err != nil {
		return "", apperrors.NewValidationError("msisdn", "MSISDN must contain only digits")
	}

	if err := validate.Var(s, "len=11"); err != nil {
		return "", apperrors.NewValidationError("msisdn", "MSISDN must be exactly 11 digits")
	}

	return s, nil
}

// IsUniqueMSISDN reports whether no user in the collection carries an
// identical msisdn string.
func IsUniqueMSISDN(msisdn string, users []User) bool {
	for _, u := range users {
		if u.MSISDN == msisdn {
			return false
		}
	}
	return true
}

// NextID computes the identifier for the next created user:
// max(existing ids) + 1, or 1 for an empty collection.
func NextID(users []User) int64 {
	var max int64
	for _, u := range users {
		if u.ID > max {
			max = u.ID
		}
	}
	return max + 1
}
