package validator

import (
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
)

// RequiredString checks that the value is non-empty after trimming.
func RequiredString(field, value string) Rule {
	return Rule{
		Check: func() bool { return strings.TrimSpace(value) != "" },
		Error: ValidationError{Field: field, Message: "is required"},
	}
}

// MaxLen checks that the value does not exceed max characters.
func MaxLen(field, value string, max int) Rule {
	return Rule{
		Check: func() bool { return len(value) <= max },
		Error: ValidationError{Field: field, Message: fmt.Sprintf("must be at most %d characters", max)},
	}
}

// ValidEmail checks that the value parses as a bare RFC 5322 address
// with a dotted domain.
func ValidEmail(field, value string) Rule {
	return Rule{
		Check: func() bool {
			addr, err := mail.ParseAddress(value)
			if err != nil || addr.Address != value {
				return false
			}
			domain := value[strings.LastIndex(value, "@")+1:]
			return strings.Contains(domain, ".") &&
				!strings.HasPrefix(domain, ".") && !strings.HasSuffix(domain, ".")
		},
		Error: ValidationError{Field: field, Message: "must be a valid email address"},
	}
}

// ValidDate checks that the value is a calendar date in YYYY-MM-DD form.
func ValidDate(field, value string) Rule {
	return Rule{
		Check: func() bool {
			_, err := time.Parse("2006-01-02", value)
			return err == nil
		},
		Error: ValidationError{Field: field, Message: "must be a date in YYYY-MM-DD format"},
	}
}

// OptionalDate is ValidDate for fields that may be left empty.
func OptionalDate(field, value string) Rule {
	return Rule{
		Check: func() bool {
			if value == "" {
				return true
			}
			_, err := time.Parse("2006-01-02", value)
			return err == nil
		},
		Error: ValidationError{Field: field, Message: "must be a date in YYYY-MM-DD format"},
	}
}

// ValidUUID checks that the value is a canonical UUID.
func ValidUUID(field, value string) Rule {
	return Rule{
		Check: func() bool {
			if len(value) != 36 {
				return false
			}
			_, err := uuid.Parse(value)
			return err == nil
		},
		Error: ValidationError{Field: field, Message: "must be a valid UUID"},
	}
}
