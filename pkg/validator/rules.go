package validator

import (
	"fmt"
	"net/url"
	"slices"
	"strings"
	"unicode/utf8"
)

// RequiredString validates that a string is not empty after trimming whitespace.
func RequiredString(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return strings.TrimSpace(value) != ""
		},
		Error: ValidationError{
			Field:   field,
			Message: "field is required",
		},
	}
}

// MaxLenString limits the byte length of a string.
func MaxLenString(field, value string, max int) Rule {
	return Rule{
		Check: func() bool {
			return len(value) <= max
		},
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must be at most %d characters long", max),
		},
	}
}

// ValidURLWithScheme validates an absolute URL with one of the given schemes and a host.
// Empty values pass so the rule can be combined with RequiredString.
func ValidURLWithScheme(field, value string, schemes []string) Rule {
	return Rule{
		Check: func() bool {
			if strings.TrimSpace(value) == "" {
				return true
			}
			u, err := url.ParseRequestURI(value)
			if err != nil {
				return false
			}
			return u.Host != "" && slices.Contains(schemes, strings.ToLower(u.Scheme))
		},
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must be a valid URL with scheme: %s", strings.Join(schemes, ", ")),
		},
	}
}

// NoControlChars rejects strings containing ASCII control characters.
func NoControlChars(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return !strings.ContainsFunc(value, func(r rune) bool {
				return r < 0x20 || r == 0x7f
			})
		},
		Error: ValidationError{
			Field:   field,
			Message: "must not contain control characters",
		},
	}
}

// ValidUTF8 rejects strings that are not valid UTF-8.
func ValidUTF8(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return utf8.ValidString(value)
		},
		Error: ValidationError{
			Field:   field,
			Message: "must be valid UTF-8",
		},
	}
}
