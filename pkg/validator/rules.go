package validator

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	// Minimal local@domain.tld shape: no whitespace, one @, a dot after it.
	// Deliberately permissive; deliverability is proven by the confirmation
	// email, not by the regex.
	emailShapeRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

	// Hungarian phone numbers in the forms callers actually type:
	// +36XXXXXXXXX, 06XXXXXXXXX, 36XXXXXXXXX, or the bare 9-digit national
	// number, after stripping spaces, parentheses and hyphens.
	hungarianPhonePatterns = []*regexp.Regexp{
		regexp.MustCompile(`^\+36[0-9]{9}$`),
		regexp.MustCompile(`^06[0-9]{9}$`),
		regexp.MustCompile(`^[0-9]{9}$`),
		regexp.MustCompile(`^36[0-9]{9}$`),
	}

	phoneStripper = strings.NewReplacer(" ", "", "-", "", "(", "", ")", "")
)

// MinRuneLength validates that value has at least min code points after
// trimming surrounding whitespace.
func MinRuneLength(field, value string, min int, key string) Rule {
	return Rule{
		Check: func() bool {
			return utf8.RuneCountInString(strings.TrimSpace(value)) >= min
		},
		Error: ValidationError{
			Field:          field,
			Message:        field + " is too short",
			TranslationKey: key,
		},
	}
}

// NonEmptySlice validates that at least one element was provided.
func NonEmptySlice[T any](field string, values []T, key string) Rule {
	return Rule{
		Check: func() bool {
			return len(values) > 0
		},
		Error: ValidationError{
			Field:          field,
			Message:        field + " must not be empty",
			TranslationKey: key,
		},
	}
}

// HungarianPhone validates a Hungarian phone number in any accepted shape.
func HungarianPhone(field, value string, key string) Rule {
	return Rule{
		Check: func() bool {
			cleaned := phoneStripper.Replace(value)
			for _, pattern := range hungarianPhonePatterns {
				if pattern.MatchString(cleaned) {
					return true
				}
			}
			return false
		},
		Error: ValidationError{
			Field:          field,
			Message:        field + " is not a valid phone number",
			TranslationKey: key,
		},
	}
}

// EmailShape validates the minimal local@domain.tld email shape.
func EmailShape(field, value string, key string) Rule {
	return Rule{
		Check: func() bool {
			return emailShapeRegex.MatchString(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        field + " is not a valid email address",
			TranslationKey: key,
		},
	}
}

// True validates that a boolean flag was set.
func True(field string, value bool, key string) Rule {
	return Rule{
		Check: func() bool {
			return value
		},
		Error: ValidationError{
			Field:          field,
			Message:        field + " must be accepted",
			TranslationKey: key,
		},
	}
}
