package model

import (
	"errors"
	"strings"
	"unicode/utf8"
)

// Validation failures for member fields. The messages are shown to clients
// verbatim, so they name the violated constraint rather than the value.
var (
	ErrNameRequired     = errors.New("name is required")
	ErrNameTooShort     = errors.New("name must be at least 2 characters long")
	ErrNameTooLong      = errors.New("name must be at most 100 characters long")
	ErrNameInvalidChars = errors.New("name may only contain letters, spaces, hyphens, apostrophes, and dots")

	ErrEmailRequired        = errors.New("email is required")
	ErrEmailTooLong         = errors.New("email must be at most 254 characters long")
	ErrEmailInvalidFormat   = errors.New("email format is invalid")
	ErrEmailConsecutiveDots = errors.New("email cannot contain consecutive dots")
	ErrEmailEdgeDot         = errors.New("email cannot start or end with a dot")

	ErrPhoneTooLong       = errors.New("phone number must be at most 20 characters long")
	ErrPhoneInvalidChars  = errors.New("phone number may only contain digits, spaces, and + - ( ) . characters")
	ErrPhoneTooFewDigits  = errors.New("phone number must contain at least 8 digits")
	ErrPhoneTooManyDigits = errors.New("phone number must contain at most 15 digits")
)

// NormalizeName trims surrounding whitespace and validates length and
// character set. The trimmed form is what gets stored.
func NormalizeName(raw string) (string, error) {
	name := strings.TrimSpace(raw)
	if name == "" {
		return "", ErrNameRequired
	}
	if utf8.RuneCountInString(name) < MinNameLength {
		return "", ErrNameTooShort
	}
	if utf8.RuneCountInString(name) > MaxNameLength {
		return "", ErrNameTooLong
	}
	for _, r := range name {
		if !isNameRune(r) {
			return "", ErrNameInvalidChars
		}
	}
	return name, nil
}

func isNameRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z':
		return true
	case r >= 'A' && r <= 'Z':
		return true
	case r == ' ' || r == '-' || r == '\'' || r == '.':
		return true
	}
	return false
}

// NormalizeEmail trims and lowercases, then validates the result against a
// local@domain grammar. The lowercased form is the canonical stored value,
// so two addresses differing only in case collide.
func NormalizeEmail(raw string) (string, error) {
	email := strings.ToLower(strings.TrimSpace(raw))
	if email == "" {
		return "", ErrEmailRequired
	}
	if len(email) > MaxEmailLength {
		return "", ErrEmailTooLong
	}
	if strings.Contains(email, "..") {
		return "", ErrEmailConsecutiveDots
	}
	if strings.HasPrefix(email, ".") || strings.HasSuffix(email, ".") {
		return "", ErrEmailEdgeDot
	}
	if !isValidEmailFormat(email) {
		return "", ErrEmailInvalidFormat
	}
	return email, nil
}

// isValidEmailFormat checks local@domain.tld shape: standard local-part
// characters, a dotted domain, and an alphabetic TLD of two or more letters.
func isValidEmailFormat(email string) bool {
	at := strings.IndexByte(email, '@')
	if at <= 0 || at != strings.LastIndexByte(email, '@') {
		return false
	}

	local, domain := email[:at], email[at+1:]
	for _, r := range local {
		if !isEmailLocalRune(r) {
			return false
		}
	}

	lastDot := strings.LastIndexByte(domain, '.')
	if lastDot <= 0 || lastDot == len(domain)-1 {
		return false
	}
	for _, r := range domain[:lastDot] {
		if !isAlphanumeric(r) && r != '.' && r != '-' {
			return false
		}
	}
	tld := domain[lastDot+1:]
	if len(tld) < 2 {
		return false
	}
	for _, r := range tld {
		if !(r >= 'a' && r <= 'z') {
			return false
		}
	}
	return true
}

func isEmailLocalRune(r rune) bool {
	if isAlphanumeric(r) {
		return true
	}
	switch r {
	case '.', '_', '%', '+', '-':
		return true
	}
	return false
}

func isAlphanumeric(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}

// NormalizePhone trims and validates an optional phone number.
//
// A nil input, or one that is empty after trimming, normalizes to nil. The
// returned form keeps the caller's formatting characters; only the digit
// count is canonicalized for validation. Uniqueness therefore compares the
// stored formatted strings, so "+62 812" and "+62812" are distinct values.
func NormalizePhone(raw *string) (*string, error) {
	if raw == nil {
		return nil, nil
	}
	phone := strings.TrimSpace(*raw)
	if phone == "" {
		return nil, nil
	}
	if len(phone) > MaxPhoneLength {
		return nil, ErrPhoneTooLong
	}

	digits := 0
	for _, r := range phone {
		switch {
		case r >= '0' && r <= '9':
			digits++
		case r == '+' || r == '-' || r == '(' || r == ')' || r == '.' || r == ' ':
		default:
			return nil, ErrPhoneInvalidChars
		}
	}
	if digits < MinPhoneDigits {
		return nil, ErrPhoneTooFewDigits
	}
	if digits > MaxPhoneDigits {
		return nil, ErrPhoneTooManyDigits
	}
	return &phone, nil
}
