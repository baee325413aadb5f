package validators

import (
	"reflect"
	"regexp"

	"github.com/go-playground/validator/v10"
)

var (
	panRegex    = regexp.MustCompile(`^[A-Z]{5}[0-9]{4}[A-Z]$`)
	gstinRegex  = regexp.MustCompile(`^\d{2}[A-Z]{5}\d{4}[A-Z][1-9A-Z]Z[0-9A-Z]$`)
	digitsRegex = regexp.MustCompile(`^[0-9]{10}$`)
	pinRegex    = regexp.MustCompile(`^[0-9]{6}$`)
	dobRegex    = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
)

// IsPAN reports whether s is a 10-character PAN: 5 letters, 4 digits,
// 1 letter.
func IsPAN(s string) bool {
	return panRegex.MatchString(s)
}

// IsGSTIN reports whether s is a 15-character GSTIN.
func IsGSTIN(s string) bool {
	return gstinRegex.MatchString(s)
}

// IsIFSC reports whether s has the IFSC length of exactly 11 characters.
func IsIFSC(s string) bool {
	return len(s) == 11
}

// IsTenDigits reports whether s is exactly 10 digits, the shape of every
// mandatory phone number on the form.
func IsTenDigits(s string) bool {
	return digitsRegex.MatchString(s)
}

// IsPincode reports whether s is exactly 6 digits.
func IsPincode(s string) bool {
	return pinRegex.MatchString(s)
}

// IsISODate reports whether s has the YYYY-MM-DD shape.
func IsISODate(s string) bool {
	return dobRegex.MatchString(s)
}

/*
 * validator/v10 adapters, registered at boot in cmd/api.
 */

func PAN(fl validator.FieldLevel) bool {
	return stringCheck(fl, IsPAN)
}

func GSTIN(fl validator.FieldLevel) bool {
	return stringCheck(fl, IsGSTIN)
}

func IFSC(fl validator.FieldLevel) bool {
	return stringCheck(fl, IsIFSC)
}

func TenDigits(fl validator.FieldLevel) bool {
	return stringCheck(fl, IsTenDigits)
}

func Pincode(fl validator.FieldLevel) bool {
	return stringCheck(fl, IsPincode)
}

func stringCheck(fl validator.FieldLevel, check func(string) bool) bool {
	field := fl.Field()
	if field.Kind() != reflect.String {
		return false
	}
	return check(field.String())
}
