// Package validation collects field violations for request payloads.
package validation

import (
	"errors"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/ttacon/libphonenumber"
)

// Violations maps a json field name to a violation code.
type Violations map[string]string

func (v Violations) Empty() bool { return len(v) == 0 }

// Merge copies other into v, keeping existing entries.
func (v Violations) Merge(other Violations) {
	for field, code := range other {
		if _, ok := v[field]; !ok {
			v[field] = code
		}
	}
}

// Checker is implemented by payloads whose rules go beyond struct tags.
// Struct merges its violations after the tag rules.
type Checker interface {
	Check(v Violations)
}

// Required flags blank or whitespace-only values.
func Required(field, value string, v Violations) {
	if strings.TrimSpace(value) == "" {
		v[field] = "required"
	}
}

func NonNegativeFloat(field string, val float64, v Violations) {
	if val < 0 || val != val {
		v[field] = "must_not_be_negative"
	}
}

func RangeFloat(field string, val, minVal, maxVal float64, v Violations) {
	if val < minVal || val > maxVal || val != val {
		v[field] = "out_of_range"
	}
}

// DefaultRegion is used to parse phone numbers without a country code.
const DefaultRegion = "IN"

var gstinPattern = regexp.MustCompile(`^[0-9]{2}[A-Z]{5}[0-9]{4}[A-Z][1-9A-Z]Z[0-9A-Z]$`)

// ValidPhone reports whether s parses as a valid number for DefaultRegion.
func ValidPhone(s string) bool {
	num, err := libphonenumber.Parse(s, DefaultRegion)
	if err != nil {
		return false
	}
	return libphonenumber.IsValidNumber(num)
}

// ValidGSTIN reports whether s has the shape of a 15 character GSTIN.
func ValidGSTIN(s string) bool {
	return gstinPattern.MatchString(strings.ToUpper(strings.TrimSpace(s)))
}

var (
	structValidator *validator.Validate
	validatorOnce   sync.Once
)

func engine() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name == "" {
				return f.Name
			}
			return name
		})
		_ = v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
			return ValidPhone(fl.Field().String())
		})
		_ = v.RegisterValidation("gstin", func(fl validator.FieldLevel) bool {
			return ValidGSTIN(fl.Field().String())
		})
		structValidator = v
	})
	return structValidator
}

// Struct validates s against its `validate` tags and, when s is a Checker,
// its Check rules. Violations are keyed by json field name; a tag violation
// wins over a Check violation on the same field.
func Struct(s any) Violations {
	out := make(Violations)
	if err := engine().Struct(s); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			out["_"] = "invalid"
			return out
		}
		for _, fe := range fieldErrs {
			out[fe.Field()] = code(fe)
		}
	}
	if c, ok := s.(Checker); ok {
		extra := make(Violations)
		c.Check(extra)
		out.Merge(extra)
	}
	return out
}

func code(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "required"
	case "gte", "lte", "min", "max":
		return "out_of_range"
	case "email":
		return "invalid_email"
	case "phone":
		return "invalid_phone"
	case "gstin":
		return "invalid_gstin"
	default:
		return "invalid"
	}
}
