package validation

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"sort"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// Field-level failure reasons reported to API callers.
const (
	ReasonRequired         = "required"
	ReasonUnique           = "unique"
	ReasonOutOfRange       = "out_of_range"
	ReasonInvalidFormat    = "invalid_format"
	ReasonInvalidChoice    = "invalid_choice"
	ReasonMaxLength        = "max_length"
	ReasonMinLength        = "min_length"
	ReasonInvalidReference = "invalid_reference"
	ReasonExactlyOneParty  = "exactly_one_party"
)

var promoCodeRe = regexp.MustCompile(`^[A-Z0-9]+$`)

// Errors maps a field name (as it appears in JSON) to the reason it was rejected.
type Errors map[string]string

func (e Errors) Error() string {
	keys := make([]string, 0, len(e))
	for k := range e {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, e[k]))
	}
	return "validation failed: " + strings.Join(parts, ", ")
}

// Add keeps the first reason recorded for a field.
func (e Errors) Add(field, reason string) {
	if _, exists := e[field]; !exists {
		e[field] = reason
	}
}

func (e Errors) Empty() bool { return len(e) == 0 }

// Err returns nil when nothing was recorded so callers can `return errs.Err()`.
func (e Errors) Err() error {
	if e.Empty() {
		return nil
	}
	return e
}

func As(err error) (Errors, bool) {
	var ve Errors
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}

var (
	once     sync.Once
	validate *validator.Validate
)

// Validator returns the shared model validator.
func Validator() *validator.Validate {
	once.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		Register(validate)
	})
	return validate
}

// Register installs the custom tags and JSON field naming on v. It is also applied to
// gin's binding engine so request structs and models agree.
func Register(v *validator.Validate) {
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
	_ = v.RegisterValidation("promocode", func(fl validator.FieldLevel) bool {
		return IsPromoCode(fl.Field().String())
	})
}

func IsPromoCode(s string) bool {
	return promoCodeRe.MatchString(s)
}

// Struct validates v and converts tag failures into Errors.
func Struct(v any) Errors {
	errs := Errors{}
	err := Validator().Struct(v)
	if err == nil {
		return errs
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		errs.Add("non_field_errors", err.Error())
		return errs
	}
	for _, fe := range fieldErrs {
		errs.Add(fe.Field(), Reason(fe))
	}
	return errs
}

// Reason maps a validator tag failure onto one of the Reason* constants.
func Reason(fe validator.FieldError) string {
	isString := fe.Kind() == reflect.String
	switch fe.Tag() {
	case "required", "required_without", "required_with":
		return ReasonRequired
	case "max":
		if isString {
			return ReasonMaxLength
		}
		return ReasonOutOfRange
	case "min":
		if isString {
			return ReasonMinLength
		}
		return ReasonOutOfRange
	case "gte", "lte", "gt", "lt":
		return ReasonOutOfRange
	case "oneof":
		return ReasonInvalidChoice
	default:
		return ReasonInvalidFormat
	}
}
