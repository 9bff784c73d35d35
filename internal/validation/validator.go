package validation

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// Validator checks untrusted payloads against the record schemas.
type Validator struct {
	validate *validator.Validate
}

// schema is implemented by the input struct of every record kind.
type schema interface {
	applyDefaults()
}

// New creates a Validator with the custom constraints used by the schemas
// registered.
func New() *Validator {
	validate := validator.New()

	// Report fields by their JSON names
	validate.RegisterTagNameFunc(jsonName)

	if err := validate.RegisterValidation("enum", isEnumMember); err != nil {
		panic(fmt.Sprintf("register enum constraint: %v", err))
	}
	if err := validate.RegisterValidation("isodatetime", isISODateTime); err != nil {
		panic(fmt.Sprintf("register isodatetime constraint: %v", err))
	}

	return &Validator{validate: validate}
}

// check runs the decode, default and constraint steps for one payload,
// filling in. It returns an *Error listing every violation found.
func (v *Validator) check(kind Kind, raw []byte, in schema) error {
	d := newDecoder()
	if !d.object(raw, reflect.ValueOf(in).Elem(), "") {
		return &Error{Kind: kind, Violations: d.violations}
	}

	in.applyDefaults()

	violations := d.violations
	err := v.validate.Struct(in)

	var fieldErrs validator.ValidationErrors
	switch {
	case err == nil:
	case errors.As(err, &fieldErrs):
		for _, fe := range fieldErrs {
			path := fieldPath(fe.Namespace())
			if d.covers(path) {
				continue
			}
			violations = append(violations, Violation{
				Field:      path,
				Constraint: fe.Tag(),
				Param:      fe.Param(),
				Message:    message(fe.Tag(), fe.Param(), fe.Kind() == reflect.String),
			})
		}
	default:
		return fmt.Errorf("validating %s: %w", kind, err)
	}

	if len(violations) > 0 {
		return &Error{Kind: kind, Violations: violations}
	}
	return nil
}

// fieldPath drops the input struct name from a validator namespace.
func fieldPath(namespace string) string {
	_, path, found := strings.Cut(namespace, ".")
	if !found {
		return namespace
	}
	return path
}

// isEnumMember accepts values of the closed domain enumerations.
func isEnumMember(fl validator.FieldLevel) bool {
	enum, ok := fl.Field().Interface().(interface{ IsValid() bool })
	return ok && enum.IsValid()
}

// UTC date-times only: offsets other than Z and lowercase separators are rejected.
var isoDateTimePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}(\.\d+)?Z$`)

// isISODateTime accepts UTC date-times with optional fractional seconds,
// e.g. 2024-01-01T10:00:00Z or 2024-01-01T10:00:00.123Z.
func isISODateTime(fl validator.FieldLevel) bool {
	if fl.Field().Kind() != reflect.String {
		return false
	}
	s := fl.Field().String()
	if !isoDateTimePattern.MatchString(s) {
		return false
	}
	_, err := time.Parse(time.RFC3339Nano, s)
	return err == nil
}

// timestamp parses a date-time that already passed isodatetime.
func timestamp(s *string) time.Time {
	if s == nil {
		return time.Time{}
	}
	t, _ := time.Parse(time.RFC3339Nano, *s)
	return t.UTC()
}

func optionalTimestamp(s *string) *time.Time {
	if s == nil {
		return nil
	}
	t := timestamp(s)
	return &t
}

func setDefault[T any](field **T, value T) {
	if *field == nil {
		*field = &value
	}
}

func emptyIfNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}
