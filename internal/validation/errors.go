package validation

import (
	"fmt"
	"strings"

	"github.com/phrazzld/fitcore/internal/domain"
)

// Constraint names reported in violations. Tag-based constraints reuse the
// validator tag name (gt, min, max, email, url, isodatetime, enum, required).
const (
	ConstraintObject   = "object"
	ConstraintType     = "type"
	ConstraintRequired = "required"
)

// Violation is a single failed constraint on a single field.
// Field is the JSON path of the field, e.g. "workout.restDayPreference[2]";
// it is empty when the payload as a whole is not an object.
type Violation struct {
	Field      string `json:"field"`
	Constraint string `json:"constraint"`
	Param      string `json:"param,omitempty"`
	Message    string `json:"message"`
}

func (v Violation) String() string {
	field := v.Field
	if field == "" {
		field = "(record)"
	}
	return field + " " + v.Message
}

// Violations is the list of every constraint a payload failed.
type Violations []Violation

func (vs Violations) String() string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = v.String()
	}
	return strings.Join(parts, "; ")
}

// Fields returns the distinct field paths that have at least one violation.
func (vs Violations) Fields() []string {
	seen := make(map[string]bool, len(vs))
	fields := make([]string, 0, len(vs))
	for _, v := range vs {
		if seen[v.Field] {
			continue
		}
		seen[v.Field] = true
		fields = append(fields, v.Field)
	}
	return fields
}

// Error is returned when a payload fails validation. It unwraps to
// domain.ErrValidation.
type Error struct {
	Kind       Kind
	Violations Violations
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: invalid %s: %s", domain.ErrValidation, e.Kind, e.Violations)
}

func (e *Error) Unwrap() error {
	return domain.ErrValidation
}

func message(constraint, param string, isString bool) string {
	switch constraint {
	case ConstraintObject:
		return "must be a JSON object"
	case ConstraintType:
		return "has the wrong type"
	case ConstraintRequired:
		return "is required"
	case "gt":
		return "must be greater than " + param
	case "min":
		if isString {
			return "must be at least " + param + " characters long"
		}
		return "must be at least " + param
	case "max":
		if isString {
			return "must be at most " + param + " characters long"
		}
		return "must be at most " + param
	case "email":
		return "must be a valid email address"
	case "url":
		return "must be a valid URL"
	case "isodatetime":
		return "must be an ISO-8601 date-time"
	case "enum":
		return "is not an allowed value"
	default:
		return "failed the " + constraint + " constraint"
	}
}
