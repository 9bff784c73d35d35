// Package redact removes personal data and host details from strings before
// they are logged. Error chains can echo record values such as emails, as well
// as config file paths and stack fragments.
package redact

import "regexp"

// Placeholders substituted for redacted fragments.
const (
	RedactedEmailPlaceholder = "[REDACTED_EMAIL]"
	RedactedPathPlaceholder  = "[REDACTED_PATH]"
	RedactedStackPlaceholder = "[STACK_TRACE_REDACTED]"
	RedactedValuePlaceholder = "[REDACTED_VALUE]"
)

type rule struct {
	pattern     *regexp.Regexp
	placeholder string
}

// Rules are applied in order; stack traces go first so their file paths are
// not redacted piecemeal.
var rules = []rule{
	{regexp.MustCompile(`(?:goroutine \d+|panic:)[\s\S]*?(\n\t.*)+`), RedactedStackPlaceholder},
	{regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`), RedactedEmailPlaceholder},
	{regexp.MustCompile(`(/[\w.-]+){2,}`), RedactedPathPlaceholder},
	{regexp.MustCompile(`[A-Za-z]:\\[^\\]+(\\[^\\]+)+`), RedactedPathPlaceholder},

	// Quoted JSON values echoed by decoders, e.g. `invalid character 'x' in "Ada"`
	{regexp.MustCompile(`"[^"]{3,}"`), RedactedValuePlaceholder},
}

// String redacts sensitive information from the input string.
func String(input string) string {
	if input == "" {
		return input
	}

	result := input
	for _, r := range rules {
		result = r.pattern.ReplaceAllString(result, r.placeholder)
	}
	return result
}

// Error redacts sensitive information from an error's Error() output.
func Error(err error) string {
	if err == nil {
		return ""
	}
	return String(err.Error())
}
