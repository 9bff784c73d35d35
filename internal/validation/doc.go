// Package validation turns untrusted record payloads into normalized domain
// entities.
//
// Every validator follows the same pipeline: each field of the payload is
// decoded on its own so that one malformed field does not hide the others,
// declared defaults are filled in for absent optional fields, and the
// constraint tags of the schema are checked with go-playground/validator.
// Failures are reported as an *Error carrying every violation found, each
// addressed by the JSON path of the offending field.
//
// A Validator holds no per-call state and is safe for concurrent use.
package validation
