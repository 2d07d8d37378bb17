// Package validation collects field-level problems for editor forms.
// Presenters run the rules, gate Save through the dispatcher's can-execute
// predicate, and surface Problems next to the offending widgets.
package validation

import (
	"fmt"
	"net/mail"
	"strings"
	"unicode/utf8"
)

// Problem ties a validation failure to the field it belongs to.
type Problem struct {
	Field   string
	Message string
}

func (p Problem) String() string {
	return p.Field + ": " + p.Message
}

// Problems is the outcome of validating a form.
type Problems []Problem

// Valid reports whether no problems were recorded.
func (ps Problems) Valid() bool { return len(ps) == 0 }

// For returns the first problem recorded for field, if any.
func (ps Problems) For(field string) (Problem, bool) {
	for _, p := range ps {
		if p.Field == field {
			return p, true
		}
	}
	return Problem{}, false
}

func (ps Problems) String() string {
	if len(ps) == 0 {
		return "valid"
	}
	parts := make([]string, len(ps))
	for i, p := range ps {
		parts[i] = p.String()
	}
	return strings.Join(parts, "; ")
}

// Check accumulates problems across rule calls.
type Check struct {
	problems Problems
}

// Require records a problem when value is empty or whitespace.
func (c *Check) Require(field, value string) {
	if strings.TrimSpace(value) == "" {
		c.add(field, "must not be empty")
	}
}

// MaxLen records a problem when value exceeds max characters. Length is
// counted in runes, not bytes, so multibyte input is not penalized.
func (c *Check) MaxLen(field, value string, max int) {
	if n := utf8.RuneCountInString(value); n > max {
		c.add(field, fmt.Sprintf("length %d exceeds maximum %d", n, max))
	}
}

// Email records a problem when value is not a parseable address.
// Empty values pass; combine with Require when the field is mandatory.
func (c *Check) Email(field, value string) {
	if value == "" {
		return
	}
	if _, err := mail.ParseAddress(value); err != nil {
		c.add(field, "not a valid email address")
	}
}

// Rule records a problem with message when ok is false, for conditions
// the built-in rules do not cover.
func (c *Check) Rule(field string, ok bool, message string) {
	if !ok {
		c.add(field, message)
	}
}

// Problems returns everything recorded so far.
func (c *Check) Problems() Problems { return c.problems }

func (c *Check) add(field, message string) {
	c.problems = append(c.problems, Problem{Field: field, Message: message})
}
