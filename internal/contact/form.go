// Package contact implements the contact form: input sanitization,
// required-field validation and local delivery of submissions.
package contact

import (
	"regexp"
	"strings"
)

// tagPattern matches tag-like substrings, including an unterminated "<tag"
// at the end of input.
var tagPattern = regexp.MustCompile(`<[^>]*>?`)

// Sanitize strips tag-like substrings from s. It is a cosmetic filter, not
// an escaping boundary; rendering still escapes everything.
func Sanitize(s string) string {
	return tagPattern.ReplaceAllString(s, "")
}

// Form is the contact form as typed by the visitor.
type Form struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// Sanitized returns a copy of f with every field passed through Sanitize.
func (f Form) Sanitized() Form {
	return Form{
		Name:    Sanitize(f.Name),
		Email:   Sanitize(f.Email),
		Message: Sanitize(f.Message),
	}
}

// ValidationError lists the required fields that were left empty.
type ValidationError struct {
	Missing []string
}

func (e *ValidationError) Error() string {
	return "missing required fields: " + strings.Join(e.Missing, ", ")
}

// Validate requires every field to be non-blank.
func (f Form) Validate() error {
	var missing []string
	if strings.TrimSpace(f.Name) == "" {
		missing = append(missing, "name")
	}
	if strings.TrimSpace(f.Email) == "" {
		missing = append(missing, "email")
	}
	if strings.TrimSpace(f.Message) == "" {
		missing = append(missing, "message")
	}
	if len(missing) > 0 {
		return &ValidationError{Missing: missing}
	}
	return nil
}

// Acknowledgment is shown to the visitor after a submission.
const Acknowledgment = "Message sent! (Simulation)"
