// Package forms validates and submits the storefront's contact and newsletter
// forms. Submission is simulated: the submitter waits for a fixed delay and
// hands back a receipt, which is all the page needs to show its success state.
package forms

import (
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"unicode/utf8"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("forms: invalid input")

// Subject is the topic of a contact request.
type Subject string

// Contact subjects offered by the form.
const (
	SubjectGeneral  Subject = "general"
	SubjectCustom   Subject = "custom"
	SubjectCare     Subject = "care"
	SubjectShipping Subject = "shipping"
	SubjectReturns  Subject = "returns"
)

// Subjects lists the contact subjects in display order.
var Subjects = []Subject{SubjectGeneral, SubjectCustom, SubjectCare, SubjectShipping, SubjectReturns}

var subjectLabels = map[Subject]string{
	SubjectGeneral:  "Общо запитване",
	SubjectCustom:   "Поръчка по поръчка",
	SubjectCare:     "Грижа за бижутата",
	SubjectShipping: "Доставка",
	SubjectReturns:  "Връщане и замяна",
}

// Label returns the human-readable subject name.
func (s Subject) Label() string {
	if l, ok := subjectLabels[s]; ok {
		return l
	}
	return string(s)
}

// Minimum lengths, counted in runes.
const (
	MinNameLength    = 2
	MinMessageLength = 10
)

// FieldError reports a single invalid field.
type FieldError struct {
	Field  string
	Reason string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("forms: %s: %s", e.Field, e.Reason)
}

func (e *FieldError) Unwrap() error { return ErrInvalid }

// ValidateName requires at least MinNameLength non-space runes.
func ValidateName(s string) error {
	if utf8.RuneCountInString(strings.TrimSpace(s)) < MinNameLength {
		return &FieldError{Field: "name", Reason: fmt.Sprintf("must be at least %d characters", MinNameLength)}
	}
	return nil
}

// ValidateEmail requires a bare address such as "ana@example.com".
func ValidateEmail(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return &FieldError{Field: "email", Reason: "is required"}
	}
	addr, err := mail.ParseAddress(s)
	if err != nil || addr.Address != s || addr.Name != "" {
		return &FieldError{Field: "email", Reason: "is not a valid address"}
	}
	if at := strings.LastIndexByte(s, '@'); !strings.Contains(s[at+1:], ".") {
		return &FieldError{Field: "email", Reason: "is not a valid address"}
	}
	return nil
}

// ValidatePhone accepts an empty value or digits with common separators.
func ValidatePhone(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	digits := 0
	for i, r := range s {
		switch {
		case r >= '0' && r <= '9':
			digits++
		case r == '+' && i == 0:
		case r == ' ' || r == '-' || r == '(' || r == ')':
		default:
			return &FieldError{Field: "phone", Reason: "may only contain digits, spaces and + - ( )"}
		}
	}
	if digits < 6 {
		return &FieldError{Field: "phone", Reason: "is too short"}
	}
	return nil
}

// ValidateSubject requires one of Subjects.
func ValidateSubject(s Subject) error {
	if _, ok := subjectLabels[s]; !ok {
		return &FieldError{Field: "subject", Reason: fmt.Sprintf("unknown subject %q", string(s))}
	}
	return nil
}

// ValidateMessage requires at least MinMessageLength non-space runes.
func ValidateMessage(s string) error {
	if utf8.RuneCountInString(strings.TrimSpace(s)) < MinMessageLength {
		return &FieldError{Field: "message", Reason: fmt.Sprintf("must be at least %d characters", MinMessageLength)}
	}
	return nil
}

// Contact is a contact form submission.
type Contact struct {
	Name    string
	Email   string
	Phone   string
	Subject Subject
	Message string
}

// Validate returns every field error joined, or nil.
func (c Contact) Validate() error {
	return errors.Join(
		ValidateName(c.Name),
		ValidateEmail(c.Email),
		ValidatePhone(c.Phone),
		ValidateSubject(c.Subject),
		ValidateMessage(c.Message),
	)
}

// Newsletter is a newsletter sign-up.
type Newsletter struct {
	Email string
}

// Validate returns the email error, or nil.
func (n Newsletter) Validate() error {
	return ValidateEmail(n.Email)
}

// Fields returns the names of the invalid fields in err, in order.
func Fields(err error) []string {
	var out []string
	var walk func(error)
	walk = func(e error) {
		if e == nil {
			return
		}
		var fe *FieldError
		if joined, ok := e.(interface{ Unwrap() []error }); ok {
			for _, inner := range joined.Unwrap() {
				walk(inner)
			}
			return
		}
		if errors.As(e, &fe) {
			out = append(out, fe.Field)
		}
	}
	walk(err)
	return out
}
