package rules

import "errors"

// Error is a domain rule violation. Name identifies the rule that failed and
// Message is the rendered, human readable reason.
type Error struct {
	Name    string `json:"name"`
	Message string `json:"message"`
}

func (e *Error) Error() string {
	return e.Message
}

// Is matches any *Error with the same Name.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Name == e.Name
}

func Violation(name, message string) *Error {
	return &Error{Name: name, Message: message}
}

// IsViolation reports whether err is a rule violation named name.
func IsViolation(err error, name string) bool {
	var v *Error
	return errors.As(err, &v) && v.Name == name
}
