// Package contact holds the contact form's field set, its validation
// predicates, and the snapshot type a validation pass runs against.
package contact

import "fmt"

// Field identifies one of the contact form inputs.
type Field int

const (
	FieldFirstName Field = iota
	FieldLastName
	FieldEmail
	FieldSubject
	FieldMessage
)

// Fields lists every form field in layout order.
var Fields = []Field{
	FieldFirstName,
	FieldLastName,
	FieldEmail,
	FieldSubject,
	FieldMessage,
}

// Key returns the stable identifier of the field, used in JSON input,
// validation errors, and logs.
func (f Field) Key() string {
	switch f {
	case FieldFirstName:
		return "first_name"
	case FieldLastName:
		return "last_name"
	case FieldEmail:
		return "email"
	case FieldSubject:
		return "subject"
	case FieldMessage:
		return "message"
	default:
		return "unknown"
	}
}

// Label returns the display label of the field.
func (f Field) Label() string {
	switch f {
	case FieldFirstName:
		return "First name"
	case FieldLastName:
		return "Last name"
	case FieldEmail:
		return "Email"
	case FieldSubject:
		return "Subject"
	case FieldMessage:
		return "Message"
	default:
		return ""
	}
}

// Hint is the message shown next to a field flagged as invalid.
func (f Field) Hint() string {
	switch f {
	case FieldFirstName, FieldLastName:
		return "use letters and spaces only"
	case FieldEmail:
		return "enter a valid email address"
	case FieldSubject:
		return "choose a subject"
	case FieldMessage:
		return fmt.Sprintf("write at least %d characters", MinMessageLength)
	default:
		return ""
	}
}

func (f Field) String() string { return f.Key() }

// Snapshot is the set of field values at the moment of a validation pass.
type Snapshot struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Subject   string `json:"subject"`
	Message   string `json:"message"`
}

// Value returns the snapshot value for f.
func (s Snapshot) Value(f Field) string {
	switch f {
	case FieldFirstName:
		return s.FirstName
	case FieldLastName:
		return s.LastName
	case FieldEmail:
		return s.Email
	case FieldSubject:
		return s.Subject
	case FieldMessage:
		return s.Message
	default:
		return ""
	}
}

// Set returns a copy of s with the value for f replaced.
func (s Snapshot) Set(f Field, v string) Snapshot {
	switch f {
	case FieldFirstName:
		s.FirstName = v
	case FieldLastName:
		s.LastName = v
	case FieldEmail:
		s.Email = v
	case FieldSubject:
		s.Subject = v
	case FieldMessage:
		s.Message = v
	}
	return s
}
