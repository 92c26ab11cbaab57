package contact

import (
	"errors"
	"strings"
	"unicode/utf16"

	"github.com/hay-kot/criterio"
)

// MinMessageLength is the minimum trimmed length of an acceptable message.
const MinMessageLength = 20

// minEmailLength is the shortest trimmed email the coarse check accepts.
const minEmailLength = 5

// isTrimSpace reports whether r is stripped by Trim. The set matches the
// WhiteSpace and LineTerminator code points removed by String.prototype.trim,
// which differs from unicode.IsSpace (no U+0085, adds U+FEFF).
func isTrimSpace(r rune) bool {
	switch r {
	case '\t', '\n', '\v', '\f', '\r', ' ',
		'\u00a0', '\u1680', '\u2028', '\u2029', '\u202f', '\u205f', '\u3000', '\ufeff':
		return true
	}
	return r >= '\u2000' && r <= '\u200a'
}

// Trim removes leading and trailing whitespace from s.
func Trim(s string) string {
	return strings.TrimFunc(s, isTrimSpace)
}

// Length returns the length of s in UTF-16 code units, so a character
// outside the Basic Multilingual Plane counts as two.
func Length(s string) int {
	n := 0
	for _, r := range s {
		if l := utf16.RuneLen(r); l > 0 {
			n += l
		} else {
			n++
		}
	}
	return n
}

// isLetter reports whether r is an ASCII letter or falls in U+00C0..U+00FF.
// The Latin-1 range is taken whole, so U+00D7 and U+00F7 count as letters.
func isLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') ||
		(r >= 'A' && r <= 'Z') ||
		(r >= '\u00c0' && r <= '\u00ff')
}

// ValidName reports whether name, once trimmed, is non-empty and made only of
// letters and spaces.
func ValidName(name string) bool {
	trimmed := Trim(name)
	if trimmed == "" {
		return false
	}

	for _, r := range trimmed {
		if !isLetter(r) && r != ' ' {
			return false
		}
	}

	return true
}

// ValidEmail is a coarse syntactic check: the trimmed value must contain '@'
// and '.' and be at least five characters long. It is not RFC 5322 parsing.
func ValidEmail(email string) bool {
	trimmed := Trim(email)
	return strings.Contains(trimmed, "@") &&
		strings.Contains(trimmed, ".") &&
		Length(trimmed) >= minEmailLength
}

// ValidMessage reports whether the trimmed message meets MinMessageLength.
func ValidMessage(message string) bool {
	return Length(Trim(message)) >= MinMessageLength
}

// ValidSubject reports whether a subject has been chosen.
func ValidSubject(subject string) bool {
	return Trim(subject) != ""
}

// Predicate returns the validation predicate for f.
func Predicate(f Field) func(string) bool {
	switch f {
	case FieldFirstName, FieldLastName:
		return ValidName
	case FieldEmail:
		return ValidEmail
	case FieldSubject:
		return ValidSubject
	case FieldMessage:
		return ValidMessage
	default:
		return func(string) bool { return false }
	}
}

// Results holds the outcome of every predicate for one snapshot.
type Results map[Field]bool

// OK reports whether every field passed.
func (r Results) OK() bool {
	for _, f := range Fields {
		if !r[f] {
			return false
		}
	}
	return true
}

// Failed returns the failing fields in layout order.
func (r Results) Failed() []Field {
	var failed []Field
	for _, f := range Fields {
		if !r[f] {
			failed = append(failed, f)
		}
	}
	return failed
}

// Check evaluates every predicate against s. Evaluation never stops early;
// each field gets a result regardless of the others.
func Check(s Snapshot) Results {
	results := make(Results, len(Fields))
	for _, f := range Fields {
		results[f] = Predicate(f)(s.Value(f))
	}
	return results
}

// FieldValidator adapts the predicate for f to an error-returning validator,
// suitable for prompt libraries and criterio.
func FieldValidator(f Field) func(string) error {
	pred := Predicate(f)
	return func(v string) error {
		if pred(v) {
			return nil
		}
		return errors.New(f.Hint())
	}
}

// Validate checks s and returns criterio.FieldErrors naming every failing
// field, or nil when the snapshot is acceptable.
func Validate(s Snapshot) error {
	var errs criterio.FieldErrorsBuilder
	for _, f := range Fields {
		if err := FieldValidator(f)(s.Value(f)); err != nil {
			errs = errs.Append(f.Key(), err)
		}
	}
	return errs.ToError()
}
