package htmltime

import "fmt"

// ErrorKind classifies why an input was rejected.
type ErrorKind uint8

const (
	// ErrMalformedGrammar means the input does not match the fixed
	// token/separator structure: wrong digit-group length, missing or wrong
	// separator, trailing garbage, or a fraction dot with no digits.
	ErrMalformedGrammar ErrorKind = iota

	// ErrInvalidYear means the year is zero. The four-digit grammar already
	// bounds years to 0000-9999; the standard additionally requires year > 0.
	ErrInvalidYear

	// ErrInvalidMonth means the month is outside 1-12.
	ErrInvalidMonth

	// ErrInvalidDay means the day is zero or exceeds the number of days in
	// the given year and month.
	ErrInvalidDay

	// ErrInvalidHour means the hour is outside 0-23.
	ErrInvalidHour

	// ErrInvalidMinute means the minute is outside 0-59.
	ErrInvalidMinute

	// ErrInvalidSecond means the second is outside 0-59. Only reported when
	// a seconds field is present.
	ErrInvalidSecond
)

// String returns the kind name.
func (k ErrorKind) String() string {
	switch k {
	case ErrMalformedGrammar:
		return "malformed_grammar"
	case ErrInvalidYear:
		return "invalid_year"
	case ErrInvalidMonth:
		return "invalid_month"
	case ErrInvalidDay:
		return "invalid_day"
	case ErrInvalidHour:
		return "invalid_hour"
	case ErrInvalidMinute:
		return "invalid_minute"
	case ErrInvalidSecond:
		return "invalid_second"
	default:
		return "unknown"
	}
}

// Field identifies a component of the datetime grammar.
type Field uint8

const (
	FieldYear Field = iota
	FieldMonth
	FieldDay
	FieldHour
	FieldMinute
	FieldSecond
	FieldFraction
)

// String returns the field name.
func (f Field) String() string {
	switch f {
	case FieldYear:
		return "year"
	case FieldMonth:
		return "month"
	case FieldDay:
		return "day"
	case FieldHour:
		return "hour"
	case FieldMinute:
		return "minute"
	case FieldSecond:
		return "second"
	case FieldFraction:
		return "fraction"
	default:
		return "unknown"
	}
}

// ParseError describes exactly why an input was rejected. Kind discriminates
// the failure class; the remaining fields carry enough context for a caller
// to build a precise user-facing message without re-deriving calendar rules.
type ParseError struct {
	Kind  ErrorKind
	Field Field

	// Offset is the byte offset of the offending token within the input,
	// or -1 when the error did not arise from parsing text (constructors).
	Offset int

	// Value is the offending text (or the decimal rendering of the
	// offending number, for constructor errors).
	Value string

	// Min and Max give the valid range. Set for range errors only; for
	// ErrInvalidDay, Max is the number of days in the given year and month.
	Min, Max int

	// Expect names the token the scanner was looking for. Set for
	// ErrMalformedGrammar only.
	Expect string
}

func (e *ParseError) Error() string {
	if e.Kind == ErrMalformedGrammar {
		if e.Offset >= 0 {
			return fmt.Sprintf("malformed datetime: expected %s at offset %d, found %q", e.Expect, e.Offset, e.Value)
		}
		return fmt.Sprintf("malformed datetime: expected %s, found %q", e.Expect, e.Value)
	}
	return fmt.Sprintf("%s %s out of range: want %d to %d", e.Field, e.Value, e.Min, e.Max)
}

func grammarErr(offset int, expect, found string) *ParseError {
	return &ParseError{
		Kind:   ErrMalformedGrammar,
		Offset: offset,
		Value:  found,
		Expect: expect,
	}
}

func rangeErr(kind ErrorKind, field Field, offset int, value string, min, max int) *ParseError {
	return &ParseError{
		Kind:   kind,
		Field:  field,
		Offset: offset,
		Value:  value,
		Min:    min,
		Max:    max,
	}
}
