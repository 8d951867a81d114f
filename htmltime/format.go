package htmltime

import "strings"

// Formatting is the exact inverse of parsing: for every valid value d,
// Parse(d.String()) reproduces d, including the presence of the seconds
// field and the fraction's digit count. Output always uses the canonical
// "T" separator, whichever separator was accepted on input.

const digits = "0123456789"

func pad2(sb *strings.Builder, n int) {
	sb.WriteByte(digits[n/10])
	sb.WriteByte(digits[n%10])
}

func pad4(sb *strings.Builder, n int) {
	pad2(sb, n/100)
	pad2(sb, n%100)
}

// String returns the date in canonical yyyy-mm-dd form.
func (d LocalDate) String() string {
	var sb strings.Builder
	sb.Grow(10)
	d.emit(&sb)
	return sb.String()
}

func (d LocalDate) emit(sb *strings.Builder) {
	pad4(sb, d.year)
	sb.WriteByte('-')
	pad2(sb, d.month)
	sb.WriteByte('-')
	pad2(sb, d.day)
}

// String returns the time in canonical hh:mm form, extended with seconds and
// fraction digits only when present.
func (t LocalTime) String() string {
	var sb strings.Builder
	sb.Grow(9 + len(t.frac))
	t.emit(&sb)
	return sb.String()
}

func (t LocalTime) emit(sb *strings.Builder) {
	pad2(sb, t.hour)
	sb.WriteByte(':')
	pad2(sb, t.minute)
	if !t.hasSecond {
		return
	}
	sb.WriteByte(':')
	pad2(sb, t.second)
	if t.frac != "" {
		sb.WriteByte('.')
		sb.WriteString(t.frac)
	}
}

// String returns the canonical datetime-local form: date, "T", time.
func (dt Datetime) String() string {
	var sb strings.Builder
	sb.Grow(20 + len(dt.time.frac))
	dt.date.emit(&sb)
	sb.WriteByte('T')
	dt.time.emit(&sb)
	return sb.String()
}
