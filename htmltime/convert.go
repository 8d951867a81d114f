package htmltime

import (
	"fmt"
	"strings"
	"time"
)

// Conversion to and from time.Time. The zone is always supplied by the
// caller; the values themselves stay zone-less.

// In returns the instant at which dt occurs in loc.
func (dt Datetime) In(loc *time.Location) time.Time {
	return time.Date(dt.date.year, time.Month(dt.date.month), dt.date.day,
		dt.time.hour, dt.time.minute, dt.time.second, dt.time.Nanosecond(), loc)
}

// In returns midnight at the start of d in loc.
func (d LocalDate) In(loc *time.Location) time.Time {
	return time.Date(d.year, time.Month(d.month), d.day, 0, 0, 0, 0, loc)
}

// LocalDateOf returns the calendar day on which t occurs, in t's location.
// Years outside 1-9999 cannot round-trip through the microsyntax.
func LocalDateOf(t time.Time) LocalDate {
	year, month, day := t.Date()
	return LocalDate{year: year, month: int(month), day: day}
}

// LocalTimeOf returns the wall-clock time at which t occurs, in t's
// location. The seconds field is always present; sub-second precision is
// captured as a nine-digit fraction when nonzero.
func LocalTimeOf(t time.Time) LocalTime {
	hour, minute, second := t.Clock()
	lt := LocalTime{hour: hour, minute: minute, second: second, hasSecond: true}
	if ns := t.Nanosecond(); ns != 0 {
		lt.frac = fmt.Sprintf("%09d", ns)
	}
	return lt
}

// DatetimeOf returns the local date and time at which t occurs, in t's
// location.
func DatetimeOf(t time.Time) Datetime {
	return Datetime{date: LocalDateOf(t), time: LocalTimeOf(t)}
}

// Compare returns -1, 0, or +1 ordering d chronologically against o.
func (d LocalDate) Compare(o LocalDate) int {
	if d.year != o.year {
		return cmpInt(d.year, o.year)
	}
	if d.month != o.month {
		return cmpInt(d.month, o.month)
	}
	return cmpInt(d.day, o.day)
}

// Compare returns -1, 0, or +1 ordering t chronologically against o. For
// equal wall-clock values the representation breaks the tie so ordering is
// total: an absent seconds field sorts before an explicit ":00", and fewer
// fraction digits sort before more.
func (t LocalTime) Compare(o LocalTime) int {
	if t.hour != o.hour {
		return cmpInt(t.hour, o.hour)
	}
	if t.minute != o.minute {
		return cmpInt(t.minute, o.minute)
	}
	if t.second != o.second {
		return cmpInt(t.second, o.second)
	}
	if c := cmpFrac(t.frac, o.frac); c != 0 {
		return c
	}
	if t.hasSecond != o.hasSecond {
		if !t.hasSecond {
			return -1
		}
		return 1
	}
	return cmpInt(len(t.frac), len(o.frac))
}

// cmpFrac compares fraction digit strings numerically by right-padding the
// shorter with zeros.
func cmpFrac(a, b string) int {
	if len(a) < len(b) {
		a += strings.Repeat("0", len(b)-len(a))
	} else if len(b) < len(a) {
		b += strings.Repeat("0", len(a)-len(b))
	}
	return strings.Compare(a, b)
}

// Compare returns -1, 0, or +1 ordering dt chronologically against o, with
// the date compared first.
func (dt Datetime) Compare(o Datetime) int {
	if c := dt.date.Compare(o.date); c != 0 {
		return c
	}
	return dt.time.Compare(o.time)
}

// Before reports whether dt orders strictly before o.
func (dt Datetime) Before(o Datetime) bool { return dt.Compare(o) < 0 }

// After reports whether dt orders strictly after o.
func (dt Datetime) After(o Datetime) bool { return dt.Compare(o) > 0 }

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
