package htmltime

import (
	"strconv"
)

// LocalDate is a calendar day with no time zone attached.
//
// The zero value is not a valid date. LocalDate values come from
// ParseLocalDate, NewLocalDate, or LocalDateOf, so a live value always
// satisfies the Gregorian calendar rules.
type LocalDate struct {
	year  int
	month int
	day   int
}

// Year returns the year, 1-9999.
func (d LocalDate) Year() int { return d.year }

// Month returns the month, 1-12.
func (d LocalDate) Month() int { return d.month }

// Day returns the day of month, 1-31 bounded by the month and year.
func (d LocalDate) Day() int { return d.day }

// NewLocalDate validates the components against the Gregorian calendar and
// returns the date. Errors are *ParseError with Offset == -1.
func NewLocalDate(year, month, day int) (LocalDate, error) {
	if year < 1 || year > 9999 {
		return LocalDate{}, rangeErr(ErrInvalidYear, FieldYear, -1, strconv.Itoa(year), 1, 9999)
	}
	if month < 1 || month > 12 {
		return LocalDate{}, rangeErr(ErrInvalidMonth, FieldMonth, -1, strconv.Itoa(month), 1, 12)
	}
	if max := daysInMonth(year, month); day < 1 || day > max {
		return LocalDate{}, rangeErr(ErrInvalidDay, FieldDay, -1, strconv.Itoa(day), 1, max)
	}
	return LocalDate{year: year, month: month, day: day}, nil
}

// LocalTime is a time of day with no time zone attached.
//
// Seconds are optional in the microsyntax: a parsed "23:59" has no seconds
// field, reads as second 0, and formats without one. The fractional-second
// digits are kept verbatim so that ".5", ".50", and ".500" stay distinct.
type LocalTime struct {
	hour      int
	minute    int
	second    int
	hasSecond bool
	frac      string // fraction digits, "" when absent; nonempty implies hasSecond
}

// Hour returns the hour, 0-23.
func (t LocalTime) Hour() int { return t.hour }

// Minute returns the minute, 0-59.
func (t LocalTime) Minute() int { return t.minute }

// Second returns the second, 0-59. Zero when no seconds field is present.
func (t LocalTime) Second() int { return t.second }

// HasSecond reports whether a seconds field was present.
func (t LocalTime) HasSecond() bool { return t.hasSecond }

// Fraction returns the fractional-second digits exactly as written, or ""
// when absent.
func (t LocalTime) Fraction() string { return t.frac }

// Nanosecond returns the fraction as nanoseconds. Digits beyond the ninth
// are truncated; callers that need more precision read Fraction directly.
func (t LocalTime) Nanosecond() int {
	f := t.frac
	if f == "" {
		return 0
	}
	if len(f) > 9 {
		f = f[:9]
	}
	n, _ := strconv.Atoi(f)
	for i := len(f); i < 9; i++ {
		n *= 10
	}
	return n
}

// NewLocalTime validates hour and minute and returns a time with no seconds
// field.
func NewLocalTime(hour, minute int) (LocalTime, error) {
	if err := checkClock(hour, minute, 0); err != nil {
		return LocalTime{}, err
	}
	return LocalTime{hour: hour, minute: minute}, nil
}

// NewLocalTimeWithSecond validates the components and returns a time with an
// explicit seconds field.
func NewLocalTimeWithSecond(hour, minute, second int) (LocalTime, error) {
	if err := checkClock(hour, minute, second); err != nil {
		return LocalTime{}, err
	}
	return LocalTime{hour: hour, minute: minute, second: second, hasSecond: true}, nil
}

// NewLocalTimeWithFraction is NewLocalTimeWithSecond plus fractional-second
// digits. frac must be one or more ASCII digits.
func NewLocalTimeWithFraction(hour, minute, second int, frac string) (LocalTime, error) {
	if err := checkClock(hour, minute, second); err != nil {
		return LocalTime{}, err
	}
	if frac == "" {
		return LocalTime{}, grammarErr(-1, "fraction digits", "")
	}
	for i := 0; i < len(frac); i++ {
		if frac[i] < '0' || frac[i] > '9' {
			return LocalTime{}, grammarErr(-1, "fraction digits", frac)
		}
	}
	return LocalTime{hour: hour, minute: minute, second: second, hasSecond: true, frac: frac}, nil
}

func checkClock(hour, minute, second int) *ParseError {
	if hour < 0 || hour > 23 {
		return rangeErr(ErrInvalidHour, FieldHour, -1, strconv.Itoa(hour), 0, 23)
	}
	if minute < 0 || minute > 59 {
		return rangeErr(ErrInvalidMinute, FieldMinute, -1, strconv.Itoa(minute), 0, 59)
	}
	if second < 0 || second > 59 {
		return rangeErr(ErrInvalidSecond, FieldSecond, -1, strconv.Itoa(second), 0, 59)
	}
	return nil
}

// Datetime is a LocalDate and a LocalTime joined by the datetime-local
// microsyntax. It owns both halves by value and is immutable and comparable.
type Datetime struct {
	date LocalDate
	time LocalTime
}

// Date returns the date half.
func (dt Datetime) Date() LocalDate { return dt.date }

// Time returns the time half.
func (dt Datetime) Time() LocalTime { return dt.time }

// NewDatetime combines an already-validated date and time. Since both halves
// are only obtainable validated, the combination cannot fail.
func NewDatetime(d LocalDate, t LocalTime) Datetime {
	return Datetime{date: d, time: t}
}

// daysInMonth returns the day count for a year/month pair, with February
// special-cased by the Gregorian leap-year rule. month must be in 1-12.
func daysInMonth(year, month int) int {
	switch month {
	case 1, 3, 5, 7, 8, 10, 12:
		return 31
	case 4, 6, 9, 11:
		return 30
	default:
		if isLeapYear(year) {
			return 29
		}
		return 28
	}
}

// isLeapYear reports whether year is a Gregorian leap year: divisible by 4,
// unless also divisible by 100, unless also divisible by 400.
func isLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}
