package htmltime

import "strconv"

// Parse parses a complete datetime-local string. The whole input must be
// consumed: trailing characters after a valid datetime are a grammar error.
func Parse(s string) (Datetime, error) {
	dt, end, err := ParseAt(s, 0)
	if err != nil {
		return Datetime{}, err
	}
	if end != len(s) {
		return Datetime{}, grammarErr(end, "end of input", s[end:min(end+8, len(s))])
	}
	return dt, nil
}

// ParseAt parses a datetime-local value beginning at byte offset i of s and
// returns the value together with the offset one past the consumed text.
// Unlike Parse it does not require full consumption, so a caller can pull a
// datetime out of a larger buffer. Error offsets are relative to s.
func ParseAt(s string, i int) (Datetime, int, error) {
	f, serr := scanDatetime(s, i)
	if serr != nil {
		return Datetime{}, 0, serr
	}
	d, verr := validateDate(&f)
	if verr != nil {
		return Datetime{}, 0, verr
	}
	t, verr := validateTime(&f)
	if verr != nil {
		return Datetime{}, 0, verr
	}
	return Datetime{date: d, time: t}, f.end, nil
}

// ParseLocalDate parses the standalone date microsyntax (4DIGIT "-" 2DIGIT
// "-" 2DIGIT), consuming the whole input.
func ParseLocalDate(s string) (LocalDate, error) {
	sc := &scanner{s: s}
	var f rawFields
	if err := sc.scanDate(&f); err != nil {
		return LocalDate{}, err
	}
	if sc.pos != len(s) {
		return LocalDate{}, grammarErr(sc.pos, "end of input", sc.found())
	}
	d, verr := validateDate(&f)
	if verr != nil {
		return LocalDate{}, verr
	}
	return d, nil
}

// ParseLocalTime parses the standalone time microsyntax (2DIGIT ":" 2DIGIT
// with optional seconds and fraction), consuming the whole input.
func ParseLocalTime(s string) (LocalTime, error) {
	sc := &scanner{s: s}
	var f rawFields
	if err := sc.scanTime(&f); err != nil {
		return LocalTime{}, err
	}
	if sc.pos != len(s) {
		return LocalTime{}, grammarErr(sc.pos, "end of input", sc.found())
	}
	t, verr := validateTime(&f)
	if verr != nil {
		return LocalTime{}, verr
	}
	return t, nil
}

// validateDate checks the scanned date fields in order year, month, day and
// constructs the LocalDate. The first violated field wins.
func validateDate(f *rawFields) (LocalDate, *ParseError) {
	// The scanner guarantees fixed-width digit runs, so Atoi cannot fail.
	year, _ := strconv.Atoi(f.year)
	month, _ := strconv.Atoi(f.month)
	day, _ := strconv.Atoi(f.day)

	if year == 0 {
		return LocalDate{}, rangeErr(ErrInvalidYear, FieldYear, f.yearOff, f.year, 1, 9999)
	}
	if month < 1 || month > 12 {
		return LocalDate{}, rangeErr(ErrInvalidMonth, FieldMonth, f.monthOff, f.month, 1, 12)
	}
	if max := daysInMonth(year, month); day < 1 || day > max {
		return LocalDate{}, rangeErr(ErrInvalidDay, FieldDay, f.dayOff, f.day, 1, max)
	}
	return LocalDate{year: year, month: month, day: day}, nil
}

// validateTime checks the scanned time fields in order hour, minute, second
// and constructs the LocalTime. The fraction needs no numeric check; its
// digits are kept verbatim.
func validateTime(f *rawFields) (LocalTime, *ParseError) {
	hour, _ := strconv.Atoi(f.hour)
	minute, _ := strconv.Atoi(f.minute)

	if hour > 23 {
		return LocalTime{}, rangeErr(ErrInvalidHour, FieldHour, f.hourOff, f.hour, 0, 23)
	}
	if minute > 59 {
		return LocalTime{}, rangeErr(ErrInvalidMinute, FieldMinute, f.minuteOff, f.minute, 0, 59)
	}
	t := LocalTime{hour: hour, minute: minute}
	if f.second != "" {
		second, _ := strconv.Atoi(f.second)
		if second > 59 {
			return LocalTime{}, rangeErr(ErrInvalidSecond, FieldSecond, f.secondOff, f.second, 0, 59)
		}
		t.second = second
		t.hasSecond = true
		t.frac = f.frac
	}
	return t, nil
}
