package htmltime

// The scanner walks the input once, left to right, splitting it into raw
// digit fields at the grammar's fixed separator positions. It never
// interprets numeric ranges: "99-99-99T99:99" scans cleanly and is rejected
// later by the validator. Keeping the grammar check free of calendar
// arithmetic keeps each failure class independently testable.

// rawFields holds the substrings produced by a grammar scan, before any
// semantic validation, along with the byte offset of each field.
type rawFields struct {
	year, month, day string
	hour, minute     string
	second           string // "" when the optional seconds field is absent
	frac             string // "" when the optional fraction is absent

	yearOff, monthOff, dayOff int
	hourOff, minuteOff        int
	secondOff, fracOff        int

	end int // offset one past the last consumed byte
}

type scanner struct {
	s   string
	pos int
}

// found returns the text at the current position for error reporting, or
// "end of input" wording via the empty string.
func (sc *scanner) found() string {
	if sc.pos >= len(sc.s) {
		return ""
	}
	// A short window is enough to locate the problem.
	end := sc.pos + 8
	if end > len(sc.s) {
		end = len(sc.s)
	}
	return sc.s[sc.pos:end]
}

// digits consumes exactly n ASCII digits and returns them with their start
// offset. what names the field for the error message.
func (sc *scanner) digits(n int, what string) (string, int, *ParseError) {
	start := sc.pos
	for i := 0; i < n; i++ {
		if sc.pos >= len(sc.s) || sc.s[sc.pos] < '0' || sc.s[sc.pos] > '9' {
			return "", start, grammarErr(sc.pos, what, sc.found())
		}
		sc.pos++
	}
	return sc.s[start:sc.pos], start, nil
}

// digitRun consumes one or more ASCII digits.
func (sc *scanner) digitRun(what string) (string, int, *ParseError) {
	start := sc.pos
	for sc.pos < len(sc.s) && sc.s[sc.pos] >= '0' && sc.s[sc.pos] <= '9' {
		sc.pos++
	}
	if sc.pos == start {
		return "", start, grammarErr(start, what, sc.found())
	}
	return sc.s[start:sc.pos], start, nil
}

// literal consumes the single byte c.
func (sc *scanner) literal(c byte, what string) *ParseError {
	if sc.pos >= len(sc.s) || sc.s[sc.pos] != c {
		return grammarErr(sc.pos, what, sc.found())
	}
	sc.pos++
	return nil
}

// peek reports whether the next byte is c.
func (sc *scanner) peek(c byte) bool {
	return sc.pos < len(sc.s) && sc.s[sc.pos] == c
}

// scanDate consumes 4DIGIT "-" 2DIGIT "-" 2DIGIT.
func (sc *scanner) scanDate(f *rawFields) *ParseError {
	var err *ParseError
	if f.year, f.yearOff, err = sc.digits(4, `4-digit year`); err != nil {
		return err
	}
	if err = sc.literal('-', `"-"`); err != nil {
		return err
	}
	if f.month, f.monthOff, err = sc.digits(2, `2-digit month`); err != nil {
		return err
	}
	if err = sc.literal('-', `"-"`); err != nil {
		return err
	}
	if f.day, f.dayOff, err = sc.digits(2, `2-digit day`); err != nil {
		return err
	}
	return nil
}

// scanTime consumes 2DIGIT ":" 2DIGIT [ ":" 2DIGIT [ "." 1*DIGIT ] ].
// A ":" after the minute commits to a seconds field, and a "." after the
// seconds commits to at least one fraction digit.
func (sc *scanner) scanTime(f *rawFields) *ParseError {
	var err *ParseError
	if f.hour, f.hourOff, err = sc.digits(2, `2-digit hour`); err != nil {
		return err
	}
	if err = sc.literal(':', `":"`); err != nil {
		return err
	}
	if f.minute, f.minuteOff, err = sc.digits(2, `2-digit minute`); err != nil {
		return err
	}
	if !sc.peek(':') {
		return nil
	}
	sc.pos++
	if f.second, f.secondOff, err = sc.digits(2, `2-digit second`); err != nil {
		return err
	}
	if !sc.peek('.') {
		return nil
	}
	sc.pos++
	if f.frac, f.fracOff, err = sc.digitRun("fraction digits"); err != nil {
		return err
	}
	return nil
}

// scanDatetime scans a full datetime-local string starting at byte offset i.
// It does not require the whole input to be consumed; f.end reports how far
// it got.
func scanDatetime(s string, i int) (rawFields, *ParseError) {
	sc := &scanner{s: s, pos: i}
	var f rawFields
	if err := sc.scanDate(&f); err != nil {
		return f, err
	}
	// Either of the two permitted date/time separators, nothing else.
	if sc.peek('T') || sc.peek(' ') {
		sc.pos++
	} else {
		return f, grammarErr(sc.pos, `"T" or " "`, sc.found())
	}
	if err := sc.scanTime(&f); err != nil {
		return f, err
	}
	f.end = sc.pos
	return f, nil
}
