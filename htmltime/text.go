package htmltime

// Text marshaling delegates to the canonical string forms, which also gives
// JSON string encoding through encoding/json for free.

// MarshalText returns the canonical yyyy-mm-dd form.
func (d LocalDate) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText parses the date microsyntax into d.
func (d *LocalDate) UnmarshalText(b []byte) error {
	res, err := ParseLocalDate(string(b))
	if err != nil {
		return err
	}
	*d = res
	return nil
}

// MarshalText returns the canonical time form.
func (t LocalTime) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText parses the time microsyntax into t.
func (t *LocalTime) UnmarshalText(b []byte) error {
	res, err := ParseLocalTime(string(b))
	if err != nil {
		return err
	}
	*t = res
	return nil
}

// MarshalText returns the canonical datetime-local form.
func (dt Datetime) MarshalText() ([]byte, error) {
	return []byte(dt.String()), nil
}

// UnmarshalText parses the datetime-local microsyntax into dt.
func (dt *Datetime) UnmarshalText(b []byte) error {
	res, err := Parse(string(b))
	if err != nil {
		return err
	}
	*dt = res
	return nil
}
