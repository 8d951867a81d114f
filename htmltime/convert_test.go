package htmltime

import (
	"testing"
	"time"
)

// ============================================================
// Conversion Tests
// ============================================================

func TestIn(t *testing.T) {
	dt, err := Parse("2023-12-31T23:59:59.250")
	if err != nil {
		t.Fatal(err)
	}

	got := dt.In(time.UTC)
	want := time.Date(2023, time.December, 31, 23, 59, 59, 250000000, time.UTC)
	if !got.Equal(want) {
		t.Errorf("In(UTC) = %v, want %v", got, want)
	}

	d, err := ParseLocalDate("2023-12-31")
	if err != nil {
		t.Fatal(err)
	}
	wantMidnight := time.Date(2023, time.December, 31, 0, 0, 0, 0, time.UTC)
	if got := d.In(time.UTC); !got.Equal(wantMidnight) {
		t.Errorf("date In(UTC) = %v, want %v", got, wantMidnight)
	}
}

func TestOf(t *testing.T) {
	instant := time.Date(2024, time.February, 29, 8, 30, 15, 500000000, time.UTC)

	dt := DatetimeOf(instant)
	if got := dt.String(); got != "2024-02-29T08:30:15.500000000" {
		t.Errorf("DatetimeOf String = %q", got)
	}

	// Whole-second instants carry no fraction.
	whole := time.Date(2024, time.February, 29, 8, 30, 15, 0, time.UTC)
	if got := DatetimeOf(whole).String(); got != "2024-02-29T08:30:15" {
		t.Errorf("DatetimeOf String = %q", got)
	}

	// Of then In reproduces the instant.
	if back := dt.In(time.UTC); !back.Equal(instant) {
		t.Errorf("In(Of(t)) = %v, want %v", back, instant)
	}
}

func TestNanosecond(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"23:59", 0},
		{"23:59:59", 0},
		{"23:59:59.5", 500000000},
		{"23:59:59.050", 50000000},
		{"23:59:59.123456789", 123456789},
		// Digits past the ninth are truncated.
		{"23:59:59.1234567899999", 123456789},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			lt, err := ParseLocalTime(tt.input)
			if err != nil {
				t.Fatalf("ParseLocalTime failed: %v", err)
			}
			if got := lt.Nanosecond(); got != tt.want {
				t.Errorf("Nanosecond = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestCompare(t *testing.T) {
	// Chronological order; representation breaks ties so the order is total.
	ordered := []string{
		"2023-01-01T00:00",
		"2023-01-01T00:00:00",
		"2023-01-01T00:00:00.0",
		"2023-01-01T00:00:00.00",
		"2023-01-01T00:00:00.5",
		"2023-01-01T00:00:01",
		"2023-01-01T00:01",
		"2023-01-01T01:00",
		"2023-01-02T00:00",
		"2023-02-01T00:00",
		"2024-01-01T00:00",
	}

	vals := make([]Datetime, len(ordered))
	for i, s := range ordered {
		dt, err := Parse(s)
		if err != nil {
			t.Fatalf("Parse(%q) failed: %v", s, err)
		}
		vals[i] = dt
	}

	for i := range vals {
		for j := range vals {
			want := cmpInt(i, j)
			if got := vals[i].Compare(vals[j]); got != want {
				t.Errorf("Compare(%s, %s) = %d, want %d", ordered[i], ordered[j], got, want)
			}
		}
	}

	if !vals[0].Before(vals[1]) || vals[0].After(vals[1]) {
		t.Error("Before/After disagree with Compare")
	}
}

func TestCompare_FractionNumeric(t *testing.T) {
	// .5 and .50 are numerically equal; digit count only breaks the tie.
	a, _ := ParseLocalTime("00:00:00.5")
	b, _ := ParseLocalTime("00:00:00.50")
	c, _ := ParseLocalTime("00:00:00.05")

	if a.Compare(b) != -1 || b.Compare(a) != 1 {
		t.Error("fewer fraction digits should sort first on a numeric tie")
	}
	if c.Compare(a) != -1 {
		t.Error(".05 should sort before .5")
	}
}
