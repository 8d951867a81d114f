package htmltime

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// ============================================================
// Text / JSON Encoding Tests
// ============================================================

var cmpOpts = cmp.Options{
	cmp.AllowUnexported(LocalDate{}, LocalTime{}, Datetime{}),
}

func TestMarshalText_RoundTrip(t *testing.T) {
	for _, input := range []string{
		"2023-12-31T23:59:59",
		"2023-06-15T08:30",
		"2024-02-29T12:00:00.250",
	} {
		t.Run(input, func(t *testing.T) {
			dt, err := Parse(input)
			if err != nil {
				t.Fatalf("Parse failed: %v", err)
			}

			b, err := dt.MarshalText()
			if err != nil {
				t.Fatalf("MarshalText failed: %v", err)
			}
			if string(b) != input {
				t.Errorf("MarshalText = %q, want %q", b, input)
			}

			var back Datetime
			if err := back.UnmarshalText(b); err != nil {
				t.Fatalf("UnmarshalText failed: %v", err)
			}
			if diff := cmp.Diff(dt, back, cmpOpts); diff != "" {
				t.Errorf("round trip mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestUnmarshalText_Invalid(t *testing.T) {
	var dt Datetime
	if err := dt.UnmarshalText([]byte("2023-02-30T00:00")); err == nil {
		t.Error("expected error for invalid day")
	}
	var d LocalDate
	if err := d.UnmarshalText([]byte("2023-13-01")); err == nil {
		t.Error("expected error for invalid month")
	}
	var lt LocalTime
	if err := lt.UnmarshalText([]byte("24:00")); err == nil {
		t.Error("expected error for invalid hour")
	}
}

func TestJSON_RoundTrip(t *testing.T) {
	type event struct {
		Name string    `json:"name"`
		When Datetime  `json:"when"`
		Day  LocalDate `json:"day"`
		At   LocalTime `json:"at"`
	}

	dt, err := Parse("2023-12-31T23:59:59.50")
	if err != nil {
		t.Fatal(err)
	}
	in := event{Name: "deadline", When: dt, Day: dt.Date(), At: dt.Time()}

	b, err := json.Marshal(in)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	want := `{"name":"deadline","when":"2023-12-31T23:59:59.50","day":"2023-12-31","at":"23:59:59.50"}`
	if string(b) != want {
		t.Errorf("Marshal = %s, want %s", b, want)
	}

	var out event
	if err := json.Unmarshal(b, &out); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if diff := cmp.Diff(in, out, cmpOpts); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestJSON_InvalidValue(t *testing.T) {
	var v struct {
		When Datetime `json:"when"`
	}
	err := json.Unmarshal([]byte(`{"when":"2023-12-31T24:00"}`), &v)
	if err == nil {
		t.Fatal("expected error for hour 24")
	}
}
