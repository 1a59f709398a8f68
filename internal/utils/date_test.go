package util

import (
	"encoding/json"
	"testing"
	"time"
)

func TestDateOnlyJSONRoundTrip(t *testing.T) {
	d := NewDateOnly(time.Date(2026, 8, 31, 15, 4, 5, 0, time.UTC))

	b, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(b) != `"2026-08-31"` {
		t.Errorf("marshal = %s, want \"2026-08-31\" (time of day dropped)", b)
	}

	var parsed DateOnly
	if err := json.Unmarshal(b, &parsed); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !parsed.Equal(d) {
		t.Errorf("round trip = %v, want %v", parsed, d)
	}

	var zero DateOnly
	b, err = json.Marshal(zero)
	if err != nil {
		t.Fatalf("marshal zero: %v", err)
	}
	if string(b) != "null" {
		t.Errorf("marshal zero = %s, want null", b)
	}
}

func TestDateOnlyScan(t *testing.T) {
	cases := []struct {
		name string
		in   interface{}
		want string
	}{
		{"time value", time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC), "2026-08-31"},
		{"bare date", "2026-08-31", "2026-08-31"},
		{"datetime", "2026-08-31 00:00:00", "2026-08-31"},
		{"datetime with offset", "2026-08-31 00:00:00+00:00", "2026-08-31"},
		{"rfc3339", "2026-08-31T00:00:00Z", "2026-08-31"},
		{"bytes", []byte("2026-08-31"), "2026-08-31"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var d DateOnly
			if err := d.Scan(tc.in); err != nil {
				t.Fatalf("scan %v: %v", tc.in, err)
			}
			if got := d.Format("2006-01-02"); got != tc.want {
				t.Errorf("scan %v = %s, want %s", tc.in, got, tc.want)
			}
		})
	}

	var d DateOnly
	if err := d.Scan(nil); err != nil {
		t.Fatalf("scan nil: %v", err)
	}
	if !d.IsZero() {
		t.Error("scan nil produced non-zero date")
	}
	if err := d.Scan(42); err == nil {
		t.Error("scan int succeeded, want error")
	}
}

func TestDateOnlyOrdering(t *testing.T) {
	earlier := NewDateOnly(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
	later := NewDateOnly(time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC))

	if !earlier.Before(later) {
		t.Error("earlier.Before(later) = false")
	}
	if later.Before(earlier) {
		t.Error("later.Before(earlier) = true")
	}
	if !earlier.Equal(NewDateOnly(earlier.Time)) {
		t.Error("same date not equal")
	}
}
