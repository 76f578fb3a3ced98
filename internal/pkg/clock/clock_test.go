package clock

import (
	"testing"
	"time"
)

func fixedNow(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestFixedOffsetRendering(t *testing.T) {
	cases := []struct {
		name      string
		utc       time.Time
		offsetMin int
		wantDate  string
		wantTime  string
	}{
		{
			name:      "IST midday",
			utc:       time.Date(2025, 3, 10, 4, 0, 0, 0, time.UTC),
			offsetMin: 330,
			wantDate:  "2025-03-10",
			wantTime:  "09:30",
		},
		{
			name:      "IST rolls the date forward",
			utc:       time.Date(2025, 3, 10, 20, 45, 0, 0, time.UTC),
			offsetMin: 330,
			wantDate:  "2025-03-11",
			wantTime:  "02:15",
		},
		{
			name:      "zero offset is plain UTC",
			utc:       time.Date(2025, 12, 31, 23, 59, 0, 0, time.UTC),
			offsetMin: 0,
			wantDate:  "2025-12-31",
			wantTime:  "23:59",
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			clk := NewFixedOffsetAt(c.offsetMin, fixedNow(c.utc))
			if got := clk.Today(); got != c.wantDate {
				t.Errorf("Today() = %q, want %q", got, c.wantDate)
			}
			if got := clk.TimeOfDay(); got != c.wantTime {
				t.Errorf("TimeOfDay() = %q, want %q", got, c.wantTime)
			}
		})
	}
}

func TestFixedOffsetIgnoresHostLocation(t *testing.T) {
	// The input carries a non-UTC location; the clock must shift from the UTC
	// instant, not from the wall time of the input's zone.
	loc := time.FixedZone("weird", -7*3600)
	instant := time.Date(2025, 6, 1, 10, 0, 0, 0, loc) // 17:00 UTC
	clk := NewFixedOffsetAt(330, fixedNow(instant))
	if got := clk.TimeOfDay(); got != "22:30" {
		t.Errorf("TimeOfDay() = %q, want %q", got, "22:30")
	}
}
