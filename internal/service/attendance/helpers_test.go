package attendance

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orbitdesk/backoffice-go/internal/domain/attendance"
)

func TestWorkHoursBetween(t *testing.T) {
	tests := []struct {
		name     string
		checkIn  string
		checkOut string
		want     float64
	}{
		{name: "full day", checkIn: "09:00", checkOut: "18:30", want: 9.5},
		{name: "short day", checkIn: "09:00", checkOut: "12:30", want: 3.5},
		{name: "one minute", checkIn: "09:00", checkOut: "09:01", want: 0.02},
		{name: "same minute", checkIn: "09:00", checkOut: "09:00", want: 0},
		{name: "checkout before checkin clamps to zero", checkIn: "18:00", checkOut: "09:00", want: 0},
		{name: "rounds to two decimals", checkIn: "09:00", checkOut: "16:20", want: 7.33},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := workHoursBetween(tt.checkIn, tt.checkOut)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWorkHoursBetween_InvalidInput(t *testing.T) {
	_, err := workHoursBetween("9:00", "18:30")
	assert.Error(t, err)

	_, err = workHoursBetween("09:00", "25:00")
	assert.Error(t, err)
}

func TestMinutesOfDay(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{input: "00:00", want: 0},
		{input: "09:30", want: 570},
		{input: "18:30", want: 1110},
		{input: "23:59", want: 1439},
	}

	for _, tt := range tests {
		got, err := minutesOfDay(tt.input)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "minutesOfDay(%q)", tt.input)
	}
}

func TestMonthWindow(t *testing.T) {
	tests := []struct {
		month, year int
		wantFrom    string
		wantTo      string
	}{
		{month: 1, year: 2025, wantFrom: "2025-01-01", wantTo: "2025-01-31"},
		{month: 2, year: 2025, wantFrom: "2025-02-01", wantTo: "2025-02-28"},
		{month: 2, year: 2024, wantFrom: "2024-02-01", wantTo: "2024-02-29"},
		{month: 4, year: 2025, wantFrom: "2025-04-01", wantTo: "2025-04-30"},
		{month: 12, year: 2025, wantFrom: "2025-12-01", wantTo: "2025-12-31"},
	}

	for _, tt := range tests {
		from, to := monthWindow(tt.month, tt.year)
		assert.Equal(t, tt.wantFrom, from)
		assert.Equal(t, tt.wantTo, to)
	}
}

func TestSummarize(t *testing.T) {
	records := []attendance.Attendance{
		{Status: attendance.StatusPresent, WorkHours: 9.25, IsLate: true},
		{Status: attendance.StatusPresent, WorkHours: 8.5},
		{Status: attendance.StatusHalfDay, WorkHours: 3.5, IsEarlyLeave: true},
		{Status: attendance.StatusAbsent},
		{Status: attendance.StatusPresent, WorkHours: 9, IsLate: true, IsEarlyLeave: true},
	}

	summary := summarize(records)

	assert.Equal(t, 3, summary.Present)
	assert.Equal(t, 1, summary.Absent)
	assert.Equal(t, 1, summary.HalfDay)
	assert.Equal(t, 2, summary.LateCount)
	assert.Equal(t, 2, summary.EarlyLeaveCount)
	assert.Equal(t, 30.25, summary.TotalWorkHours)
}

func TestSummarize_Empty(t *testing.T) {
	summary := summarize(nil)
	assert.Equal(t, attendance.AttendanceSummary{}, summary)
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 7.33, round2(7.333333))
	assert.Equal(t, 7.34, round2(7.336))
	assert.Equal(t, 0.0, round2(0))
	assert.Equal(t, 9.5, round2(9.5))
}
