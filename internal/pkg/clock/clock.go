package clock

import "time"

// Clock provides the office-local wall clock used by the attendance engine.
//
// The legacy system computed "local" time by shifting UTC by a fixed offset
// and formatting the result, with no real timezone database involved. The
// engine only ever compares rendered dates (YYYY-MM-DD) and minutes (HH:mm),
// so FixedOffset reproduces that behavior exactly while staying independent
// of the host timezone.
type Clock interface {
	// Now returns the current instant shifted to office-local wall time.
	Now() time.Time
	// Today returns the office-local calendar day as YYYY-MM-DD.
	Today() string
	// TimeOfDay returns the office-local time of day as zero-padded HH:mm.
	TimeOfDay() string
}

type fixedOffsetClock struct {
	offset time.Duration
	nowFn  func() time.Time
}

// NewFixedOffset returns a Clock at a fixed offset from UTC, expressed in
// minutes (IST is 330).
func NewFixedOffset(offsetMinutes int) Clock {
	return &fixedOffsetClock{
		offset: time.Duration(offsetMinutes) * time.Minute,
		nowFn:  time.Now,
	}
}

// NewFixedOffsetAt behaves like NewFixedOffset but reads the current instant
// from nowFn. Used by tests to pin the clock.
func NewFixedOffsetAt(offsetMinutes int, nowFn func() time.Time) Clock {
	return &fixedOffsetClock{
		offset: time.Duration(offsetMinutes) * time.Minute,
		nowFn:  nowFn,
	}
}

func (c *fixedOffsetClock) Now() time.Time {
	return c.nowFn().UTC().Add(c.offset)
}

func (c *fixedOffsetClock) Today() string {
	return c.Now().Format("2006-01-02")
}

func (c *fixedOffsetClock) TimeOfDay() string {
	return c.Now().Format("15:04")
}
