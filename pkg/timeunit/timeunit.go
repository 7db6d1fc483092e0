// Package timeunit provides millisecond conversions for interval settings
// that are stored and exchanged as plain integers.
package timeunit

import "time"

const (
	millisPerSecond int64 = 1000
	millisPerMinute       = 60 * millisPerSecond
	millisPerHour         = 60 * millisPerMinute
	millisPerDay          = 24 * millisPerHour
)

// MinutesToMilliseconds converts whole minutes to milliseconds.
func MinutesToMilliseconds(minutes int64) int64 {
	return minutes * millisPerMinute
}

// HoursToMilliseconds converts whole hours to milliseconds.
func HoursToMilliseconds(hours int64) int64 {
	return hours * millisPerHour
}

// DaysToMilliseconds converts whole days to milliseconds.
func DaysToMilliseconds(days int64) int64 {
	return days * millisPerDay
}

// Hours returns a Duration for whole hours.
func Hours(hours int64) time.Duration {
	return time.Duration(hours) * time.Hour
}

// Days returns a Duration for whole days.
func Days(days int64) time.Duration {
	return time.Duration(days) * 24 * time.Hour
}
