package domain

import "strconv"

// Setting is a key/value entry of the global settings store
type Setting struct {
	Key   string
	Value string
}

// BookingRangeMonths returns the calendar_max_booking_range value in months.
// A missing, non-numeric or non-positive value yields DefaultMaxBookingRangeMonths.
func BookingRangeMonths(s *Setting) int {
	if s == nil {
		return DefaultMaxBookingRangeMonths
	}
	months, err := strconv.Atoi(s.Value)
	if err != nil || months <= 0 {
		return DefaultMaxBookingRangeMonths
	}
	return months
}
