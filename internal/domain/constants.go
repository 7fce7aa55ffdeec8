package domain

// Setting keys
const (
	SettingCalendarMaxBookingRange = "calendar_max_booking_range"
)

// Default values
const (
	DefaultMaxBookingRangeMonths = 1
)

// Business validation constants
const (
	MinReservationLength     = 0
	MaxReservationLength     = 1440 // one day in minutes
	MaxReservationsPerRecord = 50
	MinBookingRangeMonths    = 0
	MaxBookingRangeMonths    = 24
	MaxCommentLength         = 500
	MaxPrepaymentPercent     = 100
	MaxPriceRules            = 100
)

// Time constants
const (
	MinutesPerDay  = 1440
	MinutesPerHour = 60
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Roles carried in access tokens
const (
	RoleAdmin  = "admin"
	RoleClient = "client"
)
