package domain

import "time"

// Comparison operator used by a price rule's length predicate
type Comparison string

const (
	ComparisonEqual          Comparison = "="
	ComparisonNotEqual       Comparison = "!="
	ComparisonGreater        Comparison = ">"
	ComparisonGreaterOrEqual Comparison = ">="
	ComparisonLess           Comparison = "<"
	ComparisonLessOrEqual    Comparison = "<="
)

// IsKnown reports whether c is one of the supported operators
func (c Comparison) IsKnown() bool {
	switch c {
	case ComparisonEqual, ComparisonNotEqual, ComparisonGreater,
		ComparisonGreaterOrEqual, ComparisonLess, ComparisonLessOrEqual:
		return true
	}
	return false
}

// Compare evaluates `left <c> right`.
// Unknown operators fall back to >=.
func (c Comparison) Compare(left, right int) bool {
	switch c {
	case ComparisonEqual:
		return left == right
	case ComparisonNotEqual:
		return left != right
	case ComparisonGreater:
		return left > right
	case ComparisonLess:
		return left < right
	case ComparisonLessOrEqual:
		return left <= right
	default:
		return left >= right
	}
}

// PriceType defines how a matched rule is billed
type PriceType string

const (
	PriceTypeFixed   PriceType = "fixed"
	PriceTypePerHour PriceType = "per_hour"
)

// IsKnown reports whether t is a supported price type
func (t PriceType) IsKnown() bool {
	return t == PriceTypeFixed || t == PriceTypePerHour
}

// ScheduleMask is a 7-bit weekday mask, bit 0 = Monday ... bit 6 = Sunday
type ScheduleMask uint8

// AllDays mask covering every weekday
const AllDays ScheduleMask = 0x7F

// DayBit returns the mask bit of an ISO weekday (Monday=1..Sunday=7)
func DayBit(isoWeekday int) ScheduleMask {
	return ScheduleMask(1) << (isoWeekday - 1)
}

// Includes reports whether every bit of day is set in the mask
func (m ScheduleMask) Includes(day ScheduleMask) bool {
	return m&day == day
}

// PriceRule is a conditional pricing directive attached to a hall.
// Rules are evaluated in Position order.
type PriceRule struct {
	ID           int64
	HallID       int64
	Position     int
	Comparison   Comparison
	FromLength   int           // length threshold in minutes
	ScheduleMask *ScheduleMask // nil = every day
	Type         PriceType
	TimeFrom     *string // HH:MM, only for per_hour
	TimeTo       *string // HH:MM, "00:00" means end of day
	Price        int64
	ServiceIDs   []int64 // empty = applies to any request
}

// HasTimeWindow returns true if both bounds of the daily window are set
func (r *PriceRule) HasTimeWindow() bool {
	return r.TimeFrom != nil && r.TimeTo != nil
}

// MatchesServices returns true if the rule has no service filter
// or the filter intersects the requested services
func (r *PriceRule) MatchesServices(requested []int64) bool {
	if len(r.ServiceIDs) == 0 {
		return true
	}
	for _, id := range r.ServiceIDs {
		for _, req := range requested {
			if id == req {
				return true
			}
		}
	}
	return false
}

// Hall represents a bookable venue
type Hall struct {
	ID                int64
	Name              string
	BasePrice         int64 // minor currency units per hour
	PrepaymentPercent int   // share of the price charged upfront, 0..100
	Prices            []PriceRule

	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasPriceRules returns true if the hall defines any price rules
func (h *Hall) HasPriceRules() bool {
	return len(h.Prices) > 0
}
