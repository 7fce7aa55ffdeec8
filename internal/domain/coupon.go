package domain

import "time"

// Coupon is a discount code applied to a computed subtotal
type Coupon struct {
	Code      string
	Factor    *float64 // 0..1, nil = no discount
	CreatedAt time.Time
}
