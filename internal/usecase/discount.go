package usecase

import "context"

// DiscountPolicy resolves a coupon code into a discount amount for the given
// subtotal. Coupon storage and validation live outside the order core.
type DiscountPolicy interface {
	Discount(ctx context.Context, couponCode string, subtotal float64) (float64, error)
}

// NoDiscount ignores coupon codes.
type NoDiscount struct{}

// Discount always returns zero.
func (NoDiscount) Discount(context.Context, string, float64) (float64, error) {
	return 0, nil
}
