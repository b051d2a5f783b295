package pricing

import "math"

// Line is one priced cart position.
type Line struct {
	UnitPrice float64
	Quantity  int
}

// Quote holds the figures persisted on an order. Each field is rounded to
// cents exactly once; intermediates stay unrounded to avoid cumulative drift.
type Quote struct {
	Subtotal float64
	Tax      float64
	Shipping float64
	Discount float64
	Total    float64
}

// Engine computes order totals from configured tax and shipping policy.
// It is pure and safe for concurrent use.
type Engine struct {
	TaxRate     float64
	ShippingFee float64
}

// New constructs a pricing engine.
func New(taxRate, shippingFee float64) Engine {
	return Engine{TaxRate: taxRate, ShippingFee: shippingFee}
}

// Quote prices the given lines. Shipping is a flat fee regardless of order
// value; the total is clamped to zero when the discount exceeds the rest.
func (e Engine) Quote(lines []Line, discount float64) Quote {
	var subtotal float64
	for _, line := range lines {
		subtotal += line.UnitPrice * float64(line.Quantity)
	}
	tax := subtotal * e.TaxRate

	total := subtotal + tax + e.ShippingFee - discount
	if total < 0 {
		total = 0
	}

	return Quote{
		Subtotal: Round(subtotal),
		Tax:      Round(tax),
		Shipping: Round(e.ShippingFee),
		Discount: Round(discount),
		Total:    Round(total),
	}
}

// LineTotal computes an order item total: price*quantity - discount + tax.
func LineTotal(unitPrice float64, quantity int, discount, tax float64) float64 {
	return Round(unitPrice*float64(quantity) - discount + tax)
}

// Round rounds a monetary amount to two decimal places.
func Round(amount float64) float64 {
	return math.Round(amount*100) / 100
}
