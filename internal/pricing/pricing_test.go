package pricing

import "testing"

func TestQuote(t *testing.T) {
	engine := New(0.10, 50)

	quote := engine.Quote([]Line{
		{UnitPrice: 100, Quantity: 2},
		{UnitPrice: 50, Quantity: 2},
	}, 0)

	if quote.Subtotal != 300 {
		t.Fatalf("expected subtotal 300, got %v", quote.Subtotal)
	}
	if quote.Tax != 30 {
		t.Fatalf("expected tax 30, got %v", quote.Tax)
	}
	if quote.Shipping != 50 {
		t.Fatalf("expected shipping 50, got %v", quote.Shipping)
	}
	if quote.Total != 380 {
		t.Fatalf("expected total 380, got %v", quote.Total)
	}
}

func TestQuoteWithDiscount(t *testing.T) {
	engine := New(0.10, 50)

	quote := engine.Quote([]Line{{UnitPrice: 100, Quantity: 1}}, 25)
	if quote.Discount != 25 {
		t.Fatalf("expected discount 25, got %v", quote.Discount)
	}
	if quote.Total != 135 {
		t.Fatalf("expected total 135, got %v", quote.Total)
	}
}

func TestQuoteTotalClampedAtZero(t *testing.T) {
	engine := New(0.10, 50)

	quote := engine.Quote([]Line{{UnitPrice: 10, Quantity: 1}}, 1000)
	if quote.Total != 0 {
		t.Fatalf("expected total clamped to 0, got %v", quote.Total)
	}
	if quote.Subtotal != 10 {
		t.Fatalf("expected subtotal untouched by clamp, got %v", quote.Subtotal)
	}
}

func TestQuoteRoundsOncePerFigure(t *testing.T) {
	engine := New(0.0825, 0)

	// 3 * 19.99 = 59.97, tax = 4.947525 -> 4.95, total = 64.917525 -> 64.92.
	quote := engine.Quote([]Line{{UnitPrice: 19.99, Quantity: 3}}, 0)
	if quote.Tax != 4.95 {
		t.Fatalf("expected tax 4.95, got %v", quote.Tax)
	}
	if quote.Total != 64.92 {
		t.Fatalf("expected total 64.92, got %v", quote.Total)
	}
}

func TestQuoteFlatShippingRegardlessOfValue(t *testing.T) {
	engine := New(0, 50)

	small := engine.Quote([]Line{{UnitPrice: 1, Quantity: 1}}, 0)
	large := engine.Quote([]Line{{UnitPrice: 10000, Quantity: 3}}, 0)
	if small.Shipping != 50 || large.Shipping != 50 {
		t.Fatalf("expected flat shipping 50, got %v and %v", small.Shipping, large.Shipping)
	}
}

func TestLineTotal(t *testing.T) {
	if got := LineTotal(19.99, 3, 0, 0); got != 59.97 {
		t.Fatalf("expected 59.97, got %v", got)
	}
	if got := LineTotal(100, 2, 10, 5); got != 195 {
		t.Fatalf("expected 195, got %v", got)
	}
}

func TestRound(t *testing.T) {
	cases := map[float64]float64{
		4.947525: 4.95,
		4.944:    4.94,
		-1.005:   -1,
		0:        0,
	}
	for in, want := range cases {
		if got := Round(in); got != want {
			t.Errorf("Round(%v) = %v, want %v", in, got, want)
		}
	}
}
