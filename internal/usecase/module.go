package usecase

import (
	"go.uber.org/fx"

	"github.com/shopperhq/shopper/internal/config"
	"github.com/shopperhq/shopper/internal/pricing"
)

// Module provides core business use cases to the fx container.
var Module = fx.Provide(
	newPricingEngine,
	newDiscountPolicy,
	NewOrderUseCase,
	NewVendorUseCase,
)

type engineParams struct {
	fx.In

	Config *config.Config
}

func newPricingEngine(p engineParams) pricing.Engine {
	return pricing.New(p.Config.TaxRate, p.Config.ShippingFee)
}

func newDiscountPolicy() DiscountPolicy {
	return NoDiscount{}
}
