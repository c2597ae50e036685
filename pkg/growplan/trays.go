package growplan

import (
	"github.com/shopspring/decimal"
)

var oneHundred = decimal.NewFromInt(100)

// TotalWithOverage returns quantityOz grown by the overage safety margin:
// quantityOz * (1 + overagePercent/100).
func TotalWithOverage(quantityOz, overagePercent decimal.Decimal) decimal.Decimal {
	multiplier := decimal.NewFromInt(1).Add(overagePercent.Div(oneHundred))
	return quantityOz.Mul(multiplier)
}

// TraysNeeded converts a requested output quantity plus overage into whole
// trays given the crop's average yield per tray. Fractional trays always
// round up; a short tray cannot be planted, so over-provisioning is the
// policy.
func TraysNeeded(quantityOz, avgYieldPerTray, overagePercent decimal.Decimal) (int64, error) {
	if quantityOz.Sign() <= 0 {
		return 0, invalidParam("quantityOz", "must be positive, got %s", quantityOz)
	}
	if avgYieldPerTray.Sign() <= 0 {
		return 0, invalidParam("avgYieldPerTray", "must be positive, got %s", avgYieldPerTray)
	}
	if overagePercent.Sign() < 0 {
		return 0, invalidParam("overagePercent", "must not be negative, got %s", overagePercent)
	}

	total := TotalWithOverage(quantityOz, overagePercent)
	return total.Div(avgYieldPerTray).Ceil().IntPart(), nil
}
