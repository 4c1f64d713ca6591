package materials

import (
	"math"

	"github.com/shopspring/decimal"
)

// Replenishment — закупка целыми упаковками, покрывающая дефицит.
type Replenishment struct {
	Packages         float64
	PurchaseQuantity float64
	PurchaseCost     float64
}

// ComputeReplenishment считает закупку для остатка stock при пороге minQty.
// Число упаковок — ceil((minQty-stock)/pkg) в десятичной арифметике,
// поэтому точное кратное не даёт лишней упаковки. Число упаковок не
// ограничено int64: крошечная упаковка даёт огромное, но валидное число.
// pkg и price должны быть проверены заранее; pkg <= 0 — DomainError.
func ComputeReplenishment(stock, minQty, pkg, price float64) (Replenishment, error) {
	const op = "compute replenishment"

	for _, v := range [...]float64{stock, minQty, pkg, price} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return Replenishment{}, &DomainError{Op: op, Reason: "non-finite input"}
		}
	}
	if pkg <= 0 {
		return Replenishment{}, &DomainError{Op: op, Reason: "package quantity must be positive"}
	}
	if stock >= minQty {
		return Replenishment{}, nil
	}

	shortfall := decimal.NewFromFloat(minQty).Sub(decimal.NewFromFloat(stock))
	pack := decimal.NewFromFloat(pkg)
	packages, rem := shortfall.QuoRem(pack, 0)
	if rem.IsPositive() {
		packages = packages.Add(decimal.NewFromInt(1))
	}
	qty := packages.Mul(pack)
	cost := qty.Mul(decimal.NewFromFloat(price))

	return Replenishment{
		Packages:         packages.InexactFloat64(),
		PurchaseQuantity: qty.InexactFloat64(),
		PurchaseCost:     cost.InexactFloat64(),
	}, nil
}
