package materials

import (
	"math"

	"github.com/shopspring/decimal"
)

// UnitsUnavailable — результат оценки при некорректных входных данных.
const UnitsUnavailable int64 = -1

// YieldModel — коэффициенты оценки выхода продукции из сырья.
type YieldModel struct {
	Multiplier float64 // коэффициент типа продукции
	LossRate   float64 // доля потерь, 0.05 = 5%
}

var DefaultYield = YieldModel{Multiplier: 1.2, LossRate: 0.05}

// EstimateProducedUnits оценивает, сколько единиц продукции выйдет из qty сырья
// при параметрах процесса a и b:
//
//	perUnit = a * b * Multiplier
//	total   = perUnit * (1 + LossRate)
//	result  = floor(qty / total)
//
// Возвращает UnitsUnavailable, если любой вход <= 0 или расчёт невозможен.
func (m YieldModel) EstimateProducedUnits(qty, a, b float64) int64 {
	for _, v := range [...]float64{qty, a, b, m.Multiplier, m.LossRate} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return UnitsUnavailable
		}
	}
	if qty <= 0 || a <= 0 || b <= 0 {
		return UnitsUnavailable
	}

	perUnit := decimal.NewFromFloat(a).
		Mul(decimal.NewFromFloat(b)).
		Mul(decimal.NewFromFloat(m.Multiplier))
	total := perUnit.Mul(decimal.NewFromInt(1).Add(decimal.NewFromFloat(m.LossRate)))
	if !total.IsPositive() {
		return UnitsUnavailable
	}

	units, _ := decimal.NewFromFloat(qty).QuoRem(total, 0)
	if units.GreaterThan(decimal.NewFromInt(math.MaxInt64)) {
		return UnitsUnavailable
	}
	return units.IntPart()
}
