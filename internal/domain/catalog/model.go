package catalog

import (
	"strconv"

	"github.com/Spok95/materials-catalog/internal/domain/materials"
)

// DisplayRow — строка списка материалов. MaterialID передаётся дальше
// в действия редактирования/просмотра вместо повторного поиска по имени.
type DisplayRow struct {
	MaterialID       int64
	TypeName         string
	Name             string
	Quantity         float64
	MinQuantity      float64
	Price            float64
	Unit             string
	PurchaseQuantity float64
	PurchaseCost     float64 // 0, если дефицита нет
}

func (r DisplayRow) QuantityLabel() string { return amount(r.Quantity, r.Unit) }

func (r DisplayRow) MinQuantityLabel() string { return amount(r.MinQuantity, r.Unit) }

// BelowMinimum — есть ли дефицит.
func (r DisplayRow) BelowMinimum() bool { return r.Quantity < r.MinQuantity }

func amount(v float64, unit string) string { return formatNumber(v) + " " + unit }

// formatNumber — кратчайшая запись, которая читается обратно без потерь.
func formatNumber(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }

func newDisplayRow(m materials.Material, typeName string, rep materials.Replenishment) DisplayRow {
	return DisplayRow{
		MaterialID:       m.ID,
		TypeName:         typeName,
		Name:             m.Name,
		Quantity:         m.QuantityInStock,
		MinQuantity:      m.MinQuantity,
		Price:            m.PricePerUnit,
		Unit:             m.Unit,
		PurchaseQuantity: rep.PurchaseQuantity,
		PurchaseCost:     rep.PurchaseCost,
	}
}
