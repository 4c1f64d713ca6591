package report

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/Spok95/materials-catalog/internal/domain/catalog"
)

var header = []interface{}{
	"material_id",
	"Тип",
	"Наименование",
	"Кол-во на складе",
	"Мин. кол-во",
	"Цена",
	"Ед. изм.",
	"Объём закупки",
	"Стоимость партии",
}

// WriteMaterials выгружает список материалов в xlsx.
func WriteMaterials(w io.Writer, rows []catalog.DisplayRow) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	sheet := f.GetSheetName(f.GetActiveSheetIndex())

	h := header
	if err := f.SetSheetRow(sheet, "A1", &h); err != nil {
		return fmt.Errorf("header: %w", err)
	}

	money, err := f.NewStyle(&excelize.Style{NumFmt: 4}) // #,##0.00
	if err != nil {
		return fmt.Errorf("style: %w", err)
	}

	for i, r := range rows {
		excelRow := []interface{}{
			r.MaterialID,
			r.TypeName,
			r.Name,
			r.Quantity,
			r.MinQuantity,
			r.Price,
			r.Unit,
			r.PurchaseQuantity,
			r.PurchaseCost,
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("row %d: %w", i+2, err)
		}
		if err := f.SetSheetRow(sheet, cell, &excelRow); err != nil {
			return fmt.Errorf("row %d: %w", i+2, err)
		}
	}

	if len(rows) > 0 {
		if err := f.SetCellStyle(sheet, "F2", fmt.Sprintf("F%d", len(rows)+1), money); err != nil {
			return fmt.Errorf("price style: %w", err)
		}
		if err := f.SetCellStyle(sheet, "I2", fmt.Sprintf("I%d", len(rows)+1), money); err != nil {
			return fmt.Errorf("cost style: %w", err)
		}
	}
	if err := f.SetColWidth(sheet, "B", "C", 24); err != nil {
		return fmt.Errorf("col width: %w", err)
	}

	return f.Write(w)
}
