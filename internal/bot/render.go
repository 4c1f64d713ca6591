package bot

import (
	"fmt"
	"strings"

	"github.com/Spok95/materials-catalog/internal/domain/catalog"
	"github.com/Spok95/materials-catalog/internal/domain/materials"
)

// money — две цифры после запятой и суффикс валюты.
func money(v float64, currency string) string {
	return fmt.Sprintf("%.2f %s", v, currency)
}

func renderMaterials(rows []catalog.DisplayRow, currency string) string {
	if len(rows) == 0 {
		return "Список материалов пуст"
	}
	var sb strings.Builder
	sb.WriteString("Список материалов:\n")
	for _, r := range rows {
		mark := ""
		if r.BelowMinimum() {
			mark = " ⚠️"
		}
		fmt.Fprintf(&sb, "\n#%d %s — %s%s\n", r.MaterialID, r.TypeName, r.Name, mark)
		fmt.Fprintf(&sb, "Кол-во на складе: %s, мин.: %s\n", r.QuantityLabel(), r.MinQuantityLabel())
		fmt.Fprintf(&sb, "Цена: %s за %s\n", money(r.Price, currency), r.Unit)
		fmt.Fprintf(&sb, "Стоимость партии: %s\n", money(r.PurchaseCost, currency))
	}
	return sb.String()
}

func renderSuppliers(materialID int64, suppliers []materials.Supplier) string {
	if len(suppliers) == 0 {
		return "Для этого материала нет информации о поставщиках"
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "Поставщики материала #%d:\n", materialID)
	for _, s := range suppliers {
		fmt.Fprintf(&sb, "• %s — рейтинг %g, с %s\n", s.Name, s.Rating, s.StartDate.Format("02.01.2006"))
	}
	return sb.String()
}

func renderLookups(types []materials.Type, suppliers []materials.Supplier) string {
	var sb strings.Builder
	sb.WriteString("Типы материалов:\n")
	for _, t := range types {
		fmt.Fprintf(&sb, "• %s\n", t.Name)
	}
	sb.WriteString("\nПоставщики:\n")
	for _, s := range suppliers {
		fmt.Fprintf(&sb, "• %s\n", s.Name)
	}
	return sb.String()
}

// validationTexts — ответы пользователю по причинам отказа валидации.
var validationTexts = map[string]string{
	"name is required":                    "введите наименование материала",
	"type must be selected from the list": "выберите тип материала из списка (/types)",
	"quantity must be a number":           "количество на складе должно быть числом",
	"quantity cannot be negative":         "количество на складе не может быть отрицательным",
	"unit is required":                    "введите единицу измерения",
	"package quantity must be a number":   "количество в упаковке должно быть числом",
	"package quantity must be positive":   "количество в упаковке должно быть больше нуля",
	"minimum quantity must be a number":   "минимальное количество должно быть числом",
	"minimum quantity cannot be negative": "минимальное количество не может быть отрицательным",
	"price must be a number":              "цена должна быть числом",
	"price cannot be negative":            "цена не может быть отрицательной",
}

func validationText(e *materials.ValidationError) string {
	if s, ok := validationTexts[e.Reason]; ok {
		return s
	}
	return e.Reason
}

// renderForm — текущие значения в формате аргументов /edit.
func renderForm(id int64, c materials.Candidate) string {
	return fmt.Sprintf("/edit %d %s", id, strings.Join([]string{
		c.Name, c.TypeName, c.Quantity, c.Unit, c.PackageQuantity, c.MinQuantity, c.Price, c.SupplierName,
	}, fieldSep))
}

const helpText = `Команды:
/materials — список материалов со стоимостью партии
/suppliers <id> — поставщики материала
/types — типы материалов и поставщики
/add наименование;тип;кол-во;ед.;в упаковке;мин. кол-во;цена;поставщик — добавить материал
/form <id> — текущие значения для редактирования
/edit <id> наименование;тип;... — сохранить изменения
/estimate <кол-во сырья> <параметр 1> <параметр 2> — расчёт выхода продукции
/export — выгрузка списка в Excel`
