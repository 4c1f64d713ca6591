package materials

import (
	"math"
	"strconv"
	"strings"
)

// Field names reported in ValidationError.Field.
const (
	FieldName            = "name"
	FieldType            = "type"
	FieldQuantity        = "quantity"
	FieldUnit            = "unit"
	FieldPackageQuantity = "package_quantity"
	FieldMinQuantity     = "min_quantity"
	FieldPrice           = "price"
)

// Validate проверяет поля формы и приводит их к типам.
// Проверки идут в фиксированном порядке, возвращается первая ошибка.
// Имена типа и поставщика разрешаются по спискам types/suppliers
// (при дублях берётся первое совпадение).
func Validate(c Candidate, types []Type, suppliers []Supplier) (Fields, error) {
	var f Fields

	f.Name = strings.TrimSpace(c.Name)
	if f.Name == "" {
		return Fields{}, invalid(FieldName, "name is required")
	}

	typeID, ok := findType(types, c.TypeName)
	if !ok {
		return Fields{}, invalid(FieldType, "type must be selected from the list")
	}
	f.TypeID = typeID

	qty, err := parseNumber(FieldQuantity, "quantity", c.Quantity)
	if err != nil {
		return Fields{}, err
	}
	if qty < 0 {
		return Fields{}, invalid(FieldQuantity, "quantity cannot be negative")
	}
	f.QuantityInStock = qty

	f.Unit = strings.TrimSpace(c.Unit)
	if f.Unit == "" {
		return Fields{}, invalid(FieldUnit, "unit is required")
	}

	pkg, err := parseNumber(FieldPackageQuantity, "package quantity", c.PackageQuantity)
	if err != nil {
		return Fields{}, err
	}
	if pkg <= 0 {
		return Fields{}, invalid(FieldPackageQuantity, "package quantity must be positive")
	}
	f.PackageQuantity = pkg

	minQty, err := parseNumber(FieldMinQuantity, "minimum quantity", c.MinQuantity)
	if err != nil {
		return Fields{}, err
	}
	if minQty < 0 {
		return Fields{}, invalid(FieldMinQuantity, "minimum quantity cannot be negative")
	}
	f.MinQuantity = minQty

	price, err := parseNumber(FieldPrice, "price", c.Price)
	if err != nil {
		return Fields{}, err
	}
	if price < 0 {
		return Fields{}, invalid(FieldPrice, "price cannot be negative")
	}
	f.PricePerUnit = price

	// неизвестный поставщик — не ошибка, просто без поставщика
	if id, ok := findSupplier(suppliers, c.SupplierName); ok {
		f.SupplierID = &id
	}

	return f, nil
}

func invalid(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

func parseNumber(field, label, raw string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, invalid(field, label+" must be a number")
	}
	return v, nil
}

func findType(types []Type, name string) (int64, bool) {
	for _, t := range types {
		if t.Name == name {
			return t.ID, true
		}
	}
	return 0, false
}

func findSupplier(suppliers []Supplier, name string) (int64, bool) {
	if name == "" {
		return 0, false
	}
	for _, s := range suppliers {
		if s.Name == name {
			return s.ID, true
		}
	}
	return 0, false
}
