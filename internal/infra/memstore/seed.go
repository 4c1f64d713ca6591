package memstore

import (
	"context"
	"time"

	"github.com/Spok95/materials-catalog/internal/domain/materials"
)

// Seeded — хранилище со стартовым набором (как в миграции 00002_seed.sql).
func Seeded() *Store {
	s := New()

	clay := s.AddType("Глина")
	pigments := s.AddType("Пигменты")
	glaze := s.AddType("Глазурь")

	clayCo := s.AddSupplier(`ООО "Глина и К"`, 4.5, date(2020, time.January, 15))
	smirnov := s.AddSupplier("ИП Смирнов", 3.8, date(2021, time.March, 22))
	chem := s.AddSupplier(`АО "Химические материалы"`, 4.2, date(2019, time.November, 5))

	for _, f := range []materials.Fields{
		{Name: "Глина белая", TypeID: clay, QuantityInStock: 1500, Unit: "кг", PackageQuantity: 25, MinQuantity: 1000, PricePerUnit: 50, SupplierID: &clayCo},
		{Name: "Оксид железа", TypeID: pigments, QuantityInStock: 800, Unit: "кг", PackageQuantity: 10, MinQuantity: 500, PricePerUnit: 120, SupplierID: &chem},
		{Name: "Глазурь прозрачная", TypeID: glaze, QuantityInStock: 200, Unit: "л", PackageQuantity: 5, MinQuantity: 100, PricePerUnit: 200, SupplierID: &smirnov},
	} {
		// ссылки заведомо валидны
		_, _ = s.InsertMaterial(context.Background(), f)
	}
	return s
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
