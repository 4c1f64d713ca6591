package materials

import "time"

// Type — классификация материалов (глина, пигменты, глазурь).
type Type struct {
	ID   int64
	Name string
}

// Supplier — поставщик. Rating намеренно без ограничений по шкале.
type Supplier struct {
	ID        int64
	Name      string
	Rating    float64
	StartDate time.Time
}

// Fields — проверенный набор полей материала (без идентификатора).
type Fields struct {
	Name            string
	TypeID          int64
	QuantityInStock float64
	Unit            string
	PackageQuantity float64
	MinQuantity     float64
	PricePerUnit    float64
	SupplierID      *int64 // nil — поставщик не указан
}

type Material struct {
	ID int64
	Fields
}

// Candidate — значения полей формы «как введено».
type Candidate struct {
	Name            string
	TypeName        string
	Quantity        string
	Unit            string
	PackageQuantity string
	MinQuantity     string
	Price           string
	SupplierName    string
}
