package catalog

import (
	"context"

	"github.com/Spok95/materials-catalog/internal/domain/materials"
)

// Store — хранилище каталога. Отсутствующие записи возвращаются как
// *materials.NotFoundError, прочие сбои как *materials.StoreError.
type Store interface {
	ListTypes(ctx context.Context) ([]materials.Type, error)
	ListSuppliers(ctx context.Context) ([]materials.Supplier, error)
	// ListMaterials возвращает материалы в порядке добавления.
	ListMaterials(ctx context.Context) ([]materials.Material, error)
	GetMaterial(ctx context.Context, id int64) (materials.Material, error)
	InsertMaterial(ctx context.Context, f materials.Fields) (int64, error)
	UpdateMaterial(ctx context.Context, id int64, f materials.Fields) error
	GetSupplier(ctx context.Context, id int64) (materials.Supplier, error)
}
