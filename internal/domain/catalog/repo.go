package catalog

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Spok95/materials-catalog/internal/domain/materials"
)

// Repo — Store поверх PostgreSQL.
type Repo struct{ pool *pgxpool.Pool }

func NewRepo(pool *pgxpool.Pool) *Repo { return &Repo{pool: pool} }

var _ Store = (*Repo)(nil)

/* Types & suppliers */

func (r *Repo) ListTypes(ctx context.Context) ([]materials.Type, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT type_id, name
		FROM material_types
		ORDER BY type_id
	`)
	if err != nil {
		return nil, &materials.StoreError{Op: "list types", Err: err}
	}
	defer rows.Close()

	var out []materials.Type
	for rows.Next() {
		var t materials.Type
		if err := rows.Scan(&t.ID, &t.Name); err != nil {
			return nil, &materials.StoreError{Op: "list types", Err: err}
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, &materials.StoreError{Op: "list types", Err: err}
	}
	return out, nil
}

func (r *Repo) ListSuppliers(ctx context.Context) ([]materials.Supplier, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT supplier_id, name, rating, start_date
		FROM suppliers
		ORDER BY supplier_id
	`)
	if err != nil {
		return nil, &materials.StoreError{Op: "list suppliers", Err: err}
	}
	defer rows.Close()

	var out []materials.Supplier
	for rows.Next() {
		var s materials.Supplier
		if err := rows.Scan(&s.ID, &s.Name, &s.Rating, &s.StartDate); err != nil {
			return nil, &materials.StoreError{Op: "list suppliers", Err: err}
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, &materials.StoreError{Op: "list suppliers", Err: err}
	}
	return out, nil
}

func (r *Repo) GetSupplier(ctx context.Context, id int64) (materials.Supplier, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT supplier_id, name, rating, start_date
		FROM suppliers WHERE supplier_id = $1
	`, id)
	var s materials.Supplier
	if err := row.Scan(&s.ID, &s.Name, &s.Rating, &s.StartDate); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return materials.Supplier{}, &materials.NotFoundError{Kind: materials.KindSupplier, ID: id}
		}
		return materials.Supplier{}, &materials.StoreError{Op: "get supplier", Err: err}
	}
	return s, nil
}

/* Materials */

const materialColumns = `
	material_id, name, type_id, quantity_in_stock, unit,
	package_quantity, min_quantity, price_per_unit, supplier_id
`

func scanMaterial(row pgx.Row) (materials.Material, error) {
	var m materials.Material
	err := row.Scan(
		&m.ID,
		&m.Name,
		&m.TypeID,
		&m.QuantityInStock,
		&m.Unit,
		&m.PackageQuantity,
		&m.MinQuantity,
		&m.PricePerUnit,
		&m.SupplierID,
	)
	return m, err
}

func (r *Repo) ListMaterials(ctx context.Context) ([]materials.Material, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+materialColumns+` FROM materials ORDER BY material_id`)
	if err != nil {
		return nil, &materials.StoreError{Op: "list materials", Err: err}
	}
	defer rows.Close()

	var out []materials.Material
	for rows.Next() {
		m, err := scanMaterial(rows)
		if err != nil {
			return nil, &materials.StoreError{Op: "list materials", Err: err}
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, &materials.StoreError{Op: "list materials", Err: err}
	}
	return out, nil
}

func (r *Repo) GetMaterial(ctx context.Context, id int64) (materials.Material, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+materialColumns+` FROM materials WHERE material_id = $1`, id)
	m, err := scanMaterial(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return materials.Material{}, &materials.NotFoundError{Kind: materials.KindMaterial, ID: id}
		}
		return materials.Material{}, &materials.StoreError{Op: "get material", Err: err}
	}
	return m, nil
}

func (r *Repo) InsertMaterial(ctx context.Context, f materials.Fields) (int64, error) {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO materials
		(name, type_id, quantity_in_stock, unit, package_quantity, min_quantity, price_per_unit, supplier_id)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
		RETURNING material_id
	`, f.Name, f.TypeID, f.QuantityInStock, f.Unit, f.PackageQuantity, f.MinQuantity, f.PricePerUnit, f.SupplierID)

	var id int64
	if err := row.Scan(&id); err != nil {
		return 0, &materials.StoreError{Op: "insert material", Err: err}
	}
	return id, nil
}

func (r *Repo) UpdateMaterial(ctx context.Context, id int64, f materials.Fields) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE materials
		SET name=$2, type_id=$3, quantity_in_stock=$4, unit=$5,
		    package_quantity=$6, min_quantity=$7, price_per_unit=$8, supplier_id=$9
		WHERE material_id=$1
	`, id, f.Name, f.TypeID, f.QuantityInStock, f.Unit, f.PackageQuantity, f.MinQuantity, f.PricePerUnit, f.SupplierID)
	if err != nil {
		return &materials.StoreError{Op: "update material", Err: err}
	}
	if tag.RowsAffected() == 0 {
		return &materials.NotFoundError{Kind: materials.KindMaterial, ID: id}
	}
	return nil
}
