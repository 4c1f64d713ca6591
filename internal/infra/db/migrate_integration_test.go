package db_test

import (
	"context"
	"os"
	"testing"

	"github.com/pressly/goose/v3"

	"github.com/Spok95/materials-catalog/internal/infra/db"
	"github.com/Spok95/materials-catalog/migrations"
)

func TestSeedDownKeepsUserRows(t *testing.T) {
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set — skipping integration test")
	}
	ctx := context.Background()

	if err := db.Migrate(dsn, migrations.FS); err != nil {
		t.Fatalf("Failed to migrate: %v", err)
	}
	pool, err := db.Connect(ctx, dsn)
	if err != nil {
		t.Fatalf("Failed to connect: %v", err)
	}
	defer pool.Close()

	var typeID, materialID int64
	if err := pool.QueryRow(ctx,
		`INSERT INTO material_types (name) VALUES ('Фритта') RETURNING type_id`,
	).Scan(&typeID); err != nil {
		t.Fatalf("Failed to insert type: %v", err)
	}
	if err := pool.QueryRow(ctx, `
		INSERT INTO materials (name, type_id, quantity_in_stock, unit, package_quantity, min_quantity, price_per_unit)
		VALUES ('Фритта прозрачная', $1, 10, 'кг', 5, 20, 90) RETURNING material_id
	`, typeID).Scan(&materialID); err != nil {
		t.Fatalf("Failed to insert material: %v", err)
	}
	defer func() {
		_, _ = pool.Exec(ctx, `DELETE FROM materials WHERE material_id = $1`, materialID)
		_, _ = pool.Exec(ctx, `DELETE FROM material_types WHERE type_id = $1`, typeID)
		_ = db.Migrate(dsn, migrations.FS)
	}()

	sqlDB, err := goose.OpenDBWithDriver("postgres", dsn)
	if err != nil {
		t.Fatalf("Failed to open db: %v", err)
	}
	defer func() { _ = sqlDB.Close() }()
	goose.SetBaseFS(migrations.FS)
	defer goose.SetBaseFS(nil)
	if err := goose.DownTo(sqlDB, ".", 1); err != nil {
		t.Fatalf("Failed to roll back seed: %v", err)
	}

	var n int
	if err := pool.QueryRow(ctx,
		`SELECT count(*) FROM materials WHERE material_id = $1 AND type_id = $2`, materialID, typeID,
	).Scan(&n); err != nil {
		t.Fatalf("Failed to count: %v", err)
	}
	if n != 1 {
		t.Errorf("Expected user material to survive seed rollback, found %d rows", n)
	}
	if err := pool.QueryRow(ctx,
		`SELECT count(*) FROM materials WHERE name = 'Глина белая'`,
	).Scan(&n); err != nil {
		t.Fatalf("Failed to count: %v", err)
	}
	if n != 0 {
		t.Errorf("Expected seeded materials to be removed, found %d", n)
	}
}
