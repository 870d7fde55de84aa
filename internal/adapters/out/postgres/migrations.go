package postgres

import (
	"context"
	"fmt"

	"inventory/internal/adapters/out/postgres/businessrepo"
	"inventory/internal/adapters/out/postgres/orderrepo"
	"inventory/internal/adapters/out/postgres/productrepo"
	"inventory/internal/adapters/out/postgres/userrepo"

	"gorm.io/gorm"
)

type foreignKey struct {
	name, table, column, ref, onDelete string
}

var foreignKeys = []foreignKey{
	{"fk_users_business", "users", "business_id", "businesses(id)", "CASCADE"},
	{"fk_orders_business", "orders", "business_id", "businesses(id)", "CASCADE"},
	{"fk_orders_worker", "orders", "worker_id", "users(id)", "SET NULL"},
	{"fk_products_business", "products", "business_id", "businesses(id)", "CASCADE"},
	{"fk_products_created_by", "products", "created_by_id", "users(id)", "CASCADE"},
}

// Migrate creates or updates the schema. It is idempotent.
func Migrate(ctx context.Context, db *gorm.DB) error {
	db = db.WithContext(ctx)

	if err := db.AutoMigrate(
		&businessrepo.BusinessDTO{},
		&userrepo.UserDTO{},
		&orderrepo.OrderDTO{},
		&productrepo.ProductDTO{},
	); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}

	for _, fk := range foreignKeys {
		stmt := fmt.Sprintf(`
			DO $$
			BEGIN
				IF NOT EXISTS (SELECT 1 FROM pg_constraint WHERE conname = '%[1]s') THEN
					ALTER TABLE %[2]s ADD CONSTRAINT %[1]s
						FOREIGN KEY (%[3]s) REFERENCES %[4]s ON DELETE %[5]s;
				END IF;
			END $$;`, fk.name, fk.table, fk.column, fk.ref, fk.onDelete)
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("add constraint %s: %w", fk.name, err)
		}
	}

	return nil
}
