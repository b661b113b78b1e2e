package postgres

import (
	"pizzastore/internal/adapters/out/postgres/itemrepo"
	"pizzastore/internal/adapters/out/postgres/orderrepo"
	"pizzastore/internal/adapters/out/postgres/storerepo"
	"pizzastore/internal/adapters/out/postgres/userrepo"

	"gorm.io/gorm"
)

// Models lists every persisted table in creation order.
func Models() []any {
	return []any{
		&userrepo.UserDTO{},
		&itemrepo.ItemDTO{},
		&storerepo.StoreDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.LineItemDTO{},
		&orderrepo.StatusChangeDTO{},
	}
}

// Migrate creates or alters the schema to match the DTOs.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(Models()...)
}
