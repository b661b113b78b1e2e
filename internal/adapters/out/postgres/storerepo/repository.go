package storerepo

import (
	"context"

	"pizzastore/internal/adapters/out/postgres/sqlerr"
	"pizzastore/internal/core/domain/model/catalog"
	"pizzastore/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormStoreRepository implements ports.StoreRepository using GORM.
type GormStoreRepository struct {
	db *gorm.DB
}

func NewGormStoreRepository(db *gorm.DB) *GormStoreRepository {
	return &GormStoreRepository{db: db}
}

func (r *GormStoreRepository) Add(ctx context.Context, store *catalog.Store) error {
	if err := store.Validate(); err != nil {
		return err
	}

	dto := fromDomain(store)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if sqlerr.IsUniqueViolation(err) {
			return errs.NewObjectAlreadyExistsError("storeID", dto.StoreID)
		}
		return err
	}
	return nil
}

func (r *GormStoreRepository) Get(ctx context.Context, id int64) (*catalog.Store, error) {
	var dto StoreDTO
	if err := r.db.WithContext(ctx).First(&dto, "store_id = ?", id).Error; err != nil {
		if sqlerr.IsNotFound(err) {
			return nil, errs.NewObjectNotFoundErrorWithCause("storeID", id, catalog.ErrStoreNotFound)
		}
		return nil, err
	}

	return toDomain(dto)
}
