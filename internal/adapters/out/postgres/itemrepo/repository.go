package itemrepo

import (
	"context"

	"pizzastore/internal/adapters/out/postgres/sqlerr"
	"pizzastore/internal/core/domain/model/catalog"
	"pizzastore/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormItemRepository implements ports.ItemRepository using GORM.
type GormItemRepository struct {
	db *gorm.DB
}

func NewGormItemRepository(db *gorm.DB) *GormItemRepository {
	return &GormItemRepository{db: db}
}

func (r *GormItemRepository) Add(ctx context.Context, item *catalog.Item) error {
	if err := item.Validate(); err != nil {
		return err
	}

	dto := fromDomain(item)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if sqlerr.IsUniqueViolation(err) {
			return errs.NewObjectAlreadyExistsError("itemName", dto.ItemName)
		}
		return err
	}
	return nil
}

func (r *GormItemRepository) Update(ctx context.Context, item *catalog.Item) error {
	if err := item.Validate(); err != nil {
		return err
	}

	dto := fromDomain(item)
	result := r.db.WithContext(ctx).Model(&ItemDTO{}).
		Where("item_name = ?", dto.ItemName).
		Select("ingredients", "type_of_item", "price", "description").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundErrorWithCause("itemName", dto.ItemName, catalog.ErrItemNotFound)
	}
	return nil
}

func (r *GormItemRepository) Get(ctx context.Context, name string) (*catalog.Item, error) {
	var dto ItemDTO
	if err := r.db.WithContext(ctx).First(&dto, "item_name = ?", name).Error; err != nil {
		if sqlerr.IsNotFound(err) {
			return nil, errs.NewObjectNotFoundErrorWithCause("itemName", name, catalog.ErrItemNotFound)
		}
		return nil, err
	}

	return toDomain(dto)
}

func (r *GormItemRepository) GetMany(ctx context.Context, names []string) (map[string]*catalog.Item, error) {
	items := make(map[string]*catalog.Item, len(names))
	if len(names) == 0 {
		return items, nil
	}

	var dtos []ItemDTO
	if err := r.db.WithContext(ctx).Where("item_name IN ?", names).Find(&dtos).Error; err != nil {
		return nil, err
	}

	for _, dto := range dtos {
		item, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		items[item.Name()] = item
	}
	return items, nil
}
