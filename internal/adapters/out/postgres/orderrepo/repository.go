package orderrepo

import (
	"context"
	"errors"
	"fmt"

	"pizzastore/internal/adapters/out/postgres/sqlerr"
	"pizzastore/internal/core/domain/model/order"
	"pizzastore/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrStaleStatus is the cause of the conflict returned when the stored status
// no longer matches the one the caller read.
var ErrStaleStatus = errors.New("order status was changed concurrently")

// GormOrderRepository implements ports.OrderRepository using GORM.
type GormOrderRepository struct {
	db *gorm.DB
}

func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

func (r *GormOrderRepository) NextID(ctx context.Context) (int64, error) {
	var currentMax int64
	err := r.db.WithContext(ctx).
		Raw("SELECT COALESCE(MAX(order_id), 0) FROM orders").
		Scan(&currentMax).Error
	if err != nil {
		return 0, err
	}
	return order.NextID(currentMax), nil
}

// Add inserts the header first and then the line items. A primary key
// collision on the header means another placement took the id.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	db := r.db.WithContext(ctx)

	if err := db.Omit(clause.Associations).Create(&dto).Error; err != nil {
		if sqlerr.IsUniqueViolation(err) {
			return errs.NewConflictErrorWithCause("orderID", dto.OrderID, order.ErrOrderIDConflict)
		}
		return err
	}

	if err := db.Create(&dto.LineItems).Error; err != nil {
		return fmt.Errorf("insert line items of order %d: %w", dto.OrderID, err)
	}
	return nil
}

func (r *GormOrderRepository) Get(ctx context.Context, id int64) (*order.Order, error) {
	var dto OrderDTO
	err := r.db.WithContext(ctx).
		Preload("LineItems", func(db *gorm.DB) *gorm.DB { return db.Order("line_no") }).
		First(&dto, "order_id = ?", id).Error
	if err != nil {
		if sqlerr.IsNotFound(err) {
			return nil, errs.NewObjectNotFoundErrorWithCause("orderID", id, order.ErrOrderNotFound)
		}
		return nil, err
	}

	return toDomain(dto)
}

// UpdateStatus is a compare-and-set on order_status.
func (r *GormOrderRepository) UpdateStatus(ctx context.Context, aggregate *order.Order, expected order.Status) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	db := r.db.WithContext(ctx)
	result := db.Model(&OrderDTO{}).
		Where("order_id = ? AND order_status = ?", aggregate.ID(), expected.String()).
		Update("order_status", aggregate.Status().String())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 1 {
		return nil
	}

	var count int64
	if err := db.Model(&OrderDTO{}).Where("order_id = ?", aggregate.ID()).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return errs.NewObjectNotFoundErrorWithCause("orderID", aggregate.ID(), order.ErrOrderNotFound)
	}
	return errs.NewConflictErrorWithCause("orderID", aggregate.ID(), ErrStaleStatus)
}

func (r *GormOrderRepository) AddStatusChange(ctx context.Context, change order.StatusChange) error {
	dto := statusChangeFromDomain(change)
	return r.db.WithContext(ctx).Create(&dto).Error
}
