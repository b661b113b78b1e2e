package userrepo

import (
	"context"
	"errors"

	"pizzastore/internal/adapters/out/postgres/sqlerr"
	"pizzastore/internal/core/domain/model/identity"
	"pizzastore/internal/core/domain/model/kernel"
	"pizzastore/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormUserRepository implements ports.UserRepository using GORM.
type GormUserRepository struct {
	db *gorm.DB
}

func NewGormUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db}
}

func (r *GormUserRepository) Add(ctx context.Context, user *identity.User) error {
	if err := user.Validate(); err != nil {
		return err
	}

	dto := fromDomain(user)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if sqlerr.IsUniqueViolation(err) {
			return errs.NewObjectAlreadyExistsErrorWithCause("login", dto.Login, identity.ErrDuplicateLogin)
		}
		return err
	}
	return nil
}

// Update writes every column except the login key.
func (r *GormUserRepository) Update(ctx context.Context, user *identity.User) error {
	if err := user.Validate(); err != nil {
		return err
	}

	dto := fromDomain(user)
	result := r.db.WithContext(ctx).Model(&UserDTO{}).
		Where("login = ?", dto.Login).
		Select("password", "role", "fav_item", "phone_num").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundErrorWithCause("login", dto.Login, identity.ErrUserNotFound)
	}
	return nil
}

func (r *GormUserRepository) Get(ctx context.Context, login kernel.Login) (*identity.User, error) {
	if err := login.Validate(); err != nil {
		return nil, err
	}

	var dto UserDTO
	if err := r.db.WithContext(ctx).First(&dto, "login = ?", login.String()).Error; err != nil {
		if sqlerr.IsNotFound(err) {
			return nil, errs.NewObjectNotFoundErrorWithCause("login", login.String(), identity.ErrUserNotFound)
		}
		return nil, err
	}

	return toDomain(dto)
}

func (r *GormUserRepository) Exists(ctx context.Context, login kernel.Login) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&UserDTO{}).Where("login = ?", login.String()).Count(&count).Error
	return count > 0, err
}

// ChangeLogin re-keys the user row and rewrites the owner of its orders
// and the author of its status history. Run it inside a transaction.
func (r *GormUserRepository) ChangeLogin(ctx context.Context, from, to kernel.Login) error {
	if err := errors.Join(from.Validate(), to.Validate()); err != nil {
		return err
	}

	db := r.db.WithContext(ctx)
	result := db.Model(&UserDTO{}).Where("login = ?", from.String()).Update("login", to.String())
	if result.Error != nil {
		if sqlerr.IsUniqueViolation(result.Error) {
			return errs.NewObjectAlreadyExistsErrorWithCause("login", to.String(), identity.ErrDuplicateLogin)
		}
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundErrorWithCause("login", from.String(), identity.ErrUserNotFound)
	}

	if err := db.Exec("UPDATE orders SET login = ? WHERE login = ?", to.String(), from.String()).Error; err != nil {
		return err
	}
	return db.Exec(
		"UPDATE order_status_history SET changed_by = ? WHERE changed_by = ?", to.String(), from.String(),
	).Error
}
