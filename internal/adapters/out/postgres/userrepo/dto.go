// Package userrepo persists user accounts.
package userrepo

import (
	"pizzastore/internal/core/domain/model/identity"
	"pizzastore/internal/core/domain/model/kernel"
)

// UserDTO is a row of the users table. FavItem is NULL until the user picks one.
type UserDTO struct {
	Login    string  `gorm:"primaryKey;size:50"`
	Password string  `gorm:"not null"`
	Role     string  `gorm:"size:16;not null;index"`
	FavItem  *string `gorm:"size:50"`
	PhoneNum string  `gorm:"size:10;not null"`
}

func (UserDTO) TableName() string {
	return "users"
}

func fromDomain(user *identity.User) UserDTO {
	dto := UserDTO{
		Login:    user.Login().String(),
		Password: user.PasswordHash(),
		Role:     user.Role().String(),
		PhoneNum: user.PhoneNumber().String(),
	}
	if favorite, ok := user.FavoriteItem(); ok {
		dto.FavItem = &favorite
	}
	return dto
}

func toDomain(dto UserDTO) (*identity.User, error) {
	login, err := kernel.NewLogin(dto.Login)
	if err != nil {
		return nil, err
	}

	role, err := identity.ParseRole(dto.Role)
	if err != nil {
		return nil, err
	}

	phone, err := identity.NewPhoneNumber(dto.PhoneNum)
	if err != nil {
		return nil, err
	}

	var favorite string
	if dto.FavItem != nil {
		favorite = *dto.FavItem
	}

	return identity.RestoreUser(login, dto.Password, role, favorite, phone)
}
