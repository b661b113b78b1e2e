// Package storerepo persists store locations.
package storerepo

import "pizzastore/internal/core/domain/model/catalog"

type StoreDTO struct {
	StoreID     int64 `gorm:"primaryKey;autoIncrement:false"`
	Address     string
	City        string `gorm:"size:64"`
	State       string `gorm:"size:32"`
	IsOpen      bool
	ReviewScore float64
}

func (StoreDTO) TableName() string {
	return "stores"
}

func fromDomain(store *catalog.Store) StoreDTO {
	return StoreDTO{
		StoreID:     store.ID(),
		Address:     store.Address(),
		City:        store.City(),
		State:       store.State(),
		IsOpen:      store.IsOpen(),
		ReviewScore: store.ReviewScore(),
	}
}

func toDomain(dto StoreDTO) (*catalog.Store, error) {
	return catalog.NewStore(dto.StoreID, dto.Address, dto.City, dto.State, dto.IsOpen, dto.ReviewScore)
}
