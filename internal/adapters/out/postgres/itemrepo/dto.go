// Package itemrepo persists menu items.
package itemrepo

import (
	"pizzastore/internal/core/domain/model/catalog"
	"pizzastore/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
)

type ItemDTO struct {
	ItemName    string          `gorm:"primaryKey;size:50"`
	Ingredients string          `gorm:"size:256"`
	TypeOfItem  string          `gorm:"size:16;not null;index"`
	Price       decimal.Decimal `gorm:"type:numeric(10,2);not null;index"`
	Description string          `gorm:"size:256"`
}

func (ItemDTO) TableName() string {
	return "items"
}

func fromDomain(item *catalog.Item) ItemDTO {
	return ItemDTO{
		ItemName:    item.Name(),
		Ingredients: item.Ingredients(),
		TypeOfItem:  item.Type().String(),
		Price:       item.Price().Decimal(),
		Description: item.Description(),
	}
}

func toDomain(dto ItemDTO) (*catalog.Item, error) {
	itemType, err := catalog.ParseItemType(dto.TypeOfItem)
	if err != nil {
		return nil, err
	}

	price, err := kernel.NewMoney(dto.Price)
	if err != nil {
		return nil, err
	}

	return catalog.NewItem(dto.ItemName, itemType, price, dto.Description, dto.Ingredients)
}
