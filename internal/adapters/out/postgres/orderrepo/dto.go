// Package orderrepo maps order aggregates to the orders, order_line_items and
// order_status_history tables.
package orderrepo

import (
	"time"

	"pizzastore/internal/core/domain/model/kernel"
	"pizzastore/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO is the order header. OrderID is assigned by the application,
// never by the database.
type OrderDTO struct {
	OrderID        int64           `gorm:"primaryKey;autoIncrement:false"`
	Login          string          `gorm:"size:50;not null;index"`
	StoreID        int64           `gorm:"not null;index"`
	TotalPrice     decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	OrderStatus    string          `gorm:"size:32;not null;index"`
	OrderTimestamp time.Time       `gorm:"not null;index"`
	LineItems      []LineItemDTO   `gorm:"foreignKey:OrderID;references:OrderID;constraint:OnDelete:CASCADE"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

// LineItemDTO keeps the unit price at placement so totals stay reproducible
// after catalog price changes.
type LineItemDTO struct {
	OrderID   int64           `gorm:"primaryKey;autoIncrement:false"`
	LineNo    int             `gorm:"primaryKey;autoIncrement:false"`
	ItemName  string          `gorm:"size:50;not null"`
	Quantity  int             `gorm:"not null"`
	UnitPrice decimal.Decimal `gorm:"type:numeric(10,2);not null"`
}

func (LineItemDTO) TableName() string {
	return "order_line_items"
}

type StatusChangeDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID    int64     `gorm:"not null;index"`
	FromStatus string    `gorm:"size:32;not null"`
	ToStatus   string    `gorm:"size:32;not null"`
	ChangedBy  string    `gorm:"size:50;not null"`
	ChangedAt  time.Time `gorm:"not null"`
}

func (StatusChangeDTO) TableName() string {
	return "order_status_history"
}

func fromDomain(o *order.Order) OrderDTO {
	lines := o.LineItems()
	dto := OrderDTO{
		OrderID:        o.ID(),
		Login:          o.Owner().String(),
		StoreID:        o.StoreID(),
		TotalPrice:     o.TotalPrice().Decimal(),
		OrderStatus:    o.Status().String(),
		OrderTimestamp: o.CreatedAt(),
		LineItems:      make([]LineItemDTO, 0, len(lines)),
	}
	for i, line := range lines {
		dto.LineItems = append(dto.LineItems, LineItemDTO{
			OrderID:   o.ID(),
			LineNo:    i + 1,
			ItemName:  line.ItemName(),
			Quantity:  line.Quantity(),
			UnitPrice: line.UnitPrice().Decimal(),
		})
	}
	return dto
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	owner, err := kernel.NewLogin(dto.Login)
	if err != nil {
		return nil, err
	}

	status, err := order.ParseStatus(dto.OrderStatus)
	if err != nil {
		return nil, err
	}

	total, err := kernel.NewMoney(dto.TotalPrice)
	if err != nil {
		return nil, err
	}

	lines := make([]order.LineItem, 0, len(dto.LineItems))
	for _, l := range dto.LineItems {
		unitPrice, priceErr := kernel.NewMoney(l.UnitPrice)
		if priceErr != nil {
			return nil, priceErr
		}
		line, lineErr := order.NewLineItem(l.ItemName, l.Quantity, unitPrice)
		if lineErr != nil {
			return nil, lineErr
		}
		lines = append(lines, line)
	}

	return order.RestoreOrder(dto.OrderID, owner, dto.StoreID, lines, total, status, dto.OrderTimestamp)
}

func statusChangeFromDomain(c order.StatusChange) StatusChangeDTO {
	return StatusChangeDTO{
		ID:         c.ID().Bytes(),
		OrderID:    c.OrderID(),
		FromStatus: c.From().String(),
		ToStatus:   c.To().String(),
		ChangedBy:  c.ChangedBy().String(),
		ChangedAt:  c.ChangedAt(),
	}
}
