package order

import (
	"errors"
	"time"

	"pizzastore/internal/core/domain/model/kernel"
)

// StatusChange records one successful transition. Records are append-only.
type StatusChange struct {
	id        kernel.UUID
	orderID   int64
	from      Status
	to        Status
	changedBy kernel.Login
	changedAt time.Time
}

func NewStatusChange(orderID int64, from, to Status, changedBy kernel.Login, changedAt time.Time) (StatusChange, error) {
	return RestoreStatusChange(kernel.NewUUID(), orderID, from, to, changedBy, changedAt)
}

func RestoreStatusChange(
	id kernel.UUID,
	orderID int64,
	from, to Status,
	changedBy kernel.Login,
	changedAt time.Time,
) (StatusChange, error) {
	if err := errors.Join(id.Validate(), from.Validate(), to.Validate(), changedBy.Validate()); err != nil {
		return StatusChange{}, err
	}
	return StatusChange{
		id:        id,
		orderID:   orderID,
		from:      from,
		to:        to,
		changedBy: changedBy,
		changedAt: changedAt,
	}, nil
}

func (c StatusChange) ID() kernel.UUID         { return c.id }
func (c StatusChange) OrderID() int64          { return c.orderID }
func (c StatusChange) From() Status            { return c.from }
func (c StatusChange) To() Status              { return c.to }
func (c StatusChange) ChangedBy() kernel.Login { return c.changedBy }
func (c StatusChange) ChangedAt() time.Time    { return c.changedAt }
