package commands

import (
	"context"
	"log/slog"
	"time"

	"pizzastore/internal/core/domain/model/identity"
	"pizzastore/internal/core/domain/model/order"
	"pizzastore/internal/core/ports"
)

// TransitionOrderStatusCommandHandler moves orders along the lifecycle.
//
// The stored status is updated with a compare-and-set on the status read at
// the start of the transaction, so of two staff members racing on the same
// order only one wins; the other gets an errs.ConflictError. Every accepted
// transition appends a history record in the same transaction.
type TransitionOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	policy     identity.Policy
	metrics    ports.OrderMetrics
	logger     *slog.Logger
}

func NewTransitionOrderStatusCommandHandler(
	uowFactory OrderUoWFactory,
	policy identity.Policy,
	metrics ports.OrderMetrics,
	logger *slog.Logger,
) TransitionOrderStatusCommandHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return TransitionOrderStatusCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
		metrics:    metricsOrNop(metrics),
		logger:     logger,
	}
}

func (h TransitionOrderStatusCommandHandler) Handle(
	ctx context.Context,
	cmd TransitionOrderStatusCommand,
) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	if err := h.policy.Authorize(cmd.Caller(), identity.ActionTransitionOrderStatus); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	previous, err := o.TransitionTo(cmd.NewStatus())
	if err != nil {
		return nil, err
	}

	if err = orderRepo.UpdateStatus(ctx, o, previous); err != nil {
		return nil, err
	}

	change, err := order.NewStatusChange(o.ID(), previous, o.Status(), cmd.Caller().Login(), time.Now().UTC())
	if err != nil {
		return nil, err
	}

	if err = orderRepo.AddStatusChange(ctx, change); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.metrics.StatusTransitioned(previous, o.Status())
	h.logger.InfoContext(ctx, "order status changed",
		slog.Int64("orderID", o.ID()),
		slog.String("from", previous.String()),
		slog.String("to", o.Status().String()),
		slog.String("by", cmd.Caller().String()),
	)

	return o, nil
}
