package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"pizzastore/internal/core/domain/model/identity"
	"pizzastore/internal/core/domain/model/order"
	"pizzastore/internal/core/domain/services"
	"pizzastore/internal/core/ports"

	"github.com/cenkalti/backoff/v4"
)

const (
	DefaultOrderIDMaxRetries = 5

	orderIDRetryInitialInterval = 5 * time.Millisecond
	orderIDRetryMaxInterval     = 200 * time.Millisecond
)

// PlaceOrderCommandHandler prices and persists new orders.
//
// The order id is allocated as max+1 inside the same transaction as the
// insert. Two concurrent placements may read the same max; the loser's insert
// hits the primary key, its transaction is rolled back and the whole
// placement is retried with a fresh id.
//
// Example:
//
//	handler := NewPlaceOrderCommandHandler(uowFactory, policy, metrics, logger, 5)
//	placed, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, order.ErrOrderIDConflict) {
//	    // retries exhausted under contention
//	}
type PlaceOrderCommandHandler struct {
	uowFactory PlacementUoWFactory
	policy     identity.Policy
	pricer     services.OrderPricer
	metrics    ports.OrderMetrics
	logger     *slog.Logger
	maxRetries int
}

// NewPlaceOrderCommandHandler creates the handler. A non-positive maxRetries
// falls back to DefaultOrderIDMaxRetries; nil metrics or logger are allowed.
func NewPlaceOrderCommandHandler(
	uowFactory PlacementUoWFactory,
	policy identity.Policy,
	metrics ports.OrderMetrics,
	logger *slog.Logger,
	maxRetries int,
) PlaceOrderCommandHandler {
	if maxRetries <= 0 {
		maxRetries = DefaultOrderIDMaxRetries
	}
	if logger == nil {
		logger = slog.Default()
	}
	return PlaceOrderCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
		pricer:     services.NewOrderPricer(),
		metrics:    metricsOrNop(metrics),
		logger:     logger,
		maxRetries: maxRetries,
	}
}

func (h PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	if err := h.policy.Authorize(cmd.Caller(), identity.ActionPlaceOrder); err != nil {
		return nil, err
	}

	var placed *order.Order
	attempt := 0
	operation := func() error {
		attempt++
		o, err := h.placeOnce(ctx, cmd)
		if err == nil {
			placed = o
			return nil
		}
		if !errors.Is(err, order.ErrOrderIDConflict) {
			return backoff.Permanent(err)
		}

		h.metrics.OrderIDConflict()
		h.logger.WarnContext(ctx, "order id taken by concurrent placement, retrying",
			slog.Int("attempt", attempt),
			slog.String("login", cmd.Caller().Login().String()),
		)
		return err
	}

	if err := backoff.Retry(operation, h.newBackOff(ctx)); err != nil {
		return nil, err
	}

	h.metrics.OrderPlaced(placed.StoreID())
	h.logger.InfoContext(ctx, "order placed",
		slog.Int64("orderID", placed.ID()),
		slog.String("login", placed.Owner().String()),
		slog.String("total", placed.TotalPrice().String()),
	)

	return placed, nil
}

func (h PlaceOrderCommandHandler) newBackOff(ctx context.Context) backoff.BackOff {
	expo := backoff.NewExponentialBackOff()
	expo.InitialInterval = orderIDRetryInitialInterval
	expo.MaxInterval = orderIDRetryMaxInterval
	expo.MaxElapsedTime = 0

	return backoff.WithContext(backoff.WithMaxRetries(expo, uint64(h.maxRetries)), ctx)
}

func (h PlaceOrderCommandHandler) placeOnce(ctx context.Context, cmd PlaceOrderCommand) (*order.Order, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	store, err := uow.StoreRepository().Get(ctx, cmd.StoreID())
	if err != nil {
		return nil, err
	}

	requests := cmd.Lines()
	items, err := uow.ItemRepository().GetMany(ctx, services.ItemNames(requests))
	if err != nil {
		return nil, err
	}

	lines, err := h.pricer.Price(requests, items)
	if err != nil {
		return nil, err
	}

	orderRepo := uow.OrderRepository()
	id, err := orderRepo.NextID(ctx)
	if err != nil {
		return nil, err
	}

	placed, err := order.NewOrder(id, cmd.Caller().Login(), store.ID(), lines, time.Now().UTC())
	if err != nil {
		return nil, err
	}

	if err = orderRepo.Add(ctx, placed); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return placed, nil
}
