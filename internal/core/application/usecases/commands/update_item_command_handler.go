package commands

import (
	"context"
	"log/slog"

	"pizzastore/internal/core/domain/model/catalog"
	"pizzastore/internal/core/domain/model/identity"
)

// UpdateItemCommandHandler applies manager edits to the menu.
// Existing orders keep the unit prices they were placed with.
//
// Example:
//
//	cmd, _ := NewUpdateItemCommand(manager, "Pepperoni", "price", "9.99")
//	item, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, catalog.ErrInvalidPrice) {
//	    // "-5" and "abc" end up here
//	}
type UpdateItemCommandHandler struct {
	uowFactory CatalogUoWFactory
	policy     identity.Policy
	cache      MenuCacheInvalidator
	logger     *slog.Logger
}

// NewUpdateItemCommandHandler creates the handler. cache may be nil when the
// menu is not cached.
func NewUpdateItemCommandHandler(
	uowFactory CatalogUoWFactory,
	policy identity.Policy,
	cache MenuCacheInvalidator,
	logger *slog.Logger,
) UpdateItemCommandHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return UpdateItemCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
		cache:      cache,
		logger:     logger,
	}
}

func (h UpdateItemCommandHandler) Handle(ctx context.Context, cmd UpdateItemCommand) (*catalog.Item, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	if err := h.policy.Authorize(cmd.Caller(), identity.ActionMutateCatalog); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	itemRepo := uow.ItemRepository()
	item, err := itemRepo.Get(ctx, cmd.ItemName())
	if err != nil {
		return nil, err
	}

	if err = item.Update(cmd.Field(), cmd.Value()); err != nil {
		return nil, err
	}

	if err = itemRepo.Update(ctx, item); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	if h.cache != nil {
		if err = h.cache.Invalidate(ctx); err != nil {
			h.logger.WarnContext(ctx, "menu cache invalidation failed", slog.Any("error", err))
		}
	}

	return item, nil
}
