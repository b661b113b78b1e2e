package queries

import (
	"context"
	"log/slog"

	"pizzastore/internal/core/domain/model/identity"
	"pizzastore/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// MenuItem is a catalog item as shown on the menu.
type MenuItem struct {
	Name        string       `json:"name"`
	Type        string       `json:"type"`
	Price       kernel.Money `json:"price"`
	Description string       `json:"description"`
	Ingredients string       `json:"ingredients"`
}

// MenuCache stores menu pages by MenuFilter.CacheKey.
type MenuCache interface {
	Get(ctx context.Context, key string) ([]MenuItem, bool, error)
	Set(ctx context.Context, key string, items []MenuItem) error
}

type BrowseMenuQueryHandler struct {
	db     *gorm.DB
	policy identity.Policy
	cache  MenuCache
	logger *slog.Logger
}

// NewBrowseMenuQueryHandler reads through cache when it is non-nil.
func NewBrowseMenuQueryHandler(
	db *gorm.DB,
	policy identity.Policy,
	cache MenuCache,
	logger *slog.Logger,
) BrowseMenuQueryHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return BrowseMenuQueryHandler{
		db:     db,
		policy: policy,
		cache:  cache,
		logger: logger.With("component", "browse-menu"),
	}
}

// Handle serves the page from the cache when possible. Cache failures are
// logged and the page is read from the database.
func (h BrowseMenuQueryHandler) Handle(ctx context.Context, query BrowseMenuQuery) ([]MenuItem, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	if err := h.policy.Authorize(query.caller, identity.ActionBrowseCatalog); err != nil {
		return nil, err
	}

	key := query.filter.CacheKey()
	if h.cache != nil {
		items, ok, err := h.cache.Get(ctx, key)
		switch {
		case err != nil:
			h.logger.WarnContext(ctx, "menu cache read failed", "key", key, "error", err)
		case ok:
			return items, nil
		}
	}

	items, err := h.load(ctx, query.filter)
	if err != nil {
		return nil, err
	}

	if h.cache != nil {
		if err = h.cache.Set(ctx, key, items); err != nil {
			h.logger.WarnContext(ctx, "menu cache write failed", "key", key, "error", err)
		}
	}

	return items, nil
}

func (h BrowseMenuQueryHandler) load(ctx context.Context, filter MenuFilter) ([]MenuItem, error) {
	tx := h.db.WithContext(ctx).
		Table("items").
		Select("item_name, type_of_item, price, description, ingredients")

	if filter.Type != nil {
		tx = tx.Where("type_of_item = ?", filter.Type.String())
	}
	if filter.MaxPrice != nil {
		tx = tx.Where("price <= ?", filter.MaxPrice.Decimal())
	}

	switch filter.Sort {
	case SortByPriceAsc:
		tx = tx.Order("price ASC").Order("item_name")
	case SortByPriceDesc:
		tx = tx.Order("price DESC").Order("item_name")
	default:
		tx = tx.Order("item_name")
	}

	var rows []struct {
		ItemName    string
		TypeOfItem  string
		Price       decimal.Decimal
		Description string
		Ingredients string
	}
	if err := tx.Scan(&rows).Error; err != nil {
		return nil, err
	}

	items := make([]MenuItem, 0, len(rows))
	for _, row := range rows {
		price, err := kernel.NewMoney(row.Price)
		if err != nil {
			return nil, err
		}
		items = append(items, MenuItem{
			Name:        row.ItemName,
			Type:        row.TypeOfItem,
			Price:       price,
			Description: row.Description,
			Ingredients: row.Ingredients,
		})
	}

	return items, nil
}
