package cmd

import (
	"fmt"
	"log/slog"

	"pizzastore/internal/adapters/out/bcrypt"
	"pizzastore/internal/adapters/out/policyfile"
	"pizzastore/internal/adapters/out/postgres"
	pizzaprom "pizzastore/internal/adapters/out/prometheus"
	pizzaredis "pizzastore/internal/adapters/out/redis"
	"pizzastore/internal/adapters/out/session"
	"pizzastore/internal/core/application/usecases/commands"
	"pizzastore/internal/core/application/usecases/queries"
	"pizzastore/internal/core/domain/model/identity"
	"pizzastore/internal/core/ports"
	"pizzastore/internal/jobs"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	goredis "github.com/redis/go-redis/v9"
	xbcrypt "golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	logger     *slog.Logger

	policy   identity.Policy
	hasher   ports.PasswordHasher
	registry *prometheus.Registry
	metrics  *pizzaprom.OrderMetrics
	codec    *session.Codec

	// menuCache is nil when REDIS_ADDR is empty.
	menuCache *pizzaredis.MenuCache
}

// NewCompositionRoot builds the shared adapters. redisClient and logger may
// be nil.
func NewCompositionRoot(
	config Config,
	gormDB *gorm.DB,
	redisClient *goredis.Client,
	logger *slog.Logger,
) (*CompositionRoot, error) {
	if logger == nil {
		logger = slog.Default()
	}

	policy := identity.DefaultPolicy()
	if config.PolicyFile != "" {
		loaded, err := policyfile.Load(config.PolicyFile)
		if err != nil {
			return nil, fmt.Errorf("load policy %s: %w", config.PolicyFile, err)
		}
		policy = loaded
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	metrics, err := pizzaprom.NewOrderMetrics(registry)
	if err != nil {
		return nil, err
	}

	codec, err := session.NewCodec(config.SessionSecret, config.SessionTTL)
	if err != nil {
		return nil, err
	}

	root := &CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		logger:     logger,
		policy:     policy,
		hasher:     bcrypt.NewHasher(xbcrypt.DefaultCost),
		registry:   registry,
		metrics:    metrics,
		codec:      codec,
	}
	if redisClient != nil {
		root.menuCache = pizzaredis.NewMenuCache(redisClient, config.MenuCacheTTL)
	}

	return root, nil
}

func (c *CompositionRoot) Registry() *prometheus.Registry {
	return c.registry
}

// SessionCodec signs and parses session tokens for a presentation layer
// in front of the handlers. The health and metrics server does not use it.
func (c *CompositionRoot) SessionCodec() *session.Codec {
	return c.codec
}

func (c *CompositionRoot) Policy() identity.Policy {
	return c.policy
}

// Commands

func (c *CompositionRoot) CreateRegisterUserCommandHandler() commands.RegisterUserCommandHandler {
	var f commands.UserUoWFactory = FuncUserUoWFactory(func() commands.UserUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRegisterUserCommandHandler(f, c.hasher)
}

func (c *CompositionRoot) CreatePlaceOrderCommandHandler() commands.PlaceOrderCommandHandler {
	var f commands.PlacementUoWFactory = FuncPlacementUoWFactory(func() commands.PlacementUoW {
		return c.uowFactory.Create()
	})
	return commands.NewPlaceOrderCommandHandler(f, c.policy, c.metrics, c.logger, c.config.OrderIDMaxRetries)
}

func (c *CompositionRoot) CreateTransitionOrderStatusCommandHandler() commands.TransitionOrderStatusCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewTransitionOrderStatusCommandHandler(f, c.policy, c.metrics, c.logger)
}

func (c *CompositionRoot) CreateUpdateItemCommandHandler() commands.UpdateItemCommandHandler {
	var f commands.CatalogUoWFactory = FuncCatalogUoWFactory(func() commands.CatalogUoW {
		return c.uowFactory.Create()
	})
	var invalidator commands.MenuCacheInvalidator
	if c.menuCache != nil {
		invalidator = c.menuCache
	}
	return commands.NewUpdateItemCommandHandler(f, c.policy, invalidator, c.logger)
}

func (c *CompositionRoot) CreateUpdateUserLoginCommandHandler() commands.UpdateUserLoginCommandHandler {
	var f commands.UserUoWFactory = FuncUserUoWFactory(func() commands.UserUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateUserLoginCommandHandler(f, c.policy)
}

func (c *CompositionRoot) CreateUpdateUserRoleCommandHandler() commands.UpdateUserRoleCommandHandler {
	var f commands.UserUoWFactory = FuncUserUoWFactory(func() commands.UserUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateUserRoleCommandHandler(f, c.policy)
}

func (c *CompositionRoot) CreateUpdateProfileCommandHandler() commands.UpdateProfileCommandHandler {
	var f commands.ProfileUoWFactory = FuncProfileUoWFactory(func() commands.ProfileUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateProfileCommandHandler(f, c.policy, c.hasher)
}

// Queries

func (c *CompositionRoot) CreateAuthenticateQueryHandler() queries.AuthenticateQueryHandler {
	return queries.NewAuthenticateQueryHandler(c.gormDB, c.hasher)
}

func (c *CompositionRoot) CreateBrowseMenuQueryHandler() queries.BrowseMenuQueryHandler {
	var cache queries.MenuCache
	if c.menuCache != nil {
		cache = c.menuCache
	}
	return queries.NewBrowseMenuQueryHandler(c.gormDB, c.policy, cache, c.logger)
}

func (c *CompositionRoot) CreateListStoresQueryHandler() queries.ListStoresQueryHandler {
	return queries.NewListStoresQueryHandler(c.gormDB, c.policy)
}

func (c *CompositionRoot) CreateViewProfileQueryHandler() queries.ViewProfileQueryHandler {
	return queries.NewViewProfileQueryHandler(c.gormDB, c.policy)
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.gormDB, c.policy)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB, c.policy)
}

func (c *CompositionRoot) CreateRecentOrdersQueryHandler() queries.RecentOrdersQueryHandler {
	return queries.NewRecentOrdersQueryHandler(c.gormDB, c.policy)
}

func (c *CompositionRoot) CreateOrderHistoryQueryHandler() queries.OrderHistoryQueryHandler {
	return queries.NewOrderHistoryQueryHandler(c.gormDB, c.policy)
}

func (c *CompositionRoot) CreateCountOrdersByStatusQueryHandler() queries.CountOrdersByStatusQueryHandler {
	return queries.NewCountOrdersByStatusQueryHandler(c.gormDB, c.policy)
}

// Jobs

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateCountOrdersByStatusQueryHandler(),
		c.metrics,
		c.config.StatusGaugeSchedule,
		c.logger,
	)
}

type FuncUserUoWFactory func() commands.UserUoW

func (f FuncUserUoWFactory) Create() commands.UserUoW {
	return f()
}

type FuncProfileUoWFactory func() commands.ProfileUoW

func (f FuncProfileUoWFactory) Create() commands.ProfileUoW {
	return f()
}

type FuncCatalogUoWFactory func() commands.CatalogUoW

func (f FuncCatalogUoWFactory) Create() commands.CatalogUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncPlacementUoWFactory func() commands.PlacementUoW

func (f FuncPlacementUoWFactory) Create() commands.PlacementUoW {
	return f()
}
