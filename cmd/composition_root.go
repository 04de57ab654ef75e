package cmd

import (
	"log/slog"

	"storefront/internal/adapters/out/activity"
	"storefront/internal/adapters/out/payment"
	"storefront/internal/adapters/out/postgres"
	"storefront/internal/adapters/out/redis/cartstore"
	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/ports"
	"storefront/internal/jobs"

	goredis "github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	cartStore  ports.CartStore
	gateway    ports.PaymentGateway
	activity   ports.ActivityRecorder
	logger     *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, redisClient *goredis.Client, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		cartStore:  cartstore.NewRedisCartStore(redisClient),
		gateway:    payment.NewSimulatedGateway(payment.WithApproveRate(config.PaymentApproveRate)),
		activity:   activity.NewSlogRecorder(logger),
		logger:     logger,
	}
}

func (c *CompositionRoot) CreateAddCartItemCommandHandler() commands.AddCartItemCommandHandler {
	var f commands.ProductUoWFactory = FuncProductUoWFactory(func() commands.ProductUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAddCartItemCommandHandler(f, c.cartStore)
}

func (c *CompositionRoot) CreateUpdateCartItemCommandHandler() commands.UpdateCartItemCommandHandler {
	return commands.NewUpdateCartItemCommandHandler(c.cartStore)
}

func (c *CompositionRoot) CreateRemoveCartItemCommandHandler() commands.RemoveCartItemCommandHandler {
	return commands.NewRemoveCartItemCommandHandler(c.cartStore)
}

func (c *CompositionRoot) CreateClearCartCommandHandler() commands.ClearCartCommandHandler {
	return commands.NewClearCartCommandHandler(c.cartStore)
}

func (c *CompositionRoot) CreateCheckoutCommandHandler() commands.CheckoutCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewCheckoutCommandHandler(f, c.cartStore, c.gateway, c.activity, c.config.PaymentTimeout)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewCancelOrderCommandHandler(f, c.activity)
}

func (c *CompositionRoot) CreateChangeOrderStatusCommandHandler() commands.ChangeOrderStatusCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewChangeOrderStatusCommandHandler(f, c.activity)
}

func (c *CompositionRoot) CreateExpireStaleOrdersCommandHandler() commands.ExpireStaleOrdersCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewExpireStaleOrdersCommandHandler(f, c.activity)
}

func (c *CompositionRoot) CreateGetCartSummaryQueryHandler() queries.GetCartSummaryQueryHandler {
	return queries.NewGetCartSummaryQueryHandler(c.gormDB, c.cartStore)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateStaleOrderJob() *jobs.StaleOrderJob {
	return jobs.NewStaleOrderJob(c.CreateExpireStaleOrdersCommandHandler(), c.config.StaleOrderMaxAge, c.logger)
}

type FuncProductUoWFactory func() commands.ProductUoW

func (f FuncProductUoWFactory) Create() commands.ProductUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
