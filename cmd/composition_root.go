package cmd

import (
	"time"

	httpin "ordering/internal/adapters/in/http"
	kafkaout "ordering/internal/adapters/out/kafka"
	"ordering/internal/adapters/out/postgres"
	"ordering/internal/adapters/out/postgres/catalogrepo"
	"ordering/internal/adapters/out/postgres/settingsrepo"
	redisout "ordering/internal/adapters/out/redis"
	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/application/usecases/queries"

	goredis "github.com/go-redis/redis/v8"
	"github.com/segmentio/kafka-go"
	"gorm.io/gorm"
)

// CompositionRoot wires adapters into command and query handlers. Handlers
// are created per call; the underlying connections are shared.
type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	catalog    *catalogrepo.GormCatalogReader
	settings   *settingsrepo.GormSettingsProvider
	publisher  *kafkaout.OrderEventPublisher
	idempotent *redisout.IdempotencyStore
	clock      restaurantClock
	config     Config
}

// NewCompositionRoot assembles the object graph from the shared connections.
func NewCompositionRoot(
	config Config,
	gormDB *gorm.DB,
	kafkaWriter *kafka.Writer,
	redisClient *goredis.Client,
	location *time.Location,
) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		catalog:    catalogrepo.NewGormCatalogReader(gormDB),
		settings:   settingsrepo.NewGormSettingsProvider(gormDB),
		publisher:  kafkaout.NewOrderEventPublisher(kafkaWriter),
		idempotent: redisout.NewIdempotencyStore(redisClient, config.IdempotencyTTL),
		clock:      restaurantClock{location: location},
		config:     config,
	}
}

func (c *CompositionRoot) placementUoWFactory() commands.PlacementUoWFactory {
	return FuncPlacementUoWFactory(func() commands.PlacementUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreatePlaceOrderCommandHandler() commands.PlaceOrderCommandHandler {
	return commands.NewPlaceOrderCommandHandler(
		c.placementUoWFactory(),
		c.catalog,
		c.settings,
		c.settings,
		c.idempotent,
		c.publisher,
		c.clock,
	)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	return commands.NewCancelOrderCommandHandler(c.orderUoWFactory(), c.publisher)
}

func (c *CompositionRoot) CreateModifyOrderCommandHandler() commands.ModifyOrderCommandHandler {
	return commands.NewModifyOrderCommandHandler(
		c.placementUoWFactory(),
		c.catalog,
		c.settings,
		c.settings,
		c.publisher,
		c.clock,
	)
}

func (c *CompositionRoot) CreateChangeOrderStatusCommandHandler() commands.ChangeOrderStatusCommandHandler {
	return commands.NewChangeOrderStatusCommandHandler(c.orderUoWFactory(), c.publisher, c.clock)
}

func (c *CompositionRoot) CreateMarkOrderPaidCommandHandler() commands.MarkOrderPaidCommandHandler {
	return commands.NewMarkOrderPaidCommandHandler(c.orderUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateExpireStaleOrdersCommandHandler() commands.ExpireStaleOrdersCommandHandler {
	return commands.NewExpireStaleOrdersCommandHandler(c.orderUoWFactory(), c.publisher, c.clock)
}

func (c *CompositionRoot) CreateGetActiveOrdersQueryHandler() queries.GetActiveOrdersQueryHandler {
	return queries.NewGetActiveOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(
		c.CreatePlaceOrderCommandHandler(),
		c.CreateCancelOrderCommandHandler(),
		c.CreateModifyOrderCommandHandler(),
		c.CreateChangeOrderStatusCommandHandler(),
		c.CreateMarkOrderPaidCommandHandler(),
		c.CreateGetActiveOrdersQueryHandler(),
		c.CreateGetOrderQueryHandler(),
	)
}

// restaurantClock yields the current time localized to the restaurant's
// timezone, which drives daily number day boundaries and opening hours.
type restaurantClock struct {
	location *time.Location
}

func (c restaurantClock) Now() time.Time {
	return time.Now().In(c.location)
}

type FuncPlacementUoWFactory func() commands.PlacementUoW

func (f FuncPlacementUoWFactory) Create() commands.PlacementUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}
