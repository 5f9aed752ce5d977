package components

import (
	"groupcart/internal/infra/cache"
	"groupcart/internal/infra/gateway"
	"groupcart/internal/infra/readstore"
	"groupcart/internal/infra/repository"
	"groupcart/internal/pkg/config"
	"groupcart/internal/usecase/commands"
	"groupcart/internal/usecase/queries"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		// The collection repository serves both sides: the command ports and
		// the query-side aggregate loader.
		fx.Annotate(
			repository.NewCollectionRepository,
			fx.As(new(commands.CollectionRepository)),
			fx.As(new(queries.CollectionLoader)),
		),
		fx.Annotate(
			repository.NewParticipantRepository,
			fx.As(new(commands.ParticipantRepository)),
		),
		fx.Annotate(
			repository.NewProductRepository,
			fx.As(new(commands.ProductRepository)),
		),
		fx.Annotate(
			repository.NewGroupPaymentRepository,
			fx.As(new(commands.GroupPaymentRepository)),
		),
		fx.Annotate(
			repository.NewOrderRepository,
			fx.As(new(commands.OrderRepository)),
		),
		fx.Annotate(
			repository.NewSettlementRepository,
			fx.As(new(commands.SettlementRepository)),
		),
		fx.Annotate(
			repository.NewAddressRepository,
			fx.As(new(commands.AddressRepository)),
		),
		fx.Annotate(
			repository.NewUserRepository,
			fx.As(new(commands.UserRepository)),
		),
		fx.Annotate(
			repository.NewNotificationRepository,
			fx.As(new(commands.NotificationRepository)),
		),
		// Read-side store for flattened views
		fx.Annotate(
			readstore.NewCollectionReadStore,
			fx.As(new(queries.CollectionReadStore)),
		),
		// Snapshot cache and payment gateway
		fx.Annotate(
			NewPricingSnapshotCache,
			fx.As(new(commands.SnapshotCache)),
		),
		fx.Annotate(
			NewGatewayClient,
			fx.As(new(commands.PaymentGateway)),
		),
	),
)

func NewPricingSnapshotCache(client *redis.Client, cfg config.Config) *cache.PricingSnapshotCache {
	return cache.NewPricingSnapshotCache(client, cfg.Pricing.SnapshotTTL)
}

func NewGatewayClient(cfg config.Config) *gateway.Client {
	return gateway.NewClient(cfg.Gateway)
}
