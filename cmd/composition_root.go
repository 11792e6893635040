package cmd

import (
	"context"
	"fmt"
	"log/slog"

	httpin "loadboard/internal/adapters/in/http"
	"loadboard/internal/adapters/out/notify"
	"loadboard/internal/adapters/out/postgres"
	"loadboard/internal/adapters/out/sessionstore"
	"loadboard/internal/core/application/usecases/commands"
	"loadboard/internal/core/application/usecases/queries"
	"loadboard/internal/core/domain/model/identity"
	"loadboard/internal/core/domain/model/kernel"
	"loadboard/internal/core/domain/services"
	"loadboard/internal/core/ports"
	"loadboard/internal/jobs"
	"loadboard/internal/pkg/metrics"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// CompositionRoot owns the long lived dependencies and builds every handler.
type CompositionRoot struct {
	config      Config
	gormDB      *gorm.DB
	uowFactory  *postgres.GormUnitOfWorkFactory
	allowList   identity.AdminAllowList
	credentials services.Credentials
	clock       kernel.Clock
	sessions    ports.SessionStore
	sink        ports.NotificationSink
	metrics     *metrics.Metrics
	registry    *prometheus.Registry
	logger      *slog.Logger
	closers     []func() error
}

// NewCompositionRoot connects the optional Redis and RabbitMQ backends and
// falls back to the in-process session store and the log transport when they
// are not configured.
func NewCompositionRoot(ctx context.Context, config Config, gormDB *gorm.DB, logger *slog.Logger) (*CompositionRoot, error) {
	allowList, err := identity.NewAdminAllowList(config.AdminEmails)
	if err != nil {
		return nil, fmt.Errorf("parse ADMIN_EMAILS: %w", err)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	c := &CompositionRoot{
		config:      config,
		gormDB:      gormDB,
		uowFactory:  postgres.NewGormUnitOfWorkFactory(gormDB, allowList),
		allowList:   allowList,
		credentials: services.NewCredentials(config.BcryptCost),
		clock:       kernel.SystemClock{},
		metrics:     metrics.New(registry),
		registry:    registry,
		logger:      logger,
	}

	if err = c.connectSessions(ctx); err != nil {
		return nil, err
	}
	if err = c.connectNotifications(); err != nil {
		_ = c.Close()
		return nil, err
	}
	return c, nil
}

func (c *CompositionRoot) connectSessions(ctx context.Context) error {
	if c.config.RedisURL == "" {
		c.sessions = sessionstore.NewMemoryStore(c.config.SessionTTL, c.clock)
		c.logger.WarnContext(ctx, "REDIS_URL is not set, sessions are kept in memory")
		return nil
	}

	opts, err := redis.ParseURL(c.config.RedisURL)
	if err != nil {
		return fmt.Errorf("parse REDIS_URL: %w", err)
	}
	client := redis.NewClient(opts)
	if err = client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return fmt.Errorf("ping redis: %w", err)
	}

	c.sessions = sessionstore.NewRedisStore(client, c.config.SessionTTL, c.clock)
	c.closers = append(c.closers, client.Close)
	return nil
}

func (c *CompositionRoot) connectNotifications() error {
	renderer, err := notify.NewRenderer()
	if err != nil {
		return err
	}

	var transport notify.Transport
	if c.config.RabbitMQURL == "" {
		transport = notify.NewLogTransport(c.logger)
	} else {
		amqpTransport, dialErr := notify.DialAMQPTransport(c.config.RabbitMQURL, c.config.RabbitMQExchange)
		if dialErr != nil {
			return dialErr
		}
		c.closers = append(c.closers, amqpTransport.Close)
		transport = amqpTransport
	}

	c.sink = notify.NewSink(renderer, transport, c.metrics, c.clock, c.logger)
	return nil
}

// Close releases the Redis and RabbitMQ connections.
func (c *CompositionRoot) Close() error {
	var firstErr error
	for i := len(c.closers) - 1; i >= 0; i-- {
		if err := c.closers[i](); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	c.closers = nil
	return firstErr
}

func (c *CompositionRoot) identityUoWFactory() commands.IdentityUoWFactory {
	return FuncIdentityUoWFactory(func() commands.IdentityUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) listingUoWFactory() commands.ListingUoWFactory {
	return FuncListingUoWFactory(func() commands.ListingUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateRegisterIdentityCommandHandler() commands.RegisterIdentityCommandHandler {
	return commands.NewRegisterIdentityCommandHandler(
		c.identityUoWFactory(), c.allowList, c.credentials, c.clock, c.sink)
}

func (c *CompositionRoot) CreateLoginCommandHandler() commands.LoginCommandHandler {
	return commands.NewLoginCommandHandler(
		c.identityUoWFactory(), c.sessions, c.allowList, c.credentials, c.config.AdminPasswordHash, c.clock)
}

func (c *CompositionRoot) CreateLogoutCommandHandler() commands.LogoutCommandHandler {
	return commands.NewLogoutCommandHandler(c.sessions)
}

func (c *CompositionRoot) CreateReviewIdentityCommandHandler() commands.ReviewIdentityCommandHandler {
	return commands.NewReviewIdentityCommandHandler(c.identityUoWFactory(), c.clock, c.sink)
}

func (c *CompositionRoot) CreateRemoveIdentityCommandHandler() commands.RemoveIdentityCommandHandler {
	return commands.NewRemoveIdentityCommandHandler(c.identityUoWFactory(), c.sessions, c.allowList, c.clock)
}

func (c *CompositionRoot) CreateNormalizeAdminRolesCommandHandler() commands.NormalizeAdminRolesCommandHandler {
	return commands.NewNormalizeAdminRolesCommandHandler(c.identityUoWFactory())
}

func (c *CompositionRoot) CreateSubmitListingCommandHandler() commands.SubmitListingCommandHandler {
	return commands.NewSubmitListingCommandHandler(c.listingUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateReviewListingCommandHandler() commands.ReviewListingCommandHandler {
	return commands.NewReviewListingCommandHandler(c.listingUoWFactory(), c.clock, c.sink)
}

func (c *CompositionRoot) CreateGetAccessQueryHandler() queries.GetAccessQueryHandler {
	return queries.NewGetAccessQueryHandler(c.sessions, c.uowFactory, services.NewAccessGate())
}

func (c *CompositionRoot) CreateListIdentitiesQueryHandler() queries.ListIdentitiesQueryHandler {
	return queries.NewListIdentitiesQueryHandler(c.uowFactory)
}

func (c *CompositionRoot) CreateListListingsQueryHandler() queries.ListListingsQueryHandler {
	return queries.NewListListingsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateCountReviewQueueQueryHandler() queries.CountReviewQueueQueryHandler {
	return queries.NewCountReviewQueueQueryHandler(c.gormDB, c.uowFactory)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		jobs.NewReviewQueueJob(c.CreateCountReviewQueueQueryHandler(), c.metrics, c.config.ReviewQueueSchedule, c.logger),
		jobs.NewAdminRoleJob(c.CreateNormalizeAdminRolesCommandHandler(), c.metrics, c.config.AdminRoleSchedule, c.logger),
	)
}

func (c *CompositionRoot) CreateRouter(ctx context.Context) (*echo.Echo, error) {
	doc, err := httpin.LoadOpenAPI(ctx)
	if err != nil {
		return nil, err
	}

	server := httpin.NewServer(httpin.Handlers{
		RegisterIdentity: c.CreateRegisterIdentityCommandHandler(),
		Login:            c.CreateLoginCommandHandler(),
		Logout:           c.CreateLogoutCommandHandler(),
		ReviewIdentity:   c.CreateReviewIdentityCommandHandler(),
		RemoveIdentity:   c.CreateRemoveIdentityCommandHandler(),
		SubmitListing:    c.CreateSubmitListingCommandHandler(),
		ReviewListing:    c.CreateReviewListingCommandHandler(),
		GetAccess:        c.CreateGetAccessQueryHandler(),
		ListIdentities:   c.CreateListIdentitiesQueryHandler(),
		ListListings:     c.CreateListListingsQueryHandler(),
	}, c.metrics)

	return httpin.NewRouter(server, doc, c.registry, c.logger)
}

type FuncIdentityUoWFactory func() commands.IdentityUoW

func (f FuncIdentityUoWFactory) Create() commands.IdentityUoW {
	return f()
}

type FuncListingUoWFactory func() commands.ListingUoW

func (f FuncListingUoWFactory) Create() commands.ListingUoW {
	return f()
}
