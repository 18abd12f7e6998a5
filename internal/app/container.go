package app

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/dig"

	"rosterbid/internal/config"
	"rosterbid/internal/gateway/tenant"
	"rosterbid/internal/http/handlers"
	"rosterbid/internal/http/opsserver"
	"rosterbid/internal/http/router"
	"rosterbid/internal/logx"
	"rosterbid/internal/repository"
	"rosterbid/internal/service/preference"
	"rosterbid/internal/service/resolver"
	"rosterbid/internal/service/roster"
)

// ContainerBuilder is a dig container builder.
type ContainerBuilder struct {
	dbConnect func(context.Context, string, int, time.Duration) (*pgxpool.Pool, error)
	logFatalf func(string, ...interface{})
}

// NewContainerBuilder returns a new dig container builder
func NewContainerBuilder() *ContainerBuilder {
	return &ContainerBuilder{
		dbConnect: connectDbWithRetry,
		logFatalf: log.Fatalf,
	}
}

// WithDBConnect sets the database connection function
func (b *ContainerBuilder) WithDBConnect(
	fn func(context.Context, string, int, time.Duration) (*pgxpool.Pool, error),
) *ContainerBuilder {
	if fn != nil {
		b.dbConnect = fn
	}
	return b
}

// WithLogFatalf sets the log.Fatalf function
func (b *ContainerBuilder) WithLogFatalf(fn func(string, ...interface{})) *ContainerBuilder {
	if fn != nil {
		b.logFatalf = fn
	}
	return b
}

// MustBuild builds and returns the API server container
func (b *ContainerBuilder) MustBuild(ctx context.Context) *dig.Container {
	container, err := b.build(ctx)
	if err != nil {
		b.logFatalf("failed to build container: %v", err)
	}
	return container
}

func (b *ContainerBuilder) build(ctx context.Context) (*dig.Container, error) {
	container := dig.New()

	if err := registerCore(container, ctx); err != nil {
		return nil, fmt.Errorf("core: %w", err)
	}
	if err := registerDb(container, b.dbConnect); err != nil {
		return nil, fmt.Errorf("DB: %w", err)
	}
	if err := registerMetrics(container); err != nil {
		return nil, fmt.Errorf("metrics: %w", err)
	}
	if err := registerGateway(container); err != nil {
		return nil, fmt.Errorf("gateway: %w", err)
	}
	if err := registerService(container); err != nil {
		return nil, fmt.Errorf("service: %w", err)
	}
	if err := registerHTTP(container); err != nil {
		return nil, fmt.Errorf("http: %w", err)
	}
	return container, nil
}

// MustBuildWorker builds and returns the Kafka worker container
func (b *ContainerBuilder) MustBuildWorker(ctx context.Context) *dig.Container {
	container, err := b.buildWorker(ctx)
	if err != nil {
		b.logFatalf("failed to build worker container: %v", err)
	}
	return container
}

func (b *ContainerBuilder) buildWorker(ctx context.Context) (*dig.Container, error) {
	container := dig.New()

	if err := registerCore(container, ctx); err != nil {
		return nil, fmt.Errorf("core: %w", err)
	}
	if err := registerDb(container, b.dbConnect); err != nil {
		return nil, fmt.Errorf("DB: %w", err)
	}
	if err := registerMetrics(container); err != nil {
		return nil, fmt.Errorf("metrics: %w", err)
	}
	if err := registerGateway(container); err != nil {
		return nil, fmt.Errorf("gateway: %w", err)
	}
	if err := registerService(container); err != nil {
		return nil, fmt.Errorf("service: %w", err)
	}
	if err := registerKafka(container); err != nil {
		return nil, fmt.Errorf("kafka: %w", err)
	}
	return container, nil
}

// MustBuildContainer builds and returns the API server container
func MustBuildContainer(ctx context.Context) *dig.Container {
	return NewContainerBuilder().MustBuild(ctx)
}

// MustBuildWorkerContainer builds and returns the Kafka worker container
func MustBuildWorkerContainer(ctx context.Context) *dig.Container {
	return NewContainerBuilder().MustBuildWorker(ctx)
}

func provideAll(container *dig.Container, providers ...any) error {
	for _, provider := range providers {
		if err := container.Provide(provider); err != nil {
			return fmt.Errorf("provide %T: %w", provider, err)
		}
	}
	return nil
}

func registerCore(container *dig.Container, ctx context.Context) error {
	return provideAll(container,
		func() context.Context { return ctx },
		func() *log.Logger { return log.Default() },
		NewLogger,
		config.Load,
	)
}

func registerDb(
	container *dig.Container,
	dbConnect func(context.Context, string, int, time.Duration) (*pgxpool.Pool, error),
) error {
	providerDB := func(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
		return dbConnect(ctx, cfg.DB.DSN(), 10, time.Second)
	}
	return provideAll(container, providerDB)
}

func registerMetrics(container *dig.Container) error {
	return provideAll(container, newMetrics)
}

type tenantIn struct {
	dig.In
	Cfg     *config.Config
	Logger  logx.Logger
	Retries prometheus.Counter `name:"gateway_retries_total"`
}

// newTenantChecker returns nil when no registry URL is configured; the
// preference service then skips the tenant check.
func newTenantChecker(in tenantIn) *tenant.Checker {
	gw := tenant.NewHTTPGateway(in.Cfg.TenantGateway.BaseURL, nil)
	if gw == nil {
		return nil
	}
	retrying := tenant.NewRetryingGateway(gw, in.Logger, in.Retries, tenant.RetryConfig{
		MaxAttempts: in.Cfg.TenantGateway.MaxAttempts,
		BaseDelay:   in.Cfg.TenantGateway.BaseDelay,
		MaxDelay:    in.Cfg.TenantGateway.MaxDelay,
	})
	return tenant.NewChecker(retrying)
}

func registerGateway(container *dig.Container) error {
	return provideAll(container, newTenantChecker)
}

type resolverIn struct {
	dig.In
	Snap        *repository.SnapshotRepo
	Logger      logx.Logger
	Cfg         *config.Config
	Resolutions prometheus.Counter `name:"resolutions_total"`
	MemoHits    prometheus.Counter `name:"resolution_memo_hits_total"`
}

func newResolverService(in resolverIn) *resolver.Service {
	return resolver.NewService(
		in.Snap,
		in.Logger,
		in.Cfg.Resolver.SnapshotTimeout,
		in.Cfg.Resolver.MemoEntries,
		in.Resolutions,
		in.MemoHits,
	)
}

func registerService(container *dig.Container) error {
	return provideAll(container,
		repository.NewDriverRepo,
		repository.NewJobRepo,
		repository.NewPreferenceRepo,
		repository.NewSnapshotRepo,
		func() time.Duration { return 3 * time.Second },
		func(repo *repository.DriverRepo, logger logx.Logger, timeout time.Duration) *roster.DriverService {
			return roster.NewDriverService(repo, logger, timeout)
		},
		func(repo *repository.JobRepo, logger logx.Logger, timeout time.Duration) *roster.JobService {
			return roster.NewJobService(repo, logger, timeout)
		},
		func(
			repo *repository.PreferenceRepo,
			drivers *repository.DriverRepo,
			jobs *repository.JobRepo,
			checker *tenant.Checker,
			logger logx.Logger,
			timeout time.Duration,
		) *preference.Service {
			if checker == nil {
				return preference.NewService(repo, drivers, jobs, nil, logger, timeout)
			}
			return preference.NewService(repo, drivers, jobs, checker, logger, timeout)
		},
		newResolverService,
	)
}

// OpsServer wraps the metrics/pprof sidecar listener. A zero value means
// the sidecar is disabled.
type OpsServer struct{ *http.Server }

func newOpsServer(cfg *config.Config) OpsServer {
	if cfg.Ops.Port <= 0 {
		return OpsServer{}
	}
	return OpsServer{&http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Ops.Port),
		Handler:           opsserver.Handler(opsserver.Config{User: cfg.Ops.User, Pass: cfg.Ops.Pass}),
		ReadHeaderTimeout: 5 * time.Second,
	}}
}

func registerHTTP(container *dig.Container) error {
	serverProvider := func(cfg *config.Config, mux http.Handler) *http.Server {
		return &http.Server{
			Addr:              fmt.Sprintf(":%d", cfg.Port),
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
			ReadTimeout:       15 * time.Second,
			WriteTimeout:      15 * time.Second,
			IdleTimeout:       60 * time.Second,
		}
	}
	return provideAll(container,
		handlers.New,
		handlers.NewDriverUsecase,
		handlers.NewDriverHandler,
		handlers.NewJobUsecase,
		handlers.NewJobHandler,
		handlers.NewPreferenceUsecase,
		handlers.NewPreferenceHandler,
		handlers.NewResolverUsecase,
		handlers.NewAssignmentHandler,
		newRateLimitClock,
		newRateLimiter,
		newRateLimitMiddleware,
		router.New,
		serverProvider,
		newOpsServer,
	)
}
