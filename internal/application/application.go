package application

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/hibiken/asynq"
	"github.com/mymmrac/telego"
	"golang.org/x/sync/errgroup"

	"github.com/enfash/PrintSwift-sub000/internal/config"
	"github.com/enfash/PrintSwift-sub000/internal/domain/service/catalog"
	"github.com/enfash/PrintSwift-sub000/internal/domain/service/quote"
	"github.com/enfash/PrintSwift-sub000/internal/infrastructure/notifier"
	"github.com/enfash/PrintSwift-sub000/internal/infrastructure/persistence"
	"github.com/enfash/PrintSwift-sub000/internal/infrastructure/queue"
	"github.com/enfash/PrintSwift-sub000/internal/server"
	"github.com/enfash/PrintSwift-sub000/internal/transport/bot"
	"github.com/enfash/PrintSwift-sub000/internal/transport/bot/handler"
	"github.com/enfash/PrintSwift-sub000/internal/worker"
	"github.com/enfash/PrintSwift-sub000/pkg/application/connectors"
	"github.com/enfash/PrintSwift-sub000/pkg/application/modules"
	"github.com/enfash/PrintSwift-sub000/pkg/contextx"
	"github.com/enfash/PrintSwift-sub000/pkg/httpx"
	"github.com/enfash/PrintSwift-sub000/pkg/logx"
	"github.com/enfash/PrintSwift-sub000/pkg/middlewarex"
	"github.com/enfash/PrintSwift-sub000/pkg/probe"
)

const notificationConcurrency = 2

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

// Run поднимает REST API, probe и metrics серверы, а при заданном токене
// бота ещё админского бота и воркер уведомлений. Блокируется до отмены ctx
// или до ошибки любого из модулей.
func Run(ctx context.Context, cfg config.Config) error {
	g, ctx := errgroup.WithContext(ctx)

	logger(ctx).Info(
		"application starting",
		slog.String(logx.FieldAppName, cfg.App.Name),
		slog.String(logx.FieldAppVersion, cfg.App.Version),
		slog.Bool("bot-enabled", cfg.Bot.Enabled()),
	)

	pg := &connectors.Postgres{
		DSN:             cfg.Postgres.DSN,
		MaxOpenConns:    cfg.Postgres.MaxOpenConns,
		MaxIdleConns:    cfg.Postgres.MaxIdleConns,
		ConnMaxLifetime: cfg.Postgres.ConnMaxLifetime,
	}
	db := pg.Client(ctx)
	defer pg.Close(ctx)

	catalogService := catalog.NewService(persistence.NewProductRepository(db)).
		WithCacheTTL(cfg.Catalog.CacheTTL)

	checks := map[string]probe.Check{"postgres": db.PingContext}

	var enqueuer quote.TaskEnqueuer = queue.Nop{}

	if cfg.Bot.Enabled() {
		redis := &connectors.Redis{
			Address:            cfg.Redis.Address,
			Username:           cfg.Redis.Username,
			Password:           cfg.Redis.Password,
			DatabaseNumber:     cfg.Redis.DatabaseNumber,
			PoolSize:           cfg.Redis.PoolSize,
			MinIdleConnections: cfg.Redis.MinIdleConnections,
			MaxIdleConnections: cfg.Redis.MaxIdleConnections,
		}
		defer redis.Close(ctx)

		redisClient := redis.Client(ctx)
		checks["redis"] = func(ctx context.Context) error { return redisClient.Ping(ctx).Err() }

		enqueuer = queue.NewEnqueuer(asynq.NewClientFromRedisClient(redisClient))
	}

	quoteService := quote.NewService(catalogService, persistence.NewQuoteRepository(db), enqueuer)

	masker := logx.NewSensitiveDataMasker()

	router := chi.NewRouter()
	router.Use(
		middlewarex.TraceID,
		middlewarex.Recovery,
		middlewarex.RequestLogging(masker, cfg.HTTP.LogFieldMaxLen),
		middlewarex.ResponseLogging(masker, cfg.HTTP.LogFieldMaxLen),
	)

	server.NewServer(
		server.NewPricingServer(),
		server.NewProductServer(catalogService, quoteService),
		server.NewQuoteServer(quoteService),
	).RegisterRoutes(router)

	httpServer := &http.Server{
		//nolint:exhaustruct
		Addr:              cfg.HTTP.ListenAddress,
		Handler:           router,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		BaseContext: func(net.Listener) context.Context {
			return ctx
		},
	}

	if cfg.Bot.Enabled() {
		if err := runBot(ctx, g, cfg, quoteService, catalogService, masker); err != nil {
			return err
		}
	}

	modules.HTTPServer{ShutdownTimeout: cfg.HTTP.ShutdownTimeout}.Run(ctx, g, httpServer)
	modules.ProbeServer{
		Name:          cfg.App.Name,
		Version:       cfg.App.Version,
		ListenAddress: cfg.HTTP.ProbeListenAddress,
		Checks:        checks,
	}.Run(ctx, g)
	modules.MetricServer{ListenAddress: cfg.HTTP.MetricsListenAddress}.Run(ctx, g)

	if err := g.Wait(); err != nil {
		return fmt.Errorf("errgroup.Wait: %w", err)
	}

	logger(ctx).Info("application stopped")

	return nil
}

// runBot запускает админского бота и воркер, который шлёт новые сметы
// в чат менеджеров. Оба используют один клиент Bot API.
func runBot(
	ctx context.Context,
	g *errgroup.Group,
	cfg config.Config,
	quoteService *quote.Service,
	catalogService *catalog.Service,
	masker logx.SensitiveDataMasker,
) error {
	tgBot, err := telego.NewBot(
		cfg.Bot.Token,
		telego.WithLogger(bot.Logger{Log: logger(ctx)}),
		telego.WithHTTPClient(&http.Client{
			Transport: httpx.NewLoggingRoundTripper(
				http.DefaultTransport,
				httpx.WithSensitiveDataMasker(masker),
				httpx.WithLogFieldMaxLen(cfg.HTTP.LogFieldMaxLen),
			),
		}),
	)
	if err != nil {
		return fmt.Errorf("telego.NewBot: %w", err)
	}

	quoteNotifier := worker.NewQuoteNotifier(quoteService, notifier.NewTelegramBot(tgBot, cfg.Bot.ChatID))

	modules.AsynqServer{
		RedisUsername: cfg.Redis.Username,
		RedisPassword: cfg.Redis.Password,
		RedisAddress:  cfg.Redis.Address,
		RedisDB:       cfg.Redis.DatabaseNumber,
		Concurrency:   notificationConcurrency,
	}.Run(
		ctx, g,
		modules.AsynqQueues{queue.QueueNotifications: 1},
		modules.AsynqHandler{Pattern: queue.TypeQuoteCreated, Handle: quoteNotifier.Handle},
	)

	adminBot := bot.New(tgBot, handler.New(quoteService, catalogService), cfg.Bot.AdminIDs...)

	g.Go(func() error {
		if err := adminBot.Run(ctx); err != nil {
			return fmt.Errorf("adminBot.Run: %w", err)
		}

		return nil
	})

	return nil
}
