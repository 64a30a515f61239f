package cli

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/spec-kit/ticketapp/internal/config"
	"github.com/spec-kit/ticketapp/internal/events"
	"github.com/spec-kit/ticketapp/internal/notify"
	"github.com/spec-kit/ticketapp/internal/observability"
	"github.com/spec-kit/ticketapp/internal/persistence"
	"github.com/spec-kit/ticketapp/internal/repository"
	"github.com/spec-kit/ticketapp/internal/store"
)

// App wires configuration, storage, and the two stores for the CLI commands.
// One App is constructed per invocation; there are no package-level
// singletons.
type App struct {
	Config   *config.Config
	Logger   *zap.Logger
	Storage  persistence.Store
	Auth     *store.AuthStore
	Tickets  *store.TicketStore
	notifier *notify.Notifier
}

// NewApp loads configuration and connects the selected storage backend.
func NewApp(ctx context.Context) (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	storage, err := persistence.Open(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("open storage: %w", err)
	}

	dispatcher := events.NewInMemoryDispatcher()
	metrics := observability.NewMetrics()

	authStore := store.NewAuthStore(cfg.App, store.AuthDependencies{
		SessionRepo: repository.NewSessionRepository(storage),
		UserRepo:    repository.NewUserRepository(storage),
		Dispatcher:  dispatcher,
		Metrics:     metrics,
		Logger:      logger,
	})
	ticketStore := store.NewTicketStore(store.TicketDependencies{
		TicketRepo: repository.NewTicketRepository(storage),
		Dispatcher: dispatcher,
		Metrics:    metrics,
		Logger:     logger,
	})

	notifier := notify.NewNotifier(dispatcher, logger)
	notifier.RegisterHandlers()

	return &App{
		Config:   cfg,
		Logger:   logger,
		Storage:  storage,
		Auth:     authStore,
		Tickets:  ticketStore,
		notifier: notifier,
	}, nil
}

// Close releases storage and flushes logs.
func (a *App) Close() {
	if a.notifier != nil {
		a.notifier.Detach()
	}
	if a.Storage != nil {
		_ = a.Storage.Close()
	}
	if a.Logger != nil {
		_ = a.Logger.Sync()
	}
}
