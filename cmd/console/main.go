package main

import (
	"context"
	"log/slog"
	"os"

	"console/config"
	"console/internal/access"
	"console/internal/delivery"
	"console/internal/delivery/http"
	"console/internal/delivery/http/middleware"
	"console/internal/delivery/http/router/handler"
	"console/internal/domain/entity"
	"console/internal/domain/repository"
	"console/internal/domain/service"
	"console/internal/infra/auth"
	logs "console/internal/infra/log"
	"console/internal/infra/notification"
	"console/internal/infra/persistence/memory"
	"console/internal/infra/persistence/postgres"
	"console/internal/infra/qrcode"
	"console/internal/notify"
	"console/internal/store"
	"console/internal/usecase/impl"
	"console/internal/view"

	"go.uber.org/fx"
	"gorm.io/gorm"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			attachTransitionObserver,
			attachSnapshotPersistence,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			newSnapshotRepository,
			newAccountRepository,
			store.NewFromRepository,
		),
	)
}

// newSnapshotRepository picks the PostgreSQL loader when a database is
// configured and the demo fixture otherwise.
func newSnapshotRepository(cfg *config.Config, db *gorm.DB) repository.SnapshotRepository {
	if cfg.Postgres != nil && db != nil {
		return postgres.NewSnapshotRepository(db)
	}

	return memory.NewSnapshotRepository(nil)
}

// newAccountRepository mirrors the snapshot repository selection for login
// accounts. The in-memory variant preloads the configured seed accounts.
func newAccountRepository(cfg *config.Config, db *gorm.DB, hasher service.PasswordHasher) (repository.AccountRepository, error) {
	if cfg.Postgres != nil && db != nil {
		return postgres.NewAccountRepository(db), nil
	}

	seeds := make([]memory.SeedAccount, 0, len(cfg.SeedAccounts))
	for _, seed := range cfg.SeedAccounts {
		seeds = append(seeds, memory.SeedAccount{
			Email:       seed.Email,
			DisplayName: seed.DisplayName,
			Role:        seed.Role,
			Password:    seed.Password,
		})
	}

	return memory.NewAccountRepository(seeds, hasher)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			newBcryptHasher,
			auth.NewJWTService,
			newQRCodeService,
			newLogNotifier,
			asNotifier,
			asNotificationFeed,
			newRoleHomes,
			access.NewGate,
			view.NewSelector,
			notify.NewObserver,
		),
	)
}

// newBcryptHasher creates the password hasher with the configured cost
func newBcryptHasher(cfg *config.Config) service.PasswordHasher {
	cost := 0
	if cfg.Auth != nil {
		cost = cfg.Auth.BcryptCost
	}

	return auth.NewBcryptHasher(cost)
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		// Use default values if not configured
		return qrcode.NewQRCodeService(256, "M")
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

// newLogNotifier creates the notification sink and feed
func newLogNotifier(logger *slog.Logger, cfg *config.Config) *notification.LogNotifier {
	return notification.NewLogNotifier(logger, cfg.Notifications.FeedSize)
}

func asNotifier(n *notification.LogNotifier) service.Notifier {
	return n
}

func asNotificationFeed(n *notification.LogNotifier) service.NotificationFeed {
	return n
}

// newRoleHomes builds the role landing table from configuration
func newRoleHomes(cfg *config.Config) access.RoleHomes {
	return access.NewRoleHomes(
		cfg.RoleHomes.Admin,
		cfg.RoleHomes.Staff,
		cfg.RoleHomes.Customer,
		cfg.RoleHomes.Default,
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewSessionService,
			impl.NewOrderService,
			impl.NewReservationService,
			impl.NewTableService,
			impl.NewRosterService,
			impl.NewViewService,
			impl.NewNotificationService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewRequestIDMiddleware,
			middleware.NewSessionMiddleware,
			middleware.NewGateMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewSessionHandler,
			handler.NewViewHandler,
			handler.NewDashboardHandler,
			handler.NewRosterHandler,
			handler.NewOrderHandler,
			handler.NewReservationHandler,
			handler.NewTableHandler,
			handler.NewNotificationHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

// attachTransitionObserver wires the notification sink to the entity store so
// every successful status transition emits exactly one message.
func attachTransitionObserver(observer *notify.Observer, st *store.Store) {
	observer.Attach(st)
}

// attachSnapshotPersistence writes the complete snapshot back to the
// repository after each mutation. Failures are logged, never propagated; the
// in-memory state stays authoritative.
func attachSnapshotPersistence(ctx context.Context, logger *slog.Logger, repo repository.SnapshotRepository, st *store.Store) {
	st.Subscribe(func(snapshot *entity.Snapshot) {
		if err := repo.Save(ctx, snapshot); err != nil {
			logger.Error("Failed to persist snapshot", slog.Any("error", err))
		}
	})
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
