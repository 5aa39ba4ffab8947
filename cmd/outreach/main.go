package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"go.uber.org/fx"

	"outreach/config"
	"outreach/internal/delivery"
	"outreach/internal/delivery/http"
	"outreach/internal/delivery/http/middleware"
	"outreach/internal/delivery/http/router/handler"
	"outreach/internal/domain/repository"
	"outreach/internal/domain/service"
	"outreach/internal/infra/auth"
	logs "outreach/internal/infra/log"
	"outreach/internal/infra/persistence/blobstore"
	"outreach/internal/infra/persistence/local"
	"outreach/internal/infra/pubsub"
	"outreach/internal/infra/remote"
	"outreach/internal/usecase"
	"outreach/internal/usecase/impl"
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
			registerEventRelay,
			startSync,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			newRecordStore,
		),
		pubsub.Module,
	)
}

// newRecordStore opens the durable local bucket and runs the schema guard
// before any repository loads its collection.
func newRecordStore(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*blobstore.RecordStore, error) {
	bucket, err := blobstore.OpenBucket(ctx, cfg.Store.Bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to open storage bucket: %w", err)
	}

	store := blobstore.New(bucket, logger)
	if err := blobstore.NewSchemaGuard(store, logger).Ensure(ctx); err != nil {
		return nil, fmt.Errorf("failed to ensure schema version: %w", err)
	}

	return store, nil
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			local.NewUserRepository,
			local.NewPatientRepository,
			local.NewInventoryRepository,
			local.NewStaffRepository,
			newFinanceRepository,
		),
	)
}

func newFinanceRepository(ctx context.Context, store *blobstore.RecordStore, cfg *config.Config, logger *slog.Logger) repository.FinanceRepository {
	return local.NewFinanceRepository(ctx, store, cfg.Store.FinancialYear, logger)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			newRemoteReplica,
		),
	)
}

// newRemoteReplica creates the Firestore-backed replica adapter. Without a
// remote section the store runs purely offline.
func newRemoteReplica(lc fx.Lifecycle, ctx context.Context, cfg *config.Config, logger *slog.Logger) (service.RemoteReplica, error) {
	if cfg.Remote == nil {
		return nil, nil // Remote replica is optional
	}

	replica, err := remote.NewFirestoreReplica(ctx, cfg.Remote, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create remote replica: %w", err)
	}

	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return replica.Close()
		},
	})

	return replica, nil
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewChangeBus,
			impl.NewSyncService,
			impl.NewUserService,
			impl.NewPatientService,
			impl.NewInventoryService,
			impl.NewStaffService,
			impl.NewFinanceService,
			impl.NewSessionService,
			impl.NewEventRelay,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewSessionHandler,
			handler.NewUserHandler,
			handler.NewPatientHandler,
			handler.NewInventoryHandler,
			handler.NewStaffHandler,
			handler.NewFinanceHandler,
			handler.NewSyncHandler,
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

// registerEventRelay attaches the queue relay to the change bus so remote
// merges fan out as collection events.
func registerEventRelay(notifier service.ChangeNotifier, relay service.ChangeListener) {
	notifier.Register(relay)
}

func startSync(ctx context.Context, syncUC usecase.SyncUsecase, logger *slog.Logger) error {
	if err := syncUC.Start(ctx); err != nil {
		logger.Warn("Remote sync unavailable at startup", slog.Any("error", err))
	}

	return nil
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
