package main

import (
	"context"
	"log/slog"
	"os"

	"dietlog/config"
	"dietlog/internal/delivery"
	"dietlog/internal/delivery/http"
	"dietlog/internal/delivery/http/middleware"
	"dietlog/internal/delivery/http/router/handler"
	logs "dietlog/internal/infra/log"
	"dietlog/internal/infra/persistence/badger"
	"dietlog/internal/infra/remote"
	"dietlog/internal/usecase"
	"dietlog/internal/usecase/impl"

	"go.uber.org/fx"
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
			logStoreChanges,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		remote.NewTransport,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			badger.New,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			remote.NewAuthClient,
			remote.NewCustomFoodClient,
			remote.NewDietRecordClient,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewSubmitGate,
			impl.NewSessionState,
			impl.NewStore,
			impl.NewGuard,
			impl.NewRecordService,
			impl.NewFoodService,
			impl.NewDashboardService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewGuardMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewDashboardHandler,
			handler.NewRecordHandler,
			handler.NewFoodHandler,
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

// logStoreChanges reports every store commit at debug level.
func logStoreChanges(lc fx.Lifecycle, store usecase.StoreUsecase, logger *slog.Logger) {
	var unsubscribe func()

	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			unsubscribe = store.Subscribe(func(snap usecase.Snapshot) {
				logger.Debug("Store changed",
					slog.Bool("loaded", snap.Loaded),
					slog.Int("official_foods", len(snap.OfficialFoods)),
					slog.Int("custom_foods", len(snap.CustomFoods)),
					slog.Int("records", len(snap.Records)),
				)
			})

			return nil
		},
		OnStop: func(context.Context) error {
			if unsubscribe != nil {
				unsubscribe()
			}

			return nil
		},
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
