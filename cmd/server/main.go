package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"

	"github.com/gamedock/gamedock/modules/auth"
	"github.com/gamedock/gamedock/modules/organizer"
	"github.com/gamedock/gamedock/pkg/config"
	"github.com/gamedock/gamedock/pkg/httpserver"
	"github.com/gamedock/gamedock/pkg/logger"
	gdmongo "github.com/gamedock/gamedock/pkg/mongo"
	"github.com/gamedock/gamedock/pkg/session"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log := logger.New(logger.WithAttr(slog.String("service", "gamedock")))

	if err := run(ctx, log); err != nil {
		log.Error("server exited with error", logger.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, log *slog.Logger) error {
	var (
		httpCfg    httpserver.Config
		mongoCfg   gdmongo.Config
		sessionCfg session.Config
	)
	config.MustLoad(&httpCfg)
	config.MustLoad(&mongoCfg)
	config.MustLoad(&sessionCfg)

	db, err := gdmongo.NewWithDatabase(ctx, mongoCfg, mongoCfg.Database)
	if err != nil {
		return err
	}
	defer func() {
		if err := db.Client().Disconnect(context.Background()); err != nil {
			log.Error("mongo disconnect failed", logger.Error(err))
		}
	}()

	store := session.NewMemoryStore()
	defer store.Close()
	if sessionCfg.SweepInterval > 0 {
		store.StartSweeper(sessionCfg.SweepInterval)
	}

	sessions := session.NewManager(store, sessionCfg)
	guard := session.NewGuard(sessions)

	users := auth.NewMongoStorage(db)
	if err := users.EnsureIndexes(ctx); err != nil {
		return err
	}

	authHandler := auth.NewHandler(
		auth.NewVerifier(users),
		auth.NewRegistrar(users),
		sessions,
		guard,
		log,
	)

	repos := make(map[string]organizer.Repository, len(organizer.Collections))
	for _, name := range organizer.Collections {
		repos[name] = organizer.NewMongoRepository(db, name)
	}

	r := chi.NewRouter()
	authHandler.Routes(r)
	organizer.Register(r, repos, guard, log)
	r.Get("/health", httpserver.HealthCheckHandler(ctx, log, gdmongo.Healthcheck(db.Client())))

	srv := httpserver.NewFromConfig(httpCfg, httpserver.WithLogger(log))
	return srv.Run(ctx, r)
}
