package cli

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"scamslayer-service/internal/app"
	"scamslayer-service/internal/config"
	"scamslayer-service/internal/content"
	"scamslayer-service/internal/infra/memory"
	pgstore "scamslayer-service/internal/infra/postgres"
	redisinfra "scamslayer-service/internal/infra/redis"
	transport "scamslayer-service/internal/transport/http"
)

// NewStartCmd builds the CLI subcommand to start the server.
func NewStartCmd(configPath, port *string) *cobra.Command {
	return &cobra.Command{
		Use:   "start",
		Short: "Start the game server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer(cmd.Context(), *configPath, *port)
		},
	}
}

func runServer(ctx context.Context, configPath, portFlag string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	if cfg.Postgres.URL != "" {
		if err := runMigrationsWithConfig(ctx, cfg); err != nil {
			return err
		}
	}

	finalPort := portFlag
	if finalPort == "" {
		finalPort = cfg.Server.Port
	}
	if finalPort == "" {
		finalPort = "8080"
	}

	var redisClient *redis.Client
	if cfg.Redis.Addr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
	}
	redisTTL := config.TTLDuration(cfg.Redis.TTL, 10*time.Minute)

	var pool *pgxpool.Pool
	if cfg.Postgres.URL != "" {
		pool, err = pgxpool.Connect(ctx, cfg.Postgres.URL)
		if err != nil {
			return err
		}
		defer pool.Close()
	}

	// Scenario content: built-in pack by default, Postgres when configured.
	var loader memory.ScenarioLoader = memory.NewStaticScenarioLoader(content.Scenarios())
	if pool != nil {
		loader = pgstore.NewScenarioLoader(pool)
	}

	contentTTL := config.TTLDuration(cfg.Content.TTL, 10*time.Minute)
	var scenarios app.ScenarioRepository
	if redisClient != nil {
		scenarios = redisinfra.NewScenarioRepository(redisClient, loader, contentTTL)
	} else {
		scenarios = memory.NewScenarioRepository(loader, contentTTL)
	}

	var profiles app.ProfileRepository
	var teams app.TeamRepository
	if pool != nil {
		profiles = pgstore.NewProfileStore(pool)
		teams = pgstore.NewTeamStore(pool)
	} else {
		profiles = memory.NewProfileStore()
		teams = memory.NewTeamStore()
	}
	if redisClient != nil {
		profiles = redisinfra.NewProfileCache(redisClient, profiles, redisTTL)
	}

	ledger := app.NewLedger(profiles, teams)
	games := app.NewGameService(scenarios, ledger)
	missions := app.NewMissionService(memory.NewMissionRepository(content.Missions()), ledger)

	secret := cfg.AuthSecret()
	wsHandler := transport.NewWSHandler(games, secret)
	apiHandler := transport.NewAPIHandler(games, missions, ledger, secret)

	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})
	mux.HandleFunc("/ws", wsHandler.ServeWS)
	apiHandler.Register(mux)

	server := &http.Server{
		Addr:         ":" + finalPort,
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	go func() {
		log.Info().Str("port", finalPort).Msg("starting scamslayer service")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error().Err(err).Msg("failed to start server")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-stop:
		log.Info().Msg("shutting down server")
	case <-ctx.Done():
		log.Info().Msg("context canceled, shutting down server")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
