package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/jonboulle/clockwork"
	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/mcdev12/clubhouse/go/internal/gateway"
)

func main() {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Warn().Err(err).Msg("could not load .env file")
	}

	// Setup logging
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	configPath := getEnv("CONFIG_PATH", "config.yaml")
	config, err := loadConfig(configPath)
	if err != nil {
		log.Warn().Err(err).Str("path", configPath).Msg("could not load config file, using defaults")
		config = defaultConfig()
	}

	// The database is a collaborator, not the source of truth for the
	// session. A failed connection downgrades to memory-only.
	database, err := setupDatabase()
	if err != nil {
		log.Warn().Err(err).Msg("database unavailable, running memory-only")
		database = nil
	} else {
		defer database.Close()
	}

	// NATS is optional as well; without it ledger events stay local.
	var js jetstream.JetStream
	var nc *nats.Conn
	if config.NATS.Enabled {
		nc, err = nats.Connect(config.NATS.URL)
		if err != nil {
			log.Warn().Err(err).Str("url", config.NATS.URL).Msg("NATS unavailable, ledger events stay local")
		} else {
			defer nc.Close()
			js, err = jetstream.New(nc)
			if err != nil {
				log.Warn().Err(err).Msg("failed to create JetStream context")
				js = nil
			}
		}
	}

	services := setupServices(database, js, config, clockwork.NewRealClock())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	hydrateCtx, hydrateCancel := context.WithTimeout(ctx, 30*time.Second)
	services.hydrate(hydrateCtx)
	hydrateCancel()

	// WebSocket fan-out of ledger events
	connectionManager := gateway.NewConnectionManager(gateway.DefaultConnectionConfig())
	go connectionManager.Start(ctx)

	if js != nil {
		consumerConfig := gateway.DefaultJetStreamConsumerConfig()
		consumerConfig.URL = config.NATS.URL
		consumerConfig.StreamName = config.NATS.Stream
		consumerConfig.SubjectFilter = config.NATS.SubjectPrefix + ".match.>"

		consumer, err := gateway.NewEventConsumer(connectionManager, consumerConfig)
		if err != nil {
			log.Warn().Err(err).Msg("failed to start ticker consumer")
		} else {
			defer consumer.Close()
			go func() {
				if err := consumer.Start(ctx); err != nil {
					log.Error().Err(err).Msg("ticker consumer stopped")
				}
			}()
		}
	}

	wsHandler := gateway.NewWebSocketHandler(connectionManager)
	server := setupServer(services, wsHandler)

	go func() {
		log.Info().
			Str("addr", server.Addr).
			Str("club", config.Club.Name).
			Msg("clubhouse server listening")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Info().Msg("shutting down")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown failed")
	}
}
