/*
main.go - Application entry point

PURPOSE:
  Initializes and starts the OT engine server: configuration, source
  wiring, router, and graceful shutdown.

STARTUP SEQUENCE:
  1. Load .env (if present) and parse flags
  2. Open the attendance snapshot database
  3. Wire the ingestion fallback chain (remote -> snapshot -> mock)
  4. Perform the initial dataset load
  5. Start the HTTP server with graceful shutdown

CONFIGURATION:
  Flags override environment variables; .env is loaded first.
    -port / PORT                  HTTP port (default 8080)
    -attendance-url / ATTENDANCE_URL
                                  Remote attendance log endpoint; empty
                                  disables the remote source
    -snapshot-db / SNAPSHOT_DB    SQLite snapshot path (default ot.db,
                                  ":memory:" for none on disk)
    -log-level / LOG_LEVEL        zerolog level (default info)

GRACEFUL SHUTDOWN:
  On SIGINT/SIGTERM: stop accepting connections, wait up to 30s for
  active requests, close the snapshot database, exit.
*/
package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/avlab/ot-engine/api"
	"github.com/avlab/ot-engine/ingest"
	"github.com/avlab/ot-engine/overtime"
	"github.com/avlab/ot-engine/report"
)

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	port := flag.String("port", envOr("PORT", "8080"), "HTTP server port")
	attendanceURL := flag.String("attendance-url", os.Getenv("ATTENDANCE_URL"), "remote attendance log endpoint")
	snapshotPath := flag.String("snapshot-db", envOr("SNAPSHOT_DB", "ot.db"), "SQLite snapshot path")
	logLevel := flag.String("log-level", envOr("LOG_LEVEL", "info"), "log level")
	flag.Parse()

	level, err := zerolog.ParseLevel(*logLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Str("service", "ot-engine").Logger()

	snapshot, err := ingest.OpenSnapshot(*snapshotPath)
	if err != nil {
		log.Fatal().Err(err).Msg("open snapshot database")
	}
	defer snapshot.Close()

	loader := &ingest.Loader{
		Snapshot: snapshot,
		Mock:     ingest.NewMockSource(time.Now().Year()),
		Log:      log,
	}
	if *attendanceURL != "" {
		loader.Remote = ingest.NewHTTPSource(*attendanceURL)
	}

	handler := api.NewHandler(overtime.NewDefaultEngine(), report.DefaultSheetConfig(), loader, log)

	origin := handler.Refresh(context.Background())
	log.Info().Str("origin", string(origin)).Msg("initial attendance dataset loaded")

	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", *port),
		Handler:      api.NewRouter(handler, log),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Str("addr", server.Addr).Msg("server starting")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("forced shutdown")
	}

	log.Info().Msg("server stopped")
}
