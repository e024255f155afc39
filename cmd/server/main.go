package main

import (
	"chatterbox/auth"
	"chatterbox/domain"
	"chatterbox/infrastructure/grpc/server"
	"chatterbox/infrastructure/rest"
	"chatterbox/infrastructure/ws"
	"chatterbox/internal"
	"chatterbox/moderation"
	"chatterbox/observability"
	"chatterbox/repositories"
	mongostore "chatterbox/repositories/mongo"
	"chatterbox/runtime"
	"chatterbox/runtime/workers"
	"chatterbox/services"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/blugelabs/bluge"
	"github.com/dgraph-io/badger/v4"
	"github.com/mama165/sdk-go/database"
	"github.com/mama165/sdk-go/logs"
	"google.golang.org/grpc"
)

// Exit codes to provide meaningful status to the operating system or service manager (e.g., systemd).
const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

func main() {
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Server terminated with error: %v\n", err)
	}
	os.Exit(code)
}

// run initializes all components, manages the server lifecycle, and centralizes error reporting.
// Every defer (database, index) runs before the process exits.
func run() (int, error) {
	// 1. Configuration & Logger
	config, err := internal.Load()
	if err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}
	logger := logs.GetLoggerFromString(config.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 2. Durable store
	userRepository, messageRepository, closeStore, err := openStore(ctx, config, logger)
	if err != nil {
		return exitRuntime, err
	}
	defer closeStore()

	// 3. Search index
	blugeWriter, err := bluge.OpenWriter(bluge.DefaultConfig(config.BlugeFilepath))
	if err != nil {
		return exitRuntime, fmt.Errorf("failed to open bluge writer: %w", err)
	}
	defer func() {
		logger.Info("Closing Bluge...")
		_ = blugeWriter.Close()
	}()
	messageIndex := repositories.NewMessageIndex(blugeWriter, logger, config.SearchLimit)

	// 4. Supervision & Orchestration
	indexQueue := make(chan domain.Message, config.BufferSize)
	monitoring := observability.NewMonitoringManager()
	registry := runtime.NewRegistry()
	supervisor := workers.NewSupervisor(logger, config.RestartInterval)
	orchestrator := runtime.NewOrchestrator(logger, supervisor, registry,
		workers.NewIndexWorker(logger, messageIndex, indexQueue),
		workers.NewHealthMonitoringWorker(logger, monitoring, registry.Len,
			func() int { return len(indexQueue) }, config.MetricInterval),
	)

	errChan := make(chan error, 3)
	go func() {
		logger.Info("Starting orchestrator...")
		if err := orchestrator.Start(ctx); err != nil {
			errChan <- fmt.Errorf("orchestrator error: %w", err)
		}
	}()

	// 5. Services
	moderator, err := buildModerator(config, logger)
	if err != nil {
		return exitConfig, fmt.Errorf("moderation dictionary error: %w", err)
	}
	issuer := auth.NewTokenIssuer(config.JwtSecret, config.AuthTokenDuration)
	authService := services.NewAuthService(userRepository, issuer)
	userService := services.NewUserService(userRepository)
	chatService := services.NewChatService(logger, messageRepository, userRepository,
		messageIndex, indexQueue, config.MaxContentLength, moderator)

	// 6. HTTP: REST API and push endpoint
	api := rest.NewServer(logger, authService, userService, chatService, orchestrator, monitoring, config.ClientURL)
	push := ws.NewHandler(logger, orchestrator, moderator, config.ClientURL, config.ConnectionBufferSize)
	httpServer := &http.Server{
		Addr:              fmt.Sprintf(":%d", config.Port),
		Handler:           api.Router(push),
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		logger.Info("Starting HTTP server", "address", httpServer.Addr, "at", time.Now().UTC())
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	// 7. gRPC presence API
	address := fmt.Sprintf("0.0.0.0:%d", config.GrpcPort)
	listener, err := net.Listen("tcp", address)
	if err != nil {
		return exitRuntime, fmt.Errorf("failed to listen on %s: %w", address, err)
	}
	grpcServer := server.NewGrpcServer(logger, issuer,
		server.NewPresenceServer(logger, orchestrator, config.ConnectionBufferSize))
	go func() {
		logger.Info("Starting gRPC server", "address", address, "at", time.Now().UTC())
		for serviceName := range grpcServer.GetServiceInfo() {
			logger.Debug("📡 gRPC exposed services", "name", serviceName)
		}
		if err := grpcServer.Serve(listener); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
			errChan <- fmt.Errorf("gRPC server error: %w", err)
		}
	}()

	// 8. Wait for Stop or Error
	select {
	case <-ctx.Done():
		logger.Info("Shutdown signal received")
	case err := <-errChan:
		return exitRuntime, err
	}

	// 9. Graceful shutdown: websocket connections are hijacked, they end with the process
	logger.Info("Shutting down gracefully...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), config.ShutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Warn("HTTP shutdown incomplete", "error", err)
	}
	grpcServer.GracefulStop()
	orchestrator.Stop()
	logger.Info("Program stopped cleanly")

	return exitOK, nil
}

// openStore opens the configured durable store and returns its repositories and closer.
func openStore(ctx context.Context, config internal.Config, logger *slog.Logger) (
	repositories.IUserRepository, repositories.IMessageRepository, func(), error) {
	if config.StoreDriver == internal.StoreMongo {
		db, err := mongostore.NewDB(ctx, config.MongoURI, config.MongoDatabase)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("mongo connection failed: %w", err)
		}
		closer := func() {
			logger.Info("Closing MongoDB...")
			_ = db.Client().Disconnect(context.Background())
		}
		if err := mongostore.EnsureIndexes(ctx, db); err != nil {
			closer()
			return nil, nil, nil, fmt.Errorf("mongo indexes: %w", err)
		}
		return mongostore.NewUserRepository(db), mongostore.NewMessageRepository(db, config.LimitMessages), closer, nil
	}

	db, err := badger.Open(buildBadgerOpts(config, logger, ctx))
	if err != nil {
		return nil, nil, nil, fmt.Errorf("database opening failed: %w", err)
	}
	if logger.Enabled(ctx, slog.LevelDebug) {
		endpoint := "/inspect"
		url := fmt.Sprintf("http://localhost:%d%s", config.DebugPort, endpoint)
		logger.Info("Debug Badger inspector available", "url", url)
		database.StartDebugServer(db, config.DebugPort, endpoint, repositories.InspectMapper)
	}
	closer := func() {
		// Releases the database lock and flushes buffers
		logger.Info("Closing BadgerDB...")
		_ = db.Close()
	}
	return repositories.NewUserRepository(db),
		repositories.NewMessageRepository(db, logger, config.LimitMessages),
		closer, nil
}

// buildModerator loads the censored dictionary, or returns a pass-through moderator when none is configured.
func buildModerator(config internal.Config, logger *slog.Logger) (*moderation.Moderator, error) {
	if config.CensoredDir == "" {
		return moderation.NewModerator(nil, config.Replacement())
	}
	dictionary, err := moderation.LoadDictionary(os.DirFS(config.CensoredDir), ".")
	if err != nil {
		return nil, err
	}
	logger.Info("Censored dictionary loaded", "words", len(dictionary.Words), "languages", dictionary.Languages)
	return moderation.NewModerator(dictionary.Words, config.Replacement())
}

func buildBadgerOpts(config internal.Config, logger *slog.Logger, ctx context.Context) badger.Options {
	options := badger.DefaultOptions(config.BadgerFilepath)

	if logger.Enabled(ctx, slog.LevelDebug) {
		options = options.WithLoggingLevel(badger.DEBUG)
	} else {
		options = options.WithLoggingLevel(badger.WARNING)
	}

	return options
}
