// Command server exposes the curriculum model and the progress store over
// MCP, using stdio for local clients or streamable HTTP.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/spitfire8790/learn2code/internal/config"
	"github.com/spitfire8790/learn2code/internal/domain/curriculum"
	"github.com/spitfire8790/learn2code/internal/domain/progress"
	"github.com/spitfire8790/learn2code/internal/jsonfile"
	"github.com/spitfire8790/learn2code/internal/mcp"
	"github.com/spitfire8790/learn2code/internal/sqlite"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}

	// Use stderr for logs in stdio mode to keep stdout clean for JSON-RPC.
	logWriter := io.Writer(os.Stdout)
	if cfg.Transport.Mode == "stdio" {
		logWriter = os.Stderr
	}
	logger := slog.New(slog.NewTextHandler(logWriter, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.Log.Level),
	}))

	ctx := context.Background()

	repo, events, cleanup, err := openStore(cfg.Store)
	if err != nil {
		logger.Error("failed to open progress store", "backend", cfg.Store.Backend, "error", err)
		os.Exit(1)
	}
	defer cleanup()

	store := progress.Open(ctx, repo, events, logger)

	model, err := loadCurriculum(cfg, logger)
	if err != nil {
		logger.Error("failed to load curriculum", "error", err)
		os.Exit(1)
	}
	modules := 0
	for _, phase := range model.Phases {
		modules += len(phase.Modules)
	}
	logger.Info("curriculum loaded", "phases", len(model.Phases), "modules", modules)

	mcpServer := mcp.NewServer(mcp.Config{
		Curriculum: model,
		Progress:   store,
		Logger:     logger,
	})

	if cfg.Transport.Mode == "stdio" {
		runStdioMode(logger, mcpServer)
	} else {
		runHTTPMode(logger, mcpServer, cfg.Server.Host, cfg.Server.Port)
	}
}

// openStore builds the configured persistence backend. The SQLite backend
// also provides the toggle event log; the JSON file backend does not.
func openStore(cfg config.StoreConfig) (progress.Repository, progress.EventLog, func(), error) {
	switch cfg.Backend {
	case "sqlite":
		if err := ensureDir(cfg.Path); err != nil {
			return nil, nil, nil, err
		}
		db, err := sqlite.New(cfg.Path)
		if err != nil {
			return nil, nil, nil, err
		}
		if err := db.RunMigrations(); err != nil {
			db.Close()
			return nil, nil, nil, err
		}
		repo := sqlite.NewProgressRepository(db)
		return repo, repo, func() { db.Close() }, nil
	case "file":
		repo := jsonfile.NewProgressRepository(cfg.Path)
		return repo, nil, func() {}, nil
	default:
		return nil, nil, nil, fmt.Errorf("unknown store backend %q", cfg.Backend)
	}
}

// loadCurriculum prefers the pre-built artifact and falls back to
// assembling directly from the corpus when none exists.
func loadCurriculum(cfg config.Config, logger *slog.Logger) (*curriculum.Curriculum, error) {
	if _, err := os.Stat(cfg.Artifact.Path); err == nil {
		return curriculum.LoadArtifact(cfg.Artifact.Path)
	}

	logger.Info("no curriculum artifact, assembling from corpus", "root", cfg.Corpus.Root)
	assembler := curriculum.NewAssembler(logger)
	return assembler.Assemble(curriculum.CorpusSpec{
		Root:        cfg.Corpus.Root,
		Title:       cfg.Curriculum.Title,
		Description: cfg.Curriculum.Description,
		PhaseDirs:   cfg.Corpus.Phases,
	})
}

func runStdioMode(logger *slog.Logger, mcpServer *sdkmcp.Server) {
	logger.Info("starting stdio transport")

	transport := &sdkmcp.StdioTransport{}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-stop
		logger.Info("shutting down")
		cancel()
	}()

	// Run blocks until stdin closes or context is canceled
	if err := mcpServer.Run(ctx, transport); err != nil {
		logger.Error("stdio server error", "error", err)
		os.Exit(1)
	}
}

func runHTTPMode(logger *slog.Logger, mcpServer *sdkmcp.Server, host string, port int) {
	mcpHandler := sdkmcp.NewStreamableHTTPHandler(
		func(r *http.Request) *sdkmcp.Server { return mcpServer },
		&sdkmcp.StreamableHTTPOptions{
			Stateless:      false,
			SessionTimeout: 30 * time.Minute,
		},
	)

	router := http.NewServeMux()
	router.Handle("/mcp", mcpHandler)
	router.Handle("/mcp/", mcpHandler)
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	addr := fmt.Sprintf("%s:%d", host, port)
	httpServer := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	go func() {
		logger.Info("server listening", "addr", addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
		}
	}()

	waitForShutdown(logger, httpServer)
}

func waitForShutdown(logger *slog.Logger, server *http.Server) {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	logger.Info("shutting down")
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("shutdown error", "error", err)
	}
}

func ensureDir(path string) error {
	if path == ":memory:" || path == "" {
		return nil
	}
	dir := filepath.Dir(path)
	if dir == "." {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}

func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
