package mcp

import (
	"context"
	"log/slog"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/spitfire8790/learn2code/internal/domain/curriculum"
	"github.com/spitfire8790/learn2code/internal/domain/progress"
)

// ProgressStore defines the progress operations needed by MCP.
type ProgressStore interface {
	ToggleCompleted(ctx context.Context, moduleID string) (bool, error)
	ToggleBookmark(ctx context.Context, moduleID string) (bool, error)
	Snapshot() *progress.Record
	RecentActivity(ctx context.Context, limit int) ([]progress.Event, error)
}

// Config contains server configuration.
type Config struct {
	Curriculum *curriculum.Curriculum
	Progress   ProgressStore
	Logger     *slog.Logger
}

// NewServer creates and configures an MCP server with all tools, lesson
// resources, and middleware. The curriculum model is read-only shared
// state; the progress store is the only mutable dependency.
func NewServer(cfg Config) *sdkmcp.Server {
	server := sdkmcp.NewServer(&sdkmcp.Implementation{
		Name:    "learn2code",
		Version: "0.1.0",
	}, &sdkmcp.ServerOptions{
		Instructions: serverInstructions,
		Logger:       cfg.Logger,
	})

	server.AddReceivingMiddleware(trafficLoggingMiddleware(cfg.Logger, "inbound"))
	server.AddSendingMiddleware(trafficLoggingMiddleware(cfg.Logger, "outbound"))

	registerLessonResources(server, cfg.Curriculum)
	registerTools(server, cfg.Curriculum, cfg.Progress)

	return server
}
