// Command curriculum is the offline corpus ingestion step: it walks the
// configured phase directories, parses every lesson, and publishes the
// curriculum artifact consumed by the server and the presentation layer.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spitfire8790/learn2code/internal/config"
	"github.com/spitfire8790/learn2code/internal/domain/curriculum"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.Log.Level),
	}))

	assembler := curriculum.NewAssembler(logger)
	model, err := assembler.Assemble(curriculum.CorpusSpec{
		Root:        cfg.Corpus.Root,
		Title:       cfg.Curriculum.Title,
		Description: cfg.Curriculum.Description,
		PhaseDirs:   cfg.Corpus.Phases,
	})
	if err != nil {
		logger.Error("assembly failed", "error", err)
		os.Exit(1)
	}

	if err := curriculum.WriteArtifact(cfg.Artifact.Path, model); err != nil {
		logger.Error("failed to write artifact", "error", err)
		os.Exit(1)
	}

	modules := 0
	for _, phase := range model.Phases {
		modules += len(phase.Modules)
	}
	logger.Info("curriculum artifact written", "path", cfg.Artifact.Path, "phases", len(model.Phases), "modules", modules)
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
