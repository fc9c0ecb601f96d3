package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config defines generator and server configuration.
type Config struct {
	Curriculum CurriculumConfig `yaml:"curriculum"`
	Corpus     CorpusConfig     `yaml:"corpus"`
	Artifact   ArtifactConfig   `yaml:"artifact"`
	Store      StoreConfig      `yaml:"store"`
	Server     ServerConfig     `yaml:"server"`
	Transport  TransportConfig  `yaml:"transport"`
	Log        LogConfig        `yaml:"log"`
}

type CurriculumConfig struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
}

// CorpusConfig locates the lesson corpus. Phases is the ordered list of
// phase directory names; order here is curriculum order and is never
// re-derived from the filesystem.
type CorpusConfig struct {
	Root   string   `yaml:"root"`
	Phases []string `yaml:"phases"`
}

type ArtifactConfig struct {
	Path string `yaml:"path"`
}

// StoreConfig selects the progress persistence backend: "sqlite" or "file".
type StoreConfig struct {
	Backend string `yaml:"backend"`
	Path    string `yaml:"path"`
}

type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

type TransportConfig struct {
	Mode string `yaml:"mode"` // "stdio" or "http"
}

type LogConfig struct {
	Level string `yaml:"level"`
}

// Load reads configuration from an optional YAML file and environment variables.
func Load() (Config, error) {
	cfg := Config{
		Curriculum: CurriculumConfig{
			Title:       "Learn to Code",
			Description: "A structured, project-based curriculum for becoming a full-stack developer.",
		},
		Corpus: CorpusConfig{
			Root: "curriculum",
			Phases: []string{
				"Phase-0-Foundations",
				"Phase-1-Web-Fundamentals",
				"Phase-2-JavaScript-Deep-Dive",
				"Phase-3-Frontend-Frameworks",
				"Phase-4-Backend-Development",
				"Phase-5-Databases-And-APIs",
				"Phase-6-Capstone-Projects",
			},
		},
		Artifact: ArtifactConfig{
			Path: "curriculum.json",
		},
		Store: StoreConfig{
			Backend: "sqlite",
			Path:    "progress.db",
		},
		Server: ServerConfig{
			Host: "0.0.0.0",
			Port: 8080,
		},
		Transport: TransportConfig{
			Mode: "stdio",
		},
		Log: LogConfig{
			Level: "info",
		},
	}

	if path := os.Getenv("LEARN2CODE_CONFIG_PATH"); path != "" {
		if err := loadFromFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	if root := os.Getenv("LEARN2CODE_CORPUS_ROOT"); root != "" {
		cfg.Corpus.Root = root
	}
	if path := os.Getenv("LEARN2CODE_ARTIFACT_PATH"); path != "" {
		cfg.Artifact.Path = path
	}
	if backend := os.Getenv("LEARN2CODE_STORE_BACKEND"); backend != "" {
		cfg.Store.Backend = backend
	}
	if path := os.Getenv("LEARN2CODE_STORE_PATH"); path != "" {
		cfg.Store.Path = path
	}
	if host := os.Getenv("LEARN2CODE_SERVER_HOST"); host != "" {
		cfg.Server.Host = host
	}
	if portStr := os.Getenv("LEARN2CODE_SERVER_PORT"); portStr != "" {
		port, err := strconv.Atoi(portStr)
		if err != nil {
			return Config{}, fmt.Errorf("invalid LEARN2CODE_SERVER_PORT: %w", err)
		}
		cfg.Server.Port = port
	}
	if mode := os.Getenv("LEARN2CODE_TRANSPORT_MODE"); mode != "" {
		cfg.Transport.Mode = mode
	}
	if level := os.Getenv("LEARN2CODE_LOG_LEVEL"); level != "" {
		cfg.Log.Level = level
	}

	if cfg.Store.Backend != "sqlite" && cfg.Store.Backend != "file" {
		return Config{}, fmt.Errorf("invalid store backend %q (want sqlite or file)", cfg.Store.Backend)
	}
	if cfg.Transport.Mode != "stdio" && cfg.Transport.Mode != "http" {
		return Config{}, fmt.Errorf("invalid transport mode %q (want stdio or http)", cfg.Transport.Mode)
	}

	return cfg, nil
}

func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}
