package curriculum

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// WriteArtifact serializes the model to path. The file is written to a
// temporary sibling and renamed into place so readers never observe a
// partial artifact.
func WriteArtifact(path string, c *Curriculum) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("encode curriculum: %w", err)
	}
	data = append(data, '\n')

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create artifact directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".curriculum-*.json")
	if err != nil {
		return fmt.Errorf("create temp artifact: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write artifact: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("close artifact: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("publish artifact: %w", err)
	}
	return nil
}

// LoadArtifact reads a previously written curriculum artifact.
func LoadArtifact(path string) (*Curriculum, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read artifact: %w", err)
	}
	var cur Curriculum
	if err := json.Unmarshal(data, &cur); err != nil {
		return nil, fmt.Errorf("decode artifact: %w", err)
	}
	return &cur, nil
}
