package curriculum

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
)

// CorpusSpec describes where the lesson corpus lives and in which order its
// phase directories are visited. The phase list is configuration, not a
// filesystem scan: the order here is the curriculum order, and a phase's
// id is its 0-based position in this list even when the directory is
// missing on disk.
type CorpusSpec struct {
	Root        string
	Title       string
	Description string
	PhaseDirs   []string
}

// Assembler walks the corpus and produces the Curriculum Model. Assembly is
// a single-pass synchronous batch step; the result is immutable once built.
type Assembler struct {
	logger *slog.Logger
}

// NewAssembler creates an assembler. A nil logger disables log output.
func NewAssembler(logger *slog.Logger) *Assembler {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Assembler{logger: logger}
}

var (
	phaseTitleRE  = regexp.MustCompile(`^Phase (\d+) `)
	phasePrefixRE = regexp.MustCompile(`^Phase-\d+-`)
	overviewRE    = regexp.MustCompile(`(?i)overview|description`)
)

// Assemble builds the full Curriculum Model. A missing phase directory is
// skipped, an unreadable module file is skipped, but a module id collision
// anywhere in the model aborts the run: it signals a corpus naming defect
// that must be fixed at the source.
func (a *Assembler) Assemble(spec CorpusSpec) (*Curriculum, error) {
	cur := &Curriculum{
		Title:       spec.Title,
		Description: spec.Description,
		Phases:      []Phase{},
	}

	seen := map[string]string{} // module id -> source file
	for i, dir := range spec.PhaseDirs {
		path := filepath.Join(spec.Root, dir)
		entries, err := os.ReadDir(path)
		if err != nil {
			a.logger.Warn("phase directory unavailable, skipping", "phase", dir, "error", err)
			continue
		}

		var files []string
		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			if ok, _ := filepath.Match("Module-*.md", entry.Name()); ok {
				files = append(files, entry.Name())
			}
		}
		// Lexicographic order encodes intra-phase module order: file names
		// carry numeric prefixes like Module-1.1-..., Module-1.2-...
		sort.Strings(files)

		phase := Phase{
			ID:          fmt.Sprintf("phase-%d", i),
			Title:       PhaseTitle(dir),
			Description: a.phaseDescription(path, dir),
			Modules:     []Module{},
		}

		for _, name := range files {
			raw, err := os.ReadFile(filepath.Join(path, name))
			if err != nil {
				a.logger.Error("module file unreadable, skipping", "phase", dir, "file", name, "error", err)
				continue
			}

			id := ModuleID(name)
			if prev, dup := seen[id]; dup {
				return nil, fmt.Errorf("%w: %s and %s both derive id %q", ErrModuleIDCollision, prev, name, id)
			}
			seen[id] = name

			res := ParseLesson(raw, name)
			mod := res.Module
			mod.ID = id
			mod.Difficulty = DifficultyForPhase(i)
			if res.Degraded.Any() {
				a.logger.Debug("lesson parsed with fallbacks", "module", id,
					"title", res.Degraded.TitleFallback,
					"description", res.Degraded.DescriptionFallback,
					"topics", res.Degraded.TopicsFallback,
					"projects", res.Degraded.ProjectsFallback)
			}
			phase.Modules = append(phase.Modules, mod)
		}

		a.logger.Info("phase assembled", "phase", phase.ID, "title", phase.Title, "modules", len(phase.Modules))
		cur.Phases = append(cur.Phases, phase)
	}

	return cur, nil
}

// ModuleID derives a module's stable identifier from its source file name:
// extension dropped, lowercased, every period replaced with a hyphen.
func ModuleID(fileName string) string {
	base := strings.TrimSuffix(fileName, filepath.Ext(fileName))
	return strings.ReplaceAll(strings.ToLower(base), ".", "-")
}

// PhaseTitle derives a display title from a phase directory name:
// "Phase-2-JavaScript-Deep-Dive" becomes "Phase 2: JavaScript Deep Dive".
func PhaseTitle(dir string) string {
	title := strings.ReplaceAll(dir, "-", " ")
	return phaseTitleRE.ReplaceAllString(title, "Phase $1: ")
}

// phaseDescription reads the phase's README.md and takes the first
// non-empty, non-heading line after a heading mentioning "overview" or
// "description". Missing README or structure falls back to a synthesized
// sentence.
func (a *Assembler) phaseDescription(path, dir string) string {
	raw, err := os.ReadFile(filepath.Join(path, "README.md"))
	if err == nil {
		inOverview := false
		for _, line := range strings.Split(string(raw), "\n") {
			trimmed := strings.TrimSpace(line)
			if strings.HasPrefix(trimmed, "#") {
				inOverview = overviewRE.MatchString(trimmed)
				continue
			}
			if inOverview && trimmed != "" {
				return trimmed
			}
		}
	}

	name := strings.ReplaceAll(phasePrefixRE.ReplaceAllString(dir, ""), "-", " ")
	return fmt.Sprintf("Advanced curriculum phase covering %s", name)
}
