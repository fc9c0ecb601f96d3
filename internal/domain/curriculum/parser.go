package curriculum

import (
	"bytes"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/adrg/frontmatter"
)

const (
	// genericDescription is substituted when a lesson has no prose between
	// its title and its first section heading.
	genericDescription = "Comprehensive module covering essential development concepts."

	// descriptionLimit bounds the extracted description length.
	descriptionLimit = 150

	// readingWordsPerMinute is the assumed reading speed for the duration
	// estimate; practice time is estimated at 1.5x reading time.
	readingWordsPerMinute = 200
)

// collectState tracks which bullet list the scanner is currently feeding.
type collectState int

const (
	collectNone collectState = iota
	collectObjectives
	collectPrerequisites
)

// lineKind classifies one logical line of a lesson document.
type lineKind int

const (
	lineBlank lineKind = iota
	lineHeading1
	lineHeading2
	lineBullet
	linePlain
)

// Degradation records which fallbacks the parser had to use. It exists for
// diagnostics only; degraded parses are still valid modules.
type Degradation struct {
	TitleFallback       bool
	DescriptionFallback bool
	TopicsFallback      bool
	ProjectsFallback    bool
	FrontmatterInvalid  bool
	RenderFailed        bool
}

// Any reports whether any fallback was used.
func (d Degradation) Any() bool {
	return d.TitleFallback || d.DescriptionFallback || d.TopicsFallback ||
		d.ProjectsFallback || d.FrontmatterInvalid || d.RenderFailed
}

// ParseResult is the outcome of parsing a single lesson document. The parser
// never fails outright: missing structure degrades to documented defaults,
// and the flags record which defaults were applied.
type ParseResult struct {
	Module   Module
	Degraded Degradation
}

// lessonFrontMatter is the optional YAML header a lesson may carry. Values
// present here take precedence over structure extracted from the body,
// except for the title where an explicit level-1 heading wins.
type lessonFrontMatter struct {
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Tags        []string `yaml:"tags"`
}

var (
	topicLineRE = regexp.MustCompile(`^-\s+\*\*([^*]+)\*\*\s*:`)
	boldLabelRE = regexp.MustCompile(`^\*\*([^*]+)\*\*\s*:?\s*(.*)$`)
)

// ParseLesson extracts a Module record from one lesson document. fileName is
// the source file's base name; it seeds the title fallback. The module id
// and difficulty are assigned by the Assembler, not here.
func ParseLesson(raw []byte, fileName string) ParseResult {
	var res ParseResult

	var meta lessonFrontMatter
	body, err := frontmatter.Parse(bytes.NewReader(raw), &meta)
	if err != nil {
		body = raw
		res.Degraded.FrontmatterInvalid = true
	}

	var (
		title      string
		descLines  []string
		sections   []string
		objectives []string
		prereqs    []string
		topics     []string
		projects   []string

		state    = collectNone
		sawH2    bool
		sawTopic bool
	)

	for _, line := range strings.Split(string(body), "\n") {
		kind, text := classifyLine(line)

		// Topic and project extraction run on every line, independent of
		// the collection state machine.
		if label, ok := topicLabel(line); ok {
			topics = append(topics, label)
			sawTopic = true
		}
		if entry, ok := projectEntry(line); ok {
			projects = append(projects, entry)
		}

		switch kind {
		case lineHeading1:
			if title == "" {
				title = text
				continue
			}
		case lineHeading2:
			sawH2 = true
			switch text {
			case "Learning Objectives":
				state = collectObjectives
			case "Prerequisites":
				state = collectPrerequisites
			default:
				state = collectNone
				sections = append(sections, text)
			}
			continue
		case lineBullet:
			switch state {
			case collectObjectives:
				objectives = append(objectives, text)
			case collectPrerequisites:
				prereqs = append(prereqs, text)
			}
		}

		// Description spans from the title (or document start when the
		// title comes from frontmatter) to the first level-2 heading.
		if !sawH2 {
			descLines = append(descLines, line)
		}
	}

	if title == "" {
		if meta.Title != "" {
			title = meta.Title
		} else {
			title = strings.TrimSuffix(fileName, filepath.Ext(fileName))
		}
		res.Degraded.TitleFallback = true
	}

	description, usedFallback := extractDescription(descLines, meta.Description)
	res.Degraded.DescriptionFallback = usedFallback

	if !sawTopic {
		topics = append([]string(nil), sections...)
		res.Degraded.TopicsFallback = true
	}
	if len(projects) == 0 {
		projects = []string{fmt.Sprintf("Complete hands-on exercises for %s", title)}
		res.Degraded.ProjectsFallback = true
	}

	html, err := renderLessonHTML(body)
	if err != nil {
		html = ""
		res.Degraded.RenderFailed = true
	}

	res.Module = Module{
		Title:              title,
		Description:        description,
		LearningObjectives: emptyIfNil(objectives),
		Prerequisites:      emptyIfNil(prereqs),
		Sections:           emptyIfNil(sections),
		Topics:             emptyIfNil(topics),
		Projects:           projects,
		Duration:           estimateDuration(raw),
		BodyHTML:           html,
	}
	return res
}

// classifyLine assigns a lineKind and returns the line's payload text with
// markers stripped.
func classifyLine(line string) (lineKind, string) {
	trimmed := strings.TrimSpace(line)
	switch {
	case trimmed == "":
		return lineBlank, ""
	case strings.HasPrefix(trimmed, "# "):
		return lineHeading1, strings.TrimSpace(trimmed[2:])
	case strings.HasPrefix(trimmed, "## "):
		return lineHeading2, strings.TrimSpace(trimmed[3:])
	case strings.HasPrefix(trimmed, "- "):
		return lineBullet, strings.TrimSpace(trimmed[2:])
	default:
		return linePlain, trimmed
	}
}

// topicLabel matches bullet lines of the form "- **Label**: ..." and
// returns the bolded label.
func topicLabel(line string) (string, bool) {
	m := topicLineRE.FindStringSubmatch(strings.TrimSpace(line))
	if m == nil {
		return "", false
	}
	return strings.TrimSpace(m[1]), true
}

// projectEntry matches bullet or bold-prefixed lines mentioning "project"
// and returns the cleaned exercise text.
func projectEntry(line string) (string, bool) {
	trimmed := strings.TrimSpace(line)
	isBullet := strings.HasPrefix(trimmed, "- ")
	isBold := strings.HasPrefix(trimmed, "**")
	if !isBullet && !isBold {
		return "", false
	}
	if !strings.Contains(strings.ToLower(trimmed), "project") {
		return "", false
	}

	text := strings.TrimSpace(strings.TrimPrefix(trimmed, "- "))
	if m := boldLabelRE.FindStringSubmatch(text); m != nil {
		rest := strings.TrimSpace(m[2])
		if rest != "" {
			return rest, true
		}
		return strings.TrimSpace(m[1]), true
	}
	return text, true
}

// extractDescription resolves the module synopsis from the prose between
// the title and the first level-2 heading. Precedence: first line of the
// block (bounded at descriptionLimit with an ellipsis), then the
// frontmatter description, then the fixed generic sentence.
func extractDescription(descLines []string, metaDescription string) (string, bool) {
	block := strings.TrimSpace(strings.Join(descLines, "\n"))
	if block != "" {
		first := strings.TrimSpace(strings.SplitN(block, "\n", 2)[0])
		if first == "" || len(first) > descriptionLimit {
			return truncate(block, descriptionLimit) + "...", true
		}
		return first, false
	}
	if metaDescription != "" {
		return metaDescription, false
	}
	return genericDescription, true
}

func truncate(s string, limit int) string {
	s = strings.ReplaceAll(strings.TrimSpace(s), "\n", " ")
	if len(s) <= limit {
		return s
	}
	return strings.TrimSpace(s[:limit])
}

// estimateDuration derives a "{P}-{P+1} hours" range from the document's
// word count: reading time at readingWordsPerMinute, practice time at 1.5x,
// both rounded up, with a floor of one hour.
func estimateDuration(raw []byte) string {
	words := len(strings.Fields(string(raw)))
	reading := (words + readingWordsPerMinute - 1) / readingWordsPerMinute
	practice := (reading*3 + 1) / 2
	if practice < 1 {
		practice = 1
	}
	return fmt.Sprintf("%d-%d hours", practice, practice+1)
}

func emptyIfNil(list []string) []string {
	if list == nil {
		return []string{}
	}
	return list
}
