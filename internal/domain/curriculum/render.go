package curriculum

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
)

// lessonMarkdown renders lesson bodies to HTML for the artifact and the
// resource surface. The engine is stateless, so a single instance is shared
// across all parses without locking.
var lessonMarkdown = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
	goldmark.WithParserOptions(parser.WithAutoHeadingID()),
)

func renderLessonHTML(body []byte) (string, error) {
	var buf bytes.Buffer
	if err := lessonMarkdown.Convert(body, &buf); err != nil {
		return "", fmt.Errorf("render lesson: %w", err)
	}
	return buf.String(), nil
}
