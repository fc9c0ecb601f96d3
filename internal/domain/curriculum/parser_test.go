package curriculum

import (
	"fmt"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseLesson_FullDocument(t *testing.T) {
	doc := `# Intro

Learn the basics of programming.

## Learning Objectives
- Understand X
- Understand Y

## Prerequisites
- Basic math

## Section 1

- **Variables**: storing data
- **Project 1**: Build a calculator

## Section 2
`

	res := ParseLesson([]byte(doc), "Module-1.1-Intro.md")
	mod := res.Module

	require.Equal(t, "Intro", mod.Title)
	require.Equal(t, "Learn the basics of programming.", mod.Description)
	require.Equal(t, []string{"Understand X", "Understand Y"}, mod.LearningObjectives)
	require.Equal(t, []string{"Basic math"}, mod.Prerequisites)
	require.Equal(t, []string{"Section 1", "Section 2"}, mod.Sections)
	require.Equal(t, []string{"Variables", "Project 1"}, mod.Topics)
	require.Equal(t, []string{"Build a calculator"}, mod.Projects)
	require.False(t, res.Degraded.Any())
	require.NotEmpty(t, mod.BodyHTML)
}

func TestParseLesson_MinimalFallbacks(t *testing.T) {
	res := ParseLesson([]byte("# Intro\n"), "Module-1.2-B.md")
	mod := res.Module

	require.Equal(t, "Intro", mod.Title)
	require.Equal(t, "Comprehensive module covering essential development concepts.", mod.Description)
	require.Empty(t, mod.LearningObjectives)
	require.Empty(t, mod.Prerequisites)
	require.Empty(t, mod.Sections)
	require.Empty(t, mod.Topics)
	require.Equal(t, []string{"Complete hands-on exercises for Intro"}, mod.Projects)

	m := regexp.MustCompile(`^(\d+)-(\d+) hours$`).FindStringSubmatch(mod.Duration)
	require.NotNil(t, m, "duration %q should be an N-M hours range", mod.Duration)
	require.GreaterOrEqual(t, atoi(t, m[1]), 1)
	require.Equal(t, atoi(t, m[1])+1, atoi(t, m[2]))

	require.True(t, res.Degraded.DescriptionFallback)
	require.True(t, res.Degraded.TopicsFallback)
	require.True(t, res.Degraded.ProjectsFallback)
}

func TestParseLesson_TitleFallsBackToFileName(t *testing.T) {
	res := ParseLesson([]byte("just some text\n"), "Module-2.3-Closures.md")
	require.Equal(t, "Module-2.3-Closures", res.Module.Title)
	require.True(t, res.Degraded.TitleFallback)
}

func TestParseLesson_CollectionStateExclusivity(t *testing.T) {
	// Prerequisites follows Learning Objectives without an intervening
	// plain heading; no bullet may land in both lists.
	doc := `# T

## Learning Objectives
- Understand X
## Prerequisites
- Basic math
`
	res := ParseLesson([]byte(doc), "Module-1.1-T.md")
	require.Equal(t, []string{"Understand X"}, res.Module.LearningObjectives)
	require.Equal(t, []string{"Basic math"}, res.Module.Prerequisites)
	require.Empty(t, res.Module.Sections)
}

func TestParseLesson_BulletsOutsideCollectionIgnored(t *testing.T) {
	doc := `# T

## Learning Objectives
- Understand X

## Setup
- install node
`
	res := ParseLesson([]byte(doc), "Module-1.1-T.md")
	require.Equal(t, []string{"Understand X"}, res.Module.LearningObjectives)
	require.Empty(t, res.Module.Prerequisites)
	require.Equal(t, []string{"Setup"}, res.Module.Sections)
}

func TestParseLesson_TopicsFallBackToSections(t *testing.T) {
	doc := `# T

## HTML Basics

## CSS Basics
`
	res := ParseLesson([]byte(doc), "Module-1.1-T.md")
	require.Equal(t, []string{"HTML Basics", "CSS Basics"}, res.Module.Topics)
	require.True(t, res.Degraded.TopicsFallback)
}

func TestParseLesson_TopicsCollectedInAnyState(t *testing.T) {
	doc := `# T

## Learning Objectives
- **Scope**: how lookups work
- plain objective
`
	res := ParseLesson([]byte(doc), "Module-1.1-T.md")
	require.Equal(t, []string{"Scope"}, res.Module.Topics)
	// The same line also counts as an objective bullet.
	require.Equal(t, []string{"**Scope**: how lookups work", "plain objective"}, res.Module.LearningObjectives)
}

func TestParseLesson_ProjectCleaning(t *testing.T) {
	cases := []struct {
		name string
		line string
		want string
	}{
		{"bold label with text", "- **Project 1**: Build a portfolio site", "Build a portfolio site"},
		{"bold label only", "- **Capstone Project**:", "Capstone Project"},
		{"plain bullet", "- finish the project checklist", "finish the project checklist"},
		{"bold prefixed line", "**Mini Project**: Write a parser", "Write a parser"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			doc := "# T\n\n## Work\n" + tc.line + "\n"
			res := ParseLesson([]byte(doc), "Module-1.1-T.md")
			require.Equal(t, []string{tc.want}, res.Module.Projects)
			require.False(t, res.Degraded.ProjectsFallback)
		})
	}
}

func TestParseLesson_ProjectCaseInsensitive(t *testing.T) {
	doc := "# T\n\n- **PROJECT work**: ship it\n"
	res := ParseLesson([]byte(doc), "Module-1.1-T.md")
	require.Equal(t, []string{"ship it"}, res.Module.Projects)
}

func TestParseLesson_DescriptionFirstLineOnly(t *testing.T) {
	doc := `# T

First paragraph line one.
First paragraph line two.

Second paragraph.

## Section 1
`
	res := ParseLesson([]byte(doc), "Module-1.1-T.md")
	require.Equal(t, "First paragraph line one.", res.Module.Description)
}

func TestParseLesson_DescriptionTruncated(t *testing.T) {
	long := strings.Repeat("lorem ipsum ", 20) // well past the 150-char bound
	doc := "# T\n\n" + long + "\n\n## Section 1\n"

	res := ParseLesson([]byte(doc), "Module-1.1-T.md")
	require.True(t, strings.HasSuffix(res.Module.Description, "..."))
	require.LessOrEqual(t, len(res.Module.Description), 153)
	require.True(t, res.Degraded.DescriptionFallback)
}

func TestParseLesson_FrontmatterOverrides(t *testing.T) {
	doc := `---
title: From Frontmatter
description: Synopsis from frontmatter.
---
No headings here, just prose that sits before any section.

## Section 1
`
	res := ParseLesson([]byte(doc), "Module-1.1-T.md")
	require.Equal(t, "From Frontmatter", res.Module.Title)
	// Body prose still wins over the frontmatter description.
	require.Equal(t, "No headings here, just prose that sits before any section.", res.Module.Description)
}

func TestParseLesson_FrontmatterDescriptionWhenBodyEmpty(t *testing.T) {
	doc := `---
description: Synopsis from frontmatter.
---
# T

## Section 1
`
	res := ParseLesson([]byte(doc), "Module-1.1-T.md")
	require.Equal(t, "Synopsis from frontmatter.", res.Module.Description)
	require.False(t, res.Degraded.DescriptionFallback)
}

func TestParseLesson_DurationFromWordCount(t *testing.T) {
	// 2 title words + 398 body words = 400 words: reading 2h, practice 3h.
	doc := "# T\n" + strings.TrimSpace(strings.Repeat("go ", 398)) + "\n"
	require.Len(t, strings.Fields(doc), 400)

	res := ParseLesson([]byte(doc), "Module-1.1-T.md")
	require.Equal(t, "3-4 hours", res.Module.Duration)
}

func TestDifficultyForPhase(t *testing.T) {
	cases := []struct {
		index int
		want  Difficulty
	}{
		{0, DifficultyBeginner},
		{1, DifficultyBeginner},
		{2, DifficultyIntermediate},
		{3, DifficultyIntermediate},
		{4, DifficultyIntermediate},
		{5, DifficultyAdvanced},
		{9, DifficultyAdvanced},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, DifficultyForPhase(tc.index), "phase %d", tc.index)
	}
}

func atoi(t *testing.T, s string) int {
	t.Helper()
	var n int
	_, err := fmt.Sscanf(s, "%d", &n)
	require.NoError(t, err)
	return n
}
