package mcp

import (
	"github.com/spitfire8790/learn2code/internal/domain/curriculum"
	"github.com/spitfire8790/learn2code/internal/domain/progress"
)

type ListPhasesParams struct{}

type GetPhaseParams struct {
	PhaseID string `json:"phase_id"`
}

type GetModuleParams struct {
	PhaseID  string `json:"phase_id"`
	ModuleID string `json:"module_id"`
}

type AdjacentModulesParams struct {
	PhaseID  string `json:"phase_id"`
	ModuleID string `json:"module_id"`
}

type GetPhaseProgressParams struct {
	PhaseID string `json:"phase_id"`
}

type GetProgressParams struct{}

type ToggleCompletedParams struct {
	ModuleID string `json:"module_id"`
}

type ToggleBookmarkParams struct {
	ModuleID string `json:"module_id"`
}

type GetRecentActivityParams struct {
	Limit int `json:"limit,omitempty"`
}

// ModuleRef is a lightweight module reference for listings; the full body
// stays behind get_module and the lesson resources.
type ModuleRef struct {
	ID         string                `json:"id"`
	Title      string                `json:"title"`
	Duration   string                `json:"duration"`
	Difficulty curriculum.Difficulty `json:"difficulty"`
	Completed  bool                  `json:"completed"`
	Bookmarked bool                  `json:"bookmarked"`
}

type PhaseSummary struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	ModuleCount int    `json:"module_count"`
	Completed   int    `json:"completed"`
}

type ListPhasesResult struct {
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Phases      []PhaseSummary `json:"phases"`
}

type GetPhaseResult struct {
	ID          string              `json:"id"`
	Title       string              `json:"title"`
	Description string              `json:"description"`
	Modules     []ModuleRef         `json:"modules"`
	Progress    curriculum.Progress `json:"progress"`
}

type GetModuleResult struct {
	Module     curriculum.Module `json:"module"`
	Completed  bool              `json:"completed"`
	Bookmarked bool              `json:"bookmarked"`
}

type AdjacentModulesResult struct {
	Previous *ModuleRef `json:"previous,omitempty"`
	Next     *ModuleRef `json:"next,omitempty"`
}

type GetProgressResult struct {
	CompletedModuleIDs  []string `json:"completedModuleIds"`
	BookmarkedModuleIDs []string `json:"bookmarkedModuleIds"`
}

type ToggleResult struct {
	ModuleID string `json:"module_id"`
	Marked   bool   `json:"marked"`
}

type GetRecentActivityResult struct {
	Events []progress.Event `json:"events"`
}
