package mcp

import (
	"context"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/spitfire8790/learn2code/internal/domain/curriculum"
	"github.com/spitfire8790/learn2code/internal/domain/progress"
)

// toolHandler binds the read-only curriculum model and the progress store
// to the MCP tool surface.
type toolHandler struct {
	curriculum *curriculum.Curriculum
	progress   ProgressStore
}

func registerTools(server *sdkmcp.Server, model *curriculum.Curriculum, store ProgressStore) {
	h := &toolHandler{curriculum: model, progress: store}

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "list_phases",
		Description: "List all curriculum phases with module counts and completion",
	}, h.listPhases)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "get_phase",
		Description: "Get one phase with its ordered module references and progress",
	}, h.getPhase)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "get_module",
		Description: "Get a full module (objectives, prerequisites, sections, topics, projects, lesson HTML)",
	}, h.getModule)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "adjacent_modules",
		Description: "Get the previous and next modules within a phase; adjacency does not cross phase boundaries",
	}, h.adjacentModules)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "get_phase_progress",
		Description: "Get completed/total counts and fraction for one phase",
	}, h.getPhaseProgress)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "get_progress",
		Description: "Get the full progress record (completed and bookmarked module ids)",
	}, h.getProgress)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "toggle_completed",
		Description: "Toggle a module's completed state; toggling twice restores the original state",
	}, h.toggleCompleted)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "toggle_bookmark",
		Description: "Toggle a module's bookmark",
	}, h.toggleBookmark)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "get_recent_activity",
		Description: "List recent progress toggle events, newest first",
	}, h.getRecentActivity)
}

func (h *toolHandler) listPhases(ctx context.Context, req *sdkmcp.CallToolRequest, params ListPhasesParams) (*sdkmcp.CallToolResult, ListPhasesResult, error) {
	rec := h.progress.Snapshot()
	result := ListPhasesResult{
		Title:       h.curriculum.Title,
		Description: h.curriculum.Description,
		Phases:      make([]PhaseSummary, 0, len(h.curriculum.Phases)),
	}
	for _, phase := range h.curriculum.Phases {
		prog, err := h.curriculum.PhaseProgress(phase.ID, rec.Completed)
		if err != nil {
			return nil, ListPhasesResult{}, mapError(err)
		}
		result.Phases = append(result.Phases, PhaseSummary{
			ID:          phase.ID,
			Title:       phase.Title,
			Description: phase.Description,
			ModuleCount: len(phase.Modules),
			Completed:   prog.Completed,
		})
	}
	return nil, result, nil
}

func (h *toolHandler) getPhase(ctx context.Context, req *sdkmcp.CallToolRequest, params GetPhaseParams) (*sdkmcp.CallToolResult, GetPhaseResult, error) {
	phase, err := h.curriculum.FindPhase(params.PhaseID)
	if err != nil {
		return nil, GetPhaseResult{}, mapError(err)
	}
	rec := h.progress.Snapshot()
	prog, err := h.curriculum.PhaseProgress(params.PhaseID, rec.Completed)
	if err != nil {
		return nil, GetPhaseResult{}, mapError(err)
	}

	refs := make([]ModuleRef, 0, len(phase.Modules))
	for i := range phase.Modules {
		refs = append(refs, moduleRef(&phase.Modules[i], rec))
	}
	return nil, GetPhaseResult{
		ID:          phase.ID,
		Title:       phase.Title,
		Description: phase.Description,
		Modules:     refs,
		Progress:    prog,
	}, nil
}

func (h *toolHandler) getModule(ctx context.Context, req *sdkmcp.CallToolRequest, params GetModuleParams) (*sdkmcp.CallToolResult, GetModuleResult, error) {
	mod, err := h.curriculum.FindModule(params.PhaseID, params.ModuleID)
	if err != nil {
		return nil, GetModuleResult{}, mapError(err)
	}
	rec := h.progress.Snapshot()
	return nil, GetModuleResult{
		Module:     *mod,
		Completed:  rec.Completed[mod.ID],
		Bookmarked: rec.Bookmarked[mod.ID],
	}, nil
}

func (h *toolHandler) adjacentModules(ctx context.Context, req *sdkmcp.CallToolRequest, params AdjacentModulesParams) (*sdkmcp.CallToolResult, AdjacentModulesResult, error) {
	adj, err := h.curriculum.AdjacentModules(params.PhaseID, params.ModuleID)
	if err != nil {
		return nil, AdjacentModulesResult{}, mapError(err)
	}
	rec := h.progress.Snapshot()
	var result AdjacentModulesResult
	if adj.Previous != nil {
		ref := moduleRef(adj.Previous, rec)
		result.Previous = &ref
	}
	if adj.Next != nil {
		ref := moduleRef(adj.Next, rec)
		result.Next = &ref
	}
	return nil, result, nil
}

func (h *toolHandler) getPhaseProgress(ctx context.Context, req *sdkmcp.CallToolRequest, params GetPhaseProgressParams) (*sdkmcp.CallToolResult, curriculum.Progress, error) {
	rec := h.progress.Snapshot()
	prog, err := h.curriculum.PhaseProgress(params.PhaseID, rec.Completed)
	if err != nil {
		return nil, curriculum.Progress{}, mapError(err)
	}
	return nil, prog, nil
}

func (h *toolHandler) getProgress(ctx context.Context, req *sdkmcp.CallToolRequest, params GetProgressParams) (*sdkmcp.CallToolResult, GetProgressResult, error) {
	rec := h.progress.Snapshot()
	return nil, GetProgressResult{
		CompletedModuleIDs:  rec.CompletedIDs(),
		BookmarkedModuleIDs: rec.BookmarkedIDs(),
	}, nil
}

func (h *toolHandler) toggleCompleted(ctx context.Context, req *sdkmcp.CallToolRequest, params ToggleCompletedParams) (*sdkmcp.CallToolResult, ToggleResult, error) {
	marked, err := h.progress.ToggleCompleted(ctx, params.ModuleID)
	if err != nil {
		return nil, ToggleResult{}, mapError(err)
	}
	return nil, ToggleResult{ModuleID: params.ModuleID, Marked: marked}, nil
}

func (h *toolHandler) toggleBookmark(ctx context.Context, req *sdkmcp.CallToolRequest, params ToggleBookmarkParams) (*sdkmcp.CallToolResult, ToggleResult, error) {
	marked, err := h.progress.ToggleBookmark(ctx, params.ModuleID)
	if err != nil {
		return nil, ToggleResult{}, mapError(err)
	}
	return nil, ToggleResult{ModuleID: params.ModuleID, Marked: marked}, nil
}

func (h *toolHandler) getRecentActivity(ctx context.Context, req *sdkmcp.CallToolRequest, params GetRecentActivityParams) (*sdkmcp.CallToolResult, GetRecentActivityResult, error) {
	events, err := h.progress.RecentActivity(ctx, params.Limit)
	if err != nil {
		return nil, GetRecentActivityResult{}, mapError(err)
	}
	if events == nil {
		events = []progress.Event{}
	}
	return nil, GetRecentActivityResult{Events: events}, nil
}

func moduleRef(mod *curriculum.Module, rec *progress.Record) ModuleRef {
	return ModuleRef{
		ID:         mod.ID,
		Title:      mod.Title,
		Duration:   mod.Duration,
		Difficulty: mod.Difficulty,
		Completed:  rec.Completed[mod.ID],
		Bookmarked: rec.Bookmarked[mod.ID],
	}
}
