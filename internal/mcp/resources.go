package mcp

import (
	"context"
	"fmt"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/spitfire8790/learn2code/internal/domain/curriculum"
)

const serverInstructions = `learn2code serves a markdown curriculum as Phases → Modules, plus a per-learner progress record.

Core concepts:
- Phase: a sequential curriculum stage ("phase-0", "phase-1", ...) holding an ordered list of modules.
- Module: one lesson; its id is stable across content edits (derived from the source file name).
- Progress record: two independent sets of module ids, completed and bookmarked. Ids unknown to the current curriculum are tolerated and ignored in aggregates.

Typical workflow:
1) Orient: list_phases, then get_phase for the phase you're working in.
2) Read: get_module for the full lesson, or fetch the learn2code://{phase-id}/{module-id} resource for rendered HTML.
3) Navigate: adjacent_modules moves within a phase only; it never jumps to the next phase.
4) Track: toggle_completed / toggle_bookmark are idempotent toggles; get_phase_progress and get_progress read back state.

Every mutation is persisted before it is acknowledged, so results reflect durable state.`

// registerLessonResources exposes each module's rendered lesson body as a
// readable resource at learn2code://{phase-id}/{module-id}.
func registerLessonResources(server *sdkmcp.Server, model *curriculum.Curriculum) {
	for _, phase := range model.Phases {
		for _, mod := range phase.Modules {
			if mod.BodyHTML == "" {
				continue
			}
			uri := fmt.Sprintf("learn2code://%s/%s", phase.ID, mod.ID)
			content := mod.BodyHTML

			server.AddResource(&sdkmcp.Resource{
				URI:         uri,
				Name:        mod.ID,
				Title:       mod.Title,
				Description: mod.Description,
				MIMEType:    "text/html",
				Size:        int64(len(content)),
			}, func(_ context.Context, req *sdkmcp.ReadResourceRequest) (*sdkmcp.ReadResourceResult, error) {
				resourceURI := uri
				if req != nil && req.Params != nil && req.Params.URI != "" {
					resourceURI = req.Params.URI
				}
				return &sdkmcp.ReadResourceResult{
					Contents: []*sdkmcp.ResourceContents{{
						URI:      resourceURI,
						MIMEType: "text/html",
						Text:     content,
					}},
				}, nil
			})
		}
	}
}
