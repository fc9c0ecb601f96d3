package curriculum

// Adjacent holds a module's neighbors within its phase. Previous is nil for
// the first module, Next nil for the last. Adjacency never crosses phase
// boundaries: the module after the last one of phase N is nil, not the
// first module of phase N+1.
type Adjacent struct {
	Previous *Module `json:"previous,omitempty"`
	Next     *Module `json:"next,omitempty"`
}

// Progress summarizes completion within one phase.
type Progress struct {
	PhaseID   string  `json:"phase_id"`
	Completed int     `json:"completed"`
	Total     int     `json:"total"`
	Fraction  float64 `json:"fraction"`
}

// FindPhase returns the phase with the given id or ErrPhaseNotFound.
func (c *Curriculum) FindPhase(phaseID string) (*Phase, error) {
	for i := range c.Phases {
		if c.Phases[i].ID == phaseID {
			return &c.Phases[i], nil
		}
	}
	return nil, ErrPhaseNotFound
}

// FindModule returns the module with the given id within a phase.
// A phase with no modules yields ErrModuleNotFound, not ErrPhaseNotFound;
// the two signals stay distinguishable for callers.
func (c *Curriculum) FindModule(phaseID, moduleID string) (*Module, error) {
	phase, err := c.FindPhase(phaseID)
	if err != nil {
		return nil, err
	}
	for i := range phase.Modules {
		if phase.Modules[i].ID == moduleID {
			return &phase.Modules[i], nil
		}
	}
	return nil, ErrModuleNotFound
}

// AdjacentModules returns the previous and next modules around moduleID
// within its phase.
func (c *Curriculum) AdjacentModules(phaseID, moduleID string) (Adjacent, error) {
	phase, err := c.FindPhase(phaseID)
	if err != nil {
		return Adjacent{}, err
	}
	for i := range phase.Modules {
		if phase.Modules[i].ID != moduleID {
			continue
		}
		var adj Adjacent
		if i > 0 {
			adj.Previous = &phase.Modules[i-1]
		}
		if i < len(phase.Modules)-1 {
			adj.Next = &phase.Modules[i+1]
		}
		return adj, nil
	}
	return Adjacent{}, ErrModuleNotFound
}

// PhaseProgress counts how many of a phase's modules appear in the
// completed set. Ids in the set that don't resolve to a module in the
// current model are ignored, so stale progress state never skews the
// result.
func (c *Curriculum) PhaseProgress(phaseID string, completed map[string]bool) (Progress, error) {
	phase, err := c.FindPhase(phaseID)
	if err != nil {
		return Progress{}, err
	}
	prog := Progress{PhaseID: phaseID, Total: len(phase.Modules)}
	for _, mod := range phase.Modules {
		if completed[mod.ID] {
			prog.Completed++
		}
	}
	if prog.Total > 0 {
		prog.Fraction = float64(prog.Completed) / float64(prog.Total)
	}
	return prog, nil
}
