package curriculum

import "errors"

var (
	// ErrPhaseNotFound indicates the phase id doesn't exist in the model.
	ErrPhaseNotFound = errors.New("phase not found")
	// ErrModuleNotFound indicates the module id doesn't exist in the phase.
	ErrModuleNotFound = errors.New("module not found")
	// ErrModuleIDCollision indicates two source files derived the same
	// module id. This is a corpus naming defect and aborts assembly.
	ErrModuleIDCollision = errors.New("module id collision")
)
