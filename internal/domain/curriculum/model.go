package curriculum

// Difficulty represents the expected experience level for a module
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "Beginner"
	DifficultyIntermediate Difficulty = "Intermediate"
	DifficultyAdvanced     Difficulty = "Advanced"
)

// DifficultyForPhase maps a phase's position in the curriculum to a
// difficulty tier. The tier is a function of sequence, not content.
func DifficultyForPhase(index int) Difficulty {
	switch {
	case index <= 1:
		return DifficultyBeginner
	case index <= 4:
		return DifficultyIntermediate
	default:
		return DifficultyAdvanced
	}
}

// Curriculum is the assembled, read-only model of the full course.
// It is constructed once by the Assembler (or loaded from the serialized
// artifact) and never mutated afterwards, so it is safe to share across
// any number of concurrent readers.
type Curriculum struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Phases      []Phase `json:"phases"`
}

// Phase is a top-level curriculum stage holding an ordered sequence of
// modules. Order encodes pedagogical sequence.
type Phase struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Modules     []Module `json:"modules"`
}

// Module is one lesson unit sourced from exactly one markdown document.
// ID is derived from the source file name and stays stable across content
// edits that don't rename the file.
type Module struct {
	ID                 string     `json:"id"`
	Title              string     `json:"title"`
	Description        string     `json:"description"`
	LearningObjectives []string   `json:"learningObjectives"`
	Prerequisites      []string   `json:"prerequisites"`
	Sections           []string   `json:"sections"`
	Topics             []string   `json:"topics"`
	Projects           []string   `json:"projects"`
	Duration           string     `json:"duration"`
	Difficulty         Difficulty `json:"difficulty"`
	BodyHTML           string     `json:"bodyHtml,omitempty"`
}
