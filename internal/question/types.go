package question

// Deck defines the question deck schema loaded from JSON or YAML.
type Deck struct {
	Version   int        `json:"version" yaml:"version"`
	Questions []Question `json:"questions" yaml:"questions"`
}

// Question is a single multiple-choice question. Correct is an index into
// Options.
type Question struct {
	Text    string   `json:"text" yaml:"text"`
	Options []string `json:"options" yaml:"options"`
	Correct int      `json:"correct" yaml:"correct"`
}

const (
	// MinOptions is the smallest allowed number of answer options.
	MinOptions = 2
	// MaxOptions is the largest allowed number of answer options.
	MaxOptions = 4
)
