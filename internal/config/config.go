package config

// Config holds the optional application settings loaded from .quizdeck.yml.
type Config struct {
	Version int      `yaml:"version"`
	Deck    string   `yaml:"deck"`
	Scores  string   `yaml:"scores"`
	History string   `yaml:"history"`
	UI      UIConfig `yaml:"ui"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	NoColor bool `yaml:"no_color"`
}

const (
	// DefaultPath is the config file looked up in the working directory.
	DefaultPath = ".quizdeck.yml"
	// DefaultScoresPath is where the leaderboard lives unless overridden.
	DefaultScoresPath = "scores.json"
	// DefaultHistoryPath is where attempt history lives unless overridden.
	DefaultHistoryPath = "history.json"
)

// Defaults returns the configuration used when no file is present. An empty
// Deck means the embedded question set.
func Defaults() Config {
	return Config{
		Version: 1,
		Scores:  DefaultScoresPath,
		History: DefaultHistoryPath,
	}
}

// Normalize fills zero values with defaults.
func Normalize(cfg *Config) {
	if cfg.Version == 0 {
		cfg.Version = 1
	}
	if cfg.Scores == "" {
		cfg.Scores = DefaultScoresPath
	}
	if cfg.History == "" {
		cfg.History = DefaultHistoryPath
	}
}
