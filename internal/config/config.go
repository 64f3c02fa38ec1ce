package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
)

// Config is the root configuration, stored in ~/.focusflow/config.json.
// The file supports single-line // comments for documentation purposes.
type Config struct {
	// WeekStart is the first day of the week for weekly stats and goals:
	// "sunday" (default) or "monday".
	WeekStart string `json:"week_start"`
	// InsightModel is the text-generation model used for daily insights.
	InsightModel string `json:"insight_model"`
}

const (
	// DefaultWeekStart matches the original dashboard's Sunday-based weeks.
	DefaultWeekStart = "sunday"
	// DefaultInsightModel is the Gemini model queried by `ff insight`.
	DefaultInsightModel = "gemini-2.5-flash"
)

func defaultConfig() Config {
	return Config{
		WeekStart:    DefaultWeekStart,
		InsightModel: DefaultInsightModel,
	}
}

// WeekStartDay maps the configured week start to a time.Weekday. Anything
// other than "monday" means Sunday.
func (c Config) WeekStartDay() time.Weekday {
	if c.WeekStart == "monday" {
		return time.Monday
	}
	return time.Sunday
}

// configTemplate is the annotated config written on first run. Lines whose
// trimmed content starts with // are stripped before JSON parsing.
const configTemplate = `// ff configuration – ~/.focusflow/config.json
//
// All settings are optional; the built-in defaults shown below work out of
// the box. Edit this file to customise ff behaviour.
{
  // First day of the week for weekly stats and weekly goal progress.
  // One of: "sunday" (default), "monday"
  "week_start": "sunday",

  // Model used by the "ff insight" command. Requires GEMINI_API_KEY to be
  // set in the environment or in ~/.focusflow/.env.
  "insight_model": "gemini-2.5-flash"
}
`

func configFilePath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, ".focusflow", "config.json"), nil
}

// stripLineComments removes lines whose leading non-whitespace content starts
// with //. Only full-line comments are handled.
func stripLineComments(data []byte) []byte {
	var out []byte
	for _, line := range bytes.Split(data, []byte("\n")) {
		if bytes.HasPrefix(bytes.TrimLeft(line, " \t"), []byte("//")) {
			continue
		}
		out = append(out, line...)
		out = append(out, '\n')
	}
	return out
}

// Load reads ~/.focusflow/config.json, creating it with annotated defaults
// on first run.
func Load() (Config, error) {
	path, err := configFilePath()
	if err != nil {
		return defaultConfig(), err
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		// First run: write the annotated template so users can discover options.
		if writeErr := writeDefault(path); writeErr != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not create config file %s: %v\n", path, writeErr)
		}
		return defaultConfig(), nil
	}
	if err != nil {
		return defaultConfig(), fmt.Errorf("reading config file %s: %w", path, err)
	}

	cleaned := stripLineComments(data)
	var cfg Config
	if err := json.Unmarshal(cleaned, &cfg); err != nil {
		return defaultConfig(), fmt.Errorf("parsing config file %s: %w\nTip: delete the file to regenerate defaults", path, err)
	}

	if cfg.WeekStart == "" {
		cfg.WeekStart = DefaultWeekStart
	}
	if cfg.InsightModel == "" {
		cfg.InsightModel = DefaultInsightModel
	}
	return cfg, nil
}

func writeDefault(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(configTemplate), 0o600); err != nil {
		return fmt.Errorf("writing default config: %w", err)
	}
	return nil
}

// APIKey returns the Gemini API key, loading ~/.focusflow/.env first so the
// key can live next to the data files instead of the shell profile. An empty
// result means insights are not configured.
func APIKey() string {
	if home, err := os.UserHomeDir(); err == nil {
		_ = godotenv.Load(filepath.Join(home, ".focusflow", ".env"))
	}
	return os.Getenv("GEMINI_API_KEY")
}
