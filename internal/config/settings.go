package config

import (
	"log/slog"
	"strconv"
	"strings"
)

const (
	DefaultModel  = "gemini-2.5-flash"
	DefaultDBPath = "data/explanations.db"
)

// Settings are the runtime options taken from the environment.
type Settings struct {
	APIKey   string
	Model    string
	DBPath   string // empty disables the explanation cache
	LogLevel slog.Level
	Mute     bool
}

// Load builds Settings from lookup, usually os.LookupEnv. CHORDANGLE_DB set
// to an empty string disables the cache.
func Load(lookup func(string) (string, bool)) Settings {
	get := func(k string) string {
		v, _ := lookup(k)
		return strings.TrimSpace(v)
	}

	s := Settings{
		APIKey:   get("GEMINI_API_KEY"),
		Model:    get("CHORDANGLE_MODEL"),
		DBPath:   DefaultDBPath,
		LogLevel: ParseLevel(get("CHORDANGLE_LOG_LEVEL")),
	}
	if s.APIKey == "" {
		s.APIKey = get("API_KEY")
	}
	if s.Model == "" {
		s.Model = DefaultModel
	}
	if v, ok := lookup("CHORDANGLE_DB"); ok {
		s.DBPath = strings.TrimSpace(v)
	}
	if b, err := strconv.ParseBool(get("CHORDANGLE_MUTE")); err == nil {
		s.Mute = b
	}
	return s
}

// ParseLevel maps debug|info|warn|error to a slog level. Anything else is info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
