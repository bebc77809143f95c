package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/atomicstack/sdmenu/internal/app"
	"github.com/atomicstack/sdmenu/internal/ui/state"
)

// Config captures runtime configuration for the application.
type Config struct {
	App      app.Config
	Logging  Logging
	Settings map[string]string
	Args     []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

const (
	envLines      = "SDMENU_LINES"
	envWidth      = "SDMENU_WIDTH"
	envSelected   = "SDMENU_SELECTED"
	envMatch      = "SDMENU_MATCH"
	envIgnoreCase = "SDMENU_IGNORE_CASE"
	envInputLimit = "SDMENU_INPUT_LIMIT"
	envTrace      = "SDMENU_TRACE"
	envLogFile    = "SDMENU_LOG_FILE"
)

const (
	DefaultLines = 2
	DefaultWidth = 82
)

// Load reads candidates from the process arguments and settings from the
// environment.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment. Every argument
// is a candidate; no flags are recognised.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	lines := envOrInt(env, envLines, DefaultLines)
	width := envOrInt(env, envWidth, DefaultWidth)
	selected := envOrDefault(env, envSelected, "")
	matchName := envOrDefault(env, envMatch, "substring")
	ignoreCase := envOrBool(env, envIgnoreCase, false)
	inputLimit := envOrInt(env, envInputLimit, state.DefaultQueryCapacity)
	trace := envOrBool(env, envTrace, false)
	logFile := envOrDefault(env, envLogFile, "")

	mode, err := state.ParseMatchMode(matchName)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", envMatch, err)
	}

	candidates := append([]string(nil), args...)
	cfg := Config{
		App: app.Config{
			Candidates: candidates,
			Lines:      lines,
			Width:      width,
			Selected:   selected,
			Match:      mode,
			IgnoreCase: ignoreCase,
			InputLimit: inputLimit,
		},
		Logging: Logging{
			FilePath: logFile,
			Trace:    trace,
		},
		Settings: map[string]string{
			"lines":      strconv.Itoa(lines),
			"width":      strconv.Itoa(width),
			"selected":   strconv.Quote(selected),
			"match":      mode.String(),
			"ignoreCase": strconv.FormatBool(ignoreCase),
			"inputLimit": strconv.Itoa(inputLimit),
			"logFile":    logFile,
		},
		Args: append([]string(nil), args...),
	}

	return cfg, nil
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(strings.TrimSpace(v))
	if err != nil {
		return fallback
	}
	return parsed
}

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

// Validate rejects values the renderer and query buffer cannot work with.
func Validate(cfg Config) error {
	if cfg.App.Lines < 0 {
		return fmt.Errorf("%s must be >= 0 (got %d)", envLines, cfg.App.Lines)
	}
	if cfg.App.Width < 0 {
		return fmt.Errorf("%s must be >= 0 (got %d)", envWidth, cfg.App.Width)
	}
	if cfg.App.InputLimit <= 0 {
		return fmt.Errorf("%s must be > 0 (got %d)", envInputLimit, cfg.App.InputLimit)
	}
	return nil
}
