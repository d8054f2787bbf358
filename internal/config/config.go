package config

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/sonirico/pathctl/internal/app"
	"github.com/sonirico/pathctl/internal/shellcmd"
	"github.com/spf13/pflag"
)

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Logging Logging
	Flags   map[string]string
	Args    []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

const (
	envShell   = "PATHCTL_SHELL"
	envVar     = "PATHCTL_VAR"
	envWidth   = "PATHCTL_WIDTH"
	envHeight  = "PATHCTL_HEIGHT"
	envTrace   = "PATHCTL_TRACE"
	envLogFile = "PATHCTL_LOG_FILE"

	// envLoginShell is consulted when no explicit shell is configured.
	envLoginShell = "SHELL"
)

var identifier = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// HelpError is returned by LoadArgs for -h/--help. It unwraps to
// pflag.ErrHelp and carries the flag listing to print.
type HelpError struct {
	Usage string
}

func (e *HelpError) Error() string { return pflag.ErrHelp.Error() }

func (e *HelpError) Unwrap() error { return pflag.ErrHelp }

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	fs := pflag.NewFlagSet("pathctl", pflag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	shell := fs.StringP("shell", "s", envOrDefault(env, envShell, ""), "output syntax: posix or fish (default: detected from $SHELL)")
	variable := fs.String("var", envOrDefault(env, envVar, "PATH"), "path-list variable to edit and emit")
	width := fs.Int("width", envOrInt(env, envWidth, 0), "desired viewport width in cells (0 uses terminal width)")
	height := fs.Int("height", envOrInt(env, envHeight, 0), "desired viewport height in rows (0 uses terminal height)")
	trace := fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file")
	list := fs.BoolP("list", "l", false, "print the current entries with notes instead of editing")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return Config{}, &HelpError{Usage: fs.FlagUsages()}
		}
		return Config{}, err
	}

	if *width < 0 {
		return Config{}, fmt.Errorf("width must be >= 0 (got %d)", *width)
	}
	if *height < 0 {
		return Config{}, fmt.Errorf("height must be >= 0 (got %d)", *height)
	}

	loginShell := env[envLoginShell]
	cfg := Config{
		App: app.Config{
			Shell:      strings.TrimSpace(*shell),
			LoginShell: loginShell,
			Var:        strings.TrimSpace(*variable),
			Width:      *width,
			Height:     *height,
			List:       *list,
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		Flags: map[string]string{
			"shell":   *shell,
			"var":     *variable,
			"width":   strconv.Itoa(*width),
			"height":  strconv.Itoa(*height),
			"trace":   strconv.FormatBool(*trace),
			"logFile": *logFile,
			"list":    strconv.FormatBool(*list),
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
	parsed, err := strconv.Atoi(v)
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
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	var help *HelpError
	if errors.As(err, &help) {
		fmt.Fprintf(os.Stderr, "Usage: pathctl [flags]\n\n%s", help.Usage)
		os.Exit(0)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

// Validate rejects values that would only fail later, after the terminal has
// already been taken over.
func Validate(cfg Config) error {
	if cfg.App.Shell != "" {
		if _, err := shellcmd.ParseShell(cfg.App.Shell); err != nil {
			return err
		}
	}
	if !identifier.MatchString(cfg.App.Var) {
		return fmt.Errorf("var must be a shell identifier (got %q)", cfg.App.Var)
	}
	return nil
}
