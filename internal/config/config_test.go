package config

import (
	"errors"
	"strings"
	"testing"

	"github.com/spf13/pflag"
)

func TestLoadArgsDefaults(t *testing.T) {
	cfg, err := LoadArgs(nil, []string{"SHELL=/bin/zsh"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.Var != "PATH" {
		t.Fatalf("expected default var PATH, got %q", cfg.App.Var)
	}
	if cfg.App.Shell != "" {
		t.Fatalf("expected no forced shell, got %q", cfg.App.Shell)
	}
	if cfg.App.LoginShell != "/bin/zsh" {
		t.Fatalf("expected login shell from environment, got %q", cfg.App.LoginShell)
	}
	if cfg.Logging.Trace {
		t.Fatalf("expected trace disabled by default")
	}
	if err := Validate(cfg); err != nil {
		t.Fatalf("expected defaults to validate, got %v", err)
	}
}

func TestLoadArgsFlagsOverrideEnvironment(t *testing.T) {
	environ := []string{
		"PATHCTL_SHELL=posix",
		"PATHCTL_VAR=MANPATH",
		"PATHCTL_WIDTH=100",
		"PATHCTL_TRACE=true",
		"PATHCTL_LOG_FILE=/tmp/env.log",
	}
	cfg, err := LoadArgs([]string{"-s", "fish", "--var", "PATH", "--log-file", "/tmp/flag.log"}, environ)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.Shell != "fish" {
		t.Fatalf("expected flag shell fish, got %q", cfg.App.Shell)
	}
	if cfg.App.Var != "PATH" {
		t.Fatalf("expected flag var PATH, got %q", cfg.App.Var)
	}
	if cfg.App.Width != 100 {
		t.Fatalf("expected env width 100, got %d", cfg.App.Width)
	}
	if !cfg.Logging.Trace {
		t.Fatalf("expected env trace true")
	}
	if cfg.Logging.FilePath != "/tmp/flag.log" {
		t.Fatalf("expected flag log file, got %q", cfg.Logging.FilePath)
	}
	if cfg.Flags["shell"] != "fish" || cfg.Flags["width"] != "100" {
		t.Fatalf("unexpected flag snapshot %#v", cfg.Flags)
	}
}

func TestLoadArgsIgnoresMalformedEnvironment(t *testing.T) {
	cfg, err := LoadArgs(nil, []string{"", "NOEQUALS", "PATHCTL_HEIGHT=abc", "PATHCTL_TRACE=maybe"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.Height != 0 || cfg.Logging.Trace {
		t.Fatalf("expected fallbacks for malformed values, got %#v", cfg)
	}
}

func TestLoadArgsRejectsNegativeSize(t *testing.T) {
	if _, err := LoadArgs([]string{"--width", "-1"}, nil); err == nil || !strings.Contains(err.Error(), "width") {
		t.Fatalf("expected width error, got %v", err)
	}
	if _, err := LoadArgs([]string{"--height=-3"}, nil); err == nil || !strings.Contains(err.Error(), "height") {
		t.Fatalf("expected height error, got %v", err)
	}
}

func TestLoadArgsUnknownFlag(t *testing.T) {
	if _, err := LoadArgs([]string{"--nope"}, nil); err == nil {
		t.Fatalf("expected error for unknown flag")
	}
}

func TestLoadArgsHelpCarriesUsage(t *testing.T) {
	for _, arg := range []string{"--help", "-h"} {
		_, err := LoadArgs([]string{arg}, nil)
		if !errors.Is(err, pflag.ErrHelp) {
			t.Fatalf("%s: expected ErrHelp, got %v", arg, err)
		}
		var help *HelpError
		if !errors.As(err, &help) {
			t.Fatalf("%s: expected HelpError, got %T", arg, err)
		}
		for _, want := range []string{"--shell", "--var", "--list"} {
			if !strings.Contains(help.Usage, want) {
				t.Fatalf("%s: expected usage to mention %s, got %q", arg, want, help.Usage)
			}
		}
	}
}

func TestValidate(t *testing.T) {
	cfg, _ := LoadArgs([]string{"--shell", "tcsh"}, nil)
	if err := Validate(cfg); err == nil {
		t.Fatalf("expected unknown shell to be rejected")
	}
	cfg, _ = LoadArgs([]string{"--var", "MY-PATH"}, nil)
	if err := Validate(cfg); err == nil {
		t.Fatalf("expected invalid variable name to be rejected")
	}
	cfg, _ = LoadArgs([]string{"--shell", "bash", "--var", "GOPATH"}, nil)
	if err := Validate(cfg); err != nil {
		t.Fatalf("expected valid config, got %v", err)
	}
}

func TestLoadArgsListMode(t *testing.T) {
	cfg, err := LoadArgs([]string{"-l"}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !cfg.App.List {
		t.Fatalf("expected list mode")
	}
	if cfg.Flags["list"] != "true" {
		t.Fatalf("expected list flag recorded, got %q", cfg.Flags["list"])
	}
}
