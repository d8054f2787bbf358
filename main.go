package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/sonirico/pathctl/internal/app"
	"github.com/sonirico/pathctl/internal/config"
	"github.com/sonirico/pathctl/internal/logging"
	"github.com/sonirico/pathctl/internal/logging/events"
	"github.com/sonirico/pathctl/internal/pathsource"
	"github.com/sonirico/pathctl/internal/shellcmd"
	"golang.org/x/term"
)

func main() {
	runtimeCfg := config.MustLoad()
	if err := config.Validate(runtimeCfg); err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	logging.Configure(runtimeCfg.Logging.FilePath)
	logging.SetTraceEnabled(runtimeCfg.Logging.Trace)

	traceStartup(runtimeCfg)

	line, err := app.Run(runtimeCfg.App)
	if err != nil {
		logging.Error(err)
		if !errors.Is(err, app.ErrAborted) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
	if line != "" {
		fmt.Println(line)
	}
}

func traceStartup(cfg config.Config) {
	if !logging.TraceEnabled() {
		return
	}
	events.App.Start(startupTracePayload(cfg))
}

// startupTracePayload records what the run will edit and emit, plus which
// descriptors are terminals.
func startupTracePayload(cfg config.Config) map[string]interface{} {
	flags := make(map[string]interface{}, len(cfg.Flags)+2)
	for k, v := range cfg.Flags {
		flags[k] = v
	}
	flags["trace"] = cfg.Logging.Trace
	flags["logFile"] = cfg.Logging.FilePath
	return map[string]interface{}{
		"argv":     cfg.Args,
		"flags":    flags,
		"config":   cfg,
		"target":   describeTarget(cfg.App, os.LookupEnv),
		"terminal": probeTerminal(),
	}
}

// targetInfo describes the variable being edited and the syntax it will be
// written back in.
type targetInfo struct {
	Var        string `json:"var"`
	Shell      string `json:"shell"`
	ShellError string `json:"shell_error,omitempty"`
	Set        bool   `json:"set"`
	Entries    int    `json:"entries"`
	Separator  string `json:"separator"`
}

func describeTarget(cfg app.Config, lookup pathsource.LookupFunc) targetInfo {
	info := targetInfo{Var: cfg.Var, Separator: string(os.PathListSeparator)}
	if info.Var == "" {
		info.Var = "PATH"
	}
	if cfg.Shell != "" {
		shell, err := shellcmd.ParseShell(cfg.Shell)
		if err != nil {
			info.ShellError = err.Error()
		} else {
			info.Shell = shell.String()
		}
	} else {
		info.Shell = shellcmd.Detect(cfg.LoginShell).String()
	}
	if raw, ok := lookup(info.Var); ok {
		info.Set = true
		info.Entries = len(pathsource.Split(raw))
	}
	return info
}

// terminalInfo reports which standard descriptors are terminals. The editor
// draws on stderr and may read keys from /dev/tty when stdin is piped.
type terminalInfo struct {
	Stdin     bool   `json:"stdin"`
	Stdout    bool   `json:"stdout"`
	Stderr    bool   `json:"stderr"`
	InputTTY  bool   `json:"input_tty"`
	Width     int    `json:"width,omitempty"`
	Height    int    `json:"height,omitempty"`
	SizeError string `json:"size_error,omitempty"`
}

func probeTerminal() terminalInfo {
	info := terminalInfo{
		Stdin:  term.IsTerminal(int(os.Stdin.Fd())),
		Stdout: term.IsTerminal(int(os.Stdout.Fd())),
		Stderr: term.IsTerminal(int(os.Stderr.Fd())),
	}
	info.InputTTY = !info.Stdin
	if !info.Stderr {
		return info
	}
	width, height, err := term.GetSize(int(os.Stderr.Fd()))
	if err != nil {
		info.SizeError = err.Error()
		return info
	}
	info.Width, info.Height = width, height
	return info
}
