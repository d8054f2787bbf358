package app

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sonirico/pathctl/internal/format/table"
	"github.com/sonirico/pathctl/internal/logging/events"
	"github.com/sonirico/pathctl/internal/pathsource"
	"github.com/sonirico/pathctl/internal/session"
	"github.com/sonirico/pathctl/internal/shellcmd"
	"github.com/sonirico/pathctl/internal/ui"
	"golang.org/x/term"
)

// Config describes user-provided application options.
type Config struct {
	Shell      string
	LoginShell string
	Var        string
	Width      int
	Height     int
	List       bool
}

// ErrAborted is returned when the editor ends without the quit command.
// Nothing should be printed in that case.
var ErrAborted = errors.New("editor aborted")

// TerminalError reports that the terminal could not be set up or driven.
type TerminalError struct {
	Op  string
	Err error
}

func (e *TerminalError) Error() string {
	return fmt.Sprintf("terminal %s: %v", e.Op, e.Err)
}

func (e *TerminalError) Unwrap() error { return e.Err }

var (
	isTerminal = term.IsTerminal
	runProgram = func(model tea.Model, opts ...tea.ProgramOption) (tea.Model, error) {
		return tea.NewProgram(model, opts...).Run()
	}
)

// Run reads the current search path, lets the operator edit it and returns
// the line to print on stdout.
func Run(cfg Config) (string, error) {
	name := varName(cfg)
	entries, err := pathsource.Default(os.LookupEnv, name).Entries()
	if err != nil {
		return "", fmt.Errorf("read %s: %w", name, err)
	}
	probe := pathsource.FSProbe{}
	if cfg.List {
		return Listing(entries, probe), nil
	}
	final, err := Edit(entries, cfg, probe)
	if err != nil {
		return "", err
	}
	return Command(final, cfg)
}

// Edit runs the interactive editor over entries and returns the list as it
// stood when the operator quit. The UI is drawn on stderr so stdout stays free
// for the generated command.
func Edit(entries []string, cfg Config, probe session.Probe) ([]string, error) {
	if !isTerminal(int(os.Stderr.Fd())) {
		return nil, &TerminalError{Op: "open", Err: errors.New("stderr is not a terminal")}
	}
	sess := session.New(entries, probe)
	model := ui.NewModel(sess, ui.Options{
		Var:    varName(cfg),
		Width:  cfg.Width,
		Height: cfg.Height,
	})
	opts := []tea.ProgramOption{tea.WithAltScreen(), tea.WithOutput(os.Stderr)}
	if !isTerminal(int(os.Stdin.Fd())) {
		opts = append(opts, tea.WithInputTTY())
	}
	final, err := runProgram(model, opts...)
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) || errors.Is(err, tea.ErrInterrupted) {
			return nil, ErrAborted
		}
		return nil, &TerminalError{Op: "run", Err: err}
	}
	if m, ok := final.(*ui.Model); ok && !m.Quitting() {
		return nil, ErrAborted
	}
	return sess.Entries(), nil
}

// Command renders entries as the assignment statement for the configured or
// detected shell.
func Command(entries []string, cfg Config) (string, error) {
	shell, err := resolveShell(cfg)
	if err != nil {
		return "", err
	}
	gen := shellcmd.NewGenerator(shell)
	gen.Var = varName(cfg)
	line, err := gen.Command(entries)
	if err != nil {
		events.Command.Error(err)
		return "", err
	}
	events.Command.Generate(shell.String(), len(entries))
	return line, nil
}

// Listing formats entries one per row with their position and any notes.
func Listing(entries []string, probe session.Probe) string {
	notes := session.Annotate(entries, probe)
	rows := make([][]string, len(entries))
	for i, entry := range entries {
		var tags []string
		if notes[i].Empty {
			entry = `""`
			tags = append(tags, "empty")
		}
		if notes[i].Missing {
			tags = append(tags, "missing")
		}
		if notes[i].Duplicate {
			tags = append(tags, "dup")
		}
		rows[i] = []string{strconv.Itoa(i + 1), entry, strings.Join(tags, ",")}
	}
	return strings.Join(table.Format(rows, []table.Alignment{table.AlignRight}), "\n")
}

func resolveShell(cfg Config) (shellcmd.Shell, error) {
	if cfg.Shell != "" {
		return shellcmd.ParseShell(cfg.Shell)
	}
	return shellcmd.Detect(cfg.LoginShell), nil
}

func varName(cfg Config) string {
	if cfg.Var == "" {
		return "PATH"
	}
	return cfg.Var
}
