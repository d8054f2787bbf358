// Package shellcmd turns the edited path list into the single shell statement
// that re-applies it.
package shellcmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Shell selects the statement syntax.
type Shell int

const (
	POSIX Shell = iota
	Fish
)

func (s Shell) String() string {
	if s == Fish {
		return "fish"
	}
	return "posix"
}

// ParseShell maps a user-supplied name to a Shell. Common POSIX shells are
// accepted as aliases for "posix".
func ParseShell(name string) (Shell, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "fish":
		return Fish, nil
	case "posix", "sh", "bash", "zsh", "dash", "ksh":
		return POSIX, nil
	default:
		return POSIX, fmt.Errorf("unknown shell %q (want posix or fish)", name)
	}
}

// Detect derives the shell from a login-shell path such as the SHELL variable.
// Anything that is not fish, including an empty value, is treated as POSIX.
func Detect(shellPath string) Shell {
	shellPath = strings.TrimSpace(shellPath)
	if shellPath == "" {
		return POSIX
	}
	name := filepath.Base(shellPath)
	name = strings.TrimSuffix(strings.ToLower(name), ".exe")
	if name == "fish" {
		return Fish
	}
	return POSIX
}

// JoinError reports an entry that contains the list separator and so cannot
// be joined without changing the list.
type JoinError struct {
	Entry     string
	Separator rune
}

func (e *JoinError) Error() string {
	return fmt.Sprintf("path entry %q contains the list separator %q", e.Entry, e.Separator)
}

// Join concatenates entries with sep.
func Join(entries []string, sep rune) (string, error) {
	for _, entry := range entries {
		if strings.ContainsRune(entry, sep) {
			return "", &JoinError{Entry: entry, Separator: sep}
		}
	}
	return strings.Join(entries, string(sep)), nil
}

// Generator formats assignment statements for one shell.
type Generator struct {
	Shell     Shell
	Var       string
	Separator rune
}

// NewGenerator returns a generator for the PATH variable using the platform
// list separator.
func NewGenerator(shell Shell) Generator {
	return Generator{Shell: shell, Var: "PATH", Separator: os.PathListSeparator}
}

// Command renders entries as one line without a trailing newline. Fish
// output is space separated and plain entries are always emitted bare; only
// entries fish would split or expand are single-quoted.
func (g Generator) Command(entries []string) (string, error) {
	name := g.Var
	if name == "" {
		name = "PATH"
	}
	sep := g.Separator
	if sep == 0 {
		sep = os.PathListSeparator
	}
	joined, err := Join(entries, sep)
	if err != nil {
		return "", err
	}
	if g.Shell == Fish {
		if len(entries) == 0 {
			return "set -x " + name, nil
		}
		words := make([]string, len(entries))
		for i, entry := range entries {
			words[i] = fishWord(entry)
		}
		return fmt.Sprintf("set -x %s %s", name, strings.Join(words, " ")), nil
	}
	return fmt.Sprintf("export %s=\"%s\"", name, posixEscaper.Replace(joined)), nil
}

var posixEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`, `$`, `\$`, "`", "\\`")

const fishSpecial = " \t\n'\"\\$*?~#(){}[]<>&|;%"

func fishWord(entry string) string {
	if entry != "" && !strings.ContainsAny(entry, fishSpecial) {
		return entry
	}
	escaped := strings.NewReplacer(`\`, `\\`, `'`, `\'`).Replace(entry)
	return "'" + escaped + "'"
}
