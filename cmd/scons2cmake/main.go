package main

// main.go — scons2cmake CLI.
//
// One positional argument: the SCons project root. When it is omitted and
// stdin is a terminal, the root is asked for interactively. Exit status: 0 on
// success (individual library/module warnings included), 2 on usage errors,
// 1 on a fatal run error such as an unreadable SConstruct.

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/spf13/afero"

	"scons2cmake/internal/convert"
)

func usage(fs *flag.FlagSet, w io.Writer) func() {
	return func() {
		fmt.Fprint(w, `scons2cmake — regenerate a CMake project from a SCons build tree.

Usage:
  scons2cmake [options] <project-root>

Arguments:
  <project-root>
    Directory containing the SConstruct file. Asked for interactively
    when omitted on a terminal.

Options:
`)
		fs.PrintDefaults()
	}
}

// run parses args, executes the conversion, and returns the process exit
// code. stderr carries both human-facing messages and structured logs.
func run(args []string, stderr io.Writer) int {
	flagSet := flag.NewFlagSet("scons2cmake", flag.ContinueOnError)
	flagSet.SetOutput(stderr)
	flagSet.Usage = usage(flagSet, stderr)

	dryRun := flagSet.Bool("dry-run", false, "Render everything but write nothing; list would-be files.")
	logLevel := flagSet.String("log-level", "info", "Logging level: 'debug', 'info', 'warn' or 'error'.")
	logFormat := flagSet.String("log-format", "text", "Log output format: 'text' or 'json'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}

	root := flagSet.Arg(0)
	switch {
	case flagSet.NArg() > 1:
		fmt.Fprintln(stderr, color.RedString("error:"), "too many arguments")
		flagSet.Usage()
		return 2
	case root == "":
		if !isatty.IsTerminal(os.Stdin.Fd()) {
			fmt.Fprintln(stderr, color.RedString("error:"), "missing project root argument")
			flagSet.Usage()
			return 2
		}
		var err error
		root, err = promptRoot()
		if err != nil || root == "" {
			fmt.Fprintln(stderr, color.RedString("error:"), "no project root given")
			return 2
		}
	}

	info, err := os.Stat(root)
	if err != nil || !info.IsDir() {
		fmt.Fprintln(stderr, color.RedString("error:"), root, "is not a directory")
		return 2
	}

	logger := newLogger(*logLevel, *logFormat, stderr)
	opts := convert.Options{DryRun: *dryRun}
	if err := convert.Run(context.Background(), afero.NewOsFs(), root, opts, logger); err != nil {
		fmt.Fprintln(stderr, color.RedString("error:"), err)
		return 1
	}
	fmt.Fprintln(stderr, color.GreenString("done."), "CMake files have been generated.")
	return 0
}

// newLogger builds a slog.Logger writing to w at the requested level and
// format. Unknown levels fall back to info.
func newLogger(levelStr, formatStr string, w io.Writer) *slog.Logger {
	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	handlerOpts := &slog.HandlerOptions{Level: level}
	if formatStr == "json" {
		return slog.New(slog.NewJSONHandler(w, handlerOpts))
	}
	return slog.New(slog.NewTextHandler(w, handlerOpts))
}

// ---------------------------------------------------------------------------
// Interactive prompt
// ---------------------------------------------------------------------------

// promptModel is a bubbletea model that asks for the project root path.
type promptModel struct {
	input textinput.Model
	done  bool
}

func newPromptModel() promptModel {
	ti := textinput.New()
	ti.Placeholder = "path to SCons project root"
	ti.CharLimit = 512
	ti.Focus()
	return promptModel{input: ti}
}

func (m promptModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m promptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyEnter:
			m.done = true
			return m, tea.Quit
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m promptModel) View() string {
	if m.done {
		return ""
	}
	return fmt.Sprintf("Project root: %s\n", m.input.View())
}

// promptRoot runs the TUI and returns the entered path.
func promptRoot() (string, error) {
	p := tea.NewProgram(newPromptModel())
	result, err := p.Run()
	if err != nil {
		return "", err
	}
	final, ok := result.(promptModel)
	if !ok || !final.done {
		return "", fmt.Errorf("prompt cancelled")
	}
	return strings.TrimSpace(final.input.Value()), nil
}

func main() {
	os.Exit(run(os.Args[1:], os.Stderr))
}
