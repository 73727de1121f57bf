package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/idilsaglam/memtodo/internal/store"
	"github.com/idilsaglam/memtodo/internal/store/memstore"
	"github.com/idilsaglam/memtodo/internal/tui"
	"github.com/idilsaglam/memtodo/internal/ui"
)

// Exit codes returned by Run.
const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 2
)

// Options carry the resolved config and the process streams into Run.
type Options struct {
	Group     bool   // list grouped by pending/done
	Strict    bool   // abort on malformed input
	Interface string // subcommand used when args is empty
	Version   string

	Store  store.Store
	Logger *log.Logger
	In     io.Reader
	Out    io.Writer
	Err    io.Writer
}

func (o *Options) defaults() {
	if o.Interface == "" {
		o.Interface = "shell"
	}
	if o.In == nil {
		o.In = os.Stdin
	}
	if o.Out == nil {
		o.Out = os.Stdout
	}
	if o.Err == nil {
		o.Err = os.Stderr
	}
	if o.Logger == nil {
		o.Logger = log.New(io.Discard)
	}
	if o.Store == nil {
		o.Store = memstore.New(memstore.WithLogger(o.Logger))
	}
}

// Run dispatches subcommands and returns an exit code (0 ok, 1 error, 2 usage).
func Run(args []string, opt Options) int {
	opt.defaults()
	ui.SetOutput(opt.Out)

	cmd := opt.Interface
	if len(args) > 0 {
		cmd, args = args[0], args[1:]
	}

	switch cmd {
	case "help", "-h", "--help":
		PrintHelp(opt.Out)
		return ExitOK

	case "version":
		fmt.Fprintln(opt.Out, "todo "+opt.Version)
		return ExitOK

	case "shell":
		if len(args) != 0 {
			ui.Fail(opt.Err, "usage: todo shell")
			return ExitUsage
		}
		sh := NewShell(opt.Store, opt.In, opt.Out, ShellOptions{
			Strict: opt.Strict,
			Group:  opt.Group,
			Logger: opt.Logger,
		})
		if err := sh.Run(); err != nil {
			ui.Fail(opt.Err, err.Error())
			return ExitError
		}
		return ExitOK

	case "tui":
		if len(args) != 0 {
			ui.Fail(opt.Err, "usage: todo tui")
			return ExitUsage
		}
		err := tui.Run(opt.Store, tui.Options{
			Logger: opt.Logger,
			In:     opt.In,
			Out:    opt.Out,
		})
		if err != nil {
			ui.Fail(opt.Err, err.Error())
			return ExitError
		}
		return ExitOK
	}

	ui.Fail(opt.Err, "unknown subcommand: "+cmd)
	fmt.Fprintln(opt.Err)
	PrintHelp(opt.Err)
	return ExitUsage
}

func PrintHelp(w io.Writer) {
	fmt.Fprint(w, `todo - an in-memory todo list

Usage:
  todo [flags] [subcommand]

Subcommands:
  shell      Numbered menu over stdin/stdout (default)
  tui        Full-screen list (a add, e edit, space toggle, d delete, q quit)
  version    Print the version
  help       Show this help

Flags:
  -config <path>       Config file (default ./tada.toml, then user config dir)
  -theme <name>        classic, neon or mono
  -id-policy <name>    monotonic (never reuse ids) or count (len+1)
  -strict              Abort on malformed numbers/booleans instead of re-prompting
  -group               Group the list by pending/done
  -log-level <level>   debug, info, warn, error (logs go to stderr)

Nothing is persisted: the list lives for the duration of the process.
`)
}
