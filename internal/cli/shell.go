package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/idilsaglam/memtodo/internal/model"
	"github.com/idilsaglam/memtodo/internal/store"
	"github.com/idilsaglam/memtodo/internal/ui"
)

// Menu is printed before every choice.
const Menu = "Choose an action: [1] Create [2] Read [3] Update [4] Delete [5] List [6] Exit"

// Prompts for the per-choice fields.
const (
	promptTitle    = "Enter the title of the todo: "
	promptReadID   = "Enter the ID of the todo to read: "
	promptUpdateID = "Enter the ID of the todo to update: "
	promptNewTitle = "Enter the new title (leave blank to keep the same): "
	promptDone     = "Enter the new completed status (true/false, leave blank to keep the same): "
	promptDeleteID = "Enter the ID of the todo to delete: "
)

// ShellOptions tune the interactive loop.
type ShellOptions struct {
	Strict bool // abort on malformed input instead of re-prompting
	Group  bool // list grouped by pending/done
	Logger *log.Logger
}

// Shell is the line-oriented menu loop over a Store.
type Shell struct {
	store  store.Store
	in     *bufio.Reader
	out    io.Writer
	log    *log.Logger
	strict bool
	group  bool
}

// NewShell wires a shell to a store and a pair of streams.
func NewShell(st store.Store, in io.Reader, out io.Writer, opt ShellOptions) *Shell {
	logger := opt.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Shell{
		store:  st,
		in:     bufio.NewReader(in),
		out:    out,
		log:    logger,
		strict: opt.Strict,
		group:  opt.Group,
	}
}

// Run loops until Exit is chosen or the input ends. It returns an error only
// for read failures, or for malformed input in strict mode.
func (s *Shell) Run() error {
	for {
		fmt.Fprintln(s.out, Menu)
		choice, err := s.readLine()
		if err != nil {
			return s.finish(err)
		}

		switch choice {
		case "1":
			err = s.create()
		case "2":
			err = s.read()
		case "3":
			err = s.update()
		case "4":
			err = s.remove()
		case "5":
			fmt.Fprintln(s.out, ui.ListPanel(s.store.List(), s.group))
		case "6":
			s.log.Debug("exit chosen")
			return nil
		default:
			s.log.Debug("unrecognized menu choice", "input", choice)
			ui.Fail(s.out, "Invalid option")
		}
		if err != nil {
			return s.finish(err)
		}
	}
}

func (s *Shell) finish(err error) error {
	if errors.Is(err, io.EOF) {
		s.log.Debug("input closed, leaving shell")
		return nil
	}
	return err
}

// -------------- menu actions ----------------

func (s *Shell) create() error {
	title, err := s.prompt(promptTitle)
	if err != nil {
		return err
	}
	t := s.store.Create(title)
	ui.OK(s.out, "Created todo: "+t.String())
	return nil
}

func (s *Shell) read() error {
	id, err := s.promptID(promptReadID)
	if err != nil {
		return err
	}
	t, err := s.store.Read(id)
	if err != nil {
		return s.notFound(err)
	}
	fmt.Fprintln(s.out, "Todo: "+t.String())
	return nil
}

func (s *Shell) update() error {
	id, err := s.promptID(promptUpdateID)
	if err != nil {
		return err
	}

	var p model.Patch
	title, err := s.prompt(promptNewTitle)
	if err != nil {
		return err
	}
	if title != "" {
		p = p.WithTitle(title)
	}
	done, err := s.promptCompleted()
	if err != nil {
		return err
	}
	p.Completed = done

	t, err := s.store.Update(id, p)
	if err != nil {
		return s.notFound(err)
	}
	ui.OK(s.out, "Updated todo: "+t.String())
	return nil
}

func (s *Shell) remove() error {
	id, err := s.promptID(promptDeleteID)
	if err != nil {
		return err
	}
	if !s.store.Delete(id) {
		ui.Fail(s.out, "Todo not found")
		return nil
	}
	ui.OK(s.out, "Deleted todo")
	return nil
}

// notFound reports a lookup miss and swallows it; anything else is returned.
func (s *Shell) notFound(err error) error {
	if !errors.Is(err, store.ErrNotFound) {
		return err
	}
	s.log.Debug("lookup miss", "err", err)
	ui.Fail(s.out, "Todo not found")
	return nil
}

// -------------- input helpers ----------------

func (s *Shell) readLine() (string, error) {
	line, err := s.in.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("read input: %w", err)
		}
		if line == "" {
			return "", io.EOF
		}
	}
	return strings.TrimSpace(line), nil
}

func (s *Shell) prompt(label string) (string, error) {
	fmt.Fprint(s.out, label)
	return s.readLine()
}

// promptID re-prompts until a valid id arrives, unless strict.
func (s *Shell) promptID(label string) (uint64, error) {
	for {
		line, err := s.prompt(label)
		if err != nil {
			return 0, err
		}
		id, err := ParseID(line)
		if err == nil {
			return id, nil
		}
		if err := s.malformed(err); err != nil {
			return 0, err
		}
	}
}

// promptCompleted returns nil for a blank answer.
func (s *Shell) promptCompleted() (*bool, error) {
	for {
		line, err := s.prompt(promptDone)
		if err != nil {
			return nil, err
		}
		if line == "" {
			return nil, nil
		}
		done, err := ParseCompleted(line)
		if err == nil {
			return &done, nil
		}
		if err := s.malformed(err); err != nil {
			return nil, err
		}
	}
}

func (s *Shell) malformed(err error) error {
	if s.strict {
		return err
	}
	s.log.Debug("re-prompting", "err", err)
	ui.Fail(s.out, strings.TrimPrefix(err.Error(), ErrMalformedInput.Error()+": "))
	return nil
}
