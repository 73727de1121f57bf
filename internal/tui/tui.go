// Package tui is a full-screen Bubble Tea front end over a todo store.
package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/idilsaglam/memtodo/internal/model"
	"github.com/idilsaglam/memtodo/internal/store"
	"github.com/idilsaglam/memtodo/internal/ui"
)

// Options configure the program.
type Options struct {
	Logger *log.Logger
	In     io.Reader
	Out    io.Writer
}

// todoItem adapts model.Todo to bubbles/list.Item.
type todoItem struct {
	todo model.Todo
}

func (i todoItem) FilterValue() string { return i.todo.Title }

type mode int

const (
	browsing mode = iota
	adding
	editing
)

type modelTUI struct {
	store store.Store
	log   *log.Logger
	list  list.Model

	mode     mode
	ti       textinput.Model // shared by add & edit
	editID   uint64
	inputErr string

	// single-level undo of the last delete
	undo *model.Todo

	width, height int
}

// Custom delegate to control how items render (single line)
type itemDelegate struct{}

func (d itemDelegate) Height() int                               { return 1 }
func (d itemDelegate) Spacing() int                              { return 0 }
func (d itemDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d itemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(todoItem)
	if !ok {
		return
	}
	t := ui.Current()
	title := ui.Truncate(it.todo.Title)
	if it.todo.Completed {
		title = t.Done.Render(title)
	}
	line := fmt.Sprintf("%s %s %s", t.Muted.Render(fmt.Sprintf("#%d", it.todo.ID)), ui.Box(it.todo), title)

	prefix := "  "
	if index == m.Index() {
		prefix = t.Selected.Render("> ")
	}
	fmt.Fprintln(w, prefix+line)
}

var (
	addBind    = key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add"))
	editBind   = key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit"))
	toggleBind = key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "toggle"))
	deleteBind = key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete"))
	undoBind   = key.NewBinding(key.WithKeys("u"), key.WithHelp("u", "undo"))
)

func newModel(st store.Store, logger *log.Logger) modelTUI {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	l := list.New(nil, itemDelegate{}, 0, 0)
	l.SetShowHelp(true)
	l.SetShowPagination(true)
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.Styles.Title = ui.Current().Title
	l.FilterInput.Prompt = "/ "
	l.SetStatusBarItemName("todo", "todos")
	l.DisableQuitKeybindings()

	bindings := func() []key.Binding { return []key.Binding{addBind, editBind, toggleBind, deleteBind, undoBind} }
	l.AdditionalShortHelpKeys = bindings
	l.AdditionalFullHelpKeys = bindings

	ti := textinput.New()
	ti.Prompt = "> "
	ti.CharLimit = 200

	m := modelTUI{
		store: st,
		log:   logger,
		list:  l,
		ti:    ti,
	}
	m.refresh()
	return m
}

// Run starts the program and blocks until the user quits. Every change is
// applied to st immediately.
func Run(st store.Store, opt Options) error {
	popts := []tea.ProgramOption{tea.WithAltScreen()}
	if opt.In != nil {
		popts = append(popts, tea.WithInput(opt.In))
	}
	if opt.Out != nil {
		popts = append(popts, tea.WithOutput(opt.Out))
	}
	if _, err := tea.NewProgram(newModel(st, opt.Logger), popts...).Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}

// refresh re-derives the list from the store, keeping the cursor in range.
// An applied filter is re-run in place so the visible items stay populated.
func (m *modelTUI) refresh() {
	todos := m.store.List()
	items := make([]list.Item, 0, len(todos))
	for _, t := range todos {
		items = append(items, todoItem{todo: t})
	}
	idx := m.list.Index()
	_ = m.list.SetItems(items)
	if m.list.FilterState() == list.FilterApplied {
		m.list.SetFilterText(m.list.FilterValue())
	}
	if n := len(m.list.VisibleItems()); idx >= n {
		idx = n - 1
	}
	if idx >= 0 {
		m.list.Select(idx)
	}
	m.list.Title = ui.Header(todos)
}

func (m modelTUI) selected() (model.Todo, bool) {
	it, ok := m.list.SelectedItem().(todoItem)
	if !ok {
		return model.Todo{}, false
	}
	return it.todo, true
}

// Update and View implement Bubble Tea's Model on modelTUI
func (m modelTUI) Init() tea.Cmd { return nil }

func (m modelTUI) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if ws, ok := msg.(tea.WindowSizeMsg); ok {
		m.width, m.height = ws.Width, ws.Height
		m.resize()
		return m, nil
	}
	if m.mode != browsing {
		return m.updateInput(msg)
	}

	km, ok := msg.(tea.KeyMsg)
	if !ok || m.list.FilterState() == list.Filtering {
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return m, cmd
	}

	switch km.String() {
	case "q", "esc", "ctrl+c":
		if km.String() == "esc" && m.list.FilterState() == list.FilterApplied {
			break
		}
		return m, tea.Quit
	case " ":
		if t, ok := m.selected(); ok {
			if _, err := m.store.Update(t.ID, model.Patch{}.WithCompleted(!t.Completed)); err != nil {
				m.log.Warn("toggle failed", "id", t.ID, "err", err)
			}
			m.refresh()
		}
		return m, nil
	case "d":
		if t, ok := m.selected(); ok {
			if m.store.Delete(t.ID) {
				m.undo = &t
			} else {
				m.log.Warn("delete missed", "id", t.ID)
			}
			m.refresh()
		}
		return m, nil
	case "u":
		if m.undo != nil {
			m.restore(*m.undo)
			m.undo = nil
			m.refresh()
		}
		return m, nil
	case "a":
		m.mode = adding
		m.inputErr = ""
		m.ti.SetValue("")
		m.ti.Placeholder = "New todo title..."
		m.resize()
		return m, m.ti.Focus()
	case "e":
		if t, ok := m.selected(); ok {
			m.mode = editing
			m.editID = t.ID
			m.inputErr = ""
			m.ti.SetValue(t.Title)
			m.ti.CursorEnd()
			m.ti.Placeholder = "Edit todo title..."
			m.resize()
			return m, m.ti.Focus()
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// updateInput handles keys while the inline add/edit bar is open.
func (m modelTUI) updateInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	if km, ok := msg.(tea.KeyMsg); ok {
		switch km.String() {
		case "enter":
			title := strings.TrimSpace(m.ti.Value())
			if title == "" {
				m.inputErr = "Title cannot be empty"
				return m, nil
			}
			if m.mode == adding {
				t := m.store.Create(title)
				m.refresh()
				if m.list.FilterState() == list.Unfiltered {
					m.list.Select(len(m.list.Items()) - 1)
				}
				m.log.Debug("added from tui", "id", t.ID)
			} else {
				if _, err := m.store.Update(m.editID, model.Patch{}.WithTitle(title)); err != nil {
					m.log.Warn("edit failed", "id", m.editID, "err", err)
				}
				m.refresh()
			}
			m.closeInput()
			return m, nil
		case "esc":
			m.closeInput()
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.ti, cmd = m.ti.Update(msg)
	return m, cmd
}

// restore re-creates a deleted todo. The store hands out a fresh id.
func (m *modelTUI) restore(t model.Todo) {
	created := m.store.Create(t.Title)
	if t.Completed {
		if _, err := m.store.Update(created.ID, model.Patch{}.WithCompleted(true)); err != nil {
			m.log.Warn("undo failed", "id", created.ID, "err", err)
		}
	}
	m.log.Debug("restored todo", "was", t.ID, "id", created.ID)
}

func (m *modelTUI) closeInput() {
	m.mode = browsing
	m.inputErr = ""
	m.ti.SetValue("")
	m.ti.Blur()
	m.resize()
}

func (m *modelTUI) resize() {
	if m.width == 0 || m.height == 0 {
		return
	}
	h := m.height - 4
	if m.mode != browsing {
		h -= 4
	}
	m.list.SetSize(m.width-4, max(h, 1))
}

func (m modelTUI) View() string {
	t := ui.Current()
	content := m.list.View()
	if m.mode != browsing {
		title := "Add todo"
		if m.mode == editing {
			title = fmt.Sprintf("Edit todo #%d", m.editID)
		}
		if m.inputErr != "" {
			title += " - " + t.Error.Render(m.inputErr)
		}
		bar := ui.Renderer().NewStyle().
			Border(t.Border).
			BorderForeground(t.BorderColor).
			Padding(0, 1)
		content += "\n" + bar.Render(title+"\n"+m.ti.View())
	}
	return ui.Panel([]string{content})
}
