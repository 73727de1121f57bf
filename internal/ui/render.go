package ui

import (
	"fmt"

	"github.com/idilsaglam/memtodo/internal/model"
)

const maxTitle = 80

// Stats counts completed and pending todos.
func Stats(todos []model.Todo) (done, pending int) {
	for _, t := range todos {
		if t.Completed {
			done++
		} else {
			pending++
		}
	}
	return
}

// Header renders the "Todos ✔ n • n Total n" line.
func Header(todos []model.Todo) string {
	t := current
	d, p := Stats(todos)
	return fmt.Sprintf("%s  %s %d  %s %d  %s %d",
		t.Title.Render("Todos"),
		t.Success.Render(t.SymDone), d,
		t.Pending.Render(t.SymPending), p,
		t.Accent.Render("Total"), len(todos),
	)
}

// Box returns the themed checkbox for a todo.
func Box(t model.Todo) string {
	if t.Completed {
		return current.Success.Render(current.BoxChecked)
	}
	return current.Muted.Render(current.BoxUnchecked)
}

// Truncate shortens long titles for single-line display.
func Truncate(title string) string {
	r := []rune(title)
	if len(r) > maxTitle {
		return string(r[:maxTitle-3]) + "..."
	}
	return title
}

// TodoLine renders "#id box title".
func TodoLine(t model.Todo) string {
	return fmt.Sprintf("%s %s %s", current.Muted.Render(fmt.Sprintf("#%d", t.ID)), Box(t), Truncate(t.Title))
}

// FlatLines renders todos in sequence order.
func FlatLines(todos []model.Todo) []string {
	if len(todos) == 0 {
		return []string{current.Muted.Render("(no todos)")}
	}
	out := make([]string, 0, len(todos))
	for _, t := range todos {
		out = append(out, TodoLine(t))
	}
	return out
}

// GroupLines renders pending todos, then completed ones.
func GroupLines(todos []model.Todo) []string {
	var pend, done []model.Todo
	for _, t := range todos {
		if t.Completed {
			done = append(done, t)
		} else {
			pend = append(pend, t)
		}
	}
	section := func(title string, items []model.Todo) []string {
		lines := []string{current.Accent.Render(title)}
		if len(items) == 0 {
			return append(lines, current.Muted.Render("(none)"))
		}
		return append(lines, FlatLines(items)...)
	}
	lines := section("Pending", pend)
	lines = append(lines, "")
	return append(lines, section("Done", done)...)
}

// ListPanel renders the full list view: header, progress bar, items.
func ListPanel(todos []model.Todo, group bool) string {
	d, p := Stats(todos)
	lines := []string{
		Header(todos),
		current.Muted.Render(ProgressBar(d, d+p, 28)),
		"",
	}
	if group {
		lines = append(lines, GroupLines(todos)...)
	} else {
		lines = append(lines, FlatLines(todos)...)
	}
	return Panel(lines)
}
