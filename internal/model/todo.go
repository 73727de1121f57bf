package model

import "fmt"

// Todo is the domain model for a single task record.
type Todo struct {
	ID        uint64 `json:"id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}

// String renders all three fields, e.g. {id: 1, title: "Buy milk", completed: false}.
func (t Todo) String() string {
	return fmt.Sprintf("{id: %d, title: %q, completed: %t}", t.ID, t.Title, t.Completed)
}

// Patch carries the optional fields of an update. A nil field is left unchanged.
type Patch struct {
	Title     *string
	Completed *bool
}

// Empty reports whether the patch changes nothing.
func (p Patch) Empty() bool { return p.Title == nil && p.Completed == nil }

// WithTitle returns a copy of p that replaces the title.
func (p Patch) WithTitle(title string) Patch {
	p.Title = &title
	return p
}

// WithCompleted returns a copy of p that replaces the completed flag.
func (p Patch) WithCompleted(done bool) Patch {
	p.Completed = &done
	return p
}
