package memstore

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/idilsaglam/memtodo/internal/model"
	"github.com/idilsaglam/memtodo/internal/store"
)

// In-memory storage. Insertion-ordered slice, linear lookup.
// No locking; a List is owned by exactly one front end.

// ErrNotFound is returned when no todo carries the requested id.
var ErrNotFound = store.ErrNotFound

var _ store.Store = (*List)(nil)

// IDPolicy decides how ids are allocated on Create.
type IDPolicy int

const (
	// Monotonic hands out 1, 2, 3, ... and never reuses an id, even after deletes.
	Monotonic IDPolicy = iota
	// CountBased uses len(todos)+1 at insertion time. Ids can collide after a delete.
	CountBased
)

func (p IDPolicy) String() string {
	switch p {
	case Monotonic:
		return "monotonic"
	case CountBased:
		return "count"
	}
	return fmt.Sprintf("IDPolicy(%d)", int(p))
}

// ParseIDPolicy maps a config value to an IDPolicy.
func ParseIDPolicy(s string) (IDPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "monotonic":
		return Monotonic, nil
	case "count", "count-based":
		return CountBased, nil
	}
	return Monotonic, fmt.Errorf("unknown id policy %q (want monotonic or count)", s)
}

// List is the todo store.
type List struct {
	todos  []model.Todo
	last   uint64
	policy IDPolicy
	log    *log.Logger
}

// Option configures a List.
type Option func(*List)

// WithIDPolicy selects the id allocation policy.
func WithIDPolicy(p IDPolicy) Option {
	return func(l *List) { l.policy = p }
}

// WithLogger attaches a logger; mutations are logged at debug level.
func WithLogger(logger *log.Logger) Option {
	return func(l *List) {
		if logger != nil {
			l.log = logger
		}
	}
}

// New returns an empty List.
func New(opts ...Option) *List {
	l := &List{
		todos: []model.Todo{},
		log:   log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Policy reports the id allocation policy in use.
func (l *List) Policy() IDPolicy { return l.policy }

// Len returns the number of stored todos.
func (l *List) Len() int { return len(l.todos) }

// Create appends a new, not yet completed todo. Empty titles are accepted.
func (l *List) Create(title string) model.Todo {
	t := model.Todo{ID: l.nextID(), Title: title}
	l.todos = append(l.todos, t)
	l.log.Debug("created todo", "id", t.ID, "title", t.Title)
	return t
}

func (l *List) nextID() uint64 {
	if l.policy == CountBased {
		return uint64(len(l.todos)) + 1
	}
	l.last++
	return l.last
}

// Read returns the first todo with the given id.
func (l *List) Read(id uint64) (model.Todo, error) {
	i := l.index(id)
	if i < 0 {
		return model.Todo{}, fmt.Errorf("read %d: %w", id, ErrNotFound)
	}
	return l.todos[i], nil
}

// Update applies the non-nil fields of p in place and returns the result.
// An empty patch is valid and returns the todo unchanged.
func (l *List) Update(id uint64, p model.Patch) (model.Todo, error) {
	i := l.index(id)
	if i < 0 {
		return model.Todo{}, fmt.Errorf("update %d: %w", id, ErrNotFound)
	}
	t := &l.todos[i]
	if p.Title != nil {
		t.Title = *p.Title
	}
	if p.Completed != nil {
		t.Completed = *p.Completed
	}
	l.log.Debug("updated todo", "id", t.ID, "title", t.Title, "completed", t.Completed)
	return *t, nil
}

// Delete removes the todo with the given id, keeping the order of the rest.
// It reports whether anything was removed.
func (l *List) Delete(id uint64) bool {
	i := l.index(id)
	if i < 0 {
		return false
	}
	l.todos = append(l.todos[:i], l.todos[i+1:]...)
	l.log.Debug("deleted todo", "id", id)
	return true
}

// List returns a copy of all todos in sequence order.
func (l *List) List() []model.Todo {
	out := make([]model.Todo, len(l.todos))
	copy(out, l.todos)
	return out
}

func (l *List) index(id uint64) int {
	for i := range l.todos {
		if l.todos[i].ID == id {
			return i
		}
	}
	return -1
}
