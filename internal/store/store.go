// Package store defines the call contract every front end uses against the
// todo collection. Implementations live in subpackages.
package store

import (
	"errors"

	"github.com/idilsaglam/memtodo/internal/model"
)

// ErrNotFound is returned by Read and Update when no todo has the id.
var ErrNotFound = errors.New("todo not found")

// Store is the todo collection: create, read, update, delete, list.
type Store interface {
	Create(title string) model.Todo
	Read(id uint64) (model.Todo, error)
	Update(id uint64, p model.Patch) (model.Todo, error)
	Delete(id uint64) bool
	List() []model.Todo
}
