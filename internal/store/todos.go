package store

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Todo is the domain model for a todo entry. ID is the sole identity
// key; ID, Title and CreatedAt never change after creation.
type Todo struct {
	ID        string
	Title     string
	Done      bool
	CreatedAt time.Time
}

// PrepareAddTodo builds the AddTodo payload for a title. The title is
// trimmed; an empty-after-trim title yields ok == false and no action
// is produced (the add is silently dropped, not an error). The id and
// timestamp are generated here, exactly once per logical add, so the
// reducer never touches a clock or id source.
func PrepareAddTodo(title string) (AddTodo, bool) {
	title = strings.TrimSpace(title)
	if title == "" {
		return AddTodo{}, false
	}
	return AddTodo{
		ID:        uuid.NewString(),
		Title:     title,
		CreatedAt: time.Now(),
	}, true
}

// reduceTodos handles the todo-list slice. New items are prepended
// (most recent first). Lookups are linear scans; the list is expected
// to stay small.
func reduceTodos(items []Todo, a Action) []Todo {
	switch a := a.(type) {
	case AddTodo:
		next := make([]Todo, 0, len(items)+1)
		next = append(next, Todo{ID: a.ID, Title: a.Title, CreatedAt: a.CreatedAt})
		return append(next, items...)

	case ToggleTodo:
		for i, it := range items {
			if it.ID != a.ID {
				continue
			}
			next := append([]Todo(nil), items...)
			next[i].Done = !next[i].Done
			return next
		}
		return items

	case RemoveTodo:
		for i, it := range items {
			if it.ID != a.ID {
				continue
			}
			next := append([]Todo(nil), items[:i]...)
			return append(next, items[i+1:]...)
		}
		return items

	case ClearTodos:
		return nil
	}
	return items
}
