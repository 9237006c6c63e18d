package tasks

import (
	"errors"
	"fmt"

	"github.com/jacksmith/td/internal/model"
)

// List is a caller-side snapshot of the store: the ordered tasks from the
// last Reload, patched after each successful mutation made through it.
// Positions are 0-based and only meaningful against the current snapshot.
//
// Patches are applied by ID, so a List that is also subscribed to its own
// store (and therefore reloaded during the mutation) stays consistent.
type List struct {
	store *Store
	tasks []model.Task
}

// NewList returns an empty List over store. Call Reload to populate it.
func NewList(store *Store) *List {
	return &List{store: store}
}

// Reload replaces the snapshot with the store's current tasks.
// On failure the previous snapshot is kept.
func (l *List) Reload() error {
	tasks, err := l.store.FetchAll()
	if err != nil {
		return err
	}
	l.tasks = tasks
	return nil
}

// ReloadData implements Observer.
func (l *List) ReloadData() {
	if err := l.Reload(); err != nil {
		l.store.logger.Warn("reload failed, keeping previous list", "error", err)
	}
}

// Tasks returns a copy of the snapshot.
func (l *List) Tasks() []model.Task {
	out := make([]model.Task, len(l.tasks))
	copy(out, l.tasks)
	return out
}

// Len returns the number of tasks in the snapshot.
func (l *List) Len() int {
	return len(l.tasks)
}

// IDAt returns the ID of the task at pos.
func (l *List) IDAt(pos int) (string, error) {
	if pos < 0 || pos >= len(l.tasks) {
		return "", fmt.Errorf("%w: %d (list has %d tasks)", ErrPositionOutOfRange, pos+1, len(l.tasks))
	}
	return l.tasks[pos].ID, nil
}

// PositionOf returns the position of the task with the given ID, or -1.
func (l *List) PositionOf(id string) int {
	num, err := model.ParseTaskID(id)
	if err != nil {
		return -1
	}
	for i := range l.tasks {
		if model.ExtractNumber(l.tasks[i].ID) == num {
			return i
		}
	}
	return -1
}

// Add creates a task and appends it to the snapshot.
// An empty title is discarded: nothing is created and Add returns nil, nil.
func (l *List) Add(title string) (*model.Task, error) {
	task, err := l.store.Create(title)
	if errors.Is(err, ErrEmptyTitle) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if l.PositionOf(task.ID) < 0 {
		l.tasks = append(l.tasks, *task)
	}
	return task, nil
}

// EditAt replaces the title of the task at pos.
// An empty title is discarded: nothing changes and EditAt returns nil, nil.
func (l *List) EditAt(pos int, title string) (*model.Task, error) {
	if ValidateTitle(title) != nil {
		return nil, nil
	}
	id, err := l.IDAt(pos)
	if err != nil {
		return nil, err
	}
	task, err := l.store.Update(id, title)
	if err != nil {
		return nil, err
	}
	if i := l.PositionOf(task.ID); i >= 0 {
		l.tasks[i] = *task
	}
	return task, nil
}

// DeleteAt deletes the task at pos and removes it from the snapshot.
func (l *List) DeleteAt(pos int) error {
	id, err := l.IDAt(pos)
	if err != nil {
		return err
	}
	if err := l.store.Delete(id); err != nil {
		return err
	}
	if i := l.PositionOf(id); i >= 0 {
		l.tasks = append(l.tasks[:i], l.tasks[i+1:]...)
	}
	return nil
}
