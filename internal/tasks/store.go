// Package tasks implements the task store: the single authority over task
// persistence, and the caller-side snapshot used to present it.
package tasks

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/jacksmith/td/internal/model"
)

// Store provides create, read, update and delete over persisted tasks.
//
// Every mutation loads the current document, applies the change to that
// copy and saves it before returning. A Store is meant to be used from one
// goroutine; it holds no lock.
type Store struct {
	backend   Backend
	logger    *slog.Logger
	now       func() time.Time
	observers observers
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger for the store.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithClock sets the time source used for task timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

// New returns a Store over the given backend.
func New(backend Backend, opts ...Option) *Store {
	s := &Store{
		backend: backend,
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ValidateTitle checks that a task title is valid UTF-8 and not empty or
// whitespace-only.
func ValidateTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return ErrEmptyTitle
	}
	if !utf8.ValidString(title) {
		return ErrInvalidTitle
	}
	return nil
}

// FetchAll returns every task in store order.
func (s *Store) FetchAll() ([]model.Task, error) {
	f, err := s.load()
	if err != nil {
		return nil, err
	}
	return f.Tasks, nil
}

// Get returns the task with the given ID.
func (s *Store) Get(id string) (*model.Task, error) {
	f, err := s.load()
	if err != nil {
		return nil, err
	}
	i := f.IndexOf(id)
	if i < 0 {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	task := f.Tasks[i]
	return &task, nil
}

// Create appends a new task with the given title.
func (s *Store) Create(title string) (*model.Task, error) {
	if err := ValidateTitle(title); err != nil {
		return nil, err
	}

	f, err := s.load()
	if err != nil {
		return nil, err
	}

	now := s.timestamp()
	task := model.Task{
		ID:      model.FormatTaskID(f.NextID),
		Title:   title,
		Created: now,
		Updated: now,
	}
	f.Tasks = append(f.Tasks, task)
	f.NextID++

	if err := s.commit(f, "create", task.ID); err != nil {
		return nil, err
	}

	s.logger.Info("task created", "id", task.ID)
	s.observers.notify()
	return &task, nil
}

// Update replaces the title of an existing task in place.
func (s *Store) Update(id, title string) (*model.Task, error) {
	if err := ValidateTitle(title); err != nil {
		return nil, err
	}

	f, err := s.load()
	if err != nil {
		return nil, err
	}

	i := f.IndexOf(id)
	if i < 0 {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}

	f.Tasks[i].Title = title
	f.Tasks[i].Updated = s.timestamp()
	task := f.Tasks[i]

	if err := s.commit(f, "update", task.ID); err != nil {
		return nil, err
	}

	s.logger.Info("task updated", "id", task.ID)
	s.observers.notify()
	return &task, nil
}

// Delete removes a task. Deleting a task that does not exist is a no-op.
func (s *Store) Delete(id string) error {
	f, err := s.load()
	if err != nil {
		return err
	}

	i := f.IndexOf(id)
	if i < 0 {
		s.logger.Debug("delete of absent task ignored", "id", id)
		return nil
	}

	removed := f.Tasks[i].ID
	f.Tasks = append(f.Tasks[:i], f.Tasks[i+1:]...)

	if err := s.commit(f, "delete", removed); err != nil {
		return err
	}

	s.logger.Info("task deleted", "id", removed)
	s.observers.notify()
	return nil
}

// timestamp returns the current time at the precision the task file keeps,
// so a returned task equals the same task read back later.
func (s *Store) timestamp() time.Time {
	return s.now().UTC().Truncate(time.Second)
}

// Subscribe registers an observer for change notifications and returns a
// function that cancels the subscription.
func (s *Store) Subscribe(o Observer) (cancel func()) {
	id := s.observers.add(o)
	return func() { s.observers.remove(id) }
}

// Notify tells every observer that the task list changed outside this
// store, e.g. another process wrote the task file.
func (s *Store) Notify() {
	s.observers.notify()
}

func (s *Store) load() (*model.TaskFile, error) {
	f, err := s.backend.Load()
	if err != nil {
		s.logger.Error("failed to load tasks", "error", err)
		return nil, fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}
	return f, nil
}

func (s *Store) commit(f *model.TaskFile, op, id string) error {
	if err := s.backend.Save(f); err != nil {
		s.logger.Error("failed to commit", "op", op, "id", id, "error", err)
		return fmt.Errorf("%w: %s %s: %w", ErrPersistenceWriteFailed, op, id, err)
	}
	return nil
}
