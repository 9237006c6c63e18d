// Package testutil provides testing utilities.
package testutil

import (
	"errors"
	"sync"

	"github.com/jacksmith/td/internal/model"
)

// ErrInjected is the default error returned by injected failures.
var ErrInjected = errors.New("injected failure")

// MemBackend is an in-memory implementation of tasks.Backend for testing.
type MemBackend struct {
	mu   sync.Mutex
	file *model.TaskFile

	// Error injection for testing
	LoadErr error
	SaveErr error

	// Saves counts successful saves.
	Saves int
}

// NewMemBackend creates an empty MemBackend.
func NewMemBackend() *MemBackend {
	return &MemBackend{file: model.NewTaskFile()}
}

// Load returns a copy of the stored document.
func (b *MemBackend) Load() (*model.TaskFile, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.LoadErr != nil {
		return nil, b.LoadErr
	}
	return b.file.Clone(), nil
}

// Save stores a copy of f.
func (b *MemBackend) Save(f *model.TaskFile) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.SaveErr != nil {
		return b.SaveErr
	}
	b.file = f.Clone()
	b.Saves++
	return nil
}

// Titles returns the stored titles in order.
func (b *MemBackend) Titles() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	titles := make([]string, 0, len(b.file.Tasks))
	for _, t := range b.file.Tasks {
		titles = append(titles, t.Title)
	}
	return titles
}

// Put replaces the stored document, as if another writer had changed it.
func (b *MemBackend) Put(f *model.TaskFile) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.file = f.Clone()
}

// FailLoad makes subsequent loads fail with ErrInjected.
func (b *MemBackend) FailLoad() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.LoadErr = ErrInjected
}

// FailSave makes subsequent saves fail with ErrInjected.
func (b *MemBackend) FailSave() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.SaveErr = ErrInjected
}

// Recover clears injected failures.
func (b *MemBackend) Recover() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.LoadErr = nil
	b.SaveErr = nil
}
