package tasks

import "github.com/jacksmith/td/internal/model"

// Backend defines the persistence interface required by the Store.
// The concrete implementation is storage.Storage, but this interface allows
// alternative backends (in-memory, failing) for testing.
//
// Load must return a document the caller may modify freely. Save must not
// return until the document is durable.
type Backend interface {
	Load() (*model.TaskFile, error)
	Save(f *model.TaskFile) error
}
