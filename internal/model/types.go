// Package model defines the core data structures for td.
package model

import "time"

// FileVersion is the current version of the task file layout.
const FileVersion = 1

// Task is a single to-do item.
type Task struct {
	ID      string    `yaml:"id"`
	Title   string    `yaml:"title,omitempty"`
	Created time.Time `yaml:"created"`
	Updated time.Time `yaml:"updated"`
}

// TaskFile is the persisted task document.
// Tasks are kept in insertion order; NextID is never decremented so that
// identities of deleted tasks are not handed out again.
type TaskFile struct {
	Version int    `yaml:"version"`
	NextID  int    `yaml:"next_id"`
	Tasks   []Task `yaml:"tasks,omitempty"`
}

// NewTaskFile returns an empty task file.
func NewTaskFile() *TaskFile {
	return &TaskFile{Version: FileVersion, NextID: 1}
}

// IndexOf returns the position of the task with the given ID, or -1.
// IDs are compared by number, so "T-7", "t-07" and "T-007" are the same task.
func (f *TaskFile) IndexOf(id string) int {
	num, err := ParseTaskID(id)
	if err != nil {
		return -1
	}
	for i := range f.Tasks {
		if ExtractNumber(f.Tasks[i].ID) == num {
			return i
		}
	}
	return -1
}

// Clone returns a deep copy of the file.
func (f *TaskFile) Clone() *TaskFile {
	c := *f
	if f.Tasks != nil {
		c.Tasks = make([]Task, len(f.Tasks))
		copy(c.Tasks, f.Tasks)
	}
	return &c
}
