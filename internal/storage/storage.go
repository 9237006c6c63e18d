// Package storage provides file system operations for .td/ directories.
package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jacksmith/td/internal/model"
	"gopkg.in/yaml.v3"
)

const (
	// tdDir is the name of the td directory.
	tdDir = ".td"
	// tasksFile is the task document within .td/.
	tasksFile = "tasks.yaml"
	// configFile is the name of the config file within .td/.
	configFile = "config.yaml"
)

// CeilingEnv names an environment variable holding a directory above which
// Find does not look for .td/.
const CeilingEnv = "TD_CEILING_DIR"

// ErrNotInitialized is returned when no .td/ directory can be found.
var ErrNotInitialized = errors.New(".td/ directory not found (run `td init`)")

// StorageConfig contains settings stored in .td/config.yaml.
type StorageConfig struct {
	Version int `yaml:"version"`
}

// Storage provides access to a .td/ directory.
type Storage struct {
	root string // path to directory containing .td/
}

// Open returns a Storage for the given directory.
// Returns error if .td/ does not exist.
func Open(dir string) (*Storage, error) {
	tdPath := filepath.Join(dir, tdDir)
	info, err := os.Stat(tdPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w in %s", ErrNotInitialized, dir)
		}
		return nil, fmt.Errorf("failed to access .td/: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf(".td is not a directory")
	}

	return &Storage{root: dir}, nil
}

// Find opens the nearest .td/ directory in dir or one of its parents.
func Find(dir string) (*Storage, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %s: %w", dir, err)
	}

	ceiling := ""
	if c := os.Getenv(CeilingEnv); c != "" {
		if ceiling, err = filepath.Abs(c); err != nil {
			return nil, fmt.Errorf("failed to resolve %s: %w", CeilingEnv, err)
		}
	}

	for cur := abs; ; {
		if info, err := os.Stat(filepath.Join(cur, tdDir)); err == nil && info.IsDir() {
			return &Storage{root: cur}, nil
		}
		parent := filepath.Dir(cur)
		if parent == cur || cur == ceiling {
			return nil, fmt.Errorf("%w in %s or any parent directory", ErrNotInitialized, abs)
		}
		cur = parent
	}
}

// Init creates .td/ directory with an empty task file.
// Returns error if .td/ already exists.
func Init(dir string) (*Storage, error) {
	tdPath := filepath.Join(dir, tdDir)

	if _, err := os.Stat(tdPath); err == nil {
		return nil, fmt.Errorf(".td/ directory already exists in %s", dir)
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to check for .td/: %w", err)
	}

	if err := os.MkdirAll(tdPath, 0755); err != nil {
		return nil, fmt.Errorf("failed to create .td/: %w", err)
	}

	cfgData, err := yaml.Marshal(&StorageConfig{Version: model.FileVersion})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(filepath.Join(tdPath, configFile), cfgData, 0644); err != nil {
		os.RemoveAll(tdPath)
		return nil, fmt.Errorf("failed to write config.yaml: %w", err)
	}

	s := &Storage{root: dir}
	if err := s.Save(model.NewTaskFile()); err != nil {
		// Clean up on failure
		os.RemoveAll(tdPath)
		return nil, fmt.Errorf("failed to create task file: %w", err)
	}

	return s, nil
}

// Root returns the root directory containing .td/.
func (s *Storage) Root() string {
	return s.root
}

// TdPath returns the path to the .td/ directory.
func (s *Storage) TdPath() string {
	return filepath.Join(s.root, tdDir)
}

// TasksPath returns the path to the task file.
func (s *Storage) TasksPath() string {
	return filepath.Join(s.root, tdDir, tasksFile)
}

// Load reads the task file.
// A missing task file inside an existing .td/ reads as an empty list.
func (s *Storage) Load() (*model.TaskFile, error) {
	data, err := os.ReadFile(s.TasksPath())
	if err != nil {
		if os.IsNotExist(err) {
			if _, statErr := os.Stat(s.TdPath()); statErr == nil {
				return model.NewTaskFile(), nil
			}
		}
		return nil, fmt.Errorf("failed to read task file: %w", err)
	}

	return model.Decode(data)
}

// Save replaces the task file. The write is atomic and synced to disk
// before Save returns.
func (s *Storage) Save(f *model.TaskFile) error {
	data, err := model.Encode(f)
	if err != nil {
		return err
	}
	if err := writeFileAtomic(s.TasksPath(), data, 0644); err != nil {
		return fmt.Errorf("failed to write task file: %w", err)
	}
	return nil
}
