package storage

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/jacksmith/td/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit(t *testing.T) {
	t.Run("init in empty directory creates .td structure", func(t *testing.T) {
		dir := t.TempDir()

		s, err := Init(dir)
		require.NoError(t, err)
		require.NotNil(t, s)

		info, err := os.Stat(filepath.Join(dir, ".td"))
		require.NoError(t, err)
		assert.True(t, info.IsDir())

		_, err = os.Stat(filepath.Join(dir, ".td", "config.yaml"))
		require.NoError(t, err)

		_, err = os.Stat(filepath.Join(dir, ".td", "tasks.yaml"))
		require.NoError(t, err)
	})

	t.Run("new task file is empty", func(t *testing.T) {
		s, err := Init(t.TempDir())
		require.NoError(t, err)

		f, err := s.Load()
		require.NoError(t, err)
		assert.Equal(t, model.FileVersion, f.Version)
		assert.Equal(t, 1, f.NextID)
		assert.Empty(t, f.Tasks)
	})

	t.Run("init in directory with existing .td returns error", func(t *testing.T) {
		dir := t.TempDir()

		_, err := Init(dir)
		require.NoError(t, err)

		_, err = Init(dir)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "already exists")
	})
}

func TestOpen(t *testing.T) {
	t.Run("open existing .td directory succeeds", func(t *testing.T) {
		dir := t.TempDir()
		_, err := Init(dir)
		require.NoError(t, err)

		s, err := Open(dir)
		require.NoError(t, err)
		require.NotNil(t, s)
		assert.Equal(t, dir, s.Root())
	})

	t.Run("open directory without .td returns error", func(t *testing.T) {
		s, err := Open(t.TempDir())
		require.Error(t, err)
		assert.Nil(t, s)
		assert.True(t, errors.Is(err, ErrNotInitialized))
	})

	t.Run("open when .td is a file returns error", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, ".td"), []byte("not a directory"), 0644))

		s, err := Open(dir)
		require.Error(t, err)
		assert.Nil(t, s)
		assert.Contains(t, err.Error(), "not a directory")
	})
}

func TestFind(t *testing.T) {
	t.Run("finds .td in a parent directory", func(t *testing.T) {
		dir := t.TempDir()
		_, err := Init(dir)
		require.NoError(t, err)

		nested := filepath.Join(dir, "a", "b")
		require.NoError(t, os.MkdirAll(nested, 0755))

		s, err := Find(nested)
		require.NoError(t, err)

		want, err := filepath.EvalSymlinks(dir)
		require.NoError(t, err)
		got, err := filepath.EvalSymlinks(s.Root())
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("no .td below the ceiling returns ErrNotInitialized", func(t *testing.T) {
		dir := t.TempDir()
		nested := filepath.Join(dir, "a", "b")
		require.NoError(t, os.MkdirAll(nested, 0755))
		t.Setenv(CeilingEnv, dir)

		_, err := Find(nested)
		assert.True(t, errors.Is(err, ErrNotInitialized))
	})

	t.Run("ceiling itself is still searched", func(t *testing.T) {
		dir := t.TempDir()
		_, err := Init(dir)
		require.NoError(t, err)
		nested := filepath.Join(dir, "a")
		require.NoError(t, os.MkdirAll(nested, 0755))
		t.Setenv(CeilingEnv, dir)

		s, err := Find(nested)
		require.NoError(t, err)
		assert.Equal(t, dir, s.Root())
	})
}

func TestSaveAndLoad(t *testing.T) {
	created := time.Date(2025, 12, 2, 10, 30, 0, 0, time.UTC)

	t.Run("saved tasks survive a reopen", func(t *testing.T) {
		dir := t.TempDir()
		s, err := Init(dir)
		require.NoError(t, err)

		f := model.NewTaskFile()
		f.Tasks = []model.Task{
			{ID: "T-01", Title: "Buy milk", Created: created, Updated: created},
			{ID: "T-02", Title: "Walk dog", Created: created, Updated: created},
		}
		f.NextID = 3
		require.NoError(t, s.Save(f))

		reopened, err := Open(dir)
		require.NoError(t, err)
		loaded, err := reopened.Load()
		require.NoError(t, err)

		assert.Equal(t, 3, loaded.NextID)
		require.Len(t, loaded.Tasks, 2)
		assert.Equal(t, "Buy milk", loaded.Tasks[0].Title)
		assert.Equal(t, "Walk dog", loaded.Tasks[1].Title)
		assert.True(t, created.Equal(loaded.Tasks[0].Created))
	})

	t.Run("save leaves no temp files behind", func(t *testing.T) {
		s, err := Init(t.TempDir())
		require.NoError(t, err)
		require.NoError(t, s.Save(model.NewTaskFile()))

		entries, err := os.ReadDir(s.TdPath())
		require.NoError(t, err)
		for _, e := range entries {
			assert.False(t, strings.HasPrefix(e.Name(), tempFilePrefix), "leftover %s", e.Name())
		}
	})

	t.Run("missing task file reads as empty", func(t *testing.T) {
		s, err := Init(t.TempDir())
		require.NoError(t, err)
		require.NoError(t, os.Remove(s.TasksPath()))

		f, err := s.Load()
		require.NoError(t, err)
		assert.Empty(t, f.Tasks)
	})

	t.Run("load fails when .td is gone", func(t *testing.T) {
		s, err := Init(t.TempDir())
		require.NoError(t, err)
		require.NoError(t, os.RemoveAll(s.TdPath()))

		_, err = s.Load()
		require.Error(t, err)
	})

	t.Run("load fails on corrupt task file", func(t *testing.T) {
		s, err := Init(t.TempDir())
		require.NoError(t, err)
		require.NoError(t, os.WriteFile(s.TasksPath(), []byte("tasks: [unclosed"), 0644))

		_, err = s.Load()
		require.Error(t, err)
	})

	t.Run("save fails when .td is gone", func(t *testing.T) {
		s, err := Init(t.TempDir())
		require.NoError(t, err)
		require.NoError(t, os.RemoveAll(s.TdPath()))

		err = s.Save(model.NewTaskFile())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to write task file")
	})
}
