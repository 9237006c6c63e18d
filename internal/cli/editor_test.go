package cli

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setEditor points VISUAL/EDITOR at editor for the duration of the test.
func setEditor(t *testing.T, editor string) {
	t.Helper()
	t.Setenv("VISUAL", "")
	t.Setenv("EDITOR", editor)
}

// writeEditorScript creates a shell script usable as $EDITOR.
func writeEditorScript(t *testing.T, body string) string {
	t.Helper()
	script, err := os.CreateTemp(t.TempDir(), "test-editor-*.sh")
	require.NoError(t, err)
	_, err = script.WriteString("#!/bin/sh\n" + body + "\n")
	require.NoError(t, err)
	require.NoError(t, script.Close())
	require.NoError(t, os.Chmod(script.Name(), 0755))
	return script.Name()
}

func TestGetEditor(t *testing.T) {
	t.Setenv("VISUAL", "code --wait")
	t.Setenv("EDITOR", "vim")
	assert.Equal(t, "code --wait", getEditor())

	t.Setenv("VISUAL", "")
	assert.Equal(t, "vim", getEditor())

	t.Setenv("EDITOR", "")
	assert.Equal(t, "", getEditor())
}

func TestEditInEditor(t *testing.T) {
	t.Run("no editor", func(t *testing.T) {
		setEditor(t, "")
		_, err := EditInEditor([]byte("test"), ".txt")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "EDITOR not set")
	})

	t.Run("unchanged content", func(t *testing.T) {
		setEditor(t, "true")
		result, err := EditInEditor([]byte("test content"), ".txt")
		require.NoError(t, err)
		assert.Equal(t, "test content", string(result))
	})

	t.Run("non-zero exit", func(t *testing.T) {
		setEditor(t, "false")
		_, err := EditInEditor([]byte("test"), ".txt")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "editor exited with status")
	})

	t.Run("modified content", func(t *testing.T) {
		setEditor(t, writeEditorScript(t, `echo 'modified' > "$1"`))
		result, err := EditInEditor([]byte("original"), ".txt")
		require.NoError(t, err)
		assert.Equal(t, "modified\n", string(result))
	})
}

func TestPromptTitle(t *testing.T) {
	t.Run("keeps initial title when unchanged", func(t *testing.T) {
		setEditor(t, "true")
		title, err := PromptTitle("Update task", "Buy milk")
		require.NoError(t, err)
		assert.Equal(t, "Buy milk", title)
	})

	t.Run("empty prompt yields empty title", func(t *testing.T) {
		setEditor(t, "true")
		title, err := PromptTitle("New task", "")
		require.NoError(t, err)
		assert.Equal(t, "", title)
	})

	t.Run("takes first non-comment line", func(t *testing.T) {
		setEditor(t, writeEditorScript(t, `printf '# header\n\nWalk dog\nignored\n' > "$1"`))
		title, err := PromptTitle("New task", "")
		require.NoError(t, err)
		assert.Equal(t, "Walk dog", title)
	})
}

func TestParseTitle(t *testing.T) {
	assert.Equal(t, "a", parseTitle([]byte("a\nb\n")))
	assert.Equal(t, "b", parseTitle([]byte("# a\n   \nb\n")))
	assert.Equal(t, "  spaced", parseTitle([]byte("  spaced\r\n")))
	assert.Equal(t, "", parseTitle([]byte("# only comments\n")))
	assert.Equal(t, "", parseTitle(nil))
}

func TestRunEditor(t *testing.T) {
	err := runEditor("", "/tmp/test.txt")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty editor command")

	err = runEditor("nonexistent-editor-command-12345", "/tmp/test.txt")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to run editor")
}
