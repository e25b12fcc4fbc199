package security

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateFilePath(t *testing.T) {
	t.Run("rejects empty path", func(t *testing.T) {
		_, err := ValidateFilePath("")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "cannot be empty")
	})

	t.Run("rejects dangerous shell characters", func(t *testing.T) {
		for _, char := range dangerousChars {
			path := "/tmp/tasks" + char + "file"
			_, err := ValidateFilePath(path)
			assert.Error(t, err, "expected error for character %q", char)
			assert.Contains(t, err.Error(), "forbidden character")
		}
	})

	t.Run("accepts valid absolute path", func(t *testing.T) {
		tmpDir := t.TempDir()
		testFile := filepath.Join(tmpDir, "tasks.json")
		require.NoError(t, os.WriteFile(testFile, []byte("[]"), 0644))

		result, err := ValidateFilePath(testFile)
		assert.NoError(t, err)

		// On macOS, /var is a symlink to /private/var, so compare resolved paths
		expectedResolved, _ := filepath.EvalSymlinks(testFile)
		assert.Equal(t, expectedResolved, result)
	})

	t.Run("converts relative path to absolute", func(t *testing.T) {
		result, err := ValidateFilePath("tasks.json")
		assert.NoError(t, err)
		assert.True(t, filepath.IsAbs(result))
	})

	t.Run("returns cleaned path for missing file", func(t *testing.T) {
		tmpDir := t.TempDir()
		missing := filepath.Join(tmpDir, "missing", "..", "tasks.json")

		result, err := ValidateFilePath(missing)
		assert.NoError(t, err)
		assert.Equal(t, filepath.Join(filepath.Clean(tmpDir), "tasks.json"), filepath.Clean(result))
	})
}

func TestSafeReadFile(t *testing.T) {
	t.Run("reads validated file", func(t *testing.T) {
		tmpDir := t.TempDir()
		testFile := filepath.Join(tmpDir, "tasks.json")
		require.NoError(t, os.WriteFile(testFile, []byte("[]"), 0644))

		data, err := SafeReadFile(testFile)
		require.NoError(t, err)
		assert.Equal(t, []byte("[]"), data)
	})

	t.Run("propagates validation failure", func(t *testing.T) {
		_, err := SafeReadFile("/tmp/tasks;rm.json")
		assert.Error(t, err)
	})

	t.Run("propagates missing file error", func(t *testing.T) {
		_, err := SafeReadFile(filepath.Join(t.TempDir(), "missing.json"))
		assert.Error(t, err)
		assert.True(t, os.IsNotExist(err))
	})
}
