package testutils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// CreateTestFilesWithContent creates test files with specific content
func CreateTestFilesWithContent(t *testing.T, dir string, files map[string]string) {
	for name, content := range files {
		err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644)
		require.NoError(t, err)
	}
}

// CreateTestFiles creates empty files with the given names
func CreateTestFiles(t *testing.T, dir string, names ...string) {
	for _, name := range names {
		err := os.WriteFile(filepath.Join(dir, name), []byte(name), 0644)
		require.NoError(t, err)
	}
}

// CreatePrefixedFiles seeds dir with a typical mix of prefixed and
// unprefixed file names
func CreatePrefixedFiles(t *testing.T, dir string) {
	files := map[string]string{
		"invoice-2023.pdf": "invoice content",
		"invoice-2024.pdf": "newer invoice",
		"photo-beach.jpg":  "image content",
		"notes.txt":        "no prefix here",
	}
	CreateTestFilesWithContent(t, dir, files)
}

// RequireFileExists fails the test unless path is an existing regular file
func RequireFileExists(t *testing.T, path string) {
	info, err := os.Stat(path)
	require.NoError(t, err, "expected %s to exist", path)
	require.False(t, info.IsDir(), "expected %s to be a file", path)
}

// RequireNotExists fails the test if path exists
func RequireNotExists(t *testing.T, path string) {
	_, err := os.Stat(path)
	require.True(t, os.IsNotExist(err), "expected %s to be gone", path)
}

// ReadFileString returns the contents of path
func ReadFileString(t *testing.T, path string) string {
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

// StripANSI removes ANSI escape sequences from a string
func StripANSI(str string) string {
	// Simple ANSI escape sequence stripping
	// This is a basic implementation - you might want to use a more robust solution
	var result []rune
	inEscape := false
	for _, r := range str {
		if r == '\x1b' {
			inEscape = true
			continue
		}
		if inEscape {
			if (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z') {
				inEscape = false
			}
			continue
		}
		result = append(result, r)
	}
	return string(result)
}
