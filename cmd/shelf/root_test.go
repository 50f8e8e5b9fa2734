package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"shelf/internal/config"
	"shelf/internal/errors"
	"shelf/pkg/testutils"
	"shelf/pkg/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runCommand executes the CLI with args and returns its combined output with
// ANSI sequences removed.
func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd()
	buf := &bytes.Buffer{}
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return testutils.StripANSI(buf.String()), err
}

// missingConfig returns a path no config file lives at, so every run starts
// from the defaults.
func missingConfig(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "config.yaml")
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestRootShowsHelp(t *testing.T) {
	output, err := runCommand(t, "--config", missingConfig(t))
	require.NoError(t, err)
	assert.Contains(t, output, "Available Commands")
	assert.Contains(t, output, "organize")
	assert.Contains(t, output, "reverse")
}

func TestOrganizeCommand(t *testing.T) {
	tmpDir := t.TempDir()
	testutils.CreatePrefixedFiles(t, tmpDir)

	output, err := runCommand(t, "organize", "-y", "--config", missingConfig(t), tmpDir)
	require.NoError(t, err)

	assert.Contains(t, output, "Planned moves in")
	assert.Contains(t, output, "invoice-2023.pdf -> invoice/invoice-2023.pdf")
	assert.Contains(t, output, "1 file(s) left in place")
	assert.Contains(t, output, "Moved: 3")
	assert.Contains(t, output, "Skipped: 0")
	assert.Contains(t, output, "Done.")

	testutils.RequireFileExists(t, filepath.Join(tmpDir, "invoice", "invoice-2023.pdf"))
	testutils.RequireFileExists(t, filepath.Join(tmpDir, "photo", "photo-beach.jpg"))
	testutils.RequireFileExists(t, filepath.Join(tmpDir, "notes.txt"))
}

func TestOrganizeRemovePrefix(t *testing.T) {
	tmpDir := t.TempDir()
	testutils.CreatePrefixedFiles(t, tmpDir)

	_, err := runCommand(t, "organize", "-y", "-r", "--config", missingConfig(t), tmpDir)
	require.NoError(t, err)

	testutils.RequireFileExists(t, filepath.Join(tmpDir, "invoice", "2023.pdf"))
	testutils.RequireFileExists(t, filepath.Join(tmpDir, "photo", "beach.jpg"))
}

func TestOrganizeDryRun(t *testing.T) {
	tmpDir := t.TempDir()
	testutils.CreatePrefixedFiles(t, tmpDir)

	output, err := runCommand(t, "organize", "-n", "--config", missingConfig(t), tmpDir)
	require.NoError(t, err)

	assert.Contains(t, output, "Dry run, no files will be moved.")
	assert.Contains(t, output, "Moved: 3")
	assert.Contains(t, output, "Dry run complete, nothing was changed.")

	// Nothing on disk changed
	testutils.RequireFileExists(t, filepath.Join(tmpDir, "invoice-2023.pdf"))
	testutils.RequireNotExists(t, filepath.Join(tmpDir, "invoice"))
}

func TestOrganizeNothingToDo(t *testing.T) {
	tmpDir := t.TempDir()
	testutils.CreateTestFiles(t, tmpDir, "README", "CHANGELOG")

	output, err := runCommand(t, "organize", "-y", "--config", missingConfig(t), tmpDir)
	require.NoError(t, err)
	assert.Contains(t, output, "Nothing to organize.")
}

func TestOrganizeHonorsConfigIgnore(t *testing.T) {
	tmpDir := t.TempDir()
	testutils.CreateTestFiles(t, tmpDir, "app-error.log", "app-notes.txt")

	cfgPath := writeConfig(t, "organize:\n  ignore:\n    - \"*.log\"\n")

	output, err := runCommand(t, "organize", "-y", "--config", cfgPath, tmpDir)
	require.NoError(t, err)

	assert.Contains(t, output, "1 file(s) left in place")
	testutils.RequireFileExists(t, filepath.Join(tmpDir, "app", "app-notes.txt"))
	testutils.RequireFileExists(t, filepath.Join(tmpDir, "app-error.log"))
}

func TestOrganizeRenameConflict(t *testing.T) {
	tmpDir := t.TempDir()
	testutils.CreateTestFilesWithContent(t, tmpDir, map[string]string{
		"report-q1.txt": "new report",
	})
	require.NoError(t, os.MkdirAll(filepath.Join(tmpDir, "report"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "report", "report-q1.txt"), []byte("old report"), 0644))

	output, err := runCommand(t, "organize", "-y", "--on-conflict", "rename",
		"--config", missingConfig(t), tmpDir)
	require.NoError(t, err)
	assert.Contains(t, output, "Moved: 1")

	assert.Equal(t, "old report",
		testutils.ReadFileString(t, filepath.Join(tmpDir, "report", "report-q1.txt")))
	assert.Equal(t, "new report",
		testutils.ReadFileString(t, filepath.Join(tmpDir, "report", "report-q1_(1).txt")))
}

func TestOrganizeInvalidSeparator(t *testing.T) {
	tmpDir := t.TempDir()

	_, err := runCommand(t, "organize", "-y", "-s", "__", "--config", missingConfig(t), tmpDir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "single character")
}

func TestOrganizeInvalidConflictStrategy(t *testing.T) {
	tmpDir := t.TempDir()

	_, err := runCommand(t, "organize", "-y", "--on-conflict", "overwrite",
		"--config", missingConfig(t), tmpDir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "on_conflict")
}

func TestOrganizeMissingDirectory(t *testing.T) {
	_, err := runCommand(t, "organize", "-y", "--config", missingConfig(t),
		filepath.Join(t.TempDir(), "absent"))
	require.Error(t, err)
	assert.True(t, errors.IsFileNotFound(err))
}

func TestOrganizeVerboseListsMoves(t *testing.T) {
	tmpDir := t.TempDir()
	testutils.CreatePrefixedFiles(t, tmpDir)

	output, err := runCommand(t, "organize", "-y", "-v", "--config", missingConfig(t), tmpDir)
	require.NoError(t, err)

	assert.Contains(t, output, "photo-beach.jpg -> photo/photo-beach.jpg")
}

func TestScanJSON(t *testing.T) {
	tmpDir := t.TempDir()
	testutils.CreatePrefixedFiles(t, tmpDir)

	output, err := runCommand(t, "scan", "--json", "--config", missingConfig(t), tmpDir)
	require.NoError(t, err)

	var p types.Plan
	require.NoError(t, json.Unmarshal([]byte(output), &p))
	assert.Len(t, p.Items, 3)
	assert.Equal(t, []string{"notes.txt"}, p.Skipped)

	// A scan changes nothing
	testutils.RequireFileExists(t, filepath.Join(tmpDir, "invoice-2023.pdf"))
}

func TestScanGroupsByFolder(t *testing.T) {
	tmpDir := t.TempDir()
	testutils.CreatePrefixedFiles(t, tmpDir)

	output, err := runCommand(t, "scan", "--config", missingConfig(t), tmpDir)
	require.NoError(t, err)

	assert.Contains(t, output, "invoice/")
	assert.Contains(t, output, "photo/")
	assert.Contains(t, output, "invoice-2023.pdf")
	assert.Contains(t, output, "1 file(s) left in place")
}

func TestScanShowsRenames(t *testing.T) {
	tmpDir := t.TempDir()
	testutils.CreatePrefixedFiles(t, tmpDir)

	output, err := runCommand(t, "scan", "-r", "--config", missingConfig(t), tmpDir)
	require.NoError(t, err)
	assert.Contains(t, output, "2023.pdf (from invoice-2023.pdf)")
}

func TestScanLongShowsSizes(t *testing.T) {
	tmpDir := t.TempDir()
	testutils.CreatePrefixedFiles(t, tmpDir)

	output, err := runCommand(t, "scan", "-l", "--config", missingConfig(t), tmpDir)
	require.NoError(t, err)

	// "invoice content" is 15 bytes
	assert.Contains(t, output, "15 B")
}

func TestReverseCommand(t *testing.T) {
	tmpDir := t.TempDir()
	testutils.CreatePrefixedFiles(t, tmpDir)

	_, err := runCommand(t, "organize", "-y", "--config", missingConfig(t), tmpDir)
	require.NoError(t, err)

	output, err := runCommand(t, "reverse", "-y", "--config", missingConfig(t), tmpDir)
	require.NoError(t, err)

	assert.Contains(t, output, "Restoring files in")
	assert.Contains(t, output, "invoice/invoice-2023.pdf -> invoice-2023.pdf")
	assert.Contains(t, output, "Moved: 3")
	assert.Contains(t, output, "Removed empty directories: invoice, photo")

	testutils.RequireFileExists(t, filepath.Join(tmpDir, "invoice-2023.pdf"))
	testutils.RequireFileExists(t, filepath.Join(tmpDir, "photo-beach.jpg"))
	testutils.RequireNotExists(t, filepath.Join(tmpDir, "invoice"))
	testutils.RequireNotExists(t, filepath.Join(tmpDir, "photo"))
}

func TestReverseRestorePrefix(t *testing.T) {
	tmpDir := t.TempDir()
	testutils.CreatePrefixedFiles(t, tmpDir)

	_, err := runCommand(t, "organize", "-y", "-r", "--config", missingConfig(t), tmpDir)
	require.NoError(t, err)
	testutils.RequireFileExists(t, filepath.Join(tmpDir, "invoice", "2023.pdf"))

	_, err = runCommand(t, "reverse", "-y", "-r", "--config", missingConfig(t), tmpDir)
	require.NoError(t, err)

	// The original names are back
	testutils.RequireFileExists(t, filepath.Join(tmpDir, "invoice-2023.pdf"))
	testutils.RequireFileExists(t, filepath.Join(tmpDir, "invoice-2024.pdf"))
	testutils.RequireFileExists(t, filepath.Join(tmpDir, "photo-beach.jpg"))
}

func TestReverseNothingToDo(t *testing.T) {
	tmpDir := t.TempDir()
	testutils.CreateTestFiles(t, tmpDir, "loose.txt")

	output, err := runCommand(t, "reverse", "-y", "--config", missingConfig(t), tmpDir)
	require.NoError(t, err)
	assert.Contains(t, output, "Nothing to restore.")
}

func TestLanguageFlag(t *testing.T) {
	tmpDir := t.TempDir()
	testutils.CreatePrefixedFiles(t, tmpDir)

	output, err := runCommand(t, "organize", "-n", "--lang", "tr",
		"--config", missingConfig(t), tmpDir)
	require.NoError(t, err)

	assert.Contains(t, output, "planlanan taşımalar")
	assert.Contains(t, output, "Deneme çalıştırması, hiçbir dosya taşınmayacak.")
	assert.Contains(t, output, "Taşınan: 3")
}

func TestDefaultDirectoryFromConfig(t *testing.T) {
	tmpDir := t.TempDir()
	testutils.CreatePrefixedFiles(t, tmpDir)

	cfgPath := writeConfig(t, "directories:\n  default: "+tmpDir+"\n")

	_, err := runCommand(t, "organize", "-y", "--config", cfgPath)
	require.NoError(t, err)
	testutils.RequireFileExists(t, filepath.Join(tmpDir, "invoice", "invoice-2023.pdf"))
}

func TestSetupCommand(t *testing.T) {
	cfgPath := missingConfig(t)

	output, err := runCommand(t, "setup", "--config", cfgPath)
	require.NoError(t, err)
	assert.Contains(t, output, "Defaults")
	assert.Contains(t, output, "separator")

	written, err := config.LoadConfigFile(cfgPath)
	require.NoError(t, err)
	assert.Equal(t, "-", written.Organize.Separator)
	assert.Equal(t, "skip", written.Organize.OnConflict)

	// A second run refuses to clobber the file
	_, err = runCommand(t, "setup", "--config", cfgPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	// Unless forced
	_, err = runCommand(t, "setup", "--force", "--config", cfgPath)
	require.NoError(t, err)
}

func TestThemesList(t *testing.T) {
	output, err := runCommand(t, "themes", "--config", missingConfig(t))
	require.NoError(t, err)

	for _, name := range config.ListThemes() {
		assert.Contains(t, output, name)
	}
	assert.Contains(t, output, "* default")
}

func TestThemesSet(t *testing.T) {
	cfgPath := missingConfig(t)

	_, err := runCommand(t, "themes", "set", "ocean", "--config", cfgPath)
	require.NoError(t, err)

	written, err := config.LoadConfigFile(cfgPath)
	require.NoError(t, err)
	assert.Equal(t, "ocean", written.Theme.Name)
	assert.Equal(t, "31", written.Theme.Primary)
}

func TestThemesSetUnknown(t *testing.T) {
	_, err := runCommand(t, "themes", "set", "neon", "--config", missingConfig(t))
	require.Error(t, err)

	var cfgErr *errors.ConfigError
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, errors.InvalidTheme, cfgErr.Kind())
}
