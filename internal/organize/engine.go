package organize

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"shelf/internal/config"
	"shelf/internal/errors"
	"shelf/internal/log"
	"shelf/pkg/types"
)

// Engine carries out the filesystem side of a plan. It owns everything that
// touches disk: creating destination directories, resolving collisions and
// moving files. The planning itself happens elsewhere and an Engine never
// second-guesses the plan it is handed.
type Engine struct {
	onConflict string
	dryRun     bool
}

// New creates an engine with the default conflict strategy.
func New() *Engine {
	return &Engine{onConflict: "skip"}
}

// NewWithConfig creates an engine configured from cfg.
func NewWithConfig(cfg *config.Config) *Engine {
	return &Engine{
		onConflict: cfg.Organize.OnConflict,
		dryRun:     cfg.Settings.DryRun,
	}
}

// SetDryRun enables or disables dry run mode.
func (e *Engine) SetDryRun(dryRun bool) {
	e.dryRun = dryRun
}

// IsDryRun returns whether the engine is in dry run mode.
func (e *Engine) IsDryRun() bool {
	return e.dryRun
}

// Apply moves the planned files under baseDir, one item at a time and in plan
// order. Items are independent: a failure is recorded and the engine moves on
// to the next one. Files already moved stay moved.
func (e *Engine) Apply(items []types.PlanItem, baseDir string) *types.ExecutionReport {
	report := &types.ExecutionReport{}
	for _, item := range items {
		res := types.MoveResult{
			Source:      item.SourceName,
			Destination: item.DestinationPath(),
		}

		destDir := filepath.Join(baseDir, item.DestinationSubdir)
		if err := e.ensureDir(destDir); err != nil {
			res.Outcome = types.Failed
			res.Err = err
			log.Error("Failed to create %s: %v", destDir, err)
			report.Add(res)
			continue
		}

		src := filepath.Join(baseDir, item.SourceName)
		dest := filepath.Join(destDir, item.DestinationName)
		finalDest, err := e.move(src, dest)
		e.finish(&res, baseDir, dest, finalDest, err)
		report.Add(res)
	}
	return report
}

// ApplyReverse moves files out of their subdirectories back into baseDir,
// then removes the subdirectories the pass left empty. Subdirectories that
// still hold files are kept and reported.
func (e *Engine) ApplyReverse(items []types.ReverseItem, baseDir string) *types.ExecutionReport {
	report := &types.ExecutionReport{}
	for _, item := range items {
		res := types.MoveResult{
			Source:      item.SourcePath(),
			Destination: item.RestoredName,
		}

		src := filepath.Join(baseDir, item.Subdir, item.Name)
		dest := filepath.Join(baseDir, item.RestoredName)
		finalDest, err := e.move(src, dest)
		e.finish(&res, baseDir, dest, finalDest, err)
		report.Add(res)
	}
	e.cleanupSubdirs(items, baseDir, report)
	return report
}

// finish records the outcome of a move attempt on res. finalDest is where the
// file actually landed, which differs from the planned destination when a
// collision was resolved by renaming.
func (e *Engine) finish(res *types.MoveResult, baseDir, dest, finalDest string, err error) {
	switch {
	case err != nil:
		res.Outcome = types.Failed
		res.Err = err
	case finalDest == "":
		res.Outcome = types.Skipped
		res.Reason = "destination already exists"
	default:
		res.Outcome = types.Moved
		if finalDest != filepath.Clean(dest) {
			if rel, relErr := filepath.Rel(baseDir, finalDest); relErr == nil {
				res.Destination = rel
			}
		}
	}
}

// move moves src to dest after resolving any collision. It returns the path
// the file landed on, or "" when the destination existed and the strategy was
// to leave both files alone. Nothing on disk is ever overwritten.
func (e *Engine) move(src, dest string) (string, error) {
	cleanSrc := filepath.Clean(src)
	cleanDest := filepath.Clean(dest)

	srcInfo, err := os.Stat(cleanSrc)
	if err != nil {
		if os.IsNotExist(err) {
			return "", errors.NewFileError("source file not found", cleanSrc, errors.FileNotFound, err)
		}
		return "", errors.NewFileError("cannot access source file", cleanSrc, errors.FileAccessDenied, err)
	}
	if srcInfo.IsDir() {
		return "", errors.NewFileError("source is a directory", cleanSrc, errors.InvalidPath, nil)
	}

	if e.dryRun {
		log.Info("Would move %s -> %s", cleanSrc, cleanDest)
		return cleanDest, nil
	}

	finalDest, err := e.resolveCollision(cleanDest)
	if err != nil {
		return "", err
	}
	if finalDest == "" {
		log.Info("Skipping %s, destination already exists: %s", cleanSrc, cleanDest)
		return "", nil
	}

	log.Debug("Moving %s to %s", cleanSrc, finalDest)
	if err := os.Rename(cleanSrc, finalDest); err != nil {
		return "", errors.NewFileError("failed to move file", cleanSrc, errors.MoveFailed, err)
	}

	log.Info("Moved %s -> %s", cleanSrc, finalDest)
	return finalDest, nil
}

// ensureDir creates dir if needed. In dry run mode nothing is created.
func (e *Engine) ensureDir(dir string) error {
	if e.dryRun {
		return nil
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.NewFileError("failed to create destination directory", dir, errors.DirCreateFailed, err)
	}
	return nil
}

// resolveCollision decides where a file may land when dest already exists.
// It returns dest unchanged when the path is free, an alternative path under
// the rename strategy, or "" when the move should be skipped.
func (e *Engine) resolveCollision(dest string) (string, error) {
	_, err := os.Stat(dest)
	if os.IsNotExist(err) {
		return dest, nil
	}
	if err != nil {
		return "", errors.NewFileError("cannot check destination", dest, errors.FileAccessDenied, err)
	}

	log.Warn("Destination %s already exists, applying strategy: %s", dest, e.onConflict)

	switch e.onConflict {
	case "skip", "":
		return "", nil
	case "rename":
		return e.findUniqueDestName(dest)
	default:
		return "", errors.NewConfigError("unknown conflict strategy", e.onConflict, errors.InvalidConfig, nil)
	}
}

// findUniqueDestName finds an unused variation of dest by appending _(1),
// _(2) and so on before the extension.
func (e *Engine) findUniqueDestName(dest string) (string, error) {
	ext := filepath.Ext(dest)
	base := strings.TrimSuffix(dest, ext)

	for i := 1; i <= 1000; i++ {
		candidate := fmt.Sprintf("%s_(%d)%s", base, i, ext)
		if _, err := os.Stat(candidate); os.IsNotExist(err) {
			return candidate, nil
		}
	}
	return "", errors.NewFileError("could not find a free name", dest, errors.MoveFailed, nil)
}

// cleanupSubdirs removes the subdirectories a reverse pass emptied and
// records which ones were removed and which still hold files. Each
// subdirectory is considered once, in the order the items name them.
func (e *Engine) cleanupSubdirs(items []types.ReverseItem, baseDir string, report *types.ExecutionReport) {
	if e.dryRun {
		return
	}

	seen := make(map[string]bool)
	for _, item := range items {
		if seen[item.Subdir] {
			continue
		}
		seen[item.Subdir] = true

		dir := filepath.Join(baseDir, item.Subdir)
		entries, err := os.ReadDir(dir)
		if err != nil {
			log.Warn("Could not read %s during cleanup: %v", dir, err)
			continue
		}
		if len(entries) > 0 {
			report.KeptDirs = append(report.KeptDirs, item.Subdir)
			continue
		}
		if err := os.Remove(dir); err != nil {
			log.Warn("Could not remove empty directory %s: %v", dir, err)
			report.KeptDirs = append(report.KeptDirs, item.Subdir)
			continue
		}
		log.Debug("Removed empty directory %s", dir)
		report.RemovedDirs = append(report.RemovedDirs, item.Subdir)
	}
}
