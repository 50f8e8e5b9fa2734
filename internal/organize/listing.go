package organize

import (
	"os"
	"path/filepath"

	"shelf/internal/errors"
	"shelf/pkg/types"
)

// ValidateDir checks that path exists and is a directory.
func ValidateDir(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return errors.NewFileError("directory does not exist", path, errors.FileNotFound, err)
		}
		return errors.NewFileError("cannot access directory", path, errors.FileAccessDenied, err)
	}
	if !info.IsDir() {
		return errors.NewFileError("not a directory", path, errors.NotADirectory, nil)
	}
	return nil
}

// ListFiles returns the names of the entries directly inside dir that are not
// directories, sorted the way the filesystem reports them (lexically, per
// os.ReadDir). Nothing below the first level is visited.
func ListFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.NewFileError("cannot read directory", dir, errors.InvalidPath, err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		files = append(files, entry.Name())
	}
	return files, nil
}

// ListSubdirs returns the immediate subdirectories of dir together with the
// files each one directly contains. Directories nested deeper than one level
// are ignored.
func ListSubdirs(dir string) ([]types.SubdirListing, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.NewFileError("cannot read directory", dir, errors.InvalidPath, err)
	}

	var subdirs []types.SubdirListing
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		subPath := filepath.Join(dir, entry.Name())
		subEntries, err := os.ReadDir(subPath)
		if err != nil {
			return nil, errors.NewFileError("cannot read subdirectory", subPath, errors.InvalidPath, err)
		}

		listing := types.SubdirListing{Name: entry.Name()}
		for _, sub := range subEntries {
			if sub.IsDir() {
				continue
			}
			listing.Files = append(listing.Files, sub.Name())
		}
		subdirs = append(subdirs, listing)
	}
	return subdirs, nil
}
