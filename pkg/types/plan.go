package types

import (
	"encoding/json"
	"fmt"
	"path/filepath"
)

// PlanItem describes one proposed move: a file in the base directory that
// belongs in a prefix-named subdirectory.
type PlanItem struct {
	SourceName        string `json:"source_name"`
	DestinationSubdir string `json:"destination_subdir"`
	DestinationName   string `json:"destination_name"`
}

// DestinationPath returns the destination relative to the base directory.
func (p PlanItem) DestinationPath() string {
	return filepath.Join(p.DestinationSubdir, p.DestinationName)
}

// String returns a human-readable representation of the move.
func (p PlanItem) String() string {
	return fmt.Sprintf("%s -> %s", p.SourceName, p.DestinationPath())
}

// Plan is an ordered set of proposed moves plus the names left in place.
// Order is the insertion order of the directory listing it was built from.
type Plan struct {
	Items   []PlanItem `json:"items"`
	Skipped []string   `json:"skipped,omitempty"`
}

// Empty reports whether the plan proposes no moves.
func (p *Plan) Empty() bool {
	return len(p.Items) == 0
}

// ToJSON converts the plan to a JSON string
func (p *Plan) ToJSON() string {
	jsonBytes, _ := json.MarshalIndent(p, "", "  ")
	return string(jsonBytes)
}

// ReverseItem describes one restore move: a file inside an immediate
// subdirectory that goes back to the base directory under RestoredName.
type ReverseItem struct {
	Subdir       string `json:"subdir"`
	Name         string `json:"name"`
	RestoredName string `json:"restored_name"`
}

// SourcePath returns the file's current location relative to the base
// directory.
func (r ReverseItem) SourcePath() string {
	return filepath.Join(r.Subdir, r.Name)
}

// String returns a human-readable representation of the restore.
func (r ReverseItem) String() string {
	return fmt.Sprintf("%s -> %s", r.SourcePath(), r.RestoredName)
}

// SubdirListing is a snapshot of one immediate subdirectory: its name and the
// regular files directly inside it. Listings are gathered by the caller and
// handed to the planner, which never touches the filesystem itself.
type SubdirListing struct {
	Name  string
	Files []string
}
