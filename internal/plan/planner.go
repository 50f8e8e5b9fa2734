// Package plan builds move plans from directory listings. Planning is pure:
// the planner never reads the filesystem, and its output is deterministic in
// the order of its input.
package plan

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"shelf/internal/config"
	"shelf/internal/errors"
	"shelf/pkg/types"

	"github.com/gobwas/glob"
)

// Planner classifies file names by prefix and proposes moves. Construct one
// with New or NewFromConfig; a zero Planner is not usable.
type Planner struct {
	separator    string
	removePrefix bool
	ignore       []glob.Glob
}

// New creates a Planner. The separator must be a single printable character
// that can occur in a file name; ignore patterns are glob syntax and exclude
// matching names from planning in both directions.
func New(separator string, removePrefix bool, ignorePatterns []string) (*Planner, error) {
	if err := validateSeparator(separator); err != nil {
		return nil, err
	}

	globs := make([]glob.Glob, 0, len(ignorePatterns))
	for _, pattern := range ignorePatterns {
		g, err := glob.Compile(pattern)
		if err != nil {
			return nil, errors.NewConfigError("invalid ignore pattern", pattern, errors.InvalidPattern, err)
		}
		globs = append(globs, g)
	}

	return &Planner{
		separator:    separator,
		removePrefix: removePrefix,
		ignore:       globs,
	}, nil
}

// NewFromConfig creates a Planner from a loaded configuration.
func NewFromConfig(cfg *config.Config) (*Planner, error) {
	return New(cfg.Organize.Separator, cfg.Organize.RemovePrefix, cfg.Organize.Ignore)
}

// Separator returns the separator this planner splits on.
func (p *Planner) Separator() string {
	return p.separator
}

// Forward builds the organization plan for the regular files directly inside
// the target directory. Names without the separator, names whose prefix would
// be empty, and names matching an ignore pattern are left in place and
// recorded in Plan.Skipped. No collision checking happens here; collisions
// are an execution-time concern.
func (p *Planner) Forward(files []string) *types.Plan {
	pl := &types.Plan{}

	for _, name := range files {
		if p.ignored(name) {
			pl.Skipped = append(pl.Skipped, name)
			continue
		}

		prefix, rest, found := p.split(name)
		if !found || !validSubdir(prefix) {
			pl.Skipped = append(pl.Skipped, name)
			continue
		}

		destName := name
		if p.removePrefix && rest != "" {
			// Stripping the prefix from a name like "a-" would leave nothing,
			// so such files keep their full name
			destName = rest
		}

		pl.Items = append(pl.Items, types.PlanItem{
			SourceName:        name,
			DestinationSubdir: prefix,
			DestinationName:   destName,
		})
	}

	return pl
}

// Reverse builds restore items from the immediate subdirectories of the
// target directory. When the planner is configured with remove-prefix, each
// restored name is rebuilt as "subdir + separator + name"; the caller is
// responsible for supplying the same separator and prefix setting the forward
// run used, since neither is recoverable from the directory itself.
func (p *Planner) Reverse(subdirs []types.SubdirListing) []types.ReverseItem {
	var items []types.ReverseItem

	for _, sub := range subdirs {
		for _, name := range sub.Files {
			if p.ignored(name) {
				continue
			}

			restored := name
			if p.removePrefix {
				restored = sub.Name + p.separator + name
			}

			items = append(items, types.ReverseItem{
				Subdir:       sub.Name,
				Name:         name,
				RestoredName: restored,
			})
		}
	}

	return items
}

// split divides a name at the first occurrence of the separator.
func (p *Planner) split(name string) (prefix, rest string, found bool) {
	idx := strings.Index(name, p.separator)
	if idx < 0 {
		return "", "", false
	}
	return name[:idx], name[idx+len(p.separator):], true
}

func (p *Planner) ignored(name string) bool {
	for _, g := range p.ignore {
		if g.Match(name) {
			return true
		}
	}
	return false
}

// validSubdir reports whether a prefix can name a subdirectory. An empty
// prefix is invalid, and "." and ".." already mean something else to the
// filesystem.
func validSubdir(prefix string) bool {
	return prefix != "" && prefix != "." && prefix != ".."
}

func validateSeparator(sep string) error {
	if sep == "" {
		return errors.NewConfigError("separator must not be empty", "separator", errors.InvalidSeparator, nil)
	}
	if utf8.RuneCountInString(sep) != 1 {
		return errors.NewConfigError("separator must be a single character", sep, errors.InvalidSeparator, nil)
	}
	r, _ := utf8.DecodeRuneInString(sep)
	if !unicode.IsPrint(r) {
		return errors.NewConfigError("separator must be printable", sep, errors.InvalidSeparator, nil)
	}
	if strings.ContainsAny(sep, `/\`) {
		return errors.NewConfigError("separator must not be a path separator", sep, errors.InvalidSeparator, nil)
	}
	return nil
}
