package plan

import (
	"testing"

	"shelf/internal/config"
	"shelf/internal/errors"
	"shelf/pkg/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustPlanner(t *testing.T, separator string, removePrefix bool, ignore ...string) *Planner {
	t.Helper()
	p, err := New(separator, removePrefix, ignore)
	require.NoError(t, err)
	return p
}

func TestForwardBasic(t *testing.T) {
	p := mustPlanner(t, "-", false)

	pl := p.Forward([]string{
		"invoice-2023.pdf",
		"invoice-2024.pdf",
		"photo-beach.jpg",
		"notes.txt",
	})

	require.Len(t, pl.Items, 3)
	assert.Equal(t, types.PlanItem{
		SourceName:        "invoice-2023.pdf",
		DestinationSubdir: "invoice",
		DestinationName:   "invoice-2023.pdf",
	}, pl.Items[0])
	assert.Equal(t, "invoice", pl.Items[1].DestinationSubdir)
	assert.Equal(t, "photo", pl.Items[2].DestinationSubdir)

	// Without remove-prefix the name travels unchanged
	assert.Equal(t, "photo-beach.jpg", pl.Items[2].DestinationName)

	assert.Equal(t, []string{"notes.txt"}, pl.Skipped)
	assert.False(t, pl.Empty())
}

func TestForwardRemovePrefix(t *testing.T) {
	p := mustPlanner(t, "-", true)

	pl := p.Forward([]string{"invoice-2023.pdf"})

	require.Len(t, pl.Items, 1)
	assert.Equal(t, "invoice", pl.Items[0].DestinationSubdir)
	assert.Equal(t, "2023.pdf", pl.Items[0].DestinationName)
}

func TestForwardRemovePrefixEmptyRemainder(t *testing.T) {
	p := mustPlanner(t, "-", true)

	// Stripping "a-" would leave an empty name, so the full name is kept
	pl := p.Forward([]string{"a-"})

	require.Len(t, pl.Items, 1)
	assert.Equal(t, "a", pl.Items[0].DestinationSubdir)
	assert.Equal(t, "a-", pl.Items[0].DestinationName)
}

func TestForwardUnclassified(t *testing.T) {
	tests := []struct {
		name string
		file string
	}{
		{name: "no_separator", file: "README"},
		{name: "empty_prefix", file: "-orphan.txt"},
		{name: "dot_prefix", file: ".-hidden"},
		{name: "dotdot_prefix", file: "..-up"},
	}

	p := mustPlanner(t, "-", false)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pl := p.Forward([]string{tt.file})
			assert.Empty(t, pl.Items)
			assert.Equal(t, []string{tt.file}, pl.Skipped)
		})
	}
}

func TestForwardSplitsAtFirstSeparator(t *testing.T) {
	p := mustPlanner(t, "-", true)

	pl := p.Forward([]string{"tax-report-2023-final.pdf"})

	require.Len(t, pl.Items, 1)
	assert.Equal(t, "tax", pl.Items[0].DestinationSubdir)
	assert.Equal(t, "report-2023-final.pdf", pl.Items[0].DestinationName)
}

func TestForwardCustomSeparator(t *testing.T) {
	p := mustPlanner(t, "_", false)

	pl := p.Forward([]string{"photo_beach.jpg", "photo-beach.jpg"})

	require.Len(t, pl.Items, 1)
	assert.Equal(t, "photo", pl.Items[0].DestinationSubdir)
	assert.Equal(t, "photo_beach.jpg", pl.Items[0].SourceName)

	// The dashed name has no underscore, so it stays put
	assert.Equal(t, []string{"photo-beach.jpg"}, pl.Skipped)
}

func TestForwardIgnorePatterns(t *testing.T) {
	p := mustPlanner(t, "-", false, "*.log", "draft-*")

	pl := p.Forward([]string{
		"build-output.log",
		"draft-letter.txt",
		"invoice-2023.pdf",
	})

	require.Len(t, pl.Items, 1)
	assert.Equal(t, "invoice-2023.pdf", pl.Items[0].SourceName)
	assert.Equal(t, []string{"build-output.log", "draft-letter.txt"}, pl.Skipped)
}

func TestForwardOrderFollowsInput(t *testing.T) {
	p := mustPlanner(t, "-", false)
	files := []string{"c-3.txt", "a-1.txt", "b-2.txt"}

	first := p.Forward(files)
	second := p.Forward(files)

	var got []string
	for _, item := range first.Items {
		got = append(got, item.SourceName)
	}
	assert.Equal(t, files, got)

	// Planning is deterministic
	assert.Equal(t, first, second)
}

func TestForwardNoFiles(t *testing.T) {
	p := mustPlanner(t, "-", false)

	pl := p.Forward(nil)
	assert.True(t, pl.Empty())
	assert.Empty(t, pl.Skipped)
}

func TestReverseRebuildsNames(t *testing.T) {
	subdirs := []types.SubdirListing{
		{Name: "invoice", Files: []string{"2023.pdf", "2024.pdf"}},
		{Name: "photo", Files: []string{"beach.jpg"}},
	}

	t.Run("with_prefix_restore", func(t *testing.T) {
		p := mustPlanner(t, "-", true)
		items := p.Reverse(subdirs)

		require.Len(t, items, 3)
		assert.Equal(t, types.ReverseItem{
			Subdir:       "invoice",
			Name:         "2023.pdf",
			RestoredName: "invoice-2023.pdf",
		}, items[0])
		assert.Equal(t, "invoice-2024.pdf", items[1].RestoredName)
		assert.Equal(t, "photo-beach.jpg", items[2].RestoredName)
	})

	t.Run("without_prefix_restore", func(t *testing.T) {
		p := mustPlanner(t, "-", false)
		items := p.Reverse(subdirs)

		require.Len(t, items, 3)
		assert.Equal(t, "2023.pdf", items[0].RestoredName)
		assert.Equal(t, "beach.jpg", items[2].RestoredName)
	})

	t.Run("custom_separator", func(t *testing.T) {
		p := mustPlanner(t, "_", true)
		items := p.Reverse(subdirs[:1])
		assert.Equal(t, "invoice_2023.pdf", items[0].RestoredName)
	})
}

func TestReverseSkipsIgnored(t *testing.T) {
	p := mustPlanner(t, "-", false, "*.log")

	items := p.Reverse([]types.SubdirListing{
		{Name: "build", Files: []string{"output.log", "result.txt"}},
	})

	require.Len(t, items, 1)
	assert.Equal(t, "result.txt", items[0].Name)
}

func TestReverseEmpty(t *testing.T) {
	p := mustPlanner(t, "-", false)
	assert.Empty(t, p.Reverse(nil))
	assert.Empty(t, p.Reverse([]types.SubdirListing{{Name: "empty"}}))
}

func TestRoundTripNaming(t *testing.T) {
	// Organizing with remove-prefix and reversing with the same settings
	// reproduces the original names
	forward := mustPlanner(t, "-", true)
	original := []string{"invoice-2023.pdf", "photo-beach.jpg"}

	pl := forward.Forward(original)
	require.Len(t, pl.Items, 2)

	var subdirs []types.SubdirListing
	for _, item := range pl.Items {
		subdirs = append(subdirs, types.SubdirListing{
			Name:  item.DestinationSubdir,
			Files: []string{item.DestinationName},
		})
	}

	restored := forward.Reverse(subdirs)
	require.Len(t, restored, 2)
	for i, item := range restored {
		assert.Equal(t, original[i], item.RestoredName)
	}
}

func TestNewRejectsBadSeparators(t *testing.T) {
	tests := []struct {
		name string
		sep  string
	}{
		{name: "empty", sep: ""},
		{name: "two_characters", sep: "--"},
		{name: "slash", sep: "/"},
		{name: "backslash", sep: `\`},
		{name: "tab", sep: "\t"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.sep, false, nil)
			require.Error(t, err)
			assert.True(t, errors.IsInvalidSeparator(err))
		})
	}
}

func TestNewAcceptsSingleRune(t *testing.T) {
	for _, sep := range []string{"-", "_", ".", "·"} {
		p, err := New(sep, false, nil)
		require.NoError(t, err, "separator %q", sep)
		assert.Equal(t, sep, p.Separator())
	}
}

func TestNewRejectsBadIgnorePattern(t *testing.T) {
	_, err := New("-", false, []string{"[a-"})
	require.Error(t, err)

	var cfgErr *errors.ConfigError
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, errors.InvalidPattern, cfgErr.Kind())
}

func TestNewFromConfig(t *testing.T) {
	cfg := config.New()
	cfg.Organize.Separator = "_"
	cfg.Organize.RemovePrefix = true
	cfg.Organize.Ignore = []string{"*.tmp"}

	p, err := NewFromConfig(cfg)
	require.NoError(t, err)
	assert.Equal(t, "_", p.Separator())

	pl := p.Forward([]string{"a_b.txt", "junk_file.tmp"})
	require.Len(t, pl.Items, 1)
	assert.Equal(t, "b.txt", pl.Items[0].DestinationName)
	assert.Equal(t, []string{"junk_file.tmp"}, pl.Skipped)
}
