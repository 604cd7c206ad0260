package source

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aoliong/jekyll/common/maps"
	"github.com/aoliong/jekyll/config"
	"github.com/aoliong/jekyll/helpers"
)

func newTestSourceSpec(t *testing.T, fs afero.Fs, excludes ...string) *SourceSpec {
	t.Helper()
	cfg := config.New()
	cfg.SetDefaults(maps.Params{"exclude": excludes})
	sp, err := NewSourceSpec(helpers.NewPathSpec(fs, cfg), fs)
	require.NoError(t, err)
	return sp
}

func TestIgnoreFile(t *testing.T) {
	sp := newTestSourceSpec(t, afero.NewMemMapFs(), "vendor/**")

	for _, ignored := range []string{
		"_drafts/one.md",
		"blog/_drafts/two.md",
		"src/.cache/page.md",
		"build~/page.md",
		"_config.toml",
		".hidden",
		"#scratch",
		"notes~",
		"vendor/pkg/readme.md",
		"",
	} {
		assert.True(t, sp.IgnoreFile(ignored), "expected %q to be ignored", ignored)
	}

	for _, kept := range []string{
		"about.md",
		"blog/post.md",
		"assets/style.css",
	} {
		assert.False(t, sp.IgnoreFile(kept), "expected %q to be kept", kept)
	}
}

func TestNewFileInfo(t *testing.T) {
	sp := newTestSourceSpec(t, afero.NewMemMapFs())

	fi, err := sp.NewFileInfo("/site/blog/post.md", "blog/post.md")
	require.NoError(t, err)

	assert.Equal(t, "blog/post.md", fi.Path())
	assert.Equal(t, "/site/blog/post.md", fi.Filename())
	assert.Equal(t, "blog", fi.Dir())
	assert.Equal(t, "md", fi.Ext())
	assert.Equal(t, "post.md", fi.LogicalName())
	assert.Equal(t, "post", fi.BaseFileName())
	assert.NotEmpty(t, fi.UniqueID())
	assert.False(t, fi.IsZero())
}

func TestNewFileInfoRootFile(t *testing.T) {
	sp := newTestSourceSpec(t, afero.NewMemMapFs())

	fi, err := sp.NewFileInfo("/site/about.md", "about.md")
	require.NoError(t, err)
	assert.Equal(t, "", fi.Dir())
	assert.Equal(t, "about.md", fi.Path())
}

func TestFilesystemCapture(t *testing.T) {
	fs := afero.NewMemMapFs()
	for _, name := range []string{
		"/site/about.md",
		"/site/blog/post.md",
		"/site/assets/style.css",
		"/site/_drafts/wip.md",
		"/site/.git/config",
	} {
		require.NoError(t, afero.WriteFile(fs, name, []byte("x"), 0o644))
	}

	sp := newTestSourceSpec(t, fs)
	files, err := sp.NewFilesystem("/site").Files()
	require.NoError(t, err)

	var paths []string
	for _, f := range files {
		paths = append(paths, f.Path())
	}
	assert.ElementsMatch(t, []string{"about.md", "blog/post.md", "assets/style.css"}, paths)
}
