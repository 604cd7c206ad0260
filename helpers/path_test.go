package helpers

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aoliong/jekyll/common/maps"
	"github.com/aoliong/jekyll/config"
)

func TestFileAndExt(t *testing.T) {
	for _, test := range []struct {
		in   string
		file string
		ext  string
	}{
		{"about.md", "about", ".md"},
		{"archive.tar.gz", "archive.tar", ".gz"},
		{"README", "README", ""},
		{".hidden", "", ".hidden"},
		{"trailing.", "trailing", "."},
	} {
		file, ext := FileAndExt(test.in)
		assert.Equal(t, test.file, file, "file of %q", test.in)
		assert.Equal(t, test.ext, ext, "ext of %q", test.in)
	}
}

func TestAddTrailingSlash(t *testing.T) {
	assert.Equal(t, "/foo/", AddTrailingSlash("/foo"))
	assert.Equal(t, "/foo/", AddTrailingSlash("/foo/"))
	assert.Equal(t, "/", AddTrailingSlash(""))
}

func TestToSlashTrimLeading(t *testing.T) {
	assert.Equal(t, "a/b.md", ToSlashTrimLeading("/a/b.md"))
	assert.Equal(t, "a/b.md", ToSlashTrimLeading("a/b.md"))
}

func TestSanitizeURL(t *testing.T) {
	assert.Equal(t, "/about/", SanitizeURL("//about/"))
	assert.Equal(t, "/", SanitizeURL("//"))
	assert.Equal(t, "/a/b.css", SanitizeURL("/a//b.css"))
	assert.Equal(t, "/a/", SanitizeURL("a/"))
}

func TestURLDecode(t *testing.T) {
	assert.Equal(t, "/café/", URLDecode("/caf%C3%A9/"))
	// Undecodable input comes back verbatim.
	assert.Equal(t, "/100%/", URLDecode("/100%/"))
}

func TestURLDir(t *testing.T) {
	assert.Equal(t, "/assets/", URLDir("/assets/style.css"))
	assert.Equal(t, "/", URLDir("/about.html"))
}

func newTestPathSpec(removeAccents bool) *PathSpec {
	cfg := config.New()
	cfg.SetDefaults(maps.Params{"removePathAccents": removeAccents})
	return NewPathSpec(afero.NewMemMapFs(), cfg)
}

func TestMakePath(t *testing.T) {
	p := newTestPathSpec(false)
	assert.Equal(t, "Social-Media", p.MakePath("Social Media"))
	assert.Equal(t, "foo.bar", p.MakePath("foo.bar"))

	p = newTestPathSpec(true)
	assert.Equal(t, "cafe", p.MakePath("café"))
}

func TestMakePathSanitized(t *testing.T) {
	p := newTestPathSpec(false)
	assert.Equal(t, "vim-text-editor", p.MakePathSanitized("Vim (text editor)"))
}

func TestURLize(t *testing.T) {
	p := newTestPathSpec(false)
	assert.Equal(t, "vim-text-editor", p.URLize("Vim (text editor)"))
	assert.Equal(t, "caf%C3%A9-menu", p.URLize("Café Menu"))
}

func TestOpenFileForWritingCreatesDirs(t *testing.T) {
	fs := afero.NewMemMapFs()
	f, err := OpenFileForWriting(fs, "/deep/nested/file.html")
	require.NoError(t, err)
	require.NoError(t, f.Close())

	exists, err := afero.Exists(fs, "/deep/nested/file.html")
	require.NoError(t, err)
	assert.True(t, exists)
}
