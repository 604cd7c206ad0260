package sitelib

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aoliong/jekyll/hooks"
)

func newTestFs(t *testing.T, files map[string]string) afero.Fs {
	t.Helper()
	fs := afero.NewMemMapFs()
	for name, content := range files {
		require.NoError(t, afero.WriteFile(fs, name, []byte(content), 0o644))
	}
	return fs
}

func readFile(t *testing.T, fs afero.Fs, name string) string {
	t.Helper()
	b, err := afero.ReadFile(fs, name)
	require.NoError(t, err, name)
	return string(b)
}

func TestSiteBuildPretty(t *testing.T) {
	fs := newTestFs(t, map[string]string{
		"/site/_config.toml":     "permalink = \"pretty\"\n",
		"/site/index.md":         "# Home\n",
		"/site/about.md":         "---\ntitle: About\n---\n## About\n",
		"/site/assets/style.css": "body { margin: 0; }\n",
		"/site/_drafts/wip.md":   "# not built\n",
	})

	site, err := New(nil, fs, "/site")
	require.NoError(t, err)
	require.NoError(t, site.Build())

	assert.Len(t, site.Pages(), 3)

	// Markdown pages land under directory-style URLs.
	home := readFile(t, fs, "/site/_site/index.html")
	assert.Contains(t, home, "<h1")

	about := readFile(t, fs, "/site/_site/about/index.html")
	assert.Contains(t, about, "<h2")

	// Assets keep their extension and path.
	css := readFile(t, fs, "/site/_site/assets/style.css")
	assert.Contains(t, css, "margin")

	// Underscore directories never publish.
	exists, err := afero.Exists(fs, "/site/_site/_drafts/wip/index.html")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestSiteBuildFlatStyle(t *testing.T) {
	fs := newTestFs(t, map[string]string{
		"/site/_config.yml": "permalink: none\n",
		"/site/about.md":    "# About\n",
	})

	site, err := New(nil, fs, "/site")
	require.NoError(t, err)
	require.NoError(t, site.Build())

	exists, err := afero.Exists(fs, "/site/_site/about.html")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestSiteGetPage(t *testing.T) {
	fs := newTestFs(t, map[string]string{
		"/site/blog/one.md":         "# One\n",
		"/site/blog/two.md":         "# Two\n",
		"/site/blog-notes/three.md": "# Three\n",
		"/site/about.md":            "# About\n",
	})

	site, err := New(nil, fs, "/site")
	require.NoError(t, err)
	require.NoError(t, site.Build())

	p := site.GetPage("blog/one.md")
	require.NotNil(t, p)
	assert.Equal(t, "one.md", p.Name())

	assert.Nil(t, site.GetPage("blog/none.md"))

	// A sibling directory sharing the prefix stays out.
	assert.Len(t, site.PagesUnder("blog"), 2)
	assert.Len(t, site.PagesUnder("blog-notes"), 1)
	assert.Len(t, site.PagesUnder(""), 4)
}

func TestSiteSkipsUnpublishedPages(t *testing.T) {
	fs := newTestFs(t, map[string]string{
		"/site/hidden.md":  "---\npublished: false\n---\n# Hidden\n",
		"/site/visible.md": "# Visible\n",
	})

	site, err := New(nil, fs, "/site")
	require.NoError(t, err)
	require.NoError(t, site.Build())

	assert.Len(t, site.Pages(), 1)
	exists, err := afero.Exists(fs, "/site/_site/hidden.html")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestSiteHooksFire(t *testing.T) {
	fs := newTestFs(t, map[string]string{
		"/site/about.md": "# About\n",
	})

	site, err := New(nil, fs, "/site")
	require.NoError(t, err)

	var events []string
	for _, ev := range []string{hooks.PostInit, hooks.PostRender, hooks.PostWrite} {
		ev := ev
		site.OnHook(ev, func(any) { events = append(events, ev) })
	}

	require.NoError(t, site.Build())
	assert.Equal(t, []string{hooks.PostInit, hooks.PostRender, hooks.PostWrite}, events)
}

func TestSiteMinifiesWhenEnabled(t *testing.T) {
	fs := newTestFs(t, map[string]string{
		"/site/_config.toml": "permalink = \"pretty\"\n[minify]\nenable = true\n",
		"/site/about.md":     "# About\n\nText.\n",
	})

	site, err := New(nil, fs, "/site")
	require.NoError(t, err)
	require.NoError(t, site.Build())

	out := readFile(t, fs, "/site/_site/about/index.html")
	assert.Contains(t, out, "<h1")
	assert.NotContains(t, out, "\n\n")
}

func TestInDestDirClampsEscapes(t *testing.T) {
	site, err := New(nil, afero.NewMemMapFs(), "/site")
	require.NoError(t, err)

	dest := site.InDestDir("/out", "../../etc/passwd")
	assert.Equal(t, "/out/passwd", dest)

	// A sibling whose name shares the root as a string prefix is still
	// outside the root.
	dest = site.InDestDir("/out", "../outsider")
	assert.Equal(t, "/out/outsider", dest)

	dest = site.InDestDir("/out", "/about/index.html")
	assert.Equal(t, "/out/about/index.html", dest)
}

func TestSiteSlugPage(t *testing.T) {
	fs := newTestFs(t, map[string]string{
		"/site/_config.toml": "permalink = \"pretty\"\n",
		"/site/services.md":  "---\nslug: Our Services\n---\n# Services\n",
	})

	site, err := New(nil, fs, "/site")
	require.NoError(t, err)
	require.NoError(t, site.Build())

	p := site.GetPage("services.md")
	require.NotNil(t, p)
	assert.Equal(t, "/our-services/", p.URL())

	exists, err := afero.Exists(fs, "/site/_site/our-services/index.html")
	require.NoError(t, err)
	assert.True(t, exists)
}
