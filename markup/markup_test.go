package markup

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aoliong/jekyll/common/maps"
	"github.com/aoliong/jekyll/config"
	"github.com/aoliong/jekyll/markup/converter"
)

func newTestProvider(t *testing.T) ConverterProvider {
	t.Helper()
	cfg := config.New()
	cfg.SetDefaults(maps.Params{"markdownExtensions": []string{"md", "markdown"}})
	p, err := NewConverterProvider(cfg)
	require.NoError(t, err)
	return p
}

func TestIsMarkdownExt(t *testing.T) {
	p := newTestProvider(t)

	assert.True(t, p.IsMarkdownExt("md"))
	assert.True(t, p.IsMarkdownExt(".md"))
	assert.True(t, p.IsMarkdownExt("markdown"))
	assert.False(t, p.IsMarkdownExt("css"))
	assert.False(t, p.IsMarkdownExt("html"))
}

func TestOutputExt(t *testing.T) {
	p := newTestProvider(t)

	assert.Equal(t, ".html", p.OutputExt(".md"))
	assert.Equal(t, ".html", p.OutputExt("md"))
	assert.Equal(t, ".html", p.OutputExt(".html"))
	assert.Equal(t, ".xhtml", p.OutputExt(".xhtml"))
	assert.Equal(t, ".css", p.OutputExt(".css"))
	assert.Equal(t, "", p.OutputExt(""))
}

func TestGoldmarkConvert(t *testing.T) {
	p := newTestProvider(t)

	cp := p.Get("markdown")
	require.NotNil(t, cp)
	assert.Equal(t, "goldmark", cp.Name())

	c, err := cp.New(converter.DocumentContext{DocumentName: "test.md"})
	require.NoError(t, err)

	r, err := c.Convert(converter.RenderContext{Src: []byte("## Title\n\nSome *text*.")})
	require.NoError(t, err)

	html := string(r.Bytes())
	assert.True(t, strings.Contains(html, "<h2"), html)
	assert.True(t, strings.Contains(html, "<em>text</em>"), html)
}

func TestGetUnknownConverter(t *testing.T) {
	p := newTestProvider(t)
	assert.Nil(t, p.Get("asciidoc"))
}
