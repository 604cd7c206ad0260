package output

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsHTMLExt(t *testing.T) {
	for _, ext := range []string{".html", ".xhtml", ".htm", ".HTML"} {
		assert.True(t, IsHTMLExt(ext), ext)
	}
	for _, ext := range []string{".css", ".md", ".json", "html", ""} {
		assert.False(t, IsHTMLExt(ext), ext)
	}
}

func TestFormatsGetByName(t *testing.T) {
	f, found := DefaultFormats.GetByName("HTML")
	assert.True(t, found)
	assert.Equal(t, "text/html", f.MediaType)

	_, found = DefaultFormats.GetByName("nope")
	assert.False(t, found)
}

func TestFormatsFromExt(t *testing.T) {
	f := DefaultFormats.FromExt(".css")
	assert.Equal(t, CSSFormat, f)

	f = DefaultFormats.FromExt(".xhtml")
	assert.True(t, f.IsHTML)
	assert.Equal(t, ".xhtml", f.Ext)
	assert.Equal(t, "index", f.BaseName)

	f = DefaultFormats.FromExt(".woff2")
	assert.Equal(t, ".woff2", f.Ext)
	assert.Equal(t, "application/octet-stream", f.MediaType)
	assert.False(t, f.IsHTML)
}
