package publisher

import (
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aoliong/jekyll/config"
	"github.com/aoliong/jekyll/output"
)

func TestPublishWritesFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	pub, err := NewDestinationPublisher(fs, output.DefaultFormats, config.New())
	require.NoError(t, err)

	err = pub.Publish(Descriptor{
		Src:          strings.NewReader("<html><body>hi</body></html>"),
		OutputFormat: output.HTMLFormat,
		TargetPath:   "/out/about/index.html",
	})
	require.NoError(t, err)

	b, err := afero.ReadFile(fs, "/out/about/index.html")
	require.NoError(t, err)
	assert.Contains(t, string(b), "hi")
}

func TestPublishRequiresTargetPath(t *testing.T) {
	pub, err := NewDestinationPublisher(afero.NewMemMapFs(), output.DefaultFormats, config.New())
	require.NoError(t, err)

	err = pub.Publish(Descriptor{Src: strings.NewReader("x")})
	assert.Error(t, err)
}

func TestPublishMinifiesHTML(t *testing.T) {
	fs := afero.NewMemMapFs()
	pub, err := NewDestinationPublisher(fs, output.DefaultFormats, config.New())
	require.NoError(t, err)

	err = pub.Publish(Descriptor{
		Src:          strings.NewReader("<html>\n  <body>\n    <p>hi</p>\n  </body>\n</html>\n"),
		OutputFormat: output.HTMLFormat,
		TargetPath:   "/out/index.html",
		Minify:       true,
	})
	require.NoError(t, err)

	b, err := afero.ReadFile(fs, "/out/index.html")
	require.NoError(t, err)
	assert.NotContains(t, string(b), "\n  ")
}

func TestPublishUnknownMediaTypeFallsBackToCopy(t *testing.T) {
	fs := afero.NewMemMapFs()
	pub, err := NewDestinationPublisher(fs, output.DefaultFormats, config.New())
	require.NoError(t, err)

	err = pub.Publish(Descriptor{
		Src:          strings.NewReader("binary-ish"),
		OutputFormat: output.DefaultFormats.FromExt(".woff2"),
		TargetPath:   "/out/font.woff2",
		Minify:       true,
	})
	require.NoError(t, err)

	b, err := afero.ReadFile(fs, "/out/font.woff2")
	require.NoError(t, err)
	assert.Equal(t, "binary-ish", string(b))
}
