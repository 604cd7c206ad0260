// Package minifiers wraps tdewolff/minify for the publishing step.
package minifiers

import (
	"io"
	"regexp"

	"github.com/tdewolff/minify/v2"

	"github.com/aoliong/jekyll/config"
	"github.com/aoliong/jekyll/output"
)

// Client wraps a minifier.
type Client struct {
	m *minify.M

	// MinifyOutput reports whether the site config asked for minified
	// published output.
	MinifyOutput bool
}

// New creates a new Client keyed on the media types of the given output
// formats.
func New(outputFormats output.Formats, cfg config.Provider) (Client, error) {
	conf, err := decodeConfig(cfg)
	if err != nil {
		return Client{}, err
	}

	m := minify.New()

	m.Add("text/css", getMinifier(conf, "css"))
	m.AddRegexp(regexp.MustCompile("^(application|text)/(x-)?(java|ecma)script$"), getMinifier(conf, "js"))
	m.AddRegexp(regexp.MustCompile(`^(application|text)/(x-|(ld|manifest)\+)?json$`), getMinifier(conf, "json"))
	m.Add("image/svg+xml", getMinifier(conf, "svg"))
	m.AddRegexp(regexp.MustCompile(`^(application|text)/(x-|\w+\+)?xml$`), getMinifier(conf, "xml"))

	// HTML, including any HTML family output formats.
	m.Add("text/html", getMinifier(conf, "html"))
	for _, of := range outputFormats {
		if of.IsHTML {
			m.Add(of.MediaType, getMinifier(conf, "html"))
		}
	}

	return Client{m: m, MinifyOutput: conf.MinifyOutput}, nil
}

// Minify writes a minified version of src to dst, picking the minifier by
// mediatype.
func (c Client) Minify(mediatype string, dst io.Writer, src io.Reader) error {
	return c.m.Minify(mediatype, dst, src)
}

// getMinifier returns the appropriate minify.Minifier for the MIME
// type suffix s, given the config c.
func getMinifier(c minifyConfig, s string) minify.Minifier {
	switch {
	case s == "css" && !c.DisableCSS:
		return &c.Tdewolff.CSS
	case s == "js" && !c.DisableJS:
		return &c.Tdewolff.JS
	case s == "json" && !c.DisableJSON:
		return &c.Tdewolff.JSON
	case s == "svg" && !c.DisableSVG:
		return &c.Tdewolff.SVG
	case s == "xml" && !c.DisableXML:
		return &c.Tdewolff.XML
	case s == "html" && !c.DisableHTML:
		return &c.Tdewolff.HTML
	default:
		return noopMinifier{}
	}
}

// noopMinifier implements minify.Minifier, but doesn't minify content. This
// keeps minification per type switchable without missing-minifier errors.
type noopMinifier struct{}

// Minify copies r into w without transformation.
func (m noopMinifier) Minify(_ *minify.M, w io.Writer, r io.Reader, _ map[string]string) error {
	_, err := io.Copy(w, r)
	return err
}
