// Package markup provides the converter registry that turns source markup
// into rendered output.
package markup

import (
	"strings"

	"github.com/aoliong/jekyll/config"
	"github.com/aoliong/jekyll/helpers"
	"github.com/aoliong/jekyll/markup/converter"
	"github.com/aoliong/jekyll/markup/goldmark"
	"github.com/aoliong/jekyll/output"
)

// ConverterProvider looks up converter providers and answers what output
// extension a given source extension renders to.
type ConverterProvider interface {
	Get(name string) converter.Provider

	// IsMarkdownExt reports whether ext (without leading dot) is handled by
	// the markdown converter.
	IsMarkdownExt(ext string) bool

	// OutputExt returns the extension, including the leading dot, the
	// rendered output for a source file with extension srcExt will carry.
	OutputExt(srcExt string) string
}

// NewConverterProvider builds the registry from the site config. The list of
// markdown extensions comes from the "markdownExtensions" config entry.
func NewConverterProvider(cfg config.Provider) (ConverterProvider, error) {
	converters := make(map[string]converter.Provider)

	mdExts := helpers.UniqueStringsReuse(cfg.GetStringSlice("markdownExtensions"))
	if len(mdExts) == 0 {
		mdExts = []string{"md", "markdown"}
	}
	markdownExts := make(map[string]bool)
	for _, e := range mdExts {
		markdownExts[strings.ToLower(strings.TrimPrefix(e, "."))] = true
	}

	cpc := converter.ProviderConfig{Cfg: cfg}

	add := func(p converter.ProviderProvider, aliases ...string) error {
		c, err := p.New(cpc)
		if err != nil {
			return err
		}

		aliases = append(aliases, c.Name())
		addConverter(converters, c, aliases...)
		return nil
	}

	// default markdown handler
	if err := add(goldmark.Provider, "markdown"); err != nil {
		return nil, err
	}

	return &converterRegistry{
		converters:   converters,
		markdownExts: markdownExts,
	}, nil
}

func addConverter(m map[string]converter.Provider, c converter.Provider, aliases ...string) {
	for _, alias := range aliases {
		m[strings.ToLower(alias)] = c
	}
}

type converterRegistry struct {
	// Maps name (markdown, goldmark etc.) to a converter provider.
	// Note that this is also used for aliasing, so the same converter
	// may be registered multiple times.
	// All names are lower case.
	converters map[string]converter.Provider

	markdownExts map[string]bool
}

func (r *converterRegistry) Get(name string) converter.Provider {
	return r.converters[strings.ToLower(name)]
}

func (r *converterRegistry) IsMarkdownExt(ext string) bool {
	return r.markdownExts[strings.ToLower(strings.TrimPrefix(ext, "."))]
}

// OutputExt maps markdown sources to ".html". HTML-like sources keep their
// own extension, as does everything else (assets pass through untouched).
func (r *converterRegistry) OutputExt(srcExt string) string {
	if !strings.HasPrefix(srcExt, ".") && srcExt != "" {
		srcExt = "." + srcExt
	}
	if r.IsMarkdownExt(srcExt) {
		return ".html"
	}
	if output.IsHTMLExt(srcExt) {
		return srcExt
	}
	return srcExt
}
