// Package page models a single content page: a source file transformed into
// one output document with a computed URL and destination path.
package page

import (
	"errors"
	"fmt"
	"path"
	"path/filepath"
	"strings"

	"github.com/aoliong/jekyll/common/maps"
	"github.com/aoliong/jekyll/helpers"
	"github.com/aoliong/jekyll/hooks"
	"github.com/aoliong/jekyll/output"
	"github.com/aoliong/jekyll/resources/page/pagemeta"
)

// Site is the narrow view of the owning site a Page needs.
type Site interface {
	// PermalinkStyle is the site-wide permalink convention,
	// e.g. "pretty" or "date".
	PermalinkStyle() string

	// InSourceDir resolves path elements below the site source root.
	InSourceDir(path ...string) string

	// InDestDir resolves path elements below the given destination root.
	InDestDir(path ...string) string

	// URLize turns s into a URL-safe path segment.
	URLize(s string) string

	// Hooks is the lifecycle event notifier.
	Hooks() hooks.Notifier
}

// Page represents one discovered source file and its derived output
// identity. All derivations are pure string computations; a Page never
// touches the filesystem.
type Page struct {
	site Site

	// base is the root filesystem path the file was discovered under.
	// Immutable after construction.
	base string

	// dir is the path segment between base and name. Empty means site root.
	dir string

	// Derived from the file name on every ProcessName call.
	name     string
	ext      string
	basename string

	// url is memoized and invalidated whenever the name-derived fields
	// change.
	url    string
	urlSet bool

	// outputExt is the extension the rendered output will carry. It may
	// differ from the source extension, e.g. ".md" renders to ".html".
	outputExt string

	meta pagemeta.Meta
	data maps.Params

	content []byte
	output  []byte
}

// New creates a Page for the source file name found in dir below base.
// outputExt is the extension of the rendered output, including the leading
// dot. fm holds the page's front matter, if any.
//
// The page's URL is derived eagerly so that a malformed permalink template
// fails here rather than at write time.
func New(site Site, base, dir, name, outputExt string, fm map[string]any) (*Page, error) {
	if site == nil {
		return nil, errors.New("page: site must be provided")
	}
	if name == "" {
		return nil, errors.New("page: name must not be empty")
	}

	data, ok := maps.ToParamsAndPrepare(fm)
	if !ok {
		return nil, fmt.Errorf("page %q: invalid front matter", name)
	}

	meta, err := pagemeta.Decode(fm)
	if err != nil {
		return nil, fmt.Errorf("page %q: %w", name, err)
	}

	p := &Page{
		site:      site,
		base:      base,
		dir:       filepath.ToSlash(dir),
		outputExt: outputExt,
		meta:      meta,
		data:      data,
	}

	if err := p.ProcessName(name); err != nil {
		return nil, err
	}

	site.Hooks().Notify(hooks.PostInit, p)

	return p, nil
}

// ProcessName re-derives the name-dependent fields from name: the extension
// (everything from the last dot, or empty), the basename (the remainder)
// and the URL. The memoized URL is invalidated first and recomputed
// immediately, so a stale URL is never observable and a malformed permalink
// template surfaces here.
func (p *Page) ProcessName(name string) error {
	if name == "" {
		return errors.New("page: name must not be empty")
	}

	p.name = name
	p.basename, p.ext = helpers.FileAndExt(name)
	p.urlSet = false

	url, err := p.deriveURL()
	if err != nil {
		return fmt.Errorf("page %q: %w", name, err)
	}
	p.url = url
	p.urlSet = true

	return nil
}

// Name returns the original filename including extension.
func (p *Page) Name() string { return p.name }

// Ext returns the extension of the source file, including the leading dot.
func (p *Page) Ext() string { return p.ext }

// BaseName returns the filename with the extension stripped.
func (p *Page) BaseName() string { return p.basename }

// OutputExt returns the extension the rendered output will carry.
func (p *Page) OutputExt() string { return p.outputExt }

// HTMLLike reports whether the rendered output is served as hypertext.
// This is a closed extension allow-list, independent of content.
func (p *Page) HTMLLike() bool {
	return output.IsHTMLExt(p.outputExt)
}

// IsIndex reports whether this is an index file.
func (p *Page) IsIndex() bool {
	return p.basename == "index"
}

// URL returns the canonical URL for this page. The value is memoized;
// ProcessName invalidates and recomputes it.
func (p *Page) URL() string {
	if !p.urlSet {
		// ProcessName vets the template eagerly, so recomputation here
		// cannot fail.
		url, err := p.deriveURL()
		if err != nil {
			panic(err)
		}
		p.url = url
		p.urlSet = true
	}
	return p.url
}

func (p *Page) deriveURL() (string, error) {
	tmpl := p.Template()
	if p.meta.Permalink != "" {
		tmpl = p.meta.Permalink
	}

	url, err := ResolveTemplate(tmpl, p.urlPlaceholders())
	if err != nil {
		return "", err
	}

	return helpers.SanitizeURL(url), nil
}

func (p *Page) urlPlaceholders() map[string]string {
	basename := p.basename
	if p.meta.Slug != "" {
		basename = p.site.URLize(p.meta.Slug)
	}
	return map[string]string{
		"path":       p.dir,
		"basename":   basename,
		"output_ext": p.outputExt,
	}
}

// Dir returns the generated directory for this page, derived from the URL.
// It always denotes a directory-style path with a trailing slash.
func (p *Page) Dir() string {
	url := p.URL()
	if strings.HasSuffix(url, "/") {
		return url
	}
	return helpers.URLDir(url)
}

// Destination computes the on-disk output path below destRoot. The result
// is always a file path and the derivation is idempotent.
func (p *Page) Destination(destRoot string) string {
	url := p.URL()
	dest := p.site.InDestDir(destRoot, filepath.FromSlash(helpers.URLDecode(url)))
	if strings.HasSuffix(url, "/") {
		dest = filepath.Join(dest, "index")
	}
	if p.outputExt != "" && !strings.HasSuffix(dest, p.outputExt) {
		dest += p.outputExt
	}
	return dest
}

// RelativePath joins the relative directory and the filename, skipping
// empty segments, with any single leading slash stripped.
func (p *Page) RelativePath() string {
	return strings.TrimPrefix(path.Join(p.dir, p.name), "/")
}

// Path returns the page's logical source path: the front matter "path"
// value when set, the relative source path otherwise.
func (p *Page) Path() string {
	if p.meta.Path != "" {
		return p.meta.Path
	}
	return p.RelativePath()
}

// Meta returns the decoded front matter metadata.
func (p *Page) Meta() pagemeta.Meta { return p.meta }

// Params returns the raw front matter as a generic data store.
func (p *Page) Params() maps.Params { return p.data }

// Content returns the source content body.
func (p *Page) Content() []byte { return p.content }

// SetContent assigns the source content body.
func (p *Page) SetContent(b []byte) { p.content = b }

// Output returns the rendered output assigned by the rendering layer.
func (p *Page) Output() []byte { return p.output }

// SetOutput assigns the rendered output bytes.
func (p *Page) SetOutput(b []byte) { p.output = b }

// liquidAttributes is the closed set of derived values exposed to the
// template engine. It must stay exactly these five entries for template
// compatibility.
var liquidAttributes = map[string]func(p *Page) any{
	"content": func(p *Page) any { return string(p.Content()) },
	"dir":     func(p *Page) any { return p.Dir() },
	"name":    func(p *Page) any { return p.Name() },
	"path":    func(p *Page) any { return p.Path() },
	"url":     func(p *Page) any { return p.URL() },
}

// Resolve looks up a property for the template engine. Names matching one
// of the five derived attributes dispatch to the accessor; anything else
// falls through to the page's generic data store. The second return value
// reports whether the property was found.
func (p *Page) Resolve(key string) (any, bool) {
	if fn, found := liquidAttributes[key]; found {
		return fn(p), true
	}
	v := p.data.Get(key)
	return v, v != nil
}

// GeneratesExcerpt reports whether the render pipeline should build an
// excerpt for this page. Pages never do.
func (p *Page) GeneratesExcerpt() bool { return false }

// RendersWithTemplateEngine reports whether the templating pass runs before
// final output conversion. Pages always do.
func (p *Page) RendersWithTemplateEngine() bool { return true }
