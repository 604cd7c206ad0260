package page

import (
	"fmt"
	"regexp"
	"strings"
)

// Permalink styles accepted in site config. Any other value is treated as a
// custom permalink template.
const (
	StylePretty  = "pretty"
	StyleDate    = "date"
	StyleOrdinal = "ordinal"
	StyleNone    = "none"
)

// The three permalink template shapes. Non-HTML output keeps its extension
// and never gets a directory-style URL; index files collapse to their
// directory; everything else gets a style-dependent suffix.
const (
	templateAsset = "/:path/:basename:output_ext"
	templateIndex = "/:path/"
	templateHTML  = "/:path/:basename"
)

// Template selects the permalink template for this page from its
// classification and the site's permalink style.
func (p *Page) Template() string {
	switch {
	case !p.HTMLLike():
		return templateAsset
	case p.IsIndex():
		return templateIndex
	default:
		return AddPermalinkSuffix(templateHTML, p.site.PermalinkStyle())
	}
}

// AddPermalinkSuffix appends the style-dependent suffix to a permalink
// template: a trailing slash for pretty URLs, an explicit ":output_ext" for
// the flat styles. A custom template style dictates the suffix by whether
// it ends with a slash itself.
func AddPermalinkSuffix(template, style string) string {
	switch style {
	case StylePretty:
		return template + "/"
	case StyleDate, StyleOrdinal, StyleNone, "", "ugly", "weekdate":
		return template + ":output_ext"
	default:
		if strings.HasSuffix(style, "/") {
			return template + "/"
		}
		return template + ":output_ext"
	}
}

var placeholderRe = regexp.MustCompile(`:([a-z_]+)`)

// ResolveTemplate substitutes every ":name" placeholder in template with its
// value. A placeholder without a value is a malformed template and returns
// an error.
func ResolveTemplate(template string, values map[string]string) (string, error) {
	var unknown string
	resolved := placeholderRe.ReplaceAllStringFunc(template, func(match string) string {
		v, found := values[match[1:]]
		if !found {
			if unknown == "" {
				unknown = match
			}
			return match
		}
		return v
	})
	if unknown != "" {
		return "", fmt.Errorf("malformed permalink template %q: unknown placeholder %q", template, unknown)
	}
	return resolved, nil
}
