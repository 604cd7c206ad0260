package output

import (
	"strings"
)

// HTMLExtensions is the closed set of output extensions served as hypertext.
// It is a pure allow-list: no MIME sniffing, no content inspection.
var HTMLExtensions = []string{".html", ".xhtml", ".htm"}

// IsHTMLExt reports whether ext is in HTMLExtensions. The check is case
// insensitive.
func IsHTMLExt(ext string) bool {
	ext = strings.ToLower(ext)
	for _, e := range HTMLExtensions {
		if e == ext {
			return true
		}
	}
	return false
}

// Format represents an output representation, usually to a file on disk.
type Format struct {
	// The Name is used as an identifier. Internal output formats (i.e. HTML)
	// can be overridden by providing a new definition for those types.
	Name string `json:"name"`

	// MediaType is the IANA style media type for this format, e.g.
	// "text/html". It selects the minifier for published output.
	MediaType string `json:"mediaType"`

	// Ext is the output file extension, including the leading dot.
	Ext string `json:"ext"`

	// The base output file name used for directory-style URLs.
	BaseName string `json:"baseName"`

	// IsHTML returns whether this format is in the HTML family.
	IsHTML bool `json:"isHTML"`

	// IsPlainText decides whether to treat the content as plain text when
	// transforming published output.
	IsPlainText bool `json:"isPlainText"`
}

// Formats is a slice of Format.
type Formats []Format

// Built-in output formats.
var (
	HTMLFormat = Format{
		Name:      "html",
		MediaType: "text/html",
		Ext:       ".html",
		BaseName:  "index",
		IsHTML:    true,
	}

	CSSFormat = Format{
		Name:        "css",
		MediaType:   "text/css",
		Ext:         ".css",
		IsPlainText: true,
	}

	JSFormat = Format{
		Name:        "js",
		MediaType:   "application/javascript",
		Ext:         ".js",
		IsPlainText: true,
	}

	JSONFormat = Format{
		Name:        "json",
		MediaType:   "application/json",
		Ext:         ".json",
		IsPlainText: true,
	}

	XMLFormat = Format{
		Name:      "xml",
		MediaType: "application/xml",
		Ext:       ".xml",
	}
)

// DefaultFormats contains the default output formats.
var DefaultFormats = Formats{
	HTMLFormat,
	CSSFormat,
	JSFormat,
	JSONFormat,
	XMLFormat,
}

// GetByName gets a format by its identifier name.
func (formats Formats) GetByName(name string) (f Format, found bool) {
	for _, ff := range formats {
		if strings.EqualFold(name, ff.Name) {
			f = ff
			found = true
			return
		}
	}
	return
}

// FromExt resolves the output format for a file extension (with leading
// dot). Extensions without a registered format get a pass-through format
// preserving the extension.
func (formats Formats) FromExt(ext string) Format {
	lext := strings.ToLower(ext)
	for _, ff := range formats {
		if ff.Ext == lext {
			return ff
		}
	}
	if IsHTMLExt(lext) {
		f := HTMLFormat
		f.Ext = lext
		return f
	}
	return Format{
		Name:        strings.TrimPrefix(lext, "."),
		MediaType:   "application/octet-stream",
		Ext:         ext,
		IsPlainText: true,
	}
}
