package helpers

import (
	"net/url"
	"path"
	"regexp"
	"strings"
)

var multiSlashRe = regexp.MustCompile("/{2,}")

// SanitizeURL collapses duplicate slashes in a generated URL and makes sure
// it is rooted with a single leading slash.
func SanitizeURL(in string) string {
	u := multiSlashRe.ReplaceAllString(in, "/")
	if !strings.HasPrefix(u, "/") {
		u = "/" + u
	}
	return u
}

// URLize is similar to MakePath, but with Unicode handling.
// Example:
//     uri: Vim (text editor)
//     urlize: vim-text-editor
func (p *PathSpec) URLize(uri string) string {
	return p.URLEscape(p.MakePathSanitized(uri))
}

// URLEscape escapes unicode letters.
func (p *PathSpec) URLEscape(uri string) string {
	// escape unicode letters
	parsedURI, err := url.Parse(uri)
	if err != nil {
		// if net/url can not parse URL it means Sanitize works incorrectly
		panic(err)
	}
	return parsedURI.String()
}

// URLDecode decodes any percent-escapes in u. It returns u verbatim when it
// does not decode cleanly, since a generated URL may legitimately contain a
// literal percent sign.
func URLDecode(u string) string {
	decoded, err := url.PathUnescape(u)
	if err != nil {
		return u
	}
	return decoded
}

// URLDir is path.Dir for URLs: the parent of u with a trailing slash.
func URLDir(u string) string {
	return AddTrailingSlash(path.Dir(u))
}
