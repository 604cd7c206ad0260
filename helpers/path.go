package helpers

import (
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/spf13/afero"

	"github.com/aoliong/jekyll/common/text"
)

// Ext returns the extension of name, including the leading dot. Everything
// from the last dot to the end counts as the extension; a name without a dot
// has an empty extension.
func Ext(name string) string {
	_, ext := FileAndExt(name)
	return ext
}

// FileAndExt splits name into the part before the extension and the
// extension itself.
func FileAndExt(name string) (string, string) {
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		return name[:i], name[i:]
	}
	return name, ""
}

// AddTrailingSlash adds a trailing Unix styled slash (/) if not already
// there.
func AddTrailingSlash(path string) string {
	if !strings.HasSuffix(path, "/") {
		path += "/"
	}
	return path
}

// ToSlashTrimLeading is just a filepath.ToSlash with an added / prefix trimmer.
func ToSlashTrimLeading(s string) string {
	return strings.TrimPrefix(filepath.ToSlash(s), "/")
}

// OpenFileForWriting opens or creates the given file. If the target directory
// does not exist, it gets created.
func OpenFileForWriting(fs afero.Fs, filename string) (afero.File, error) {
	filename = filepath.Clean(filename)
	// Create will truncate if file already exists.
	f, err := fs.Create(filename)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, err
		}
		if err = fs.MkdirAll(filepath.Dir(filename), 0777); err != nil { // before umask
			return nil, err
		}
		f, err = fs.Create(filename)
	}

	return f, err
}

// MakePath takes a string with any characters and replaces it so the string
// could be used in a path. It does so by creating a Unicode-sanitized string,
// with the spaces replaced, whilst preserving the original casing of the
// string. E.g. Social Media -> Social-Media
func (p *PathSpec) MakePath(s string) string {
	if p.RemovePathAccents {
		s = text.RemoveAccentsString(s)
	}
	return p.UnicodeSanitize(s)
}

// MakePathSanitized creates a Unicode-sanitized string, with the spaces
// replaced, and lower cased.
func (p *PathSpec) MakePathSanitized(s string) string {
	return strings.ToLower(p.MakePath(s))
}

// UnicodeSanitize sanitizes a string to be used in a URL path, allowing only
// a predefined set of special characters next to letters, digits and marks.
// Spaces will be replaced with a single hyphen, and sequential replacement
// hyphens will be reduced to one.
func (p *PathSpec) UnicodeSanitize(s string) string {
	source := []rune(s)
	target := make([]rune, 0, len(source))
	var (
		prependHyphen bool
		wasHyphen     bool
	)

	for i, r := range source {
		isAllowed := r == '.' || r == '/' || r == '\\' || r == '_' || r == '#' || r == '+' || r == '~' || r == '-'
		isAllowed = isAllowed || unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsMark(r)
		isAllowed = isAllowed || (r == '%' && i+2 < len(source) && ishex(source[i+1]) && ishex(source[i+2]))

		if isAllowed {
			// track explicit hyphen in input; no need to add a new hyphen if
			// we just saw one.
			wasHyphen = r == '-'

			if prependHyphen {
				if !wasHyphen {
					target = append(target, '-')
				}
				prependHyphen = false
			}
			target = append(target, r)
		} else if len(target) > 0 && !wasHyphen && unicode.IsSpace(r) {
			prependHyphen = true
		}
	}

	return string(target)
}

// From https://golang.org/src/net/url/url.go
func ishex(c rune) bool {
	switch {
	case '0' <= c && c <= '9':
		return true
	case 'a' <= c && c <= 'f':
		return true
	case 'A' <= c && c <= 'F':
		return true
	}
	return false
}
