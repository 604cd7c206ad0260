package source

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/gobwas/glob"
	"github.com/spf13/afero"

	"github.com/aoliong/jekyll/helpers"
)

// SourceSpec abstracts source file creation.
type SourceSpec struct {
	*helpers.PathSpec

	SourceFs afero.Fs

	excludes []glob.Glob
}

// NewSourceSpec initializes a SourceSpec using the given PathSpec and
// filesystem. Exclude patterns come from the "exclude" config entry and are
// matched against slash-separated relative paths.
func NewSourceSpec(ps *helpers.PathSpec, fs afero.Fs) (*SourceSpec, error) {
	var excludes []glob.Glob
	for _, pattern := range ps.Cfg.GetStringSlice("exclude") {
		g, err := glob.Compile(pattern, '/')
		if err != nil {
			return nil, fmt.Errorf("invalid exclude pattern %q: %w", pattern, err)
		}
		excludes = append(excludes, g)
	}

	return &SourceSpec{
		PathSpec: ps,
		SourceFs: fs,
		excludes: excludes,
	}, nil
}

// IgnoreFile returns whether a given file should be ignored.
// Every path segment is checked, so a file below an ignored directory is
// ignored too. Segments starting with "_", "." or "#", or ending with "~",
// are skipped, as is anything matching a configured exclude pattern.
func (s *SourceSpec) IgnoreFile(relPath string) bool {
	if relPath == "" {
		return true
	}

	slashed := filepath.ToSlash(relPath)
	for _, seg := range strings.Split(slashed, "/") {
		if seg == "" {
			continue
		}
		first := seg[0]
		last := seg[len(seg)-1]
		if first == '.' ||
			first == '_' ||
			first == '#' ||
			last == '~' {
			return true
		}
	}

	for _, g := range s.excludes {
		if g.Match(slashed) {
			return true
		}
	}

	return false
}

// IgnoreDir reports whether a directory and everything below it should be
// skipped during capture.
func (s *SourceSpec) IgnoreDir(relDir string) bool {
	if relDir == "" || relDir == "." {
		return false
	}
	return s.IgnoreFile(relDir)
}

// NewFileInfo creates a FileInfo for the file at relPath below the content
// root, with filename the absolute path on disk.
func (sp *SourceSpec) NewFileInfo(filename, relPath string) (*FileInfo, error) {
	if relPath == "" {
		return nil, fmt.Errorf("no relative path provided for %q", filename)
	}
	if filename == "" {
		return nil, fmt.Errorf("no filename provided for %q", relPath)
	}

	relDir := filepath.Dir(relPath)
	if relDir == "." {
		relDir = ""
	}

	_, name := filepath.Split(relPath)

	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(name), "."))
	baseName := strings.TrimSuffix(name, filepath.Ext(name))

	f := &FileInfo{
		sp:       sp,
		filename: filename,
		relDir:   relDir,
		relPath:  relPath,
		name:     name,
		ext:      ext,
		baseName: baseName,
	}

	return f, nil
}
