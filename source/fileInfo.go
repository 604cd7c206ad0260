package source

import (
	"path/filepath"
	"sync"

	"github.com/aoliong/jekyll/helpers"
)

// File represents a source file.
type File interface {
	// Path gets the relative path including file name and extension.
	// The directory is relative to the content root.
	Path() string

	// Filename gets the full path and filename to the file.
	Filename() string

	// Dir gets the name of the directory that contains this file.
	// The directory is relative to the content root.
	Dir() string

	// Ext gets the file extension without the leading dot,
	// i.e. "about.md" will return "md".
	Ext() string

	// LogicalName is filename and extension of the file.
	LogicalName() string

	// BaseFileName is a filename without extension.
	BaseFileName() string

	// UniqueID is the MD5 hash of the file's relative path.
	UniqueID() string

	IsZero() bool
}

// FileInfo describes a source file.
type FileInfo struct {
	// Absolute filename to the file on disk.
	filename string

	sp *SourceSpec

	// Derived from the relative path.
	relDir   string
	relPath  string
	name     string
	ext      string
	baseName string

	uniqueID string
	lazyInit sync.Once
}

// Path gets the relative path including file name and extension. The
// directory is relative to the content root.
func (fi *FileInfo) Path() string { return fi.relPath }

// Filename returns a file's absolute path and filename on disk.
func (fi *FileInfo) Filename() string { return fi.filename }

// Dir gets the name of the directory that contains this file. The directory
// is relative to the content root.
func (fi *FileInfo) Dir() string { return fi.relDir }

// Ext returns a file's extension without the leading period (i.e. "md").
func (fi *FileInfo) Ext() string { return fi.ext }

// LogicalName returns a file's name and extension (i.e. "about.md").
func (fi *FileInfo) LogicalName() string { return fi.name }

// BaseFileName returns a file's name without extension (i.e. "about").
func (fi *FileInfo) BaseFileName() string { return fi.baseName }

// UniqueID returns a file's unique, MD5 hash identifier.
func (fi *FileInfo) UniqueID() string {
	fi.lazyInit.Do(func() {
		fi.uniqueID = helpers.MD5String(filepath.ToSlash(fi.relPath))
	})
	return fi.uniqueID
}

func (fi *FileInfo) IsZero() bool {
	return fi == nil
}
