package source

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/afero"
)

// Filesystem represents a source filesystem rooted at Base.
type Filesystem struct {
	files        []File
	filesInit    sync.Once
	filesInitErr error

	Base string

	*SourceSpec
}

// NewFilesystem returns a source filesystem rooted at base.
func (sp *SourceSpec) NewFilesystem(base string) *Filesystem {
	return &Filesystem{SourceSpec: sp, Base: base}
}

// Files returns a slice of readable files, sorted by the walk order.
func (f *Filesystem) Files() ([]File, error) {
	f.filesInit.Do(func() {
		err := f.captureFiles()
		if err != nil {
			f.filesInitErr = fmt.Errorf("capture files: %w", err)
		}
	})
	return f.files, f.filesInitErr
}

func (f *Filesystem) captureFiles() error {
	walker := func(filename string, fi os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		rel := filename
		if f.Base != "" {
			var relErr error
			rel, relErr = filepath.Rel(f.Base, filename)
			if relErr != nil {
				return relErr
			}
		}
		rel = strings.TrimPrefix(rel, string(filepath.Separator))
		if rel == "" || rel == "." {
			return nil
		}

		if fi.IsDir() {
			if f.IgnoreDir(rel) {
				return filepath.SkipDir
			}
			return nil
		}

		if f.IgnoreFile(rel) {
			return nil
		}

		return f.add(filename, rel)
	}

	return afero.Walk(f.SourceFs, f.Base, walker)
}

func (f *Filesystem) add(filename, relPath string) error {
	fi, err := f.NewFileInfo(filename, relPath)
	if err != nil {
		return err
	}
	f.files = append(f.files, fi)
	return nil
}
