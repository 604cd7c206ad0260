package helpers

import (
	"github.com/spf13/afero"

	"github.com/aoliong/jekyll/config"
)

// PathSpec holds methods that decide how paths in URLs and files should look
// like.
type PathSpec struct {
	// The filesystem the source tree lives on.
	Fs afero.Fs

	// The config provider to use.
	Cfg config.Provider

	// WorkingDir is the site root on Fs.
	WorkingDir string

	// RemovePathAccents strips accents from generated paths when enabled.
	RemovePathAccents bool
}

// NewPathSpec creates a new PathSpec from the given filesystem and config.
func NewPathSpec(fs afero.Fs, cfg config.Provider) *PathSpec {
	return &PathSpec{
		Fs:                fs,
		Cfg:               cfg,
		WorkingDir:        cfg.GetString("workingDir"),
		RemovePathAccents: cfg.GetBool("removePathAccents"),
	}
}
