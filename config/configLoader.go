package config

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/aoliong/jekyll/common/maps"
	"github.com/aoliong/jekyll/parser/metadecoders"
)

// ConfigFileNames are the site configuration files looked up in the working
// directory, in order of preference.
var ConfigFileNames = []string{"_config.toml", "_config.yml", "_config.yaml"}

// FromFile loads the configuration from the given filename.
func FromFile(fs afero.Fs, filename string) (Provider, error) {
	m, err := loadConfigFromFile(fs, filename)
	if err != nil {
		return nil, err
	}
	return NewFrom(m), nil
}

func loadConfigFromFile(fs afero.Fs, filename string) (map[string]any, error) {
	m, err := metadecoders.Default.UnmarshalFileToMap(fs, filename)
	if err != nil {
		return nil, fmt.Errorf("failed to load config from %q: %w", filename, err)
	}
	return m, nil
}

// LoadSiteConfig looks for a site configuration file in workingDir and
// returns a Provider with site defaults applied. A missing configuration
// file is not an error.
func LoadSiteConfig(fs afero.Fs, workingDir string) (Provider, error) {
	cfg := New()

	for _, name := range ConfigFileNames {
		filename := filepath.Join(workingDir, name)
		exists, err := afero.Exists(fs, filename)
		if err != nil {
			return nil, err
		}
		if !exists {
			continue
		}
		cfg, err = FromFile(fs, filename)
		if err != nil {
			return nil, err
		}
		break
	}

	cfg.SetDefaults(maps.Params{
		"permalink":          "date",
		"destination":        "_site",
		"markdownExtensions": []string{"md", "markdown", "mkd", "mkdn"},
		"exclude":            []string{},
		"removePathAccents":  false,
		"minify":             maps.Params{"enable": false},
	})

	return cfg, nil
}
