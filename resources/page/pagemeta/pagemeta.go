// Package pagemeta holds the typed page metadata decoded from front matter.
package pagemeta

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
)

// Meta is the typed subset of a page's front matter. Everything else stays
// in the page's generic data store.
type Meta struct {
	// Title of the page, as set in front matter.
	Title string `mapstructure:"title"`

	// Layout to render the page with.
	Layout string `mapstructure:"layout"`

	// Permalink overrides the page's generated permalink template.
	Permalink string `mapstructure:"permalink"`

	// Path overrides the page's logical source path.
	Path string `mapstructure:"path"`

	// Slug replaces the file's basename in the generated URL. It is
	// slugified before use.
	Slug string `mapstructure:"slug"`

	// Published set to false keeps the page out of the build.
	Published *bool `mapstructure:"published"`

	// Draft marks the page as a draft.
	Draft bool `mapstructure:"draft"`
}

// IsPublished reports whether the page takes part in the build. Pages are
// published unless front matter says otherwise.
func (m Meta) IsPublished() bool {
	return m.Published == nil || *m.Published
}

// Decode maps raw front matter into a Meta. Unknown keys are left alone for
// the generic data store.
func Decode(fm map[string]any) (Meta, error) {
	var m Meta
	if fm == nil {
		return m, nil
	}

	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &m,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return m, err
	}
	if err := dec.Decode(fm); err != nil {
		return m, fmt.Errorf("failed to decode front matter: %w", err)
	}

	return m, nil
}
