// Package publisher writes rendered output to its destination.
package publisher

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/afero"
	"github.com/tdewolff/minify/v2"

	"github.com/aoliong/jekyll/config"
	"github.com/aoliong/jekyll/helpers"
	"github.com/aoliong/jekyll/minifiers"
	"github.com/aoliong/jekyll/output"
)

// Publisher publishes a result file.
type Publisher interface {
	Publish(d Descriptor) error
}

// Descriptor describes the needed publishing chain for an item.
type Descriptor struct {
	// The content to publish.
	Src io.Reader

	// The OutputFormat of this content.
	OutputFormat output.Format

	// Where to publish this content. This is a filesystem-relative path.
	TargetPath string

	// Enable to minify the output using the OutputFormat defined above to
	// pick the correct minifier configuration.
	Minify bool
}

// DestinationPublisher prepares and publishes an item to the defined
// destination, e.g. _site.
type DestinationPublisher struct {
	fs  afero.Fs
	min minifiers.Client
}

// NewDestinationPublisher creates a new DestinationPublisher writing to fs.
func NewDestinationPublisher(fs afero.Fs, outputFormats output.Formats, cfg config.Provider) (DestinationPublisher, error) {
	pub := DestinationPublisher{fs: fs}
	min, err := minifiers.New(outputFormats, cfg)
	if err != nil {
		return pub, err
	}
	pub.min = min
	return pub, nil
}

// Publish applies any relevant transformations and writes the file to its
// destination.
func (p DestinationPublisher) Publish(d Descriptor) error {
	if d.TargetPath == "" {
		return errors.New("publish: must provide a TargetPath")
	}

	f, err := helpers.OpenFileForWriting(p.fs, d.TargetPath)
	if err != nil {
		return err
	}
	defer f.Close()

	if d.Minify || p.min.MinifyOutput {
		err := p.min.Minify(d.OutputFormat.MediaType, f, d.Src)
		if err == nil {
			return nil
		}
		if !errors.Is(err, minify.ErrNotExist) {
			return fmt.Errorf("failed to minify %q: %w", d.TargetPath, err)
		}
		// No minifier for this media type. Fall through to a plain copy.
	}

	_, err = io.Copy(f, d.Src)
	return err
}
