// Package sitelib owns the site: configuration, source capture, page
// creation, rendering and publishing.
package sitelib

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"github.com/aoliong/jekyll/config"
	"github.com/aoliong/jekyll/helpers"
	"github.com/aoliong/jekyll/hooks"
	"github.com/aoliong/jekyll/markup"
	"github.com/aoliong/jekyll/output"
	"github.com/aoliong/jekyll/parser"
	"github.com/aoliong/jekyll/publisher"
	"github.com/aoliong/jekyll/resources/page"
	"github.com/aoliong/jekyll/source"
)

// Site builds one static site from a source tree.
type Site struct {
	Cfg config.Provider
	Fs  afero.Fs
	Log *slog.Logger

	PathSpec   *helpers.PathSpec
	sourceSpec *source.SourceSpec

	conv  markup.ConverterProvider
	hooks *hooks.Registry
	pub   publisher.Publisher

	workingDir string
	destDir    string

	outputFormats output.Formats

	pageMap *pageMap
	pages   page.Pages
}

// New creates a Site reading from and writing to fs, with workingDir the
// site root on fs.
func New(cfg config.Provider, fs afero.Fs, workingDir string) (*Site, error) {
	if cfg == nil {
		var err error
		cfg, err = config.LoadSiteConfig(fs, workingDir)
		if err != nil {
			return nil, err
		}
	}

	ps := helpers.NewPathSpec(fs, cfg)
	sp, err := source.NewSourceSpec(ps, fs)
	if err != nil {
		return nil, err
	}

	conv, err := markup.NewConverterProvider(cfg)
	if err != nil {
		return nil, err
	}

	formats := output.DefaultFormats

	pub, err := publisher.NewDestinationPublisher(fs, formats, cfg)
	if err != nil {
		return nil, err
	}

	destDir := cfg.GetString("destination")
	if destDir == "" {
		destDir = "_site"
	}
	if !filepath.IsAbs(destDir) {
		destDir = filepath.Join(workingDir, destDir)
	}

	return &Site{
		Cfg:           cfg,
		Fs:            fs,
		Log:           slog.Default().With("component", "site"),
		PathSpec:      ps,
		sourceSpec:    sp,
		conv:          conv,
		hooks:         hooks.NewRegistry(),
		pub:           pub,
		workingDir:    workingDir,
		destDir:       destDir,
		outputFormats: formats,
		pageMap:       newPageMap(),
	}, nil
}

// PermalinkStyle returns the site-wide permalink convention.
func (s *Site) PermalinkStyle() string {
	return s.Cfg.GetString("permalink")
}

// InSourceDir resolves path elements below the site source root.
func (s *Site) InSourceDir(path ...string) string {
	return filepath.Join(append([]string{s.workingDir}, path...)...)
}

// InDestDir resolves path elements below the given destination root. The
// result never escapes the first element.
func (s *Site) InDestDir(path ...string) string {
	if len(path) == 0 {
		return ""
	}
	root := filepath.Clean(path[0])
	joined := filepath.Join(path...)
	if joined != root && !strings.HasPrefix(joined, root+string(filepath.Separator)) {
		// A crafted URL must not write outside the destination root. Note
		// that a bare prefix check would admit siblings like root+"sibling".
		joined = filepath.Join(root, filepath.Base(joined))
	}
	return joined
}

// URLize turns s into a URL-safe path segment.
func (s *Site) URLize(u string) string {
	return s.PathSpec.URLize(u)
}

// Hooks returns the site's lifecycle notifier.
func (s *Site) Hooks() hooks.Notifier {
	return s.hooks
}

// OnHook registers fn for a page lifecycle event, e.g. hooks.PostInit.
func (s *Site) OnHook(event string, fn hooks.ListenerFunc) {
	s.hooks.On(event, fn)
}

// DestDir returns the resolved destination directory.
func (s *Site) DestDir() string {
	return s.destDir
}

// Pages returns all pages of the site, in capture order.
func (s *Site) Pages() page.Pages {
	return s.pages
}

// GetPage returns the page with the given relative source path, if any.
func (s *Site) GetPage(relPath string) *page.Page {
	return s.pageMap.get(relPath)
}

// Build captures the source tree, renders every page and publishes the
// result below the destination directory.
func (s *Site) Build() error {
	if err := s.readPages(); err != nil {
		return err
	}
	if err := s.renderAndPublishPages(); err != nil {
		return err
	}
	s.Log.Info("site built", "pages", s.pageMap.len(), "dest", s.destDir)
	return nil
}

func (s *Site) readPages() error {
	fsys := s.sourceSpec.NewFilesystem(s.workingDir)
	files, err := fsys.Files()
	if err != nil {
		return err
	}

	for _, fi := range files {
		p, err := s.newPageFromFile(fi)
		if err != nil {
			return err
		}
		if p == nil {
			continue
		}
		s.pages = append(s.pages, p)
		s.pageMap.add(p.RelativePath(), p)
	}

	return nil
}

// newPageFromFile reads one source file, splits off front matter and creates
// the page. Unpublished pages return nil.
func (s *Site) newPageFromFile(fi source.File) (*page.Page, error) {
	f, err := s.Fs.Open(fi.Filename())
	if err != nil {
		return nil, err
	}
	defer f.Close()

	cf, err := parser.ParseFrontMatterAndContent(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fi.Path(), err)
	}

	outputExt := s.conv.OutputExt(helpers.Ext(fi.LogicalName()))

	p, err := page.New(s, s.workingDir, fi.Dir(), fi.LogicalName(), outputExt, cf.FrontMatter)
	if err != nil {
		return nil, err
	}
	if !p.Meta().IsPublished() {
		s.Log.Debug("skipping unpublished page", "path", fi.Path())
		return nil, nil
	}
	p.SetContent(cf.Content)

	return p, nil
}
