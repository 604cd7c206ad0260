package sitelib

import (
	"bytes"
	"fmt"
	"runtime"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/aoliong/jekyll/hooks"
	"github.com/aoliong/jekyll/markup/converter"
	"github.com/aoliong/jekyll/publisher"
	"github.com/aoliong/jekyll/resources/page"
)

// renderAndPublishPages converts every page's content and writes the result
// to its destination path. Pages share no mutable state, so the pass runs
// one worker per core.
func (s *Site) renderAndPublishPages() error {
	g := errgroup.Group{}
	g.SetLimit(runtime.NumCPU())

	minify := s.Cfg.GetBool("minify.enable")

	for _, p := range s.pages {
		p := p
		g.Go(func() error {
			if err := s.renderPage(p); err != nil {
				return fmt.Errorf("render %s: %w", p.RelativePath(), err)
			}
			s.hooks.Notify(hooks.PostRender, p)

			d := publisher.Descriptor{
				Src:          bytes.NewReader(p.Output()),
				OutputFormat: s.outputFormats.FromExt(p.OutputExt()),
				TargetPath:   p.Destination(s.destDir),
				Minify:       minify,
			}
			if err := s.pub.Publish(d); err != nil {
				return fmt.Errorf("publish %s: %w", p.RelativePath(), err)
			}
			s.hooks.Notify(hooks.PostWrite, p)
			return nil
		})
	}

	return g.Wait()
}

// renderPage assigns the page's output bytes. Markdown goes through the
// converter registry; everything else passes through untouched.
func (s *Site) renderPage(p *page.Page) error {
	srcExt := strings.TrimPrefix(p.Ext(), ".")

	if !s.conv.IsMarkdownExt(srcExt) {
		p.SetOutput(p.Content())
		return nil
	}

	cp := s.conv.Get("markdown")
	if cp == nil {
		p.SetOutput(p.Content())
		return nil
	}

	c, err := cp.New(converter.DocumentContext{
		Document:     p,
		DocumentID:   p.RelativePath(),
		DocumentName: p.Name(),
		Filename:     p.RelativePath(),
	})
	if err != nil {
		return err
	}

	r, err := c.Convert(converter.RenderContext{Src: p.Content()})
	if err != nil {
		return err
	}
	p.SetOutput(r.Bytes())

	return nil
}

// PagesUnder returns every page whose relative source path is below dir.
func (s *Site) PagesUnder(dir string) page.Pages {
	return s.pageMap.withPrefix(dir)
}
