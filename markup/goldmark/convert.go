// Package goldmark converts Markdown to HTML using yuin/goldmark.
package goldmark

import (
	"bytes"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/renderer/html"

	"github.com/aoliong/jekyll/markup/converter"
)

// Provider is the package entry point.
var Provider converter.ProviderProvider = provide{}

type provide struct{}

func (p provide) New(cfg converter.ProviderConfig) (converter.Provider, error) {
	md := newMarkdown(cfg)
	return converter.NewProvider("goldmark", func(ctx converter.DocumentContext) (converter.Converter, error) {
		return &goldmarkConverter{
			md:  md,
			ctx: ctx,
			cfg: cfg,
		}, nil
	}), nil
}

func newMarkdown(pcfg converter.ProviderConfig) goldmark.Markdown {
	parserOptions := []parser.Option{
		parser.WithAutoHeadingID(),
	}

	var rendererOptions []renderer.Option
	if pcfg.Cfg == nil || !pcfg.Cfg.GetBool("markup.goldmark.renderer.safe") {
		rendererOptions = append(rendererOptions, html.WithUnsafe())
	}

	return goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			extension.Typographer,
		),
		goldmark.WithParserOptions(parserOptions...),
		goldmark.WithRendererOptions(rendererOptions...),
	)
}

type goldmarkConverter struct {
	md  goldmark.Markdown
	ctx converter.DocumentContext
	cfg converter.ProviderConfig
}

func (c *goldmarkConverter) Convert(ctx converter.RenderContext) (converter.Result, error) {
	var buf bytes.Buffer
	if err := c.md.Convert(ctx.Src, &buf); err != nil {
		return nil, err
	}
	return converter.Bytes(buf.Bytes()), nil
}
