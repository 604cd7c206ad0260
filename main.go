package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/afero"

	"github.com/aoliong/jekyll/sitelib"
)

func main() {
	fs := afero.NewMemMapFs()

	files := map[string]string{
		"/site/_config.toml": "permalink = \"pretty\"\ntitle = \"demo\"\n",
		"/site/index.md":     "# Home\n\nWelcome.\n",
		"/site/about.md": `---
title: About
---
## About

A single page.
`,
		"/site/assets/style.css": "body { margin: 0; }\n",
	}
	for name, content := range files {
		if err := afero.WriteFile(fs, name, []byte(content), 0o644); err != nil {
			slog.Error("write source", "file", name, "err", err)
			os.Exit(1)
		}
	}

	site, err := sitelib.New(nil, fs, "/site")
	if err != nil {
		slog.Error("new site", "err", err)
		os.Exit(1)
	}

	if err := site.Build(); err != nil {
		slog.Error("build", "err", err)
		os.Exit(1)
	}

	for _, p := range site.Pages().ByPath() {
		fmt.Printf("%-20s url=%-16s dest=%s\n", p.RelativePath(), p.URL(), p.Destination(site.DestDir()))
	}
}
