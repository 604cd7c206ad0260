package sitelib

import (
	"path/filepath"
	"strings"

	"github.com/armon/go-radix"

	"github.com/aoliong/jekyll/resources/page"
)

// pageMap stores pages keyed by their slash-separated relative source path,
// e.g. "blog/post.md". The radix tree gives cheap prefix walks for section
// style queries.
type pageMap struct {
	tree *radix.Tree
}

func newPageMap() *pageMap {
	return &pageMap{tree: radix.New()}
}

func (m *pageMap) key(relPath string) string {
	return strings.TrimPrefix(filepath.ToSlash(relPath), "/")
}

func (m *pageMap) add(relPath string, p *page.Page) {
	m.tree.Insert(m.key(relPath), p)
}

func (m *pageMap) get(relPath string) *page.Page {
	v, found := m.tree.Get(m.key(relPath))
	if !found {
		return nil
	}
	return v.(*page.Page)
}

// withPrefix collects every page below the given directory. The prefix is
// normalized to a trailing slash so "blog" never matches "blog-notes".
func (m *pageMap) withPrefix(prefix string) page.Pages {
	key := m.key(prefix)
	if key != "" && !strings.HasSuffix(key, "/") {
		key += "/"
	}
	var pages page.Pages
	m.tree.WalkPrefix(key, func(key string, v any) bool {
		pages = append(pages, v.(*page.Page))
		return false
	})
	return pages
}

func (m *pageMap) len() int {
	return m.tree.Len()
}
