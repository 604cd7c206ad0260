package page

import "sort"

// Pages is a slice of Page objects. This is the most common list type.
type Pages []*Page

// Len returns the number of pages in the list.
func (p Pages) Len() int { return len(p) }

// ByPath sorts the pages by their logical source path and returns a copy.
func (p Pages) ByPath() Pages {
	pages := make(Pages, len(p))
	copy(pages, p)
	sort.SliceStable(pages, func(i, j int) bool {
		return pages[i].Path() < pages[j].Path()
	})
	return pages
}

// HTMLLike returns the pages whose output is served as hypertext.
func (p Pages) HTMLLike() Pages {
	var out Pages
	for _, pp := range p {
		if pp.HTMLLike() {
			out = append(out, pp)
		}
	}
	return out
}
