// Package router holds the declarative route table and the navigation
// primitive shared by the shell coordinators.
package router

import (
	"strings"

	"dwex-demo/internal/domain"
)

// maxRedirects bounds redirect chains so a misconfigured table cannot loop.
const maxRedirects = 8

// Route maps a path (relative, without leading "/") to a page component.
// Children paths are relative to the parent path.
type Route struct {
	Path       string
	Title      string
	Component  domain.ComponentRef
	RedirectTo string
	Children   []Route
}

// Table is an ordered route configuration. Earlier routes win.
type Table []Route

// Match is a resolved page route.
type Match struct {
	Path      string
	Title     string
	Component domain.ComponentRef
}

// Resolve finds the component and declared title for path. A leading "/"
// is ignored and nested routes are searched depth-first.
func (t Table) Resolve(path string) (Match, bool) {
	return t.find(cleanPath(path), "")
}

func (t Table) find(path, parent string) (Match, bool) {
	for _, r := range t {
		full := joinPath(parent, r.Path)
		if full == path && r.Component != "" {
			return Match{Path: full, Title: r.Title, Component: r.Component}, true
		}
		if len(r.Children) > 0 {
			if m, ok := Table(r.Children).find(path, full); ok {
				return m, true
			}
		}
	}
	return Match{}, false
}

func (t Table) redirectFor(path, parent string) (string, bool) {
	for _, r := range t {
		full := joinPath(parent, r.Path)
		if full == path && r.RedirectTo != "" {
			return joinPath(parent, r.RedirectTo), true
		}
		if len(r.Children) > 0 {
			if target, ok := Table(r.Children).redirectFor(path, full); ok {
				return target, true
			}
		}
	}
	return "", false
}

// Redirect returns the URL after redirects. Query strings are preserved.
func (t Table) Redirect(url string) string {
	path, query, _ := strings.Cut(url, "?")
	current := cleanPath(path)
	for i := 0; i < maxRedirects; i++ {
		target, ok := t.redirectFor(current, "")
		if !ok {
			break
		}
		current = cleanPath(target)
	}
	out := "/" + current
	if query != "" {
		out += "?" + query
	}
	return out
}

// Lookup resolves the page route for a URL after redirects.
func (t Table) Lookup(url string) (Match, bool) {
	path, _, _ := strings.Cut(t.Redirect(url), "?")
	return t.Resolve(path)
}

// Walk calls fn for every route with its full path, parents first.
func (t Table) Walk(fn func(fullPath string, r Route)) {
	t.walk("", fn)
}

func (t Table) walk(parent string, fn func(string, Route)) {
	for _, r := range t {
		full := joinPath(parent, r.Path)
		fn(full, r)
		Table(r.Children).walk(full, fn)
	}
}

func cleanPath(p string) string {
	p = strings.TrimPrefix(p, "/")
	return strings.TrimSuffix(p, "/")
}

func joinPath(parent, child string) string {
	child = cleanPath(child)
	switch {
	case parent == "":
		return child
	case child == "":
		return parent
	default:
		return parent + "/" + child
	}
}

// PathOf returns the URL path portion of url without the query string.
func PathOf(url string) string {
	path, _, _ := strings.Cut(url, "?")
	return path
}

// UnderPrefix reports whether url equals prefix or lies beneath it as a
// path segment ("/a/b" is under "/a", "/ab" is not).
func UnderPrefix(url, prefix string) bool {
	if prefix == "" {
		return false
	}
	url = PathOf(url)
	return url == prefix || strings.HasPrefix(url, prefix+"/")
}
