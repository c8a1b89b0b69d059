package filter

import (
	"strings"

	"github.com/harrison/lookfor/internal/fileutil"
)

// predicate is one link of the chain.
type predicate struct {
	name   string
	accept func(fileutil.Entry) bool
}

// Chain evaluates the active predicates of a Spec, short-circuiting on the
// first rejection. It holds no per-entry state.
type Chain struct {
	predicates []predicate
}

// NewChain builds the chain for spec. Inactive filters are left out so they
// cost nothing per entry.
func NewChain(spec *Spec) *Chain {
	c := &Chain{}

	if !spec.hidden {
		c.predicates = append(c.predicates, predicate{name: "hidden", accept: acceptVisible})
	}

	switch spec.typ {
	case TypeFile:
		c.predicates = append(c.predicates, predicate{name: "type", accept: func(e fileutil.Entry) bool {
			return e.Type == fileutil.TypeFile
		}})
	case TypeDir:
		c.predicates = append(c.predicates, predicate{name: "type", accept: func(e fileutil.Entry) bool {
			return e.Type == fileutil.TypeDir
		}})
	}

	if spec.name != nil {
		matcher := spec.name
		c.predicates = append(c.predicates, predicate{name: "name", accept: func(e fileutil.Entry) bool {
			return matcher.Match(e.Name)
		}})
	}

	if spec.hasExt {
		want := spec.ext
		c.predicates = append(c.predicates, predicate{name: "ext", accept: func(e fileutil.Entry) bool {
			ext, ok := Extension(e.Name)
			return ok && asciiEqualFold(ext, want)
		}})
	}

	return c
}

// Evaluate runs the chain and, on rejection, names the filter that rejected e.
func (c *Chain) Evaluate(e fileutil.Entry) (rejectedBy string, ok bool) {
	for _, p := range c.predicates {
		if !p.accept(e) {
			return p.name, false
		}
	}
	return "", true
}

func acceptVisible(e fileutil.Entry) bool {
	return !strings.HasPrefix(e.Name, ".")
}

// Extension returns the part of name after its last ".". A name whose only
// dot is the leading one (".bashrc") has no extension.
func Extension(name string) (string, bool) {
	i := strings.LastIndexByte(name, '.')
	if i <= 0 {
		return "", false
	}
	return name[i+1:], true
}

// asciiEqualFold compares a and b ignoring ASCII case only.
func asciiEqualFold(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := 0; i < len(a); i++ {
		if lowerASCII(a[i]) != lowerASCII(b[i]) {
			return false
		}
	}
	return true
}

func lowerASCII(c byte) byte {
	if 'A' <= c && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}
