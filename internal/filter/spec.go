// Package filter decides which traversal entries lookfor reports.
//
// A Spec is resolved once from user input before the walk starts and is never
// mutated afterwards. A Chain evaluates the active predicates of a Spec against
// each entry in a fixed order: hidden, type, name, extension.
package filter

import (
	"fmt"
	"strings"

	"github.com/harrison/lookfor/internal/fileutil"
)

// TypeFilter restricts reported entries by node type.
// It implements pflag.Value so it can be bound directly to a flag.
type TypeFilter int

const (
	TypeAny TypeFilter = iota
	TypeFile
	TypeDir
)

// ParseTypeFilter converts "file", "dir" or "any" into a TypeFilter.
func ParseTypeFilter(s string) (TypeFilter, error) {
	switch s {
	case "any":
		return TypeAny, nil
	case "file":
		return TypeFile, nil
	case "dir":
		return TypeDir, nil
	default:
		return TypeAny, fmt.Errorf("invalid type %q, must be one of: file, dir, any", s)
	}
}

func (t TypeFilter) String() string {
	switch t {
	case TypeFile:
		return "file"
	case TypeDir:
		return "dir"
	default:
		return "any"
	}
}

// Set parses s into t.
func (t *TypeFilter) Set(s string) error {
	parsed, err := ParseTypeFilter(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Type names the flag value in help output.
func (t *TypeFilter) Type() string {
	return "file|dir|any"
}

// PatternError reports a name pattern that failed to compile.
type PatternError struct {
	Pattern string
	Err     error
}

func (e *PatternError) Error() string {
	return fmt.Sprintf("invalid regex '%s': %v", e.Pattern, e.Err)
}

func (e *PatternError) Unwrap() error {
	return e.Err
}

// Options is the raw user input a Spec is resolved from.
type Options struct {
	// Name is the name criterion; empty means no name filter
	Name string
	// Regex interprets Name as a regular expression instead of a literal substring
	Regex bool
	// Ext is the extension criterion, compared verbatim; nil means no extension filter.
	// An empty criterion is active and matches names ending in ".".
	Ext *string
	// Type restricts entries by node type
	Type TypeFilter
	// MaxDepth bounds the traversal (fileutil.Unlimited for none)
	MaxDepth int
	// Hidden includes entries whose base name starts with "."
	Hidden bool
}

// DefaultOptions returns options that report every visible entry.
func DefaultOptions() Options {
	return Options{
		Type:     TypeAny,
		MaxDepth: fileutil.Unlimited,
	}
}

// Spec is the validated, immutable set of active filters for one run.
type Spec struct {
	name     NameMatcher
	ext      string
	hasExt   bool
	typ      TypeFilter
	maxDepth int
	hidden   bool
}

// NewSpec validates opts and resolves them into a Spec.
// An invalid name pattern is returned as a *PatternError.
func NewSpec(opts Options) (*Spec, error) {
	if opts.Type < TypeAny || opts.Type > TypeDir {
		return nil, fmt.Errorf("invalid type filter %d", int(opts.Type))
	}

	maxDepth := opts.MaxDepth
	if maxDepth < 0 {
		maxDepth = fileutil.Unlimited
	}

	spec := &Spec{
		typ:      opts.Type,
		maxDepth: maxDepth,
		hidden:   opts.Hidden,
	}
	if opts.Ext != nil {
		spec.ext = *opts.Ext
		spec.hasExt = true
	}

	if opts.Name != "" {
		matcher, err := NewNameMatcher(opts.Name, opts.Regex)
		if err != nil {
			return nil, err
		}
		spec.name = matcher
	}

	return spec, nil
}

// NameMatcher returns the configured name matcher, or nil when none is active.
func (s *Spec) NameMatcher() NameMatcher {
	return s.name
}

// Ext returns the configured extension and whether one is active.
func (s *Spec) Ext() (string, bool) {
	return s.ext, s.hasExt
}

// Type returns the configured type filter.
func (s *Spec) Type() TypeFilter {
	return s.typ
}

// MaxDepth returns the traversal bound, fileutil.Unlimited when unbounded.
func (s *Spec) MaxDepth() int {
	return s.maxDepth
}

// Hidden reports whether dot-named entries are included.
func (s *Spec) Hidden() bool {
	return s.hidden
}

// String describes the active filters, e.g. "name=pattern ^a ext=\"go\" type=file max-depth=2 hidden=false".
func (s *Spec) String() string {
	var b strings.Builder
	if s.name != nil {
		fmt.Fprintf(&b, "name=%s ", s.name)
	}
	if s.hasExt {
		fmt.Fprintf(&b, "ext=%q ", s.ext)
	}
	fmt.Fprintf(&b, "type=%s max-depth=", s.typ)
	if s.maxDepth == fileutil.Unlimited {
		b.WriteString("unlimited")
	} else {
		fmt.Fprintf(&b, "%d", s.maxDepth)
	}
	fmt.Fprintf(&b, " hidden=%t", s.hidden)
	return b.String()
}

// WalkOptions derives traversal options from the spec.
func (s *Spec) WalkOptions() fileutil.WalkOptions {
	return fileutil.WalkOptions{
		MaxDepth: s.maxDepth,
	}
}
