package fileutil

import (
	"io/fs"
	"iter"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// Unlimited disables the depth bound in WalkOptions.
const Unlimited = -1

// EntryType classifies a discovered filesystem node.
type EntryType int

const (
	TypeOther EntryType = iota
	TypeFile
	TypeDir
	TypeSymlink
)

// String returns the lowercase name of the type.
func (t EntryType) String() string {
	switch t {
	case TypeFile:
		return "file"
	case TypeDir:
		return "dir"
	case TypeSymlink:
		return "symlink"
	default:
		return "other"
	}
}

// Entry is a single node produced by a Walker.
type Entry struct {
	// Path is the walk root joined with the entry's relative path
	Path string
	// Name is the base name of the entry
	Name string
	// Type is the node type as reported without following links
	Type EntryType
	// Depth is the distance from the root (root = 0)
	Depth int
}

// IsDir reports whether the entry is a directory.
func (e Entry) IsDir() bool {
	return e.Type == TypeDir
}

// WalkOptions configures a Walker
type WalkOptions struct {
	// MaxDepth is the deepest entry produced; Unlimited (or any negative value) disables the bound
	MaxDepth int
	// OnError is called for every node dropped because it could not be read
	OnError func(path string, err error)
}

// DefaultWalkOptions returns options for an unbounded walk.
func DefaultWalkOptions() WalkOptions {
	return WalkOptions{
		MaxDepth: Unlimited,
	}
}

// frame holds the pending children of one directory.
type frame struct {
	dir     string
	depth   int
	loaded  bool
	entries []fs.DirEntry
	next    int
}

// Walker is a pull-based cursor over a directory tree.
// It is not safe for concurrent use and cannot be restarted.
type Walker struct {
	root    string
	opts    WalkOptions
	started bool
	stack   []*frame
	current Entry

	readDir func(dir string) ([]fs.DirEntry, error)
}

// NewWalker creates a Walker rooted at root. Nothing is read until Next is called.
func NewWalker(root string, opts WalkOptions) *Walker {
	return &Walker{
		root:    root,
		opts:    opts,
		readDir: readDirSorted,
	}
}

// Walk returns a sequence over every entry below root, the root included.
func Walk(root string, opts WalkOptions) iter.Seq[Entry] {
	return NewWalker(root, opts).All()
}

// All returns the remaining entries as a single-use sequence.
func (w *Walker) All() iter.Seq[Entry] {
	return func(yield func(Entry) bool) {
		for w.Next() {
			if !yield(w.current) {
				return
			}
		}
	}
}

// Entry returns the entry produced by the last successful call to Next.
func (w *Walker) Entry() Entry {
	return w.current
}

// Next advances to the next readable entry. It returns false once the tree is exhausted.
func (w *Walker) Next() bool {
	if !w.started {
		w.started = true
		if w.visitRoot() {
			return true
		}
	}

	for len(w.stack) > 0 {
		top := w.stack[len(w.stack)-1]

		if !top.loaded {
			top.loaded = true
			entries, err := w.readDir(top.dir)
			if err != nil {
				w.skip(top.dir, err)
			}
			top.entries = entries
		}

		if top.next >= len(top.entries) {
			// Release the listing before moving back up
			top.entries = nil
			w.stack = w.stack[:len(w.stack)-1]
			continue
		}

		de := top.entries[top.next]
		top.next++

		w.current = Entry{
			Path:  filepath.Join(top.dir, de.Name()),
			Name:  de.Name(),
			Type:  typeFromMode(de.Type()),
			Depth: top.depth + 1,
		}
		if w.current.Type == TypeDir {
			w.descend(w.current.Path, w.current.Depth)
		}
		return true
	}

	return false
}

// visitRoot produces the root entry. A symlinked root is resolved once
// because the caller named it explicitly.
func (w *Walker) visitRoot() bool {
	info, err := os.Lstat(w.root)
	if err != nil {
		w.skip(w.root, err)
		return false
	}

	if info.Mode()&fs.ModeSymlink != 0 {
		if target, err := os.Stat(w.root); err == nil {
			info = target
		}
	}

	w.current = Entry{
		Path:  w.root,
		Name:  rootName(w.root),
		Type:  typeFromMode(info.Mode().Type()),
		Depth: 0,
	}
	if w.current.Type == TypeDir {
		w.descend(w.root, 0)
	}
	return true
}

// descend schedules dir for listing unless the depth bound prunes it.
func (w *Walker) descend(dir string, depth int) {
	if w.opts.MaxDepth >= 0 && depth >= w.opts.MaxDepth {
		return
	}
	w.stack = append(w.stack, &frame{dir: dir, depth: depth})
}

func (w *Walker) skip(path string, err error) {
	if w.opts.OnError != nil {
		w.opts.OnError(path, err)
	}
}

func typeFromMode(mode fs.FileMode) EntryType {
	switch {
	case mode&fs.ModeSymlink != 0:
		return TypeSymlink
	case mode.IsDir():
		return TypeDir
	case mode.IsRegular():
		return TypeFile
	default:
		return TypeOther
	}
}

// rootName derives the base name of the root as given, so "." and "./"
// keep their dot and "/" stays "/".
func rootName(root string) string {
	trimmed := strings.TrimRight(root, string(filepath.Separator))
	if trimmed == "" {
		return root
	}
	return filepath.Base(trimmed)
}

// readDirSorted lists dir and closes its handle before returning.
// Entries read before a failure are still returned alongside the error.
func readDirSorted(dir string) ([]fs.DirEntry, error) {
	f, err := os.Open(dir)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	entries, err := f.ReadDir(-1)
	slices.SortFunc(entries, func(a, b fs.DirEntry) int {
		return strings.Compare(a.Name(), b.Name())
	})
	return entries, err
}
