// Package fileutil provides the directory traversal used by lookfor.
//
// The package exposes a pull-based Walker that descends a directory tree one
// entry at a time. Callers advance it with Next and read the current Entry, or
// range over All. Nothing is collected up front: a directory is listed only
// when the walker reaches it, and its handle is closed before any of its
// children are produced.
//
// # Key Features
//
//   - Depth-first, pre-order traversal with siblings in lexical order
//   - Depth limits that prune: directories at the limit are never opened
//   - Symbolic links are reported as entries and never descended
//   - Best-effort: unreadable nodes are dropped and the walk continues
//
// # Main Components
//
// Entry - one discovered node:
//   - Path: the root joined with the relative path (mirrors the root's style)
//   - Name: base name
//   - Type: TypeFile, TypeDir, TypeSymlink or TypeOther
//   - Depth: distance from the root (the root itself is depth 0)
//
// WalkOptions - traversal configuration:
//   - MaxDepth: deepest entry produced (Unlimited for no bound)
//   - OnError: optional hook observing dropped nodes
//
// # Usage Examples
//
// Walk everything below the current directory:
//
//	w := fileutil.NewWalker(".", fileutil.DefaultWalkOptions())
//	for w.Next() {
//	    fmt.Println(w.Entry().Path)
//	}
//
// Root and its immediate children only:
//
//	for entry := range fileutil.Walk("/srv", fileutil.WalkOptions{MaxDepth: 1}) {
//	    fmt.Println(entry.Path, entry.Type)
//	}
//
// # Depth Convention
//
// The root is depth 0. With MaxDepth N the walker yields entries whose depth
// is at most N and never lists a directory whose depth is N or more. MaxDepth 0
// yields the root entry alone.
//
// # Error Tolerance
//
// A missing root produces no entries. A directory that cannot be listed is
// still reported itself, only its contents are lost. No error ever ends the
// walk early; OnError is the only place failures are visible.
package fileutil
