// Package search runs the lookfor pipeline: walk, filter, emit.
//
// Entries are pulled from the walker one at a time and either written out or
// dropped before the next one is read. Nothing about the tree is retained
// between steps.
package search

import (
	"fmt"
	"time"

	"github.com/harrison/lookfor/internal/fileutil"
	"github.com/harrison/lookfor/internal/filter"
	"github.com/harrison/lookfor/internal/logger"
)

// Emitter receives the path of every accepted entry.
type Emitter interface {
	WritePath(path string) error
}

// Result holds the counters of a completed walk.
type Result struct {
	Visited  int
	Matched  int
	Skipped  int
	Duration time.Duration
}

// Searcher applies one Spec to a directory tree.
type Searcher struct {
	spec  *filter.Spec
	chain *filter.Chain
	log   logger.Logger
}

// New creates a Searcher for spec. A nil log discards diagnostics.
func New(spec *filter.Spec, log logger.Logger) *Searcher {
	if log == nil {
		log = logger.NewNoOpLogger()
	}
	return &Searcher{
		spec:  spec,
		chain: filter.NewChain(spec),
		log:   log,
	}
}

// Run walks root and emits every entry the filter chain accepts.
// Unreadable nodes are skipped; only a failure to emit ends the walk early.
func (s *Searcher) Run(root string, out Emitter) (Result, error) {
	var result Result
	start := time.Now()

	opts := s.spec.WalkOptions()
	opts.OnError = func(path string, err error) {
		result.Skipped++
		s.log.LogSkipped(path, err)
	}

	// Rejections are only described at trace level
	traceRejects := s.log.Enabled("trace")

	for entry := range fileutil.Walk(root, opts) {
		result.Visited++

		rejectedBy, ok := s.chain.Evaluate(entry)
		if !ok {
			if traceRejects {
				s.log.LogTrace(fmt.Sprintf("rejected %s by %s filter", entry.Path, rejectedBy))
			}
			continue
		}

		if err := out.WritePath(entry.Path); err != nil {
			result.Duration = time.Since(start)
			return result, fmt.Errorf("failed to write %s: %w", entry.Path, err)
		}
		result.Matched++
	}

	result.Duration = time.Since(start)
	s.log.LogSummary(logger.Summary{
		Root:     root,
		Visited:  result.Visited,
		Matched:  result.Matched,
		Skipped:  result.Skipped,
		Duration: result.Duration,
	})

	return result, nil
}
