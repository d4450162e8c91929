package pipeline

import (
	"fmt"
	"log/slog"
	"runtime"
	"sync"
	"sync/atomic"

	"bsp-entity-generator/internal/bsp"
	"bsp-entity-generator/internal/classify"
	"bsp-entity-generator/internal/diagnostic"
	"bsp-entity-generator/internal/schema"
	"bsp-entity-generator/internal/slogutil"
)

// Options configure one batch run.
type Options struct {
	// Inputs are the map files to process. Their order is the merge order.
	Inputs []string
	// Jobs bounds the number of files decoded concurrently. Zero or
	// negative means runtime.NumCPU().
	Jobs int
	// SkipKeys replaces the default schema skip list. Nil keeps the
	// default ("classname", "hammerid").
	SkipKeys []string
	// CacheSize is the per-worker classification cache size. Zero means
	// classify.DefaultCacheSize.
	CacheSize int
	// Logger receives per-file progress at debug level. Nil discards.
	Logger *slog.Logger
}

type fileResult struct {
	partial *schema.SchemaSet
	diags   *diagnostic.Diagnostics
	err     error
}

// Run reads every input concurrently, folds each file into a partial
// schema and merges the partials in input order. The first failing input
// (by position, not by completion time) aborts the whole run; no schema or
// diagnostics are returned then.
func Run(opts Options) (*schema.SchemaSet, *diagnostic.Diagnostics, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slogutil.NewDiscardLogger()
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}
	if jobs > len(opts.Inputs) {
		jobs = len(opts.Inputs)
	}

	workers := make([]*worker, jobs)
	for i := range workers {
		classifier, err := classify.NewCached(opts.CacheSize)
		if err != nil {
			return nil, nil, fmt.Errorf("classification cache: %w", err)
		}

		workers[i] = &worker{
			classifier: classifier,
			skipKeys:   opts.SkipKeys,
			logger:     logger,
		}
	}

	results := make([]fileResult, len(opts.Inputs))
	tasks := make(chan int)

	var failed atomic.Bool
	var wg sync.WaitGroup

	for _, w := range workers {
		wg.Add(1)

		go func() {
			defer wg.Done()

			for i := range tasks {
				results[i] = w.processFile(opts.Inputs[i])
				if results[i].err != nil {
					failed.Store(true)
				}
			}
		}()
	}

	for i := range opts.Inputs {
		if failed.Load() {
			break
		}

		tasks <- i
	}

	close(tasks)
	wg.Wait()

	// Results sit in their input slot, so this fold runs in input order no
	// matter which worker finished first.
	partials := make([]*schema.SchemaSet, 0, len(results))
	diags := &diagnostic.Diagnostics{}

	for _, r := range results {
		if r.err != nil {
			return nil, nil, r.err
		}

		if r.partial == nil {
			// Never dispatched; only happens once a failure stopped the run.
			continue
		}

		diags.Merge(r.diags)
		partials = append(partials, r.partial)
	}

	return schema.Merge(partials), diags, nil
}

type worker struct {
	classifier *classify.Cached
	skipKeys   []string
	logger     *slog.Logger
}

func (w *worker) processFile(path string) fileResult {
	entities, diags, err := bsp.ReadFile(path)
	if err != nil {
		return fileResult{err: err}
	}

	b := schema.NewBuilder(schema.BuilderConfig{
		Classify: w.classifier.Classify,
		SkipKeys: w.skipKeys,
	})
	for _, e := range entities {
		b.Observe(e)
	}

	w.logger.Debug("Processed map file", "path", path, "entities", len(entities))

	return fileResult{partial: b.Finish(), diags: diags}
}
