package orchestrator

import (
	"context"
	"fmt"
	"sync"

	"github.com/glorpus-work/o3data/pkg/data"
	"github.com/glorpus-work/o3data/pkg/dataset"
	"golang.org/x/sync/errgroup"
)

// New creates an orchestrator over datasets.
func New(datasets Opener, hooks Hooks) *Orchestrator {
	return &Orchestrator{Datasets: datasets, Hooks: hooks}
}

func emit(h Hooks, e Event) {
	if h.OnEvent != nil {
		h.OnEvent(e)
	}
}

// FetchAll opens, and thereby fetches, every named dataset with at most
// opts.Concurrency fetches in flight. The first failure cancels the rest.
func (o *Orchestrator) FetchAll(ctx context.Context, names []string, opts Options) (map[string]data.Resource, error) {
	if o.Datasets == nil {
		return nil, fmt.Errorf("dataset registry is not configured")
	}

	g, gctx := errgroup.WithContext(ctx)
	if opts.Concurrency > 0 {
		g.SetLimit(opts.Concurrency)
	}

	var mu sync.Mutex
	fetched := make(map[string]data.Resource, len(names))
	for _, name := range names {
		g.Go(func() error {
			emit(o.Hooks, Event{Phase: "fetching", ID: name})
			var dsOpts []dataset.Option
			if opts.DatasetOptions != nil {
				dsOpts = opts.DatasetOptions(name)
			}
			r, err := o.Datasets.Open(gctx, name, opts.DataRoot, dsOpts...)
			if err != nil {
				emit(o.Hooks, Event{Phase: "error", ID: name, Msg: err.Error()})
				return fmt.Errorf("%s: %w", name, err)
			}
			emit(o.Hooks, Event{Phase: "done", ID: name, Msg: r.ExtractDir()})
			mu.Lock()
			fetched[name] = r
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return fetched, err
	}
	return fetched, nil
}

// Delete removes the download and/or extract directories of a dataset without fetching it.
func (o *Orchestrator) Delete(ctx context.Context, name string, opts DeleteOptions, dsOpts ...dataset.Option) error {
	if o.Datasets == nil {
		return fmt.Errorf("dataset registry is not configured")
	}
	if !opts.Download && !opts.Extract {
		opts.Download, opts.Extract = true, true
	}

	r, err := o.Datasets.Open(ctx, name, opts.DataRoot, append(dsOpts, dataset.WithoutFetch())...)
	if err != nil {
		return err
	}

	emit(o.Hooks, Event{Phase: "deleting", ID: name})
	if err := r.Delete(ctx, opts.Download, opts.Extract); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	emit(o.Hooks, Event{Phase: "deleted", ID: name})
	return nil
}
