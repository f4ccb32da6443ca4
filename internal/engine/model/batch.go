package model

import (
	"go.uber.org/multierr"
	"golang.org/x/sync/errgroup"
)

// SlotIndices returns the model indices 1..count.
func SlotIndices(count int) []int {
	indices := make([]int, count)
	for i := range indices {
		indices[i] = i + 1
	}
	return indices
}

// LoadAll loads the given indices in parallel, at most workers at a time
// (0 means no limit). The result has one entry per index; failed loads are
// nil and their errors are combined into the returned error.
func (l *Loader) LoadAll(indices []int, workers int) ([]*Model, error) {
	models := make([]*Model, len(indices))
	errs := make([]error, len(indices))

	var g errgroup.Group
	if workers > 0 {
		g.SetLimit(workers)
	}
	for i, index := range indices {
		g.Go(func() error {
			models[i], errs[i] = l.LoadModel(index)
			return nil
		})
	}
	_ = g.Wait()

	return models, multierr.Combine(errs...)
}
