package tilepath

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Query is one start/goal pair for FindPaths.
type Query struct {
	Start Point
	Goal  Point
}

// FindPaths solves every query against grid on a bounded pool of workers.
// Each search owns its state; results are returned in query order. The first
// context error cancels the remaining searches and is returned.
func FindPaths(
	ctx context.Context,
	grid Grid,
	queries []Query,
	options ...Option,
) ([]Result, error) {
	searchOptions := applyOptions(options)

	results := make([]Result, len(queries))
	finder := NewPathFinder(grid)

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(searchOptions.NumberOfWorkers)
	for i, query := range queries {
		group.Go(func() error {
			result, err := finder.Search(groupCtx, query.Start, query.Goal)
			if err != nil {
				return err
			}
			results[i] = result
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
