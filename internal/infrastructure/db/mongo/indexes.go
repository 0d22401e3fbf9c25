package mongo

import (
	"context"
	"errors"
	"fmt"
)

// IndexEnsurer is implemented by repositories that own a collection.
type IndexEnsurer interface {
	EnsureIndexes(ctx context.Context) error
}

// EnsureAll creates the indexes of every repository, collecting all failures
// rather than stopping at the first.
func EnsureAll(ctx context.Context, repos ...IndexEnsurer) error {
	var errs []error
	for _, r := range repos {
		if err := r.EnsureIndexes(ctx); err != nil {
			errs = append(errs, fmt.Errorf("%T: %w", r, err))
		}
	}
	return errors.Join(errs...)
}
