package resolve

import (
	"context"
	"sync/atomic"

	"github.com/gitduk/rustdocs"
)

// Completer forwards partial-query autocompletion to the store and formats
// matches as "crate::item" strings.
type Completer struct {
	Store rustdocs.Store
}

// Complete returns completion candidates for a partial query. Cancellation
// is cooperative: if cancel is set by the time the store responds, the
// candidates are discarded and an empty result is returned with no further
// side effects. A nil cancel flag means the query cannot be canceled.
func (c *Completer) Complete(ctx context.Context, query string, cancel *atomic.Bool) ([]string, error) {
	matches, err := c.Store.Search(ctx, query)
	if err != nil {
		return nil, err
	}

	if cancel != nil && cancel.Load() {
		return nil, nil
	}

	candidates := make([]string, 0, len(matches))
	for _, m := range matches {
		candidates = append(candidates, m.String())
	}
	return candidates, nil
}
