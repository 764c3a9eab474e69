package client

import (
	"context"
	"io"
	"sync"

	"github.com/angulartv/regisstros/internal/ledger"

	"golang.org/x/sync/errgroup"
)

// ImportResult aggregates an import run.
type ImportResult struct {
	Created []ledger.Entry
	Failed  int
}

// Import parses CSV rows and submits each successfully parsed row as an
// independent create call, all in flight at once with no concurrency
// cap. The run is not atomic: rows that persisted stay persisted even
// when later ones fail, and such partial success is reported in
// aggregate through PartialImportError. An expired session aborts with
// ErrUnauthorized instead, since none of the rows can succeed.
func (c *Client) Import(ctx context.Context, r io.Reader) (ImportResult, error) {
	rows, err := ledger.ReadCSV(r)
	if err != nil {
		return ImportResult{}, err
	}

	var (
		g       errgroup.Group
		mu      sync.Mutex
		created []ledger.Entry
		failed  int
		authErr error
	)

	for _, row := range rows {
		g.Go(func() error {
			e, err := c.create(ctx, row)

			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == ErrUnauthorized:
				authErr = err
				failed++
			case err != nil:
				failed++
			default:
				created = append(created, e)
			}
			return nil
		})
	}
	_ = g.Wait()

	// fold everything that made it into the snapshot
	c.mu.Lock()
	for _, e := range created {
		c.col = c.col.Prepend(e)
	}
	c.mu.Unlock()

	res := ImportResult{Created: created, Failed: failed}
	if authErr != nil && len(created) == 0 {
		return res, authErr
	}
	if failed > 0 {
		return res, &PartialImportError{Created: len(created), Failed: failed}
	}
	return res, nil
}
