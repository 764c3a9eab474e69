package client

import (
	"context"

	"github.com/angulartv/regisstros/internal/ledger"
)

// Reassign moves an entry to another calendar day, the drop half of the
// drag-and-drop gesture. The returned bool reports whether an update
// was actually issued: an unknown id or a target equal to the entry's
// current date is an idempotent no-op with no network call.
//
// On success the local entry is replaced by the server's authoritative
// representation. On failure the snapshot is untouched; there is no
// optimistic pre-update to roll back. Concurrent reassignments of the
// same entry are not serialized, so the last write wins at the server.
func (c *Client) Reassign(ctx context.Context, id uint, target ledger.DayKey) (ledger.Entry, bool, error) {
	c.mu.Lock()
	e, ok := c.col.Find(id)
	c.mu.Unlock()
	if !ok {
		return ledger.Entry{}, false, nil
	}

	dateStr := target.String()
	if e.Date == dateStr {
		return e, false, nil
	}

	e.Date = dateStr
	updated, err := c.Update(ctx, e)
	if err != nil {
		return ledger.Entry{}, false, err
	}
	return updated, true, nil
}
