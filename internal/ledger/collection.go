package ledger

// Collection is an immutable snapshot of the entry set held by the
// client during a session. Mutations return a new snapshot with a
// bumped version instead of editing shared state in place, which keeps
// the balance and calendar computations deterministic over a fixed
// input even while server responses land out of order.
type Collection struct {
	version uint64
	entries []Entry
}

// NewCollection snapshots the given entries. The slice is copied.
func NewCollection(entries []Entry) Collection {
	cp := make([]Entry, len(entries))
	copy(cp, entries)
	return Collection{entries: cp}
}

// Version increases by one with every derived snapshot.
func (c Collection) Version() uint64 { return c.version }

func (c Collection) Len() int { return len(c.entries) }

// Entries returns a copy of the snapshot's entries, newest first as
// delivered by the server.
func (c Collection) Entries() []Entry {
	cp := make([]Entry, len(c.entries))
	copy(cp, c.entries)
	return cp
}

// Find looks an entry up by id.
func (c Collection) Find(id uint) (Entry, bool) {
	for _, e := range c.entries {
		if e.ID == id {
			return e, true
		}
	}
	return Entry{}, false
}

// Prepend returns a snapshot with e in front, the position a freshly
// created entry takes.
func (c Collection) Prepend(e Entry) Collection {
	next := make([]Entry, 0, len(c.entries)+1)
	next = append(next, e)
	next = append(next, c.entries...)
	return Collection{version: c.version + 1, entries: next}
}

// Replace returns a snapshot with the entry of the same id swapped for
// the server's authoritative representation. Unknown ids leave the
// content untouched but still produce a new version.
func (c Collection) Replace(e Entry) Collection {
	next := make([]Entry, len(c.entries))
	copy(next, c.entries)
	for i := range next {
		if next[i].ID == e.ID {
			next[i] = e
			break
		}
	}
	return Collection{version: c.version + 1, entries: next}
}

// Remove returns a snapshot without the entry of the given id.
func (c Collection) Remove(id uint) Collection {
	next := make([]Entry, 0, len(c.entries))
	for _, e := range c.entries {
		if e.ID != id {
			next = append(next, e)
		}
	}
	return Collection{version: c.version + 1, entries: next}
}

// Totals runs the balance engine over the snapshot.
func (c Collection) Totals() Totals {
	return Sum(c.entries)
}
