package ledger

// Totals are the balance-card numbers derived from a full pass over the
// entry collection. They are recomputed on every change; nothing is
// cached or maintained incrementally.
type Totals struct {
	TotalExtra   float64 `json:"totalExtra"`
	TotalUsed    float64 `json:"totalUsed"`
	Net          float64 `json:"net"`
	FamiliarDays int     `json:"familiarDays"`
	PendingMemos int     `json:"pendingMemos"`
}

// Sum aggregates the collection. Net may go negative; there is no
// floor. The result is independent of entry order.
func Sum(entries []Entry) Totals {
	var t Totals
	for _, e := range entries {
		switch e.Type {
		case TypeExtra:
			t.TotalExtra += e.Hours
		case TypeUse:
			t.TotalUsed += e.Hours
		case TypeFamiliar:
			t.FamiliarDays++
		}
		if e.MemoPending() {
			t.PendingMemos++
		}
	}
	t.Net = t.TotalExtra - t.TotalUsed
	return t
}
