package ledger

import "testing"

func TestSum_Empty(t *testing.T) {
	got := Sum(nil)
	if got != (Totals{}) {
		t.Errorf("Sum(nil) = %+v, want zero totals", got)
	}
}

func TestSum_NetIsExtraMinusUsed(t *testing.T) {
	entries := []Entry{
		{Date: "2024-03-01", Hours: 2, Type: TypeExtra},
		{Date: "2024-03-02", Hours: 1.5, Type: TypeExtra},
		{Date: "2024-03-03", Hours: 4, Type: TypeUse},
		{Date: "2024-03-04", Hours: 8, Type: TypeFamiliar}, // familiar hours don't enter the balance
		{Date: "2024-03-05", Type: TypeMemo},
	}
	got := Sum(entries)
	if got.TotalExtra != 3.5 {
		t.Errorf("totalExtra = %v, want 3.5", got.TotalExtra)
	}
	if got.TotalUsed != 4 {
		t.Errorf("totalUsed = %v, want 4", got.TotalUsed)
	}
	if got.Net != -0.5 {
		t.Errorf("net = %v, want -0.5 (no clamping)", got.Net)
	}
	if got.FamiliarDays != 1 {
		t.Errorf("familiarDays = %v, want 1", got.FamiliarDays)
	}
}

func TestSum_OrderIndependent(t *testing.T) {
	a := []Entry{
		{Hours: 2, Type: TypeExtra},
		{Hours: 1, Type: TypeUse},
		{Type: TypeFamiliar},
	}
	b := []Entry{a[2], a[0], a[1]}
	if Sum(a) != Sum(b) {
		t.Errorf("Sum should be order independent: %+v vs %+v", Sum(a), Sum(b))
	}
}

func TestSum_PendingMemos(t *testing.T) {
	entries := []Entry{
		{RequiresMemo: true, MemoDone: false}, // pending
		{RequiresMemo: true, MemoDone: true},  // resolved
		{RequiresMemo: false, MemoDone: true}, // never counted, regardless of memoDone
		{RequiresMemo: false},
	}
	if got := Sum(entries).PendingMemos; got != 1 {
		t.Errorf("pendingMemos = %d, want 1", got)
	}
}
