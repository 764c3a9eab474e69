package ledger

// Type classifies what an entry represents.
type Type string

const (
	TypeExtra    Type = "extra"    // overtime worked (+)
	TypeUse      Type = "use"      // overtime spent (-)
	TypeFamiliar Type = "familiar" // family-leave day
	TypeMemo     Type = "memo"     // informational memo, carries no hours
	TypeChange   Type = "change"   // shift-change notice, carries no hours
)

// Valid reports whether t is one of the known entry types.
func (t Type) Valid() bool {
	switch t {
	case TypeExtra, TypeUse, TypeFamiliar, TypeMemo, TypeChange:
		return true
	}
	return false
}

// CountsHours reports whether entries of this type represent worked or
// spent time, i.e. whether a positive hours value is expected.
func (t Type) CountsHours() bool {
	return t == TypeExtra || t == TypeUse || t == TypeFamiliar
}

// Entry is one ledger record. The ID is assigned by the persistence
// layer and is zero for entries that have not been stored yet.
type Entry struct {
	ID           uint    `json:"id"`
	Date         string  `json:"date"` // canonical YYYY-MM-DD
	Hours        float64 `json:"hours"`
	Type         Type    `json:"type"`
	Note         string  `json:"note"`
	RequiresMemo bool    `json:"requiresMemo"`
	MemoDone     bool    `json:"memoDone"`
}

// MemoPending reports whether the entry still owes a memo.
func (e Entry) MemoPending() bool {
	return e.RequiresMemo && !e.MemoDone
}
