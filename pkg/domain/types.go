package domain

import "strings"

// EntryType tells whether money comes in or goes out. Both categories and
// transactions carry one.
type EntryType string

const (
	Income  EntryType = "INCOME"
	Expense EntryType = "EXPENSE"
)

// ParseEntryType normalizes s to upper case and checks it against the known
// entry types.
func ParseEntryType(s string) (EntryType, error) {
	t := EntryType(strings.ToUpper(strings.TrimSpace(s)))
	if !t.Valid() {
		return "", NewValidationError("invalid transaction type %q", s)
	}
	return t, nil
}

// Valid reports whether t is INCOME or EXPENSE.
func (t EntryType) Valid() bool {
	return t == Income || t == Expense
}

func (t EntryType) String() string {
	return string(t)
}
