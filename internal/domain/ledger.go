package domain

// Tipos de lançamento do extrato do consultor.
const (
	EntryTypeCredit = "credit"
	EntryTypeDebit  = "debit"
)

// LedgerEntry é um lançamento datado de crédito ou débito no extrato
// derivado do consultor.
type LedgerEntry struct {
	ID          string  `json:"id"`
	Type        string  `json:"type"`
	Description string  `json:"description"`
	Date        string  `json:"date"`
	Value       float64 `json:"value"`
}
