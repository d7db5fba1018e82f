package model

import "time"

// KindExpense is the only transaction kind the dashboard records today.
const KindExpense = "expense"

// Transaction is one spending record. The store assigns ID on create; while a
// create is still in flight the ledger keeps a temporary UUID in its place.
// Amount is in minor currency units. Tag is a weak reference by name: deleting
// the tag does not touch the transaction, it just becomes uncategorized.
type Transaction struct {
	ID          string    `json:"id"`
	Amount      int64     `json:"amount" validate:"gt=0"`
	Description string    `json:"description" validate:"min=2"`
	Tag         string    `json:"tag"`
	Date        time.Time `json:"date"`
	Kind        string    `json:"kind"`
}
