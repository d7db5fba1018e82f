package model

// Line is one recurring money line. Incomes and recurring expenses share this
// shape but live in separate store collections.
type Line struct {
	ID          string `json:"id"`
	Description string `json:"description" validate:"min=2"`
	Amount      int64  `json:"amount" validate:"gt=0"`
}
