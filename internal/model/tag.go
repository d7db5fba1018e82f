package model

// Tag is a user-defined category. Icon and Color are symbolic names from the
// fixed sets below. Order values stay a dense 0..N-1 sequence; the ledger
// rewrites them on every reorder.
type Tag struct {
	ID    string `json:"id"`
	Name  string `json:"name" validate:"min=2"`
	Icon  string `json:"icon" validate:"oneof=food transport home health fun shopping travel work other"`
	Color string `json:"color" validate:"oneof=red orange yellow green teal blue purple pink gray"`
	Order int    `json:"order"`
}
