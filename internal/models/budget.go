package models

// Budget is the single budget record for a session. Leftover is supplied by
// the caller along with income and expenses; the store never recomputes it.
type Budget struct {
	Income   float64 `json:"income"`
	Expenses float64 `json:"expenses"`
	Leftover float64 `json:"leftover"`
}
