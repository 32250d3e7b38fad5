// README: Common value objects shared across modules.
package types

// ID is an opaque entity identifier (32 hex chars from the ID generator).
type ID string

// Money is an amount in whole units of the given currency.
type Money struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}
