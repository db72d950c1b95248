package papertrade

import "errors"

// ErrKeyNotFound reports a key with no persisted value. Callers of the
// Gateway never see it: every key has a documented fallback default.
var ErrKeyNotFound = errors.New("key not found")

// Store is the key-value persistence port. Implementations must treat Put
// as an idempotent overwrite and Reset as dropping every key.
type Store interface {
	Get(key string) ([]byte, error)
	Put(key string, value []byte) error
	Reset() error
	Close() error
}

// Persisted key layout. All keys are optional; a missing or malformed
// value falls back to that key's default without raising to the caller.
const (
	keyCash         = "cash"
	keyInitial      = "initial"
	keyHoldings     = "holdings"
	keyCostBasis    = "costbasis"
	keyPrices       = "prices"
	keyEquity       = "equity"
	keyTransactions = "transactions"
	keyInitialized  = "initialized"
)
