package interfaces

import "context"

// Persisted state keys. Each entry is an independent JSON document with its
// own default when absent.
const (
	KeyAuthSession = "wf_auth"   // domain.Session, default logged out
	KeyOrders      = "wf_orders" // []domain.Order, default empty
	KeyActiveTab   = "wf_tab"    // domain.Tab, default "orders"
	KeyDarkMode    = "wf_dark"   // bool, default false
)

// KVStore is the local persistent key-value store. Values are serialized
// whole and overwritten unconditionally on every write; there is no partial
// update and no batching.
type KVStore interface {
	// Get deserializes the stored value for key into dest. When the key is
	// absent, or the stored text is not valid JSON, dest is left at the
	// caller-supplied default and found is false.
	Get(ctx context.Context, key string, dest any) (found bool, err error)
	// Set serializes value and overwrites the entry for key.
	Set(ctx context.Context, key string, value any) error
}
