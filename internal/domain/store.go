package domain

// Keys used in the key-value store
const (
	KeyWishlist   = "wishlist"
	KeySearchTerm = "searchTerm"
	KeyGenre      = "genre"
)

// KVStore is a flat string key-value store, the local equivalent of
// browser storage. Get reports whether the key was present.
type KVStore interface {
	Get(key string) (string, bool)
	Set(key, value string) error
	Delete(key string) error
	Close() error
}
