package badgerfx

// Entity is a value stored under a single primary key with optional index keys
// pointing at it.
type Entity interface {
	StorageKey() string
	StorageIndexes() []string
	MarshalStorage() ([]byte, error)
	UnmarshalStorage(data []byte) error
}
