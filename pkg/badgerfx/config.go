package badgerfx

import "github.com/dgraph-io/badger/v4"

type Config struct {
	// Path to the BadgerDB data directory. Empty keeps the database in memory.
	Dir string
}

func (c Config) Build() badger.Options {
	if c.Dir == "" {
		return badger.DefaultOptions("").WithInMemory(true)
	}

	return badger.DefaultOptions(c.Dir)
}
