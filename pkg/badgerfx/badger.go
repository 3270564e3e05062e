package badgerfx

import (
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v4"
	"go.uber.org/zap"
)

// SeekEnd terminates a prefix for reverse iteration.
const SeekEnd = byte(0xFF)

const gcDiscardRatio = 0.5

func New(config Config, badgerLogger *zapLogger, logger *zap.Logger) (*badger.DB, error) {
	opts := config.Build().
		WithLogger(badgerLogger)

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open BadgerDB: %w", err)
	}

	if opts.InMemory {
		logger.Warn("storage directory is not set, workspace registry is kept in memory")
	} else {
		logger.Info("storage opened", zap.String("dir", opts.Dir))
	}

	return db, nil
}

// collectGarbage reclaims value log space until badger has nothing to rewrite.
func collectGarbage(db *badger.DB) error {
	if db.Opts().InMemory {
		return nil
	}

	for {
		err := db.RunValueLogGC(gcDiscardRatio)
		switch {
		case err == nil:
			continue
		case errors.Is(err, badger.ErrNoRewrite), errors.Is(err, badger.ErrRejected):
			return nil
		default:
			return fmt.Errorf("value log gc failed: %w", err)
		}
	}
}
