// db.go
//
// Outcome storage selection for the solver CLI.
//   - DB_PATH / -db set   → SQLite file (created and migrated on open).
//   - otherwise           → in-memory store, discarded on exit.

package main

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/solver/internal/store"
)

func openStore(path string) (store.Store, error) {
	if path == "" {
		log.Debug().Msg("using in-memory outcome store")
		return store.NewMemoryStore(), nil
	}
	s, err := store.OpenSQLite(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	log.Info().Str("db", path).Msg("outcome store ready")
	return s, nil
}
