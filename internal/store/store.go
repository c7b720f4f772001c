// Package store provides persistence for per-user library data using Badger.
//
// Each user's data lives under its own key partition so switching accounts
// never bleeds records between users. Collections (books, goals, swipes) are
// stored as whole JSON documents per partition key, which keeps reads and
// writes atomic per collection.
package store

import (
	"context"
	"encoding/json/jsontext"
	"encoding/json/v2"
	"errors"
	"fmt"
	"log/slog"

	"github.com/dgraph-io/badger/v4"
)

// Store wraps a Badger database instance.
type Store struct {
	db     *badger.DB
	logger *slog.Logger
}

// New creates a new Store instance with the given database path.
func New(path string, logger *slog.Logger) (*Store, error) {
	opts := badger.DefaultOptions(path)
	opts.Logger = nil            // Disable Badger's internal logging
	opts.SyncWrites = true       // Ensure writes are synced to disk to prevent corruption on crashes
	opts.CompactL0OnClose = true // Compact L0 tables on close for faster startup

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open badger db: %w", err)
	}

	store := &Store{
		db:     db,
		logger: logger,
	}

	if logger != nil {
		logger.Info("Badger database opened successfully", "path", path)
	}

	return store, nil
}

// Close gracefully closes the database connection.
func (s *Store) Close() error {
	if s.logger != nil {
		s.logger.Info("Closing database connection")
	}
	return s.db.Close()
}

// Ping verifies the database is responding to reads.
func (s *Store) Ping(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.db.View(func(txn *badger.Txn) error {
		_, err := txn.Get([]byte("health:ping"))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil
		}
		return err
	})
}

// Helper methods for database operations.

// get retrieves a value by key.
func (s *Store) get(key []byte, dest any) error {
	return s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key)
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, dest)
		})
	})
}

// set stores a value by key.
func (s *Store) set(key []byte, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal value: %w", err)
	}

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key, data)
	})
}

// delete removes a key from the database.
func (s *Store) delete(key []byte) error {
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(key)
	})
}

// readDocument loads the JSON document at key into dest.
// A missing key leaves dest untouched and returns false.
// A corrupt payload is logged and treated as missing rather than
// failing the whole read, so one bad record never bricks a library.
func (s *Store) readDocument(key string, dest any) (bool, error) {
	var found bool
	err := s.db.View(func(txn *badger.Txn) error {
		var err error
		found, err = s.readDocumentTxn(txn, key, dest)
		return err
	})
	return found, err
}

// readDocumentTxn is readDocument within an existing transaction.
func (s *Store) readDocumentTxn(txn *badger.Txn, key string, dest any) (bool, error) {
	item, err := txn.Get([]byte(key))
	if errors.Is(err, badger.ErrKeyNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	err = item.Value(func(val []byte) error {
		return json.Unmarshal(val, dest)
	})
	if err != nil {
		if isDecodeError(err) {
			if s.logger != nil {
				s.logger.Warn("discarding corrupt record", "key", key, "error", err)
			}
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// writeDocument marshals value and stores it at key. The write either
// lands completely or not at all.
func (s *Store) writeDocument(key string, value any) error {
	return s.set([]byte(key), value)
}

// writeDocumentTxn is writeDocument within an existing transaction.
func (s *Store) writeDocumentTxn(txn *badger.Txn, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal value: %w", err)
	}
	return txn.Set([]byte(key), data)
}

// isDecodeError reports whether err came from JSON decoding rather
// than from Badger itself.
func isDecodeError(err error) bool {
	var semantic *json.SemanticError
	if errors.As(err, &semantic) {
		return true
	}
	var syntactic *jsontext.SyntacticError
	return errors.As(err, &syntactic)
}
