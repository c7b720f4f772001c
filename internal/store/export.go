package store

import (
	"context"
	"time"

	"github.com/dgraph-io/badger/v4"

	"github.com/bookshelfapp/bookshelf-server/internal/domain"
)

// Snapshot is a complete copy of one partition's data, suitable for
// backup or transfer to another device.
type Snapshot struct {
	ExportedAt time.Time            `json:"exported_at"`
	Books      []domain.Book        `json:"books"`
	Goals      []domain.ReadingGoal `json:"goals"`
	Settings   domain.UserSettings  `json:"settings"`
	Swipes     []domain.SwipedBook  `json:"swipes"`
}

// Export captures all collections in the partition as one snapshot.
func (s *Store) Export(ctx context.Context, p Partition) (*Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	snap := &Snapshot{
		ExportedAt: time.Now().UTC(),
		Books:      []domain.Book{},
		Goals:      []domain.ReadingGoal{},
		Settings:   domain.DefaultSettings(),
		Swipes:     []domain.SwipedBook{},
	}

	err := s.db.View(func(txn *badger.Txn) error {
		if _, err := s.readDocumentTxn(txn, p.key(baseBooks), &snap.Books); err != nil {
			return err
		}
		if _, err := s.readDocumentTxn(txn, p.key(baseGoals), &snap.Goals); err != nil {
			return err
		}
		if _, err := s.readDocumentTxn(txn, p.key(baseSettings), &snap.Settings); err != nil {
			return err
		}
		if _, err := s.readDocumentTxn(txn, p.key(baseSwipes), &snap.Swipes); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if snap.Books == nil {
		snap.Books = []domain.Book{}
	}
	if snap.Goals == nil {
		snap.Goals = []domain.ReadingGoal{}
	}
	if snap.Swipes == nil {
		snap.Swipes = []domain.SwipedBook{}
	}
	return snap, nil
}

// Import replaces the partition's entire contents with the snapshot.
// All four collections are written in one transaction so a failed
// import never leaves the partition half-replaced.
func (s *Store) Import(ctx context.Context, p Partition, snap *Snapshot) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if snap == nil {
		return ErrInvalidInput.WithMessage("snapshot is required")
	}

	books := snap.Books
	if books == nil {
		books = []domain.Book{}
	}
	goals := snap.Goals
	if goals == nil {
		goals = []domain.ReadingGoal{}
	}
	swipes := snap.Swipes
	if swipes == nil {
		swipes = []domain.SwipedBook{}
	}

	return s.db.Update(func(txn *badger.Txn) error {
		if err := s.writeDocumentTxn(txn, p.key(baseBooks), books); err != nil {
			return err
		}
		if err := s.writeDocumentTxn(txn, p.key(baseGoals), goals); err != nil {
			return err
		}
		if err := s.writeDocumentTxn(txn, p.key(baseSettings), snap.Settings); err != nil {
			return err
		}
		return s.writeDocumentTxn(txn, p.key(baseSwipes), swipes)
	})
}

// ClearAll deletes every collection in the partition in one transaction.
func (s *Store) ClearAll(ctx context.Context, p Partition) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return s.db.Update(func(txn *badger.Txn) error {
		for _, base := range []string{baseBooks, baseGoals, baseSettings, baseSwipes} {
			if err := txn.Delete([]byte(p.key(base))); err != nil {
				return err
			}
		}
		return nil
	})
}
