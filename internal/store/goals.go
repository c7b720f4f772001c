package store

import (
	"context"
	"time"

	"github.com/dgraph-io/badger/v4"

	"github.com/bookshelfapp/bookshelf-server/internal/domain"
)

// ListGoals returns all reading goals in the partition.
func (s *Store) ListGoals(ctx context.Context, p Partition) ([]domain.ReadingGoal, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var goals []domain.ReadingGoal
	if _, err := s.readDocument(p.key(baseGoals), &goals); err != nil {
		return nil, err
	}
	if goals == nil {
		goals = []domain.ReadingGoal{}
	}
	return goals, nil
}

// SaveGoal stores a reading goal, replacing any existing goal for the
// same year. At most one goal per year exists in a partition.
func (s *Store) SaveGoal(ctx context.Context, p Partition, goal domain.ReadingGoal) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if goal.Year <= 0 {
		return ErrInvalidInput.WithMessage("goal year is required")
	}

	key := p.key(baseGoals)
	return s.db.Update(func(txn *badger.Txn) error {
		var goals []domain.ReadingGoal
		if _, err := s.readDocumentTxn(txn, key, &goals); err != nil {
			return err
		}

		replaced := false
		for i := range goals {
			if goals[i].Year == goal.Year {
				goals[i] = goal
				replaced = true
				break
			}
		}
		if !replaced {
			goals = append(goals, goal)
		}
		return s.writeDocumentTxn(txn, key, goals)
	})
}

// GoalForYear returns the goal for a specific year, or ErrGoalNotFound.
func (s *Store) GoalForYear(ctx context.Context, p Partition, year int) (*domain.ReadingGoal, error) {
	goals, err := s.ListGoals(ctx, p)
	if err != nil {
		return nil, err
	}
	for i := range goals {
		if goals[i].Year == year {
			return &goals[i], nil
		}
	}
	return nil, ErrGoalNotFound
}

// CurrentGoal returns the goal for the current calendar year, or
// ErrGoalNotFound when none was set.
func (s *Store) CurrentGoal(ctx context.Context, p Partition) (*domain.ReadingGoal, error) {
	return s.GoalForYear(ctx, p, time.Now().Year())
}
