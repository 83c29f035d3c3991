package localstore

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/google/uuid"
	"go.etcd.io/bbolt"

	"github.com/expensehub/expense-tracker/internal/common"
	"github.com/expensehub/expense-tracker/internal/entity"
	"github.com/expensehub/expense-tracker/internal/repository"
)

// Expenses returns an ExpenseRepository view over the store.
func (s *Store) Expenses() repository.ExpenseRepository {
	return &expenseStore{db: s.db}
}

type expenseStore struct {
	db *bbolt.DB
}

func (s *expenseStore) LoadForUser(_ context.Context, userID uuid.UUID) ([]*entity.Expense, error) {
	var records []*entity.Expense
	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(expensesBucket))
		return bucket.ForEach(func(k, v []byte) error {
			var rec entity.Expense
			if err := json.Unmarshal(v, &rec); err != nil {
				return fmt.Errorf("unmarshaling expense %s: %w", k, err)
			}
			if rec.UserID == userID {
				records = append(records, &rec)
			}
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	// Display order: date descending, newest insert first on equal dates.
	sort.SliceStable(records, func(i, j int) bool {
		if !records[i].TxDate.Equal(records[j].TxDate) {
			return records[i].TxDate.After(records[j].TxDate)
		}
		return records[i].CreatedAt.After(records[j].CreatedAt)
	})
	return records, nil
}

func (s *expenseStore) ReplaceForUser(_ context.Context, userID uuid.UUID, records []*entity.Expense) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(expensesBucket))

		// Read-modify-write: drop the user's slice, keep everyone else's.
		var stale [][]byte
		err := bucket.ForEach(func(k, v []byte) error {
			var rec entity.Expense
			if err := json.Unmarshal(v, &rec); err != nil {
				return fmt.Errorf("unmarshaling expense %s: %w", k, err)
			}
			if rec.UserID == userID {
				stale = append(stale, append([]byte(nil), k...))
			}
			return nil
		})
		if err != nil {
			return err
		}
		for _, k := range stale {
			if err := bucket.Delete(k); err != nil {
				return err
			}
		}

		for _, rec := range records {
			data, err := marshalValue(rec)
			if err != nil {
				return err
			}
			if err := bucket.Put([]byte(rec.ID.String()), data); err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *expenseStore) Get(_ context.Context, id uuid.UUID) (*entity.Expense, error) {
	var rec *entity.Expense
	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(expensesBucket))
		data := bucket.Get([]byte(id.String()))
		if data == nil {
			return common.ErrNotFound
		}
		return json.Unmarshal(data, &rec)
	})
	if err != nil {
		return nil, err
	}
	return rec, nil
}

func (s *expenseStore) Insert(_ context.Context, record *entity.Expense) error {
	return s.put(record)
}

func (s *expenseStore) Update(_ context.Context, record *entity.Expense) error {
	err := s.db.View(func(tx *bbolt.Tx) error {
		if tx.Bucket([]byte(expensesBucket)).Get([]byte(record.ID.String())) == nil {
			return common.ErrNotFound
		}
		return nil
	})
	if err != nil {
		return err
	}
	return s.put(record)
}

func (s *expenseStore) Delete(_ context.Context, id uuid.UUID) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(expensesBucket))
		if bucket.Get([]byte(id.String())) == nil {
			return common.ErrNotFound
		}
		return bucket.Delete([]byte(id.String()))
	})
}

func (s *expenseStore) put(record *entity.Expense) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		data, err := marshalValue(record)
		if err != nil {
			return err
		}
		return tx.Bucket([]byte(expensesBucket)).Put([]byte(record.ID.String()), data)
	})
}
