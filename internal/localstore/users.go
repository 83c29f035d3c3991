package localstore

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"go.etcd.io/bbolt"

	"github.com/expensehub/expense-tracker/internal/common"
	"github.com/expensehub/expense-tracker/internal/entity"
	"github.com/expensehub/expense-tracker/internal/repository"
)

// Users returns a UserRepository view over the store.
func (s *Store) Users() repository.UserRepository {
	return &userStore{db: s.db}
}

type userStore struct {
	db *bbolt.DB
}

// storedUser re-exposes the password hash for persistence; the entity tag
// hides it from every other JSON surface.
type storedUser struct {
	entity.User
	PasswordHash string `json:"password_hash"`
}

func encodeUser(u *entity.User) ([]byte, error) {
	return marshalValue(storedUser{User: *u, PasswordHash: u.PasswordHash})
}

func decodeUser(data []byte) (*entity.User, error) {
	var su storedUser
	if err := json.Unmarshal(data, &su); err != nil {
		return nil, err
	}
	u := su.User
	u.PasswordHash = su.PasswordHash
	return &u, nil
}

func (s *userStore) GetByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	var u *entity.User
	err := s.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket([]byte(usersBucket)).Get([]byte(id.String()))
		if data == nil {
			return common.ErrNotFound
		}
		var derr error
		u, derr = decodeUser(data)
		return derr
	})
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (s *userStore) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	var found *entity.User
	err := s.db.View(func(tx *bbolt.Tx) error {
		return tx.Bucket([]byte(usersBucket)).ForEach(func(k, v []byte) error {
			u, err := decodeUser(v)
			if err != nil {
				return err
			}
			if u.Email == email {
				found = u
			}
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	if found == nil {
		return nil, common.ErrNotFound
	}
	return found, nil
}

func (s *userStore) Create(_ context.Context, u *entity.User) (*entity.User, error) {
	if existing, err := s.FindByEmail(context.Background(), u.Email); err == nil && existing != nil {
		return nil, common.ErrEmailTaken
	}

	created := *u
	if created.ID == uuid.Nil {
		created.ID = uuid.New()
	}
	now := time.Now()
	if created.CreatedAt.IsZero() {
		created.CreatedAt = now
	}
	created.UpdatedAt = now

	err := s.db.Update(func(tx *bbolt.Tx) error {
		data, err := encodeUser(&created)
		if err != nil {
			return err
		}
		return tx.Bucket([]byte(usersBucket)).Put([]byte(created.ID.String()), data)
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (s *userStore) Update(_ context.Context, u *entity.User) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(usersBucket))
		if bucket.Get([]byte(u.ID.String())) == nil {
			return common.ErrNotFound
		}
		updated := *u
		updated.UpdatedAt = time.Now()
		data, err := encodeUser(&updated)
		if err != nil {
			return err
		}
		return bucket.Put([]byte(u.ID.String()), data)
	})
}
