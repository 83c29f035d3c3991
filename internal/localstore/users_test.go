package localstore

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/expensehub/expense-tracker/internal/common"
	"github.com/expensehub/expense-tracker/internal/entity"
)

func TestUserCreateFindUpdate(t *testing.T) {
	store := openTestStore(t)
	users := store.Users()
	ctx := context.Background()

	created, err := users.Create(ctx, &entity.User{
		Name:         "Asha",
		Email:        "asha@example.com",
		PasswordHash: "$2a$10$fakehash",
		BaseCurrency: "INR",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID == uuid.Nil {
		t.Error("create did not assign an id")
	}
	if created.CreatedAt.IsZero() || created.UpdatedAt.IsZero() {
		t.Error("create did not stamp timestamps")
	}

	found, err := users.FindByEmail(ctx, "asha@example.com")
	if err != nil {
		t.Fatalf("find by email: %v", err)
	}
	if found.ID != created.ID {
		t.Errorf("found %s, want %s", found.ID, created.ID)
	}
	if found.PasswordHash != "$2a$10$fakehash" {
		t.Error("password hash lost on round trip")
	}

	if _, err := users.Create(ctx, &entity.User{Email: "asha@example.com"}); !errors.Is(err, common.ErrEmailTaken) {
		t.Errorf("duplicate email err = %v, want ErrEmailTaken", err)
	}

	found.BaseCurrency = "USD"
	if err := users.Update(ctx, found); err != nil {
		t.Fatalf("update: %v", err)
	}
	got, err := users.GetByID(ctx, found.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.BaseCurrency != "USD" {
		t.Errorf("base currency = %q after update", got.BaseCurrency)
	}

	if _, err := users.GetByID(ctx, uuid.New()); !errors.Is(err, common.ErrNotFound) {
		t.Errorf("unknown id err = %v, want ErrNotFound", err)
	}
	if err := users.Update(ctx, &entity.User{ID: uuid.New()}); !errors.Is(err, common.ErrNotFound) {
		t.Errorf("update unknown id err = %v, want ErrNotFound", err)
	}
}
