package auth

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/expensehub/expense-tracker/internal/common"
	"github.com/expensehub/expense-tracker/internal/entity"
)

type memUsers struct {
	byID map[uuid.UUID]*entity.User
}

func newMemUsers() *memUsers {
	return &memUsers{byID: make(map[uuid.UUID]*entity.User)}
}

func (m *memUsers) GetByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	u, ok := m.byID[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (m *memUsers) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range m.byID {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, common.ErrNotFound
}

func (m *memUsers) Create(_ context.Context, u *entity.User) (*entity.User, error) {
	if _, err := m.FindByEmail(context.Background(), u.Email); err == nil {
		return nil, common.ErrEmailTaken
	}
	cp := *u
	m.byID[u.ID] = &cp
	return &cp, nil
}

func (m *memUsers) Update(_ context.Context, u *entity.User) error {
	if _, ok := m.byID[u.ID]; !ok {
		return common.ErrNotFound
	}
	cp := *u
	m.byID[u.ID] = &cp
	return nil
}

func newTestService(users *memUsers) *Service {
	return NewService(users, NewTokenIssuer("test-secret", time.Hour), slog.Default())
}

func TestSignupLoginRoundTrip(t *testing.T) {
	users := newMemUsers()
	svc := newTestService(users)
	ctx := context.Background()

	user, token, err := svc.Signup(ctx, "Asha", "Asha@Example.com", "correct horse")
	if err != nil {
		t.Fatalf("signup: %v", err)
	}
	if user.Email != "asha@example.com" {
		t.Errorf("email not normalized: %q", user.Email)
	}
	if user.BaseCurrency != "INR" {
		t.Errorf("base currency = %q, want default INR", user.BaseCurrency)
	}
	if user.PasswordHash == "correct horse" || user.PasswordHash == "" {
		t.Error("password stored without hashing")
	}
	if !strings.Contains(user.AvatarURL, "seed=Asha") {
		t.Errorf("avatar url = %q", user.AvatarURL)
	}
	if token == "" {
		t.Error("signup issued no token")
	}

	loggedIn, token2, err := svc.Login(ctx, "asha@example.com", "correct horse")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if loggedIn.ID != user.ID || token2 == "" {
		t.Error("login did not return the registered user with a token")
	}

	resolved, err := svc.Authenticate(ctx, token2)
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}
	if resolved.ID != user.ID {
		t.Errorf("token resolved to %s, want %s", resolved.ID, user.ID)
	}
}

func TestSignupDuplicateEmail(t *testing.T) {
	svc := newTestService(newMemUsers())
	ctx := context.Background()

	if _, _, err := svc.Signup(ctx, "Asha", "asha@example.com", "correct horse"); err != nil {
		t.Fatal(err)
	}
	_, _, err := svc.Signup(ctx, "Other", "asha@example.com", "different pass")
	if !errors.Is(err, common.ErrEmailTaken) {
		t.Errorf("err = %v, want ErrEmailTaken", err)
	}
}

func TestLoginBadCredentials(t *testing.T) {
	svc := newTestService(newMemUsers())
	ctx := context.Background()

	if _, _, err := svc.Signup(ctx, "Asha", "asha@example.com", "correct horse"); err != nil {
		t.Fatal(err)
	}

	cases := []struct {
		name, email, password string
	}{
		{"wrong password", "asha@example.com", "wrong"},
		{"unknown email", "nobody@example.com", "correct horse"},
	}
	var messages []string
	for _, tc := range cases {
		_, _, err := svc.Login(ctx, tc.email, tc.password)
		if !errors.Is(err, common.ErrUnauthorized) {
			t.Errorf("%s: err = %v, want ErrUnauthorized", tc.name, err)
			continue
		}
		messages = append(messages, err.Error())
	}
	// The two failure modes must be indistinguishable to the caller.
	if len(messages) == 2 && messages[0] != messages[1] {
		t.Errorf("credential errors differ: %q vs %q", messages[0], messages[1])
	}
}

func TestSignupRejectsShortPassword(t *testing.T) {
	svc := newTestService(newMemUsers())
	if _, _, err := svc.Signup(context.Background(), "Asha", "asha@example.com", "short"); err == nil {
		t.Error("short password accepted")
	}
}

func TestUpdateProfile(t *testing.T) {
	svc := newTestService(newMemUsers())
	ctx := context.Background()

	user, _, err := svc.Signup(ctx, "Asha", "asha@example.com", "correct horse")
	if err != nil {
		t.Fatal(err)
	}

	name := "Asha R"
	cur := "usd"
	updated, err := svc.UpdateProfile(ctx, user.ID, ProfilePatch{Name: &name, BaseCurrency: &cur})
	if err != nil {
		t.Fatal(err)
	}
	if updated.Name != "Asha R" {
		t.Errorf("name = %q", updated.Name)
	}
	if updated.BaseCurrency != "USD" {
		t.Errorf("base currency = %q, want USD", updated.BaseCurrency)
	}

	bad := "rupees"
	if _, err := svc.UpdateProfile(ctx, user.ID, ProfilePatch{BaseCurrency: &bad}); err == nil {
		t.Error("invalid currency code accepted")
	}
}

func TestTokenExpiry(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", time.Minute)
	base := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	issuer.now = func() time.Time { return base }

	userID := uuid.New()
	token, err := issuer.Issue(userID)
	if err != nil {
		t.Fatal(err)
	}

	got, err := issuer.Verify(token)
	if err != nil || got != userID {
		t.Fatalf("verify = %v, %v", got, err)
	}

	issuer.now = func() time.Time { return base.Add(2 * time.Minute) }
	if _, err := issuer.Verify(token); !errors.Is(err, common.ErrUnauthorized) {
		t.Errorf("expired token err = %v, want ErrUnauthorized", err)
	}
}

func TestVerifyRejectsForeignSignature(t *testing.T) {
	a := NewTokenIssuer("secret-a", time.Hour)
	b := NewTokenIssuer("secret-b", time.Hour)

	token, err := a.Issue(uuid.New())
	if err != nil {
		t.Fatal(err)
	}
	if _, err := b.Verify(token); !errors.Is(err, common.ErrUnauthorized) {
		t.Errorf("foreign-signed token err = %v, want ErrUnauthorized", err)
	}
}
