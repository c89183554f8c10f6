package repositories

import (
	"errors"
	"strings"
	"testing"
)

func TestRegisterHashesPassword(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))

	user, err := repo.Register(RegisterInput{
		Name:     "Alice",
		Email:    "a@x.com",
		Password: "secret1",
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if user.ID == "" {
		t.Fatalf("expected generated id")
	}
	if user.PasswordHash == "secret1" || user.PasswordHash == "" {
		t.Fatalf("password stored without hashing")
	}
	if strings.Contains(user.PasswordHash, "secret1") {
		t.Fatalf("hash contains plaintext")
	}
	if !repo.VerifySecret(user, "secret1") {
		t.Fatalf("stored hash does not verify")
	}
	if repo.VerifySecret(user, "secret2") {
		t.Fatalf("wrong password verified")
	}
}

func TestRegisterNormalizesEmail(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))

	user, err := repo.Register(RegisterInput{Name: "Alice", Email: "  A@X.Com ", Password: "secret1"})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if user.Email != "a@x.com" {
		t.Fatalf("email not normalized: %q", user.Email)
	}

	if _, err := repo.FindByEmail(" A@X.COM"); err != nil {
		t.Fatalf("case-insensitive lookup failed: %v", err)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))

	if _, err := repo.Register(RegisterInput{Name: "Alice", Email: "a@x.com", Password: "secret1"}); err != nil {
		t.Fatalf("first Register: %v", err)
	}

	// Different name and password, same normalized email.
	_, err := repo.Register(RegisterInput{Name: "Bob", Email: "A@x.com", Password: "other-pass"})
	if !errors.Is(err, ErrDuplicateEmail) {
		t.Fatalf("expected ErrDuplicateEmail, got %v", err)
	}
}

func TestRegisterRejectsBadEmail(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))

	var validationErr *ValidationError
	_, err := repo.Register(RegisterInput{Name: "Alice", Email: "not-an-email", Password: "secret1"})
	if !errors.As(err, &validationErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestRegisterRejectsShortPassword(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))

	var validationErr *ValidationError
	_, err := repo.Register(RegisterInput{Name: "Alice", Email: "a@x.com", Password: "12345"})
	if !errors.As(err, &validationErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestUpdateProfile(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))

	user, err := repo.Register(RegisterInput{Name: "Alice", Email: "a@x.com", Password: "secret1"})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	originalHash := user.PasswordHash

	updated, err := repo.UpdateProfile(user.ID, ProfileUpdate{
		Name:  strPtr("Alice B"),
		Phone: strPtr("555-0100"),
	})
	if err != nil {
		t.Fatalf("UpdateProfile: %v", err)
	}
	if updated.Name != "Alice B" {
		t.Fatalf("name not updated: %q", updated.Name)
	}
	if updated.Phone == nil || *updated.Phone != "555-0100" {
		t.Fatalf("phone not updated: %v", updated.Phone)
	}
	if updated.Address != nil {
		t.Fatalf("address changed without being set")
	}
	if updated.PasswordHash != originalHash {
		t.Fatalf("credential hash changed through profile update")
	}
}

func TestUpdateProfileUnknownUser(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))

	_, err := repo.UpdateProfile("missing-id", ProfileUpdate{Name: strPtr("X")})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestFindByIDNotFound(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))

	if _, err := repo.FindByID("missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
