package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	apperrors "task-tracker.com/task-tracker/internal/errors"
	model "task-tracker.com/task-tracker/internal/models"
)

func TestUserRepository_CreateAndFind(t *testing.T) {
	repo := NewUserRepository(setupTestDB(t))
	ctx := context.Background()

	user := &model.User{ID: uuid.NewString(), Name: "Ada", Email: "ada@example.com", PasswordHash: "hash"}
	if err := repo.Create(ctx, user); err != nil {
		t.Fatalf("failed to create user: %v", err)
	}

	byEmail, err := repo.FindByEmail(ctx, "ada@example.com")
	if err != nil || byEmail.ID != user.ID {
		t.Fatalf("FindByEmail() = %v, %v", byEmail, err)
	}

	exists, err := repo.ExistsByEmail(ctx, "ada@example.com")
	if err != nil || !exists {
		t.Errorf("ExistsByEmail() = %v, %v", exists, err)
	}

	if _, err := repo.FindByID(ctx, "missing"); !errors.Is(err, apperrors.ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserRepository_DuplicateEmail(t *testing.T) {
	repo := NewUserRepository(setupTestDB(t))
	ctx := context.Background()

	first := &model.User{ID: uuid.NewString(), Name: "A", Email: "dup@example.com", PasswordHash: "h"}
	second := &model.User{ID: uuid.NewString(), Name: "B", Email: "dup@example.com", PasswordHash: "h"}

	if err := repo.Create(ctx, first); err != nil {
		t.Fatalf("failed to create user: %v", err)
	}
	if err := repo.Create(ctx, second); !errors.Is(err, apperrors.ErrEmailTaken) {
		t.Errorf("expected ErrEmailTaken, got %v", err)
	}
}
