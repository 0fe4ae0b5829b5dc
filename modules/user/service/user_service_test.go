package service

import (
	"context"
	"testing"

	"meetsync/core/database"
	"meetsync/core/errors"
	"meetsync/modules/user/dto"
	"meetsync/modules/user/repository"
)

func setupUserServiceTest(t *testing.T) (UserServiceInterface, func()) {
	t.Helper()

	db, err := database.InitSQLite(":memory:")
	if err != nil {
		t.Fatalf("InitSQLite failed: %v", err)
	}
	if err := database.EnsureSchema(context.Background(), db); err != nil {
		t.Fatalf("EnsureSchema failed: %v", err)
	}

	return NewUserService(repository.NewUserRepository(db)), func() { db.Close() }
}

func TestUserService_LoginOrRegister_CreatesThenFinds(t *testing.T) {
	svc, cleanup := setupUserServiceTest(t)
	defer cleanup()

	ctx := context.Background()
	first, appErr := svc.LoginOrRegister(ctx, "Ann")
	if appErr != nil {
		t.Fatalf("LoginOrRegister failed: %v", appErr)
	}
	if first.Status != dto.LoginStatusCreated {
		t.Errorf("Expected status Created on first login, got %s", first.Status)
	}

	second, appErr := svc.LoginOrRegister(ctx, "Ann")
	if appErr != nil {
		t.Fatalf("LoginOrRegister failed: %v", appErr)
	}
	if second.Status != dto.LoginStatusExists {
		t.Errorf("Expected status Exists on repeat login, got %s", second.Status)
	}
	if second.User.ID != first.User.ID {
		t.Errorf("Expected the same user id, got %d then %d", first.User.ID, second.User.ID)
	}
}

func TestUserService_ValidateUser(t *testing.T) {
	svc, cleanup := setupUserServiceTest(t)
	defer cleanup()

	ctx := context.Background()
	created, appErr := svc.LoginOrRegister(ctx, "Ann")
	if appErr != nil {
		t.Fatalf("LoginOrRegister failed: %v", appErr)
	}

	if appErr := svc.ValidateUser(ctx, created.User.ID); appErr != nil {
		t.Errorf("Expected known user to validate, got %v", appErr)
	}

	appErr = svc.ValidateUser(ctx, created.User.ID+1000)
	if appErr == nil {
		t.Fatal("Expected NotFound for unknown user, got nil")
	}
	if appErr.Code != errors.ErrNotFound {
		t.Errorf("Expected code %s, got %s", errors.ErrNotFound, appErr.Code)
	}
}
