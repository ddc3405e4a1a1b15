package services

import (
  "context"
  "net/http"
  "testing"
  "time"

  "github.com/panjiyudasetya/go-contacts/internal/requestdata"
  "github.com/panjiyudasetya/go-contacts/internal/types"
)

func newAuthService(te *testEnv, ttl time.Duration) AuthService {
  return NewAuthService(te.db, te.log, te.userRepo, "test-secret", ttl)
}

func TestRegisterAndLogin_RoundTrip(t *testing.T) {
  te := newTestEnv(t)
  auth := newAuthService(te, time.Hour)

  user := &types.User{
    Email:     "Alice@Example.com",
    Password:  "s3cret",
    FirstName: "Alice",
    LastName:  "Tester",
  }
  if err := auth.RegisterUser(context.Background(), user); err != nil {
    t.Fatalf("register: %v", err)
  }
  if user.Password == "s3cret" {
    t.Fatalf("password stored in plain text")
  }

  // Email is normalized, so the original casing still logs in.
  token, err := auth.LoginUser(context.Background(), "alice@example.com", "s3cret")
  if err != nil {
    t.Fatalf("login: %v", err)
  }
  if token == "" {
    t.Fatalf("empty access token")
  }

  ctx, err := auth.SetContextFromToken(context.Background(), token)
  if err != nil {
    t.Fatalf("set context from token: %v", err)
  }
  rd := requestdata.GetRequestData(ctx)
  if rd == nil || rd.UserID != user.ID {
    t.Fatalf("unexpected request data: %+v", rd)
  }
  if rd.IsStaff {
    t.Fatalf("regular user flagged as staff")
  }
}

func TestRegister_RejectsDuplicateEmail(t *testing.T) {
  te := newTestEnv(t)
  auth := newAuthService(te, time.Hour)

  first := &types.User{Email: "alice@example.com", Password: "pw", FirstName: "Alice", LastName: "Tester"}
  if err := auth.RegisterUser(context.Background(), first); err != nil {
    t.Fatalf("register: %v", err)
  }

  second := &types.User{Email: "ALICE@example.com", Password: "pw", FirstName: "Other", LastName: "Alice"}
  err := auth.RegisterUser(context.Background(), second)
  if status := apiStatus(t, err); status != http.StatusBadRequest {
    t.Fatalf("expected 400, got %d", status)
  }
}

func TestLogin_RejectsWrongPassword(t *testing.T) {
  te := newTestEnv(t)
  auth := newAuthService(te, time.Hour)

  user := &types.User{Email: "alice@example.com", Password: "pw", FirstName: "Alice", LastName: "Tester"}
  if err := auth.RegisterUser(context.Background(), user); err != nil {
    t.Fatalf("register: %v", err)
  }

  _, err := auth.LoginUser(context.Background(), "alice@example.com", "nope")
  if status := apiStatus(t, err); status != http.StatusUnauthorized {
    t.Fatalf("expected 401, got %d", status)
  }
}

func TestSetContextFromToken_RejectsExpired(t *testing.T) {
  te := newTestEnv(t)
  auth := newAuthService(te, -time.Minute)

  user := &types.User{Email: "alice@example.com", Password: "pw", FirstName: "Alice", LastName: "Tester"}
  if err := auth.RegisterUser(context.Background(), user); err != nil {
    t.Fatalf("register: %v", err)
  }
  token, err := auth.LoginUser(context.Background(), "alice@example.com", "pw")
  if err != nil {
    t.Fatalf("login: %v", err)
  }

  _, err = auth.SetContextFromToken(context.Background(), token)
  if status := apiStatus(t, err); status != http.StatusUnauthorized {
    t.Fatalf("expected 401, got %d", status)
  }
}

func TestSetContextFromToken_RefreshesStaffFlag(t *testing.T) {
  te := newTestEnv(t)
  auth := newAuthService(te, time.Hour)

  user := &types.User{Email: "admin@example.com", Password: "pw", FirstName: "Admin", LastName: "Tester", IsStaff: true}
  if err := auth.RegisterUser(context.Background(), user); err != nil {
    t.Fatalf("register: %v", err)
  }
  token, err := auth.LoginUser(context.Background(), "admin@example.com", "pw")
  if err != nil {
    t.Fatalf("login: %v", err)
  }

  // Revoke staff behind the token's back.
  if err := te.db.Model(&types.User{}).Where("id = ?", user.ID).Update("is_staff", false).Error; err != nil {
    t.Fatalf("revoke staff: %v", err)
  }

  ctx, err := auth.SetContextFromToken(context.Background(), token)
  if err != nil {
    t.Fatalf("set context from token: %v", err)
  }
  if rd := requestdata.GetRequestData(ctx); rd == nil || rd.IsStaff {
    t.Fatalf("staff flag should come from the store, got %+v", rd)
  }
}
