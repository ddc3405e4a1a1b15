package services

import (
  "context"
  "fmt"
  "strings"
  "time"

  "github.com/golang-jwt/jwt/v5"
  "github.com/google/uuid"
  "golang.org/x/crypto/bcrypt"
  "gorm.io/gorm"

  "github.com/panjiyudasetya/go-contacts/internal/apierr"
  "github.com/panjiyudasetya/go-contacts/internal/logger"
  "github.com/panjiyudasetya/go-contacts/internal/repos"
  "github.com/panjiyudasetya/go-contacts/internal/requestdata"
  "github.com/panjiyudasetya/go-contacts/internal/types"
)

// AuthService is the stand-in for the external identity provider: it seeds
// users, issues access tokens and turns a bearer token back into a request
// principal. The rest of the service layer only sees requestdata.
type AuthService interface {
  RegisterUser(ctx context.Context, user *types.User) error
  LoginUser(ctx context.Context, email, password string) (string, error)
  SetContextFromToken(ctx context.Context, tokenString string) (context.Context, error)
}

type authService struct {
  db           *gorm.DB
  log          *logger.Logger
  userRepo     repos.UserRepo
  jwtSecretKey string
  accessTTL    time.Duration
}

func NewAuthService(
  db *gorm.DB,
  baseLog *logger.Logger,
  userRepo repos.UserRepo,
  jwtSecretKey string,
  accessTTL time.Duration,
) AuthService {
  serviceLog := baseLog.With("service", "AuthService")
  return &authService{
    db:           db,
    log:          serviceLog,
    userRepo:     userRepo,
    jwtSecretKey: jwtSecretKey,
    accessTTL:    accessTTL,
  }
}

func (as *authService) RegisterUser(ctx context.Context, user *types.User) error {
  if user == nil {
    return apierr.Validation("user payload is required")
  }
  user.Email = strings.TrimSpace(strings.ToLower(user.Email))
  user.FirstName = strings.TrimSpace(user.FirstName)
  user.LastName = strings.TrimSpace(user.LastName)
  if user.Email == "" {
    return apierr.Validation("an email is required to register")
  }
  if user.Password == "" {
    return apierr.Validation("a password is required to register")
  }
  if user.FirstName == "" {
    return apierr.Validation("a first name is required to register")
  }
  if user.LastName == "" {
    return apierr.Validation("a last name is required to register")
  }

  emailExists, err := as.userRepo.EmailExists(ctx, nil, user.Email)
  if err != nil {
    return fmt.Errorf("check email: %w", err)
  }
  if emailExists {
    return apierr.Validation("email is already in use")
  }

  hashedPassword, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
  if err != nil {
    return fmt.Errorf("hash password: %w", err)
  }
  user.Password = string(hashedPassword)
  user.ID = uuid.New()

  if _, err := as.userRepo.Create(ctx, nil, []*types.User{user}); err != nil {
    as.log.Error("RegisterUser failed", "error", err)
    return fmt.Errorf("create user: %w", err)
  }
  return nil
}

func (as *authService) LoginUser(ctx context.Context, email, password string) (string, error) {
  email = strings.TrimSpace(strings.ToLower(email))
  if email == "" {
    return "", apierr.Validation("email is required to login")
  }
  if password == "" {
    return "", apierr.Validation("password is required to login")
  }

  users, err := as.userRepo.GetByEmails(ctx, nil, []string{email})
  if err != nil {
    return "", fmt.Errorf("load user by email: %w", err)
  }
  if len(users) == 0 {
    return "", apierr.Unauthorized("invalid email or password")
  }
  user := users[0]

  if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
    return "", apierr.Unauthorized("invalid email or password")
  }
  return as.generateAccessToken(user)
}

func (as *authService) generateAccessToken(user *types.User) (string, error) {
  now := time.Now()
  claims := jwt.MapClaims{
    "sub":   user.ID.String(),
    "staff": user.IsStaff,
    "iat":   now.Unix(),
    "exp":   now.Add(as.accessTTL).Unix(),
  }
  token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
  signed, err := token.SignedString([]byte(as.jwtSecretKey))
  if err != nil {
    return "", fmt.Errorf("sign access token: %w", err)
  }
  return signed, nil
}

func (as *authService) SetContextFromToken(ctx context.Context, tokenString string) (context.Context, error) {
  parsed, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
    if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
      return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
    }
    return []byte(as.jwtSecretKey), nil
  })
  if err != nil || !parsed.Valid {
    return ctx, apierr.Unauthorized("invalid or expired token")
  }

  claims, ok := parsed.Claims.(jwt.MapClaims)
  if !ok {
    return ctx, apierr.Unauthorized("invalid token claims")
  }
  sub, _ := claims["sub"].(string)
  userID, err := uuid.Parse(sub)
  if err != nil {
    return ctx, apierr.Unauthorized("invalid token subject")
  }

  // The staff flag is re-read from the store so a revoked admin cannot
  // keep acting on an old token.
  users, err := as.userRepo.GetByIDs(ctx, nil, []uuid.UUID{userID})
  if err != nil {
    return ctx, fmt.Errorf("load token user: %w", err)
  }
  if len(users) == 0 {
    return ctx, apierr.Unauthorized("token user no longer exists")
  }

  rd := &requestdata.RequestData{
    TokenString: tokenString,
    UserID:      userID,
    IsStaff:     users[0].IsStaff,
  }
  return requestdata.WithRequestData(ctx, rd), nil
}
