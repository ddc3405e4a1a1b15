package services

import (
  "context"
  "errors"
  "fmt"
  "testing"
  "time"

  "github.com/google/uuid"
  "go.uber.org/zap"
  "gorm.io/gorm"

  "github.com/panjiyudasetya/go-contacts/internal/apierr"
  "github.com/panjiyudasetya/go-contacts/internal/db"
  "github.com/panjiyudasetya/go-contacts/internal/logger"
  "github.com/panjiyudasetya/go-contacts/internal/repos"
  "github.com/panjiyudasetya/go-contacts/internal/requestdata"
  "github.com/panjiyudasetya/go-contacts/internal/types"
)

type testEnv struct {
  db                    *gorm.DB
  log                   *logger.Logger
  userRepo              repos.UserRepo
  contactRepo           repos.ContactRepo
  phoneRepo             repos.PhoneRepo
  contactMembershipRepo repos.ContactMembershipRepo
  groupRepo             repos.GroupRepo
  groupMembershipRepo   repos.GroupMembershipRepo

  contacts     ContactService
  phones       PhoneService
  myContacts   MyContactService
  groups       GroupService
  groupMembers GroupMemberService

  seq int
}

func newTestEnv(t *testing.T) *testEnv {
  t.Helper()

  gormDB, err := db.NewSQLiteMemory()
  if err != nil {
    t.Fatalf("open test db: %v", err)
  }
  log := &logger.Logger{SugaredLogger: zap.NewNop().Sugar()}

  te := &testEnv{
    db:                    gormDB,
    log:                   log,
    userRepo:              repos.NewUserRepo(gormDB, log),
    contactRepo:           repos.NewContactRepo(gormDB, log),
    phoneRepo:             repos.NewPhoneRepo(gormDB, log),
    contactMembershipRepo: repos.NewContactMembershipRepo(gormDB, log),
    groupRepo:             repos.NewGroupRepo(gormDB, log),
    groupMembershipRepo:   repos.NewGroupMembershipRepo(gormDB, log),
  }
  te.contacts = NewContactService(gormDB, log, te.userRepo, te.contactRepo, te.phoneRepo, te.contactMembershipRepo, te.groupMembershipRepo)
  te.phones = NewPhoneService(gormDB, log, te.contactRepo, te.phoneRepo)
  te.myContacts = NewMyContactService(gormDB, log, te.contactRepo, te.contactMembershipRepo)
  te.groups = NewGroupService(gormDB, log, te.contactRepo, te.groupRepo, te.groupMembershipRepo)
  te.groupMembers = NewGroupMemberService(gormDB, log, te.contactRepo, te.groupRepo, te.groupMembershipRepo)
  return te
}

func (te *testEnv) createUser(t *testing.T, firstName string, isStaff bool) *types.User {
  t.Helper()
  te.seq++
  now := time.Now()
  user := &types.User{
    ID:        uuid.New(),
    Email:     fmt.Sprintf("%s%d@example.com", firstName, te.seq),
    Password:  "irrelevant",
    FirstName: firstName,
    LastName:  "Tester",
    IsStaff:   isStaff,
    CreatedAt: now,
    UpdatedAt: now,
  }
  if _, err := te.userRepo.Create(context.Background(), nil, []*types.User{user}); err != nil {
    t.Fatalf("create user: %v", err)
  }
  return user
}

// createContact inserts a contact directly, bypassing the staff policy.
func (te *testEnv) createContact(t *testing.T, user *types.User) *types.Contact {
  t.Helper()
  now := time.Now()
  contact := &types.Contact{
    ID:        uuid.New(),
    UserID:    user.ID,
    Nickname:  user.FirstName,
    CreatedAt: now,
    UpdatedAt: now,
  }
  if _, err := te.contactRepo.Create(context.Background(), nil, []*types.Contact{contact}); err != nil {
    t.Fatalf("create contact: %v", err)
  }
  return contact
}

func ctxFor(user *types.User) context.Context {
  return requestdata.WithRequestData(context.Background(), &requestdata.RequestData{
    UserID:  user.ID,
    IsStaff: user.IsStaff,
  })
}

func apiStatus(t *testing.T, err error) int {
  t.Helper()
  if err == nil {
    t.Fatalf("expected an error")
  }
  var ae *apierr.Error
  if !errors.As(err, &ae) {
    t.Fatalf("expected *apierr.Error, got %T: %v", err, err)
  }
  return ae.Status
}
