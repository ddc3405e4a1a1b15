package services

import (
  "context"
  "fmt"
  "time"

  "github.com/google/uuid"
  "gorm.io/gorm"

  "github.com/panjiyudasetya/go-contacts/internal/apierr"
  "github.com/panjiyudasetya/go-contacts/internal/logger"
  "github.com/panjiyudasetya/go-contacts/internal/repos"
  "github.com/panjiyudasetya/go-contacts/internal/types"
)

type CreateContactInput struct {
  UserID   uuid.UUID `json:"user"`
  Nickname string    `json:"nickname"`
  Company  string    `json:"company"`
  Title    string    `json:"title"`
  Address  string    `json:"address"`
}

type UpdateContactInput struct {
  Nickname string `json:"nickname"`
  Company  string `json:"company"`
  Title    string `json:"title"`
  Address  string `json:"address"`
}

type ContactService interface {
  // ListContacts returns every contact, readable by any authenticated user.
  ListContacts(ctx context.Context, tx *gorm.DB) ([]types.ContactView, error)
  GetContact(ctx context.Context, tx *gorm.DB, contactID uuid.UUID) (*types.ContactView, error)
  // CreateContact, UpdateContact and DeleteContact are staff-only.
  CreateContact(ctx context.Context, tx *gorm.DB, input CreateContactInput) (*types.ContactView, error)
  UpdateContact(ctx context.Context, tx *gorm.DB, contactID uuid.UUID, input UpdateContactInput) (*types.ContactView, error)
  DeleteContact(ctx context.Context, contactID uuid.UUID) error
}

type contactService struct {
  db                    *gorm.DB
  log                   *logger.Logger
  userRepo              repos.UserRepo
  contactRepo           repos.ContactRepo
  phoneRepo             repos.PhoneRepo
  contactMembershipRepo repos.ContactMembershipRepo
  groupMembershipRepo   repos.GroupMembershipRepo
}

func NewContactService(
  db *gorm.DB,
  baseLog *logger.Logger,
  userRepo repos.UserRepo,
  contactRepo repos.ContactRepo,
  phoneRepo repos.PhoneRepo,
  contactMembershipRepo repos.ContactMembershipRepo,
  groupMembershipRepo repos.GroupMembershipRepo,
) ContactService {
  serviceLog := baseLog.With("service", "ContactService")
  return &contactService{
    db:                    db,
    log:                   serviceLog,
    userRepo:              userRepo,
    contactRepo:           contactRepo,
    phoneRepo:             phoneRepo,
    contactMembershipRepo: contactMembershipRepo,
    groupMembershipRepo:   groupMembershipRepo,
  }
}

func (cs *contactService) ListContacts(ctx context.Context, tx *gorm.DB) ([]types.ContactView, error) {
  if _, err := requirePrincipal(ctx); err != nil {
    return nil, err
  }

  contacts, err := cs.contactRepo.ListAll(ctx, tx)
  if err != nil {
    return nil, fmt.Errorf("list contacts: %w", err)
  }

  views := make([]types.ContactView, 0, len(contacts))
  for _, contact := range contacts {
    views = append(views, types.NewContactView(contact))
  }
  return views, nil
}

func (cs *contactService) GetContact(ctx context.Context, tx *gorm.DB, contactID uuid.UUID) (*types.ContactView, error) {
  if _, err := requirePrincipal(ctx); err != nil {
    return nil, err
  }

  contacts, err := cs.contactRepo.GetByIDs(ctx, tx, []uuid.UUID{contactID})
  if err != nil {
    return nil, fmt.Errorf("load contact: %w", err)
  }
  if len(contacts) == 0 {
    return nil, apierr.NotFound("contact %s not found", contactID)
  }
  view := types.NewContactView(contacts[0])
  return &view, nil
}

func (cs *contactService) CreateContact(ctx context.Context, tx *gorm.DB, input CreateContactInput) (*types.ContactView, error) {
  if _, err := requireStaff(ctx); err != nil {
    return nil, err
  }
  if input.UserID == uuid.Nil {
    return nil, apierr.Validation("user is required")
  }

  users, err := cs.userRepo.GetByIDs(ctx, tx, []uuid.UUID{input.UserID})
  if err != nil {
    return nil, fmt.Errorf("load user: %w", err)
  }
  if len(users) == 0 {
    return nil, apierr.Validation("user %s does not exist", input.UserID)
  }

  hasContact, err := cs.contactRepo.UserHasContact(ctx, tx, input.UserID)
  if err != nil {
    return nil, fmt.Errorf("check existing contact: %w", err)
  }
  if hasContact {
    return nil, apierr.Validation("user %s already has a contact", input.UserID)
  }

  now := time.Now()
  contact := &types.Contact{
    ID:        uuid.New(),
    UserID:    input.UserID,
    Nickname:  input.Nickname,
    Company:   input.Company,
    Title:     input.Title,
    Address:   input.Address,
    CreatedAt: now,
    UpdatedAt: now,
  }
  if _, err := cs.contactRepo.Create(ctx, tx, []*types.Contact{contact}); err != nil {
    cs.log.Error("CreateContact failed", "error", err)
    return nil, fmt.Errorf("create contact: %w", err)
  }

  contact.User = users[0]
  view := types.NewContactView(contact)
  return &view, nil
}

func (cs *contactService) UpdateContact(ctx context.Context, tx *gorm.DB, contactID uuid.UUID, input UpdateContactInput) (*types.ContactView, error) {
  if _, err := requireStaff(ctx); err != nil {
    return nil, err
  }

  contacts, err := cs.contactRepo.GetByIDs(ctx, tx, []uuid.UUID{contactID})
  if err != nil {
    return nil, fmt.Errorf("load contact: %w", err)
  }
  if len(contacts) == 0 {
    return nil, apierr.NotFound("contact %s not found", contactID)
  }
  contact := contacts[0]

  // The linked user is never changed on update.
  contact.Nickname = input.Nickname
  contact.Company = input.Company
  contact.Title = input.Title
  contact.Address = input.Address

  if _, err := cs.contactRepo.Update(ctx, tx, contact); err != nil {
    cs.log.Error("UpdateContact failed", "error", err)
    return nil, fmt.Errorf("update contact: %w", err)
  }

  updated, err := cs.contactRepo.GetByIDs(ctx, tx, []uuid.UUID{contactID})
  if err != nil || len(updated) == 0 {
    return nil, fmt.Errorf("reload contact: %w", err)
  }
  view := types.NewContactView(updated[0])
  return &view, nil
}

func (cs *contactService) DeleteContact(ctx context.Context, contactID uuid.UUID) error {
  if _, err := requireStaff(ctx); err != nil {
    return err
  }

  return cs.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
    contacts, err := cs.contactRepo.GetByIDs(ctx, tx, []uuid.UUID{contactID})
    if err != nil {
      return fmt.Errorf("load contact: %w", err)
    }
    if len(contacts) == 0 {
      return apierr.NotFound("contact %s not found", contactID)
    }

    ids := []uuid.UUID{contactID}
    if err := cs.phoneRepo.DeleteByContactIDs(ctx, tx, ids); err != nil {
      return fmt.Errorf("delete phones: %w", err)
    }
    if err := cs.contactMembershipRepo.DeleteByContactIDs(ctx, tx, ids); err != nil {
      return fmt.Errorf("delete contact memberships: %w", err)
    }
    if err := cs.groupMembershipRepo.DeleteByContactIDs(ctx, tx, ids); err != nil {
      return fmt.Errorf("delete group memberships: %w", err)
    }
    if err := cs.contactRepo.Delete(ctx, tx, ids); err != nil {
      return fmt.Errorf("delete contact: %w", err)
    }
    return nil
  })
}
