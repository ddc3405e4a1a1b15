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

type AddMyContactInput struct {
  ContactID uuid.UUID `json:"contact"`
  Starred   bool      `json:"starred"`
}

type UpdateMyContactInput struct {
  Starred bool `json:"starred"`
}

// MyContactService manages the requester's personal contact list. Every
// operation resolves the principal to their own Contact first; the list is
// invisible to everyone else.
type MyContactService interface {
  ListMyContacts(ctx context.Context, tx *gorm.DB) ([]types.MyContactView, error)
  GetMyContact(ctx context.Context, tx *gorm.DB, contactID uuid.UUID) (*types.MyContactView, error)
  AddMyContact(ctx context.Context, tx *gorm.DB, input AddMyContactInput) error
  UpdateMyContact(ctx context.Context, tx *gorm.DB, contactID uuid.UUID, input UpdateMyContactInput) error
  // RemoveMyContact deletes the membership only, never the contact itself.
  RemoveMyContact(ctx context.Context, tx *gorm.DB, contactID uuid.UUID) error
}

type myContactService struct {
  db             *gorm.DB
  log            *logger.Logger
  contactRepo    repos.ContactRepo
  membershipRepo repos.ContactMembershipRepo
}

func NewMyContactService(
  db *gorm.DB,
  baseLog *logger.Logger,
  contactRepo repos.ContactRepo,
  membershipRepo repos.ContactMembershipRepo,
) MyContactService {
  serviceLog := baseLog.With("service", "MyContactService")
  return &myContactService{
    db:             db,
    log:            serviceLog,
    contactRepo:    contactRepo,
    membershipRepo: membershipRepo,
  }
}

func (ms *myContactService) ListMyContacts(ctx context.Context, tx *gorm.DB) ([]types.MyContactView, error) {
  me, err := requesterContact(ctx, tx, ms.contactRepo)
  if err != nil {
    return nil, err
  }

  memberships, err := ms.membershipRepo.ListByOwnerIDs(ctx, tx, []uuid.UUID{me.ID})
  if err != nil {
    return nil, fmt.Errorf("list memberships: %w", err)
  }

  contactIDs := make([]uuid.UUID, 0, len(memberships))
  starredByContact := make(map[uuid.UUID]bool, len(memberships))
  for _, m := range memberships {
    contactIDs = append(contactIDs, m.ContactID)
    starredByContact[m.ContactID] = m.Starred
  }

  contacts, err := ms.contactRepo.GetByIDs(ctx, tx, contactIDs)
  if err != nil {
    return nil, fmt.Errorf("load contacts: %w", err)
  }

  views := make([]types.MyContactView, 0, len(contacts))
  for _, contact := range contacts {
    views = append(views, types.MyContactView{
      ContactView: types.NewContactView(contact),
      Starred:     starredByContact[contact.ID],
    })
  }
  return views, nil
}

func (ms *myContactService) GetMyContact(ctx context.Context, tx *gorm.DB, contactID uuid.UUID) (*types.MyContactView, error) {
  me, err := requesterContact(ctx, tx, ms.contactRepo)
  if err != nil {
    return nil, err
  }

  membership, err := ms.membershipRepo.GetByOwnerAndContact(ctx, tx, me.ID, contactID)
  if err != nil {
    return nil, fmt.Errorf("load membership: %w", err)
  }
  if membership == nil {
    return nil, apierr.NotFound("contact %s is not in your contact list", contactID)
  }

  contacts, err := ms.contactRepo.GetByIDs(ctx, tx, []uuid.UUID{contactID})
  if err != nil {
    return nil, fmt.Errorf("load contact: %w", err)
  }
  if len(contacts) == 0 {
    return nil, apierr.NotFound("contact %s not found", contactID)
  }

  view := types.MyContactView{
    ContactView: types.NewContactView(contacts[0]),
    Starred:     membership.Starred,
  }
  return &view, nil
}

func (ms *myContactService) AddMyContact(ctx context.Context, tx *gorm.DB, input AddMyContactInput) error {
  me, err := requesterContact(ctx, tx, ms.contactRepo)
  if err != nil {
    return err
  }
  if input.ContactID == uuid.Nil {
    return apierr.Validation("contact is required")
  }
  if input.ContactID == me.ID {
    return apierr.Validation("cannot add yourself to your contact list")
  }

  contacts, err := ms.contactRepo.GetByIDs(ctx, tx, []uuid.UUID{input.ContactID})
  if err != nil {
    return fmt.Errorf("load contact: %w", err)
  }
  if len(contacts) == 0 {
    return apierr.Validation("contact %s does not exist", input.ContactID)
  }

  existing, err := ms.membershipRepo.GetByOwnerAndContact(ctx, tx, me.ID, input.ContactID)
  if err != nil {
    return fmt.Errorf("load membership: %w", err)
  }
  if existing != nil {
    return apierr.Validation("contact %s is already in your contact list", input.ContactID)
  }

  now := time.Now()
  membership := &types.ContactMembership{
    ID:        uuid.New(),
    OwnerID:   me.ID,
    ContactID: input.ContactID,
    Starred:   input.Starred,
    CreatedAt: now,
    UpdatedAt: now,
  }
  if _, err := ms.membershipRepo.Create(ctx, tx, []*types.ContactMembership{membership}); err != nil {
    ms.log.Error("AddMyContact failed", "error", err)
    return fmt.Errorf("create membership: %w", err)
  }
  return nil
}

func (ms *myContactService) UpdateMyContact(ctx context.Context, tx *gorm.DB, contactID uuid.UUID, input UpdateMyContactInput) error {
  me, err := requesterContact(ctx, tx, ms.contactRepo)
  if err != nil {
    return err
  }

  membership, err := ms.membershipRepo.GetByOwnerAndContact(ctx, tx, me.ID, contactID)
  if err != nil {
    return fmt.Errorf("load membership: %w", err)
  }
  if membership == nil {
    return apierr.NotFound("contact %s is not in your contact list", contactID)
  }

  if err := ms.membershipRepo.UpdateStarred(ctx, tx, me.ID, contactID, input.Starred); err != nil {
    ms.log.Error("UpdateMyContact failed", "error", err)
    return fmt.Errorf("update membership: %w", err)
  }
  return nil
}

func (ms *myContactService) RemoveMyContact(ctx context.Context, tx *gorm.DB, contactID uuid.UUID) error {
  me, err := requesterContact(ctx, tx, ms.contactRepo)
  if err != nil {
    return err
  }

  membership, err := ms.membershipRepo.GetByOwnerAndContact(ctx, tx, me.ID, contactID)
  if err != nil {
    return fmt.Errorf("load membership: %w", err)
  }
  if membership == nil {
    return apierr.NotFound("contact %s is not in your contact list", contactID)
  }

  if err := ms.membershipRepo.DeleteByOwnerAndContact(ctx, tx, me.ID, contactID); err != nil {
    ms.log.Error("RemoveMyContact failed", "error", err)
    return fmt.Errorf("delete membership: %w", err)
  }
  return nil
}
