package repos

import (
  "context"

  "github.com/google/uuid"
  "gorm.io/gorm"

  "github.com/panjiyudasetya/go-contacts/internal/logger"
  "github.com/panjiyudasetya/go-contacts/internal/types"
)

type ContactMembershipRepo interface {
  Create(ctx context.Context, tx *gorm.DB, memberships []*types.ContactMembership) ([]*types.ContactMembership, error)
  GetByOwnerAndContact(ctx context.Context, tx *gorm.DB, ownerID, contactID uuid.UUID) (*types.ContactMembership, error)
  ListByOwnerIDs(ctx context.Context, tx *gorm.DB, ownerIDs []uuid.UUID) ([]*types.ContactMembership, error)
  UpdateStarred(ctx context.Context, tx *gorm.DB, ownerID, contactID uuid.UUID, starred bool) error
  DeleteByOwnerAndContact(ctx context.Context, tx *gorm.DB, ownerID, contactID uuid.UUID) error
  DeleteByContactIDs(ctx context.Context, tx *gorm.DB, contactIDs []uuid.UUID) error
}

type contactMembershipRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewContactMembershipRepo(db *gorm.DB, baseLog *logger.Logger) ContactMembershipRepo {
  repoLog := baseLog.With("repo", "ContactMembershipRepo")
  return &contactMembershipRepo{db: db, log: repoLog}
}

func (cmr *contactMembershipRepo) Create(ctx context.Context, tx *gorm.DB, memberships []*types.ContactMembership) ([]*types.ContactMembership, error) {
  transaction := tx
  if transaction == nil {
    transaction = cmr.db
  }

  if len(memberships) == 0 {
    return []*types.ContactMembership{}, nil
  }

  if err := transaction.WithContext(ctx).Create(&memberships).Error; err != nil {
    return nil, err
  }
  return memberships, nil
}

func (cmr *contactMembershipRepo) GetByOwnerAndContact(ctx context.Context, tx *gorm.DB, ownerID, contactID uuid.UUID) (*types.ContactMembership, error) {
  transaction := tx
  if transaction == nil {
    transaction = cmr.db
  }

  var results []*types.ContactMembership
  if err := transaction.WithContext(ctx).
    Where("owner_id = ? AND contact_id = ?", ownerID, contactID).
    Limit(1).
    Find(&results).Error; err != nil {
    return nil, err
  }
  if len(results) == 0 {
    return nil, nil
  }
  return results[0], nil
}

func (cmr *contactMembershipRepo) ListByOwnerIDs(ctx context.Context, tx *gorm.DB, ownerIDs []uuid.UUID) ([]*types.ContactMembership, error) {
  transaction := tx
  if transaction == nil {
    transaction = cmr.db
  }

  var results []*types.ContactMembership
  if len(ownerIDs) == 0 {
    return results, nil
  }

  if err := transaction.WithContext(ctx).
    Where("owner_id IN ?", ownerIDs).
    Order("created_at").
    Find(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}

func (cmr *contactMembershipRepo) UpdateStarred(ctx context.Context, tx *gorm.DB, ownerID, contactID uuid.UUID, starred bool) error {
  transaction := tx
  if transaction == nil {
    transaction = cmr.db
  }

  return transaction.WithContext(ctx).
    Model(&types.ContactMembership{}).
    Where("owner_id = ? AND contact_id = ?", ownerID, contactID).
    Update("starred", starred).Error
}

func (cmr *contactMembershipRepo) DeleteByOwnerAndContact(ctx context.Context, tx *gorm.DB, ownerID, contactID uuid.UUID) error {
  transaction := tx
  if transaction == nil {
    transaction = cmr.db
  }

  return transaction.WithContext(ctx).
    Where("owner_id = ? AND contact_id = ?", ownerID, contactID).
    Delete(&types.ContactMembership{}).Error
}

func (cmr *contactMembershipRepo) DeleteByContactIDs(ctx context.Context, tx *gorm.DB, contactIDs []uuid.UUID) error {
  transaction := tx
  if transaction == nil {
    transaction = cmr.db
  }

  if len(contactIDs) == 0 {
    return nil
  }

  return transaction.WithContext(ctx).
    Where("owner_id IN ? OR contact_id IN ?", contactIDs, contactIDs).
    Delete(&types.ContactMembership{}).Error
}
