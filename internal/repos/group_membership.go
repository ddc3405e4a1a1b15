package repos

import (
  "context"

  "github.com/google/uuid"
  "gorm.io/gorm"

  "github.com/panjiyudasetya/go-contacts/internal/logger"
  "github.com/panjiyudasetya/go-contacts/internal/types"
)

type GroupMembershipRepo interface {
  Create(ctx context.Context, tx *gorm.DB, memberships []*types.GroupMembership) ([]*types.GroupMembership, error)
  GetByGroupAndContact(ctx context.Context, tx *gorm.DB, groupID, contactID uuid.UUID) (*types.GroupMembership, error)
  ListByGroupIDs(ctx context.Context, tx *gorm.DB, groupIDs []uuid.UUID) ([]*types.GroupMembership, error)
  // HasRole reports whether the contact holds the given role in the group.
  HasRole(ctx context.Context, tx *gorm.DB, groupID, contactID uuid.UUID, role string) (bool, error)
  IsMember(ctx context.Context, tx *gorm.DB, groupID, contactID uuid.UUID) (bool, error)
  UpdateRole(ctx context.Context, tx *gorm.DB, groupID, contactID uuid.UUID, role string) error
  DeleteByGroupAndContact(ctx context.Context, tx *gorm.DB, groupID, contactID uuid.UUID) error
  DeleteByGroupIDs(ctx context.Context, tx *gorm.DB, groupIDs []uuid.UUID) error
  DeleteByContactIDs(ctx context.Context, tx *gorm.DB, contactIDs []uuid.UUID) error
}

type groupMembershipRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewGroupMembershipRepo(db *gorm.DB, baseLog *logger.Logger) GroupMembershipRepo {
  repoLog := baseLog.With("repo", "GroupMembershipRepo")
  return &groupMembershipRepo{db: db, log: repoLog}
}

func (gmr *groupMembershipRepo) Create(ctx context.Context, tx *gorm.DB, memberships []*types.GroupMembership) ([]*types.GroupMembership, error) {
  transaction := tx
  if transaction == nil {
    transaction = gmr.db
  }

  if len(memberships) == 0 {
    return []*types.GroupMembership{}, nil
  }

  if err := transaction.WithContext(ctx).Create(&memberships).Error; err != nil {
    return nil, err
  }
  return memberships, nil
}

func (gmr *groupMembershipRepo) GetByGroupAndContact(ctx context.Context, tx *gorm.DB, groupID, contactID uuid.UUID) (*types.GroupMembership, error) {
  transaction := tx
  if transaction == nil {
    transaction = gmr.db
  }

  var results []*types.GroupMembership
  if err := transaction.WithContext(ctx).
    Where("group_id = ? AND contact_id = ?", groupID, contactID).
    Limit(1).
    Find(&results).Error; err != nil {
    return nil, err
  }
  if len(results) == 0 {
    return nil, nil
  }
  return results[0], nil
}

func (gmr *groupMembershipRepo) ListByGroupIDs(ctx context.Context, tx *gorm.DB, groupIDs []uuid.UUID) ([]*types.GroupMembership, error) {
  transaction := tx
  if transaction == nil {
    transaction = gmr.db
  }

  var results []*types.GroupMembership
  if len(groupIDs) == 0 {
    return results, nil
  }

  if err := transaction.WithContext(ctx).
    Where("group_id IN ?", groupIDs).
    Order("joined_at").
    Find(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}

func (gmr *groupMembershipRepo) HasRole(ctx context.Context, tx *gorm.DB, groupID, contactID uuid.UUID, role string) (bool, error) {
  transaction := tx
  if transaction == nil {
    transaction = gmr.db
  }

  var count int64
  if err := transaction.WithContext(ctx).
    Model(&types.GroupMembership{}).
    Where("group_id = ? AND contact_id = ? AND role = ?", groupID, contactID, role).
    Count(&count).Error; err != nil {
    return false, err
  }
  return count > 0, nil
}

func (gmr *groupMembershipRepo) IsMember(ctx context.Context, tx *gorm.DB, groupID, contactID uuid.UUID) (bool, error) {
  transaction := tx
  if transaction == nil {
    transaction = gmr.db
  }

  var count int64
  if err := transaction.WithContext(ctx).
    Model(&types.GroupMembership{}).
    Where("group_id = ? AND contact_id = ?", groupID, contactID).
    Count(&count).Error; err != nil {
    return false, err
  }
  return count > 0, nil
}

func (gmr *groupMembershipRepo) UpdateRole(ctx context.Context, tx *gorm.DB, groupID, contactID uuid.UUID, role string) error {
  transaction := tx
  if transaction == nil {
    transaction = gmr.db
  }

  return transaction.WithContext(ctx).
    Model(&types.GroupMembership{}).
    Where("group_id = ? AND contact_id = ?", groupID, contactID).
    Update("role", role).Error
}

func (gmr *groupMembershipRepo) DeleteByGroupAndContact(ctx context.Context, tx *gorm.DB, groupID, contactID uuid.UUID) error {
  transaction := tx
  if transaction == nil {
    transaction = gmr.db
  }

  return transaction.WithContext(ctx).
    Where("group_id = ? AND contact_id = ?", groupID, contactID).
    Delete(&types.GroupMembership{}).Error
}

func (gmr *groupMembershipRepo) DeleteByGroupIDs(ctx context.Context, tx *gorm.DB, groupIDs []uuid.UUID) error {
  transaction := tx
  if transaction == nil {
    transaction = gmr.db
  }

  if len(groupIDs) == 0 {
    return nil
  }

  return transaction.WithContext(ctx).
    Where("group_id IN ?", groupIDs).
    Delete(&types.GroupMembership{}).Error
}

func (gmr *groupMembershipRepo) DeleteByContactIDs(ctx context.Context, tx *gorm.DB, contactIDs []uuid.UUID) error {
  transaction := tx
  if transaction == nil {
    transaction = gmr.db
  }

  if len(contactIDs) == 0 {
    return nil
  }

  return transaction.WithContext(ctx).
    Where("contact_id IN ? OR inviter_id IN ?", contactIDs, contactIDs).
    Delete(&types.GroupMembership{}).Error
}
