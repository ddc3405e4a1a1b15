package repos

import (
  "context"

  "github.com/google/uuid"
  "gorm.io/gorm"

  "github.com/panjiyudasetya/go-contacts/internal/logger"
  "github.com/panjiyudasetya/go-contacts/internal/types"
)

type GroupRepo interface {
  Create(ctx context.Context, tx *gorm.DB, groups []*types.Group) ([]*types.Group, error)
  GetByIDs(ctx context.Context, tx *gorm.DB, groupIDs []uuid.UUID) ([]*types.Group, error)
  // ListAccessibleFor returns groups the contact created or is a member of.
  ListAccessibleFor(ctx context.Context, tx *gorm.DB, contactID uuid.UUID) ([]*types.Group, error)
  // GetAccessibleByID is ListAccessibleFor narrowed to one group ID.
  GetAccessibleByID(ctx context.Context, tx *gorm.DB, contactID, groupID uuid.UUID) (*types.Group, error)
  Update(ctx context.Context, tx *gorm.DB, group *types.Group) (*types.Group, error)
  Delete(ctx context.Context, tx *gorm.DB, groupIDs []uuid.UUID) error
}

type groupRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewGroupRepo(db *gorm.DB, baseLog *logger.Logger) GroupRepo {
  repoLog := baseLog.With("repo", "GroupRepo")
  return &groupRepo{db: db, log: repoLog}
}

func (gr *groupRepo) Create(ctx context.Context, tx *gorm.DB, groups []*types.Group) ([]*types.Group, error) {
  transaction := tx
  if transaction == nil {
    transaction = gr.db
  }

  if len(groups) == 0 {
    return []*types.Group{}, nil
  }

  if err := transaction.WithContext(ctx).Create(&groups).Error; err != nil {
    return nil, err
  }
  return groups, nil
}

func (gr *groupRepo) GetByIDs(ctx context.Context, tx *gorm.DB, groupIDs []uuid.UUID) ([]*types.Group, error) {
  transaction := tx
  if transaction == nil {
    transaction = gr.db
  }

  var results []*types.Group
  if len(groupIDs) == 0 {
    return results, nil
  }

  if err := transaction.WithContext(ctx).
    Where("id IN ?", groupIDs).
    Find(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}

func (gr *groupRepo) ListAccessibleFor(ctx context.Context, tx *gorm.DB, contactID uuid.UUID) ([]*types.Group, error) {
  transaction := tx
  if transaction == nil {
    transaction = gr.db
  }

  var results []*types.Group
  if err := accessibleScope(transaction.WithContext(ctx), contactID).
    Order("created_at").
    Find(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}

func (gr *groupRepo) GetAccessibleByID(ctx context.Context, tx *gorm.DB, contactID, groupID uuid.UUID) (*types.Group, error) {
  transaction := tx
  if transaction == nil {
    transaction = gr.db
  }

  var results []*types.Group
  if err := accessibleScope(transaction.WithContext(ctx), contactID).
    Where("contact_group.id = ?", groupID).
    Limit(1).
    Find(&results).Error; err != nil {
    return nil, err
  }
  if len(results) == 0 {
    return nil, nil
  }
  return results[0], nil
}

// accessibleScope narrows groups to those created by the contact or where
// the contact holds a membership.
func accessibleScope(db *gorm.DB, contactID uuid.UUID) *gorm.DB {
  return db.Model(&types.Group{}).
    Where(
      "contact_group.created_by_id = ? OR contact_group.id IN (?)",
      contactID,
      db.Session(&gorm.Session{NewDB: true}).
        Model(&types.GroupMembership{}).
        Select("group_id").
        Where("contact_id = ?", contactID),
    )
}

func (gr *groupRepo) Update(ctx context.Context, tx *gorm.DB, group *types.Group) (*types.Group, error) {
  transaction := tx
  if transaction == nil {
    transaction = gr.db
  }

  if err := transaction.WithContext(ctx).
    Model(&types.Group{}).
    Where("id = ?", group.ID).
    Updates(map[string]interface{}{
      "name":          group.Name,
      "description":   group.Description,
      "updated_by_id": group.UpdatedByID,
    }).Error; err != nil {
    return nil, err
  }
  return group, nil
}

func (gr *groupRepo) Delete(ctx context.Context, tx *gorm.DB, groupIDs []uuid.UUID) error {
  transaction := tx
  if transaction == nil {
    transaction = gr.db
  }

  if len(groupIDs) == 0 {
    return nil
  }

  return transaction.WithContext(ctx).
    Where("id IN ?", groupIDs).
    Delete(&types.Group{}).Error
}
