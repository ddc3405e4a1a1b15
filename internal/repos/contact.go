package repos

import (
  "context"

  "github.com/google/uuid"
  "gorm.io/gorm"

  "github.com/panjiyudasetya/go-contacts/internal/logger"
  "github.com/panjiyudasetya/go-contacts/internal/types"
)

type ContactRepo interface {
  Create(ctx context.Context, tx *gorm.DB, contacts []*types.Contact) ([]*types.Contact, error)
  // GetByIDs preloads the linked user and phone numbers.
  GetByIDs(ctx context.Context, tx *gorm.DB, contactIDs []uuid.UUID) ([]*types.Contact, error)
  GetByUserIDs(ctx context.Context, tx *gorm.DB, userIDs []uuid.UUID) ([]*types.Contact, error)
  ListAll(ctx context.Context, tx *gorm.DB) ([]*types.Contact, error)
  UserHasContact(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (bool, error)
  Update(ctx context.Context, tx *gorm.DB, contact *types.Contact) (*types.Contact, error)
  Delete(ctx context.Context, tx *gorm.DB, contactIDs []uuid.UUID) error
}

type contactRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewContactRepo(db *gorm.DB, baseLog *logger.Logger) ContactRepo {
  repoLog := baseLog.With("repo", "ContactRepo")
  return &contactRepo{db: db, log: repoLog}
}

func (cr *contactRepo) Create(ctx context.Context, tx *gorm.DB, contacts []*types.Contact) ([]*types.Contact, error) {
  transaction := tx
  if transaction == nil {
    transaction = cr.db
  }

  if len(contacts) == 0 {
    return []*types.Contact{}, nil
  }

  if err := transaction.WithContext(ctx).Create(&contacts).Error; err != nil {
    return nil, err
  }
  return contacts, nil
}

func (cr *contactRepo) GetByIDs(ctx context.Context, tx *gorm.DB, contactIDs []uuid.UUID) ([]*types.Contact, error) {
  transaction := tx
  if transaction == nil {
    transaction = cr.db
  }

  var results []*types.Contact
  if len(contactIDs) == 0 {
    return results, nil
  }

  if err := transaction.WithContext(ctx).
    Preload("User").
    Preload("PhoneNumbers").
    Where("id IN ?", contactIDs).
    Order("created_at").
    Find(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}

func (cr *contactRepo) GetByUserIDs(ctx context.Context, tx *gorm.DB, userIDs []uuid.UUID) ([]*types.Contact, error) {
  transaction := tx
  if transaction == nil {
    transaction = cr.db
  }

  var results []*types.Contact
  if len(userIDs) == 0 {
    return results, nil
  }

  if err := transaction.WithContext(ctx).
    Preload("User").
    Preload("PhoneNumbers").
    Where("user_id IN ?", userIDs).
    Find(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}

func (cr *contactRepo) ListAll(ctx context.Context, tx *gorm.DB) ([]*types.Contact, error) {
  transaction := tx
  if transaction == nil {
    transaction = cr.db
  }

  var results []*types.Contact
  if err := transaction.WithContext(ctx).
    Preload("User").
    Preload("PhoneNumbers").
    Order("created_at").
    Find(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}

func (cr *contactRepo) UserHasContact(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (bool, error) {
  transaction := tx
  if transaction == nil {
    transaction = cr.db
  }

  var count int64
  if err := transaction.WithContext(ctx).
    Model(&types.Contact{}).
    Where("user_id = ?", userID).
    Count(&count).Error; err != nil {
    return false, err
  }
  return count > 0, nil
}

func (cr *contactRepo) Update(ctx context.Context, tx *gorm.DB, contact *types.Contact) (*types.Contact, error) {
  transaction := tx
  if transaction == nil {
    transaction = cr.db
  }

  if err := transaction.WithContext(ctx).
    Model(&types.Contact{}).
    Where("id = ?", contact.ID).
    Updates(map[string]interface{}{
      "nickname": contact.Nickname,
      "company":  contact.Company,
      "title":    contact.Title,
      "address":  contact.Address,
    }).Error; err != nil {
    return nil, err
  }
  return contact, nil
}

func (cr *contactRepo) Delete(ctx context.Context, tx *gorm.DB, contactIDs []uuid.UUID) error {
  transaction := tx
  if transaction == nil {
    transaction = cr.db
  }

  if len(contactIDs) == 0 {
    return nil
  }

  return transaction.WithContext(ctx).
    Where("id IN ?", contactIDs).
    Delete(&types.Contact{}).Error
}
