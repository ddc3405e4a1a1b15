package repos

import (
  "context"

  "github.com/google/uuid"
  "gorm.io/gorm"

  "github.com/panjiyudasetya/go-contacts/internal/logger"
  "github.com/panjiyudasetya/go-contacts/internal/types"
)

type PhoneRepo interface {
  Create(ctx context.Context, tx *gorm.DB, phones []*types.Phone) ([]*types.Phone, error)
  GetByIDs(ctx context.Context, tx *gorm.DB, phoneIDs []uuid.UUID) ([]*types.Phone, error)
  ListByContactIDs(ctx context.Context, tx *gorm.DB, contactIDs []uuid.UUID) ([]*types.Phone, error)
  // HasPrimary reports whether the contact has a primary phone other than
  // excludeID. Pass uuid.Nil to consider every phone.
  HasPrimary(ctx context.Context, tx *gorm.DB, contactID, excludeID uuid.UUID) (bool, error)
  NumberExists(ctx context.Context, tx *gorm.DB, contactID uuid.UUID, e164 string, excludeID uuid.UUID) (bool, error)
  Update(ctx context.Context, tx *gorm.DB, phone *types.Phone) (*types.Phone, error)
  Delete(ctx context.Context, tx *gorm.DB, phoneIDs []uuid.UUID) error
  DeleteByContactIDs(ctx context.Context, tx *gorm.DB, contactIDs []uuid.UUID) error
}

type phoneRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewPhoneRepo(db *gorm.DB, baseLog *logger.Logger) PhoneRepo {
  repoLog := baseLog.With("repo", "PhoneRepo")
  return &phoneRepo{db: db, log: repoLog}
}

func (pr *phoneRepo) Create(ctx context.Context, tx *gorm.DB, phones []*types.Phone) ([]*types.Phone, error) {
  transaction := tx
  if transaction == nil {
    transaction = pr.db
  }

  if len(phones) == 0 {
    return []*types.Phone{}, nil
  }

  if err := transaction.WithContext(ctx).Create(&phones).Error; err != nil {
    return nil, err
  }
  return phones, nil
}

func (pr *phoneRepo) GetByIDs(ctx context.Context, tx *gorm.DB, phoneIDs []uuid.UUID) ([]*types.Phone, error) {
  transaction := tx
  if transaction == nil {
    transaction = pr.db
  }

  var results []*types.Phone
  if len(phoneIDs) == 0 {
    return results, nil
  }

  if err := transaction.WithContext(ctx).
    Where("id IN ?", phoneIDs).
    Find(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}

func (pr *phoneRepo) ListByContactIDs(ctx context.Context, tx *gorm.DB, contactIDs []uuid.UUID) ([]*types.Phone, error) {
  transaction := tx
  if transaction == nil {
    transaction = pr.db
  }

  var results []*types.Phone
  if len(contactIDs) == 0 {
    return results, nil
  }

  if err := transaction.WithContext(ctx).
    Where("contact_id IN ?", contactIDs).
    Order("created_at").
    Find(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}

func (pr *phoneRepo) HasPrimary(ctx context.Context, tx *gorm.DB, contactID, excludeID uuid.UUID) (bool, error) {
  transaction := tx
  if transaction == nil {
    transaction = pr.db
  }

  query := transaction.WithContext(ctx).
    Model(&types.Phone{}).
    Where("contact_id = ? AND is_primary = ?", contactID, true)
  if excludeID != uuid.Nil {
    query = query.Where("id <> ?", excludeID)
  }

  var count int64
  if err := query.Count(&count).Error; err != nil {
    return false, err
  }
  return count > 0, nil
}

func (pr *phoneRepo) NumberExists(ctx context.Context, tx *gorm.DB, contactID uuid.UUID, e164 string, excludeID uuid.UUID) (bool, error) {
  transaction := tx
  if transaction == nil {
    transaction = pr.db
  }

  query := transaction.WithContext(ctx).
    Model(&types.Phone{}).
    Where("contact_id = ? AND e164 = ?", contactID, e164)
  if excludeID != uuid.Nil {
    query = query.Where("id <> ?", excludeID)
  }

  var count int64
  if err := query.Count(&count).Error; err != nil {
    return false, err
  }
  return count > 0, nil
}

func (pr *phoneRepo) Update(ctx context.Context, tx *gorm.DB, phone *types.Phone) (*types.Phone, error) {
  transaction := tx
  if transaction == nil {
    transaction = pr.db
  }

  if err := transaction.WithContext(ctx).
    Model(&types.Phone{}).
    Where("id = ?", phone.ID).
    Updates(map[string]interface{}{
      "e164":                phone.E164,
      "national_number":     phone.NationalNumber,
      "country_code":        phone.CountryCode,
      "country_code_source": phone.CountryCodeSource,
      "phone_type":          phone.PhoneType,
      "is_primary":          phone.IsPrimary,
    }).Error; err != nil {
    return nil, err
  }
  return phone, nil
}

func (pr *phoneRepo) Delete(ctx context.Context, tx *gorm.DB, phoneIDs []uuid.UUID) error {
  transaction := tx
  if transaction == nil {
    transaction = pr.db
  }

  if len(phoneIDs) == 0 {
    return nil
  }

  return transaction.WithContext(ctx).
    Where("id IN ?", phoneIDs).
    Delete(&types.Phone{}).Error
}

func (pr *phoneRepo) DeleteByContactIDs(ctx context.Context, tx *gorm.DB, contactIDs []uuid.UUID) error {
  transaction := tx
  if transaction == nil {
    transaction = pr.db
  }

  if len(contactIDs) == 0 {
    return nil
  }

  return transaction.WithContext(ctx).
    Where("contact_id IN ?", contactIDs).
    Delete(&types.Phone{}).Error
}
