package services

import (
  "context"
  "fmt"
  "time"

  "github.com/google/uuid"
  "gorm.io/gorm"

  "github.com/panjiyudasetya/go-contacts/internal/apierr"
  "github.com/panjiyudasetya/go-contacts/internal/logger"
  "github.com/panjiyudasetya/go-contacts/internal/phonefmt"
  "github.com/panjiyudasetya/go-contacts/internal/repos"
  "github.com/panjiyudasetya/go-contacts/internal/types"
)

type PhoneInput struct {
  PhoneNumber string `json:"phone_number"`
  PhoneType   string `json:"phone_type"`
  IsPrimary   bool   `json:"is_primary"`
}

// PhoneService manages the phone numbers nested under a contact.
// All operations are staff-only, like the contact endpoints they hang off.
type PhoneService interface {
  CreatePhone(ctx context.Context, tx *gorm.DB, contactID uuid.UUID, input PhoneInput) (*types.PhoneDetailView, error)
  UpdatePhone(ctx context.Context, tx *gorm.DB, contactID, phoneID uuid.UUID, input PhoneInput) (*types.PhoneDetailView, error)
  DeletePhone(ctx context.Context, tx *gorm.DB, contactID, phoneID uuid.UUID) error
}

type phoneService struct {
  db          *gorm.DB
  log         *logger.Logger
  contactRepo repos.ContactRepo
  phoneRepo   repos.PhoneRepo
}

func NewPhoneService(
  db *gorm.DB,
  baseLog *logger.Logger,
  contactRepo repos.ContactRepo,
  phoneRepo repos.PhoneRepo,
) PhoneService {
  serviceLog := baseLog.With("service", "PhoneService")
  return &phoneService{
    db:          db,
    log:         serviceLog,
    contactRepo: contactRepo,
    phoneRepo:   phoneRepo,
  }
}

func (ps *phoneService) CreatePhone(ctx context.Context, tx *gorm.DB, contactID uuid.UUID, input PhoneInput) (*types.PhoneDetailView, error) {
  if _, err := requireStaff(ctx); err != nil {
    return nil, err
  }
  if err := ps.ensureContact(ctx, tx, contactID); err != nil {
    return nil, err
  }

  parsed, err := ps.validateInput(ctx, tx, contactID, uuid.Nil, input)
  if err != nil {
    return nil, err
  }

  now := time.Now()
  phone := &types.Phone{
    ID:                uuid.New(),
    ContactID:         contactID,
    E164:              parsed.E164,
    NationalNumber:    parsed.NationalNumber,
    CountryCode:       parsed.CountryCode,
    CountryCodeSource: parsed.CountryCodeSource,
    PhoneType:         input.PhoneType,
    IsPrimary:         input.IsPrimary,
    CreatedAt:         now,
    UpdatedAt:         now,
  }
  if _, err := ps.phoneRepo.Create(ctx, tx, []*types.Phone{phone}); err != nil {
    ps.log.Error("CreatePhone failed", "error", err)
    return nil, fmt.Errorf("create phone: %w", err)
  }

  view := types.NewPhoneDetailView(phone)
  return &view, nil
}

func (ps *phoneService) UpdatePhone(ctx context.Context, tx *gorm.DB, contactID, phoneID uuid.UUID, input PhoneInput) (*types.PhoneDetailView, error) {
  if _, err := requireStaff(ctx); err != nil {
    return nil, err
  }
  if err := ps.ensureContact(ctx, tx, contactID); err != nil {
    return nil, err
  }

  phone, err := ps.phoneOfContact(ctx, tx, contactID, phoneID)
  if err != nil {
    return nil, err
  }

  parsed, err := ps.validateInput(ctx, tx, contactID, phoneID, input)
  if err != nil {
    return nil, err
  }

  phone.E164 = parsed.E164
  phone.NationalNumber = parsed.NationalNumber
  phone.CountryCode = parsed.CountryCode
  phone.CountryCodeSource = parsed.CountryCodeSource
  phone.PhoneType = input.PhoneType
  phone.IsPrimary = input.IsPrimary

  if _, err := ps.phoneRepo.Update(ctx, tx, phone); err != nil {
    ps.log.Error("UpdatePhone failed", "error", err)
    return nil, fmt.Errorf("update phone: %w", err)
  }

  view := types.NewPhoneDetailView(phone)
  return &view, nil
}

func (ps *phoneService) DeletePhone(ctx context.Context, tx *gorm.DB, contactID, phoneID uuid.UUID) error {
  if _, err := requireStaff(ctx); err != nil {
    return err
  }
  if err := ps.ensureContact(ctx, tx, contactID); err != nil {
    return err
  }

  if _, err := ps.phoneOfContact(ctx, tx, contactID, phoneID); err != nil {
    return err
  }
  if err := ps.phoneRepo.Delete(ctx, tx, []uuid.UUID{phoneID}); err != nil {
    ps.log.Error("DeletePhone failed", "error", err)
    return fmt.Errorf("delete phone: %w", err)
  }
  return nil
}

func (ps *phoneService) ensureContact(ctx context.Context, tx *gorm.DB, contactID uuid.UUID) error {
  contacts, err := ps.contactRepo.GetByIDs(ctx, tx, []uuid.UUID{contactID})
  if err != nil {
    return fmt.Errorf("load contact: %w", err)
  }
  if len(contacts) == 0 {
    return apierr.NotFound("contact %s not found", contactID)
  }
  return nil
}

func (ps *phoneService) phoneOfContact(ctx context.Context, tx *gorm.DB, contactID, phoneID uuid.UUID) (*types.Phone, error) {
  phones, err := ps.phoneRepo.GetByIDs(ctx, tx, []uuid.UUID{phoneID})
  if err != nil {
    return nil, fmt.Errorf("load phone: %w", err)
  }
  if len(phones) == 0 || phones[0].ContactID != contactID {
    return nil, apierr.NotFound("phone %s not found for contact %s", phoneID, contactID)
  }
  return phones[0], nil
}

// validateInput parses the raw number and enforces the two per-contact
// invariants: unique numbers and at most one primary phone.
func (ps *phoneService) validateInput(ctx context.Context, tx *gorm.DB, contactID, excludeID uuid.UUID, input PhoneInput) (*phonefmt.Parsed, error) {
  if !types.ValidPhoneType(input.PhoneType) {
    return nil, apierr.Validation("phone_type must be one of cellphone, telephone, telefax")
  }

  parsed, err := phonefmt.Parse(input.PhoneNumber)
  if err != nil {
    return nil, apierr.Validation("%v", err)
  }

  numberExists, err := ps.phoneRepo.NumberExists(ctx, tx, contactID, parsed.E164, excludeID)
  if err != nil {
    return nil, fmt.Errorf("check duplicate number: %w", err)
  }
  if numberExists {
    return nil, apierr.Validation("contact %s already has phone number %s", contactID, input.PhoneNumber)
  }

  if input.IsPrimary {
    hasPrimary, err := ps.phoneRepo.HasPrimary(ctx, tx, contactID, excludeID)
    if err != nil {
      return nil, fmt.Errorf("check primary phone: %w", err)
    }
    if hasPrimary {
      return nil, apierr.Validation("contact %s has a primary phone already", contactID)
    }
  }
  return parsed, nil
}
