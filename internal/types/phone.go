package types

import (
  "time"

  "github.com/google/uuid"
)

const (
  PhoneTypeCellphone = "cellphone"
  PhoneTypeTelephone = "telephone"
  PhoneTypeTelefax   = "telefax"
)

func ValidPhoneType(phoneType string) bool {
  switch phoneType {
  case PhoneTypeCellphone, PhoneTypeTelephone, PhoneTypeTelefax:
    return true
  default:
    return false
  }
}

// Phone stores a parsed phone number. E164 is the canonical form; the
// national number, country code and country-code source are kept separately
// because responses expose them as distinct fields.
type Phone struct {
  ID                  uuid.UUID     `gorm:"type:uuid;primaryKey" json:"id"`
  ContactID           uuid.UUID     `gorm:"type:uuid;not null;index;column:contact_id" json:"contact_id"`
  E164                string        `gorm:"not null;column:e164" json:"-"`
  NationalNumber      uint64        `gorm:"not null;column:national_number" json:"national_number"`
  CountryCode         int           `gorm:"not null;column:country_code" json:"country_code"`
  CountryCodeSource   int           `gorm:"not null;column:country_code_source" json:"country_code_source"`
  PhoneType           string        `gorm:"not null;column:phone_type" json:"phone_type"`
  IsPrimary           bool          `gorm:"not null;default:false;column:is_primary" json:"is_primary"`
  CreatedAt           time.Time     `gorm:"not null" json:"created_at"`
  UpdatedAt           time.Time     `gorm:"not null" json:"updated_at"`
}

func (Phone) TableName() string {
  return "phone"
}
