package types

import (
  "time"

  "github.com/google/uuid"
)

// ContactMembership puts a Contact into the personal list of another
// Contact (the owner). The pair (owner, contact) is unique.
type ContactMembership struct {
  ID                uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
  OwnerID           uuid.UUID       `gorm:"type:uuid;not null;index:idx_contact_membership_pair,unique;column:owner_id" json:"owner_id"`
  ContactID         uuid.UUID       `gorm:"type:uuid;not null;index:idx_contact_membership_pair,unique;column:contact_id" json:"contact_id"`
  Contact           *Contact        `gorm:"foreignKey:ContactID" json:"-"`
  Starred           bool            `gorm:"not null;default:false;column:starred" json:"starred"`
  CreatedAt         time.Time       `gorm:"not null" json:"created_at"`
  UpdatedAt         time.Time       `gorm:"not null" json:"updated_at"`
}

func (ContactMembership) TableName() string {
  return "contact_membership"
}
