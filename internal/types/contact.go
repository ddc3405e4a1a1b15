package types

import (
  "time"

  "github.com/google/uuid"
)

// Contact is the person record shown in contact lists. It is always backed
// by exactly one identity User; name and email come from that user.
type Contact struct {
  ID                uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
  UserID            uuid.UUID       `gorm:"type:uuid;uniqueIndex;not null;column:user_id" json:"user_id"`
  User              *User           `gorm:"foreignKey:UserID" json:"-"`
  Nickname          string          `gorm:"column:nickname" json:"nickname"`
  Company           string          `gorm:"column:company" json:"company"`
  Title             string          `gorm:"column:title" json:"title"`
  Address           string          `gorm:"column:address" json:"address"`
  PhoneNumbers      []*Phone        `gorm:"foreignKey:ContactID" json:"phone_numbers"`
  CreatedAt         time.Time       `gorm:"not null" json:"created_at"`
  UpdatedAt         time.Time       `gorm:"not null" json:"updated_at"`
}

func (Contact) TableName() string {
  return "contact"
}
