package types

import (
  "time"

  "github.com/google/uuid"
)

type Group struct {
  ID                uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
  Name              string          `gorm:"not null;column:name" json:"name"`
  Description       string          `gorm:"column:description" json:"description"`
  CreatedByID       uuid.UUID       `gorm:"type:uuid;not null;column:created_by_id" json:"created_by"`
  CreatedBy         *Contact        `gorm:"foreignKey:CreatedByID" json:"-"`
  UpdatedByID       *uuid.UUID      `gorm:"type:uuid;column:updated_by_id" json:"updated_by"`
  CreatedAt         time.Time       `gorm:"not null" json:"created_at"`
  UpdatedAt         time.Time       `gorm:"not null" json:"updated_at"`
}

func (Group) TableName() string {
  return "contact_group"
}
