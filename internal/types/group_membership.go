package types

import (
  "time"

  "github.com/google/uuid"
)

const (
  GroupRoleAdmin  = "admin"
  GroupRoleMember = "member"
)

func ValidGroupRole(role string) bool {
  return role == GroupRoleAdmin || role == GroupRoleMember
}

// GroupMembership is the only link between a Group and a Contact. A
// contact's presence in a group is always mediated by one of these rows.
type GroupMembership struct {
  ID                uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
  GroupID           uuid.UUID       `gorm:"type:uuid;not null;index:idx_group_membership_pair,unique;column:group_id" json:"group_id"`
  ContactID         uuid.UUID       `gorm:"type:uuid;not null;index:idx_group_membership_pair,unique;column:contact_id" json:"contact_id"`
  Contact           *Contact        `gorm:"foreignKey:ContactID" json:"-"`
  Role              string          `gorm:"not null;default:member;column:role" json:"role"`
  InviterID         uuid.UUID       `gorm:"type:uuid;not null;column:inviter_id" json:"inviter"`
  JoinedAt          time.Time       `gorm:"not null;autoCreateTime;column:joined_at" json:"joined_at"`
}

func (GroupMembership) TableName() string {
  return "group_membership"
}
