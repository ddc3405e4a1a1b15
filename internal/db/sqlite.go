package db

import (
  "fmt"

  "gorm.io/driver/sqlite"
  "gorm.io/gorm"

  "github.com/panjiyudasetya/go-contacts/internal/types"
)

// NewSQLiteMemory opens an in-memory database with the full schema.
// Used by tests; production runs on Postgres.
func NewSQLiteMemory() (*gorm.DB, error) {
  gormDB, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
  if err != nil {
    return nil, fmt.Errorf("open sqlite: %w", err)
  }
  if err := gormDB.AutoMigrate(
    &types.User{},
    &types.Contact{},
    &types.Phone{},
    &types.ContactMembership{},
    &types.Group{},
    &types.GroupMembership{},
  ); err != nil {
    return nil, fmt.Errorf("migrate sqlite: %w", err)
  }
  return gormDB, nil
}
