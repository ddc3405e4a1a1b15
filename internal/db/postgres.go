package db

import (
  "fmt"

  "gorm.io/driver/postgres"
  "gorm.io/gorm"

  "github.com/panjiyudasetya/go-contacts/internal/logger"
  "github.com/panjiyudasetya/go-contacts/internal/types"
  "github.com/panjiyudasetya/go-contacts/internal/utils"
)

type PostgresService struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewPostgresService(log *logger.Logger) (*PostgresService, error) {
  serviceLog := log.With("service", "PostgresService")

  postgresHost := utils.GetEnv("POSTGRES_HOST", "localhost", log)
  postgresPort := utils.GetEnv("POSTGRES_PORT", "5432", log)
  postgresUser := utils.GetEnv("POSTGRES_USER", "postgres", log)
  postgresPassword := utils.GetEnv("POSTGRES_PASSWORD", "", log)
  postgresName := utils.GetEnv("POSTGRES_NAME", "contacts", log)

  dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", postgresUser, postgresPassword, postgresHost, postgresPort, postgresName)

  log.Info("Connecting to Postgres...")
  gormDB, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
    DisableForeignKeyConstraintWhenMigrating: true,
  })
  if err != nil {
    serviceLog.Error("Failed to connect to Postgres", "error", err)
    return nil, fmt.Errorf("connect to postgres: %w", err)
  }

  return &PostgresService{db: gormDB, log: serviceLog}, nil
}

func (s *PostgresService) AutoMigrateAll() error {
  s.log.Info("Auto migrating postgres tables...")
  if err := s.db.AutoMigrate(
    &types.User{},
    &types.Contact{},
    &types.Phone{},
    &types.ContactMembership{},
    &types.Group{},
    &types.GroupMembership{},
  ); err != nil {
    s.log.Error("Auto migration failed for postgres tables", "error", err)
    return err
  }

  s.log.Info("Configuring foreign key relationships for postgres tables...")
  // Services also cascade explicitly inside transactions; these constraints
  // are the database-level backstop.
  constraints := []struct {
    table, name, ddl string
  }{
    {"contact", "fk_contact_user_id",
      `FOREIGN KEY ("user_id") REFERENCES "user"("id") ON DELETE CASCADE`},
    {"phone", "fk_phone_contact_id",
      `FOREIGN KEY ("contact_id") REFERENCES "contact"("id") ON DELETE CASCADE`},
    {"contact_membership", "fk_contact_membership_owner_id",
      `FOREIGN KEY ("owner_id") REFERENCES "contact"("id") ON DELETE CASCADE`},
    {"contact_membership", "fk_contact_membership_contact_id",
      `FOREIGN KEY ("contact_id") REFERENCES "contact"("id") ON DELETE CASCADE`},
    {"contact_group", "fk_contact_group_created_by_id",
      `FOREIGN KEY ("created_by_id") REFERENCES "contact"("id") ON DELETE CASCADE`},
    {"contact_group", "fk_contact_group_updated_by_id",
      `FOREIGN KEY ("updated_by_id") REFERENCES "contact"("id") ON DELETE SET NULL`},
    {"group_membership", "fk_group_membership_group_id",
      `FOREIGN KEY ("group_id") REFERENCES "contact_group"("id") ON DELETE CASCADE`},
    {"group_membership", "fk_group_membership_contact_id",
      `FOREIGN KEY ("contact_id") REFERENCES "contact"("id") ON DELETE CASCADE`},
    {"group_membership", "fk_group_membership_inviter_id",
      `FOREIGN KEY ("inviter_id") REFERENCES "contact"("id") ON DELETE CASCADE`},
    {"phone", "uq_phone_contact_number",
      `UNIQUE ("contact_id", "e164")`},
  }
  for _, con := range constraints {
    drop := fmt.Sprintf(`ALTER TABLE %q DROP CONSTRAINT IF EXISTS %q`, con.table, con.name)
    if err := s.db.Exec(drop).Error; err != nil {
      return fmt.Errorf("drop constraint %s: %w", con.name, err)
    }
    add := fmt.Sprintf(`ALTER TABLE %q ADD CONSTRAINT %q %s`, con.table, con.name, con.ddl)
    if err := s.db.Exec(add).Error; err != nil {
      return fmt.Errorf("add constraint %s: %w", con.name, err)
    }
  }
  return nil
}

func (s *PostgresService) DB() *gorm.DB {
  return s.db
}
