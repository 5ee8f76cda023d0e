package migrations

import (
	"github.com/go-gormigrate/gormigrate/v2"
	"gorm.io/gorm"

	"talentpact.backend/internal/infrastructure/models"
)

// Migrations lists the schema changes in apply order
func Migrations() []*gormigrate.Migration {
	return []*gormigrate.Migration{
		{
			// users belongs to the account system; created here so a fresh
			// database can satisfy the foreign keys below
			ID: "20240601_create_users_table",
			Migrate: func(tx *gorm.DB) error {
				return tx.AutoMigrate(&models.User{})
			},
			Rollback: func(tx *gorm.DB) error {
				return tx.Migrator().DropTable("users")
			},
		},
		{
			ID: "20240601_create_projects_table",
			Migrate: func(tx *gorm.DB) error {
				return tx.AutoMigrate(&models.Project{})
			},
			Rollback: func(tx *gorm.DB) error {
				return tx.Migrator().DropTable("projects")
			},
		},
		{
			ID: "20240601_create_contracts_table",
			Migrate: func(tx *gorm.DB) error {
				return tx.AutoMigrate(&models.Contract{})
			},
			Rollback: func(tx *gorm.DB) error {
				return tx.Migrator().DropTable("contracts")
			},
		},
	}
}

// Run applies every pending migration
func Run(db *gorm.DB) error {
	return gormigrate.New(db, gormigrate.DefaultOptions, Migrations()).Migrate()
}
