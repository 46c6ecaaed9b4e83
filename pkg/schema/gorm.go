package schema

import (
	"gorm.io/gorm"
)

// AllModels returns all schema models for GORM AutoMigrate.
func AllModels() []interface{} {
	return []interface{}{
		&Sport{},
		&Competition{},
		&Team{},
		&Player{},
		&Match{},
		&FootballStats{},
		&BasketballStats{},
		&FootballPlayerTotals{},
		&FootballPlayerPerGame{},
		&BasketballPlayerTotals{},
		&BasketballPlayerPerGame{},
	}
}

// Migrate runs GORM AutoMigrate to create or update the schema.
// It is idempotent: running it against an up-to-date database is a no-op.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(AllModels()...)
}
