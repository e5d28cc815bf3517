package database

import (
	"github.com/evandrarf/cryptolearn-be/internal/entity"
	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&entity.GlossaryTerm{},
	)
}
