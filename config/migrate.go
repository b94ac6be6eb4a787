package config

import (
	"github.com/Emdad-Export/emdad-cms-backend/models"
	"gorm.io/gorm"
)

// Models lists every table the CMS owns, in dependency order.
var Models = []any{
	&models.Category{},
	&models.Product{},
	&models.QuoteRequest{},
	&models.Post{},
	&models.GalleryItem{},
	&models.Admin{},
	&models.AdminSession{},
	&models.ActivityLog{},
}

// Migrate creates or updates the schema.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(Models...)
}
