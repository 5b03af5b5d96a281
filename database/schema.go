package database

import (
	"fmt"

	"github.com/valldsonsantos/PI-MVP-Senac/models"

	"gorm.io/gorm"
)

// Migrate creates usuarios, pontos_coleta and agendamentos. Safe to call on
// every start; existing tables are left in place.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.User{},
		&models.CollectionPoint{},
		&models.PickupRequest{},
	)
	if err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	return nil
}
