package database

import (
	"context"
	"fmt"

	"github.com/valldsonsantos/PI-MVP-Senac/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const seedOwnerEmail = "aline@exemplo.com"

func seedUsers() []models.User {
	return []models.User{
		{Name: "Aline Dev", Email: seedOwnerEmail, Password: "senha123", Kind: models.KindCitizen},
		{Name: "Empresa Recicla Tudo", Email: "empresa@recicla.com", Password: "senha456", Kind: models.KindCompany},
	}
}

func seedCollectionPoints() []models.CollectionPoint {
	weekdays, saturday := "Seg-Sex, 8h-17h", "Sab, 9h-13h"
	return []models.CollectionPoint{
		{Name: "Ponto Recicla Fácil", Address: "Rua das Flores, 100, Centro", Latitude: -23.6698, Longitude: -46.5492, Hours: &weekdays},
		{Name: "Ecoponto Central", Address: "Av. Queiroz, 500, Vila Assunção", Latitude: -23.6601, Longitude: -46.5350, Hours: &saturday},
	}
}

func seedPickupRequests(ownerID, pointID int64) []models.PickupRequest {
	return []models.PickupRequest{
		{UserID: ownerID, CollectionPointID: &pointID, PickupDate: "2025-11-15", WasteType: "Monitor e CPU", Address: "Rua das Flores, 120, Centro", Status: models.StatusPending},
		{UserID: ownerID, CollectionPointID: &pointID, PickupDate: "2025-11-20", WasteType: "Celulares e Baterias", Address: "Rua das Flores, 120, Centro", Status: models.StatusPending},
	}
}

// Seed inserts sample data. Users are keyed by email; points and requests
// are only inserted into empty tables, so running it twice adds nothing.
func Seed(ctx context.Context, db *gorm.DB) error {
	db = db.WithContext(ctx)

	users := seedUsers()
	if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&users).Error; err != nil {
		return fmt.Errorf("failed to seed users: %w", err)
	}

	var points int64
	if err := db.Model(&models.CollectionPoint{}).Count(&points).Error; err != nil {
		return fmt.Errorf("failed to count collection points: %w", err)
	}
	if points == 0 {
		collectionPoints := seedCollectionPoints()
		if err := db.Create(&collectionPoints).Error; err != nil {
			return fmt.Errorf("failed to seed collection points: %w", err)
		}
	}

	var requests int64
	if err := db.Model(&models.PickupRequest{}).Count(&requests).Error; err != nil {
		return fmt.Errorf("failed to count pickup requests: %w", err)
	}
	if requests > 0 {
		return nil
	}

	var owner models.User
	if err := db.Where("email = ?", seedOwnerEmail).First(&owner).Error; err != nil {
		return fmt.Errorf("failed to load seed owner: %w", err)
	}

	var point models.CollectionPoint
	if err := db.Order("id").First(&point).Error; err != nil {
		return fmt.Errorf("failed to load seed collection point: %w", err)
	}

	pickupRequests := seedPickupRequests(owner.ID, point.ID)
	if err := db.Create(&pickupRequests).Error; err != nil {
		return fmt.Errorf("failed to seed pickup requests: %w", err)
	}

	return nil
}
