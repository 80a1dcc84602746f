package database

import (
	"log"

	"pathfinder/models"

	"gorm.io/gorm"
)

// SeedCatalogs inserts the default interest and skill catalogs when the tables are empty.
func SeedCatalogs(db *gorm.DB) {
	var interestCount int64
	db.Model(&models.Interest{}).Count(&interestCount)
	if interestCount == 0 {
		interests := []models.Interest{
			{Name: "Technology", Category: "STEM"},
			{Name: "Science", Category: "STEM"},
			{Name: "Mathematics", Category: "STEM"},
			{Name: "Art", Category: "Creative"},
			{Name: "Design", Category: "Creative"},
			{Name: "Music", Category: "Creative"},
			{Name: "Business", Category: "Commerce"},
			{Name: "Finance", Category: "Commerce"},
			{Name: "Sports", Category: "Physical"},
			{Name: "Healthcare", Category: "Medical"},
		}
		if err := db.Create(&interests).Error; err != nil {
			log.Printf("Failed to seed interests: %v", err)
		} else {
			log.Printf("Seeded %d interests", len(interests))
		}
	}

	var skillCount int64
	db.Model(&models.Skill{}).Count(&skillCount)
	if skillCount == 0 {
		skills := []models.Skill{
			{Name: "Programming", Category: "Technical"},
			{Name: "Data Analysis", Category: "Technical"},
			{Name: "Web Development", Category: "Technical"},
			{Name: "Communication", Category: "Soft"},
			{Name: "Leadership", Category: "Soft"},
			{Name: "Problem Solving", Category: "Soft"},
			{Name: "Writing", Category: "Creative"},
			{Name: "Drawing", Category: "Creative"},
			{Name: "Public Speaking", Category: "Soft"},
			{Name: "Project Management", Category: "Professional"},
		}
		if err := db.Create(&skills).Error; err != nil {
			log.Printf("Failed to seed skills: %v", err)
		} else {
			log.Printf("Seeded %d skills", len(skills))
		}
	}
}
