package catalogController

import (
	"pathfinder/database"
	"pathfinder/middleware"
	"pathfinder/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// GetInterests lists the interest catalog for the onboarding UI
func GetInterests(c *fiber.Ctx) error {
	var interests []models.Interest
	if err := database.Database.Db.Order("name asc").Find(&interests).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch interests!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Interests fetched successfully!", interests)
}

// GetSkills lists the skill catalog for the onboarding UI
func GetSkills(c *fiber.Ctx) error {
	var skills []models.Skill
	if err := database.Database.Db.Order("name asc").Find(&skills).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch skills!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Skills fetched successfully!", skills)
}

// GetLearningPaths lists the user's generated learning paths with modules
func GetLearningPaths(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var paths []models.LearningPath
	if err := database.Database.Db.Where("user_id = ?", userID).Preload("Modules", func(db *gorm.DB) *gorm.DB {
		return db.Order("order_index asc")
	}).Order("created_at desc").Find(&paths).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch learning paths!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Learning paths fetched successfully!", paths)
}
