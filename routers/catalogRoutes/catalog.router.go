package catalogRoutes

import (
	controllers "pathfinder/controllers/catalog"
	"pathfinder/middleware"

	"github.com/gofiber/fiber/v2"
)

// SetupCatalogRoutes sets up interest/skill catalog and learning path routes
func SetupCatalogRoutes(app *fiber.App) {
	catalogGroup := app.Group("/api/catalog")

	catalogGroup.Get("/interests", middleware.JWTMiddleware, controllers.GetInterests)
	catalogGroup.Get("/skills", middleware.JWTMiddleware, controllers.GetSkills)

	userGroup := app.Group("/api/user")
	userGroup.Get("/learning-paths", middleware.JWTMiddleware, controllers.GetLearningPaths)
}
