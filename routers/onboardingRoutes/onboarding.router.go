package onboardingRoutes

import (
	controllers "pathfinder/controllers/onboarding"
	"pathfinder/middleware"
	validators "pathfinder/validators/onboarding"

	"github.com/gofiber/fiber/v2"
)

// SetupOnboardingRoutes sets up the onboarding step and finalize routes
func SetupOnboardingRoutes(app *fiber.App) {
	onboardingGroup := app.Group("/api/onboarding")

	onboardingGroup.Get("/status", middleware.JWTMiddleware, controllers.GetStatus)
	onboardingGroup.Post("/age-group", middleware.JWTMiddleware, validators.SetAgeGroup(), controllers.SetAgeGroup)
	onboardingGroup.Post("/profile", middleware.JWTMiddleware, validators.UpdateProfile(), controllers.UpdateProfile)
	onboardingGroup.Post("/interests", middleware.JWTMiddleware, validators.SetInterests(), controllers.SetInterests)
	onboardingGroup.Post("/skills", middleware.JWTMiddleware, validators.SetSkills(), controllers.SetSkills)
	onboardingGroup.Post("/complete", middleware.JWTMiddleware, controllers.Finalize)
}
