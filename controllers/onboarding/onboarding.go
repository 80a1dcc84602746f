package onboardingController

import (
	"errors"
	"log"

	"pathfinder/config"
	"pathfinder/database"
	"pathfinder/docstore"
	"pathfinder/logger"
	"pathfinder/middleware"
	"pathfinder/services"

	"github.com/gofiber/fiber/v2"
)

func onboardingService() *services.OnboardingService {
	return services.NewOnboardingService(database.Database.Db)
}

func careerService() *services.CareerService {
	return services.NewCareerService(
		database.Database.Db,
		services.NewCareerMLClient(config.AppConfig.MLApiURL),
		services.NewRedisPredictionStore(docstore.Client),
		services.NewLearningPathService(database.Database.Db, nil),
		services.DefaultGradePolicy(),
		logger.Log(),
	)
}

// GetStatus returns the user's onboarding progress
func GetStatus(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	progress, err := onboardingService().GetStatus(userID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Onboarding progress not found!", nil)
		}
		log.Printf("GetStatus error: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Internal server error!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Status retrieved!", progress)
}

// SetAgeGroup records the learner's age group
func SetAgeGroup(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	ageGroup, _ := c.Locals("ageGroup").(string)

	if err := onboardingService().SetAgeGroup(userID, ageGroup); err != nil {
		return onboardingError(c, "SetAgeGroup", err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Age group set successfully!", nil)
}

// UpdateProfile merges the submitted profile fields
func UpdateProfile(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	update, ok := c.Locals("validatedProfile").(*services.ProfileUpdate)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	if err := onboardingService().UpdateProfile(userID, update); err != nil {
		return onboardingError(c, "UpdateProfile", err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Profile updated successfully!", nil)
}

// SetInterests replaces the learner's interest set
func SetInterests(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	interestIDs, ok := c.Locals("interestIds").([]uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "interestIds must be an array!", nil)
	}

	if err := onboardingService().SetInterests(userID, interestIDs); err != nil {
		return onboardingError(c, "SetInterests", err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Interests saved successfully!", nil)
}

// SetSkills replaces the learner's skill set
func SetSkills(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	skills, ok := c.Locals("skills").([]services.SkillInput)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "skills must be an array!", nil)
	}

	if err := onboardingService().SetSkills(userID, skills); err != nil {
		return onboardingError(c, "SetSkills", err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Skills saved successfully!", nil)
}

// Finalize runs the career prediction saga and completes onboarding
func Finalize(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	outcome, err := careerService().PredictCareer(c.Context(), userID)
	if err != nil {
		var upstreamErr *services.UpstreamError
		var decodeErr *services.DecodeError
		switch {
		case errors.Is(err, services.ErrNotFound):
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Learner profile not found!", nil)
		case errors.As(err, &upstreamErr):
			log.Printf("Finalize upstream error: %v", err)
			return middleware.JsonResponse(c, fiber.StatusBadGateway, false, "Career prediction service unavailable!", nil)
		case errors.As(err, &decodeErr):
			log.Printf("Finalize decode error: %v", err)
			return middleware.JsonResponse(c, fiber.StatusBadGateway, false, "Career prediction service returned an invalid response!", nil)
		default:
			log.Printf("Finalize error: %v", err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Internal server error!", nil)
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Assessment completed!", outcome)
}

// onboardingError maps core error kinds onto HTTP responses
func onboardingError(c *fiber.Ctx, op string, err error) error {
	var validationErr *services.ValidationError
	switch {
	case errors.Is(err, services.ErrNotFound):
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Profile not found!", nil)
	case errors.As(err, &validationErr):
		return middleware.ValidationErrorResponse(c, map[string]string{validationErr.Field: validationErr.Reason})
	default:
		log.Printf("%s error: %v", op, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Internal server error!", nil)
	}
}
