package onboardingValidator

import (
	"strings"

	"pathfinder/middleware"
	"pathfinder/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// SetAgeGroup validates the age-group payload shape. The allowed enum is the
// core's business rule and is checked there.
func SetAgeGroup() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			AgeGroup string `json:"ageGroup"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if strings.TrimSpace(reqData.AgeGroup) == "" {
			return middleware.ValidationErrorResponse(c, map[string]string{"ageGroup": "Age group is required!"})
		}

		c.Locals("ageGroup", reqData.AgeGroup)
		return c.Next()
	}
}

// UpdateProfile validates the bounded profile field set.
func UpdateProfile() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(services.ProfileUpdate)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			errors := make(map[string]string)
			for _, fieldErr := range err.(validator.ValidationErrors) {
				errors[strings.ToLower(fieldErr.Field()[:1])+fieldErr.Field()[1:]] = "Value out of range!"
			}
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedProfile", reqData)
		return c.Next()
	}
}

// SetInterests validates the interest id list.
func SetInterests() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			InterestIDs []uint `json:"interestIds"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "interestIds must be an array!", nil)
		}

		if reqData.InterestIDs == nil {
			return middleware.ValidationErrorResponse(c, map[string]string{"interestIds": "interestIds must be an array!"})
		}

		c.Locals("interestIds", reqData.InterestIDs)
		return c.Next()
	}
}

// SetSkills validates the skill list shape; proficiency bounds are enforced
// by the core.
func SetSkills() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Skills []services.SkillInput `json:"skills"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "skills must be an array!", nil)
		}

		if reqData.Skills == nil {
			return middleware.ValidationErrorResponse(c, map[string]string{"skills": "skills must be an array!"})
		}

		for _, skill := range reqData.Skills {
			if skill.SkillID == 0 {
				return middleware.ValidationErrorResponse(c, map[string]string{"skills": "skillId is required for every entry!"})
			}
		}

		c.Locals("skills", reqData.Skills)
		return c.Next()
	}
}
