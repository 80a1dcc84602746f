package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"pathfinder/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Fallback feature values keep the model stable when a learner skipped a step.
const (
	defaultGender   = "Male"
	defaultInterest = "Technology"
	defaultSkills   = "Communication"
)

// GradeDefaults supplies the grade proxy when no CGPA is recorded.
// School-age learners get a different default than the rest.
type GradeDefaults struct {
	YoungLearner float64 // CHILD and SCHOOL
	Standard     float64
}

func DefaultGradePolicy() GradeDefaults {
	return GradeDefaults{YoungLearner: 80.0, Standard: 70.0}
}

// CareerOutcome is the finalize result handed back to the caller.
// PredictionID is a placeholder when the document store was unavailable.
type CareerOutcome struct {
	Prediction   *PredictionResult `json:"prediction"`
	PredictionID string            `json:"predictionId"`
}

// CareerService runs the finalize saga: load the learner aggregate, call the
// inference service, record documents best-effort, generate the learning path
// and mark onboarding complete.
type CareerService struct {
	DB     *gorm.DB
	ML     MLClient
	Store  PredictionStore
	Paths  *LearningPathService
	Grades GradeDefaults
	Log    *zap.Logger
}

func NewCareerService(db *gorm.DB, ml MLClient, store PredictionStore, paths *LearningPathService, grades GradeDefaults, log *zap.Logger) *CareerService {
	return &CareerService{DB: db, ML: ml, Store: store, Paths: paths, Grades: grades, Log: log}
}

// PredictCareer finalizes onboarding for the user.
//
// Failure policy per step: a missing profile or an inference failure aborts
// with nothing mutated; document-store failures degrade to a placeholder id;
// a path-generation or final-commit failure propagates and leaves the
// completion flags unset so the call can be retried.
func (s *CareerService) PredictCareer(ctx context.Context, userID uint) (*CareerOutcome, error) {
	var profile models.LearnerProfile
	err := s.DB.
		Preload("User").
		Preload("Interests.Interest").
		Preload("Skills.Skill").
		Where("user_id = ?", userID).
		First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	features := BuildFeatures(&profile, s.Grades)

	result, err := s.ML.Predict(features)
	if err != nil {
		return nil, err
	}

	predictionID := s.recordDocuments(ctx, userID, &profile, features, result)

	if _, err := s.Paths.Generate(userID, result.PredictedCourse); err != nil {
		return nil, fmt.Errorf("learning path generation failed: %w", err)
	}

	now := time.Now()
	err = s.DB.Model(&models.OnboardingProgress{}).Where("user_id = ?", userID).Updates(map[string]interface{}{
		"assessment_complete": true,
		"career_recommended":  true,
		"path_generated":      true,
		"status":              models.StatusCompleted,
		"completed_at":        now,
		"current_step":        5,
	}).Error
	if err != nil {
		return nil, fmt.Errorf("failed to finalize onboarding status: %w", err)
	}

	return &CareerOutcome{Prediction: result, PredictionID: predictionID}, nil
}

// recordDocuments persists the prediction and recommendation documents.
// Store failures are logged and swallowed; a placeholder id substitutes for
// the real one so the user-visible outcome does not depend on the store.
func (s *CareerService) recordDocuments(ctx context.Context, userID uint, profile *models.LearnerProfile, features Features, result *PredictionResult) string {
	predictionID, err := s.Store.RecordPrediction(ctx, userID, features, result)
	if err != nil {
		s.Log.Warn("prediction document write failed, continuing with placeholder id",
			zap.Uint("userId", userID),
			zap.Error(err))
		return placeholderPredictionID()
	}

	if err := s.Store.RecordRecommendation(ctx, userID, predictionID, result, skillNames(profile)); err != nil {
		s.Log.Warn("recommendation document write failed",
			zap.Uint("userId", userID),
			zap.String("predictionId", predictionID),
			zap.Error(err))
	}

	return predictionID
}

// BuildFeatures derives the inference input vector from the learner aggregate.
func BuildFeatures(profile *models.LearnerProfile, grades GradeDefaults) Features {
	interests := make([]string, 0, len(profile.Interests))
	for _, li := range profile.Interests {
		if li.Interest.Name != "" {
			interests = append(interests, li.Interest.Name)
		}
	}

	interest := strings.Join(interests, ", ")
	if interest == "" {
		interest = defaultInterest
	}

	skills := strings.Join(skillNames(profile), ", ")
	if skills == "" {
		skills = defaultSkills
	}

	var gradeValue float64
	switch {
	case profile.CgpaPercentage != nil:
		gradeValue = *profile.CgpaPercentage
	case profile.AgeGroup == "CHILD" || profile.AgeGroup == "SCHOOL":
		gradeValue = grades.YoungLearner
	default:
		gradeValue = grades.Standard
	}

	return Features{
		Gender:   normalizeGender(profile.User.Gender),
		Interest: interest,
		Skills:   skills,
		Grades:   gradeValue,
	}
}

func skillNames(profile *models.LearnerProfile) []string {
	names := make([]string, 0, len(profile.Skills))
	for _, ls := range profile.Skills {
		if ls.Skill.Name != "" {
			names = append(names, ls.Skill.Name)
		}
	}
	return names
}

// normalizeGender capitalizes the stored value the way the model expects.
func normalizeGender(gender string) string {
	gender = strings.TrimSpace(gender)
	if gender == "" {
		return defaultGender
	}
	return strings.ToUpper(gender[:1]) + strings.ToLower(gender[1:])
}

func placeholderPredictionID() string {
	return fmt.Sprintf("local-%d-%s", time.Now().UnixMilli(), uuid.NewString()[:8])
}
