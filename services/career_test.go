package services

import (
	"context"
	"strings"
	"testing"

	"pathfinder/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type fakeML struct {
	result       *PredictionResult
	err          error
	calls        int
	lastFeatures Features
}

func (f *fakeML) Predict(features Features) (*PredictionResult, error) {
	f.calls++
	f.lastFeatures = features
	if f.err != nil {
		return nil, f.err
	}
	return f.result, nil
}

type fakeStore struct {
	predictionErr     error
	recommendationErr error

	predictionCalls    int
	recommendCalls     int
	lastPredictionID   string
	lastRequiredSkills []string
}

func (f *fakeStore) RecordPrediction(ctx context.Context, userID uint, features Features, result *PredictionResult) (string, error) {
	f.predictionCalls++
	if f.predictionErr != nil {
		return "", f.predictionErr
	}
	return "pred-123", nil
}

func (f *fakeStore) RecordRecommendation(ctx context.Context, userID uint, predictionID string, result *PredictionResult, requiredSkills []string) error {
	f.recommendCalls++
	f.lastPredictionID = predictionID
	f.lastRequiredSkills = requiredSkills
	return f.recommendationErr
}

func okPrediction() *PredictionResult {
	return &PredictionResult{
		PredictedCourse: "B.Tech",
		Confidence:      0.9,
		TopPredictions: []TopPrediction{
			{Course: "B.Tech", Probability: 0.9},
			{Course: "BCA", Probability: 0.06},
		},
	}
}

func newCareerService(db *gorm.DB, ml MLClient, store PredictionStore) *CareerService {
	return NewCareerService(db, ml, store,
		NewLearningPathService(db, nil),
		DefaultGradePolicy(),
		zap.NewNop(),
	)
}

// seedProfile creates the learner profile with optional interests and skills.
func seedProfile(t *testing.T, db *gorm.DB, userID uint, ageGroup string, cgpa *float64) uint {
	t.Helper()
	profile := models.LearnerProfile{UserID: userID, AgeGroup: ageGroup, CgpaPercentage: cgpa}
	require.NoError(t, db.Create(&profile).Error)
	return profile.ID
}

func linkInterest(t *testing.T, db *gorm.DB, profileID uint, name string) {
	t.Helper()
	id := seedInterest(t, db, name)
	require.NoError(t, db.Create(&models.LearnerInterest{LearnerProfileID: profileID, InterestID: id}).Error)
}

func linkSkill(t *testing.T, db *gorm.DB, profileID uint, name string, level int) {
	t.Helper()
	id := seedSkill(t, db, name)
	require.NoError(t, db.Create(&models.LearnerSkill{LearnerProfileID: profileID, SkillID: id, ProficiencyLevel: level}).Error)
}

func TestFinalizeMissingProfile(t *testing.T) {
	db := newTestDB(t)
	ml := &fakeML{result: okPrediction()}
	svc := newCareerService(db, ml, &fakeStore{})
	userID := seedLearner(t, db, "")

	_, err := svc.PredictCareer(context.Background(), userID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Zero(t, ml.calls)

	// progress untouched
	progress := loadProgress(t, db, userID)
	assert.Equal(t, 0, progress.CurrentStep)
	assert.Equal(t, models.StatusNotStarted, progress.Status)
}

func TestFinalizeUpstreamFailure(t *testing.T) {
	db := newTestDB(t)
	ml := &fakeML{err: &UpstreamError{StatusCode: 503, Body: "overloaded"}}
	store := &fakeStore{}
	svc := newCareerService(db, ml, store)

	userID := seedLearner(t, db, "")
	seedProfile(t, db, userID, "COLLEGE", nil)

	_, err := svc.PredictCareer(context.Background(), userID)

	var upstreamErr *UpstreamError
	require.ErrorAs(t, err, &upstreamErr)
	assert.Equal(t, "overloaded", upstreamErr.Body)

	progress := loadProgress(t, db, userID)
	assert.NotEqual(t, models.StatusCompleted, progress.Status)
	assert.False(t, progress.AssessmentComplete)
	assert.Zero(t, store.predictionCalls)

	var pathCount int64
	db.Model(&models.LearningPath{}).Where("user_id = ?", userID).Count(&pathCount)
	assert.Zero(t, pathCount)
}

func TestFinalizeStoreFailureStillCompletes(t *testing.T) {
	db := newTestDB(t)
	ml := &fakeML{result: okPrediction()}
	store := &fakeStore{predictionErr: &StoreError{Op: "create prediction", Cause: assert.AnError}}
	svc := newCareerService(db, ml, store)

	userID := seedLearner(t, db, "")
	seedProfile(t, db, userID, "COLLEGE", nil)

	outcome, err := svc.PredictCareer(context.Background(), userID)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(outcome.PredictionID, "local-"))
	assert.Equal(t, "B.Tech", outcome.Prediction.PredictedCourse)
	// recommendation needs the real id, so it is skipped
	assert.Zero(t, store.recommendCalls)

	var pathCount int64
	db.Model(&models.LearningPath{}).Where("user_id = ?", userID).Count(&pathCount)
	assert.Equal(t, int64(1), pathCount)

	progress := loadProgress(t, db, userID)
	assert.Equal(t, models.StatusCompleted, progress.Status)
	assert.True(t, progress.AssessmentComplete)
	assert.True(t, progress.CareerRecommended)
	assert.True(t, progress.PathGenerated)
	assert.Equal(t, 5, progress.CurrentStep)
	assert.NotNil(t, progress.CompletedAt)
}

func TestFinalizeHappyPath(t *testing.T) {
	db := newTestDB(t)
	ml := &fakeML{result: okPrediction()}
	store := &fakeStore{}
	svc := newCareerService(db, ml, store)

	userID := seedLearner(t, db, "female")
	profileID := seedProfile(t, db, userID, "COLLEGE", nil)
	linkSkill(t, db, profileID, "Programming", 4)
	linkSkill(t, db, profileID, "Communication", 2)

	outcome, err := svc.PredictCareer(context.Background(), userID)
	require.NoError(t, err)

	assert.Equal(t, "pred-123", outcome.PredictionID)
	assert.Equal(t, 1, store.predictionCalls)
	assert.Equal(t, 1, store.recommendCalls)
	assert.Equal(t, "pred-123", store.lastPredictionID)
	assert.Equal(t, []string{"Programming", "Communication"}, store.lastRequiredSkills)

	assert.Equal(t, "Female", ml.lastFeatures.Gender)

	progress := loadProgress(t, db, userID)
	assert.Equal(t, models.StatusCompleted, progress.Status)
}

func TestFinalizeRecommendationFailureNonFatal(t *testing.T) {
	db := newTestDB(t)
	ml := &fakeML{result: okPrediction()}
	store := &fakeStore{recommendationErr: &StoreError{Op: "create recommendation", Cause: assert.AnError}}
	svc := newCareerService(db, ml, store)

	userID := seedLearner(t, db, "")
	seedProfile(t, db, userID, "SCHOOL", nil)

	outcome, err := svc.PredictCareer(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, "pred-123", outcome.PredictionID)

	progress := loadProgress(t, db, userID)
	assert.Equal(t, models.StatusCompleted, progress.Status)
}

func TestFinalizePathGenerationFailureIsFatal(t *testing.T) {
	db := newTestDB(t)
	ml := &fakeML{result: okPrediction()}
	svc := NewCareerService(db, ml, &fakeStore{},
		// no template for the predicted label and no default
		NewLearningPathService(db, PathTemplates{"Unrelated": {Modules: []string{"x"}, Duration: 1}}),
		DefaultGradePolicy(),
		zap.NewNop(),
	)

	userID := seedLearner(t, db, "")
	seedProfile(t, db, userID, "COLLEGE", nil)

	_, err := svc.PredictCareer(context.Background(), userID)
	require.Error(t, err)

	progress := loadProgress(t, db, userID)
	assert.NotEqual(t, models.StatusCompleted, progress.Status)
	assert.False(t, progress.PathGenerated)
}

func TestGradeDefaultPolicy(t *testing.T) {
	tests := []struct {
		name     string
		ageGroup string
		cgpa     *float64
		want     float64
	}{
		{"school without cgpa", "SCHOOL", nil, 80.0},
		{"child without cgpa", "CHILD", nil, 80.0},
		{"professional without cgpa", "PROFESSIONAL", nil, 70.0},
		{"college without cgpa", "COLLEGE", nil, 70.0},
		{"recorded cgpa wins", "SCHOOL", floatPtr(88.5), 88.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			profile := models.LearnerProfile{AgeGroup: tt.ageGroup, CgpaPercentage: tt.cgpa}
			features := BuildFeatures(&profile, DefaultGradePolicy())
			assert.Equal(t, tt.want, features.Grades)
		})
	}
}

func TestBuildFeaturesDefaults(t *testing.T) {
	profile := models.LearnerProfile{AgeGroup: "COLLEGE"}
	features := BuildFeatures(&profile, DefaultGradePolicy())

	assert.Equal(t, "Male", features.Gender)
	assert.Equal(t, "Technology", features.Interest)
	assert.Equal(t, "Communication", features.Skills)
}

func TestFinalizeScenario(t *testing.T) {
	// learner with interests, skills and a recorded CGPA predicted into an
	// unrecognized label falls back to the default curriculum
	db := newTestDB(t)
	ml := &fakeML{result: &PredictionResult{
		PredictedCourse: "Data Science",
		Confidence:      0.82,
		TopPredictions:  []TopPrediction{{Course: "Data Science", Probability: 0.82}},
	}}
	store := &fakeStore{}
	svc := newCareerService(db, ml, store)

	userID := seedLearner(t, db, "")
	profileID := seedProfile(t, db, userID, "SCHOOL", floatPtr(88.5))
	linkInterest(t, db, profileID, "Tech")
	linkInterest(t, db, profileID, "Art")
	linkSkill(t, db, profileID, "s1", 3)

	outcome, err := svc.PredictCareer(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, "Data Science", outcome.Prediction.PredictedCourse)

	assert.Equal(t, "Tech, Art", ml.lastFeatures.Interest)
	assert.Equal(t, "s1", ml.lastFeatures.Skills)
	assert.Equal(t, 88.5, ml.lastFeatures.Grades)

	var path models.LearningPath
	require.NoError(t, db.Where("user_id = ?", userID).First(&path).Error)
	assert.Equal(t, "Roadmap to Data Science", path.PathName)
	assert.Equal(t, 10, path.EstimatedDuration)

	var moduleCount int64
	db.Model(&models.LearningModule{}).Where("path_id = ?", path.ID).Count(&moduleCount)
	assert.Equal(t, int64(5), moduleCount)
}

func floatPtr(f float64) *float64 { return &f }
