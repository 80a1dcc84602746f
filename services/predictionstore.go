package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	redis "github.com/redis/go-redis/v9"
)

// PredictionDoc is the document persisted per prediction run.
type PredictionDoc struct {
	UserID             uint      `json:"userId"`
	InputFeatures      Features  `json:"inputFeatures"`
	PredictedCourse    string    `json:"predictedCourse"`
	ConfidenceScore    float64   `json:"confidenceScore"`
	AlternativeCareers []string  `json:"alternativeCareers"`
	AlternativeScores  []float64 `json:"alternativeScores"`
	ModelVersion       string    `json:"modelVersion"`
	ModelType          string    `json:"modelType"`
	CreatedAt          time.Time `json:"createdAt"`
}

// RecommendationDoc links a career recommendation back to its prediction.
type RecommendationDoc struct {
	UserID            uint      `json:"userId"`
	PredictionID      string    `json:"predictionId"`
	CareerTitle       string    `json:"careerTitle"`
	CareerDescription string    `json:"careerDescription"`
	RequiredSkills    []string  `json:"requiredSkills"`
	IndustryDemand    string    `json:"industryDemand"`
	CreatedAt         time.Time `json:"createdAt"`
}

// PredictionStore persists prediction documents. Both writes may fail when
// the store is unreachable; the saga treats such failures as non-fatal.
type PredictionStore interface {
	RecordPrediction(ctx context.Context, userID uint, features Features, result *PredictionResult) (string, error)
	RecordRecommendation(ctx context.Context, userID uint, predictionID string, result *PredictionResult, requiredSkills []string) error
}

// RedisPredictionStore keeps prediction documents as JSON values keyed by a
// generated id, with a per-user index set.
type RedisPredictionStore struct {
	RDB *redis.Client
}

func NewRedisPredictionStore(rdb *redis.Client) *RedisPredictionStore {
	return &RedisPredictionStore{RDB: rdb}
}

func (s *RedisPredictionStore) RecordPrediction(ctx context.Context, userID uint, features Features, result *PredictionResult) (string, error) {
	if s.RDB == nil {
		return "", &StoreError{Op: "create prediction", Cause: errors.New("no connection")}
	}

	careers := make([]string, 0, len(result.TopPredictions))
	scores := make([]float64, 0, len(result.TopPredictions))
	for _, p := range result.TopPredictions {
		careers = append(careers, p.Course)
		scores = append(scores, p.Probability)
	}

	doc := PredictionDoc{
		UserID:             userID,
		InputFeatures:      features,
		PredictedCourse:    result.PredictedCourse,
		ConfidenceScore:    result.Confidence,
		AlternativeCareers: careers,
		AlternativeScores:  scores,
		ModelVersion:       "v1.0.0",
		ModelType:          "RandomForest",
		CreatedAt:          time.Now(),
	}

	payload, err := json.Marshal(doc)
	if err != nil {
		return "", &StoreError{Op: "create prediction", Cause: err}
	}

	id := uuid.NewString()
	if err := s.RDB.Set(ctx, predictionKey(id), payload, 0).Err(); err != nil {
		return "", &StoreError{Op: "create prediction", Cause: err}
	}
	if err := s.RDB.SAdd(ctx, userPredictionsKey(userID), id).Err(); err != nil {
		return "", &StoreError{Op: "index prediction", Cause: err}
	}

	return id, nil
}

func (s *RedisPredictionStore) RecordRecommendation(ctx context.Context, userID uint, predictionID string, result *PredictionResult, requiredSkills []string) error {
	if s.RDB == nil {
		return &StoreError{Op: "create recommendation", Cause: errors.New("no connection")}
	}

	doc := RecommendationDoc{
		UserID:            userID,
		PredictionID:      predictionID,
		CareerTitle:       result.PredictedCourse,
		CareerDescription: fmt.Sprintf("Based on your profile, the AI recommends a career in %s.", result.PredictedCourse),
		RequiredSkills:    requiredSkills,
		IndustryDemand:    "High",
		CreatedAt:         time.Now(),
	}

	payload, err := json.Marshal(doc)
	if err != nil {
		return &StoreError{Op: "create recommendation", Cause: err}
	}

	if err := s.RDB.Set(ctx, recommendationKey(uuid.NewString()), payload, 0).Err(); err != nil {
		return &StoreError{Op: "create recommendation", Cause: err}
	}

	return nil
}

func predictionKey(id string) string { return "prediction:" + id }

func recommendationKey(id string) string { return "recommendation:" + id }

func userPredictionsKey(userID uint) string { return fmt.Sprintf("user:%d:predictions", userID) }
