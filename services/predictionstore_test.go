package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecordPredictionWithoutConnection(t *testing.T) {
	store := NewRedisPredictionStore(nil)

	_, err := store.RecordPrediction(context.Background(), 1, Features{}, okPrediction())
	assert.ErrorIs(t, err, ErrStoreUnavailable)
}

func TestRecordRecommendationWithoutConnection(t *testing.T) {
	store := NewRedisPredictionStore(nil)

	err := store.RecordRecommendation(context.Background(), 1, "pred-123", okPrediction(), []string{"Programming"})
	assert.ErrorIs(t, err, ErrStoreUnavailable)
}

func TestStoreErrorMatchesUnavailable(t *testing.T) {
	err := &StoreError{Op: "create prediction", Cause: assert.AnError}
	assert.ErrorIs(t, err, ErrStoreUnavailable)
	assert.ErrorIs(t, err, assert.AnError)
}
