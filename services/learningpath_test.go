package services

import (
	"testing"

	"pathfinder/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateKnownTemplate(t *testing.T) {
	db := newTestDB(t)
	svc := NewLearningPathService(db, nil)

	path, err := svc.Generate(1, "B.Tech")
	require.NoError(t, err)

	assert.Equal(t, "Roadmap to B.Tech", path.PathName)
	assert.Equal(t, "B.Tech", path.TargetCareer)
	assert.Equal(t, 16, path.EstimatedDuration)
	assert.Equal(t, "Beginner", path.DifficultyLevel)

	var modules []models.LearningModule
	require.NoError(t, db.Where("path_id = ?", path.ID).Order("order_index asc").Find(&modules).Error)
	require.Len(t, modules, 5)

	for i, module := range modules {
		assert.Equal(t, i+1, module.OrderIndex)
		assert.Equal(t, 480, module.EstimatedTime)
		assert.NotEmpty(t, module.Title)
		assert.Contains(t, module.Description, module.Title)
	}
	assert.Equal(t, "Introduction to Computer Science", modules[0].Title)
}

func TestGenerateUnknownLabelFallsBack(t *testing.T) {
	db := newTestDB(t)
	svc := NewLearningPathService(db, nil)

	path, err := svc.Generate(1, "Data Science")
	require.NoError(t, err)

	assert.Equal(t, "Roadmap to Data Science", path.PathName)
	assert.Equal(t, 10, path.EstimatedDuration) // default template

	var count int64
	db.Model(&models.LearningModule{}).Where("path_id = ?", path.ID).Count(&count)
	assert.Equal(t, int64(5), count)
}

func TestGenerateInjectedTemplates(t *testing.T) {
	db := newTestDB(t)
	svc := NewLearningPathService(db, PathTemplates{
		"Pilot":   {Modules: []string{"Ground School", "Flight Hours"}, Duration: 52},
		"default": {Modules: []string{"Basics"}, Duration: 4},
	})

	path, err := svc.Generate(7, "Pilot")
	require.NoError(t, err)
	assert.Equal(t, 52, path.EstimatedDuration)

	var count int64
	db.Model(&models.LearningModule{}).Where("path_id = ?", path.ID).Count(&count)
	assert.Equal(t, int64(2), count)
}

func TestGenerateIsNotIdempotent(t *testing.T) {
	db := newTestDB(t)
	svc := NewLearningPathService(db, nil)

	_, err := svc.Generate(3, "BCA")
	require.NoError(t, err)
	_, err = svc.Generate(3, "BCA")
	require.NoError(t, err)

	var count int64
	db.Model(&models.LearningPath{}).Where("user_id = ?", 3).Count(&count)
	assert.Equal(t, int64(2), count)
}
