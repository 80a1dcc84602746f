package services

import (
	"fmt"
	"testing"

	"pathfinder/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// :memory: sqlite is per-connection; pin the pool to one
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Interest{},
		&models.Skill{},
		&models.LearnerProfile{},
		&models.LearnerInterest{},
		&models.LearnerSkill{},
		&models.OnboardingProgress{},
		&models.LearningPath{},
		&models.LearningModule{},
	))

	return db
}

// seedLearner creates a user with an onboarding progress row and returns the user id.
func seedLearner(t *testing.T, db *gorm.DB, gender string) uint {
	t.Helper()

	user := models.User{Name: "Test Learner", Email: uniqueEmail(t), Password: "x", Gender: gender}
	require.NoError(t, db.Create(&user).Error)

	progress := models.OnboardingProgress{UserID: user.ID, Status: models.StatusNotStarted, TotalSteps: 5}
	require.NoError(t, db.Create(&progress).Error)

	return user.ID
}

var emailSeq int

func uniqueEmail(t *testing.T) string {
	t.Helper()
	emailSeq++
	return fmt.Sprintf("learner%d@example.com", emailSeq)
}

func seedInterest(t *testing.T, db *gorm.DB, name string) uint {
	t.Helper()
	interest := models.Interest{Name: name}
	require.NoError(t, db.Create(&interest).Error)
	return interest.ID
}

func seedSkill(t *testing.T, db *gorm.DB, name string) uint {
	t.Helper()
	skill := models.Skill{Name: name}
	require.NoError(t, db.Create(&skill).Error)
	return skill.ID
}

func loadProgress(t *testing.T, db *gorm.DB, userID uint) models.OnboardingProgress {
	t.Helper()
	var progress models.OnboardingProgress
	require.NoError(t, db.Where("user_id = ?", userID).First(&progress).Error)
	return progress
}
