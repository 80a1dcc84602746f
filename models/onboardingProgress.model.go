package models

import (
	"time"

	"gorm.io/gorm"
)

// Onboarding status values
const (
	StatusNotStarted = "NOT_STARTED"
	StatusInProgress = "IN_PROGRESS"
	StatusCompleted  = "COMPLETED"
)

// OnboardingProgress tracks one user's position in the onboarding flow.
// CurrentStep only ever increases; completion flags are set by their own
// step and never unset.
type OnboardingProgress struct {
	gorm.Model
	UserID      uint   `json:"user_id" gorm:"uniqueIndex;not null"`
	CurrentStep int    `json:"current_step" gorm:"default:0"` // 0-5
	TotalSteps  int    `json:"total_steps" gorm:"default:5"`
	Status      string `json:"status" gorm:"default:'NOT_STARTED'"` // NOT_STARTED, IN_PROGRESS, COMPLETED
	AgeGroup    string `json:"age_group" gorm:"default:''"`

	AgeDetected        bool `json:"age_detected" gorm:"default:false"`
	RoleSelected       bool `json:"role_selected" gorm:"default:false"`
	InterestsCollected bool `json:"interests_collected" gorm:"default:false"`
	SkillsCollected    bool `json:"skills_collected" gorm:"default:false"`
	AssessmentComplete bool `json:"assessment_complete" gorm:"default:false"`
	CareerRecommended  bool `json:"career_recommended" gorm:"default:false"`
	PathGenerated      bool `json:"path_generated" gorm:"default:false"`

	CompletedAt *time.Time `json:"completed_at"`
}
