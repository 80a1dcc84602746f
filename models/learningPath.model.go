package models

import "gorm.io/gorm"

// LearningPath is the personalized curriculum generated after a career
// prediction. A path owns its modules.
type LearningPath struct {
	gorm.Model
	UserID            uint   `json:"user_id" gorm:"index;not null"`
	PathName          string `json:"path_name"`
	Description       string `json:"description"`
	TargetCareer      string `json:"target_career"`
	DifficultyLevel   string `json:"difficulty_level" gorm:"default:'Beginner'"`
	EstimatedDuration int    `json:"estimated_duration"` // in weeks

	Modules []LearningModule `json:"modules" gorm:"foreignKey:PathID;constraint:OnDelete:CASCADE"`
}

// LearningModule is one ordered unit within a learning path
type LearningModule struct {
	gorm.Model
	PathID        uint   `json:"path_id" gorm:"index;not null"`
	Title         string `json:"title"`
	Description   string `json:"description"`
	OrderIndex    int    `json:"order_index" gorm:"default:0"` // 1-based position in the path
	EstimatedTime int    `json:"estimated_time"`               // in minutes
}
