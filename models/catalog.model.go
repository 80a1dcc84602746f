package models

import "gorm.io/gorm"

// Interest is a catalog entry learners pick from during onboarding
type Interest struct {
	gorm.Model
	Name     string `json:"name" gorm:"unique;not null"`
	Category string `json:"category" gorm:"default:''"`
}

// Skill is a catalog entry learners rate themselves against
type Skill struct {
	gorm.Model
	Name     string `json:"name" gorm:"unique;not null"`
	Category string `json:"category" gorm:"default:''"`
}
