package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Name      string `gorm:"default:''"`
	Email     string `gorm:"unique;not null"`
	Password  string `json:"-" gorm:"not null"`
	Gender    string `gorm:"default:''"` // Male, Female, Other
	Dob       *time.Time
	Role      string     `gorm:"default:'LEARNER'"` // LEARNER, ADMIN
	LastLogin *time.Time `gorm:"default:NULL"`
	IsDeleted bool       `gorm:"default:false"`
}
