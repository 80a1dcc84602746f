package models

import "gorm.io/gorm"

// LearnerProfile holds the onboarding answers for one user. Rows are created
// when the age group is first set and only ever updated after that.
type LearnerProfile struct {
	gorm.Model
	UserID   uint   `json:"user_id" gorm:"uniqueIndex;not null"`
	User     User   `json:"-" gorm:"foreignKey:UserID"`
	AgeGroup string `json:"age_group" gorm:"default:''"` // CHILD, SCHOOL, COLLEGE, GRADUATE, PROFESSIONAL

	// School learners
	SchoolName string `json:"school_name" gorm:"default:''"`
	Grade      *int   `json:"grade"`

	// College learners
	CollegeName    string   `json:"college_name" gorm:"default:''"`
	Course         string   `json:"course" gorm:"default:''"`
	Specialization string   `json:"specialization" gorm:"default:''"`
	CurrentYear    *int     `json:"current_year"`
	CgpaPercentage *float64 `json:"cgpa_percentage"`

	// Working professionals
	HighestEducation  string   `json:"highest_education" gorm:"default:''"`
	YearsOfExperience *float64 `json:"years_of_experience"`
	CurrentJobTitle   string   `json:"current_job_title" gorm:"default:''"`
	CurrentCompany    string   `json:"current_company" gorm:"default:''"`
	CurrentIndustry   string   `json:"current_industry" gorm:"default:''"`
	TotalExperience   *float64 `json:"total_experience"`
	DomainShiftIntent *bool    `json:"domain_shift_intent"`
	TargetDomain      string   `json:"target_domain" gorm:"default:''"`

	Interests []LearnerInterest `json:"interests" gorm:"foreignKey:LearnerProfileID"`
	Skills    []LearnerSkill    `json:"skills" gorm:"foreignKey:LearnerProfileID"`
}

// LearnerInterest links a learner profile to an interest catalog entry
type LearnerInterest struct {
	gorm.Model
	LearnerProfileID uint     `json:"learner_profile_id" gorm:"index;not null"`
	InterestID       uint     `json:"interest_id" gorm:"index;not null"`
	Interest         Interest `json:"interest" gorm:"foreignKey:InterestID"`
}

// LearnerSkill links a learner profile to a skill catalog entry with a self-rated level
type LearnerSkill struct {
	gorm.Model
	LearnerProfileID uint  `json:"learner_profile_id" gorm:"index;not null"`
	SkillID          uint  `json:"skill_id" gorm:"index;not null"`
	Skill            Skill `json:"skill" gorm:"foreignKey:SkillID"`
	ProficiencyLevel int   `json:"proficiency_level" gorm:"default:1"` // 1-5
}
