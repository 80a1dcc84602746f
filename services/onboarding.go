package services

import (
	"errors"

	"pathfinder/models"

	"gorm.io/gorm"
)

// AgeGroups lists the accepted age group values in onboarding order.
var AgeGroups = []string{"CHILD", "SCHOOL", "COLLEGE", "GRADUATE", "PROFESSIONAL"}

func isValidAgeGroup(ageGroup string) bool {
	for _, g := range AgeGroups {
		if g == ageGroup {
			return true
		}
	}
	return false
}

// ProfileUpdate is the bounded set of profile fields a learner may submit.
// Nil fields are left untouched. Which fields are required per age group is
// not enforced here.
type ProfileUpdate struct {
	SchoolName        *string  `json:"schoolName"`
	Grade             *int     `json:"grade" validate:"omitempty,gte=1,lte=12"`
	CollegeName       *string  `json:"collegeName"`
	Course            *string  `json:"course"`
	Specialization    *string  `json:"specialization"`
	CurrentYear       *int     `json:"currentYear" validate:"omitempty,gte=1,lte=6"`
	CgpaPercentage    *float64 `json:"cgpaPercentage" validate:"omitempty,gte=0,lte=100"`
	HighestEducation  *string  `json:"highestEducation"`
	YearsOfExperience *float64 `json:"yearsOfExperience" validate:"omitempty,gte=0"`
	CurrentJobTitle   *string  `json:"currentJobTitle"`
	CurrentCompany    *string  `json:"currentCompany"`
	CurrentIndustry   *string  `json:"currentIndustry"`
	TotalExperience   *float64 `json:"totalExperience" validate:"omitempty,gte=0"`
	DomainShiftIntent *bool    `json:"domainShiftIntent"`
	TargetDomain      *string  `json:"targetDomain"`
}

// SkillInput pairs a skill catalog id with a self-rated proficiency level.
type SkillInput struct {
	SkillID          uint `json:"skillId"`
	ProficiencyLevel int  `json:"proficiencyLevel"`
}

// OnboardingService advances the per-user onboarding state machine. Each
// method applies its writes as one transaction; callers serialize concurrent
// calls for the same user.
type OnboardingService struct {
	DB *gorm.DB
}

func NewOnboardingService(db *gorm.DB) *OnboardingService {
	return &OnboardingService{DB: db}
}

// GetStatus returns the user's onboarding progress row.
func (s *OnboardingService) GetStatus(userID uint) (*models.OnboardingProgress, error) {
	var progress models.OnboardingProgress
	if err := s.DB.Where("user_id = ?", userID).First(&progress).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &progress, nil
}

// SetAgeGroup records the learner's age group and upserts their profile.
func (s *OnboardingService) SetAgeGroup(userID uint, ageGroup string) error {
	if !isValidAgeGroup(ageGroup) {
		return &ValidationError{Field: "ageGroup", Reason: "invalid age group"}
	}

	progress, err := s.GetStatus(userID)
	if err != nil {
		return err
	}

	tx := s.DB.Begin()
	if tx.Error != nil {
		return tx.Error
	}

	updates := map[string]interface{}{
		"age_group":    ageGroup,
		"age_detected": true,
		"status":       models.StatusInProgress,
		"current_step": maxStep(progress.CurrentStep, 1),
	}
	if err := tx.Model(&models.OnboardingProgress{}).Where("user_id = ?", userID).Updates(updates).Error; err != nil {
		tx.Rollback()
		return err
	}

	var profile models.LearnerProfile
	err = tx.Where("user_id = ?", userID).First(&profile).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		if err := tx.Create(&models.LearnerProfile{UserID: userID, AgeGroup: ageGroup}).Error; err != nil {
			tx.Rollback()
			return err
		}
	case err != nil:
		tx.Rollback()
		return err
	default:
		if err := tx.Model(&profile).Update("age_group", ageGroup).Error; err != nil {
			tx.Rollback()
			return err
		}
	}

	return tx.Commit().Error
}

// UpdateProfile merges the submitted fields into the learner profile.
func (s *OnboardingService) UpdateProfile(userID uint, update *ProfileUpdate) error {
	progress, err := s.GetStatus(userID)
	if err != nil {
		return err
	}

	var profile models.LearnerProfile
	if err := s.DB.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	tx := s.DB.Begin()
	if tx.Error != nil {
		return tx.Error
	}

	fields := profileFields(update)
	if len(fields) > 0 {
		if err := tx.Model(&profile).Updates(fields).Error; err != nil {
			tx.Rollback()
			return err
		}
	}

	if err := tx.Model(&models.OnboardingProgress{}).Where("user_id = ?", userID).Updates(map[string]interface{}{
		"role_selected": true,
		"status":        models.StatusInProgress,
		"current_step":  maxStep(progress.CurrentStep, 2),
	}).Error; err != nil {
		tx.Rollback()
		return err
	}

	return tx.Commit().Error
}

// SetInterests replaces the learner's full interest set.
func (s *OnboardingService) SetInterests(userID uint, interestIDs []uint) error {
	progress, err := s.GetStatus(userID)
	if err != nil {
		return err
	}

	var profile models.LearnerProfile
	if err := s.DB.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	tx := s.DB.Begin()
	if tx.Error != nil {
		return tx.Error
	}

	if err := tx.Where("learner_profile_id = ?", profile.ID).Delete(&models.LearnerInterest{}).Error; err != nil {
		tx.Rollback()
		return err
	}

	for _, interestID := range interestIDs {
		row := models.LearnerInterest{LearnerProfileID: profile.ID, InterestID: interestID}
		if err := tx.Create(&row).Error; err != nil {
			tx.Rollback()
			return err
		}
	}

	if err := tx.Model(&models.OnboardingProgress{}).Where("user_id = ?", userID).Updates(map[string]interface{}{
		"interests_collected": true,
		"status":              models.StatusInProgress,
		"current_step":        maxStep(progress.CurrentStep, 3),
	}).Error; err != nil {
		tx.Rollback()
		return err
	}

	return tx.Commit().Error
}

// SetSkills replaces the learner's full skill set. A zero proficiency level
// defaults to 1.
func (s *OnboardingService) SetSkills(userID uint, skills []SkillInput) error {
	for _, skill := range skills {
		if skill.ProficiencyLevel < 0 || skill.ProficiencyLevel > 5 {
			return &ValidationError{Field: "proficiencyLevel", Reason: "must be between 1 and 5"}
		}
	}

	progress, err := s.GetStatus(userID)
	if err != nil {
		return err
	}

	var profile models.LearnerProfile
	if err := s.DB.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	tx := s.DB.Begin()
	if tx.Error != nil {
		return tx.Error
	}

	if err := tx.Where("learner_profile_id = ?", profile.ID).Delete(&models.LearnerSkill{}).Error; err != nil {
		tx.Rollback()
		return err
	}

	for _, skill := range skills {
		level := skill.ProficiencyLevel
		if level == 0 {
			level = 1
		}
		row := models.LearnerSkill{
			LearnerProfileID: profile.ID,
			SkillID:          skill.SkillID,
			ProficiencyLevel: level,
		}
		if err := tx.Create(&row).Error; err != nil {
			tx.Rollback()
			return err
		}
	}

	if err := tx.Model(&models.OnboardingProgress{}).Where("user_id = ?", userID).Updates(map[string]interface{}{
		"skills_collected": true,
		"status":           models.StatusInProgress,
		"current_step":     maxStep(progress.CurrentStep, 4),
	}).Error; err != nil {
		tx.Rollback()
		return err
	}

	return tx.Commit().Error
}

// maxStep keeps the step counter monotonic when steps are replayed out of order.
func maxStep(current, step int) int {
	if current > step {
		return current
	}
	return step
}

func profileFields(update *ProfileUpdate) map[string]interface{} {
	fields := map[string]interface{}{}
	if update.SchoolName != nil {
		fields["school_name"] = *update.SchoolName
	}
	if update.Grade != nil {
		fields["grade"] = *update.Grade
	}
	if update.CollegeName != nil {
		fields["college_name"] = *update.CollegeName
	}
	if update.Course != nil {
		fields["course"] = *update.Course
	}
	if update.Specialization != nil {
		fields["specialization"] = *update.Specialization
	}
	if update.CurrentYear != nil {
		fields["current_year"] = *update.CurrentYear
	}
	if update.CgpaPercentage != nil {
		fields["cgpa_percentage"] = *update.CgpaPercentage
	}
	if update.HighestEducation != nil {
		fields["highest_education"] = *update.HighestEducation
	}
	if update.YearsOfExperience != nil {
		fields["years_of_experience"] = *update.YearsOfExperience
	}
	if update.CurrentJobTitle != nil {
		fields["current_job_title"] = *update.CurrentJobTitle
	}
	if update.CurrentCompany != nil {
		fields["current_company"] = *update.CurrentCompany
	}
	if update.CurrentIndustry != nil {
		fields["current_industry"] = *update.CurrentIndustry
	}
	if update.TotalExperience != nil {
		fields["total_experience"] = *update.TotalExperience
	}
	if update.DomainShiftIntent != nil {
		fields["domain_shift_intent"] = *update.DomainShiftIntent
	}
	if update.TargetDomain != nil {
		fields["target_domain"] = *update.TargetDomain
	}
	return fields
}
