package services

import (
	"fmt"

	"pathfinder/models"

	"gorm.io/gorm"
)

// PathTemplate maps a career to an ordered module list and a duration in weeks.
type PathTemplate struct {
	Modules  []string
	Duration int
}

// PathTemplates is the template table keyed by career title. A "default"
// entry covers unrecognized careers.
type PathTemplates map[string]PathTemplate

// DefaultPathTemplates returns the built-in curriculum templates.
func DefaultPathTemplates() PathTemplates {
	return PathTemplates{
		"B.Tech": {
			Modules: []string{
				"Introduction to Computer Science",
				"Programming Fundamentals (Python/C++)",
				"Mathematics for Engineering",
				"Data Structures & Algorithms",
				"Web Development Foundations",
			},
			Duration: 16,
		},
		"B.Sc": {
			Modules: []string{
				"Scientific Foundations",
				"Analytical Thinking",
				"Statistics & Probability",
				"Research Methodologies",
				"Domain-Specific Elective",
			},
			Duration: 12,
		},
		"MCA": {
			Modules: []string{
				"Advanced Programming Concepts",
				"Database Management Systems",
				"Software Project Management",
				"Full Stack Development",
				"Cloud Computing Basics",
			},
			Duration: 14,
		},
		"BCA": {
			Modules: []string{
				"Digital Electronics",
				"Object-Oriented Programming",
				"Operating Systems",
				"Networking Fundamentals",
				"Management Information Systems",
			},
			Duration: 12,
		},
		"default": {
			Modules: []string{
				"Core Industry Skills",
				"Communication & Soft Skills",
				"Critical Thinking",
				"Digital Literacy",
				"Personalized Growth Plan",
			},
			Duration: 10,
		},
	}
}

// LearningPathService expands a career template into a path with ordered
// modules. Generate is not idempotent; the finalize saga calls it at most
// once per run.
type LearningPathService struct {
	DB        *gorm.DB
	Templates PathTemplates
}

func NewLearningPathService(db *gorm.DB, templates PathTemplates) *LearningPathService {
	if templates == nil {
		templates = DefaultPathTemplates()
	}
	return &LearningPathService{DB: db, Templates: templates}
}

// Generate creates a learning path and its modules for the predicted career.
func (s *LearningPathService) Generate(userID uint, careerTitle string) (*models.LearningPath, error) {
	template, ok := s.Templates[careerTitle]
	if !ok {
		template, ok = s.Templates["default"]
		if !ok {
			return nil, fmt.Errorf("no learning path template for %q and no default", careerTitle)
		}
	}

	path := models.LearningPath{
		UserID:            userID,
		PathName:          fmt.Sprintf("Roadmap to %s", careerTitle),
		Description:       fmt.Sprintf("This personalized learning path is designed to bridge the gap between your current skills and a successful career in %s.", careerTitle),
		TargetCareer:      careerTitle,
		DifficultyLevel:   "Beginner",
		EstimatedDuration: template.Duration,
	}

	tx := s.DB.Begin()
	if tx.Error != nil {
		return nil, tx.Error
	}

	if err := tx.Create(&path).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	for i, title := range template.Modules {
		module := models.LearningModule{
			PathID:        path.ID,
			Title:         title,
			Description:   fmt.Sprintf("Module focused on mastering %s concepts and practical applications.", title),
			OrderIndex:    i + 1,
			EstimatedTime: 480, // 8 hours per module
		}
		if err := tx.Create(&module).Error; err != nil {
			tx.Rollback()
			return nil, err
		}
	}

	if err := tx.Commit().Error; err != nil {
		return nil, err
	}

	return &path, nil
}
