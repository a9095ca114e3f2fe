package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/lshigami/campuspulse/internal/model"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var DefaultDepartments = []string{"Computer Science", "Electrical", "Mechanical", "Civil", "Electronics"}

type seedCategory struct {
	Title     string
	Questions []string
}

var defaultQuestions = []seedCategory{
	{
		Title: "Academics",
		Questions: []string{
			"How manageable is your academic workload?",
			"How satisfied are you with the quality of teaching?",
			"How clear and understandable are the lectures?",
			"How supportive are your faculty members?",
			"How fair is the evaluation and grading system?",
		},
	},
	{
		Title: "Facilities & Infrastructure",
		Questions: []string{
			"How would you rate classroom infrastructure?",
			"How satisfied are you with laboratory facilities?",
			"How would you rate the library resources?",
			"How satisfied are you with hostel/campus facilities?",
			"How clean and well-maintained is the campus?",
		},
	},
	{
		Title: "Learning Resources",
		Questions: []string{
			"How satisfied are you with access to digital learning resources?",
			"How reliable is the campus internet/WiFi?",
			"How useful are workshops and seminars conducted?",
		},
	},
	{
		Title: "Personal Well-being",
		Questions: []string{
			"How well are you able to manage stress?",
			"How supported do you feel emotionally on campus?",
			"How safe do you feel within the campus?",
			"How satisfied are you with your work-life balance?",
		},
	},
	{
		Title: "Social & Campus Life",
		Questions: []string{
			"How satisfied are you with your social life on campus?",
			"How inclusive and welcoming is the campus environment?",
			"How satisfied are you with extracurricular activities?",
			"How comfortable are you expressing your opinions freely?",
		},
	},
	{
		Title: "Career & Growth",
		Questions: []string{
			"How satisfied are you with placement support?",
			"How confident do you feel about your career readiness?",
			"How helpful are internships/industry exposure opportunities?",
		},
	},
	{
		Title:     "Overall",
		Questions: []string{"Overall, how happy are you with your college experience?"},
	},
}

type SeedOptions struct {
	AdminUsername string
	AdminPassword string
}

// Seed creates departments, the admin account and the default questions if they are missing.
// Running it again is a no-op.
func Seed(ctx context.Context, db *gorm.DB, opts SeedOptions) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, name := range DefaultDepartments {
			dept := model.Department{Name: name}
			if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&dept).Error; err != nil {
				return fmt.Errorf("seed department %s: %w", name, err)
			}
		}

		if err := seedAdmin(tx, opts); err != nil {
			return err
		}

		var count int64
		if err := tx.Model(&model.Question{}).Count(&count).Error; err != nil {
			return fmt.Errorf("count questions: %w", err)
		}
		if count > 0 {
			log.Info().Int64("count", count).Msg("Questions already exist, skipping seed")
			return nil
		}

		// Spaced timestamps keep catalog order equal to seed order.
		base := time.Now().UTC()
		var questions []model.Question
		for _, cat := range defaultQuestions {
			for _, text := range cat.Questions {
				questions = append(questions, model.Question{
					Text:      text,
					Category:  cat.Title,
					Status:    model.QuestionActive,
					CreatedAt: base.Add(time.Duration(len(questions)) * time.Millisecond),
				})
			}
		}
		if err := tx.Create(&questions).Error; err != nil {
			return fmt.Errorf("seed questions: %w", err)
		}
		log.Info().Int("count", len(questions)).Msg("Questions seeded")
		return nil
	})
}

func seedAdmin(tx *gorm.DB, opts SeedOptions) error {
	if opts.AdminUsername == "" || opts.AdminPassword == "" {
		log.Warn().Msg("Admin credentials not configured, skipping admin seed")
		return nil
	}
	var existing model.User
	err := tx.Where("username = ?", opts.AdminUsername).First(&existing).Error
	if err == nil {
		log.Info().Str("username", opts.AdminUsername).Msg("Admin user already exists")
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("lookup admin: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(opts.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}
	admin := model.User{
		Username: opts.AdminUsername,
		Password: string(hash),
		Role:     model.RoleAdmin,
		Name:     "System Admin",
	}
	if err := tx.Create(&admin).Error; err != nil {
		return fmt.Errorf("create admin: %w", err)
	}
	log.Info().Str("username", admin.Username).Msg("Admin user created")
	return nil
}
