package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/lshigami/campuspulse/internal/scoring"
)

// SurveyResponse is a student's single submission. The unique index on StudentID
// is what makes concurrent submissions resolve to one winner.
type SurveyResponse struct {
	ID         string                              `gorm:"primaryKey;type:varchar(36)" json:"id"`
	StudentID  string                              `json:"student_id" gorm:"type:varchar(36);not null;uniqueIndex"`
	Student    *User                               `json:"student,omitempty" gorm:"foreignKey:StudentID"`
	Score      float64                             `json:"score" gorm:"not null"`
	ScoreScale string                              `json:"score_scale" gorm:"type:varchar(16);not null;default:mean5"`
	Answers    datatypes.JSONType[scoring.Answers] `json:"answers"`
	CreatedAt  time.Time                           `json:"created_at" gorm:"index"`
}

func (r *SurveyResponse) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	if r.ScoreScale == "" {
		r.ScoreScale = scoring.ScaleMean.String()
	}
	return nil
}

// ScoreValue returns the stored score with its scale tag. An unknown tag falls back to the mean scale.
func (r *SurveyResponse) ScoreValue() scoring.Score {
	scale, err := scoring.ParseScale(r.ScoreScale)
	if err != nil {
		scale = scoring.ScaleMean
	}
	return scoring.Score{Value: r.Score, Scale: scale}
}

func (r *SurveyResponse) AnswerMap() scoring.Answers {
	a := r.Answers.Data()
	if a == nil {
		return scoring.Answers{}
	}
	return a
}
