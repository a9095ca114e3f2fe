package repository

import (
	"context"
	"errors"

	"github.com/lshigami/campuspulse/internal/model"
	"github.com/lshigami/campuspulse/internal/scoring"
	"gorm.io/gorm"
)

type ResponseFilter struct {
	DepartmentID string
}

type SurveyResponseRepository interface {
	// Create inserts a new response. A second response for the same student,
	// including one that loses a concurrent race, returns scoring.ErrAlreadySubmitted.
	Create(ctx context.Context, response *model.SurveyResponse) error
	FindByStudentID(ctx context.Context, studentID string) (*model.SurveyResponse, error)
	FindByID(ctx context.Context, id string) (*model.SurveyResponse, error)
	// FindAll returns responses newest first with student and department preloaded.
	FindAll(ctx context.Context, filter ResponseFilter) ([]model.SurveyResponse, error)
	DeleteByStudentID(ctx context.Context, studentID string) (bool, error)
	Count(ctx context.Context) (int64, error)
}

type surveyResponseRepository struct {
	db *gorm.DB
}

func NewSurveyResponseRepository(db *gorm.DB) SurveyResponseRepository {
	return &surveyResponseRepository{db: db}
}

func (r *surveyResponseRepository) Create(ctx context.Context, response *model.SurveyResponse) error {
	err := r.db.WithContext(ctx).Create(response).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return scoring.ErrAlreadySubmitted
	}
	return err
}

func (r *surveyResponseRepository) FindByStudentID(ctx context.Context, studentID string) (*model.SurveyResponse, error) {
	return r.first(ctx, "survey_responses.student_id = ?", studentID)
}

func (r *surveyResponseRepository) FindByID(ctx context.Context, id string) (*model.SurveyResponse, error) {
	return r.first(ctx, "survey_responses.id = ?", id)
}

func (r *surveyResponseRepository) first(ctx context.Context, query string, arg any) (*model.SurveyResponse, error) {
	var resp model.SurveyResponse
	err := r.db.WithContext(ctx).
		Preload("Student.Department").
		Where(query, arg).
		First(&resp).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &resp, nil
}

func (r *surveyResponseRepository) FindAll(ctx context.Context, filter ResponseFilter) ([]model.SurveyResponse, error) {
	var responses []model.SurveyResponse
	query := r.db.WithContext(ctx).Preload("Student.Department")
	if filter.DepartmentID != "" {
		query = query.Where("student_id IN (?)",
			r.db.Model(&model.User{}).Select("id").Where("department_id = ?", filter.DepartmentID))
	}
	if err := query.Order("created_at DESC").Find(&responses).Error; err != nil {
		return nil, err
	}
	return responses, nil
}

func (r *surveyResponseRepository) DeleteByStudentID(ctx context.Context, studentID string) (bool, error) {
	res := r.db.WithContext(ctx).Where("student_id = ?", studentID).Delete(&model.SurveyResponse{})
	return res.RowsAffected > 0, res.Error
}

func (r *surveyResponseRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.SurveyResponse{}).Count(&n).Error
	return n, err
}
