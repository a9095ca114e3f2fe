package service

import (
	"context"

	"github.com/lshigami/campuspulse/internal/cache"
	"github.com/lshigami/campuspulse/internal/dto"
	"github.com/lshigami/campuspulse/internal/model"
	"github.com/lshigami/campuspulse/internal/repository"
	"github.com/lshigami/campuspulse/internal/scoring"
	"github.com/rs/zerolog/log"
)

type StudentService interface {
	List(ctx context.Context) ([]dto.StudentResponse, error)
	// Delete removes a student together with their response.
	Delete(ctx context.Context, id string) error
}

type studentService struct {
	users     repository.UserRepository
	responses repository.SurveyResponseRepository
	stats     cache.StatsCache
}

func NewStudentService(users repository.UserRepository, responses repository.SurveyResponseRepository, stats cache.StatsCache) StudentService {
	return &studentService{users: users, responses: responses, stats: stats}
}

func (s *studentService) List(ctx context.Context) ([]dto.StudentResponse, error) {
	students, err := s.users.FindAll(ctx, model.RoleStudent)
	if err != nil {
		return nil, scoring.DataAccess("list students", err)
	}
	responses, err := s.responses.FindAll(ctx, repository.ResponseFilter{})
	if err != nil {
		return nil, scoring.DataAccess("list responses", err)
	}
	responded := make(map[string]bool, len(responses))
	for _, r := range responses {
		responded[r.StudentID] = true
	}

	out := make([]dto.StudentResponse, 0, len(students))
	for i := range students {
		u := &students[i]
		out = append(out, dto.StudentResponse{
			ID:           u.ID,
			Username:     u.Username,
			Name:         u.Name,
			Department:   u.DepartmentName(),
			HasResponded: responded[u.ID],
			CreatedAt:    u.CreatedAt,
		})
	}
	return out, nil
}

func (s *studentService) Delete(ctx context.Context, id string) error {
	deleted, err := s.users.DeleteStudent(ctx, id)
	if err != nil {
		log.Error().Err(err).Str("studentID", id).Msg("Failed to delete student")
		return scoring.DataAccess("delete student", err)
	}
	if !deleted {
		return NewNotFoundError("student not found")
	}
	invalidateStats(ctx, s.stats, "student deleted")
	log.Info().Str("studentID", id).Msg("Student deleted")
	return nil
}
