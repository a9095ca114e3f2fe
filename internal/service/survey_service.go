package service

import (
	"context"
	"errors"

	"github.com/lshigami/campuspulse/internal/cache"
	"github.com/lshigami/campuspulse/internal/dto"
	"github.com/lshigami/campuspulse/internal/model"
	"github.com/lshigami/campuspulse/internal/repository"
	"github.com/lshigami/campuspulse/internal/scoring"
	"github.com/rs/zerolog/log"
	"gorm.io/datatypes"
)

type SurveyService interface {
	// Submit scores and stores a student's answers. A second submission fails with scoring.ErrAlreadySubmitted.
	Submit(ctx context.Context, studentID string, req dto.SubmitSurveyRequest) (*dto.SurveyResponseDTO, error)
	// Get returns the student's own response with a breakdown against the current catalog.
	Get(ctx context.Context, studentID string) (*dto.SurveyResponseDTO, error)
	// Clear deletes the student's response so they can submit again.
	Clear(ctx context.Context, studentID string) error
}

type surveyService struct {
	questions repository.QuestionRepository
	responses repository.SurveyResponseRepository
	stats     cache.StatsCache
}

func NewSurveyService(questions repository.QuestionRepository, responses repository.SurveyResponseRepository, stats cache.StatsCache) SurveyService {
	return &surveyService{questions: questions, responses: responses, stats: stats}
}

func (s *surveyService) Submit(ctx context.Context, studentID string, req dto.SubmitSurveyRequest) (*dto.SurveyResponseDTO, error) {
	all, err := s.questions.FindAll(ctx, repository.QuestionFilter{})
	if err != nil {
		return nil, scoring.DataAccess("list questions", err)
	}
	active := make(map[string]bool, len(all))
	for _, q := range all {
		if q.Status == model.QuestionActive {
			active[q.ID] = true
		}
	}

	accepted := scoring.Answers{}
	for key, v := range req.Answers {
		id, ok := scoring.QuestionID(key)
		if !ok || !active[id] {
			log.Warn().Str("studentID", studentID).Str("key", key).Msg("Submit: answer for unknown or inactive question, skipping")
			continue
		}
		accepted[key] = v
	}

	score, err := scoring.ComputeScore(accepted.Values())
	if err != nil {
		return nil, err
	}

	resp := &model.SurveyResponse{
		StudentID:  studentID,
		Score:      score.Value,
		ScoreScale: score.Scale.String(),
		Answers:    datatypes.NewJSONType(accepted),
	}
	if err := s.responses.Create(ctx, resp); err != nil {
		if errors.Is(err, scoring.ErrAlreadySubmitted) {
			return nil, err
		}
		log.Error().Err(err).Str("studentID", studentID).Msg("Submit: failed to store response")
		return nil, scoring.DataAccess("create response", err)
	}
	invalidateStats(ctx, s.stats, "survey submitted")
	log.Info().Str("studentID", studentID).Float64("score", score.Value).Int("answers", len(accepted)).Msg("Survey submitted")

	out := toResponseDTO(resp, catalogOf(all), viewDetail)
	return &out, nil
}

func (s *surveyService) Get(ctx context.Context, studentID string) (*dto.SurveyResponseDTO, error) {
	resp, err := s.responses.FindByStudentID(ctx, studentID)
	if err != nil {
		return nil, scoring.DataAccess("find response", err)
	}
	if resp == nil {
		return nil, NewNotFoundError("no survey response yet")
	}
	all, err := s.questions.FindAll(ctx, repository.QuestionFilter{})
	if err != nil {
		return nil, scoring.DataAccess("list questions", err)
	}
	out := toResponseDTO(resp, catalogOf(all), viewDetail)
	return &out, nil
}

func (s *surveyService) Clear(ctx context.Context, studentID string) error {
	deleted, err := s.responses.DeleteByStudentID(ctx, studentID)
	if err != nil {
		return scoring.DataAccess("delete response", err)
	}
	if !deleted {
		return NewNotFoundError("no survey response to clear")
	}
	invalidateStats(ctx, s.stats, "survey cleared")
	return nil
}
