package service

import (
	"context"
	"strings"

	"github.com/jinzhu/copier"
	"github.com/lshigami/campuspulse/internal/cache"
	"github.com/lshigami/campuspulse/internal/dto"
	"github.com/lshigami/campuspulse/internal/model"
	"github.com/lshigami/campuspulse/internal/repository"
	"github.com/lshigami/campuspulse/internal/scoring"
	"github.com/rs/zerolog/log"
)

type QuestionService interface {
	// List returns the catalog; an empty status means every question.
	List(ctx context.Context, status string) ([]dto.QuestionResponse, error)
	// ActiveGrouped returns active questions grouped by category in catalog order.
	ActiveGrouped(ctx context.Context) ([]dto.QuestionGroup, error)
	Create(ctx context.Context, req dto.CreateQuestionRequest) (*dto.QuestionResponse, error)
	Update(ctx context.Context, id string, req dto.UpdateQuestionRequest) (*dto.QuestionResponse, error)
	Delete(ctx context.Context, id string) error
}

type questionService struct {
	repo  repository.QuestionRepository
	stats cache.StatsCache
}

func NewQuestionService(repo repository.QuestionRepository, stats cache.StatsCache) QuestionService {
	return &questionService{repo: repo, stats: stats}
}

func parseStatus(s string) (model.QuestionStatus, error) {
	status := model.QuestionStatus(strings.ToUpper(strings.TrimSpace(s)))
	if status == "" {
		return "", nil
	}
	if !status.Valid() {
		return "", NewInvalidError("status must be ACTIVE or INACTIVE")
	}
	return status, nil
}

func toQuestionResponse(q *model.Question) dto.QuestionResponse {
	var resp dto.QuestionResponse
	copier.Copy(&resp, q)
	resp.Status = string(q.Status)
	return resp
}

func (s *questionService) List(ctx context.Context, status string) ([]dto.QuestionResponse, error) {
	st, err := parseStatus(status)
	if err != nil {
		return nil, err
	}
	questions, err := s.repo.FindAll(ctx, repository.QuestionFilter{Status: st})
	if err != nil {
		return nil, scoring.DataAccess("list questions", err)
	}
	resp := make([]dto.QuestionResponse, 0, len(questions))
	for i := range questions {
		resp = append(resp, toQuestionResponse(&questions[i]))
	}
	return resp, nil
}

func (s *questionService) ActiveGrouped(ctx context.Context) ([]dto.QuestionGroup, error) {
	questions, err := s.repo.FindAll(ctx, repository.QuestionFilter{Status: model.QuestionActive})
	if err != nil {
		return nil, scoring.DataAccess("list questions", err)
	}
	groups := []dto.QuestionGroup{}
	index := map[string]int{}
	for i := range questions {
		q := &questions[i]
		gi, ok := index[q.Category]
		if !ok {
			gi = len(groups)
			index[q.Category] = gi
			groups = append(groups, dto.QuestionGroup{Category: q.Category})
		}
		groups[gi].Questions = append(groups[gi].Questions, toQuestionResponse(q))
	}
	return groups, nil
}

func (s *questionService) Create(ctx context.Context, req dto.CreateQuestionRequest) (*dto.QuestionResponse, error) {
	text, category := strings.TrimSpace(req.Text), strings.TrimSpace(req.Category)
	if text == "" || category == "" {
		return nil, NewInvalidError("text and category are required")
	}
	status, err := parseStatus(req.Status)
	if err != nil {
		return nil, err
	}
	if status == "" {
		status = model.QuestionActive
	}

	question := model.Question{Text: text, Category: category, Status: status}
	if err := s.repo.Create(ctx, &question); err != nil {
		log.Error().Err(err).Msg("Failed to create question")
		return nil, scoring.DataAccess("create question", err)
	}
	invalidateStats(ctx, s.stats, "question created")
	resp := toQuestionResponse(&question)
	return &resp, nil
}

func (s *questionService) Update(ctx context.Context, id string, req dto.UpdateQuestionRequest) (*dto.QuestionResponse, error) {
	text, category := strings.TrimSpace(req.Text), strings.TrimSpace(req.Category)
	if text == "" || category == "" {
		return nil, NewInvalidError("text and category are required")
	}
	status, err := parseStatus(req.Status)
	if err != nil {
		return nil, err
	}
	if status == "" {
		return nil, NewInvalidError("status is required")
	}

	question, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, scoring.DataAccess("find question", err)
	}
	if question == nil {
		return nil, NewNotFoundError("question not found")
	}
	question.Text = text
	question.Category = category
	question.Status = status
	if err := s.repo.Update(ctx, question); err != nil {
		log.Error().Err(err).Str("questionID", id).Msg("Failed to update question")
		return nil, scoring.DataAccess("update question", err)
	}
	invalidateStats(ctx, s.stats, "question updated")
	resp := toQuestionResponse(question)
	return &resp, nil
}

// Delete removes the question. Stored answers that reference it stay as they are.
func (s *questionService) Delete(ctx context.Context, id string) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return scoring.DataAccess("delete question", err)
	}
	if !deleted {
		return NewNotFoundError("question not found")
	}
	invalidateStats(ctx, s.stats, "question deleted")
	return nil
}
