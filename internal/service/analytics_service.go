package service

import (
	"context"
	"strings"
	"time"

	"github.com/lshigami/campuspulse/internal/cache"
	"github.com/lshigami/campuspulse/internal/dto"
	"github.com/lshigami/campuspulse/internal/model"
	"github.com/lshigami/campuspulse/internal/repository"
	"github.com/lshigami/campuspulse/internal/scoring"
	"github.com/rs/zerolog/log"
)

const recentResponseLimit = 10

type AnalyticsService interface {
	// Dashboard returns the rollup for the admin home page, from cache when possible.
	Dashboard(ctx context.Context) (*dto.DashboardResponse, error)
	// Rollup computes the raw rollup without touching the cache.
	Rollup(ctx context.Context) (*scoring.Rollup, error)
	ListResponses(ctx context.Context, q dto.ResponseListQuery) ([]dto.SurveyResponseDTO, error)
	GetResponse(ctx context.Context, id string) (*dto.SurveyResponseDTO, error)
}

type analyticsService struct {
	responses   repository.SurveyResponseRepository
	users       repository.UserRepository
	departments repository.DepartmentRepository
	questions   repository.QuestionRepository
	stats       cache.StatsCache
	now         func() time.Time
}

func NewAnalyticsService(
	responses repository.SurveyResponseRepository,
	users repository.UserRepository,
	departments repository.DepartmentRepository,
	questions repository.QuestionRepository,
	stats cache.StatsCache,
) AnalyticsService {
	return &analyticsService{
		responses:   responses,
		users:       users,
		departments: departments,
		questions:   questions,
		stats:       stats,
		now:         time.Now,
	}
}

type snapshot struct {
	rollup    scoring.Rollup
	responses []model.SurveyResponse
	catalog   *scoring.Catalog
}

// load reads every collaborator. Any failure aborts the rollup rather than yielding zeros.
func (s *analyticsService) load(ctx context.Context) (*snapshot, error) {
	responses, err := s.responses.FindAll(ctx, repository.ResponseFilter{})
	if err != nil {
		return nil, scoring.DataAccess("list responses", err)
	}
	depts, err := s.departments.FindAll(ctx)
	if err != nil {
		return nil, scoring.DataAccess("list departments", err)
	}
	users, err := s.users.FindAll(ctx, "")
	if err != nil {
		return nil, scoring.DataAccess("list users", err)
	}
	questions, err := s.questions.FindAll(ctx, repository.QuestionFilter{})
	if err != nil {
		return nil, scoring.DataAccess("list questions", err)
	}

	records := make([]scoring.ResponseRecord, 0, len(responses))
	for i := range responses {
		r := &responses[i]
		records = append(records, scoring.ResponseRecord{StudentID: r.StudentID, Score: r.ScoreValue(), Answers: r.AnswerMap()})
	}
	departments := make([]scoring.Department, 0, len(depts))
	for _, d := range depts {
		departments = append(departments, scoring.Department{ID: d.ID, Name: d.Name})
	}
	members := make([]scoring.Member, 0, len(users))
	for _, u := range users {
		m := scoring.Member{ID: u.ID, IsStudent: u.IsStudent()}
		if u.DepartmentID != nil {
			m.DepartmentID = *u.DepartmentID
		}
		members = append(members, m)
	}

	catalog := catalogOf(questions)
	return &snapshot{
		rollup:    scoring.ComputeRollup(records, departments, members, catalog),
		responses: responses,
		catalog:   catalog,
	}, nil
}

func (s *analyticsService) Rollup(ctx context.Context) (*scoring.Rollup, error) {
	snap, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	return &snap.rollup, nil
}

func (s *analyticsService) Dashboard(ctx context.Context) (*dto.DashboardResponse, error) {
	if cached, err := s.stats.GetDashboard(ctx); err != nil {
		log.Warn().Err(err).Msg("Dashboard: cache read failed, recomputing")
	} else if cached != nil {
		return cached, nil
	}

	snap, err := s.load(ctx)
	if err != nil {
		log.Error().Err(err).Msg("Dashboard: failed to load data")
		return nil, err
	}
	r := snap.rollup

	out := &dto.DashboardResponse{
		TotalStudents:   r.TotalStudents,
		TotalResponses:  r.TotalResponses,
		AvgScore:        toScoreDTO(scoring.MeanScore(r.AvgScore)),
		DepartmentStats: make([]dto.DepartmentStatDTO, 0, len(r.DepartmentStats)),
		CategoryStats:   make([]dto.CategoryScoreDTO, 0, len(r.CategoryStats)),
		RecentResponses: []dto.SurveyResponseDTO{},
		GeneratedAt:     s.now().UTC(),
	}
	if r.TotalStudents > 0 {
		out.ParticipationPct = scoring.Round1(float64(r.TotalResponses) / float64(r.TotalStudents) * 100)
	}
	for _, d := range r.DepartmentStats {
		out.DepartmentStats = append(out.DepartmentStats, toDepartmentStatDTO(d))
	}
	for _, c := range r.CategoryStats {
		out.CategoryStats = append(out.CategoryStats, toCategoryDTO(c))
	}
	if r.LowestDepartment != nil {
		d := toDepartmentStatDTO(*r.LowestDepartment)
		out.LowestDepartment = &d
	}
	if r.LowestCategory != nil {
		c := toCategoryDTO(*r.LowestCategory)
		out.LowestCategory = &c
	}
	for i := range snap.responses {
		if i == recentResponseLimit {
			break
		}
		out.RecentResponses = append(out.RecentResponses, toResponseDTO(&snap.responses[i], snap.catalog, viewSummary))
	}

	if err := s.stats.SetDashboard(ctx, out); err != nil {
		log.Warn().Err(err).Msg("Dashboard: cache write failed")
	}
	return out, nil
}

func (s *analyticsService) ListResponses(ctx context.Context, q dto.ResponseListQuery) ([]dto.SurveyResponseDTO, error) {
	var filter repository.ResponseFilter
	if name := strings.TrimSpace(q.Department); name != "" && !strings.EqualFold(name, "all") {
		dept, err := s.departments.FindByName(ctx, name)
		if err != nil {
			return nil, scoring.DataAccess("find department", err)
		}
		if dept == nil {
			return []dto.SurveyResponseDTO{}, nil
		}
		filter.DepartmentID = dept.ID
	}

	responses, err := s.responses.FindAll(ctx, filter)
	if err != nil {
		return nil, scoring.DataAccess("list responses", err)
	}
	questions, err := s.questions.FindAll(ctx, repository.QuestionFilter{})
	if err != nil {
		return nil, scoring.DataAccess("list questions", err)
	}
	catalog := catalogOf(questions)

	search := strings.ToLower(strings.TrimSpace(q.Search))
	out := make([]dto.SurveyResponseDTO, 0, len(responses))
	for i := range responses {
		row := toResponseDTO(&responses[i], catalog, viewBreakdown)
		if search != "" && !matchesSearch(row, search) {
			continue
		}
		out = append(out, row)
	}
	return out, nil
}

func matchesSearch(row dto.SurveyResponseDTO, needle string) bool {
	for _, field := range []string{row.StudentName, row.RollNo, row.Department} {
		if strings.Contains(strings.ToLower(field), needle) {
			return true
		}
	}
	return false
}

func (s *analyticsService) GetResponse(ctx context.Context, id string) (*dto.SurveyResponseDTO, error) {
	resp, err := s.responses.FindByID(ctx, id)
	if err != nil {
		return nil, scoring.DataAccess("find response", err)
	}
	if resp == nil {
		return nil, NewNotFoundError("response not found")
	}
	questions, err := s.questions.FindAll(ctx, repository.QuestionFilter{})
	if err != nil {
		return nil, scoring.DataAccess("list questions", err)
	}
	out := toResponseDTO(resp, catalogOf(questions), viewDetail)
	return &out, nil
}
