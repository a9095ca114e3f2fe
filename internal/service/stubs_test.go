package service

import (
	"context"
	"strings"
	"sync"

	"github.com/lshigami/campuspulse/internal/dto"
	"github.com/lshigami/campuspulse/internal/model"
	"github.com/lshigami/campuspulse/internal/repository"
	"github.com/lshigami/campuspulse/internal/scoring"
)

type stubQuestions struct {
	items []model.Question
	err   error
}

func (s *stubQuestions) Create(_ context.Context, q *model.Question) error {
	if s.err != nil {
		return s.err
	}
	if q.ID == "" {
		q.ID = "q" + string(rune('a'+len(s.items)))
	}
	s.items = append(s.items, *q)
	return nil
}

func (s *stubQuestions) FindByID(_ context.Context, id string) (*model.Question, error) {
	if s.err != nil {
		return nil, s.err
	}
	for i := range s.items {
		if s.items[i].ID == id {
			q := s.items[i]
			return &q, nil
		}
	}
	return nil, nil
}

func (s *stubQuestions) FindAll(_ context.Context, f repository.QuestionFilter) ([]model.Question, error) {
	if s.err != nil {
		return nil, s.err
	}
	var out []model.Question
	for _, q := range s.items {
		if f.Status == "" || q.Status == f.Status {
			out = append(out, q)
		}
	}
	return out, nil
}

func (s *stubQuestions) Update(_ context.Context, q *model.Question) error {
	for i := range s.items {
		if s.items[i].ID == q.ID {
			s.items[i] = *q
		}
	}
	return s.err
}

func (s *stubQuestions) Delete(_ context.Context, id string) (bool, error) {
	if s.err != nil {
		return false, s.err
	}
	for i := range s.items {
		if s.items[i].ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

type stubResponses struct {
	mu    sync.Mutex
	items []model.SurveyResponse
	users *stubUsers
	err   error
}

func (s *stubResponses) Create(_ context.Context, r *model.SurveyResponse) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	for _, existing := range s.items {
		if existing.StudentID == r.StudentID {
			return scoring.ErrAlreadySubmitted
		}
	}
	if r.ID == "" {
		r.ID = "r-" + r.StudentID
	}
	// newest first, like the real store
	s.items = append([]model.SurveyResponse{*r}, s.items...)
	return nil
}

func (s *stubResponses) withStudent(r model.SurveyResponse) *model.SurveyResponse {
	if s.users != nil {
		if u, _ := s.users.FindByID(context.Background(), r.StudentID); u != nil {
			r.Student = u
		}
	}
	return &r
}

func (s *stubResponses) FindByStudentID(_ context.Context, id string) (*model.SurveyResponse, error) {
	if s.err != nil {
		return nil, s.err
	}
	for _, r := range s.items {
		if r.StudentID == id {
			return s.withStudent(r), nil
		}
	}
	return nil, nil
}

func (s *stubResponses) FindByID(_ context.Context, id string) (*model.SurveyResponse, error) {
	if s.err != nil {
		return nil, s.err
	}
	for _, r := range s.items {
		if r.ID == id {
			return s.withStudent(r), nil
		}
	}
	return nil, nil
}

func (s *stubResponses) FindAll(_ context.Context, f repository.ResponseFilter) ([]model.SurveyResponse, error) {
	if s.err != nil {
		return nil, s.err
	}
	out := []model.SurveyResponse{}
	for _, r := range s.items {
		full := s.withStudent(r)
		if f.DepartmentID != "" {
			if full.Student == nil || full.Student.DepartmentID == nil || *full.Student.DepartmentID != f.DepartmentID {
				continue
			}
		}
		out = append(out, *full)
	}
	return out, nil
}

func (s *stubResponses) DeleteByStudentID(_ context.Context, id string) (bool, error) {
	if s.err != nil {
		return false, s.err
	}
	for i, r := range s.items {
		if r.StudentID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (s *stubResponses) Count(context.Context) (int64, error) {
	return int64(len(s.items)), s.err
}

type stubUsers struct {
	items []model.User
	depts *stubDepartments
	err   error
}

func (s *stubUsers) Create(_ context.Context, u *model.User) error {
	if s.err != nil {
		return s.err
	}
	for _, existing := range s.items {
		if existing.Username == u.Username {
			return repository.ErrUsernameTaken
		}
	}
	if u.ID == "" {
		u.ID = "u-" + u.Username
	}
	s.items = append(s.items, *u)
	return nil
}

func (s *stubUsers) withDept(u model.User) *model.User {
	if s.depts != nil && u.DepartmentID != nil {
		u.Department, _ = s.depts.FindByID(context.Background(), *u.DepartmentID)
	}
	return &u
}

func (s *stubUsers) FindByID(_ context.Context, id string) (*model.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	for _, u := range s.items {
		if u.ID == id {
			return s.withDept(u), nil
		}
	}
	return nil, nil
}

func (s *stubUsers) FindByUsername(_ context.Context, name string) (*model.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	for _, u := range s.items {
		if u.Username == name {
			return s.withDept(u), nil
		}
	}
	return nil, nil
}

func (s *stubUsers) FindAll(_ context.Context, role model.Role) ([]model.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	var out []model.User
	for _, u := range s.items {
		if role == "" || u.Role == role {
			out = append(out, *s.withDept(u))
		}
	}
	return out, nil
}

func (s *stubUsers) DeleteStudent(_ context.Context, id string) (bool, error) {
	if s.err != nil {
		return false, s.err
	}
	for i, u := range s.items {
		if u.ID == id && u.Role == model.RoleStudent {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

type stubDepartments struct {
	items []model.Department
	err   error
}

func (s *stubDepartments) FindAll(context.Context) ([]model.Department, error) {
	return s.items, s.err
}

func (s *stubDepartments) FindByID(_ context.Context, id string) (*model.Department, error) {
	if s.err != nil {
		return nil, s.err
	}
	for _, d := range s.items {
		if d.ID == id {
			d := d
			return &d, nil
		}
	}
	return nil, nil
}

func (s *stubDepartments) FindByName(_ context.Context, name string) (*model.Department, error) {
	if s.err != nil {
		return nil, s.err
	}
	for _, d := range s.items {
		if strings.EqualFold(d.Name, name) {
			d := d
			return &d, nil
		}
	}
	return nil, nil
}

type stubCache struct {
	stored      *dto.DashboardResponse
	gets        int
	invalidated int
}

func (c *stubCache) GetDashboard(context.Context) (*dto.DashboardResponse, error) {
	c.gets++
	return c.stored, nil
}

func (c *stubCache) SetDashboard(_ context.Context, d *dto.DashboardResponse) error {
	c.stored = d
	return nil
}

func (c *stubCache) Invalidate(context.Context) error {
	c.invalidated++
	c.stored = nil
	return nil
}

func (c *stubCache) Close() error { return nil }

type stubGenerator struct {
	reply  string
	err    error
	prompt string
}

func (g *stubGenerator) GenerateText(_ context.Context, prompt string) (string, error) {
	g.prompt = prompt
	return g.reply, g.err
}

// fixture wires every stub around two departments, two students and three questions.
type fixture struct {
	questions *stubQuestions
	responses *stubResponses
	users     *stubUsers
	depts     *stubDepartments
	cache     *stubCache
}

func strPtr(s string) *string { return &s }

func newFixture() *fixture {
	depts := &stubDepartments{items: []model.Department{{ID: "cs", Name: "Computer Science"}, {ID: "me", Name: "Mechanical"}}}
	users := &stubUsers{depts: depts, items: []model.User{
		{ID: "admin", Username: "admin", Role: model.RoleAdmin, Name: "System Admin"},
		{ID: "s1", Username: "R001", Role: model.RoleStudent, Name: "Asha Rao", DepartmentID: strPtr("cs")},
		{ID: "s2", Username: "R002", Role: model.RoleStudent, Name: "Ben Ito", DepartmentID: strPtr("me")},
	}}
	return &fixture{
		questions: &stubQuestions{items: []model.Question{
			{ID: "1", Text: "Workload?", Category: "Academics", Status: model.QuestionActive},
			{ID: "2", Text: "Labs?", Category: "Facilities", Status: model.QuestionActive},
			{ID: "3", Text: "Old question", Category: "Academics", Status: model.QuestionInactive},
		}},
		responses: &stubResponses{users: users},
		users:     users,
		depts:     depts,
		cache:     &stubCache{},
	}
}

func (f *fixture) survey() SurveyService {
	return NewSurveyService(f.questions, f.responses, f.cache)
}

func (f *fixture) analytics() AnalyticsService {
	return NewAnalyticsService(f.responses, f.users, f.depts, f.questions, f.cache)
}
