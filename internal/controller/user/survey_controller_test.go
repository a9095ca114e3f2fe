package user

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/campuspulse/internal/auth"
	"github.com/lshigami/campuspulse/internal/dto"
	"github.com/lshigami/campuspulse/internal/middleware"
	"github.com/lshigami/campuspulse/internal/model"
	"github.com/lshigami/campuspulse/internal/scoring"
	"github.com/lshigami/campuspulse/internal/service"
)

type stubSurvey struct {
	gotStudent string
	gotAnswers map[string]int
	submitErr  error
	stored     *dto.SurveyResponseDTO
}

func (s *stubSurvey) Submit(_ context.Context, studentID string, req dto.SubmitSurveyRequest) (*dto.SurveyResponseDTO, error) {
	s.gotStudent, s.gotAnswers = studentID, req.Answers
	if s.submitErr != nil {
		return nil, s.submitErr
	}
	s.stored = &dto.SurveyResponseDTO{StudentID: studentID, Score: dto.ScoreDTO{Mean: 4, Percentage: 80, Severity: "High"}}
	return s.stored, nil
}

func (s *stubSurvey) Get(_ context.Context, studentID string) (*dto.SurveyResponseDTO, error) {
	if s.stored == nil {
		return nil, service.NewNotFoundError("no survey response yet")
	}
	return s.stored, nil
}

func (s *stubSurvey) Clear(context.Context, string) error {
	if s.stored == nil {
		return service.NewNotFoundError("no survey response to clear")
	}
	s.stored = nil
	return nil
}

type stubQuestionService struct {
	service.QuestionService
	groups []dto.QuestionGroup
}

func (s *stubQuestionService) ActiveGrouped(context.Context) ([]dto.QuestionGroup, error) {
	return s.groups, nil
}

func newSurveyRouter(survey service.SurveyService, questions service.QuestionService, claims *auth.Claims) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	c := NewSurveyController(questions, survey)
	g := r.Group("/api/v1/student", func(ctx *gin.Context) {
		if claims != nil {
			middleware.SetClaims(ctx, claims)
		}
		ctx.Next()
	})
	g.GET("/questions", c.GetQuestions)
	g.POST("/survey", c.SubmitSurvey)
	g.GET("/survey", c.GetMySurvey)
	g.DELETE("/survey", c.ClearMySurvey)
	return r
}

func do(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestSubmitSurveyFlow(t *testing.T) {
	survey := &stubSurvey{}
	r := newSurveyRouter(survey, &stubQuestionService{}, &auth.Claims{UID: "s1", Role: model.RoleStudent})

	if w := do(r, http.MethodGet, "/api/v1/student/survey", ""); w.Code != http.StatusNotFound {
		t.Fatalf("get before submit = %d", w.Code)
	}

	w := do(r, http.MethodPost, "/api/v1/student/survey", `{"answers":{"q-1":4,"q-2":4}}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("submit = %d: %s", w.Code, w.Body.String())
	}
	var resp dto.SurveyResponseDTO
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Score.Mean != 4 || survey.gotStudent != "s1" || survey.gotAnswers["q-2"] != 4 {
		t.Fatalf("resp = %+v, student = %s", resp, survey.gotStudent)
	}

	if w := do(r, http.MethodGet, "/api/v1/student/survey", ""); w.Code != http.StatusOK {
		t.Fatalf("get after submit = %d", w.Code)
	}
	if w := do(r, http.MethodDelete, "/api/v1/student/survey", ""); w.Code != http.StatusOK {
		t.Fatalf("clear = %d", w.Code)
	}
	if w := do(r, http.MethodDelete, "/api/v1/student/survey", ""); w.Code != http.StatusNotFound {
		t.Fatalf("second clear = %d", w.Code)
	}
}

func TestSubmitSurveyErrorStatuses(t *testing.T) {
	cases := []struct {
		name string
		err  error
		body string
		want int
	}{
		{"bad json", nil, `{"answers":`, http.StatusBadRequest},
		{"missing answers", nil, `{}`, http.StatusBadRequest},
		{"empty", scoring.ErrEmptyInput, `{"answers":{}}`, http.StatusBadRequest},
		{"out of range", scoring.ErrInvalidAnswer, `{"answers":{"q-1":9}}`, http.StatusBadRequest},
		{"already submitted", scoring.ErrAlreadySubmitted, `{"answers":{"q-1":3}}`, http.StatusConflict},
		{"store down", scoring.DataAccess("create", context.DeadlineExceeded), `{"answers":{"q-1":3}}`, http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := newSurveyRouter(&stubSurvey{submitErr: tc.err}, &stubQuestionService{}, &auth.Claims{UID: "s1"})
			if w := do(r, http.MethodPost, "/api/v1/student/survey", tc.body); w.Code != tc.want {
				t.Fatalf("status = %d, want %d (%s)", w.Code, tc.want, w.Body.String())
			}
		})
	}
}

func TestSurveyRequiresIdentity(t *testing.T) {
	r := newSurveyRouter(&stubSurvey{}, &stubQuestionService{}, nil)
	if w := do(r, http.MethodPost, "/api/v1/student/survey", `{"answers":{"q-1":3}}`); w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d", w.Code)
	}
}

func TestGetQuestions(t *testing.T) {
	qs := &stubQuestionService{groups: []dto.QuestionGroup{{Category: "Academics", Questions: []dto.QuestionResponse{{ID: "1"}}}}}
	r := newSurveyRouter(&stubSurvey{}, qs, &auth.Claims{UID: "s1"})
	w := do(r, http.MethodGet, "/api/v1/student/questions", "")
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "Academics") {
		t.Fatalf("questions = %d %s", w.Code, w.Body.String())
	}
}
