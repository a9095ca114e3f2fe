package dto

import "time"

type ErrorResponse struct {
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type AuthResponse struct {
	Token  string `json:"token"`
	Role   string `json:"role"`
	UserID string `json:"user_id"`
	Name   string `json:"name,omitempty"`
}

type DepartmentResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type QuestionResponse struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	Category  string    `json:"category"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// QuestionGroup is one category of the student questionnaire.
type QuestionGroup struct {
	Category  string             `json:"category"`
	Questions []QuestionResponse `json:"questions"`
}

// ScoreDTO reports the same score on both scales plus its severity.
type ScoreDTO struct {
	Mean       float64 `json:"mean"`
	Percentage float64 `json:"percentage"`
	Severity   string  `json:"severity"`
}

type CategoryScoreDTO struct {
	Category string  `json:"category"`
	Average  float64 `json:"average"`
	Severity string  `json:"severity"`
}

type SurveyResponseDTO struct {
	ID             string             `json:"id"`
	StudentID      string             `json:"student_id"`
	StudentName    string             `json:"student_name,omitempty"`
	RollNo         string             `json:"roll_no,omitempty"`
	Department     string             `json:"department,omitempty"`
	Score          ScoreDTO           `json:"score"`
	Answers        map[string]int     `json:"answers,omitempty"`
	Categories     []CategoryScoreDTO `json:"categories,omitempty"`
	LowestCategory *CategoryScoreDTO  `json:"lowest_category,omitempty"`
	CreatedAt      time.Time          `json:"created_at"`
}

type DepartmentStatDTO struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	AvgScore      float64 `json:"avg_score"`
	ResponseCount int     `json:"response_count"`
	Severity      string  `json:"severity"`
}

type DashboardResponse struct {
	TotalStudents    int                 `json:"total_students"`
	TotalResponses   int                 `json:"total_responses"`
	ParticipationPct float64             `json:"participation_pct"`
	AvgScore         ScoreDTO            `json:"avg_score"`
	DepartmentStats  []DepartmentStatDTO `json:"department_stats"`
	CategoryStats    []CategoryScoreDTO  `json:"category_stats"`
	LowestDepartment *DepartmentStatDTO  `json:"lowest_department,omitempty"`
	LowestCategory   *CategoryScoreDTO   `json:"lowest_category,omitempty"`
	RecentResponses  []SurveyResponseDTO `json:"recent_responses"`
	GeneratedAt      time.Time           `json:"generated_at"`
}

type StudentResponse struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Name         string    `json:"name"`
	Department   string    `json:"department,omitempty"`
	HasResponded bool      `json:"has_responded"`
	CreatedAt    time.Time `json:"created_at"`
}

type InsightResponse struct {
	LowestCategory   string    `json:"lowest_category,omitempty"`
	LowestDepartment string    `json:"lowest_department,omitempty"`
	Summary          string    `json:"summary"`
	Recommendations  []string  `json:"recommendations"`
	GeneratedAt      time.Time `json:"generated_at"`
}

type HealthResponse struct {
	OK       bool   `json:"ok"`
	Name     string `json:"name"`
	Database string `json:"database"`
}
