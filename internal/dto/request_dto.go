package dto

type RegisterRequest struct {
	Username string `json:"username" binding:"required"` // roll number
	Password string `json:"password" binding:"required,min=6"`
	Name     string `json:"name" binding:"required"`
	// Department is an id or a department name.
	Department string `json:"department" binding:"required"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// CreateQuestionRequest is used by admins. Status defaults to ACTIVE.
type CreateQuestionRequest struct {
	Text     string `json:"text" binding:"required"`
	Category string `json:"category" binding:"required"`
	Status   string `json:"status" binding:"omitempty,oneof=ACTIVE INACTIVE"`
}

type UpdateQuestionRequest struct {
	Text     string `json:"text" binding:"required"`
	Category string `json:"category" binding:"required"`
	Status   string `json:"status" binding:"required,oneof=ACTIVE INACTIVE"`
}

// SubmitSurveyRequest carries answers keyed "q-<questionId>" with values 1..5.
type SubmitSurveyRequest struct {
	Answers map[string]int `json:"answers" binding:"required"`
}

type ResponseListQuery struct {
	Department string `form:"department"`
	Search     string `form:"search"`
}
