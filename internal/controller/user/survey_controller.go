package user

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/campuspulse/internal/controller"
	"github.com/lshigami/campuspulse/internal/dto"
	"github.com/lshigami/campuspulse/internal/service"
)

type SurveyController struct {
	questionService service.QuestionService
	surveyService   service.SurveyService
}

func NewSurveyController(questionService service.QuestionService, surveyService service.SurveyService) *SurveyController {
	return &SurveyController{questionService: questionService, surveyService: surveyService}
}

// GetQuestions godoc
// @Summary (Student) Get the questionnaire
// @Description Active questions grouped by category.
// @Tags Student - Survey
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.QuestionGroup
// @Failure 401 {object} dto.ErrorResponse
// @Router /student/questions [get]
func (c *SurveyController) GetQuestions(ctx *gin.Context) {
	groups, err := c.questionService.ActiveGrouped(ctx.Request.Context())
	if err != nil {
		controller.RespondError(ctx, err, "student questions")
		return
	}
	ctx.JSON(http.StatusOK, groups)
}

// SubmitSurvey godoc
// @Summary (Student) Submit survey answers
// @Description Answers are keyed "q-<questionId>" with values 1 to 5. Unknown or inactive questions are ignored.
// @Tags Student - Survey
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.SubmitSurveyRequest true "Answers"
// @Success 201 {object} dto.SurveyResponseDTO
// @Failure 400 {object} dto.ErrorResponse "No valid answers or value out of range"
// @Failure 409 {object} dto.ErrorResponse "Survey already submitted"
// @Router /student/survey [post]
func (c *SurveyController) SubmitSurvey(ctx *gin.Context) {
	studentID, ok := controller.CurrentUserID(ctx)
	if !ok {
		return
	}
	var req dto.SubmitSurveyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.BindError(ctx, err, "submit survey")
		return
	}
	resp, err := c.surveyService.Submit(ctx.Request.Context(), studentID, req)
	if err != nil {
		controller.RespondError(ctx, err, "submit survey")
		return
	}
	ctx.JSON(http.StatusCreated, resp)
}

// GetMySurvey godoc
// @Summary (Student) Get my response
// @Tags Student - Survey
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.SurveyResponseDTO
// @Failure 404 {object} dto.ErrorResponse "No response yet"
// @Router /student/survey [get]
func (c *SurveyController) GetMySurvey(ctx *gin.Context) {
	studentID, ok := controller.CurrentUserID(ctx)
	if !ok {
		return
	}
	resp, err := c.surveyService.Get(ctx.Request.Context(), studentID)
	if err != nil {
		controller.RespondError(ctx, err, "get survey")
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// ClearMySurvey godoc
// @Summary (Student) Clear my response
// @Description Deletes the stored response so the survey can be taken again.
// @Tags Student - Survey
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse "No response to clear"
// @Router /student/survey [delete]
func (c *SurveyController) ClearMySurvey(ctx *gin.Context) {
	studentID, ok := controller.CurrentUserID(ctx)
	if !ok {
		return
	}
	if err := c.surveyService.Clear(ctx.Request.Context(), studentID); err != nil {
		controller.RespondError(ctx, err, "clear survey")
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Survey response cleared"})
}
