package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/campuspulse/internal/controller"
	"github.com/lshigami/campuspulse/internal/dto"
	"github.com/lshigami/campuspulse/internal/service"
)

type QuestionController struct {
	questionService service.QuestionService
}

func NewQuestionController(questionService service.QuestionService) *QuestionController {
	return &QuestionController{questionService: questionService}
}

// ListQuestions godoc
// @Summary (Admin) List questions
// @Tags Admin - Questions
// @Produce json
// @Security BearerAuth
// @Param status query string false "ACTIVE or INACTIVE"
// @Success 200 {array} dto.QuestionResponse
// @Failure 400 {object} dto.ErrorResponse "Unknown status"
// @Router /admin/questions [get]
func (c *QuestionController) ListQuestions(ctx *gin.Context) {
	questions, err := c.questionService.List(ctx.Request.Context(), ctx.Query("status"))
	if err != nil {
		controller.RespondError(ctx, err, "list questions")
		return
	}
	ctx.JSON(http.StatusOK, questions)
}

// CreateQuestion godoc
// @Summary (Admin) Create a question
// @Tags Admin - Questions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.CreateQuestionRequest true "Question"
// @Success 201 {object} dto.QuestionResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /admin/questions [post]
func (c *QuestionController) CreateQuestion(ctx *gin.Context) {
	var req dto.CreateQuestionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.BindError(ctx, err, "create question")
		return
	}
	q, err := c.questionService.Create(ctx.Request.Context(), req)
	if err != nil {
		controller.RespondError(ctx, err, "create question")
		return
	}
	ctx.JSON(http.StatusCreated, q)
}

// UpdateQuestion godoc
// @Summary (Admin) Update a question
// @Description Replaces text, category and status. Setting INACTIVE hides the question from new surveys.
// @Tags Admin - Questions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Question ID"
// @Param body body dto.UpdateQuestionRequest true "Question"
// @Success 200 {object} dto.QuestionResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /admin/questions/{id} [put]
func (c *QuestionController) UpdateQuestion(ctx *gin.Context) {
	var req dto.UpdateQuestionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.BindError(ctx, err, "update question")
		return
	}
	q, err := c.questionService.Update(ctx.Request.Context(), ctx.Param("id"), req)
	if err != nil {
		controller.RespondError(ctx, err, "update question")
		return
	}
	ctx.JSON(http.StatusOK, q)
}

// DeleteQuestion godoc
// @Summary (Admin) Delete a question
// @Tags Admin - Questions
// @Produce json
// @Security BearerAuth
// @Param id path string true "Question ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /admin/questions/{id} [delete]
func (c *QuestionController) DeleteQuestion(ctx *gin.Context) {
	if err := c.questionService.Delete(ctx.Request.Context(), ctx.Param("id")); err != nil {
		controller.RespondError(ctx, err, "delete question")
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Question deleted"})
}
