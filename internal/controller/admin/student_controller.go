package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/campuspulse/internal/controller"
	"github.com/lshigami/campuspulse/internal/dto"
	"github.com/lshigami/campuspulse/internal/service"
)

type StudentController struct {
	studentService service.StudentService
}

func NewStudentController(studentService service.StudentService) *StudentController {
	return &StudentController{studentService: studentService}
}

// ListStudents godoc
// @Summary (Admin) List students
// @Tags Admin - Students
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.StudentResponse
// @Router /admin/students [get]
func (c *StudentController) ListStudents(ctx *gin.Context) {
	students, err := c.studentService.List(ctx.Request.Context())
	if err != nil {
		controller.RespondError(ctx, err, "list students")
		return
	}
	ctx.JSON(http.StatusOK, students)
}

// DeleteStudent godoc
// @Summary (Admin) Delete a student
// @Description Removes the student and their survey response.
// @Tags Admin - Students
// @Produce json
// @Security BearerAuth
// @Param id path string true "Student ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /admin/students/{id} [delete]
func (c *StudentController) DeleteStudent(ctx *gin.Context) {
	if err := c.studentService.Delete(ctx.Request.Context(), ctx.Param("id")); err != nil {
		controller.RespondError(ctx, err, "delete student")
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Student deleted"})
}
