package user

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/campuspulse/internal/controller"
	"github.com/lshigami/campuspulse/internal/service"
)

type DepartmentController struct {
	departmentService service.DepartmentService
}

func NewDepartmentController(departmentService service.DepartmentService) *DepartmentController {
	return &DepartmentController{departmentService: departmentService}
}

// ListDepartments godoc
// @Summary List departments
// @Tags Departments
// @Produce json
// @Success 200 {array} dto.DepartmentResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /departments [get]
func (c *DepartmentController) ListDepartments(ctx *gin.Context) {
	depts, err := c.departmentService.List(ctx.Request.Context())
	if err != nil {
		controller.RespondError(ctx, err, "list departments")
		return
	}
	ctx.JSON(http.StatusOK, depts)
}
