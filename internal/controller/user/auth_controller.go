package user

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/campuspulse/internal/controller"
	"github.com/lshigami/campuspulse/internal/dto"
	"github.com/lshigami/campuspulse/internal/middleware"
	"github.com/lshigami/campuspulse/internal/service"
)

const sessionMaxAge = 24 * 60 * 60

type AuthController struct {
	authService service.AuthService
}

func NewAuthController(authService service.AuthService) *AuthController {
	return &AuthController{authService: authService}
}

func setSession(ctx *gin.Context, token string) {
	ctx.SetSameSite(http.SameSiteLaxMode)
	ctx.SetCookie(middleware.SessionCookie, token, sessionMaxAge, "/", "", false, true)
}

// Register godoc
// @Summary Register a student account
// @Description Creates a student and logs them in. Department may be an id or a name.
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body dto.RegisterRequest true "Registration data"
// @Success 201 {object} dto.AuthResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input or unknown department"
// @Failure 409 {object} dto.ErrorResponse "Roll number already registered"
// @Router /auth/register [post]
func (c *AuthController) Register(ctx *gin.Context) {
	var req dto.RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.BindError(ctx, err, "register")
		return
	}
	resp, err := c.authService.Register(ctx.Request.Context(), req)
	if err != nil {
		controller.RespondError(ctx, err, "register")
		return
	}
	setSession(ctx, resp.Token)
	ctx.JSON(http.StatusCreated, resp)
}

// Login godoc
// @Summary Log in
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body dto.LoginRequest true "Credentials"
// @Success 200 {object} dto.AuthResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse "Invalid username or password"
// @Router /auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.BindError(ctx, err, "login")
		return
	}
	resp, err := c.authService.Login(ctx.Request.Context(), req)
	if err != nil {
		controller.RespondError(ctx, err, "login")
		return
	}
	setSession(ctx, resp.Token)
	ctx.JSON(http.StatusOK, resp)
}

// Logout godoc
// @Summary Log out
// @Description Clears the session cookie.
// @Tags Auth
// @Produce json
// @Success 200 {object} dto.MessageResponse
// @Router /auth/logout [post]
func (c *AuthController) Logout(ctx *gin.Context) {
	ctx.SetSameSite(http.SameSiteLaxMode)
	ctx.SetCookie(middleware.SessionCookie, "", -1, "/", "", false, true)
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Logged out"})
}
