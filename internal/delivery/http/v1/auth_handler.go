package v1

import (
	"net/http"

	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authUC domain.AuthUsecase
}

// NewAuthHandler registers authentication routes. loginLimiter is applied to
// the credential-guessing surface only.
func NewAuthHandler(public *gin.RouterGroup, protected *gin.RouterGroup, authUC domain.AuthUsecase, loginLimiter gin.HandlerFunc) {
	handler := &AuthHandler{authUC: authUC}

	auth := public.Group("/auth")
	{
		auth.POST("/register", handler.Register)
		auth.POST("/login", loginLimiter, handler.Login)
	}

	protected.GET("/auth/me", handler.Me)
}

type RegisterRequest struct {
	Name        string `json:"name" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=6"`
	AdminSecret string `json:"admin_secret"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Register godoc
// @Summary      Register a new account
// @Description  Create an account and return a bearer token. Role defaults to applicant.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      RegisterRequest  true  "Registration data"
// @Success      201   {object}  response.Response
// @Failure      400   {object}  response.Response
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	user, token, err := h.authUC.Register(c.Request.Context(), req.Name, req.Email, req.Password, req.AdminSecret)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Registered successfully", gin.H{
		"token": token,
		"user":  user,
	})
}

// Login godoc
// @Summary      Log in
// @Description  Validate credentials and return a bearer token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      LoginRequest  true  "Credentials"
// @Success      200   {object}  response.Response
// @Failure      401   {object}  response.Response
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	user, token, err := h.authUC.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Logged in successfully", gin.H{
		"token": token,
		"user":  user,
	})
}

// Me godoc
// @Summary      Get the authenticated user
// @Tags         auth
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /auth/me [get]
// @Security     BearerAuth
func (h *AuthHandler) Me(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	user, err := h.authUC.GetCurrentUser(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Current user", user)
}
