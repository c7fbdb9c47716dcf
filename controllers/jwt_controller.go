package controllers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/punura-itd/CIC-AGRI-IMS/internal/error/code"
	"github.com/punura-itd/CIC-AGRI-IMS/internal/error/response"
	"github.com/punura-itd/CIC-AGRI-IMS/models"
	"github.com/punura-itd/CIC-AGRI-IMS/services"
	"github.com/punura-itd/CIC-AGRI-IMS/services/container"
)

// InterfaceJWTController defines the auth controller interface
type InterfaceJWTController interface {
	Login()
}

// JWTController handles authentication requests
type JWTController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewJWTController creates a new auth controller
func NewJWTController(ctx *gin.Context, container *container.ServiceContainer) *JWTController {
	return &JWTController{
		Ctx:       ctx,
		Container: container,
	}
}

// LoginRequest represents a login request
type LoginRequest struct {
	Username string `json:"username" binding:"required" example:"admin"`
	Password string `json:"password" binding:"required" example:"admin123"`
}

// LoginData is the payload returned on a successful login
type LoginData struct {
	Token       string   `json:"token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	UserID      uint     `json:"user_id" example:"1"`
	Role        string   `json:"role" example:"admin"`
	Username    string   `json:"username" example:"admin"`
	Permissions []string `json:"permissions"`
}

// HandleJWTFunc returns a Gin handler for auth requests
func HandleJWTFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewJWTController(ctx, container)

		switch method {
		case "login":
			controller.Login()
		default:
			response.ParamError(ctx, "invalid method")
		}
	}
}

// Login verifies credentials and returns a token together with the
// normalized role and its capability list
// @Summary      User Login
// @Description  Process user login and return JWT token with the role's capability list
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request body LoginRequest true "Login request parameters"
// @Success      200  {object}  response.Response{data=LoginData}  "Success response with token"
// @Failure      400  {object}  response.Response  "Bad request"
// @Failure      401  {object}  response.Response  "Unauthorized"
// @Failure      500  {object}  response.Response  "Internal server error"
// @Router       /auth/login [post]
func (c *JWTController) Login() {
	var req LoginRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, err.Error(), nil)
		return
	}

	userService := c.Container.GetService("user").(services.InterfaceUserService)
	jwtService := c.Container.GetService("jwt").(*services.JWTService)

	user, err := userService.Login(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			response.FailWithMessage(c.Ctx, code.ErrUserPasswordIncorrect, "invalid username or password", nil)
			return
		}
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "login failed: "+err.Error(), nil)
		return
	}

	token, err := jwtService.GenerateToken(user.ID, user.Role)
	if err != nil {
		response.ServerError(c.Ctx)
		return
	}

	role := models.NormalizeRole(user.Role)
	permissions := models.PermissionsForRole(role)
	permissionNames := make([]string, 0, len(permissions))
	for _, p := range permissions {
		permissionNames = append(permissionNames, string(p))
	}

	response.Success(c.Ctx, LoginData{
		Token:       token,
		UserID:      user.ID,
		Role:        string(role),
		Username:    user.Username,
		Permissions: permissionNames,
	})
}
