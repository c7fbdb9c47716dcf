package controllers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/punura-itd/CIC-AGRI-IMS/internal/error/code"
	"github.com/punura-itd/CIC-AGRI-IMS/internal/error/response"
	"github.com/punura-itd/CIC-AGRI-IMS/models"
	"github.com/punura-itd/CIC-AGRI-IMS/services"
	"github.com/punura-itd/CIC-AGRI-IMS/services/container"
)

// InterfaceUserController defines the user controller interface
type InterfaceUserController interface {
	GetUsers()
	GetUser()
	CreateUser()
	UpdateUser()
	DeleteUser()
}

// UserController handles user management requests
type UserController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewUserController creates a new user controller
func NewUserController(ctx *gin.Context, container *container.ServiceContainer) *UserController {
	return &UserController{
		Ctx:       ctx,
		Container: container,
	}
}

// UserRequest represents a user create request
type UserRequest struct {
	Name       string `json:"name" binding:"required" example:"Jane Perera"`
	Email      string `json:"email" binding:"required" example:"jane@example.com"`
	Username   string `json:"username" binding:"required" example:"jane"`
	Password   string `json:"password" binding:"required" example:"secret123"`
	Role       string `json:"role" example:"user"`
	Department string `json:"department" example:"Operations"`
	Phone      string `json:"phone" example:"+94112223344"`
}

// HandleUserFunc returns a Gin handler for user requests
func HandleUserFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewUserController(ctx, container)

		switch method {
		case "getUsers":
			controller.GetUsers()
		case "getUser":
			controller.GetUser()
		case "createUser":
			controller.CreateUser()
		case "updateUser":
			controller.UpdateUser()
		case "deleteUser":
			controller.DeleteUser()
		default:
			response.ParamError(ctx, "invalid method")
		}
	}
}

// 1. GetUsers returns a page of users
// @Summary Get all users
// @Tags user
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param pageNum query int false "Page number"
// @Param pageSize query int false "Page size"
// @Success 200 {array} models.User
// @Failure 500 {object} response.Response
// @Router /users [get]
func (c *UserController) GetUsers() {
	var query models.PaginationQuery
	if err := c.Ctx.ShouldBindQuery(&query); err != nil {
		response.ParamError(c.Ctx, "invalid pagination parameters")
		return
	}

	userService := c.Container.GetService("user").(services.InterfaceUserService)

	users, pagination, err := userService.GetAllUsers(query)
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "failed to list users: "+err.Error(), nil)
		return
	}

	response.Success(c.Ctx, gin.H{
		"users":      users,
		"pagination": pagination,
	})
}

// 2. GetUser returns one user by id
// @Summary Get a single user
// @Tags user
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Success 200 {object} models.User
// @Failure 404 {object} response.Response
// @Router /users/{id} [get]
func (c *UserController) GetUser() {
	id, err := strconv.Atoi(c.Ctx.Param("id"))
	if err != nil {
		response.ParamError(c.Ctx, "invalid user id")
		return
	}

	userService := c.Container.GetService("user").(services.InterfaceUserService)

	user, err := userService.GetUserByID(uint(id))
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			response.Fail(c.Ctx, code.ErrUserNotFound, nil)
			return
		}
		response.FailWithMessage(c.Ctx, code.ErrDatabase, err.Error(), nil)
		return
	}

	response.Success(c.Ctx, user)
}

// 3. CreateUser creates a new user
// @Summary Create a new user
// @Tags user
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body UserRequest true "User"
// @Success 200 {object} models.User
// @Failure 400 {object} response.Response
// @Router /users [post]
func (c *UserController) CreateUser() {
	var req UserRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, err.Error(), nil)
		return
	}

	user := models.User{
		Name:       req.Name,
		Email:      req.Email,
		Username:   req.Username,
		Password:   req.Password,
		Role:       req.Role,
		Department: req.Department,
		Phone:      req.Phone,
	}

	userService := c.Container.GetService("user").(services.InterfaceUserService)

	if err := userService.CreateUser(&user); err != nil {
		if errors.Is(err, services.ErrUserAlreadyExists) {
			response.Fail(c.Ctx, code.ErrUserAlreadyExist, nil)
			return
		}
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "failed to create user: "+err.Error(), nil)
		return
	}

	response.Success(c.Ctx, user)
}

// 4. UpdateUser updates a user
// @Summary Update a user
// @Tags user
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Param request body object true "Fields to update"
// @Success 200 {object} models.User
// @Failure 404 {object} response.Response
// @Router /users/{id} [put]
func (c *UserController) UpdateUser() {
	id, err := strconv.Atoi(c.Ctx.Param("id"))
	if err != nil {
		response.ParamError(c.Ctx, "invalid user id")
		return
	}

	var updates map[string]interface{}
	if err := c.Ctx.ShouldBindJSON(&updates); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, err.Error(), nil)
		return
	}

	userService := c.Container.GetService("user").(services.InterfaceUserService)

	user, err := userService.UpdateUser(uint(id), updates)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			response.Fail(c.Ctx, code.ErrUserNotFound, nil)
			return
		}
		response.FailWithMessage(c.Ctx, code.ErrDatabase, err.Error(), nil)
		return
	}

	response.Success(c.Ctx, user)
}

// 5. DeleteUser deletes a user
// @Summary Delete a user
// @Tags user
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /users/{id} [delete]
func (c *UserController) DeleteUser() {
	id, err := strconv.Atoi(c.Ctx.Param("id"))
	if err != nil {
		response.ParamError(c.Ctx, "invalid user id")
		return
	}

	userService := c.Container.GetService("user").(services.InterfaceUserService)

	if err := userService.DeleteUser(uint(id)); err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			response.Fail(c.Ctx, code.ErrUserNotFound, nil)
			return
		}
		response.FailWithMessage(c.Ctx, code.ErrDatabase, err.Error(), nil)
		return
	}

	response.Success(c.Ctx, nil)
}
