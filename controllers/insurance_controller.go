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

// InsuranceController handles insurance policy requests
type InsuranceController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewInsuranceController creates a new insurance controller
func NewInsuranceController(ctx *gin.Context, container *container.ServiceContainer) *InsuranceController {
	return &InsuranceController{
		Ctx:       ctx,
		Container: container,
	}
}

// HandleInsuranceFunc returns a Gin handler for insurance requests
func HandleInsuranceFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewInsuranceController(ctx, container)

		switch method {
		case "getPolicies":
			controller.GetPolicies()
		case "getPolicy":
			controller.GetPolicy()
		case "createPolicy":
			controller.CreatePolicy()
		case "updatePolicy":
			controller.UpdatePolicy()
		case "deletePolicy":
			controller.DeletePolicy()
		default:
			response.ParamError(ctx, "invalid method")
		}
	}
}

// 1. GetPolicies returns all insurance policies
// @Summary Get all insurance policies
// @Tags insurance
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.InsurancePolicy
// @Failure 500 {object} response.Response
// @Router /insurance [get]
func (c *InsuranceController) GetPolicies() {
	insuranceService := c.Container.GetService("insurance").(services.InterfaceInsuranceService)

	policies, err := insuranceService.GetAllPolicies()
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "failed to list policies: "+err.Error(), nil)
		return
	}

	response.Success(c.Ctx, policies)
}

// 2. GetPolicy returns one policy by id
// @Summary Get a single insurance policy
// @Tags insurance
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Policy ID"
// @Success 200 {object} models.InsurancePolicy
// @Failure 404 {object} response.Response
// @Router /insurance/{id} [get]
func (c *InsuranceController) GetPolicy() {
	id, err := strconv.Atoi(c.Ctx.Param("id"))
	if err != nil {
		response.ParamError(c.Ctx, "invalid policy id")
		return
	}

	insuranceService := c.Container.GetService("insurance").(services.InterfaceInsuranceService)

	policy, err := insuranceService.GetPolicyByID(uint(id))
	if err != nil {
		if errors.Is(err, services.ErrPolicyNotFound) {
			response.Fail(c.Ctx, code.ErrInsuranceNotFound, nil)
			return
		}
		response.FailWithMessage(c.Ctx, code.ErrDatabase, err.Error(), nil)
		return
	}

	response.Success(c.Ctx, policy)
}

// 3. CreatePolicy creates a new policy
// @Summary Create a new insurance policy
// @Tags insurance
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.InsurancePolicy true "Policy"
// @Success 200 {object} models.InsurancePolicy
// @Failure 400 {object} response.Response
// @Router /insurance [post]
func (c *InsuranceController) CreatePolicy() {
	var policy models.InsurancePolicy
	if err := c.Ctx.ShouldBindJSON(&policy); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, err.Error(), nil)
		return
	}
	if policy.PolicyNumber == "" || policy.Provider == "" {
		response.ParamError(c.Ctx, "policy_number and provider are required")
		return
	}

	insuranceService := c.Container.GetService("insurance").(services.InterfaceInsuranceService)

	if err := insuranceService.CreatePolicy(&policy); err != nil {
		if errors.Is(err, services.ErrPolicyNumberTaken) {
			response.Fail(c.Ctx, code.ErrPolicyNumberTaken, nil)
			return
		}
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "failed to create policy: "+err.Error(), nil)
		return
	}

	response.Success(c.Ctx, policy)
}

// 4. UpdatePolicy updates a policy
// @Summary Update an insurance policy
// @Tags insurance
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Policy ID"
// @Param request body object true "Fields to update"
// @Success 200 {object} models.InsurancePolicy
// @Failure 404 {object} response.Response
// @Router /insurance/{id} [put]
func (c *InsuranceController) UpdatePolicy() {
	id, err := strconv.Atoi(c.Ctx.Param("id"))
	if err != nil {
		response.ParamError(c.Ctx, "invalid policy id")
		return
	}

	var updates map[string]interface{}
	if err := c.Ctx.ShouldBindJSON(&updates); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, err.Error(), nil)
		return
	}

	insuranceService := c.Container.GetService("insurance").(services.InterfaceInsuranceService)

	policy, err := insuranceService.UpdatePolicy(uint(id), updates)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrPolicyNotFound):
			response.Fail(c.Ctx, code.ErrInsuranceNotFound, nil)
		case errors.Is(err, services.ErrPolicyNumberTaken):
			response.Fail(c.Ctx, code.ErrPolicyNumberTaken, nil)
		default:
			response.FailWithMessage(c.Ctx, code.ErrDatabase, err.Error(), nil)
		}
		return
	}

	response.Success(c.Ctx, policy)
}

// 5. DeletePolicy deletes a policy
// @Summary Delete an insurance policy
// @Tags insurance
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Policy ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /insurance/{id} [delete]
func (c *InsuranceController) DeletePolicy() {
	id, err := strconv.Atoi(c.Ctx.Param("id"))
	if err != nil {
		response.ParamError(c.Ctx, "invalid policy id")
		return
	}

	insuranceService := c.Container.GetService("insurance").(services.InterfaceInsuranceService)

	if err := insuranceService.DeletePolicy(uint(id)); err != nil {
		if errors.Is(err, services.ErrPolicyNotFound) {
			response.Fail(c.Ctx, code.ErrInsuranceNotFound, nil)
			return
		}
		response.FailWithMessage(c.Ctx, code.ErrDatabase, err.Error(), nil)
		return
	}

	response.Success(c.Ctx, nil)
}
