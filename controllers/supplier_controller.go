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

// SupplierController handles supplier requests
type SupplierController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewSupplierController creates a new supplier controller
func NewSupplierController(ctx *gin.Context, container *container.ServiceContainer) *SupplierController {
	return &SupplierController{
		Ctx:       ctx,
		Container: container,
	}
}

// HandleSupplierFunc returns a Gin handler for supplier requests
func HandleSupplierFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewSupplierController(ctx, container)

		switch method {
		case "getSuppliers":
			controller.GetSuppliers()
		case "getSupplier":
			controller.GetSupplier()
		case "createSupplier":
			controller.CreateSupplier()
		case "updateSupplier":
			controller.UpdateSupplier()
		case "deleteSupplier":
			controller.DeleteSupplier()
		default:
			response.ParamError(ctx, "invalid method")
		}
	}
}

// 1. GetSuppliers returns all suppliers
// @Summary Get all suppliers
// @Tags supplier
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Supplier
// @Failure 500 {object} response.Response
// @Router /suppliers [get]
func (c *SupplierController) GetSuppliers() {
	supplierService := c.Container.GetService("supplier").(services.InterfaceSupplierService)

	suppliers, err := supplierService.GetAllSuppliers()
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "failed to list suppliers: "+err.Error(), nil)
		return
	}

	response.Success(c.Ctx, suppliers)
}

// 2. GetSupplier returns one supplier by id
// @Summary Get a single supplier
// @Tags supplier
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Supplier ID"
// @Success 200 {object} models.Supplier
// @Failure 404 {object} response.Response
// @Router /suppliers/{id} [get]
func (c *SupplierController) GetSupplier() {
	id, err := strconv.Atoi(c.Ctx.Param("id"))
	if err != nil {
		response.ParamError(c.Ctx, "invalid supplier id")
		return
	}

	supplierService := c.Container.GetService("supplier").(services.InterfaceSupplierService)

	supplier, err := supplierService.GetSupplierByID(uint(id))
	if err != nil {
		if errors.Is(err, services.ErrSupplierNotFound) {
			response.Fail(c.Ctx, code.ErrSupplierNotFound, nil)
			return
		}
		response.FailWithMessage(c.Ctx, code.ErrDatabase, err.Error(), nil)
		return
	}

	response.Success(c.Ctx, supplier)
}

// 3. CreateSupplier creates a new supplier
// @Summary Create a new supplier
// @Tags supplier
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.Supplier true "Supplier"
// @Success 200 {object} models.Supplier
// @Failure 400 {object} response.Response
// @Router /suppliers [post]
func (c *SupplierController) CreateSupplier() {
	var supplier models.Supplier
	if err := c.Ctx.ShouldBindJSON(&supplier); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, err.Error(), nil)
		return
	}
	if supplier.Name == "" {
		response.ParamError(c.Ctx, "name is required")
		return
	}

	supplierService := c.Container.GetService("supplier").(services.InterfaceSupplierService)

	if err := supplierService.CreateSupplier(&supplier); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "failed to create supplier: "+err.Error(), nil)
		return
	}

	response.Success(c.Ctx, supplier)
}

// 4. UpdateSupplier updates a supplier
// @Summary Update a supplier
// @Tags supplier
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Supplier ID"
// @Param request body object true "Fields to update"
// @Success 200 {object} models.Supplier
// @Failure 404 {object} response.Response
// @Router /suppliers/{id} [put]
func (c *SupplierController) UpdateSupplier() {
	id, err := strconv.Atoi(c.Ctx.Param("id"))
	if err != nil {
		response.ParamError(c.Ctx, "invalid supplier id")
		return
	}

	var updates map[string]interface{}
	if err := c.Ctx.ShouldBindJSON(&updates); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, err.Error(), nil)
		return
	}

	supplierService := c.Container.GetService("supplier").(services.InterfaceSupplierService)

	supplier, err := supplierService.UpdateSupplier(uint(id), updates)
	if err != nil {
		if errors.Is(err, services.ErrSupplierNotFound) {
			response.Fail(c.Ctx, code.ErrSupplierNotFound, nil)
			return
		}
		response.FailWithMessage(c.Ctx, code.ErrDatabase, err.Error(), nil)
		return
	}

	response.Success(c.Ctx, supplier)
}

// 5. DeleteSupplier deletes a supplier
// @Summary Delete a supplier
// @Tags supplier
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Supplier ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /suppliers/{id} [delete]
func (c *SupplierController) DeleteSupplier() {
	id, err := strconv.Atoi(c.Ctx.Param("id"))
	if err != nil {
		response.ParamError(c.Ctx, "invalid supplier id")
		return
	}

	supplierService := c.Container.GetService("supplier").(services.InterfaceSupplierService)

	if err := supplierService.DeleteSupplier(uint(id)); err != nil {
		if errors.Is(err, services.ErrSupplierNotFound) {
			response.Fail(c.Ctx, code.ErrSupplierNotFound, nil)
			return
		}
		response.FailWithMessage(c.Ctx, code.ErrDatabase, err.Error(), nil)
		return
	}

	response.Success(c.Ctx, nil)
}
