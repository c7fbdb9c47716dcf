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

// InterfaceAssetController defines the asset controller interface
type InterfaceAssetController interface {
	GetAssets()
	GetAsset()
	GetAssetByCode()
	CreateAsset()
	UpdateAsset()
	DeleteAsset()
}

// AssetController handles asset inventory requests
type AssetController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewAssetController creates a new asset controller
func NewAssetController(ctx *gin.Context, container *container.ServiceContainer) *AssetController {
	return &AssetController{
		Ctx:       ctx,
		Container: container,
	}
}

// HandleAssetFunc returns a Gin handler for asset requests
func HandleAssetFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewAssetController(ctx, container)

		switch method {
		case "getAssets":
			controller.GetAssets()
		case "getAsset":
			controller.GetAsset()
		case "getAssetByCode":
			controller.GetAssetByCode()
		case "createAsset":
			controller.CreateAsset()
		case "updateAsset":
			controller.UpdateAsset()
		case "deleteAsset":
			controller.DeleteAsset()
		default:
			response.ParamError(ctx, "invalid method")
		}
	}
}

// 1. GetAssets returns a page of assets
// @Summary Get all assets
// @Tags asset
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param pageNum query int false "Page number"
// @Param pageSize query int false "Page size"
// @Success 200 {array} models.Asset
// @Failure 500 {object} response.Response
// @Router /assets [get]
func (c *AssetController) GetAssets() {
	var query models.PaginationQuery
	if err := c.Ctx.ShouldBindQuery(&query); err != nil {
		response.ParamError(c.Ctx, "invalid pagination parameters")
		return
	}

	assetService := c.Container.GetService("asset").(services.InterfaceAssetService)

	assets, pagination, err := assetService.GetAllAssets(query)
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "failed to list assets: "+err.Error(), nil)
		return
	}

	response.Success(c.Ctx, gin.H{
		"assets":     assets,
		"pagination": pagination,
	})
}

// 2. GetAsset returns one asset by id
// @Summary Get a single asset
// @Tags asset
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Asset ID"
// @Success 200 {object} models.Asset
// @Failure 404 {object} response.Response
// @Router /assets/{id} [get]
func (c *AssetController) GetAsset() {
	id, err := strconv.Atoi(c.Ctx.Param("id"))
	if err != nil {
		response.ParamError(c.Ctx, "invalid asset id")
		return
	}

	assetService := c.Container.GetService("asset").(services.InterfaceAssetService)

	asset, err := assetService.GetAssetByID(uint(id))
	if err != nil {
		if errors.Is(err, services.ErrAssetNotFound) {
			response.Fail(c.Ctx, code.ErrAssetNotFound, nil)
			return
		}
		response.FailWithMessage(c.Ctx, code.ErrDatabase, err.Error(), nil)
		return
	}

	response.Success(c.Ctx, asset)
}

// 3. GetAssetByCode resolves a QR label code to its asset
// @Summary Get an asset by its QR label code
// @Tags asset
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param code path string true "Asset code"
// @Success 200 {object} models.Asset
// @Failure 404 {object} response.Response
// @Router /assets/code/{code} [get]
func (c *AssetController) GetAssetByCode() {
	assetCode := c.Ctx.Param("code")
	if assetCode == "" {
		response.ParamError(c.Ctx, "asset code is required")
		return
	}

	assetService := c.Container.GetService("asset").(services.InterfaceAssetService)

	asset, err := assetService.GetAssetByCode(assetCode)
	if err != nil {
		if errors.Is(err, services.ErrAssetNotFound) {
			response.Fail(c.Ctx, code.ErrAssetNotFound, nil)
			return
		}
		response.FailWithMessage(c.Ctx, code.ErrDatabase, err.Error(), nil)
		return
	}

	response.Success(c.Ctx, asset)
}

// 4. CreateAsset creates a new asset
// @Summary Create a new asset
// @Tags asset
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.Asset true "Asset"
// @Success 200 {object} models.Asset
// @Failure 400 {object} response.Response
// @Router /assets [post]
func (c *AssetController) CreateAsset() {
	var asset models.Asset
	if err := c.Ctx.ShouldBindJSON(&asset); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, err.Error(), nil)
		return
	}
	if asset.AssetCode == "" || asset.Name == "" {
		response.ParamError(c.Ctx, "asset_code and name are required")
		return
	}

	assetService := c.Container.GetService("asset").(services.InterfaceAssetService)

	if err := assetService.CreateAsset(&asset); err != nil {
		if errors.Is(err, services.ErrAssetCodeTaken) {
			response.Fail(c.Ctx, code.ErrAssetCodeTaken, nil)
			return
		}
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "failed to create asset: "+err.Error(), nil)
		return
	}

	response.Success(c.Ctx, asset)
}

// 5. UpdateAsset updates an asset
// @Summary Update an asset
// @Tags asset
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Asset ID"
// @Param request body object true "Fields to update"
// @Success 200 {object} models.Asset
// @Failure 404 {object} response.Response
// @Router /assets/{id} [put]
func (c *AssetController) UpdateAsset() {
	id, err := strconv.Atoi(c.Ctx.Param("id"))
	if err != nil {
		response.ParamError(c.Ctx, "invalid asset id")
		return
	}

	var updates map[string]interface{}
	if err := c.Ctx.ShouldBindJSON(&updates); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, err.Error(), nil)
		return
	}

	assetService := c.Container.GetService("asset").(services.InterfaceAssetService)

	asset, err := assetService.UpdateAsset(uint(id), updates)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrAssetNotFound):
			response.Fail(c.Ctx, code.ErrAssetNotFound, nil)
		case errors.Is(err, services.ErrAssetCodeTaken):
			response.Fail(c.Ctx, code.ErrAssetCodeTaken, nil)
		default:
			response.FailWithMessage(c.Ctx, code.ErrDatabase, err.Error(), nil)
		}
		return
	}

	response.Success(c.Ctx, asset)
}

// 6. DeleteAsset deletes an asset
// @Summary Delete an asset
// @Tags asset
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Asset ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /assets/{id} [delete]
func (c *AssetController) DeleteAsset() {
	id, err := strconv.Atoi(c.Ctx.Param("id"))
	if err != nil {
		response.ParamError(c.Ctx, "invalid asset id")
		return
	}

	assetService := c.Container.GetService("asset").(services.InterfaceAssetService)

	if err := assetService.DeleteAsset(uint(id)); err != nil {
		if errors.Is(err, services.ErrAssetNotFound) {
			response.Fail(c.Ctx, code.ErrAssetNotFound, nil)
			return
		}
		response.FailWithMessage(c.Ctx, code.ErrDatabase, err.Error(), nil)
		return
	}

	response.Success(c.Ctx, nil)
}
