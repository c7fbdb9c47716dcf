package controllers

import (
	"errors"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/punura-itd/CIC-AGRI-IMS/internal/error/code"
	"github.com/punura-itd/CIC-AGRI-IMS/internal/error/response"
	"github.com/punura-itd/CIC-AGRI-IMS/models"
	"github.com/punura-itd/CIC-AGRI-IMS/services"
	"github.com/punura-itd/CIC-AGRI-IMS/services/container"
)

// InterfaceScanController defines the scan record controller interface
type InterfaceScanController interface {
	GetScans()
	GetScan()
	GetAssetScans()
	CreateScan()
	UpdateScan()
}

// ScanController handles scan record requests
type ScanController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewScanController creates a new scan record controller
func NewScanController(ctx *gin.Context, container *container.ServiceContainer) *ScanController {
	return &ScanController{
		Ctx:       ctx,
		Container: container,
	}
}

// ScanRecordRequest represents a manually created scan record
type ScanRecordRequest struct {
	AssetID      *uint     `json:"assetId"`
	ScanDate     time.Time `json:"scanDate"`
	ScanLocation string    `json:"scanLocation" binding:"required" example:"Warehouse"`
}

// HandleScanFunc returns a Gin handler for scan record requests
func HandleScanFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewScanController(ctx, container)

		switch method {
		case "getScans":
			controller.GetScans()
		case "getScan":
			controller.GetScan()
		case "getAssetScans":
			controller.GetAssetScans()
		case "createScan":
			controller.CreateScan()
		case "updateScan":
			controller.UpdateScan()
		default:
			response.ParamError(ctx, "invalid method")
		}
	}
}

// 1. GetScans returns a page of scan records
// @Summary Get all scan records
// @Tags scan
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param pageNum query int false "Page number"
// @Param pageSize query int false "Page size"
// @Success 200 {array} models.ScanRecord
// @Failure 500 {object} response.Response
// @Router /scans [get]
func (c *ScanController) GetScans() {
	var query models.PaginationQuery
	if err := c.Ctx.ShouldBindQuery(&query); err != nil {
		response.ParamError(c.Ctx, "invalid pagination parameters")
		return
	}

	scanService := c.Container.GetService("scan_record").(services.InterfaceScanRecordService)

	records, pagination, err := scanService.GetAllScans(query)
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "failed to list scan records: "+err.Error(), nil)
		return
	}

	response.Success(c.Ctx, gin.H{
		"records":    records,
		"pagination": pagination,
	})
}

// 2. GetScan returns one scan record by id
// @Summary Get a single scan record
// @Tags scan
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Scan record ID"
// @Success 200 {object} models.ScanRecord
// @Failure 404 {object} response.Response
// @Router /scans/{id} [get]
func (c *ScanController) GetScan() {
	id, err := strconv.Atoi(c.Ctx.Param("id"))
	if err != nil {
		response.ParamError(c.Ctx, "invalid scan record id")
		return
	}

	scanService := c.Container.GetService("scan_record").(services.InterfaceScanRecordService)

	record, err := scanService.GetScanByID(uint(id))
	if err != nil {
		if errors.Is(err, services.ErrScanRecordNotFound) {
			response.Fail(c.Ctx, code.ErrScanNotFound, nil)
			return
		}
		response.FailWithMessage(c.Ctx, code.ErrDatabase, err.Error(), nil)
		return
	}

	response.Success(c.Ctx, record)
}

// 3. GetAssetScans returns the scan history of one asset
// @Summary Get the scan history of an asset
// @Tags scan
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param assetId path string true "Asset ID"
// @Success 200 {array} models.ScanRecord
// @Failure 400 {object} response.Response
// @Router /scans/asset/{assetId} [get]
func (c *ScanController) GetAssetScans() {
	assetID, err := strconv.Atoi(c.Ctx.Param("assetId"))
	if err != nil {
		response.ParamError(c.Ctx, "invalid asset id")
		return
	}

	scanService := c.Container.GetService("scan_record").(services.InterfaceScanRecordService)

	records, err := scanService.GetScansByAsset(uint(assetID))
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "failed to list asset scans: "+err.Error(), nil)
		return
	}

	response.Success(c.Ctx, records)
}

// 4. CreateScan writes a scan record directly, bypassing the session flow.
// Used for manual corrections and imports.
// @Summary Create a scan record
// @Tags scan
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body ScanRecordRequest true "Scan record"
// @Success 200 {object} models.ScanRecord
// @Failure 400 {object} response.Response
// @Router /scans [post]
func (c *ScanController) CreateScan() {
	var req ScanRecordRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, err.Error(), nil)
		return
	}

	if req.ScanDate.IsZero() {
		req.ScanDate = time.Now()
	}

	record := models.ScanRecord{
		AssetID:      req.AssetID,
		ScanDate:     req.ScanDate,
		ScanLocation: req.ScanLocation,
		UserID:       currentUserID(c.Ctx),
	}

	scanService := c.Container.GetService("scan_record").(services.InterfaceScanRecordService)

	if err := scanService.CreateScan(&record); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "failed to create scan record: "+err.Error(), nil)
		return
	}

	response.Success(c.Ctx, record)
}

// 5. UpdateScan corrects a scan record
// @Summary Update a scan record
// @Tags scan
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Scan record ID"
// @Param request body object true "Fields to update"
// @Success 200 {object} models.ScanRecord
// @Failure 404 {object} response.Response
// @Router /scans/{id} [put]
func (c *ScanController) UpdateScan() {
	id, err := strconv.Atoi(c.Ctx.Param("id"))
	if err != nil {
		response.ParamError(c.Ctx, "invalid scan record id")
		return
	}

	var updates map[string]interface{}
	if err := c.Ctx.ShouldBindJSON(&updates); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, err.Error(), nil)
		return
	}

	scanService := c.Container.GetService("scan_record").(services.InterfaceScanRecordService)

	record, err := scanService.UpdateScan(uint(id), updates)
	if err != nil {
		if errors.Is(err, services.ErrScanRecordNotFound) {
			response.Fail(c.Ctx, code.ErrScanNotFound, nil)
			return
		}
		response.FailWithMessage(c.Ctx, code.ErrDatabase, err.Error(), nil)
		return
	}

	response.Success(c.Ctx, record)
}
