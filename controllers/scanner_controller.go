package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/punura-itd/CIC-AGRI-IMS/internal/error/code"
	"github.com/punura-itd/CIC-AGRI-IMS/internal/error/response"
	"github.com/punura-itd/CIC-AGRI-IMS/services"
	"github.com/punura-itd/CIC-AGRI-IMS/services/container"
)

// InterfaceScannerController defines the scanner controller interface
type InterfaceScannerController interface {
	StartSession()
	StopSession()
	GetSessionStatus()
	ConfirmScan()
	CancelScan()
	GetResults()
	ClearResults()
	GetLocations()
	AddLocation()
	GetLocationStats()
	GetReport()
	GetStations()
}

// ScannerController drives the scan session and the scan ledger
type ScannerController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewScannerController creates a new scanner controller
func NewScannerController(ctx *gin.Context, container *container.ServiceContainer) *ScannerController {
	return &ScannerController{
		Ctx:       ctx,
		Container: container,
	}
}

// StartSessionRequest represents a session start request
type StartSessionRequest struct {
	Location string `json:"location" binding:"required" example:"Warehouse"`
	DeviceID string `json:"device_id" example:"station-01"`
}

// AddLocationRequest represents a new saved location
type AddLocationRequest struct {
	Location string `json:"location" binding:"required" example:"Warehouse"`
}

// HandleScannerFunc returns a Gin handler for scanner requests
func HandleScannerFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewScannerController(ctx, container)

		switch method {
		case "startSession":
			controller.StartSession()
		case "stopSession":
			controller.StopSession()
		case "getSessionStatus":
			controller.GetSessionStatus()
		case "confirmScan":
			controller.ConfirmScan()
		case "cancelScan":
			controller.CancelScan()
		case "getResults":
			controller.GetResults()
		case "clearResults":
			controller.ClearResults()
		case "getLocations":
			controller.GetLocations()
		case "addLocation":
			controller.AddLocation()
		case "getLocationStats":
			controller.GetLocationStats()
		case "getReport":
			controller.GetReport()
		case "getStations":
			controller.GetStations()
		default:
			response.ParamError(ctx, "invalid method")
		}
	}
}

// scanErrorCode maps a categorized scan error to its error code
func scanErrorCode(category services.ScanErrorCategory) int {
	switch category {
	case services.ScanErrDeviceUnavailable:
		return code.ErrScannerDeviceUnavailable
	case services.ScanErrPermissionDenied:
		return code.ErrScannerPermissionDenied
	case services.ScanErrDeviceBusy:
		return code.ErrScannerDeviceBusy
	case services.ScanErrSessionActive:
		return code.ErrSessionNotIdle
	case services.ScanErrLocationMissing:
		return code.ErrScannerLocationMissing
	case services.ScanErrNoPendingScan:
		return code.ErrNoPendingScan
	case services.ScanErrPersistenceFailure:
		return code.ErrScanPersistenceFailure
	default:
		return code.ErrUnknown
	}
}

// respondScanError writes a categorized scan error response
func (c *ScannerController) respondScanError(err error) {
	if scanErr, ok := services.AsScanError(err); ok {
		response.FailWithMessage(c.Ctx, scanErrorCode(scanErr.Category), scanErr.Message, gin.H{
			"category": string(scanErr.Category),
		})
		return
	}

	response.FailWithMessage(c.Ctx, code.ErrUnknown, err.Error(), nil)
}

// 1. StartSession acquires a scanner station and begins scanning
// @Summary Start a scan session
// @Description Acquire a scanner station for the given location and wait for a decode
// @Tags scanner
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body StartSessionRequest true "Session parameters"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 409 {object} response.Response
// @Failure 503 {object} response.Response
// @Router /scanner/session [post]
func (c *ScannerController) StartSession() {
	var req StartSessionRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, err.Error(), nil)
		return
	}

	session := c.Container.GetService("scan_session").(services.InterfaceScanSessionService)

	if err := session.Start(req.Location, req.DeviceID); err != nil {
		c.respondScanError(err)
		return
	}

	response.Success(c.Ctx, gin.H{
		"state":    string(session.State()),
		"location": session.Location(),
	})
}

// 2. StopSession releases the station and returns the session to idle
// @Summary Stop the scan session
// @Tags scanner
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /scanner/session [delete]
func (c *ScannerController) StopSession() {
	session := c.Container.GetService("scan_session").(services.InterfaceScanSessionService)

	if err := session.Stop(); err != nil {
		c.respondScanError(err)
		return
	}

	response.Success(c.Ctx, gin.H{
		"state": string(session.State()),
	})
}

// 3. GetSessionStatus returns the session state and any pending scan
// @Summary Get the scan session status
// @Tags scanner
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /scanner/session [get]
func (c *ScannerController) GetSessionStatus() {
	session := c.Container.GetService("scan_session").(services.InterfaceScanSessionService)

	data := gin.H{
		"state":    string(session.State()),
		"location": session.Location(),
	}
	if pending, ok := session.PendingScan(); ok {
		data["pending_scan"] = pending
	}

	response.Success(c.Ctx, data)
}

// 4. ConfirmScan applies the operator's edits and saves the pending scan
// @Summary Confirm the pending scan
// @Description Apply operator edits, persist the scan and schedule an automatic restart
// @Tags scanner
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body services.PendingScanEdit true "Edited scan fields"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /scanner/session/confirm [post]
func (c *ScannerController) ConfirmScan() {
	var edit services.PendingScanEdit
	if err := c.Ctx.ShouldBindJSON(&edit); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, err.Error(), nil)
		return
	}
	edit.UserID = currentUserID(c.Ctx)

	session := c.Container.GetService("scan_session").(services.InterfaceScanSessionService)

	result, err := session.Confirm(edit)
	if err != nil {
		c.respondScanError(err)
		return
	}

	response.Success(c.Ctx, result)
}

// 5. CancelScan discards the pending scan
// @Summary Cancel the pending scan
// @Tags scanner
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /scanner/session/cancel [post]
func (c *ScannerController) CancelScan() {
	session := c.Container.GetService("scan_session").(services.InterfaceScanSessionService)

	if err := session.Cancel(); err != nil {
		c.respondScanError(err)
		return
	}

	response.Success(c.Ctx, nil)
}

// 6. GetResults returns the scan ledger, optionally filtered by location
// @Summary Get scan results
// @Tags scanner
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param location query string false "Filter by location"
// @Success 200 {array} models.ScanResult
// @Router /scanner/results [get]
func (c *ScannerController) GetResults() {
	store := c.Container.GetService("scan_store").(services.InterfaceScanStoreService)

	location := c.Ctx.Query("location")
	if location != "" {
		response.Success(c.Ctx, store.ResultsByLocation(location))
		return
	}

	response.Success(c.Ctx, store.Results())
}

// 7. ClearResults wipes the scan ledger
// @Summary Clear all scan results
// @Description Irreversibly removes every entry from the scan ledger
// @Tags scanner
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Failure 500 {object} response.Response
// @Router /scanner/results [delete]
func (c *ScannerController) ClearResults() {
	store := c.Container.GetService("scan_store").(services.InterfaceScanStoreService)

	if err := store.ClearAll(); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrScanPersistenceFailure, "failed to clear scan results: "+err.Error(), nil)
		return
	}

	response.Success(c.Ctx, nil)
}

// 8. GetLocations returns the saved scanning locations
// @Summary Get saved locations
// @Tags scanner
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {array} string
// @Router /scanner/locations [get]
func (c *ScannerController) GetLocations() {
	store := c.Container.GetService("scan_store").(services.InterfaceScanStoreService)

	response.Success(c.Ctx, store.Locations())
}

// 9. AddLocation saves a new scanning location
// @Summary Add a saved location
// @Tags scanner
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body AddLocationRequest true "Location"
// @Success 200 {array} string
// @Failure 400 {object} response.Response
// @Router /scanner/locations [post]
func (c *ScannerController) AddLocation() {
	var req AddLocationRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, err.Error(), nil)
		return
	}

	store := c.Container.GetService("scan_store").(services.InterfaceScanStoreService)

	if err := store.AddLocation(req.Location); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrScanPersistenceFailure, "failed to add location: "+err.Error(), nil)
		return
	}

	response.Success(c.Ctx, store.Locations())
}

// 10. GetLocationStats returns the per-location scan counters
// @Summary Get per-location scan statistics
// @Tags scanner
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.LocationStat
// @Router /scanner/stats [get]
func (c *ScannerController) GetLocationStats() {
	store := c.Container.GetService("scan_store").(services.InterfaceScanStoreService)

	response.Success(c.Ctx, store.LocationStats())
}

// 11. GetReport builds a full scan report
// @Summary Export a scan report
// @Description Returns a report with totals, per-location statistics and every scan entry
// @Tags scanner
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ScanReport
// @Router /scanner/report [get]
func (c *ScannerController) GetReport() {
	store := c.Container.GetService("scan_store").(services.InterfaceScanStoreService)

	response.Success(c.Ctx, store.Report())
}

// 12. GetStations lists the scanner stations currently available
// @Summary List available scanner stations
// @Tags scanner
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {array} services.CaptureDevice
// @Failure 503 {object} response.Response
// @Router /scanner/stations [get]
func (c *ScannerController) GetStations() {
	capture := c.Container.GetService("capture").(services.InterfaceMQTTCaptureService)

	devices, err := capture.ListDevices()
	if err != nil {
		c.respondScanError(services.CategorizeCaptureError(err))
		return
	}

	response.Success(c.Ctx, devices)
}
