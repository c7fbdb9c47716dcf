package controllers

import (
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/punura-itd/CIC-AGRI-IMS/internal/error/code"
	"github.com/punura-itd/CIC-AGRI-IMS/internal/error/response"
	"github.com/punura-itd/CIC-AGRI-IMS/services"
)

func TestScanErrorCodeCoversEveryCategory(t *testing.T) {
	cases := []struct {
		category services.ScanErrorCategory
		errCode  int
	}{
		{services.ScanErrDeviceUnavailable, code.ErrScannerDeviceUnavailable},
		{services.ScanErrPermissionDenied, code.ErrScannerPermissionDenied},
		{services.ScanErrDeviceBusy, code.ErrScannerDeviceBusy},
		{services.ScanErrSessionActive, code.ErrSessionNotIdle},
		{services.ScanErrLocationMissing, code.ErrScannerLocationMissing},
		{services.ScanErrNoPendingScan, code.ErrNoPendingScan},
		{services.ScanErrPersistenceFailure, code.ErrScanPersistenceFailure},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.errCode, scanErrorCode(tc.category), string(tc.category))
	}

	assert.Equal(t, code.ErrUnknown, scanErrorCode(services.ScanErrorCategory("bogus")))
}

func TestRespondScanErrorUsesCodeTaxonomy(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		category   services.ScanErrorCategory
		errCode    int
		httpStatus int
	}{
		{services.ScanErrDeviceUnavailable, code.ErrScannerDeviceUnavailable, 503},
		{services.ScanErrPermissionDenied, code.ErrScannerPermissionDenied, 403},
		{services.ScanErrDeviceBusy, code.ErrScannerDeviceBusy, 409},
		{services.ScanErrSessionActive, code.ErrSessionNotIdle, 409},
		{services.ScanErrLocationMissing, code.ErrScannerLocationMissing, 400},
		{services.ScanErrNoPendingScan, code.ErrNoPendingScan, 409},
		{services.ScanErrPersistenceFailure, code.ErrScanPersistenceFailure, 500},
	}

	for _, tc := range cases {
		t.Run(string(tc.category), func(t *testing.T) {
			w := httptest.NewRecorder()
			ctx, _ := gin.CreateTestContext(w)
			controller := &ScannerController{Ctx: ctx}

			controller.respondScanError(services.NewScanError(tc.category, "scan failed", nil))

			assert.Equal(t, tc.httpStatus, w.Code)

			var body response.Response
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, tc.errCode, body.Code)
			assert.Equal(t, "scan failed", body.Message)

			data, ok := body.Data.(map[string]interface{})
			require.True(t, ok)
			assert.Equal(t, string(tc.category), data["category"])
		})
	}
}

func TestRespondScanErrorFallsBackForPlainErrors(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(w)
	controller := &ScannerController{Ctx: ctx}

	controller.respondScanError(errors.New("boom"))

	assert.Equal(t, 500, w.Code)

	var body response.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, code.ErrUnknown, body.Code)
	assert.Equal(t, "boom", body.Message)
}
