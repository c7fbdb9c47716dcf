package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/punura-itd/CIC-AGRI-IMS/models"
)

func TestResolveCodeStructured(t *testing.T) {
	r := NewCodeResolver()

	resolved := r.ResolveCode(`{"assetCode":"ASSET007","name":"Printer"}`)
	assert.Equal(t, models.ResolvedStructured, resolved.Kind)
	assert.Equal(t, "ASSET007", resolved.Code)

	resolved = r.ResolveCode(`{"asset_code":"EQ-22"}`)
	assert.Equal(t, models.ResolvedStructured, resolved.Kind)
	assert.Equal(t, "EQ-22", resolved.Code)
}

func TestResolveCodeJSONWithoutAssetCodeFallsThrough(t *testing.T) {
	r := NewCodeResolver()

	// A JSON object without an asset code field is not a structured match;
	// the pattern branch picks the first alphanumeric token instead.
	resolved := r.ResolveCode(`{"name":"Printer"}`)
	assert.Equal(t, models.ResolvedPattern, resolved.Kind)
	assert.NotEmpty(t, resolved.Code)
}

func TestResolveCodePattern(t *testing.T) {
	r := NewCodeResolver()

	resolved := r.ResolveCode("label ASSET042 shelf 3")
	assert.Equal(t, models.ResolvedPattern, resolved.Kind)
	assert.Equal(t, "label", resolved.Code)

	resolved = r.ResolveCode("A1B2C3")
	assert.Equal(t, models.ResolvedPattern, resolved.Kind)
	assert.Equal(t, "A1B2C3", resolved.Code)
}

func TestResolveCodeRawFallback(t *testing.T) {
	r := NewCodeResolver()

	resolved := r.ResolveCode("ab")
	assert.Equal(t, models.ResolvedRaw, resolved.Kind)
	assert.Equal(t, "ab", resolved.Code)

	resolved = r.ResolveCode("")
	assert.Equal(t, models.ResolvedRaw, resolved.Kind)
	assert.Equal(t, "", resolved.Code)
}

func TestExtractDeviceInfoStructured(t *testing.T) {
	r := NewCodeResolver()

	info := r.ExtractDeviceInfo(`{"type":"Laptop","model":"X1","serial":"SN-991"}`)
	require.NotNil(t, info)
	assert.Equal(t, "Laptop", info.Type)
	assert.Equal(t, "X1", info.Model)
	assert.Equal(t, "SN-991", info.Serial)
	assert.Equal(t, "Active", info.Status)

	info = r.ExtractDeviceInfo(`{"serial":"SN-1"}`)
	require.NotNil(t, info)
	assert.Equal(t, "Unknown Device", info.Type)
}

func TestExtractDeviceInfoLabeled(t *testing.T) {
	r := NewCodeResolver()

	info := r.ExtractDeviceInfo("Model: X1 SN: ABC123")
	require.NotNil(t, info)
	assert.Equal(t, "ABC123", info.Serial)
	assert.Equal(t, "Active", info.Status)
}

func TestExtractDeviceInfoHeuristic(t *testing.T) {
	r := NewCodeResolver()

	info := r.ExtractDeviceInfo("EQUIP-12345")
	require.NotNil(t, info)
	assert.Equal(t, "Device", info.Type)
	assert.Equal(t, "EQUIP-12345", info.Serial)
}

func TestExtractDeviceInfoNone(t *testing.T) {
	r := NewCodeResolver()

	assert.Nil(t, r.ExtractDeviceInfo("hi"))
	assert.Nil(t, r.ExtractDeviceInfo(""))
}
