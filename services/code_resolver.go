package services

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/punura-itd/CIC-AGRI-IMS/models"
)

// InterfaceCodeResolver turns raw scanner text into a resolved asset code and
// best-effort device metadata. The two chains are independent: device info is
// advisory and never gates code resolution.
type InterfaceCodeResolver interface {
	ResolveCode(raw string) models.ResolvedCode
	ExtractDeviceInfo(raw string) *models.DeviceInfo
}

// CodeResolver implements the ordered fallback chain:
// JSON object -> alphanumeric token -> raw text.
type CodeResolver struct{}

// NewCodeResolver creates a new payload resolver
func NewCodeResolver() InterfaceCodeResolver {
	return &CodeResolver{}
}

var (
	assetCodePattern = regexp.MustCompile(`(?i)[A-Z0-9]{3,}`)

	serialPattern      = regexp.MustCompile(`(?i)(?:SN|Serial|S/N):?\s*([A-Z0-9-]+)`)
	modelPattern       = regexp.MustCompile(`(?i)(?:Model|MOD):?\s*([A-Z0-9-\s]+)`)
	deviceTypePattern  = regexp.MustCompile(`(?i)(?:Type|Device):?\s*([A-Z0-9-\s]+)`)
	deviceTokenPattern = regexp.MustCompile(`(?i)^[A-Z0-9-]{6,}$`)
)

// ResolveCode resolves the asset code from a raw payload. First match wins:
// a JSON object carrying assetCode/asset_code, then the first alphanumeric
// token of length >= 3, then the raw text verbatim. An empty payload resolves
// to an empty Raw code, which callers must treat as a failed resolution.
func (r *CodeResolver) ResolveCode(raw string) models.ResolvedCode {
	if code, ok := structuredAssetCode(raw); ok {
		return models.ResolvedCode{Kind: models.ResolvedStructured, Code: code}
	}

	if match := assetCodePattern.FindString(raw); match != "" {
		return models.ResolvedCode{Kind: models.ResolvedPattern, Code: match}
	}

	return models.ResolvedCode{Kind: models.ResolvedRaw, Code: raw}
}

// structuredAssetCode attempts the JSON branch of the chain
func structuredAssetCode(raw string) (string, bool) {
	var parsed map[string]interface{}
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		return "", false
	}

	for _, key := range []string{"assetCode", "asset_code"} {
		if value, ok := parsed[key].(string); ok && value != "" {
			return value, true
		}
	}
	return "", false
}

// ExtractDeviceInfo runs the independent device metadata chain: structured
// JSON fields, then labeled serial/model/type patterns, then a heuristic for
// payloads that look like a bare device token. Returns nil when the payload
// carries no recognizable device information.
func (r *CodeResolver) ExtractDeviceInfo(raw string) *models.DeviceInfo {
	if info := structuredDeviceInfo(raw); info != nil {
		return info
	}

	if info := labeledDeviceInfo(raw); info != nil {
		return info
	}

	lowered := strings.ToLower(raw)
	if deviceTokenPattern.MatchString(raw) || strings.Contains(lowered, "device") || strings.Contains(lowered, "equipment") {
		return &models.DeviceInfo{
			Type:   "Device",
			Serial: raw,
			Status: "Active",
		}
	}

	return nil
}

func structuredDeviceInfo(raw string) *models.DeviceInfo {
	var parsed struct {
		Type   string `json:"type"`
		Model  string `json:"model"`
		Serial string `json:"serial"`
		Status string `json:"status"`
	}
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		return nil
	}
	if parsed.Type == "" && parsed.Model == "" && parsed.Serial == "" {
		return nil
	}

	info := &models.DeviceInfo{
		Type:   parsed.Type,
		Model:  parsed.Model,
		Serial: parsed.Serial,
		Status: parsed.Status,
	}
	if info.Type == "" {
		info.Type = "Unknown Device"
	}
	if info.Status == "" {
		info.Status = "Active"
	}
	return info
}

func labeledDeviceInfo(raw string) *models.DeviceInfo {
	info := &models.DeviceInfo{}
	matched := false

	if m := serialPattern.FindStringSubmatch(raw); m != nil {
		info.Serial = strings.TrimSpace(m[1])
		matched = true
	}
	if m := modelPattern.FindStringSubmatch(raw); m != nil {
		info.Model = strings.TrimSpace(m[1])
		matched = true
	}
	if m := deviceTypePattern.FindStringSubmatch(raw); m != nil {
		info.Type = strings.TrimSpace(m[1])
		matched = true
	}

	if !matched {
		return nil
	}
	if info.Type == "" {
		info.Type = "Device"
	}
	info.Status = "Active"
	return info
}
