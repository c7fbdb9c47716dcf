package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/punura-itd/CIC-AGRI-IMS/config"
)

func jwtConfig(secret string) *config.Config {
	return &config.Config{JWTSecretKey: secret}
}

func TestGenerateAndExtractClaims(t *testing.T) {
	service := NewJWTService(jwtConfig("test-secret"))

	token, err := service.GenerateToken(42, "admin")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := service.ExtractClaims(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "admin", claims.Role)
	assert.Equal(t, "cic-agri-ims", claims.Issuer)
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	issuer := NewJWTService(jwtConfig("secret-a"))
	verifier := NewJWTService(jwtConfig("secret-b"))

	token, err := issuer.GenerateToken(1, "user")
	require.NoError(t, err)

	_, err = verifier.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	service := NewJWTService(jwtConfig("test-secret"))

	_, err := service.ValidateToken("not.a.token")
	assert.Error(t, err)

	_, err = service.ExtractClaims("")
	assert.Error(t, err)
}

func TestRoleIsCarriedVerbatim(t *testing.T) {
	service := NewJWTService(jwtConfig("test-secret"))

	// Alias roles are not normalized at issue time
	token, err := service.GenerateToken(7, "Manager")
	require.NoError(t, err)

	claims, err := service.ExtractClaims(token)
	require.NoError(t, err)
	assert.Equal(t, "Manager", claims.Role)
}
