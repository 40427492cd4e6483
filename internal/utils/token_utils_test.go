package utils_test

import (
	"testing"
	"time"

	"github.com/mnjscf/team_ops_app/internal/utils"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "unit-test-secret-key"

func TestGenerateAndParseJWT(t *testing.T) {
	token, err := utils.GenerateJWT("vishakha", testSecret, time.Hour, "tob-backend")
	require.NoError(t, err)

	claims, err := utils.ParseAndValidateJWT(token, testSecret)
	require.NoError(t, err)
	assert.Equal(t, "vishakha", claims.Subject)
	assert.Equal(t, "tob-backend", claims.Issuer)
}

func TestParseJWT_WrongSecret(t *testing.T) {
	token, err := utils.GenerateJWT("vishakha", testSecret, time.Hour, "tob-backend")
	require.NoError(t, err)

	_, err = utils.ParseAndValidateJWT(token, "a-different-secret")
	assert.ErrorIs(t, err, jwt.ErrTokenSignatureInvalid)
}

func TestParseJWT_Expired(t *testing.T) {
	token, err := utils.GenerateJWT("vishakha", testSecret, -time.Minute, "tob-backend")
	require.NoError(t, err)

	_, err = utils.ParseAndValidateJWT(token, testSecret)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}
