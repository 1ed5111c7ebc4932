package jwt_test

import (
	"testing"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgjwt "github.com/jhoicas/pedidos-api/pkg/jwt"
)

const testSecret = "test-secret-key-for-unit-tests"

func TestGenerateAndParse(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, "ana", "pedidos-api-test", 60)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	username, err := pkgjwt.Parse(testSecret, tok)
	require.NoError(t, err)
	assert.Equal(t, "ana", username)
}

func TestGenerate_SinExpiracion(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, "ana", "pedidos-api-test", 0)
	require.NoError(t, err)

	claims := &pkgjwt.Claims{}
	_, _, err = gojwt.NewParser().ParseUnverified(tok, claims)
	require.NoError(t, err)
	assert.Nil(t, claims.ExpiresAt, "exp <= 0 no debe emitir claim exp")
	assert.Equal(t, "ana", claims.Username)

	username, err := pkgjwt.Parse(testSecret, tok)
	require.NoError(t, err)
	assert.Equal(t, "ana", username)
}

func TestParse_TokenExpirado(t *testing.T) {
	claims := pkgjwt.Claims{Username: "ana"}
	claims.ExpiresAt = gojwt.NewNumericDate(time.Now().Add(-time.Minute))
	expired, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = pkgjwt.Parse(testSecret, expired)
	assert.Error(t, err, "token expirado debe retornar error")
}

func TestParse_SecretIncorrecto(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, "ana", "pedidos-api-test", 60)
	require.NoError(t, err)

	_, err = pkgjwt.Parse("otro-secret-completamente-distinto", tok)
	assert.Error(t, err)
}

func TestGenerate_SecretVacio(t *testing.T) {
	_, err := pkgjwt.Generate("", "ana", "x", 60)
	assert.Error(t, err)
}
