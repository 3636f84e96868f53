package jwt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgjwt "github.com/mgagro/agro-api/pkg/jwt"
)

const (
	testSecret = "secret-de-test"
	testIssuer = "mg-agro-test"
)

func TestGenerateAndParse(t *testing.T) {
	empleadoID := int64(3)
	tok, err := pkgjwt.Generate(testSecret, pkgjwt.Claims{
		UserID:     11,
		Email:      "admin@mgagro.com",
		Nombre:     "Admin",
		Rol:        "admin",
		EmpleadoID: &empleadoID,
	}, testIssuer, 60)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	claims, err := pkgjwt.Parse(testSecret, tok)
	require.NoError(t, err)

	assert.Equal(t, int64(11), claims.UserID)
	assert.Equal(t, "admin@mgagro.com", claims.Email)
	assert.Equal(t, "admin", claims.Rol)
	require.NotNil(t, claims.EmpleadoID)
	assert.Equal(t, empleadoID, *claims.EmpleadoID)
	assert.Equal(t, testIssuer, claims.Issuer)
}

func TestParse_TokenExpirado(t *testing.T) {
	// Expiración -1 minuto: ya expirado al generarse.
	tok, err := pkgjwt.Generate(testSecret, pkgjwt.Claims{UserID: 1, Rol: "admin"}, testIssuer, -1)
	require.NoError(t, err)

	_, err = pkgjwt.Parse(testSecret, tok)
	assert.Error(t, err, "token expirado debe retornar error")
}

func TestParse_SecretIncorrecto(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, pkgjwt.Claims{UserID: 1, Rol: "admin"}, testIssuer, 60)
	require.NoError(t, err)

	_, err = pkgjwt.Parse("otro-secret-completamente-distinto", tok)
	assert.Error(t, err, "secret incorrecto debe invalidar el token")
}

func TestGenerate_SecretVacio(t *testing.T) {
	_, err := pkgjwt.Generate("", pkgjwt.Claims{UserID: 1}, testIssuer, 60)
	assert.Error(t, err)
}
