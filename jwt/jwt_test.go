package jwt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenIdaYVuelta(t *testing.T) {
	token, err := GenerateToken(7, "ana", "secreto-de-prueba")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, nombreUsuario, err := VerifyToken(token, "secreto-de-prueba")
	require.NoError(t, err)
	assert.Equal(t, uint(7), userID)
	assert.Equal(t, "ana", nombreUsuario)
}

func TestTokenConOtroSecreto(t *testing.T) {
	token, err := GenerateToken(7, "ana", "secreto-de-prueba")
	require.NoError(t, err)

	_, _, err = VerifyToken(token, "otro-secreto")
	assert.Error(t, err)
}

func TestTokenBasura(t *testing.T) {
	_, _, err := VerifyToken("no-es-un-token", "secreto-de-prueba")
	assert.Error(t, err)
}
