package client_test

import (
	"os"
	"path/filepath"
	"testing"

	"Inventario/client"
	"Inventario/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sesionDePrueba() client.SessionPayload {
	return client.SessionPayload{
		Usuario: models.Usuario{
			IDUsuario:     1,
			NombreUsuario: "ana",
			Correo:        "ana@example.com",
		},
		Token: "token-de-prueba",
	}
}

func TestSessionStoreSinArchivo(t *testing.T) {
	store := client.NewSessionStore(filepath.Join(t.TempDir(), "user.json"))

	// Antes de cargar, la fase transitoria bloquea el acceso
	assert.True(t, store.Loading())
	assert.False(t, store.IsAuthenticated())
	assert.Equal(t, client.GateLoading, store.Gate())

	require.NoError(t, store.Load())

	assert.False(t, store.Loading())
	assert.False(t, store.IsAuthenticated())
	assert.Equal(t, client.GateRedirect, store.Gate())
	_, ok := store.Current()
	assert.False(t, ok)
}

func TestSessionStoreIdaYVuelta(t *testing.T) {
	path := filepath.Join(t.TempDir(), "user.json")

	store := client.NewSessionStore(path)
	require.NoError(t, store.Load())
	require.NoError(t, store.Login(sesionDePrueba()))
	assert.True(t, store.IsAuthenticated())
	assert.Equal(t, client.GateAllow, store.Gate())

	// Un arranque nuevo recupera la misma sesión sin red de por medio
	recargado := client.NewSessionStore(path)
	require.NoError(t, recargado.Load())
	assert.True(t, recargado.IsAuthenticated())

	actual, ok := recargado.Current()
	require.True(t, ok)
	assert.Equal(t, sesionDePrueba(), actual)
}

func TestSessionStoreLogout(t *testing.T) {
	path := filepath.Join(t.TempDir(), "user.json")

	store := client.NewSessionStore(path)
	require.NoError(t, store.Load())
	require.NoError(t, store.Login(sesionDePrueba()))

	ruta := store.Logout()

	assert.Equal(t, client.EntryRoute, ruta)
	assert.False(t, store.IsAuthenticated())
	assert.Equal(t, client.GateRedirect, store.Gate())
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestSessionStoreArchivoCorrupto(t *testing.T) {
	path := filepath.Join(t.TempDir(), "user.json")
	require.NoError(t, os.WriteFile(path, []byte("{esto no es json"), 0600))

	store := client.NewSessionStore(path)
	err := store.Load()

	require.Error(t, err)
	// La carga terminó igual, solo que sin sesión
	assert.False(t, store.Loading())
	assert.False(t, store.IsAuthenticated())
}
