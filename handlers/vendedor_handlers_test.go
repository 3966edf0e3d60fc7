package handlers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateVendedorDniCorto(t *testing.T) {
	router := setupRouter(t)

	recorder := doRequest(t, router, http.MethodPost, "/api/vendedores", map[string]interface{}{
		"nombre_vendedor": "Carlos Rojas",
		"dni":             "1234567",
		"celular":         "987654321",
	})

	require.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Contains(t, errorMessages(t, recorder), "El DNI debe tener 8 dígitos")
}

func TestCreateVendedor(t *testing.T) {
	router := setupRouter(t)

	recorder := doRequest(t, router, http.MethodPost, "/api/vendedores", map[string]interface{}{
		"nombre_vendedor": "Carlos Rojas",
		"dni":             "12345678",
		"celular":         "987654321",
		"direccion":       "Jr. Amazonas 456",
	})

	require.Equal(t, http.StatusCreated, recorder.Code)
	creado := decodeBody(t, recorder)
	assert.Equal(t, float64(1), creado["id"])
	assert.Equal(t, "12345678", creado["dni"])
	assert.Equal(t, "Jr. Amazonas 456", creado["direccion"])
}

func TestPatchVendedorDniInvalido(t *testing.T) {
	router := setupRouter(t)

	recorder := doRequest(t, router, http.MethodPost, "/api/vendedores", map[string]interface{}{
		"nombre_vendedor": "Carlos Rojas",
		"dni":             "12345678",
		"celular":         "987654321",
	})
	require.Equal(t, http.StatusCreated, recorder.Code)

	recorder = doRequest(t, router, http.MethodPatch, "/api/vendedores/1", map[string]interface{}{
		"dni": "123",
	})
	require.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Contains(t, errorMessages(t, recorder), "El DNI debe tener 8 dígitos")

	// La regla solo corre sobre los campos presentes
	recorder = doRequest(t, router, http.MethodPatch, "/api/vendedores/1", map[string]interface{}{
		"celular": "999888777",
	})
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, map[string]interface{}{
		"id":      "1",
		"celular": "999888777",
	}, decodeBody(t, recorder))
}

func TestVendedorNoEncontrado(t *testing.T) {
	router := setupRouter(t)

	recorder := doRequest(t, router, http.MethodGet, "/api/vendedores/7", nil)
	require.Equal(t, http.StatusNotFound, recorder.Code)
	assert.JSONEq(t, `{"error":"Vendedor no encontrado"}`, recorder.Body.String())
}

func TestDeleteVendedorDosVeces(t *testing.T) {
	router := setupRouter(t)

	recorder := doRequest(t, router, http.MethodPost, "/api/vendedores", map[string]interface{}{
		"nombre_vendedor": "Lucía Torres",
		"dni":             "87654321",
		"celular":         "911222333",
	})
	require.Equal(t, http.StatusCreated, recorder.Code)

	recorder = doRequest(t, router, http.MethodDelete, "/api/vendedores/1", nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, `{"message":"Vendedor eliminado"}`, recorder.Body.String())

	recorder = doRequest(t, router, http.MethodDelete, "/api/vendedores/1", nil)
	require.Equal(t, http.StatusNotFound, recorder.Code)
}
