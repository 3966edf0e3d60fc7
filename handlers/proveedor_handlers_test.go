package handlers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateProveedorSinContacto(t *testing.T) {
	router := setupRouter(t)

	recorder := doRequest(t, router, http.MethodPost, "/api/proveedores", map[string]interface{}{
		"nombre_proveedor": "Distribuidora Sur",
		"celular":          "987654321",
	})

	require.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Contains(t, errorMessages(t, recorder), "El nombre de contacto es obligatorio")
}

func TestCreateProveedorSinDireccion(t *testing.T) {
	router := setupRouter(t)

	recorder := doRequest(t, router, http.MethodPost, "/api/proveedores", map[string]interface{}{
		"nombre_proveedor": "Distribuidora Sur",
		"nombre_contacto":  "María Pérez",
		"celular":          "987654321",
	})

	require.Equal(t, http.StatusCreated, recorder.Code)
	creado := decodeBody(t, recorder)
	assert.Equal(t, float64(1), creado["id"])
	assert.Equal(t, "Distribuidora Sur", creado["nombre_proveedor"])
	// La dirección es opcional y queda en null
	require.Contains(t, creado, "direccion")
	assert.Nil(t, creado["direccion"])
}

func TestPatchProveedorDireccion(t *testing.T) {
	router := setupRouter(t)

	recorder := doRequest(t, router, http.MethodPost, "/api/proveedores", map[string]interface{}{
		"nombre_proveedor": "Distribuidora Sur",
		"nombre_contacto":  "María Pérez",
		"celular":          "987654321",
	})
	require.Equal(t, http.StatusCreated, recorder.Code)

	recorder = doRequest(t, router, http.MethodPatch, "/api/proveedores/1", map[string]interface{}{
		"direccion": "Av. Los Olivos 123",
	})
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, map[string]interface{}{
		"id":        "1",
		"direccion": "Av. Los Olivos 123",
	}, decodeBody(t, recorder))

	recorder = doRequest(t, router, http.MethodGet, "/api/proveedores/1", nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	fila := decodeBody(t, recorder)
	assert.Equal(t, "Av. Los Olivos 123", fila["direccion"])
}

func TestProveedorNoEncontrado(t *testing.T) {
	router := setupRouter(t)

	recorder := doRequest(t, router, http.MethodGet, "/api/proveedores/42", nil)
	require.Equal(t, http.StatusNotFound, recorder.Code)
	assert.JSONEq(t, `{"error":"Proveedor no encontrado"}`, recorder.Body.String())

	recorder = doRequest(t, router, http.MethodDelete, "/api/proveedores/42", nil)
	require.Equal(t, http.StatusNotFound, recorder.Code)

	recorder = doRequest(t, router, http.MethodPatch, "/api/proveedores/42", map[string]interface{}{
		"celular": "111222333",
	})
	require.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestDeleteProveedor(t *testing.T) {
	router := setupRouter(t)

	recorder := doRequest(t, router, http.MethodPost, "/api/proveedores", map[string]interface{}{
		"nombre_proveedor": "Distribuidora Norte",
		"nombre_contacto":  "Juan Quispe",
		"celular":          "912345678",
	})
	require.Equal(t, http.StatusCreated, recorder.Code)

	recorder = doRequest(t, router, http.MethodDelete, "/api/proveedores/1", nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, `{"message":"Proveedor eliminado"}`, recorder.Body.String())
}
