package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"Inventario/jwt"
	"Inventario/middleware"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secreto = "secreto-de-prueba"

func routerDePrueba() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(middleware.AuthMiddleware(secreto))
	router.GET("/quien", func(c *gin.Context) {
		nombreUsuario, ok := c.Get("Usuario")
		if !ok {
			c.JSON(http.StatusOK, gin.H{"anonimo": true})
			return
		}
		c.JSON(http.StatusOK, gin.H{"usuario": nombreUsuario})
	})
	return router
}

func TestAuthMiddlewareConToken(t *testing.T) {
	router := routerDePrueba()
	token, err := jwt.GenerateToken(1, "ana", secreto)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/quien", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, `{"usuario":"ana"}`, recorder.Body.String())
}

func TestAuthMiddlewareSinToken(t *testing.T) {
	router := routerDePrueba()

	req := httptest.NewRequest(http.MethodGet, "/quien", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, `{"anonimo":true}`, recorder.Body.String())
}

// Un token inválido no corta la petición, solo deja al cliente anónimo.
func TestAuthMiddlewareTokenInvalido(t *testing.T) {
	router := routerDePrueba()

	req := httptest.NewRequest(http.MethodGet, "/quien", nil)
	req.Header.Set("Authorization", "Bearer basura")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, `{"anonimo":true}`, recorder.Body.String())
}
