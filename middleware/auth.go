package middleware

import (
	"Inventario/jwt"
	"github.com/gin-gonic/gin"
	"strings"
)

// Extrae la identidad del header Authorization si existe; nunca corta la
// petición, las rutas no se protegen del lado del servidor.
func AuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		token := strings.TrimPrefix(authHeader, "Bearer ")

		if token == "" || token == authHeader {
			c.Next()
			return
		}

		userID, nombreUsuario, err := jwt.VerifyToken(token, secret)
		if err != nil {
			c.Header("Authorization", "")
			c.Next()
			return
		}

		c.Set("Token", token)
		c.Set("UserID", userID)
		c.Set("Usuario", nombreUsuario)
		c.Next()
	}
}
