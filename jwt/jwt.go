package jwt

import (
	"github.com/golang-jwt/jwt/v5"
	"time"
)

type Claims struct {
	UserID        uint   `json:"userID"`
	NombreUsuario string `json:"nombre_usuario"`
	jwt.RegisteredClaims
}

// Genera un token HS256 con 24 horas de vigencia.
func GenerateToken(userID uint, nombreUsuario string, secret string) (string, error) {
	claims := &Claims{
		UserID:        userID,
		NombreUsuario: nombreUsuario,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour * 24)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// Verifica el token y devuelve el ID y el nombre del usuario.
func VerifyToken(tokenString string, secret string) (uint, string, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})
	if err != nil {
		return 0, "", err
	}

	if !token.Valid {
		return 0, "", jwt.ErrTokenSignatureInvalid
	}

	return claims.UserID, claims.NombreUsuario, nil
}
