package handlers

import (
	"Inventario/jwt"
	"Inventario/models"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var authMessages = map[string]string{
	"usuario.required":  "El nombre de usuario o correo es obligatorio",
	"password.required": "La contraseña es obligatoria",
}

var authTypeMessages = map[string]string{
	"usuario":  "El nombre de usuario o correo debe ser una cadena de texto",
	"password": "La contraseña debe ser una cadena de texto",
}

// Iniciar sesión con nombre de usuario o correo. Un identificador
// desconocido y una contraseña incorrecta producen la misma respuesta.
func LoginHandler(c *gin.Context, db *gorm.DB, jwtSecret string) {
	var req struct {
		Usuario  string `json:"usuario" validate:"required"`
		Password string `json:"password" validate:"required"`
	}
	if !bindJSON(c, &req, authTypeMessages) {
		return
	}
	if fieldErrs := checkStruct(req, authMessages); len(fieldErrs) > 0 {
		respondValidation(c, fieldErrs)
		return
	}

	var usuario models.Usuario
	err := db.First(&usuario, "nombre_usuario = ? OR correo = ?", req.Usuario, req.Usuario).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusUnauthorized, gin.H{
				"ingresa": false,
				"error":   "Usuario, correo o contraseña incorrectos",
			})
			return
		}
		logger.Error().Err(err).Msg("no se pudo consultar el usuario al autenticar")
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Error al autenticar usuario",
		})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(usuario.Password), []byte(req.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{
			"ingresa": false,
			"error":   "Usuario, correo o contraseña incorrectos",
		})
		return
	}

	token, err := jwt.GenerateToken(usuario.IDUsuario, usuario.NombreUsuario, jwtSecret)
	if err != nil {
		logger.Error().Err(err).Msg("no se pudo generar el token")
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Error al autenticar usuario",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"ingresa": true,
		"usuario": usuario,
		"token":   token,
	})
}

// Registrar un usuario nuevo. La consulta previa solo da un error amable;
// la garantía de unicidad es el índice único de la tabla.
func RegisterHandler(c *gin.Context, db *gorm.DB, jwtSecret string) {
	var req struct {
		NombreUsuario string `json:"nombre_usuario" validate:"required"`
		Correo        string `json:"correo" validate:"required,email"`
		Password      string `json:"password" validate:"required"`
	}
	if !bindJSON(c, &req, usuarioTypeMessages) {
		return
	}
	if fieldErrs := checkStruct(req, usuarioCreateMessages); len(fieldErrs) > 0 {
		respondValidation(c, fieldErrs)
		return
	}

	var existente models.Usuario
	err := db.First(&existente, "nombre_usuario = ? OR correo = ?", req.NombreUsuario, req.Correo).Error
	if err == nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "El usuario o correo ya está registrado",
		})
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		logger.Error().Err(err).Msg("no se pudo comprobar si el usuario existe")
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Error al registrar usuario",
		})
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.Error().Err(err).Msg("no se pudo generar el hash de la contraseña")
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Error al registrar usuario",
		})
		return
	}

	usuario := models.Usuario{
		NombreUsuario: req.NombreUsuario,
		Correo:        req.Correo,
		Password:      string(hashedPassword),
	}
	if err := db.Create(&usuario).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "El usuario o correo ya está registrado",
			})
			return
		}
		logger.Error().Err(err).Msg("no se pudo insertar el usuario")
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Error al registrar usuario",
		})
		return
	}

	token, err := jwt.GenerateToken(usuario.IDUsuario, usuario.NombreUsuario, jwtSecret)
	if err != nil {
		logger.Error().Err(err).Msg("no se pudo generar el token")
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Error al registrar usuario",
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"ingresa": true,
		"usuario": usuario,
		"token":   token,
	})
}
