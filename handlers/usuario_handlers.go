package handlers

import (
	"Inventario/models"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var usuarioCreateMessages = map[string]string{
	"nombre_usuario.required": "El nombre es obligatorio",
	"password.required":       "La contraseña es obligatoria",
	"correo.required":         "El correo es obligatorio",
	"correo.email":            "El correo debe ser válido",
}

var usuarioTypeMessages = map[string]string{
	"nombre_usuario": "El nombre debe ser una cadena de texto",
	"correo":         "El correo debe ser una cadena de texto",
	"password":       "La contraseña debe ser una cadena de texto",
}

// Listar usuarios
func GetUsuariosHandler(c *gin.Context, db *gorm.DB) {
	usuarios := make([]models.Usuario, 0)
	if err := db.Find(&usuarios).Error; err != nil {
		logger.Error().Err(err).Msg("no se pudo obtener la lista de usuarios")
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Error al obtener los usuarios",
		})
		return
	}

	c.JSON(http.StatusOK, usuarios)
}

// Consultar un usuario por ID
func GetUsuarioHandler(c *gin.Context, db *gorm.DB) {
	id := c.Param("id")

	var usuario models.Usuario
	if err := db.First(&usuario, "id_usuario = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Usuario no encontrado",
			})
			return
		}
		logger.Error().Err(err).Str("id", id).Msg("no se pudo consultar el usuario")
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Error al obtener el usuario",
		})
		return
	}

	c.JSON(http.StatusOK, usuario)
}

// Crear usuario. La contraseña se guarda como hash bcrypt y nunca se devuelve.
func CreateUsuarioHandler(c *gin.Context, db *gorm.DB) {
	var req struct {
		NombreUsuario string `json:"nombre_usuario" validate:"required"`
		Password      string `json:"password" validate:"required"`
		Correo        string `json:"correo" validate:"required,email"`
	}
	if !bindJSON(c, &req, usuarioTypeMessages) {
		return
	}
	if fieldErrs := checkStruct(req, usuarioCreateMessages); len(fieldErrs) > 0 {
		respondValidation(c, fieldErrs)
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.Error().Err(err).Msg("no se pudo generar el hash de la contraseña")
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Error al crear el usuario",
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
			"error": "Error al crear el usuario",
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":             usuario.IDUsuario,
		"nombre_usuario": usuario.NombreUsuario,
		"correo":         usuario.Correo,
	})
}

// Actualizar parcialmente un usuario
func UpdateUsuarioHandler(c *gin.Context, db *gorm.DB) {
	id := c.Param("id")

	var req struct {
		NombreUsuario *string `json:"nombre_usuario"`
		Password      *string `json:"password"`
		Correo        *string `json:"correo" validate:"omitempty,email"`
	}
	if !bindJSON(c, &req, usuarioTypeMessages) {
		return
	}
	if fieldErrs := checkStruct(req, usuarioCreateMessages); len(fieldErrs) > 0 {
		respondValidation(c, fieldErrs)
		return
	}

	updates := map[string]interface{}{}
	respuesta := gin.H{"id": id}
	if req.NombreUsuario != nil {
		updates["nombre_usuario"] = *req.NombreUsuario
		respuesta["nombre_usuario"] = *req.NombreUsuario
	}
	if req.Correo != nil {
		updates["correo"] = *req.Correo
		respuesta["correo"] = *req.Correo
	}
	if req.Password != nil {
		// El eco de la respuesta omite la contraseña.
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			logger.Error().Err(err).Msg("no se pudo generar el hash de la contraseña")
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Error al actualizar el usuario",
			})
			return
		}
		updates["password"] = string(hashedPassword)
	}
	if len(updates) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "No se han proporcionado campos para actualizar",
		})
		return
	}

	result := db.Model(&models.Usuario{}).Where("id_usuario = ?", id).Updates(updates)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "El usuario o correo ya está registrado",
			})
			return
		}
		logger.Error().Err(result.Error).Str("id", id).Msg("no se pudo actualizar el usuario")
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Error al actualizar el usuario",
		})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Usuario no encontrado",
		})
		return
	}

	c.JSON(http.StatusOK, respuesta)
}

// Eliminar usuario
func DeleteUsuarioHandler(c *gin.Context, db *gorm.DB) {
	id := c.Param("id")

	result := db.Delete(&models.Usuario{}, "id_usuario = ?", id)
	if result.Error != nil {
		logger.Error().Err(result.Error).Str("id", id).Msg("no se pudo eliminar el usuario")
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Error al eliminar el usuario",
		})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Usuario no encontrado",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Usuario eliminado",
	})
}
