package handlers

import (
	"Inventario/models"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

var proveedorCreateMessages = map[string]string{
	"nombre_proveedor.required": "El nombre es obligatorio",
	"nombre_contacto.required":  "El nombre de contacto es obligatorio",
	"celular.required":          "El celular es obligatorio",
}

var proveedorTypeMessages = map[string]string{
	"nombre_proveedor": "El nombre debe ser una cadena de texto",
	"nombre_contacto":  "El nombre de contacto debe ser una cadena de texto",
	"celular":          "El celular debe ser una cadena de texto",
	"direccion":        "La dirección debe ser una cadena de texto",
}

// Listar proveedores
func GetProveedoresHandler(c *gin.Context, db *gorm.DB) {
	proveedores := make([]models.Proveedor, 0)
	if err := db.Find(&proveedores).Error; err != nil {
		logger.Error().Err(err).Msg("no se pudo obtener la lista de proveedores")
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Error al obtener los proveedores",
		})
		return
	}

	c.JSON(http.StatusOK, proveedores)
}

// Consultar un proveedor por ID
func GetProveedorHandler(c *gin.Context, db *gorm.DB) {
	id := c.Param("id")

	var proveedor models.Proveedor
	if err := db.First(&proveedor, "id_proveedor = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Proveedor no encontrado",
			})
			return
		}
		logger.Error().Err(err).Str("id", id).Msg("no se pudo consultar el proveedor")
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Error al obtener el proveedor",
		})
		return
	}

	c.JSON(http.StatusOK, proveedor)
}

// Crear proveedor
func CreateProveedorHandler(c *gin.Context, db *gorm.DB) {
	var req struct {
		NombreProveedor string  `json:"nombre_proveedor" validate:"required"`
		NombreContacto  string  `json:"nombre_contacto" validate:"required"`
		Celular         string  `json:"celular" validate:"required"`
		Direccion       *string `json:"direccion"`
	}
	if !bindJSON(c, &req, proveedorTypeMessages) {
		return
	}
	if fieldErrs := checkStruct(req, proveedorCreateMessages); len(fieldErrs) > 0 {
		respondValidation(c, fieldErrs)
		return
	}

	proveedor := models.Proveedor{
		NombreProveedor: req.NombreProveedor,
		NombreContacto:  req.NombreContacto,
		Celular:         req.Celular,
		Direccion:       req.Direccion,
	}
	if err := db.Create(&proveedor).Error; err != nil {
		logger.Error().Err(err).Msg("no se pudo insertar el proveedor")
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Error al crear el proveedor",
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":               proveedor.IDProveedor,
		"nombre_proveedor": proveedor.NombreProveedor,
		"nombre_contacto":  proveedor.NombreContacto,
		"celular":          proveedor.Celular,
		"direccion":        proveedor.Direccion,
	})
}

// Actualizar parcialmente un proveedor
func UpdateProveedorHandler(c *gin.Context, db *gorm.DB) {
	id := c.Param("id")

	var req struct {
		NombreProveedor *string `json:"nombre_proveedor"`
		NombreContacto  *string `json:"nombre_contacto"`
		Celular         *string `json:"celular"`
		Direccion       *string `json:"direccion"`
	}
	if !bindJSON(c, &req, proveedorTypeMessages) {
		return
	}

	updates := map[string]interface{}{}
	respuesta := gin.H{"id": id}
	if req.NombreProveedor != nil {
		updates["nombre_proveedor"] = *req.NombreProveedor
		respuesta["nombre_proveedor"] = *req.NombreProveedor
	}
	if req.NombreContacto != nil {
		updates["nombre_contacto"] = *req.NombreContacto
		respuesta["nombre_contacto"] = *req.NombreContacto
	}
	if req.Celular != nil {
		updates["celular"] = *req.Celular
		respuesta["celular"] = *req.Celular
	}
	if req.Direccion != nil {
		updates["direccion"] = *req.Direccion
		respuesta["direccion"] = *req.Direccion
	}
	if len(updates) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "No se han proporcionado campos para actualizar",
		})
		return
	}

	result := db.Model(&models.Proveedor{}).Where("id_proveedor = ?", id).Updates(updates)
	if result.Error != nil {
		logger.Error().Err(result.Error).Str("id", id).Msg("no se pudo actualizar el proveedor")
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Error al actualizar el proveedor",
		})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Proveedor no encontrado",
		})
		return
	}

	c.JSON(http.StatusOK, respuesta)
}

// Eliminar proveedor
func DeleteProveedorHandler(c *gin.Context, db *gorm.DB) {
	id := c.Param("id")

	result := db.Delete(&models.Proveedor{}, "id_proveedor = ?", id)
	if result.Error != nil {
		logger.Error().Err(result.Error).Str("id", id).Msg("no se pudo eliminar el proveedor")
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Error al eliminar el proveedor",
		})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Proveedor no encontrado",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Proveedor eliminado",
	})
}
