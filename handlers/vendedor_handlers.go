package handlers

import (
	"Inventario/models"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

var vendedorCreateMessages = map[string]string{
	"nombre_vendedor.required": "El nombre es obligatorio",
	"dni.required":             "El DNI es obligatorio",
	"dni.len":                  "El DNI debe tener 8 dígitos",
	"celular.required":         "El celular es obligatorio",
}

var vendedorTypeMessages = map[string]string{
	"nombre_vendedor": "El nombre debe ser una cadena de texto",
	"dni":             "El DNI debe ser una cadena de texto",
	"celular":         "El celular debe ser una cadena de texto",
	"direccion":       "La dirección debe ser una cadena de texto",
}

// Listar vendedores
func GetVendedoresHandler(c *gin.Context, db *gorm.DB) {
	vendedores := make([]models.Vendedor, 0)
	if err := db.Find(&vendedores).Error; err != nil {
		logger.Error().Err(err).Msg("no se pudo obtener la lista de vendedores")
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Error al obtener los vendedores",
		})
		return
	}

	c.JSON(http.StatusOK, vendedores)
}

// Consultar un vendedor por ID
func GetVendedorHandler(c *gin.Context, db *gorm.DB) {
	id := c.Param("id")

	var vendedor models.Vendedor
	if err := db.First(&vendedor, "id_vendedor = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Vendedor no encontrado",
			})
			return
		}
		logger.Error().Err(err).Str("id", id).Msg("no se pudo consultar el vendedor")
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Error al obtener el vendedor",
		})
		return
	}

	c.JSON(http.StatusOK, vendedor)
}

// Crear vendedor
func CreateVendedorHandler(c *gin.Context, db *gorm.DB) {
	var req struct {
		NombreVendedor string  `json:"nombre_vendedor" validate:"required"`
		Dni            string  `json:"dni" validate:"required,len=8"`
		Celular        string  `json:"celular" validate:"required"`
		Direccion      *string `json:"direccion"`
	}
	if !bindJSON(c, &req, vendedorTypeMessages) {
		return
	}
	if fieldErrs := checkStruct(req, vendedorCreateMessages); len(fieldErrs) > 0 {
		respondValidation(c, fieldErrs)
		return
	}

	vendedor := models.Vendedor{
		NombreVendedor: req.NombreVendedor,
		Dni:            req.Dni,
		Celular:        req.Celular,
		Direccion:      req.Direccion,
	}
	if err := db.Create(&vendedor).Error; err != nil {
		logger.Error().Err(err).Msg("no se pudo insertar el vendedor")
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Error al crear el vendedor",
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":              vendedor.IDVendedor,
		"nombre_vendedor": vendedor.NombreVendedor,
		"dni":             vendedor.Dni,
		"celular":         vendedor.Celular,
		"direccion":       vendedor.Direccion,
	})
}

// Actualizar parcialmente un vendedor
func UpdateVendedorHandler(c *gin.Context, db *gorm.DB) {
	id := c.Param("id")

	var req struct {
		NombreVendedor *string `json:"nombre_vendedor"`
		Dni            *string `json:"dni" validate:"omitempty,len=8"`
		Celular        *string `json:"celular"`
		Direccion      *string `json:"direccion"`
	}
	if !bindJSON(c, &req, vendedorTypeMessages) {
		return
	}
	if fieldErrs := checkStruct(req, vendedorCreateMessages); len(fieldErrs) > 0 {
		respondValidation(c, fieldErrs)
		return
	}

	updates := map[string]interface{}{}
	respuesta := gin.H{"id": id}
	if req.NombreVendedor != nil {
		updates["nombre_vendedor"] = *req.NombreVendedor
		respuesta["nombre_vendedor"] = *req.NombreVendedor
	}
	if req.Dni != nil {
		updates["dni"] = *req.Dni
		respuesta["dni"] = *req.Dni
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

	result := db.Model(&models.Vendedor{}).Where("id_vendedor = ?", id).Updates(updates)
	if result.Error != nil {
		logger.Error().Err(result.Error).Str("id", id).Msg("no se pudo actualizar el vendedor")
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Error al actualizar el vendedor",
		})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Vendedor no encontrado",
		})
		return
	}

	c.JSON(http.StatusOK, respuesta)
}

// Eliminar vendedor
func DeleteVendedorHandler(c *gin.Context, db *gorm.DB) {
	id := c.Param("id")

	result := db.Delete(&models.Vendedor{}, "id_vendedor = ?", id)
	if result.Error != nil {
		logger.Error().Err(result.Error).Str("id", id).Msg("no se pudo eliminar el vendedor")
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Error al eliminar el vendedor",
		})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Vendedor no encontrado",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Vendedor eliminado",
	})
}
