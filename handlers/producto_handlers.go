package handlers

import (
	"Inventario/models"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

var productoCreateMessages = map[string]string{
	"nombre_producto.required": "El nombre es obligatorio",
	"precio.required":          "El precio es obligatorio",
	"stock.required":           "El stock es obligatorio",
}

var productoTypeMessages = map[string]string{
	"nombre_producto": "El nombre debe ser una cadena de texto",
	"precio":          "El precio debe ser un número",
	"stock":           "El stock debe ser un número entero",
}

// Listar productos
func GetProductosHandler(c *gin.Context, db *gorm.DB) {
	productos := make([]models.Producto, 0)
	if err := db.Find(&productos).Error; err != nil {
		logger.Error().Err(err).Msg("no se pudo obtener la lista de productos")
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Error al obtener los productos",
		})
		return
	}

	c.JSON(http.StatusOK, productos)
}

// Consultar un producto por ID
func GetProductoHandler(c *gin.Context, db *gorm.DB) {
	id := c.Param("id")

	var producto models.Producto
	if err := db.First(&producto, "id_producto = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Producto no encontrado",
			})
			return
		}
		logger.Error().Err(err).Str("id", id).Msg("no se pudo consultar el producto")
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Error al obtener el producto",
		})
		return
	}

	c.JSON(http.StatusOK, producto)
}

// Crear producto
func CreateProductoHandler(c *gin.Context, db *gorm.DB) {
	var req struct {
		NombreProducto string   `json:"nombre_producto" validate:"required"`
		Precio         *float64 `json:"precio" validate:"required"`
		Stock          *int     `json:"stock" validate:"required"`
	}
	if !bindJSON(c, &req, productoTypeMessages) {
		return
	}
	if fieldErrs := checkStruct(req, productoCreateMessages); len(fieldErrs) > 0 {
		respondValidation(c, fieldErrs)
		return
	}

	producto := models.Producto{
		NombreProducto: req.NombreProducto,
		Precio:         *req.Precio,
		Stock:          *req.Stock,
	}
	if err := db.Create(&producto).Error; err != nil {
		logger.Error().Err(err).Msg("no se pudo insertar el producto")
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Error al crear el producto",
		})
		return
	}

	// Se devuelve lo enviado más el ID generado, sin releer la fila.
	c.JSON(http.StatusCreated, gin.H{
		"id":              producto.IDProducto,
		"nombre_producto": producto.NombreProducto,
		"precio":          producto.Precio,
		"stock":           producto.Stock,
	})
}

// Actualizar parcialmente un producto
func UpdateProductoHandler(c *gin.Context, db *gorm.DB) {
	id := c.Param("id")

	var req struct {
		NombreProducto *string  `json:"nombre_producto"`
		Precio         *float64 `json:"precio"`
		Stock          *int     `json:"stock"`
	}
	if !bindJSON(c, &req, productoTypeMessages) {
		return
	}

	// Solo las columnas de la lista permitida llegan al SET.
	updates := map[string]interface{}{}
	respuesta := gin.H{"id": id}
	if req.NombreProducto != nil {
		updates["nombre_producto"] = *req.NombreProducto
		respuesta["nombre_producto"] = *req.NombreProducto
	}
	if req.Precio != nil {
		updates["precio"] = *req.Precio
		respuesta["precio"] = *req.Precio
	}
	if req.Stock != nil {
		updates["stock"] = *req.Stock
		respuesta["stock"] = *req.Stock
	}
	if len(updates) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "No se han proporcionado campos para actualizar",
		})
		return
	}

	result := db.Model(&models.Producto{}).Where("id_producto = ?", id).Updates(updates)
	if result.Error != nil {
		logger.Error().Err(result.Error).Str("id", id).Msg("no se pudo actualizar el producto")
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Error al actualizar el producto",
		})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Producto no encontrado",
		})
		return
	}

	c.JSON(http.StatusOK, respuesta)
}

// Eliminar producto
func DeleteProductoHandler(c *gin.Context, db *gorm.DB) {
	id := c.Param("id")

	result := db.Delete(&models.Producto{}, "id_producto = ?", id)
	if result.Error != nil {
		logger.Error().Err(result.Error).Str("id", id).Msg("no se pudo eliminar el producto")
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Error al eliminar el producto",
		})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Producto no encontrado",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Producto eliminado",
	})
}
