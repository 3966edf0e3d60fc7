package routers

import (
	"Inventario/config"
	"Inventario/handlers"
	"Inventario/middleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"net/http"
)

func SetupRouters(db *gorm.DB, cfg config.Config) *gin.Engine {
	router := gin.Default()
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Expose-Headers", "Authorization")
		c.Next()
	})
	if err := router.SetTrustedProxies(nil); err != nil {
		panic("no se pudo configurar los proxies de confianza: " + err.Error())
	}

	router.OPTIONS("/*path", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	jwtSecret := cfg.JWTSecret()
	router.Use(middleware.AuthMiddleware(jwtSecret))

	api := router.Group("/api")
	{
		//Autenticación y registro
		api.POST("/auth", func(c *gin.Context) {
			handlers.LoginHandler(c, db, jwtSecret)
		})
		api.POST("/auth/register", func(c *gin.Context) {
			handlers.RegisterHandler(c, db, jwtSecret)
		})

		//Productos
		api.GET("/productos", func(c *gin.Context) {
			handlers.GetProductosHandler(c, db)
		})
		api.GET("/productos/:id", func(c *gin.Context) {
			handlers.GetProductoHandler(c, db)
		})
		api.POST("/productos", func(c *gin.Context) {
			handlers.CreateProductoHandler(c, db)
		})
		api.PATCH("/productos/:id", func(c *gin.Context) {
			handlers.UpdateProductoHandler(c, db)
		})
		api.DELETE("/productos/:id", func(c *gin.Context) {
			handlers.DeleteProductoHandler(c, db)
		})

		//Proveedores
		api.GET("/proveedores", func(c *gin.Context) {
			handlers.GetProveedoresHandler(c, db)
		})
		api.GET("/proveedores/:id", func(c *gin.Context) {
			handlers.GetProveedorHandler(c, db)
		})
		api.POST("/proveedores", func(c *gin.Context) {
			handlers.CreateProveedorHandler(c, db)
		})
		api.PATCH("/proveedores/:id", func(c *gin.Context) {
			handlers.UpdateProveedorHandler(c, db)
		})
		api.DELETE("/proveedores/:id", func(c *gin.Context) {
			handlers.DeleteProveedorHandler(c, db)
		})

		//Vendedores
		api.GET("/vendedores", func(c *gin.Context) {
			handlers.GetVendedoresHandler(c, db)
		})
		api.GET("/vendedores/:id", func(c *gin.Context) {
			handlers.GetVendedorHandler(c, db)
		})
		api.POST("/vendedores", func(c *gin.Context) {
			handlers.CreateVendedorHandler(c, db)
		})
		api.PATCH("/vendedores/:id", func(c *gin.Context) {
			handlers.UpdateVendedorHandler(c, db)
		})
		api.DELETE("/vendedores/:id", func(c *gin.Context) {
			handlers.DeleteVendedorHandler(c, db)
		})

		//Usuarios
		api.GET("/usuarios", func(c *gin.Context) {
			handlers.GetUsuariosHandler(c, db)
		})
		api.GET("/usuarios/:id", func(c *gin.Context) {
			handlers.GetUsuarioHandler(c, db)
		})
		api.POST("/usuarios", func(c *gin.Context) {
			handlers.CreateUsuarioHandler(c, db)
		})
		api.PATCH("/usuarios/:id", func(c *gin.Context) {
			handlers.UpdateUsuarioHandler(c, db)
		})
		api.DELETE("/usuarios/:id", func(c *gin.Context) {
			handlers.DeleteUsuarioHandler(c, db)
		})
	}

	return router
}
