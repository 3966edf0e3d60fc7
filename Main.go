package main

import (
	"Inventario/config"
	"Inventario/routers"
	"log"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No se encontró archivo .env")
	}

	cfg, err := config.LoadConfig("config/config.yaml")
	if err != nil {
		panic("No se pudo leer la configuración")
	}

	db, err := config.SetupMySQLConnection(cfg)
	if err != nil {
		panic("No se pudo conectar a la base de datos")
	}
	defer func() {
		dbInstance, _ := db.DB()
		_ = dbInstance.Close()
	}()

	router := routers.SetupRouters(db, cfg)
	port := cfg.ListenPort()
	log.Printf("El servidor esta corriendo en http://localhost:%s/api\n", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}
