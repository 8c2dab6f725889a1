package main

import (
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/DM-Mulani-963/online-healthcare-system/configuration"
	"github.com/DM-Mulani-963/online-healthcare-system/controllers"
	"github.com/DM-Mulani-963/online-healthcare-system/routes"
)

func main() {
	cfg := configuration.LoadConfig()

	db, err := configuration.ConnectDB(cfg)
	if err != nil {
		log.Fatal("database:", err)
	}

	var cache *configuration.Cache
	if cfg.RedisAddr != "" {
		cache, err = configuration.NewCache(cfg.RedisAddr)
		if err != nil {
			log.Println("redis unavailable, running without cache:", err)
			cache = nil
		}
	}

	mailer := controllers.NewMailer(cfg)
	h := controllers.New(db, cache, mailer, cfg.JWTSecret)

	router := gin.Default()
	router.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type", "Accept", "Authorization"},
	}))

	routes.ConfigRoutes(router, h)

	log.Printf("Server running on port %s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatal("server:", err)
	}
}
