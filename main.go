package main

import (
	"Gin_postgres_redis_lost_found/app"
	"Gin_postgres_redis_lost_found/config"
	"Gin_postgres_redis_lost_found/routes"
	"log"
	"os"
)

func main() {
	config.LoadEnv()

	application := app.MustNew()
	defer application.Close()

	r := application.Router

	// Health
	r.GET("/healthz", func(c *app.Ctx) { c.JSON(200, app.H{"ok": true}) })

	routes.RegisterRoutes(r, application)

	port := os.Getenv("PORT")
	if port == "" {
		port = "3001"
	}
	log.Printf("listening on :%s", port)
	_ = r.Run(":" + port)
}
