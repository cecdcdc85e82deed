package main

import (
	"log"
	"net/http"

	"github.com/PedroPossari/Vitalis/internal/config"
	dbpkg "github.com/PedroPossari/Vitalis/internal/db"
	"github.com/PedroPossari/Vitalis/internal/middleware"
	redisclient "github.com/PedroPossari/Vitalis/internal/redis"
	"github.com/PedroPossari/Vitalis/internal/routes"
	"github.com/gin-gonic/gin"
)

func main() {

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	rdb, err := redisclient.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword)
	if err != nil {
		log.Fatalf("failed to connect redis: %v", err)
	}

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, rdb, cfg)

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
