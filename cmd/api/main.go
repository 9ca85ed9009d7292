package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"

	"github.com/barberbook/booking-api/internal/config"
	"github.com/barberbook/booking-api/internal/db"
	"github.com/barberbook/booking-api/internal/routes"
)

func main() {
	cfg := config.Load()

	database := db.NewDB(cfg)

	// cache is optional: without REDIS_ADDR every schedule read hits postgres
	var redisClient *redis.Client
	if cfg.RedisAddr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
		})
	}

	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, database, redisClient, cfg)

	log.Printf("booking api listening on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
