package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/tekser/repair-tracker/internal/auth"
	"github.com/tekser/repair-tracker/internal/config"
	dbpkg "github.com/tekser/repair-tracker/internal/db"
	infraRepo "github.com/tekser/repair-tracker/internal/infra/repository"
	"github.com/tekser/repair-tracker/internal/jobs"
	"github.com/tekser/repair-tracker/internal/middleware"
	"github.com/tekser/repair-tracker/internal/routes"
)

func main() {

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)
	rdb := dbpkg.NewRedis(cfg)

	tokens := auth.NewTokenService(cfg.JWTSecret, rdb, cfg.AccessTokenTTL, cfg.RefreshTokenTTL)

	sweep := jobs.NewStaleSweep(
		infraRepo.NewSweepGormStore(db),
		cfg.SweepInterval,
		cfg.SweepTimeout,
		cfg.StaleAfter,
		cfg.SweepAudience,
	)
	sweep.Start()
	defer sweep.Stop()

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg, tokens)

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
