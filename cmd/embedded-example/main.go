package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"weddingplanner/filter"
	"weddingplanner/infrastructure/logger"
	"weddingplanner/pkg/planner"
)

func main() {
	// This example embeds the planner in an existing Gin application.
	// It runs on in-memory storage so no database is needed.

	log.Println("Wedding Planner Embedded Example")
	log.Println("================================")

	if err := logger.InitFromEnv(); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	addr := os.Getenv("ADDR")
	if addr == "" {
		addr = ":8080"
	}

	p, err := planner.New(
		planner.WithRoutePrefix("/wedding"),
		planner.WithLogger(logger.Named("planner")),
		planner.WithStream(16, 64),
	)
	if err != nil {
		log.Fatalf("Failed to initialize planner: %v", err)
	}

	// Start runs the change stream hub
	if err := p.Start(); err != nil {
		log.Fatalf("Failed to start planner: %v", err)
	}

	router := gin.Default()

	// The host's own health check reports the planner's status too
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"app":     "ok",
			"planner": p.HealthCheck(c.Request.Context()),
		})
	})

	// Host routes can call the services directly
	router.GET("/dashboard", func(c *gin.Context) {
		ctx := c.Request.Context()

		stats, err := p.Checklist().Stats(ctx)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		criteria := filter.DefaultVenueCriteria()
		criteria.Budget.Max = 150000
		affordable, err := p.Venues().Browse(ctx, criteria)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"progress":          stats.Progress(),
			"completed":         stats.Completed,
			"total":             stats.Total,
			"affordable_venues": len(affordable.Visible),
		})
	})

	if err := p.RegisterRoutes(router); err != nil {
		log.Fatalf("Failed to register planner routes: %v", err)
	}

	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Printf("Server started on %s", addr)
		log.Println("Endpoints:")
		log.Println("  GET    /health                      - Host health check")
		log.Println("  GET    /dashboard                   - Progress and budget summary")
		log.Println("  GET    /wedding/checklist           - Search the checklist")
		log.Println("  POST   /wedding/checklist           - Add a task")
		log.Println("  GET    /wedding/venues              - Browse venues")
		log.Println("  GET    /wedding/checklist/stream    - Websocket change stream")
		log.Println("")
		log.Println("Example: curl -X POST http://localhost:8080/wedding/checklist \\")
		log.Println("  -H 'Content-Type: application/json' \\")
		log.Println("  -d '{\"title\":\"Book DJ\",\"category\":\"Music\",\"priority\":\"HIGH\"}'")

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("")
	log.Println("Shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}
	if err := p.Shutdown(ctx); err != nil {
		log.Printf("Planner shutdown error: %v", err)
	}

	log.Println("Server stopped")
}
