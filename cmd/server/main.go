package main

import (
	"fmt"
	"os"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Flegias94/degree-project/internal/catalog"
	"github.com/Flegias94/degree-project/internal/timetable"
	"github.com/Flegias94/degree-project/pkg/config"
	"github.com/Flegias94/degree-project/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}
	log, err := logger.New(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, "logger:", err)
		os.Exit(1)
	}
	defer log.Sync()

	cohorts, err := catalog.LoadCohorts(cfg.Catalogue.CohortsFile, cfg.Catalogue.Delim())
	if err != nil {
		log.Fatal("loading cohorts failed", zap.Error(err))
	}
	courses, err := catalog.LoadCourses(cfg.Catalogue.CoursesFile, cfg.Catalogue.Delim())
	if err != nil {
		log.Fatal("loading courses failed", zap.Error(err))
	}
	rooms, err := catalog.LoadRooms(cfg.Catalogue.RoomsFile, cfg.Catalogue.Delim())
	if err != nil {
		log.Fatal("loading rooms failed", zap.Error(err))
	}

	scheduler := timetable.New(cohorts, courses, rooms, log)
	result, err := scheduler.GenerateAll()
	if err != nil {
		log.Fatal("generation aborted", zap.Error(err))
	}
	log.Info("schedules generated",
		zap.Int("schedules", len(result.Labels)),
		zap.Int("degraded", len(result.Degraded)),
		zap.Int("dropped", len(result.Dropped)))

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(logger.GinMiddleware(log))

	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	h := &handlers{scheduler: scheduler, result: result}
	r.GET("/labels", h.handleGetLabels)
	r.GET("/schedule/:label", h.handleGetSchedule)
	r.GET("/combined/:prefix", h.handleGetCombined)
	r.GET("/diagnostics", h.handleGetDiagnostics)

	if err := r.Run(fmt.Sprintf(":%d", cfg.Port)); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}
