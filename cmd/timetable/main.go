package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/Flegias94/degree-project/internal/catalog"
	"github.com/Flegias94/degree-project/internal/timetable"
	"github.com/Flegias94/degree-project/pkg/config"
	"github.com/Flegias94/degree-project/pkg/logger"
	"github.com/Flegias94/degree-project/pkg/model"
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

	cohorts, courses, rooms, err := loadCatalogues(cfg)
	if err != nil {
		log.Fatal("loading catalogues failed", zap.Error(err))
	}
	log.Info("catalogues loaded",
		zap.Int("cohorts", len(cohorts)),
		zap.Int("courses", len(courses)),
		zap.Int("rooms", len(rooms)))

	scheduler := timetable.New(cohorts, courses, rooms, log)

	start := time.Now()
	result, err := scheduler.GenerateAll()
	if err != nil {
		log.Fatal("generation aborted", zap.Error(err))
	}
	elapsed := time.Since(start)

	for _, label := range result.Labels {
		name := strings.ReplaceAll(label, " ", "_") + "-schedule.csv"
		path := filepath.Join(cfg.Export.Dir, name)
		if err := catalog.ExportSchedule(label, scheduler.Schedule(label), path); err != nil {
			log.Error("export failed", zap.String("label", label), zap.Error(err))
		}
	}

	valid, report := timetable.Verify(collectSchedules(scheduler, result.Labels))
	fmt.Println(report)
	if !valid {
		log.Error("generated schedules violate invariants")
	}

	log.Info("run complete",
		zap.Int("schedules", len(result.Labels)),
		zap.Int("placed", result.Placed),
		zap.Int("degraded", len(result.Degraded)),
		zap.Int("dropped", len(result.Dropped)),
		zap.Duration("elapsed", elapsed))
}

func loadCatalogues(cfg *config.Config) ([]*model.Cohort, []*model.Course, []*model.Room, error) {
	cat := cfg.Catalogue
	if cat.Format == config.FormatJSON {
		cohorts, err := catalog.LoadCohortsJSON(cat.CohortsFile)
		if err != nil {
			return nil, nil, nil, err
		}
		courses, err := catalog.LoadCoursesJSON(cat.CoursesFile)
		if err != nil {
			return nil, nil, nil, err
		}
		rooms, err := catalog.LoadRoomsJSON(cat.RoomsFile)
		if err != nil {
			return nil, nil, nil, err
		}
		return cohorts, courses, rooms, nil
	}

	cohorts, err := catalog.LoadCohorts(cat.CohortsFile, cat.Delim())
	if err != nil {
		return nil, nil, nil, err
	}
	courses, err := catalog.LoadCourses(cat.CoursesFile, cat.Delim())
	if err != nil {
		return nil, nil, nil, err
	}
	rooms, err := catalog.LoadRooms(cat.RoomsFile, cat.Delim())
	if err != nil {
		return nil, nil, nil, err
	}
	return cohorts, courses, rooms, nil
}

func collectSchedules(s *timetable.Scheduler, labels []string) map[string]*model.ScheduleGrid {
	schedules := make(map[string]*model.ScheduleGrid, len(labels))
	for _, label := range labels {
		schedules[label] = s.Schedule(label)
	}
	return schedules
}
