package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Flegias94/degree-project/internal/timetable"
)

type handlers struct {
	scheduler *timetable.Scheduler
	result    *timetable.Result
}

func (h *handlers) handleGetLabels(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{
		"labels": h.scheduler.Labels(),
	})
}

func (h *handlers) handleGetSchedule(ctx *gin.Context) {
	label := ctx.Param("label")
	found := false
	for _, l := range h.scheduler.Labels() {
		if l == label {
			found = true
			break
		}
	}
	if !found {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "unknown schedule label"})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{
		"label":    label,
		"weekdays": h.scheduler.Schedule(label).Render(),
	})
}

func (h *handlers) handleGetCombined(ctx *gin.Context) {
	prefix := ctx.Param("prefix")
	ctx.JSON(http.StatusOK, gin.H{
		"prefix":   prefix,
		"weekdays": h.scheduler.CombinedSchedule(prefix).Render(),
	})
}

func (h *handlers) handleGetDiagnostics(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{
		"placed":   h.result.Placed,
		"degraded": h.result.Degraded,
		"dropped":  h.result.Dropped,
	})
}
