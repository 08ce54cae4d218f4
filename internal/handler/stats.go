package handler

import (
	"net/http"
	"time"

	"meal-manager/internal/logger"
	"meal-manager/internal/model"
	"meal-manager/internal/service"

	"github.com/gin-gonic/gin"
)

type StatsHandler struct {
	svc *service.StatsService
}

func NewStatsHandler(svc *service.StatsService) *StatsHandler { return &StatsHandler{svc: svc} }

// GET /api/stats?period=week|month
func (h *StatsHandler) Daily(c *gin.Context) {
	period := c.DefaultQuery("period", "week")
	days, ok := service.PeriodDays(period)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "period must be 'week' or 'month'"})
		return
	}

	stats, err := h.svc.DailyStats(c.Request.Context(), days, time.Now())
	if err != nil {
		logger.Error("stats query failed", "period", period, "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": model.MsgServerError})
		return
	}
	c.JSON(http.StatusOK, stats)
}
