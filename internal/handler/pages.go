package handler

import (
	"net/http"
	"time"

	"meal-manager/internal/logger"
	"meal-manager/internal/model"
	"meal-manager/internal/service"

	"github.com/gin-gonic/gin"
)

type PageHandler struct {
	meals *service.MealService
}

func NewPageHandler(meals *service.MealService) *PageHandler { return &PageHandler{meals: meals} }

// DayGroup is one date section on the meal list page.
type DayGroup struct {
	Date  string
	Label string
	Meals []model.Meal
}

// GET /
func (h *PageHandler) Home(c *gin.Context) {
	c.HTML(http.StatusOK, "home.html", gin.H{"Active": "home"})
}

// GET /meals
func (h *PageHandler) MealList(c *gin.Context) {
	meals, err := h.meals.List(c.Request.Context())
	if err != nil {
		logger.Error("meal list page failed", "err", err)
		c.String(http.StatusInternalServerError, model.MsgServerError)
		return
	}
	c.HTML(http.StatusOK, "meals.html", gin.H{
		"Active": "meals",
		"Groups": groupByDay(meals),
	})
}

// GET /meals/new
func (h *PageHandler) NewMeal(c *gin.Context) {
	c.HTML(http.StatusOK, "meal_new.html", gin.H{
		"Active":    "new",
		"Today":     time.Now().Format(model.DateLayout),
		"MealTypes": model.MealTypes,
	})
}

// GET /stats
func (h *PageHandler) Stats(c *gin.Context) {
	c.HTML(http.StatusOK, "stats.html", gin.H{"Active": "stats"})
}

// groupByDay splits a date-descending meal list into per-day sections.
func groupByDay(meals []model.Meal) []DayGroup {
	var groups []DayGroup
	for _, m := range meals {
		if len(groups) == 0 || groups[len(groups)-1].Date != m.MealDate {
			groups = append(groups, DayGroup{
				Date:  m.MealDate,
				Label: model.FormatDateLabel(m.MealDate, "ko"),
			})
		}
		g := &groups[len(groups)-1]
		g.Meals = append(g.Meals, m)
	}
	return groups
}
