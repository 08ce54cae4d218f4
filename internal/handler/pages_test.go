package handler

import (
	"net/http"
	"strings"
	"testing"
	"time"

	"meal-manager/internal/model"
	"meal-manager/internal/service"
	"meal-manager/internal/web"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupPages(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	r, db := setupRouter(t)
	r.SetHTMLTemplate(web.Templates())
	pageH := NewPageHandler(service.NewMealService(db))
	r.GET("/", pageH.Home)
	r.GET("/meals", pageH.MealList)
	r.GET("/meals/new", pageH.NewMeal)
	r.GET("/stats", pageH.Stats)
	return r, db
}

func TestHomePage(t *testing.T) {
	r, _ := setupPages(t)
	w := doJSON(t, r, "GET", "/", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Meal Manager")
}

func TestMealListPage_GroupsByDay(t *testing.T) {
	r, db := setupPages(t)
	for _, m := range []model.Meal{
		{MealDate: "2025-03-10", MealType: model.MealTypeBreakfast, FoodName: "현미밥", Calories: 300},
		{MealDate: "2025-03-11", MealType: model.MealTypeLunch, FoodName: "비빔밥", Calories: 650},
	} {
		require.NoError(t, db.Create(&m).Error)
	}

	w := doJSON(t, r, "GET", "/meals", "")
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()

	assert.Contains(t, body, "2025년 3월 11일 화요일")
	assert.Contains(t, body, "2025년 3월 10일 월요일")
	assert.Contains(t, body, "현미밥")
	assert.Contains(t, body, "비빔밥")
	// newest day renders first
	assert.Less(t, strings.Index(body, "3월 11일"), strings.Index(body, "3월 10일"))
}

func TestMealListPage_EmptyState(t *testing.T) {
	r, _ := setupPages(t)
	w := doJSON(t, r, "GET", "/meals", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "기록된 식단이 없습니다")
	assert.Contains(t, w.Body.String(), "/meals/new")
}

func TestNewMealPage(t *testing.T) {
	r, _ := setupPages(t)
	w := doJSON(t, r, "GET", "/meals/new", "")
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, time.Now().Format(model.DateLayout))
	for _, mt := range model.MealTypes {
		assert.Contains(t, body, mt)
	}
}

func TestStatsPage(t *testing.T) {
	r, _ := setupPages(t)
	w := doJSON(t, r, "GET", "/stats", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "통계")
}
