package main

import (
	"flag"
	"log/slog"
	"os"

	"meal-manager/internal/config"
	"meal-manager/internal/handler"
	"meal-manager/internal/logger"
	"meal-manager/internal/middleware"
	"meal-manager/internal/model"
	"meal-manager/internal/service"
	"meal-manager/internal/web"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	configFile := flag.String("config", "", "config file path (e.g. etc/config-dev.yaml)")
	flag.Parse()

	cfg := config.Load(*configFile)
	logger.Init(cfg.Log)

	db, err := cfg.OpenGormDB()
	if err != nil {
		slog.Error("db connect failed", "err", err)
		os.Exit(1)
	}
	if err := db.AutoMigrate(&model.Meal{}); err != nil {
		slog.Error("db migrate failed", "err", err)
		os.Exit(1)
	}

	mealSvc := service.NewMealService(db)
	statsSvc := service.NewStatsService(db)
	sheetSvc := service.NewSheetService(mealSvc)

	mealH := handler.NewMealHandler(mealSvc)
	statsH := handler.NewStatsHandler(statsSvc)
	sheetH := handler.NewSheetHandler(sheetSvc)
	pageH := handler.NewPageHandler(mealSvc)

	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLog())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	r.SetHTMLTemplate(web.Templates())
	r.StaticFS("/static", web.Static())

	r.GET("/", pageH.Home)
	r.GET("/meals", pageH.MealList)
	r.GET("/meals/new", pageH.NewMeal)
	r.GET("/stats", pageH.Stats)

	api := r.Group("/api")
	api.POST("/meals", mealH.Create)
	api.GET("/meals", mealH.List)
	api.DELETE("/meals/:id", mealH.Delete)
	api.POST("/meals/import", sheetH.Import)
	api.GET("/meals/export", sheetH.Export)
	api.GET("/stats", statsH.Daily)

	slog.Info("server starting", "addr", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		slog.Error("server failed", "err", err)
	}
}
