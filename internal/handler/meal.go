package handler

import (
	"errors"
	"net/http"
	"strconv"

	"meal-manager/internal/logger"
	"meal-manager/internal/model"
	"meal-manager/internal/service"

	"github.com/gin-gonic/gin"
)

type MealHandler struct {
	svc *service.MealService
}

func NewMealHandler(svc *service.MealService) *MealHandler { return &MealHandler{svc: svc} }

// POST /api/meals
func (h *MealHandler) Create(c *gin.Context) {
	var req model.CreateMealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": []string{model.MsgInvalidBody}})
		return
	}

	meal, err := h.svc.Create(c.Request.Context(), &req)
	if err != nil {
		var verr *service.ValidationError
		if errors.As(err, &verr) {
			c.JSON(http.StatusBadRequest, gin.H{"errors": verr.Messages})
			return
		}
		logger.Error("meal create failed", "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"errors": []string{model.MsgServerError}})
		return
	}
	c.JSON(http.StatusCreated, meal)
}

// GET /api/meals
func (h *MealHandler) List(c *gin.Context) {
	meals, err := h.svc.List(c.Request.Context())
	if err != nil {
		logger.Error("meal list failed", "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": model.MsgServerError})
		return
	}
	if meals == nil {
		meals = []model.Meal{}
	}
	c.JSON(http.StatusOK, meals)
}

// DELETE /api/meals/:id
func (h *MealHandler) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": model.MsgInvalidID})
		return
	}

	err = h.svc.Delete(c.Request.Context(), id)
	if err == service.ErrNotFound {
		c.JSON(http.StatusNotFound, gin.H{"error": model.MsgMealNotFound})
		return
	}
	if err != nil {
		logger.Error("meal delete failed", "id", id, "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": model.MsgServerError})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
