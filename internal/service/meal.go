package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"meal-manager/internal/model"

	"gorm.io/gorm"
)

var ErrNotFound = errors.New("meal not found")

// ValidationError carries every violated rule so the client can show all of
// them at once.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string { return strings.Join(e.Messages, " ") }

type MealService struct {
	db *gorm.DB
}

func NewMealService(db *gorm.DB) *MealService { return &MealService{db: db} }

// Create validates and persists one meal. Rule violations come back as a
// *ValidationError; anything else is a store failure.
func (s *MealService) Create(ctx context.Context, req *model.CreateMealRequest) (*model.Meal, error) {
	if msgs := validateCreate(req); len(msgs) > 0 {
		return nil, &ValidationError{Messages: msgs}
	}

	meal := model.Meal{
		MealDate: req.Date,
		MealType: req.MealType,
		FoodName: strings.TrimSpace(req.FoodName),
		Calories: numberOrZero(req.Calories),
		Carbs:    numberOrZero(req.Carbs),
		Protein:  numberOrZero(req.Protein),
		Fat:      numberOrZero(req.Fat),
	}
	if err := s.db.WithContext(ctx).Create(&meal).Error; err != nil {
		return nil, fmt.Errorf("insert meal: %w", err)
	}
	return &meal, nil
}

// Delete removes the meal with the given id. Returns ErrNotFound when no
// such record exists, so a repeated delete stays a 404.
func (s *MealService) Delete(ctx context.Context, id int) error {
	var meal model.Meal
	err := s.db.WithContext(ctx).First(&meal, id).Error
	if err == gorm.ErrRecordNotFound {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("find meal: %w", err)
	}
	if err := s.db.WithContext(ctx).Delete(&meal).Error; err != nil {
		return fmt.Errorf("delete meal: %w", err)
	}
	return nil
}

// List returns all meals, newest day first; within a day the most recently
// created entry comes first.
func (s *MealService) List(ctx context.Context) ([]model.Meal, error) {
	var meals []model.Meal
	err := s.db.WithContext(ctx).
		Order("meal_date DESC, created_at DESC").
		Find(&meals).Error
	if err != nil {
		return nil, fmt.Errorf("query meals: %w", err)
	}
	return meals, nil
}

func validateCreate(req *model.CreateMealRequest) []string {
	var msgs []string

	if req.Date == "" {
		msgs = append(msgs, model.MsgDateRequired)
	} else if _, err := time.Parse(model.DateLayout, req.Date); err != nil {
		msgs = append(msgs, model.MsgDateInvalid)
	}

	if req.MealType == "" {
		msgs = append(msgs, model.MsgMealTypeRequired)
	} else if !model.ValidMealType(req.MealType) {
		msgs = append(msgs, model.MsgMealTypeInvalid)
	}

	if strings.TrimSpace(req.FoodName) == "" {
		msgs = append(msgs, model.MsgFoodNameRequired)
	}

	return msgs
}

// numberOrZero coerces a decoded JSON value to a non-negative float.
// Absent, null, non-numeric and negative values all count as zero.
func numberOrZero(v any) float64 {
	var f float64
	switch n := v.(type) {
	case float64:
		f = n
	case json.Number:
		parsed, err := n.Float64()
		if err != nil {
			return 0
		}
		f = parsed
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0
		}
		f = parsed
	default:
		return 0
	}
	if math.IsNaN(f) || f < 0 {
		return 0
	}
	return f
}
