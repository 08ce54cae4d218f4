package service

import (
	"context"
	"fmt"
	"math"
	"time"

	"meal-manager/internal/model"

	"gorm.io/gorm"
)

type StatsService struct {
	db *gorm.DB
}

func NewStatsService(db *gorm.DB) *StatsService { return &StatsService{db: db} }

// PeriodDays maps a period query value to its window size in days.
func PeriodDays(period string) (int, bool) {
	switch period {
	case "week":
		return 7, true
	case "month":
		return 30, true
	}
	return 0, false
}

// DailyStats aggregates calories and macros per calendar day over the
// `days`-day window ending on `now`'s local day. The result always holds
// exactly `days` buckets in ascending date order; days without meals stay
// zero.
func (s *StatsService) DailyStats(ctx context.Context, days int, now time.Time) ([]model.DailyStat, error) {
	start := now.AddDate(0, 0, -(days - 1)).Format(model.DateLayout)
	end := now.Format(model.DateLayout)

	var meals []model.Meal
	err := s.db.WithContext(ctx).
		Where("meal_date BETWEEN ? AND ?", start, end).
		Find(&meals).Error
	if err != nil {
		return nil, fmt.Errorf("query meals: %w", err)
	}

	order := make([]string, days)
	buckets := make(map[string]*model.DailyStat, days)
	for i := 0; i < days; i++ {
		day := now.AddDate(0, 0, -(days-1)+i).Format(model.DateLayout)
		order[i] = day
		buckets[day] = &model.DailyStat{Date: day}
	}

	for _, m := range meals {
		b, ok := buckets[m.MealDate]
		if !ok {
			// outside the pre-filled window, drop silently
			continue
		}
		b.Calories += m.Calories
		b.Carbs += m.Carbs
		b.Protein += m.Protein
		b.Fat += m.Fat
	}

	out := make([]model.DailyStat, 0, days)
	for _, day := range order {
		b := buckets[day]
		b.Carbs = round1(b.Carbs)
		b.Protein = round1(b.Protein)
		b.Fat = round1(b.Fat)
		out = append(out, *b)
	}
	return out, nil
}

func round1(f float64) float64 {
	return math.Round(f*10) / 10
}
