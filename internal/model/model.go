package model

import (
	"fmt"
	"time"
)

const (
	MealTypeBreakfast = "아침"
	MealTypeLunch     = "점심"
	MealTypeDinner    = "저녁"
	MealTypeSnack     = "간식"
)

// MealTypes is the fixed set of accepted meal types, in display order.
var MealTypes = []string{MealTypeBreakfast, MealTypeLunch, MealTypeDinner, MealTypeSnack}

func ValidMealType(t string) bool {
	for _, v := range MealTypes {
		if t == v {
			return true
		}
	}
	return false
}

// User-facing messages. The UI is Korean-only apart from date labels,
// which go through FormatDateLabel with an explicit locale.
const (
	MsgDateRequired     = "날짜를 입력해주세요."
	MsgDateInvalid      = "올바른 날짜 형식이 아닙니다. (YYYY-MM-DD)"
	MsgMealTypeRequired = "끼니를 선택해주세요."
	MsgMealTypeInvalid  = "올바른 끼니를 선택해주세요. (아침/점심/저녁/간식)"
	MsgFoodNameRequired = "음식 이름을 입력해주세요."
	MsgInvalidBody      = "요청 형식이 올바르지 않습니다."
	MsgInvalidID        = "유효하지 않은 ID입니다."
	MsgMealNotFound     = "해당 식단을 찾을 수 없습니다."
	MsgServerError      = "서버 오류가 발생했습니다."
)

// DateLayout is the day-granular format used for meal dates and stat keys.
const DateLayout = "2006-01-02"

// CreateMealRequest is the POST /api/meals body. Numeric fields are `any`
// on purpose: absent, null or non-numeric values must fall back to zero
// instead of failing the request.
type CreateMealRequest struct {
	Date     string `json:"date"`
	MealType string `json:"mealType"`
	FoodName string `json:"foodName"`
	Calories any    `json:"calories"`
	Carbs    any    `json:"carbs"`
	Protein  any    `json:"protein"`
	Fat      any    `json:"fat"`
}

// DailyStat is one zero-filled aggregation bucket per calendar day.
type DailyStat struct {
	Date     string  `json:"date"`
	Calories float64 `json:"calories"`
	Carbs    float64 `json:"carbs"`
	Protein  float64 `json:"protein"`
	Fat      float64 `json:"fat"`
}

var koreanWeekdays = [7]string{"일요일", "월요일", "화요일", "수요일", "목요일", "금요일", "토요일"}

// FormatDateLabel renders a "2006-01-02" day as a human-readable label for
// the given locale ("ko" or "en"). Unparseable input is returned as-is.
func FormatDateLabel(day, locale string) string {
	t, err := time.Parse(DateLayout, day)
	if err != nil {
		return day
	}
	switch locale {
	case "ko":
		return fmt.Sprintf("%d년 %d월 %d일 %s", t.Year(), int(t.Month()), t.Day(), koreanWeekdays[t.Weekday()])
	default:
		return t.Format("Monday, January 2, 2006")
	}
}
