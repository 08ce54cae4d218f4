package model

import "time"

type Meal struct {
	ID        int       `gorm:"primaryKey" json:"id"`
	MealDate  string    `gorm:"size:10;index" json:"date"`
	MealType  string    `gorm:"size:10" json:"mealType"`
	FoodName  string    `gorm:"size:100" json:"foodName"`
	Calories  float64   `json:"calories"`
	Carbs     float64   `json:"carbs"`
	Protein   float64   `json:"protein"`
	Fat       float64   `json:"fat"`
	CreatedAt time.Time `json:"createdAt"`
}

func (Meal) TableName() string { return "meals" }
