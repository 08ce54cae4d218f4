package service

import (
	"context"
	"errors"
	"fmt"
	"io"

	"meal-manager/internal/model"

	"github.com/xuri/excelize/v2"
)

// Column order for both import and export.
var sheetHeader = []any{"날짜", "끼니", "음식", "칼로리", "탄수화물", "단백질", "지방"}

type SheetService struct {
	meals *MealService
}

func NewSheetService(meals *MealService) *SheetService { return &SheetService{meals: meals} }

type ImportResult struct {
	Imported int      `json:"imported"`
	Errors   []string `json:"errors"`
}

// Import reads meals from the first sheet of an xlsx workbook. The first
// row is the header. Rows failing validation are reported and skipped;
// valid rows are inserted one by one.
func (s *SheetService) Import(ctx context.Context, r io.Reader) (*ImportResult, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return nil, fmt.Errorf("read sheet: %w", err)
	}

	res := &ImportResult{Errors: []string{}}
	for i, row := range rows {
		if i == 0 {
			continue
		}
		req := rowToRequest(row)
		if _, err := s.meals.Create(ctx, req); err != nil {
			var verr *ValidationError
			if errors.As(err, &verr) {
				res.Errors = append(res.Errors, fmt.Sprintf("%d행: %s", i+1, verr.Error()))
				continue
			}
			return nil, err
		}
		res.Imported++
	}
	return res, nil
}

// Export writes all meals into a new xlsx workbook, newest first.
func (s *SheetService) Export(ctx context.Context) (*excelize.File, error) {
	meals, err := s.meals.List(ctx)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	if err := f.SetSheetRow(sheet, "A1", &sheetHeader); err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}
	for i, m := range meals {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		row := []any{m.MealDate, m.MealType, m.FoodName, m.Calories, m.Carbs, m.Protein, m.Fat}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return nil, fmt.Errorf("write row %d: %w", i+2, err)
		}
	}
	return f, nil
}

func rowToRequest(row []string) *model.CreateMealRequest {
	cell := func(i int) string {
		if i < len(row) {
			return row[i]
		}
		return ""
	}
	return &model.CreateMealRequest{
		Date:     cell(0),
		MealType: cell(1),
		FoodName: cell(2),
		Calories: cell(3),
		Carbs:    cell(4),
		Protein:  cell(5),
		Fat:      cell(6),
	}
}
