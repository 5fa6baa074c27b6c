// Package mealplan provides the meal plan collaborators the shopping list
// is generated from.
package mealplan

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/google/uuid"
	"github.com/kioskhub/dashboard/backend/internal/model"
	"gorm.io/gorm"
)

// ErrSourceUnavailable is returned when the remote meal plan cannot be read.
var ErrSourceUnavailable = errors.New("meal plan source unavailable")

// DBSource reads and writes the planned_meals table.
type DBSource struct {
	db *gorm.DB
}

func NewDBSource(db *gorm.DB) *DBSource {
	return &DBSource{db: db}
}

func toPlan(rows []model.PlannedMeal) model.MealPlan {
	plan := model.MealPlan{}
	for _, row := range rows {
		day, ok := plan[row.Date]
		if !ok {
			day = model.DayPlan{}
			plan[row.Date] = day
		}
		day[row.Category] = append(day[row.Category], row.Meal())
	}
	return plan
}

func (s *DBSource) query(ctx context.Context) *gorm.DB {
	return s.db.WithContext(ctx).Order("date ASC").Order("category ASC").Order("position ASC")
}

// MealPlan returns the meals planned on the given dates.
func (s *DBSource) MealPlan(ctx context.Context, household string, dates []string) (model.MealPlan, error) {
	if len(dates) == 0 {
		return model.MealPlan{}, nil
	}
	var rows []model.PlannedMeal
	err := s.query(ctx).
		Where("household = ? AND date IN ?", household, dates).
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load planned meals: %w", err)
	}
	return toPlan(rows), nil
}

// Range returns the meals planned between from and to inclusive.
func (s *DBSource) Range(ctx context.Context, household, from, to string) (model.MealPlan, error) {
	var rows []model.PlannedMeal
	err := s.query(ctx).
		Where("household = ? AND date >= ? AND date <= ?", household, from, to).
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load planned meals: %w", err)
	}
	return toPlan(rows), nil
}

// ReplaceDay swaps everything planned on date for day in one transaction.
func (s *DBSource) ReplaceDay(ctx context.Context, household, date string, day model.DayPlan) error {
	categories := make([]string, 0, len(day))
	for cat := range day {
		categories = append(categories, cat)
	}
	sort.Strings(categories)

	var rows []model.PlannedMeal
	for _, cat := range categories {
		for i, meal := range day[cat] {
			mealID := meal.ID
			if mealID == "" {
				mealID = uuid.NewString()
			}
			rows = append(rows, model.PlannedMeal{
				ID:          uuid.NewString(),
				Household:   household,
				Date:        date,
				Category:    cat,
				Position:    i,
				MealID:      mealID,
				Name:        meal.Name,
				Ingredients: model.IngredientList(meal.Ingredients),
			})
		}
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("household = ? AND date = ?", household, date).Delete(&model.PlannedMeal{}).Error; err != nil {
			return fmt.Errorf("failed to clear day %s: %w", date, err)
		}
		if len(rows) == 0 {
			return nil
		}
		if err := tx.Create(&rows).Error; err != nil {
			return fmt.Errorf("failed to save day %s: %w", date, err)
		}
		return nil
	})
}

// DeleteDay removes everything planned on date.
func (s *DBSource) DeleteDay(ctx context.Context, household, date string) error {
	err := s.db.WithContext(ctx).
		Where("household = ? AND date = ?", household, date).
		Delete(&model.PlannedMeal{}).Error
	if err != nil {
		return fmt.Errorf("failed to delete day %s: %w", date, err)
	}
	return nil
}
