package service

import (
	"context"
	"fmt"
	"time"

	"github.com/kioskhub/dashboard/backend/internal/model"
)

const dateLayout = "2006-01-02"

// MealPlanService validates and forwards meal plan edits to the store.
type MealPlanService struct {
	store MealPlanStore
}

func NewMealPlanService(store MealPlanStore) *MealPlanService {
	return &MealPlanService{store: store}
}

func validDate(date string) bool {
	_, err := time.Parse(dateLayout, date)
	return err == nil
}

func (s *MealPlanService) check(household string, dates ...string) error {
	if s == nil || s.store == nil {
		return ErrNotInitialized
	}
	if !ValidHousehold(household) {
		return ErrInvalidHousehold
	}
	for _, d := range dates {
		if !validDate(d) {
			return fmt.Errorf("%w: %q", ErrInvalidDate, d)
		}
	}
	return nil
}

// ReplaceDay overwrites every category planned for date.
func (s *MealPlanService) ReplaceDay(ctx context.Context, household, date string, day model.DayPlan) error {
	if err := s.check(household, date); err != nil {
		return err
	}
	if err := s.store.ReplaceDay(ctx, household, date, day); err != nil {
		return fmt.Errorf("failed to save meal plan: %w", err)
	}
	return nil
}

// DeleteDay removes everything planned for date.
func (s *MealPlanService) DeleteDay(ctx context.Context, household, date string) error {
	if err := s.check(household, date); err != nil {
		return err
	}
	if err := s.store.DeleteDay(ctx, household, date); err != nil {
		return fmt.Errorf("failed to delete meal plan: %w", err)
	}
	return nil
}

// Range lists the plan between from and to inclusive.
func (s *MealPlanService) Range(ctx context.Context, household, from, to string) (model.MealPlan, error) {
	if err := s.check(household, from, to); err != nil {
		return nil, err
	}
	if to < from {
		from, to = to, from
	}
	plan, err := s.store.Range(ctx, household, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list meal plan: %w", err)
	}
	return plan, nil
}
