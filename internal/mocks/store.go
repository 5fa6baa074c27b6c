package mocks

import (
	"context"
	"time"

	"github.com/kioskhub/dashboard/backend/internal/model"
	"github.com/stretchr/testify/mock"
)

// MockListStore is a mock implementation of service.ListStore
type MockListStore struct {
	mock.Mock
}

func (m *MockListStore) Load(ctx context.Context, key string) (*model.ShoppingList, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ShoppingList), args.Error(1)
}

func (m *MockListStore) Save(ctx context.Context, key string, list *model.ShoppingList) error {
	args := m.Called(ctx, key, list)
	return args.Error(0)
}

// MockMealSource is a mock implementation of service.MealSource
type MockMealSource struct {
	mock.Mock
}

func (m *MockMealSource) MealPlan(ctx context.Context, household string, dates []string) (model.MealPlan, error) {
	args := m.Called(ctx, household, dates)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(model.MealPlan), args.Error(1)
}

// MockMealPlanStore is a mock implementation of service.MealPlanStore
type MockMealPlanStore struct {
	MockMealSource
}

func (m *MockMealPlanStore) ReplaceDay(ctx context.Context, household, date string, day model.DayPlan) error {
	args := m.Called(ctx, household, date, day)
	return args.Error(0)
}

func (m *MockMealPlanStore) DeleteDay(ctx context.Context, household, date string) error {
	args := m.Called(ctx, household, date)
	return args.Error(0)
}

func (m *MockMealPlanStore) Range(ctx context.Context, household, from, to string) (model.MealPlan, error) {
	args := m.Called(ctx, household, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(model.MealPlan), args.Error(1)
}

// MockUploader is a mock implementation of service.ObjectUploader
type MockUploader struct {
	mock.Mock
}

func (m *MockUploader) PutObject(ctx context.Context, key string, body []byte, contentType string) error {
	args := m.Called(ctx, key, body, contentType)
	return args.Error(0)
}

func (m *MockUploader) GeneratePresignedURL(ctx context.Context, key string, expiration time.Duration) (string, error) {
	args := m.Called(ctx, key, expiration)
	return args.String(0), args.Error(1)
}
