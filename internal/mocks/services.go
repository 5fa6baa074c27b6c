package mocks

import (
	"context"

	"github.com/kioskhub/dashboard/backend/internal/model"
	"github.com/kioskhub/dashboard/backend/internal/service"
	"github.com/stretchr/testify/mock"
)

// MockShoppingService is a mock implementation of the shopping service
type MockShoppingService struct {
	mock.Mock
}

func (m *MockShoppingService) list(args mock.Arguments) (*model.ShoppingList, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ShoppingList), args.Error(1)
}

// Generate mocks the Generate method
func (m *MockShoppingService) Generate(ctx context.Context, household string, daysAhead int) (*model.ShoppingList, error) {
	return m.list(m.Called(ctx, household, daysAhead))
}

// Get mocks the Get method
func (m *MockShoppingService) Get(ctx context.Context, household string) (*model.ShoppingList, error) {
	return m.list(m.Called(ctx, household))
}

// Grouped mocks the Grouped method
func (m *MockShoppingService) Grouped(ctx context.Context, household string) ([]model.AisleGroup, error) {
	args := m.Called(ctx, household)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.AisleGroup), args.Error(1)
}

// Export mocks the Export method
func (m *MockShoppingService) Export(ctx context.Context, household string) (string, error) {
	args := m.Called(ctx, household)
	return args.String(0), args.Error(1)
}

// Toggle mocks the Toggle method
func (m *MockShoppingService) Toggle(ctx context.Context, household, itemID string) (*model.ShoppingList, error) {
	return m.list(m.Called(ctx, household, itemID))
}

// Add mocks the Add method
func (m *MockShoppingService) Add(ctx context.Context, household, name string) (*model.ShoppingListItem, error) {
	args := m.Called(ctx, household, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ShoppingListItem), args.Error(1)
}

// Delete mocks the Delete method
func (m *MockShoppingService) Delete(ctx context.Context, household, itemID string) (*model.ShoppingList, error) {
	return m.list(m.Called(ctx, household, itemID))
}

// Clear mocks the Clear method
func (m *MockShoppingService) Clear(ctx context.Context, household string) (*model.ShoppingList, error) {
	return m.list(m.Called(ctx, household))
}

// MockMealPlanService is a mock implementation of the meal plan service
type MockMealPlanService struct {
	mock.Mock
}

func (m *MockMealPlanService) ReplaceDay(ctx context.Context, household, date string, day model.DayPlan) error {
	args := m.Called(ctx, household, date, day)
	return args.Error(0)
}

func (m *MockMealPlanService) DeleteDay(ctx context.Context, household, date string) error {
	args := m.Called(ctx, household, date)
	return args.Error(0)
}

func (m *MockMealPlanService) Range(ctx context.Context, household, from, to string) (model.MealPlan, error) {
	args := m.Called(ctx, household, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(model.MealPlan), args.Error(1)
}

// MockShareService is a mock implementation of the share service
type MockShareService struct {
	mock.Mock
}

func (m *MockShareService) Share(ctx context.Context, household string) (*service.ShareLink, error) {
	args := m.Called(ctx, household)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ShareLink), args.Error(1)
}
